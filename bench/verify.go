package bench

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/uniqseq/uniqseq"
)

// Verify proves, for each universe, that the unique generator never repeats
// a value within one full period. Whenever the period is universe+1, the
// usual case, that pins every value in [0, universe] exactly once. Universes
// are checked concurrently, at most parallel at a time; the first failure
// cancels the rest.
func Verify(ctx context.Context, universes []uint64, seed uint32, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, u := range universes {
		g.Go(func() error {
			return verifyUniverse(ctx, u, seed)
		})
	}
	return g.Wait()
}

func verifyUniverse(ctx context.Context, universe uint64, seed uint32) error {
	gen, err := uniqseq.New(universe, seed)
	if err != nil {
		return err
	}
	period := uint64(gen.Period())
	seen := make([]uint64, uint64(gen.Max())/64+1)
	for i := uint64(0); i < period; i++ {
		if i&0xFFFFF == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v := gen.Next()
		word, mask := v>>6, uint64(1)<<(v&63)
		if seen[word]&mask != 0 {
			return fmt.Errorf("universe %d: value %d repeated within one period", universe, v)
		}
		seen[word] |= mask
	}
	// period distinct values, all within [0, universe]: with period equal to
	// universe+1 that is the whole span by pigeonhole
	slog.Info("Period verified",
		slog.Uint64("universe", universe),
		slog.Uint64("distinct", period),
		slog.Uint64("prime", uint64(gen.Prime())))
	return nil
}
