package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/uniqseq/uniqseq"
)

// Result is the timing summary of one (universe, sweep, strategy) cell.
type Result struct {
	Universe uint64
	Sweep    string
	Strategy string

	Samples int           // timed selections in the cell
	Total   time.Duration // summed selection time

	P50, P95, P99, Max time.Duration

	// Latencies holds one entry per selection, in microseconds, in sweep
	// order. SpeedupConfidence consumes these.
	Latencies []float64
}

// speedupMargins are the relative margins reported after each sweep.
var speedupMargins = []float64{0.0, 0.05, 0.25}

const bootstrapReps = 2000

// Run executes every cell of the workload grid and returns one Result per
// (universe, sweep, strategy) combination, in grid order. After each sweep
// it logs the bootstrap confidence that the unique strategy outran every
// baseline sharing the sweep.
func Run(ctx context.Context, w *Workload) ([]Result, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	slog.Info("Starting benchmark run",
		slog.String("run", runID),
		slog.Uint64("seed", uint64(w.Seed)),
		slog.Bool("check", w.Check),
		slog.Int64("clockResolutionNs", ClockResolution()))

	start := time.Now()
	var results []Result
	for _, spec := range w.Runs {
		for _, sweep := range spec.Sweeps {
			counts := sweep.Counts(spec.Universe)
			cell := make([]Result, 0, len(spec.Algorithms))
			for _, name := range spec.Algorithms {
				r, err := runCell(ctx, w, spec.Universe, sweep, counts, name)
				if err != nil {
					return nil, errors.Wrapf(err, "universe %d sweep %q strategy %s", spec.Universe, sweep.Name, name)
				}
				cell = append(cell, *r)
			}
			reportSpeedups(cell, uint64(w.Seed))
			results = append(results, cell...)
		}
	}
	slog.Info("Benchmark run complete",
		slog.String("run", runID),
		slog.Int("cells", len(results)),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}

func runCell(ctx context.Context, w *Workload, universe uint64, sweep Sweep, counts []int, name string) (*Result, error) {
	choose, err := uniqseq.ChooserFor(name)
	if err != nil {
		return nil, err
	}
	q := quantile.NewTargeted(0.50, 0.95, 0.99, 0.999, 1.0)
	r := &Result{Universe: universe, Sweep: sweep.Name, Strategy: name}
	max := uint32(universe) // universe <= MaxSelectablePrime after validate
	for _, count := range counts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		begin := Now()
		seq, err := choose(count, max, w.Seed)
		elapsed := Since(begin)
		if err != nil {
			return nil, err
		}
		if w.Check {
			if err := uniqseq.Check(seq); err != nil {
				return nil, errors.Wrapf(err, "count %d", count)
			}
		}
		micros := float64(elapsed.Nanoseconds()) / 1000.0
		q.Insert(micros)
		r.Latencies = append(r.Latencies, micros)
		r.Total += elapsed
		r.Samples++
	}
	if r.Samples > 0 {
		r.P50 = microsToDuration(q.Query(0.50))
		r.P95 = microsToDuration(q.Query(0.95))
		r.P99 = microsToDuration(q.Query(0.99))
		r.Max = microsToDuration(q.Query(1.0))
	}
	slog.Info(fmt.Sprintf("Cell done - %-8s universe %10d sweep %-6s: %3d selections in %12v, latency µs: 50%% %9.1f - 95%% %9.1f - 99%% %9.1f - max %9.1f",
		name, universe, sweep.Name, r.Samples, r.Total,
		q.Query(0.50), q.Query(0.95), q.Query(0.99), q.Query(1.0)))
	return r, nil
}

func microsToDuration(us float64) time.Duration {
	return time.Duration(us * float64(time.Microsecond))
}

// reportSpeedups logs, for each baseline sharing the sweep, the confidence
// that the unique strategy was faster by the standard margins.
func reportSpeedups(cell []Result, seed uint64) {
	var unique *Result
	for i := range cell {
		if cell[i].Strategy == uniqseq.StrategyUnique {
			unique = &cell[i]
		}
	}
	if unique == nil || len(unique.Latencies) < minConfidenceSamples {
		return
	}
	for i := range cell {
		base := &cell[i]
		if base.Strategy == uniqseq.StrategyUnique || len(base.Latencies) < minConfidenceSamples {
			continue
		}
		conf := SpeedupConfidence(unique.Latencies, base.Latencies, speedupMargins, bootstrapReps, seed)
		slog.Info("Speedup confidence",
			slog.Uint64("universe", unique.Universe),
			slog.String("sweep", unique.Sweep),
			slog.String("baseline", base.Strategy),
			slog.Float64("pFaster", conf[0.0]),
			slog.Float64("pFaster5", conf[0.05]),
			slog.Float64("pFaster25", conf[0.25]))
	}
}
