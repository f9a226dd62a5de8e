package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniqseq/uniqseq"
)

func TestVerify_CoversUniverses(t *testing.T) {
	// 10007 is itself a prime congruent 3 mod 4, where the period is the
	// universe rather than universe+1
	err := Verify(context.Background(), []uint64{100, 1000, 4096, 10007, 100000}, 11, 2)
	assert.NoError(t, err)
}

func TestVerify_SerialAndParallelAgree(t *testing.T) {
	assert.NoError(t, Verify(context.Background(), []uint64{777, 778}, 5, 1))
	assert.NoError(t, Verify(context.Background(), []uint64{777, 778}, 5, 8))
}

func TestVerify_ZeroUniverseInvalid(t *testing.T) {
	err := Verify(context.Background(), []uint64{1000, 0}, 1, 2)
	assert.ErrorIs(t, err, uniqseq.ErrInvalidRange)
}

func TestVerify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Verify(ctx, []uint64{50_000_000}, 1, 1)
	assert.Error(t, err)
}
