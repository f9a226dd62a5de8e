package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniqseq/uniqseq"
)

func TestDefaultWorkload(t *testing.T) {
	w := Default()
	assert.NoError(t, w.validate())
	assert.Len(t, w.Runs, 4)
	assert.Equal(t, uint32(1), w.Seed)

	huge := w.Runs[3]
	assert.EqualValues(t, 1_000_000_000, huge.Universe)
	assert.NotContains(t, huge.Algorithms, uniqseq.StrategyNaive)
	assert.Contains(t, huge.Algorithms, uniqseq.StrategyUnique)
}

func TestSweepCounts(t *testing.T) {
	small := Sweep{Name: "small", Start: 0.01, End: 0.1, Step: 0.001}
	counts := small.Counts(1000)
	assert.Len(t, counts, 90)
	assert.Equal(t, 10, counts[0])
	assert.Equal(t, 99, counts[len(counts)-1])

	full := Sweep{Name: "full", Start: 0.05, End: 1.0, Step: 0.5}
	assert.Equal(t, []int{50, 550}, full.Counts(1000))

	// the end of the band is exclusive
	edge := Sweep{Name: "edge", Start: 0.5, End: 0.5, Step: 0.1}
	assert.Empty(t, edge.Counts(1000))
}

func TestLoadWorkload(t *testing.T) {
	w, err := Load("testdata/workload.yaml")
	assert.NoError(t, err)
	assert.Equal(t, uint32(7), w.Seed)
	assert.True(t, w.Check)
	assert.Len(t, w.Runs, 1)

	r := w.Runs[0]
	assert.EqualValues(t, 500, r.Universe)
	assert.Equal(t, []string{"unique", "bitfield"}, r.Algorithms)
	assert.Equal(t, []Sweep{{Name: "tiny", Start: 0.1, End: 0.3, Step: 0.1}}, r.Sweeps)
}

func TestLoadWorkload_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestWorkloadValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Workload)
	}{
		{"no runs", func(w *Workload) { w.Runs = nil }},
		{"zero universe", func(w *Workload) { w.Runs[0].Universe = 0 }},
		{"universe above cap", func(w *Workload) { w.Runs[0].Universe = uint64(uniqseq.MaxSelectablePrime) + 1 }},
		{"unknown strategy", func(w *Workload) { w.Runs[0].Algorithms = []string{"quadratic"} }},
		{"no algorithms", func(w *Workload) { w.Runs[0].Algorithms = nil }},
		{"no sweeps", func(w *Workload) { w.Runs[0].Sweeps = nil }},
		{"zero step", func(w *Workload) { w.Runs[0].Sweeps[0].Step = 0 }},
		{"inverted band", func(w *Workload) { w.Runs[0].Sweeps[0] = Sweep{Name: "x", Start: 0.9, End: 0.1, Step: 0.1} }},
		{"band above 1", func(w *Workload) { w.Runs[0].Sweeps[0].End = 1.5 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := Default()
			c.mutate(w)
			assert.Error(t, w.validate())
		})
	}
}
