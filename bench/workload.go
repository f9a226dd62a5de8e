package bench

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/uniqseq/uniqseq"
)

// Sweep describes a band of selection sizes as fractions of the universe.
// Counts run from Start*universe up to but excluding End*universe in steps
// of Step*universe.
type Sweep struct {
	Name  string  `yaml:"name"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// Counts materializes the selection sizes of the sweep for one universe.
// Fractions are truncated to whole counts.
func (s Sweep) Counts(universe uint64) []int {
	start := int(float64(universe) * s.Start)
	end := int(float64(universe) * s.End)
	inc := int(float64(universe) * s.Step)
	if inc <= 0 {
		inc = 1
	}
	var out []int
	for count := start; count < end; count += inc {
		out = append(out, count)
	}
	return out
}

// RunSpec pairs one universe with the strategies and count sweeps to run on
// it. Universe is the largest selectable value; selections draw from
// [0, Universe] inclusive.
type RunSpec struct {
	Universe   uint64   `yaml:"universe"`
	Algorithms []string `yaml:"algorithms"`
	Sweeps     []Sweep  `yaml:"sweeps"`
}

// Workload is a full benchmark grid. Check re-validates every produced
// sequence for duplicates, which slows a run down considerably.
type Workload struct {
	Seed  uint32    `yaml:"seed"`
	Check bool      `yaml:"check"`
	Runs  []RunSpec `yaml:"runs"`
}

// Load reads and validates a workload from a YAML file.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read workload")
	}
	w := &Workload{}
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, errors.Wrap(err, "parse workload")
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workload) validate() error {
	if len(w.Runs) == 0 {
		return errors.New("workload has no runs")
	}
	for i, r := range w.Runs {
		if r.Universe < 1 || r.Universe > uint64(uniqseq.MaxSelectablePrime) {
			return errors.Errorf("run %d: universe %d outside [1, %d]", i, r.Universe, uniqseq.MaxSelectablePrime)
		}
		if len(r.Algorithms) == 0 {
			return errors.Errorf("run %d: no algorithms", i)
		}
		for _, name := range r.Algorithms {
			if _, err := uniqseq.ChooserFor(name); err != nil {
				return errors.Wrapf(err, "run %d", i)
			}
		}
		if len(r.Sweeps) == 0 {
			return errors.Errorf("run %d: no sweeps", i)
		}
		for _, s := range r.Sweeps {
			if s.Start < 0 || s.End > 1 || s.Start > s.End || s.Step <= 0 {
				return errors.Errorf("run %d: malformed sweep %q", i, s.Name)
			}
		}
	}
	return nil
}

// Default returns the built-in grid: universes of 1000, 10000 and 100000
// crossed with four fractional count sweeps for every strategy, plus a
// billion-value universe that leaves out the quadratic baseline.
func Default() *Workload {
	sweeps := []Sweep{
		{Name: "small", Start: 0.01, End: 0.1, Step: 0.001},
		{Name: "medium", Start: 0.4, End: 0.6, Step: 0.1},
		{Name: "high", Start: 0.8, End: 1.0, Step: 0.1},
		{Name: "full", Start: 0.05, End: 1.0, Step: 0.5},
	}
	all := []string{
		uniqseq.StrategyUnique,
		uniqseq.StrategyBitfield,
		uniqseq.StrategySet,
		uniqseq.StrategyNaive,
	}
	w := &Workload{Seed: 1}
	for _, u := range []uint64{1000, 10000, 100000} {
		w.Runs = append(w.Runs, RunSpec{Universe: u, Algorithms: all, Sweeps: sweeps})
	}
	w.Runs = append(w.Runs, RunSpec{
		Universe:   1_000_000_000,
		Algorithms: []string{uniqseq.StrategyUnique, uniqseq.StrategyBitfield},
		Sweeps:     []Sweep{{Name: "full", Start: 0.05, End: 1.0, Step: 0.5}},
	})
	return w
}
