package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uniqseq/uniqseq/bench"
)

var (
	logLevel string

	workloadPath string
	checkValid   bool
	runSeed      uint32

	universes    []int64
	verifySeed   uint32
	verifyWorker int

	rootCmd = &cobra.Command{
		Use:               "uniqseq-bench",
		Short:             "Benchmark and verify unique-sequence selection strategies",
		PersistentPreRunE: setupLogging,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Time the selection strategies across a workload grid",
		RunE:  runBenchmark,
	}

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Prove full-period uniqueness for chosen universe sizes",
		RunE:  runVerify,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Path to workload YAML (default: built-in grid)")
	runCmd.Flags().BoolVar(&checkValid, "check", false, "Re-check every sequence for duplicates (slows the run down a lot)")
	runCmd.Flags().Uint32Var(&runSeed, "seed", 0, "Override the workload seed")

	verifyCmd.Flags().Int64SliceVar(&universes, "universe", []int64{1000, 10000, 1000000}, "Universe sizes to verify")
	verifyCmd.Flags().Uint32Var(&verifySeed, "seed", 1, "Generator seed")
	verifyCmd.Flags().IntVar(&verifyWorker, "parallel", 2, "Universes verified concurrently")

	rootCmd.AddCommand(runCmd, verifyCmd)
}

func setupLogging(*cobra.Command, []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return errors.Wrap(err, "parse log level")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	w := bench.Default()
	if workloadPath != "" {
		var err error
		if w, err = bench.Load(workloadPath); err != nil {
			return err
		}
	}
	if checkValid {
		w.Check = true
	}
	if cmd.Flags().Changed("seed") {
		w.Seed = runSeed
	}
	_, err := bench.Run(cmd.Context(), w)
	return err
}

func runVerify(cmd *cobra.Command, _ []string) error {
	us := make([]uint64, len(universes))
	for i, u := range universes {
		if u < 1 {
			return errors.Errorf("universe %d must be at least 1", u)
		}
		us[i] = uint64(u)
	}
	return bench.Verify(cmd.Context(), us, verifySeed, verifyWorker)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
