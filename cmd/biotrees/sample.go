package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/relab/biotrees/newick"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw random shapes as if every leaf-labeled tree were equally likely",
	Long: `sample draws shapes with a fixed number of leaves, each with probability
proportional to its number of distinct leaf labelings, and prints them in
Newick format, one per line.`,
	Example: `  biotrees sample -n 12 --count 5 --seed 7`,
	Args:    cobra.NoArgs,
	RunE:    runSample,
}

func init() {
	f := sampleCmd.Flags()
	f.IntP("leaves", "n", 10, "number of leaves")
	f.Int("count", 1, "number of shapes to draw")
	f.Int64("seed", 0, "random seed (0 for a time based seed)")
	f.Bool("binary", false, "only binary shapes")
}

func runSample(cmd *cobra.Command, _ []string) error {
	n, count := viper.GetInt("leaves"), viper.GetInt("count")
	if n < 1 || count < 0 {
		return fmt.Errorf("%w: need --leaves >= 1 and --count >= 0, got %d and %d", errUsage, n, count)
	}
	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugw("sampling", "leaves", n, "count", count, "seed", seed)

	sampler, err := gen.NewSampler(n, viper.GetBool("binary"))
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(seed))
	for range count {
		if err := newick.Write(cmd.OutOrStdout(), sampler.Sample(rnd)); err != nil {
			return err
		}
	}
	return nil
}
