package main

import (
	"fmt"

	"github.com/relab/biotrees/combin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the shapes for each number of leaves",
	Long: `count generates the shapes for each number of leaves and prints how many
there are next to the value of the closed-form recurrence.`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

func init() {
	f := countCmd.Flags()
	f.Int("from", 1, "smallest number of leaves")
	f.Int("to", 12, "largest number of leaves")
	f.Bool("binary", false, "only binary shapes")
}

func runCount(cmd *cobra.Command, _ []string) error {
	from, to, err := leafRange()
	if err != nil {
		return err
	}
	binary := viper.GetBool("binary")
	expected := combin.ShapeCount
	if binary {
		expected = combin.BinaryShapeCount
	}

	out := newTable(cmd.OutOrStdout())
	if err := out.header("leaves", "shapes", "expected"); err != nil {
		return err
	}
	for n := from; n <= to; n++ {
		got, err := gen.Count(n, binary)
		if err != nil {
			return err
		}
		want := expected(n)
		if uint64(got) != want {
			return fmt.Errorf("generated %d shapes with %d leaves; expected %d", got, n, want)
		}
		if err := out.row(n, got, want); err != nil {
			return err
		}
	}
	return out.flush()
}
