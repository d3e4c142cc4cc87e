package main

import (
	"fmt"

	"github.com/relab/biotrees/balance"
	"github.com/relab/biotrees/newick"
	"github.com/relab/biotrees/phylo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "List every shape in a range of leaf counts with its statistics",
	Example: `  biotrees enumerate --to 6
  biotrees enumerate --from 8 --to 8 --binary > binary8.tsv`,
	Args: cobra.NoArgs,
	RunE: runEnumerate,
}

func init() {
	f := enumerateCmd.Flags()
	f.Int("from", 1, "smallest number of leaves")
	f.Int("to", 8, "largest number of leaves")
	f.Bool("binary", false, "only binary shapes")
}

func leafRange() (from, to int, err error) {
	from, to = viper.GetInt("from"), viper.GetInt("to")
	if from < 0 || to < from {
		return 0, 0, fmt.Errorf("%w: need 0 <= --from <= --to, got %d and %d", errUsage, from, to)
	}
	return from, to, nil
}

func runEnumerate(cmd *cobra.Command, _ []string) error {
	from, to, err := leafRange()
	if err != nil {
		return err
	}
	binary := viper.GetBool("binary")

	out := newTable(cmd.OutOrStdout())
	if binary {
		err = out.header("newick", "colless", "sackin", "cophenetic", "qi", "cherries", "automorphisms")
	} else {
		err = out.header("newick", "sackin", "cophenetic", "qi", "cherries", "automorphisms")
	}
	if err != nil {
		return err
	}
	for n := from; n <= to; n++ {
		shapes, err := gen.AllShapes(n, binary)
		if err != nil {
			return err
		}
		for _, s := range shapes {
			if err := enumerateRow(out, s, binary); err != nil {
				return err
			}
		}
		logger.Infow("enumerated", "leaves", n, "binary", binary, "shapes", len(shapes))
	}
	return out.flush()
}

func enumerateRow(out *table, s *phylo.Shape, binary bool) error {
	text := newick.String(s)
	if !binary {
		return out.row(text, balance.Sackin(s), balance.Cophenetic(s), balance.QuartetIndex(s, nil),
			balance.Cherries(s), balance.BigAutomorphisms(s))
	}
	if q, bq := balance.QuartetIndex(s, balance.BinaryScores), balance.BinaryQuartetIndex(s); q != bq {
		return fmt.Errorf("quartet index of %s: general %d, binary %d", text, q, bq)
	}
	return out.row(text, balance.Colless(s), balance.Sackin(s), balance.Cophenetic(s), balance.QuartetIndex(s, nil),
		balance.Cherries(s), balance.BigAutomorphisms(s))
}
