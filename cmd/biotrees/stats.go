package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/relab/biotrees/balance"
	"github.com/relab/biotrees/newick"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [NEWICK...]",
	Short: "Compute the statistics of trees given in Newick format",
	Long: `stats prints the statistics of every tree given as an argument, or of every
line read from standard input when no argument is given. Leaf labels are
ignored; binary-only statistics are printed as "-" for other trees.`,
	Example: `  biotrees stats '((a,b),(c,d));' '(a,b,c);'
  cat trees.nwk | biotrees stats`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				args = append(args, line)
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	out := newTable(cmd.OutOrStdout())
	err := out.header("newick", "leaves", "depth", "sackin", "cophenetic", "qi", "cherries",
		"symmetries", "automorphisms", "depth_mean", "depth_var", "colless", "binary_qi", "sym_desc")
	if err != nil {
		return err
	}
	for _, arg := range args {
		s, err := newick.ParseShape(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		sum := balance.Summarize(s)
		colless, bqi, symDesc := "-", "-", "-"
		if sum.Binary {
			colless = strconv.FormatUint(sum.Colless, 10)
			bqi = strconv.FormatUint(sum.BinaryQuartet, 10)
			symDesc = strconv.FormatUint(sum.SymmetricDescendants, 10)
		}
		err = out.row(newick.String(s), sum.Leaves, sum.Depth, sum.Sackin, sum.Cophenetic, sum.Quartet,
			sum.Cherries, sum.Symmetries, sum.Automorphisms,
			strconv.FormatFloat(sum.DepthMean, 'g', 6, 64), strconv.FormatFloat(sum.DepthVariance, 'g', 6, 64),
			colless, bqi, symDesc)
		if err != nil {
			return err
		}
	}
	return out.flush()
}
