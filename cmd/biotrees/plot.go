package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/relab/biotrees/balance"
	"github.com/relab/biotrees/phylo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type statistic struct {
	fn         func(*phylo.Shape) float64
	binaryOnly bool
}

var statistics = map[string]statistic{
	"sackin":     {fn: func(s *phylo.Shape) float64 { return float64(balance.Sackin(s)) }},
	"cophenetic": {fn: func(s *phylo.Shape) float64 { return float64(balance.Cophenetic(s)) }},
	"qi":         {fn: func(s *phylo.Shape) float64 { return float64(balance.QuartetIndex(s, nil)) }},
	"cherries":   {fn: func(s *phylo.Shape) float64 { return float64(balance.Cherries(s)) }},
	"symmetries": {fn: func(s *phylo.Shape) float64 { return float64(balance.Symmetries(s)) }},
	"depth-mean": {fn: balance.DepthMean[phylo.Tip]},
	"depth-var":  {fn: balance.DepthVariance[phylo.Tip]},
	"colless":    {fn: func(s *phylo.Shape) float64 { return float64(balance.Colless(s)) }, binaryOnly: true},
}

func statisticNames() string {
	names := make([]string, 0, len(statistics))
	for name := range statistics {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the distribution of a statistic over all shapes",
	Long: `plot computes a statistic for every shape with the given number of leaves
and saves a histogram of the values. The image format follows the file
extension of --out (png, svg, pdf, eps, jpg or tiff).`,
	Example: `  biotrees plot -n 12 --stat sackin --out sackin.png
  biotrees plot -n 14 --binary --stat colless --out colless.svg`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	f := plotCmd.Flags()
	f.IntP("leaves", "n", 10, "number of leaves")
	f.String("stat", "sackin", "statistic to plot, one of ["+statisticNames()+"]")
	f.String("out", "histogram.png", "output file")
	f.Int("bins", 20, "number of histogram bins")
	f.Bool("binary", false, "only binary shapes")
}

func runPlot(_ *cobra.Command, _ []string) error {
	n, bins := viper.GetInt("leaves"), viper.GetInt("bins")
	name, binary := viper.GetString("stat"), viper.GetBool("binary")
	stat, ok := statistics[name]
	switch {
	case !ok:
		return fmt.Errorf("%w: unknown statistic %q, want one of [%s]", errUsage, name, statisticNames())
	case stat.binaryOnly && !binary:
		return fmt.Errorf("%w: statistic %q needs --binary", errUsage, name)
	case n < 1 || bins < 1:
		return fmt.Errorf("%w: need --leaves >= 1 and --bins >= 1, got %d and %d", errUsage, n, bins)
	}

	shapes, err := gen.AllShapes(n, binary)
	if err != nil {
		return err
	}
	values := make(plotter.Values, len(shapes))
	for i, s := range shapes {
		values[i] = stat.fn(s)
	}

	p, err := histogram(values, bins)
	if err != nil {
		return err
	}
	kind := "shapes"
	if binary {
		kind = "binary shapes"
	}
	p.Title.Text = fmt.Sprintf("%s over %d %s with %d leaves", name, len(shapes), kind, n)
	p.X.Label.Text = name
	p.Y.Label.Text = "shapes"

	out := viper.GetString("out")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return err
	}
	logger.Infow("saved histogram", "file", out, "stat", name, "shapes", len(shapes))
	return nil
}

func histogram(values plotter.Values, bins int) (*plot.Plot, error) {
	p := plot.New()
	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return nil, err
	}
	p.Add(h)
	return p, nil
}
