package cmd

import (
	"fmt"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [SLUG]",
	Short: "October to November change per category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	if err := checkFormat(cli.Formats...); err != nil {
		return err
	}
	loadSettings()

	all := pipeline.CategoryMetrics(dataset.Categories())
	shares := make(map[string]float64, len(all))
	for i, share := range pipeline.CategoryShares(all) {
		shares[all[i].Slug] = share
	}

	cats := all
	if len(args) == 1 {
		c, err := pipeline.FindCategory(cats, args[0])
		if err != nil {
			return err
		}
		cats = []model.CategoryMetric{c}
	}

	out := cmd.OutOrStdout()
	if flagFormat != cli.FormatTable {
		return cli.WriteCategories(out, cats, flagFormat)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, categoryTable(cats))

	// bars are scaled against every category so a single slug keeps its proportion
	maxAbs := pipeline.MaxAbsChange(all)
	fmt.Fprintln(out)
	for _, c := range cats {
		fmt.Fprintf(out, "  %-24s %7s %4.0f%%  %s\n",
			c.Slug, c.Metric.Delta, shares[c.Slug]*100, cli.RenderChangeBar(c.ChangePct, maxAbs, 20))
	}
	fmt.Fprintln(out)
	return nil
}
