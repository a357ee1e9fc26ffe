package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	month string
	width int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the units bought and sold each month" }
func (*chartCmd) Usage() string {
	return `dash chart [-m <month>] [-w <width>]

  Displays a bar chart of the units purchased and sold each month, up to the
  month. Without -m, the selected month is used.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Last month of the chart. Defaults to the selected month.")
	f.IntVar(&c.width, "w", renderer.DefaultChartWidth, "Width of the longest bar.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, pref, status := loadDataAndPreference()
	if status != subcommands.ExitSuccess {
		return status
	}
	month := c.month
	if month == "" {
		var err error
		if month, err = pref.LoadFrom(ctx, data.Months()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	res, err := dashboard.ComputeSummary(data, month)
	if err != nil {
		return reportError(err)
	}
	fmt.Fprint(out, renderer.ChartText(res.Chart, c.width))
	return subcommands.ExitSuccess
}
