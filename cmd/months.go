package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type monthsCmd struct{}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list the months of the data" }
func (*monthsCmd) Usage() string {
	return `dash months

  Lists the months in order, the selected one is marked with a '*'.
`
}

func (c *monthsCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, pref, status := loadDataAndPreference()
	if status != subcommands.ExitSuccess {
		return status
	}
	months := data.Months()
	selected, err := pref.LoadFrom(ctx, months)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, month := range months {
		mark := " "
		if month == selected {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, month)
	}
	return subcommands.ExitSuccess
}
