package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/google/subcommands"
)

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check every transaction of the data file" }
func (*validateCmd) Usage() string {
	return `dash validate

  Checks every transaction of the data and reports all the problems found.
  Selling more shares than held is not a problem: such sells are reported in
  the summary instead.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	months := data.Months()
	if len(months) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no months found.")
		return subcommands.ExitSuccess
	}
	if err := dashboard.Validate(data, months[len(months)-1]); err != nil {
		return reportError(err)
	}

	count := 0
	for _, txs := range data.All() {
		count += len(txs)
	}
	fmt.Fprintf(out, "✅ %d months, %d transactions are valid.\n", len(months), count)
	return subcommands.ExitSuccess
}
