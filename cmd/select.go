package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "remember the month to report on" }
func (*selectCmd) Usage() string {
	return `dash select <month>

  Stores the month used by default by the summary and chart commands, and by
  the dashboard server. The month must be part of the data.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: select expects exactly one month")
		return subcommands.ExitUsageError
	}
	month := f.Arg(0)

	logger := Logger(zap.WarnLevel)
	defer logger.Sync()

	data, pref, status := loadDataAndPreference()
	if status != subcommands.ExitSuccess {
		return status
	}
	if !data.Has(month) {
		fmt.Fprintf(os.Stderr, "Error: %v: %q, want one of %q\n", dashboard.ErrUnknownMonth, month, data.Months())
		return subcommands.ExitUsageError
	}
	if err := pref.Save(ctx, month); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("month selected", zap.String("month", month), zap.String("prefs", PrefsLocation()))
	fmt.Fprintf(out, "Selected %s\n", month)
	return subcommands.ExitSuccess
}
