package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month    string
	json     bool
	query    string
	raw      bool
	holdings bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary up to a month" }
func (*summaryCmd) Usage() string {
	return `dash summary [-m <month>] [-json] [-q <jsonpath>] [-raw] [-holdings]

  Displays the cumulative summary of all transactions up to the end of the
  month, the transactions of the month and the units bought and sold each
  month. Without -m, the selected month is used.

Usage Examples:
# Profit or loss at the end of February.
$ dash summary -m February -q '$.summary.profitLoss.amount'

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month of the summary. Defaults to the selected month.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
	f.StringVar(&c.query, "q", "", "Print only the JSON value at this JSONPath, e.g. '$.summary.holdings[0].symbol'.")
	f.BoolVar(&c.raw, "raw", false, "Print the raw markdown.")
	f.BoolVar(&c.holdings, "holdings", false, "Also print the cost basis of each holding.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := Logger(zap.WarnLevel)
	defer logger.Sync()

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
	logger.Debug("computing summary", zap.String("month", month), zap.Int("months", data.Len()))

	res, err := dashboard.ComputeSummary(data, month)
	if err != nil {
		return reportError(err)
	}

	switch {
	case c.query != "":
		v, err := query(res, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return printJSON(v)
	case c.json:
		return printJSON(res)
	}

	doc := renderer.SummaryMarkdown(res, renderer.RenderOptions{})
	if c.holdings {
		doc += "\n" + renderer.HoldingsMarkdown(res)
	}
	printMarkdown(doc, c.raw)
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression on the JSON form of v.
func query(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return jval, nil
}

func printJSON(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, string(data))
	return subcommands.ExitSuccess
}
