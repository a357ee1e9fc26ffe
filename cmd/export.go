package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/dashboard"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the data as a JSONL ledger" }
func (*exportCmd) Usage() string {
	return `dash export [-o <file>]

  Writes every transaction, one JSON object per line, with its month.
  The output can be read back with -data.

Usage Examples:
# Start a ledger from the sample data.
$ dash export -o ledger.jsonl

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = out
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := dashboard.EncodeLedger(w, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
