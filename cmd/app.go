// Package cmd implements the CLI application of the dashboard.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/prefs"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&monthsCmd{}, "reports")

	c.Register(&selectCmd{}, "preferences")

	c.Register(&validateCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&serveCmd{}, "server")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Flags left empty fall back to their environment variable, that may come from a .env file.

var dataFile = flag.String("data", "", "Path to the data file, JSON object or JSONL ledger. Defaults to $DASH_DATA_FILE, or the sample data.")
var prefsLocation = flag.String("prefs", "", "Preference store: memory, file:<path> or redis://<addr>. Defaults to $DASH_PREFS.")
var currency = flag.String("currency", "", "Reporting currency. Defaults to $DASH_CURRENCY or USD.")
var verbose = flag.Bool("v", false, "Verbose logging, also set by DASH_VERBOSE=1.")

// out is where commands print their results.
var out io.Writer = os.Stdout

func env(value *string, key string) string {
	if *value != "" {
		return *value
	}
	return os.Getenv(key)
}

// LoadData returns the data set of the -data flag, or the sample data.
func LoadData() (*dashboard.MonthlyTransactionSet, error) {
	filename := env(dataFile, "DASH_DATA_FILE")
	if filename == "" {
		return dashboard.SampleData(), nil
	}
	return dashboard.LoadFile(filename, env(currency, "DASH_CURRENCY"))
}

// PrefsLocation returns the location of the preference store.
func PrefsLocation() string {
	if loc := env(prefsLocation, "DASH_PREFS"); loc != "" {
		return loc
	}
	if addr := os.Getenv("DASH_REDIS_ADDR"); addr != "" {
		if strings.Contains(addr, "://") {
			return addr
		}
		return "redis://" + addr
	}
	return ""
}

// OpenPreference opens the preference store and returns the month
// preference kept in it.
func OpenPreference() (*prefs.MonthPreference, error) {
	store, err := prefs.Open(PrefsLocation())
	if err != nil {
		return nil, err
	}
	return prefs.NewMonthPreference(store), nil
}

// Logger returns the application logger writing on the standard error from
// level, or a development logger in verbose mode.
func Logger(level zapcore.Level) *zap.Logger {
	if *verbose || os.Getenv("DASH_VERBOSE") == "1" {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// loadDataAndPreference is the common opening of most commands.
func loadDataAndPreference() (*dashboard.MonthlyTransactionSet, *prefs.MonthPreference, subcommands.ExitStatus) {
	data, err := LoadData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	pref, err := OpenPreference()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		return nil, nil, subcommands.ExitUsageError
	}
	return data, pref, subcommands.ExitSuccess
}

// reportError prints a computation error, one line per validation problem.
func reportError(err error) subcommands.ExitStatus {
	var verr *dashboard.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %d problem(s) found:\n", len(verr.Problems))
		for _, p := range verr.Problems {
			fmt.Fprintf(os.Stderr, "  %v\n", p)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if errors.Is(err, dashboard.ErrUnknownMonth) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown prints markdown to the output, rendered for the terminal
// unless raw is set.
func printMarkdown(doc string, raw bool) {
	if raw {
		fmt.Fprint(out, doc)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(out, doc)
		return
	}
	rendered, err := r.Render(doc)
	if err != nil {
		fmt.Fprint(out, doc)
		return
	}
	fmt.Fprint(out, rendered)
}
