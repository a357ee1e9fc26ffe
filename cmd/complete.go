package cmd

import (
	"os"
	"strings"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the dash command. Install it
// with COMP_INSTALL=1 dash.
func Completion() *complete.Command {
	global := map[string]complete.Predictor{
		"data":     predict.Files("*.json*"),
		"prefs":    predict.Set{"memory", "file:", "redis://"},
		"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		"v":        predict.Nothing,
	}
	month := complete.PredictFunc(completionMonths)
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"summary": {Flags: map[string]complete.Predictor{
				"m":        month,
				"json":     predict.Nothing,
				"q":        predict.Set{"$.summary", "$.summary.profitLoss.amount", "$.summary.holdings", "$.transactions", "$.chart"},
				"raw":      predict.Nothing,
				"holdings": predict.Nothing,
			}},
			"chart": {Flags: map[string]complete.Predictor{
				"m": month,
				"w": predict.Something,
			}},
			"months":   {},
			"select":   {Args: month},
			"validate": {},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(append(topics, "readme", "*")),
			},
		},
	}
}

// completionMonths predicts the months of the data file. It runs only when
// completing, so the data file given by -data on the line being completed is
// used.
func completionMonths(_ string) []string {
	filename := dataFlagIn(os.Getenv("COMP_LINE"))
	if filename == "" {
		filename = os.Getenv("DASH_DATA_FILE")
	}
	data := dashboard.SampleData()
	if filename != "" {
		var err error
		if data, err = dashboard.LoadFile(filename, os.Getenv("DASH_CURRENCY")); err != nil {
			return nil
		}
	}
	return data.Months()
}

// dataFlagIn returns the value of the -data flag in a command line.
func dataFlagIn(line string) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		name, value, hasValue := strings.Cut(strings.TrimLeft(f, "-"), "=")
		if !strings.HasPrefix(f, "-") || name != "data" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}
