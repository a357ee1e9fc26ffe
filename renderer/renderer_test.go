package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/dashboard"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parse parses a markdown document with tables enabled.
func parse(t *testing.T, doc string) ast.Node {
	t.Helper()
	p := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	return p.Parse(text.NewReader([]byte(doc)))
}

// headings returns the text of all headings of the given level.
func headings(t *testing.T, doc string, level int) []string {
	t.Helper()
	var titles []string
	source := []byte(doc)
	ast.Walk(parse(t, doc), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == level {
			titles = append(titles, string(h.Lines().Value(source)))
		}
		return ast.WalkContinue, nil
	})
	return titles
}

// tableRows counts the body rows of all tables.
func tableRows(t *testing.T, doc string) int {
	t.Helper()
	count := 0
	ast.Walk(parse(t, doc), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*east.TableRow); ok && entering {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}

func sampleResult(t *testing.T, cutoff string) *dashboard.Result {
	t.Helper()
	res, err := dashboard.ComputeSummary(dashboard.SampleData(), cutoff)
	if err != nil {
		t.Fatalf("ComputeSummary(%q) unexpected error: %v", cutoff, err)
	}
	return res
}

func TestSummaryMarkdown(t *testing.T) {
	doc := SummaryMarkdown(sampleResult(t, "February"), RenderOptions{})

	if got := headings(t, doc, 1); len(got) != 1 || got[0] != "Summary for February" {
		t.Errorf("SummaryMarkdown() H1 = %q, want [\"Summary for February\"]", got)
	}
	want := []string{"Transactions", "Units Purchased and Sold"}
	if got := headings(t, doc, 2); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("SummaryMarkdown() H2 = %q, want %q", got, want)
	}
	if got := tableRows(t, doc); got != 4 {
		t.Errorf("SummaryMarkdown() table rows = %d, want 4", got)
	}
	for _, want := range []string{
		"Error: Insufficient Shares",
		"TSLA",
		"AMZN",
		"Shares Remaining:",
		"AAPL: 20",
		"GOOGL: 3",
		"MSFT: 8",
		"January",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, doc)
		}
	}
}

func TestSummaryMarkdown_Skip(t *testing.T) {
	doc := SummaryMarkdown(sampleResult(t, "January"), RenderOptions{SkipTransactions: true, SkipChart: true})
	if got := headings(t, doc, 2); len(got) != 0 {
		t.Errorf("SummaryMarkdown() H2 = %q, want none", got)
	}
	if got := tableRows(t, doc); got != 0 {
		t.Errorf("SummaryMarkdown() table rows = %d, want 0", got)
	}
}

func TestSummaryMarkdown_NoTransactions(t *testing.T) {
	set := dashboard.NewMonthlyTransactionSet("USD")
	set.Append("January")
	res, err := dashboard.ComputeSummary(set, "January")
	if err != nil {
		t.Fatalf("ComputeSummary() unexpected error: %v", err)
	}
	doc := SummaryMarkdown(res, RenderOptions{})
	if !strings.Contains(doc, "No transactions this month.") {
		t.Errorf("SummaryMarkdown() missing empty month notice in:\n%s", doc)
	}
	if !strings.Contains(doc, "Shares Remaining:** -") {
		t.Errorf("SummaryMarkdown() missing empty holdings in:\n%s", doc)
	}
}

func TestTransactionsTable(t *testing.T) {
	table := TransactionsTable(sampleResult(t, "January"))
	if len(table.Header) != 8 {
		t.Fatalf("TransactionsTable() header has %d columns, want 8", len(table.Header))
	}
	if len(table.Rows) != 4 {
		t.Fatalf("TransactionsTable() has %d rows, want 4", len(table.Rows))
	}

	buy := table.Rows[0]
	if buy[2] != "BUY" || buy[5] != none || buy[7] != none {
		t.Errorf("buy row = %q, want no selling price and no profit", buy)
	}
	if buy[4] != "$150.00" || buy[6] != "$1,500.00" {
		t.Errorf("buy row = %q, want purchase price $150.00 and total $1,500.00", buy)
	}

	sell := table.Rows[2]
	if sell[2] != "SELL" || sell[4] != none {
		t.Errorf("sell row = %q, want no purchase price", sell)
	}
	if sell[5] != "$155.00" || sell[7] != "+$25.00" {
		t.Errorf("sell row = %q, want selling price $155.00 and profit +$25.00", sell)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	doc := HoldingsMarkdown(sampleResult(t, "January"))
	if got := tableRows(t, doc); got != 3 {
		t.Errorf("HoldingsMarkdown() table rows = %d, want 3", got)
	}
	if !strings.Contains(doc, "$14,000.00") {
		t.Errorf("HoldingsMarkdown() missing GOOGL cost basis in:\n%s", doc)
	}
}

func TestChartText(t *testing.T) {
	points := []dashboard.ChartPoint{
		{Month: "January", Purchased: dashboard.Q(20), Sold: dashboard.Q(5)},
		{Month: "February", Purchased: dashboard.Q(0), Sold: dashboard.Q(10)},
	}
	got := ChartText(points, 10)
	lines := strings.Split(got, "\n")

	if n := strings.Count(lines[0], string(purchasedBar)); n != 10 {
		t.Errorf("January purchased bar = %d, want 10", n)
	}
	if n := strings.Count(lines[1], string(soldBar)); n != 2 {
		t.Errorf("January sold bar = %d, want 2", n)
	}
	if n := strings.Count(lines[2], string(purchasedBar)); n != 0 {
		t.Errorf("February purchased bar = %d, want 0", n)
	}
	if n := strings.Count(lines[3], string(soldBar)); n != 5 {
		t.Errorf("February sold bar = %d, want 5", n)
	}
	if !strings.HasPrefix(lines[2], "February") {
		t.Errorf("line %q does not start with the month", lines[2])
	}
}

func TestChartText_Empty(t *testing.T) {
	got := ChartText(nil, 0)
	if strings.Count(got, "\n") != 2 {
		t.Errorf("ChartText(nil) = %q, want legend only", got)
	}
}
