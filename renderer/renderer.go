// Package renderer turns dashboard results into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/dashboard"
	md "github.com/nao1215/markdown"
)

// RenderOptions holds configuration for rendering a summary.
type RenderOptions struct {
	SkipTransactions bool // Do not render the transactions table.
	SkipChart        bool // Do not render the chart.
	ChartWidth       int  // Width of the longest bar, DefaultChartWidth if zero.
}

// SummaryMarkdown renders the summary, the transactions of the cutoff month
// and the monthly chart.
func SummaryMarkdown(res *dashboard.Result, opts RenderOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", res.Month))

	s := res.Summary
	doc.BulletList(
		fmt.Sprintf("%s %s", md.Bold("Amount Purchased:"), s.AmountPurchased),
		fmt.Sprintf("%s %s", md.Bold("Amount Sold:"), s.AmountSold),
		fmt.Sprintf("%s %s", md.Bold("Profit/Loss:"), s.ProfitLoss),
		fmt.Sprintf("%s %s", md.Bold("Cash:"), s.CashDelta),
		fmt.Sprintf("%s %s", md.Bold("Amount Remaining in Shares:"), s.RemainingInShares),
		fmt.Sprintf("%s %s", md.Bold("Shares Remaining:"), sharesRemaining(s.Holdings)),
	)

	if !opts.SkipTransactions {
		doc.H2("Transactions")
		if len(res.Transactions) == 0 {
			doc.PlainText("No transactions this month.")
		} else {
			doc.Table(TransactionsTable(res))
		}
	}

	if !opts.SkipChart {
		doc.H2("Units Purchased and Sold")
		doc.CodeBlocks(md.SyntaxHighlight("text"), ChartText(res.Chart, opts.ChartWidth))
	}

	return doc.String()
}

// TransactionsTable returns the table of the cutoff month's transactions.
func TransactionsTable(res *dashboard.Result) md.TableSet {
	table := md.TableSet{
		Header: []string{"Date", "Symbol", "Type", "Quantity", "Purchase Price", "Selling Price", "Total", "Profit/Loss"},
		Rows:   make([][]string, 0, len(res.Transactions)),
	}
	for _, row := range res.Transactions {
		price := row.Price.In(res.Currency)
		purchase, selling := price.String(), price.String()
		if row.Type == dashboard.Buy {
			selling = none
		} else {
			purchase = none
		}
		table.Rows = append(table.Rows, []string{
			row.Date,
			row.Symbol,
			string(row.Type),
			row.Quantity.String(),
			purchase,
			selling,
			price.Mul(row.Quantity).String(),
			profitCell(row),
		})
	}
	return table
}

// HoldingsMarkdown renders the securities still held with their cost basis.
func HoldingsMarkdown(res *dashboard.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Holdings at the end of %s", res.Month))
	if len(res.Summary.Holdings) == 0 {
		doc.PlainText("No shares held.")
		return doc.String()
	}
	table := md.TableSet{Header: []string{"Symbol", "Quantity", "Average Cost", "Cost Basis"}}
	for _, h := range res.Summary.Holdings {
		table.Rows = append(table.Rows, []string{h.Symbol, h.Quantity.String(), h.AverageCost().String(), h.CostBasis.String()})
	}
	doc.Table(table)
	return doc.String()
}

// sharesRemaining lists holdings as "AAPL: 5, MSFT: 8".
func sharesRemaining(holdings []dashboard.Holding) string {
	if len(holdings) == 0 {
		return none
	}
	parts := make([]string, len(holdings))
	for i, h := range holdings {
		parts[i] = fmt.Sprintf("%s: %s", h.Symbol, h.Quantity)
	}
	return strings.Join(parts, ", ")
}
