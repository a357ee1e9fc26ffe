package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dashboard"
)

// DefaultChartWidth is the width of the longest bar in ChartText.
const DefaultChartWidth = 40

const (
	purchasedBar = '█'
	soldBar      = '░'
)

// ChartText renders the chart series as a horizontal bar chart, two bars per
// month. Bars are scaled so that the largest value is width characters long.
func ChartText(points []dashboard.ChartPoint, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}
	var top float64
	label := len("purchased")
	for _, p := range points {
		top = max(top, p.Purchased.Decimal().InexactFloat64(), p.Sold.Decimal().InexactFloat64())
		label = max(label, len(p.Month))
	}

	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, "%-*s  %s %s\n", label, p.Month, bar(purchasedBar, p.Purchased, top, width), p.Purchased)
		fmt.Fprintf(&b, "%-*s  %s %s\n", label, "", bar(soldBar, p.Sold, top, width), p.Sold)
	}
	fmt.Fprintf(&b, "\n%c purchased  %c sold\n", purchasedBar, soldBar)
	return b.String()
}

// bar returns a bar for v, at least one character long when v is not zero.
func bar(r rune, v dashboard.Quantity, top float64, width int) string {
	if top == 0 || v.IsZero() {
		return ""
	}
	n := int(v.Decimal().InexactFloat64() / top * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat(string(r), n)
}
