package dashboard

// Holding is the quantity of a security still held, with its cost basis.
type Holding struct {
	Symbol    string   `json:"symbol"`
	Quantity  Quantity `json:"quantity"`
	CostBasis Money    `json:"costBasis"`
}

// AverageCost returns the cost basis of one unit.
func (h Holding) AverageCost() Money { return h.CostBasis.Div(h.Quantity) }

// Summary is the state of the portfolio at the end of a month.
type Summary struct {
	CashDelta         Money     `json:"cashDelta"`         // net cash from trading, negative when more was spent than received.
	AmountPurchased   Money     `json:"amountPurchased"`   // total spent on buys.
	AmountSold        Money     `json:"amountSold"`        // total received from sells.
	ProfitLoss        Money     `json:"profitLoss"`        // realized gains, average cost basis.
	RemainingInShares Money     `json:"remainingInShares"` // AmountPurchased - AmountSold.
	Holdings          []Holding `json:"holdings"`          // securities still held, in acquisition order.
}

// Holding returns the holding of symbol, if any.
func (s Summary) Holding(symbol string) (Holding, bool) {
	for _, h := range s.Holdings {
		if h.Symbol == symbol {
			return h, true
		}
	}
	return Holding{}, false
}

// AnnotatedTransaction is a transaction with the outcome of its processing.
//
// A valid sell carries its realized Profit, an invalid one carries the Error
// marker instead. Buys carry neither.
type AnnotatedTransaction struct {
	Transaction
	Profit *Money
	Error  string
}

// MarshalJSON implements the json.Marshaler interface for AnnotatedTransaction.
func (a AnnotatedTransaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(a.Transaction)
	if a.Profit != nil {
		w.Append("profit", a.Profit.Decimal())
	}
	w.Optional("error", a.Error)
	return w.MarshalJSON()
}

// ChartPoint is the number of units bought and sold during a month.
type ChartPoint struct {
	Month     string   `json:"month"`
	Purchased Quantity `json:"purchased"`
	Sold      Quantity `json:"sold"` // only valid sells are counted.
}

// Result is the outcome of ComputeSummary for a cutoff month.
type Result struct {
	Month        string                 `json:"month"`
	Currency     string                 `json:"currency"`
	Summary      Summary                `json:"summary"`
	Transactions []AnnotatedTransaction `json:"transactions"` // the cutoff month's transactions.
	Chart        []ChartPoint           `json:"chart"`        // one point per month up to the cutoff.
}
