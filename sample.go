package dashboard

// SampleData returns the demonstration data set, used when no data file is
// configured. It covers the first quarter and contains a sell exceeding the
// position.
func SampleData() *MonthlyTransactionSet {
	usd := func(v float64) Money { return M(v, DefaultCurrency) }
	set := NewMonthlyTransactionSet(DefaultCurrency)
	set.Append("January",
		NewBuy("2024-01-05", "AAPL", Q(10), usd(150)),
		NewBuy("2024-01-10", "GOOGL", Q(5), usd(2800)),
		NewSell("2024-01-20", "AAPL", Q(5), usd(155)),
		NewBuy("2024-01-25", "MSFT", Q(8), usd(300)),
	)
	set.Append("February",
		NewBuy("2024-02-02", "AAPL", Q(15), usd(148)),
		NewSell("2024-02-10", "GOOGL", Q(2), usd(2900)),
		NewSell("2024-02-15", "TSLA", Q(3), usd(700)),
		NewBuy("2024-02-20", "AMZN", Q(4), usd(3300)),
	)
	set.Append("March",
		NewSell("2024-03-03", "AAPL", Q(20), usd(160)),
		NewBuy("2024-03-10", "TSLA", Q(6), usd(680)),
		NewSell("2024-03-15", "MSFT", Q(8), usd(310)),
		NewSell("2024-03-25", "AMZN", Q(1), usd(3400)),
	)
	return set
}
