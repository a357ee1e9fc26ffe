package dashboard

// accountant folds transactions into running totals. It is owned by a single
// ComputeSummary call and discarded when it returns.
type accountant struct {
	cur       string
	lots      *lots
	cash      Money
	purchased Money
	sold      Money
	profit    Money

	// units traded during the current month.
	monthPurchased Quantity
	monthSold      Quantity
}

func newAccountant(currency string) *accountant {
	zero := M(0, currency)
	return &accountant{
		cur:       currency,
		lots:      newLots(),
		cash:      zero,
		purchased: zero,
		sold:      zero,
		profit:    zero,
	}
}

// startMonth resets the monthly unit counters.
func (a *accountant) startMonth() {
	a.monthPurchased, a.monthSold = Q(0), Q(0)
}

// apply folds tx into the totals and returns it annotated with its outcome.
func (a *accountant) apply(tx Transaction) AnnotatedTransaction {
	row := AnnotatedTransaction{Transaction: tx}
	price := tx.Price.In(a.cur)
	total := price.Mul(tx.Quantity)

	switch tx.Type {
	case Buy:
		a.lots.acquire(tx.Symbol, a.cur).buy(tx.Quantity, total)
		a.cash = a.cash.Sub(total)
		a.purchased = a.purchased.Add(total)
		a.monthPurchased = a.monthPurchased.Add(tx.Quantity)

	case Sell:
		l := a.lots.get(tx.Symbol)
		if l == nil || l.quantity.LessThan(tx.Quantity) {
			row.Error = InsufficientShares
			return row
		}
		costOfSale := l.sell(tx.Quantity)
		profit := total.Sub(costOfSale)
		a.cash = a.cash.Add(total)
		a.sold = a.sold.Add(total)
		a.profit = a.profit.Add(profit)
		a.monthSold = a.monthSold.Add(tx.Quantity)
		row.Profit = &profit
	}
	return row
}

// summary returns the totals accumulated so far.
func (a *accountant) summary() Summary {
	return Summary{
		CashDelta:         a.cash,
		AmountPurchased:   a.purchased,
		AmountSold:        a.sold,
		ProfitLoss:        a.profit,
		RemainingInShares: a.purchased.Sub(a.sold),
		Holdings:          a.lots.holdings(),
	}
}

// ComputeSummary computes the state of the portfolio at the end of the cutoff
// month.
//
// Months are scanned in the set order up to and including cutoff; later
// months are ignored. Sells are valued at the weighted average cost of the
// units held at the time of the sale. A sell of more units than held is
// annotated with InsufficientShares and has no other effect.
//
// The whole set is validated first: any malformed transaction, or a cutoff
// that is not a month of the set, rejects the call with a *ValidationError.
//
// ComputeSummary does not modify set and keeps no state between calls.
func ComputeSummary(set *MonthlyTransactionSet, cutoff string) (*Result, error) {
	if err := Validate(set, cutoff); err != nil {
		return nil, err
	}

	a := newAccountant(set.Currency())
	result := &Result{
		Month:    cutoff,
		Currency: set.Currency(),
	}

	for month, txs := range set.All() {
		a.startMonth()
		rows := make([]AnnotatedTransaction, 0, len(txs))
		for _, tx := range txs {
			rows = append(rows, a.apply(tx))
		}
		result.Chart = append(result.Chart, ChartPoint{Month: month, Purchased: a.monthPurchased, Sold: a.monthSold})

		if month == cutoff {
			result.Transactions = rows
			break
		}
	}

	result.Summary = a.summary()
	return result, nil
}
