package dashboard

import (
	"iter"
	"slices"
)

// MonthlyTransactionSet holds transactions grouped by month.
//
// Months are kept in insertion order, which must be the calendar order: all
// cumulative figures are computed by scanning months in that order.
type MonthlyTransactionSet struct {
	cur    string                   // the reporting currency.
	months []string                 // month names in insertion order.
	txs    map[string][]Transaction // transactions of each month, in order.
}

// NewMonthlyTransactionSet creates an empty set reporting in currency, or in
// DefaultCurrency if currency is empty.
func NewMonthlyTransactionSet(currency string) *MonthlyTransactionSet {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &MonthlyTransactionSet{
		cur: currency,
		txs: make(map[string][]Transaction),
	}
}

// Currency returns the reporting currency of the set.
func (s *MonthlyTransactionSet) Currency() string { return s.cur }

// Append adds transactions at the end of month. A month seen for the first
// time is added after all the known months.
func (s *MonthlyTransactionSet) Append(month string, txs ...Transaction) {
	if _, exists := s.txs[month]; !exists {
		s.months = append(s.months, month)
		s.txs[month] = make([]Transaction, 0, len(txs))
	}
	s.txs[month] = append(s.txs[month], txs...)
}

// Has reports whether month is part of the set.
func (s *MonthlyTransactionSet) Has(month string) bool {
	_, exists := s.txs[month]
	return exists
}

// Len returns the number of months.
func (s *MonthlyTransactionSet) Len() int { return len(s.months) }

// Months returns the month names in order.
func (s *MonthlyTransactionSet) Months() []string { return slices.Clone(s.months) }

// Transactions returns a copy of the transactions of month.
func (s *MonthlyTransactionSet) Transactions(month string) []Transaction {
	return slices.Clone(s.txs[month])
}

// All iterates over months in order with their transactions.
// The yielded slices must not be modified.
func (s *MonthlyTransactionSet) All() iter.Seq2[string, []Transaction] {
	return func(yield func(string, []Transaction) bool) {
		for _, month := range s.months {
			if !yield(month, s.txs[month]) {
				return
			}
		}
	}
}
