package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TxType identifies the side of a transaction.
type TxType string

// Transaction types.
const (
	Buy  TxType = "BUY"
	Sell TxType = "SELL"
)

// ParseTxType parses a transaction type, case insensitive.
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Buy, Sell:
		return t, nil
	default:
		return TxType(s), fmt.Errorf("%w: unknown transaction type %q", ErrInvalidTransaction, s)
	}
}

// Transaction is a single buy or sell of a quantity of a security at a unit
// price. Transactions are immutable inputs to the accounting engine.
type Transaction struct {
	Date     string   // Date is the transaction date, as provided by the data source.
	Symbol   string   // Symbol is the ticker of the security.
	Type     TxType   // Type is either Buy or Sell.
	Quantity Quantity // Quantity is the number of units, strictly positive.
	Price    Money    // Price is the unit price, never negative.
}

// NewBuy creates a new Buy transaction.
func NewBuy(date, symbol string, quantity Quantity, price Money) Transaction {
	return Transaction{Date: date, Symbol: symbol, Type: Buy, Quantity: quantity, Price: price}
}

// NewSell creates a new Sell transaction.
func NewSell(date, symbol string, quantity Quantity, price Money) Transaction {
	return Transaction{Date: date, Symbol: symbol, Type: Sell, Quantity: quantity, Price: price}
}

// Total returns quantity × price.
func (t Transaction) Total() Money { return t.Price.Mul(t.Quantity) }

// Validate checks the transaction fields and returns every failure found,
// each wrapping ErrInvalidTransaction.
func (t Transaction) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Date) == "" {
		errs = append(errs, fmt.Errorf("%w: date is missing", ErrInvalidTransaction))
	}
	if strings.TrimSpace(t.Symbol) == "" {
		errs = append(errs, fmt.Errorf("%w: symbol is missing", ErrInvalidTransaction))
	}
	if t.Type != Buy && t.Type != Sell {
		// only decoding normalizes the type, use ParseTxType for user input.
		errs = append(errs, fmt.Errorf("%w: transaction type %q, want %q or %q", ErrInvalidTransaction, t.Type, Buy, Sell))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidTransaction, t.Quantity))
	}
	if t.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidTransaction, t.Price.Decimal()))
	}
	return errors.Join(errs...)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// The price is written as a bare number, the currency only when set.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Append("type", t.Type)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Decimal())
	w.Optional("currency", t.Price.Currency())
	return w.MarshalJSON()
}

// jtransaction is the persisted form of a transaction.
type jtransaction struct {
	Date     string           `json:"date"`
	Symbol   string           `json:"symbol"`
	Type     string           `json:"type"`
	Quantity *decimal.Decimal `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
	Currency string           `json:"currency"`
}

func (j jtransaction) transaction() (Transaction, error) {
	t := Transaction{Date: j.Date, Symbol: j.Symbol, Type: TxType(j.Type)}
	if typ, err := ParseTxType(j.Type); err == nil {
		t.Type = typ
	}
	switch {
	case j.Quantity == nil:
		return t, fmt.Errorf("%w: quantity is missing", ErrInvalidTransaction)
	case j.Price == nil:
		return t, fmt.Errorf("%w: price is missing", ErrInvalidTransaction)
	}
	t.Quantity = Q(*j.Quantity)
	t.Price = M(*j.Price, j.Currency)
	return t, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Only missing numbers are rejected here, other problems are reported by
// Validate so that all the problems of a data set can be listed at once.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j jtransaction
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	tx, err := j.transaction()
	if err != nil {
		return err
	}
	*t = tx
	return nil
}
