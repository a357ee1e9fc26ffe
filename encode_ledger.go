package dashboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes a JSONL stream where each line is a transaction with
// an additional "month" property. Months are ordered by first appearance.
func DecodeLedger(r io.Reader, currency string) (*MonthlyTransactionSet, error) {
	set := NewMonthlyTransactionSet(currency)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Month *string `json:"month"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: not a correct json: %w", line, err)
		}
		if identifier.Month == nil {
			return nil, fmt.Errorf("line %d: missing the property %q", line, "month")
		}

		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		set.Append(*identifier.Month, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return set, nil
}

// EncodeLedger writes the set as a JSONL stream readable by DecodeLedger.
func EncodeLedger(w io.Writer, set *MonthlyTransactionSet) error {
	bw := bufio.NewWriter(w)
	for month, txs := range set.All() {
		for _, tx := range txs {
			var line jsonObjectWriter
			line.Append("month", month)
			line.EmbedFrom(tx)
			b, err := line.MarshalJSON()
			if err != nil {
				return fmt.Errorf("cannot encode %s transaction on %s: %w", month, tx.Date, err)
			}
			bw.Write(b)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// DecodeMonthlyData decodes a JSON object mapping month names to arrays of
// transactions. The order of the object properties is the order of the
// months.
func DecodeMonthlyData(r io.Reader, currency string) (*MonthlyTransactionSet, error) {
	set := NewMonthlyTransactionSet(currency)
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("cannot read monthly data: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("monthly data must be a json object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("cannot read month: %w", err)
		}
		month, _ := tok.(string) // object keys are always strings.

		var txs []Transaction
		if err := dec.Decode(&txs); err != nil {
			return nil, fmt.Errorf("month %q: %w", month, err)
		}
		set.Append(month, txs...)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot read monthly data: %w", err)
	}
	return set, nil
}

// LoadFile reads a data set from a file: JSONL ledger for ".jsonl" files,
// a JSON object of months otherwise.
func LoadFile(filename, currency string) (*MonthlyTransactionSet, error) {
	if currency != "" && !KnownCurrency(currency) {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file: %w", err)
	}
	defer f.Close()

	var set *MonthlyTransactionSet
	if strings.EqualFold(filepath.Ext(filename), ".jsonl") {
		set, err = DecodeLedger(f, currency)
	} else {
		set, err = DecodeMonthlyData(f, currency)
	}
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	return set, nil
}
