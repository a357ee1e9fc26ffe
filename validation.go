package dashboard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTransaction is wrapped by every malformed transaction error.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrUnknownMonth is returned when a month is not part of the data set.
	ErrUnknownMonth = errors.New("unknown month")
)

// InsufficientShares is the annotation attached to a sell transaction that
// exceeds the quantity held. It is not an error: the computation goes on.
const InsufficientShares = "Insufficient Shares"

// Problem locates a single validation failure.
type Problem struct {
	Month string // Month is the month the failure belongs to.
	Row   int    // Row is the 1-based index in the month, 0 when the month itself is at fault.
	Err   error
}

func (p Problem) Error() string {
	if p.Row == 0 {
		return fmt.Sprintf("%s: %v", p.Month, p.Err)
	}
	return fmt.Sprintf("%s#%d: %v", p.Month, p.Row, p.Err)
}

func (p Problem) Unwrap() error { return p.Err }

// ValidationError reports every problem found in a request before any
// computation takes place.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	if len(msgs) == 1 {
		return "validation failed: " + msgs[0]
	}
	return fmt.Sprintf("validation failed with %d problems: %s", len(msgs), strings.Join(msgs, "; "))
}

// Unwrap makes errors.Is and errors.As work on each problem.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}

// Validate checks every transaction of the set and that cutoff is one of its
// months. It returns nil or a *ValidationError.
func Validate(set *MonthlyTransactionSet, cutoff string) error {
	var problems []Problem
	for month, txs := range set.All() {
		if strings.TrimSpace(month) == "" {
			problems = append(problems, Problem{Month: month, Err: errors.New("month name is empty")})
		}
		for i, tx := range txs {
			if err := tx.Validate(); err != nil {
				problems = append(problems, Problem{Month: month, Row: i + 1, Err: err})
			}
			if c := tx.Price.Currency(); c != "" && c != set.Currency() {
				problems = append(problems, Problem{Month: month, Row: i + 1,
					Err: fmt.Errorf("%w: currency %s does not match %s", ErrInvalidTransaction, c, set.Currency())})
			}
		}
	}
	if !set.Has(cutoff) {
		problems = append(problems, Problem{Month: cutoff, Err: fmt.Errorf("%w: %q", ErrUnknownMonth, cutoff)})
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}
