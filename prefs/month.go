package prefs

import (
	"context"
	"fmt"
	"slices"
)

const (
	// MonthKey is the key under which the selected month is stored.
	MonthKey = "selectedMonth"
	// DefaultMonth is the month selected when none was ever stored.
	DefaultMonth = "January"
)

// MonthPreference reads and writes the selected month, and nothing else.
type MonthPreference struct {
	store Store
}

// NewMonthPreference returns the month preference kept in store.
func NewMonthPreference(store Store) *MonthPreference {
	return &MonthPreference{store: store}
}

// Load returns the stored month, or DefaultMonth if there is none.
func (p *MonthPreference) Load(ctx context.Context) (string, error) {
	month, ok, err := p.store.Get(ctx, MonthKey)
	if err != nil {
		return "", fmt.Errorf("cannot load selected month: %w", err)
	}
	if !ok || month == "" {
		return DefaultMonth, nil
	}
	return month, nil
}

// Save stores month as the selected month.
func (p *MonthPreference) Save(ctx context.Context, month string) error {
	if err := p.store.Set(ctx, MonthKey, month); err != nil {
		return fmt.Errorf("cannot save selected month: %w", err)
	}
	return nil
}

// LoadFrom returns the stored month when it is one of months, and the first
// of months otherwise. It behaves like Load when months is empty.
func (p *MonthPreference) LoadFrom(ctx context.Context, months []string) (string, error) {
	month, err := p.Load(ctx)
	if err != nil || len(months) == 0 {
		return month, err
	}
	if !slices.Contains(months, month) {
		return months[0], nil
	}
	return month, nil
}
