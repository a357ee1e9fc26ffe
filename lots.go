package dashboard

// lot is the aggregate of all the unsold units of a security, used for
// average cost basis calculations.
type lot struct {
	quantity Quantity
	cost     Money // total cost basis of the units held
}

// averageCost returns the weighted average cost of one unit, as of now.
func (l *lot) averageCost() Money {
	return l.cost.Div(l.quantity)
}

// buy adds quantity units bought for total.
func (l *lot) buy(quantity Quantity, total Money) {
	l.quantity = l.quantity.Add(quantity)
	l.cost = l.cost.Add(total)
}

// sell removes quantity units at the current average cost, so that the unit
// cost of the remaining units is unchanged. It returns the cost of the units
// sold. The caller must check that the lot holds enough units.
//
// Selling every unit removes the whole cost, with no rounding residue.
func (l *lot) sell(quantity Quantity) Money {
	costOfSale := l.cost
	if !quantity.Equal(l.quantity) {
		costOfSale = l.averageCost().Mul(quantity)
	}
	l.quantity = l.quantity.Sub(quantity)
	l.cost = l.cost.Sub(costOfSale)
	return costOfSale
}

// lots indexes lots by symbol and remembers the order of first acquisition.
type lots struct {
	order    []string
	bySymbol map[string]*lot
}

func newLots() *lots {
	return &lots{bySymbol: make(map[string]*lot)}
}

// get returns the lot of symbol, or nil if it was never bought.
func (ls *lots) get(symbol string) *lot {
	return ls.bySymbol[symbol]
}

// acquire returns the lot of symbol, creating it if needed.
func (ls *lots) acquire(symbol, currency string) *lot {
	if l, exists := ls.bySymbol[symbol]; exists {
		return l
	}
	l := &lot{cost: M(0, currency)}
	ls.bySymbol[symbol] = l
	ls.order = append(ls.order, symbol)
	return l
}

// holdings lists the lots with a non zero quantity, in acquisition order.
func (ls *lots) holdings() []Holding {
	holdings := make([]Holding, 0, len(ls.order))
	for _, symbol := range ls.order {
		l := ls.bySymbol[symbol]
		if l.quantity.IsZero() {
			continue
		}
		holdings = append(holdings, Holding{Symbol: symbol, Quantity: l.quantity, CostBasis: l.cost})
	}
	return holdings
}
