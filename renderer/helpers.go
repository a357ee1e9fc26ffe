package renderer

import "github.com/etnz/dashboard"

// none is printed in cells that do not apply.
const none = "-"

// profitCell renders the outcome of a transaction: the realized profit of a
// sell, the error marker of an invalid one, or none.
func profitCell(row dashboard.AnnotatedTransaction) string {
	switch {
	case row.Error != "":
		return "Error: " + row.Error
	case row.Profit != nil:
		return row.Profit.SignedString()
	default:
		return none
	}
}
