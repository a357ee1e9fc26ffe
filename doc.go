// Package dashboard computes a monthly summary of a stock portfolio.
//
// The input is a MonthlyTransactionSet: months in calendar order, each with
// its list of buy and sell transactions. ComputeSummary scans the months up
// to a cutoff month and produces:
//   - Summary: cash flow, amounts purchased and sold, realized profit or
//     loss and the securities still held, as of the end of the cutoff month.
//   - the cutoff month's transactions, each sell annotated with its realized
//     profit or with the InsufficientShares marker when it exceeds the
//     position.
//   - a chart series of units purchased and sold per month.
//
// Realized gains use the weighted average cost basis, recomputed at each
// sale. Amounts are exact decimals.
//
// This package serves as the foundational logic for the `dash` command-line
// tool and its HTTP server.
package dashboard
