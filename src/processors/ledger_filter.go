package processors

import (
	"github.com/username/barcontrol/backend/src/models"
)

// LedgerSubsets are the interval partitions of one ledger snapshot. A
// transaction whose timestamp failed to normalize appears in none of them:
// it silently drops out of every KPI instead of aborting the report.
type LedgerSubsets struct {
	Current  []models.Transaction
	Previous []models.Transaction

	// MonthExpenses holds the expense records of the calendar month
	// containing the window's start. Only the apportionment goal reads it.
	MonthExpenses []models.Transaction
}

// FilterLedger buckets every transaction into the resolved windows.
// Boundary timestamps are included on both ends.
func FilterLedger(txs []models.Transaction, w TimeWindow) LedgerSubsets {
	var subsets LedgerSubsets
	for _, tx := range txs {
		ts := tx.Timestamp
		if ts.IsZero() {
			continue
		}
		if contains(ts.Time, w.CurrentStart, w.CurrentEnd) {
			subsets.Current = append(subsets.Current, tx)
		}
		if contains(ts.Time, w.PreviousStart, w.PreviousEnd) {
			subsets.Previous = append(subsets.Previous, tx)
		}
		if tx.Type == models.TransactionExpense && contains(ts.Time, w.MonthStart, w.MonthEnd) {
			subsets.MonthExpenses = append(subsets.MonthExpenses, tx)
		}
	}
	return subsets
}

// SplitByType partitions one window's transactions into the drill-down
// slices served alongside the KPIs. Supply purchases are the "Insumos"
// subset of expenses and are returned in both slices.
func SplitByType(txs []models.Transaction) (sales, expenses, supplies, payments []models.Transaction) {
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionSale:
			sales = append(sales, tx)
		case models.TransactionExpense:
			expenses = append(expenses, tx)
			if tx.ExpenseCategory == models.ExpenseCategoryInsumos {
				supplies = append(supplies, tx)
			}
		case models.TransactionPayment:
			payments = append(payments, tx)
		}
	}
	return
}
