package processors

import (
	"time"

	"github.com/username/barcontrol/backend/src/models"
)

// Snapshot is one atomically consistent view of the ledger and the reference
// collections. The processor never mutates it and never mixes two snapshots
// within one report; callers hand in whatever the sync layer considers
// current at invocation time.
type Snapshot struct {
	Transactions   []models.Transaction
	Products       []models.Product
	GameModalities []models.GameModality
	Customers      []models.Customer
}

// DateRange is the user-chosen reporting range. A zero To falls back to
// From; a zero From means "no range chosen yet".
type DateRange struct {
	From time.Time
	To   time.Time
}

// ReportProcessor derives a full DashboardReport from a snapshot. It is a
// pure, synchronous computation: no I/O, no retained state, rerun in full
// whenever the range, the manual goal or the ledger changes.
type ReportProcessor struct{}

func NewReportProcessor() *ReportProcessor { return &ReportProcessor{} }

// Process builds the report for the given range. It returns nil when no
// start date has been chosen — the defined "no data" state, not an error.
// Under any ledger content it degrades instead of failing: malformed records
// reduce precision, they never blank the report.
func (p *ReportProcessor) Process(snap Snapshot, rng DateRange, manualGoal float64) *models.DashboardReport {
	if rng.From.IsZero() {
		return nil
	}

	window := ResolveTimeWindow(rng.From, rng.To)
	subsets := FilterLedger(snap.Transactions, window)

	productIndex := BuildProductIndex(snap.Products)
	gameProducts := BuildGameProductSet(snap.GameModalities)

	current := AggregateMetrics(subsets.Current, productIndex, gameProducts)
	previous := AggregateMetrics(subsets.Previous, productIndex, gameProducts)

	goal := ResolveGoal(SumExpenses(subsets.MonthExpenses), window.DaysInMonth, window.PeriodDays, manualGoal, current.Revenue)

	byMethod, cashByMethod := RevenueByPaymentMethod(subsets.Current)
	topByQuantity, topByProfit := TopProducts(subsets.Current, productIndex)
	sales, expenses, supplies, payments := SplitByType(subsets.Current)
	debt, credit := customerBalances(snap.Customers)

	return &models.DashboardReport{
		From:       window.CurrentStart,
		To:         window.CurrentEnd,
		PeriodDays: window.PeriodDays,

		Metrics:  current,
		Previous: previous,
		Deltas:   BuildDeltas(current, previous),

		Goal:         goal.Goal,
		GoalProgress: goal.Progress,
		GoalIsManual: goal.Manual,

		CustomerDebt:   debt,
		CustomerCredit: credit,

		TopProductsByQuantity:  topByQuantity,
		TopProductsByProfit:    topByProfit,
		RevenueByPaymentMethod: byMethod,
		CashByPaymentMethod:    cashByMethod,
		ExpensesByCategory:     ExpensesByCategory(subsets.Current),
		InsumosBySupplier:      InsumosBySupplier(subsets.Current),

		Heatmap:     BuildOccupancyHeatmap(sales),
		HourlySales: BuildHourlyHistogram(sales),

		Sales:           sales,
		ExpenseRecords:  expenses,
		SupplyPurchases: supplies,
		Payments:        payments,
	}
}

// customerBalances splits the customer list into total debt owed to the
// house and total credit held by it. Both come out as positive magnitudes.
func customerBalances(customers []models.Customer) (debt, credit float64) {
	for _, c := range customers {
		switch {
		case c.Balance < 0:
			debt += -c.Balance
		case c.Balance > 0:
			credit += c.Balance
		}
	}
	return
}
