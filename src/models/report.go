package models

import "time"

// NameValue is one row of a dimensional breakdown, sorted descending by
// Value when emitted.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// HeatmapCell is one cell of the dense 7x24 occupancy grid. Day follows
// time.Weekday numbering (0 = Sunday).
type HeatmapCell struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Value int `json:"value"`
}

// HourValue is one slot of the dense 24-entry closing-hour histogram.
// Hour is rendered "HH:00".
type HourValue struct {
	Hour  string `json:"hour"`
	Value int    `json:"value"`
}

// PeriodMetrics holds the scalar KPIs produced by one aggregation pass over
// one transaction subset. The same shape is computed for the current and the
// comparison period so that metric semantics stay identical between the two.
type PeriodMetrics struct {
	Revenue     float64 `json:"revenue"`
	GameRevenue float64 `json:"gameRevenue"`
	BarRevenue  float64 `json:"barRevenue"`
	CashInflow  float64 `json:"cashInflow"`
	Expenses    float64 `json:"expenses"`
	Insumos     float64 `json:"insumos"`
	SalesCount  int     `json:"salesCount"`
	AvgTicket   float64 `json:"avgTicket"`
	COGS        float64 `json:"cogs"`
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
}

// ReportDeltas carries the signed percentage change of each comparable KPI
// against the immediately-preceding period of equal length.
type ReportDeltas struct {
	Revenue     float64 `json:"revenue"`
	CashInflow  float64 `json:"cashInflow"`
	Expenses    float64 `json:"expenses"`
	Insumos     float64 `json:"insumos"`
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
	SalesCount  float64 `json:"salesCount"`
	AvgTicket   float64 `json:"avgTicket"`
}

// DashboardReport is the full report object consumed by the dashboard and
// its drill-down views.
type DashboardReport struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	PeriodDays int       `json:"periodDays"`

	Metrics  PeriodMetrics `json:"metrics"`
	Previous PeriodMetrics `json:"previous"`
	Deltas   ReportDeltas  `json:"deltas"`

	// Goal is the break-even target for the window: either the manual goal
	// or the month's expenses apportioned over the selected days.
	Goal         float64 `json:"goal"`
	GoalProgress float64 `json:"goalProgress"`
	GoalIsManual bool    `json:"goalIsManual"`

	CustomerDebt   float64 `json:"customerDebt"`
	CustomerCredit float64 `json:"customerCredit"`

	TopProductsByQuantity  []NameValue `json:"topProductsByQuantity"`
	TopProductsByProfit    []NameValue `json:"topProductsByProfit"`
	RevenueByPaymentMethod []NameValue `json:"revenueByPaymentMethod"`
	CashByPaymentMethod    []NameValue `json:"cashByPaymentMethod"`
	ExpensesByCategory     []NameValue `json:"expensesByCategory"`
	InsumosBySupplier      []NameValue `json:"insumosBySupplier"`

	Heatmap     []HeatmapCell `json:"heatmap"`
	HourlySales []HourValue   `json:"hourlySales"`

	// Current-window subsets backing the drill-down tables. SupplyPurchases
	// is the Insumos slice of Expenses and appears in both.
	Sales           []Transaction `json:"sales"`
	ExpenseRecords  []Transaction `json:"expenseRecords"`
	SupplyPurchases []Transaction `json:"supplyPurchases"`
	Payments        []Transaction `json:"payments"`
}
