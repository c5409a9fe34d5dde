package processors

import (
	"github.com/username/barcontrol/backend/src/models"
)

// PercentDelta converts a (current, previous) metric pair into a signed
// percentage change. A non-positive previous value cannot divide, so "went
// from nothing to something" reads as a full +100% swing and "nothing to
// nothing" as flat.
func PercentDelta(curr, prev float64) float64 {
	if prev <= 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return (curr - prev) / prev * 100
}

// BuildDeltas applies PercentDelta to every KPI where a period comparison
// makes sense.
func BuildDeltas(curr, prev models.PeriodMetrics) models.ReportDeltas {
	return models.ReportDeltas{
		Revenue:     PercentDelta(curr.Revenue, prev.Revenue),
		CashInflow:  PercentDelta(curr.CashInflow, prev.CashInflow),
		Expenses:    PercentDelta(curr.Expenses, prev.Expenses),
		Insumos:     PercentDelta(curr.Insumos, prev.Insumos),
		GrossProfit: PercentDelta(curr.GrossProfit, prev.GrossProfit),
		NetProfit:   PercentDelta(curr.NetProfit, prev.NetProfit),
		SalesCount:  PercentDelta(float64(curr.SalesCount), float64(prev.SalesCount)),
		AvgTicket:   PercentDelta(curr.AvgTicket, prev.AvgTicket),
	}
}
