package processors

import (
	"github.com/username/barcontrol/backend/src/models"
)

// ProductIndex is the id -> product lookup built once per engine run so the
// aggregation passes never rescan the catalog slice inside their item loops.
type ProductIndex map[string]models.Product

// BuildProductIndex indexes the catalog by product id.
func BuildProductIndex(products []models.Product) ProductIndex {
	idx := make(ProductIndex, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// BuildGameProductSet collects the product ids classified as game revenue.
func BuildGameProductSet(modalities []models.GameModality) map[string]bool {
	set := make(map[string]bool, len(modalities))
	for _, m := range modalities {
		if m.ProductID != "" {
			set[m.ProductID] = true
		}
	}
	return set
}

// EffectiveUnitCost resolves the cost attributed to one unit of a sold item.
// Dose items (Size > 0) are costed proportionally to the volume poured: a
// bottle's cost is spread across its doses, not charged per bottle sold.
// An item whose product is no longer in the catalog costs zero; historical
// products may have been deleted and must not break reporting.
func EffectiveUnitCost(item models.OrderItem, idx ProductIndex) float64 {
	product, ok := idx[item.ProductID]
	if !ok {
		return 0
	}
	if item.Size > 0 {
		return product.CostPrice / product.UnitSize() * item.Size
	}
	return product.CostPrice
}

// AggregateMetrics computes every scalar KPI for one transaction subset in a
// single linear pass. The same function runs for the current and the
// comparison window so both periods share identical metric semantics.
func AggregateMetrics(txs []models.Transaction, idx ProductIndex, gameProducts map[string]bool) models.PeriodMetrics {
	var m models.PeriodMetrics

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionSale:
			m.Revenue += tx.Total
			m.SalesCount++
			// Fiado sales put the amount on the customer's tab instead of
			// in the till, so they never count as cash inflow.
			if tx.PaymentMethod != models.PaymentMethodFiado {
				m.CashInflow += tx.Total
			}
			for _, item := range tx.Items {
				if item.IsGameItem(gameProducts) {
					m.GameRevenue += item.UnitPrice * item.Quantity
				}
				m.COGS += EffectiveUnitCost(item, idx) * item.Quantity
			}

		case models.TransactionExpense:
			m.Expenses += tx.Total
			if tx.ExpenseCategory == models.ExpenseCategoryInsumos {
				m.Insumos += tx.Total
			}

		case models.TransactionPayment:
			m.CashInflow += tx.Total
		}
	}

	m.BarRevenue = m.Revenue - m.GameRevenue
	if m.SalesCount > 0 {
		m.AvgTicket = m.Revenue / float64(m.SalesCount)
	}
	m.GrossProfit = m.Revenue - m.COGS
	m.NetProfit = m.GrossProfit - m.Expenses
	return m
}

// SumExpenses totals the expense records of a subset; used for the monthly
// apportionment base.
func SumExpenses(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Type == models.TransactionExpense {
			total += tx.Total
		}
	}
	return total
}
