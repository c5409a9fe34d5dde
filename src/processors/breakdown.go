package processors

import (
	"sort"
	"strings"

	"github.com/username/barcontrol/backend/src/models"
)

// Breakdown rankings are truncated to the dashboard widget size.
const topProductsLimit = 10

// Fallback bucket names for records missing the grouping attribute.
const (
	unknownPaymentMethod = "Outros"
	unknownSupplier      = "Não informado"
	unknownCategory      = "Sem categoria"
)

// RevenueByPaymentMethod groups current-window sale revenue by payment
// method, once over all sales and once over cash sales only (Fiado excluded).
func RevenueByPaymentMethod(txs []models.Transaction) (all, cash []models.NameValue) {
	allMap := make(map[string]float64)
	cashMap := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != models.TransactionSale {
			continue
		}
		method := tx.PaymentMethod
		if method == "" {
			method = unknownPaymentMethod
		}
		allMap[method] += tx.Total
		if method != models.PaymentMethodFiado {
			cashMap[method] += tx.Total
		}
	}
	return sortedPairs(allMap), sortedPairs(cashMap)
}

// ExpensesByCategory groups current-window expenses by their free-form
// category.
func ExpensesByCategory(txs []models.Transaction) []models.NameValue {
	byCategory := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense {
			continue
		}
		category := tx.ExpenseCategory
		if category == "" {
			category = unknownCategory
		}
		byCategory[category] += tx.Total
	}
	return sortedPairs(byCategory)
}

// InsumosBySupplier groups supply purchases by supplier. Supply expenses
// carry the supplier in their description, optionally prefixed by the
// purchase form ("Compra - Fulano").
func InsumosBySupplier(txs []models.Transaction) []models.NameValue {
	bySupplier := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense || tx.ExpenseCategory != models.ExpenseCategoryInsumos {
			continue
		}
		bySupplier[supplierName(tx.Description)] += tx.Total
	}
	return sortedPairs(bySupplier)
}

func supplierName(description string) string {
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(description), "Compra -"))
	if name == "" {
		return unknownSupplier
	}
	return name
}

// TopProducts ranks current-window sold products by quantity and by profit,
// each truncated to the top 10. Profit uses the same dose-proportional
// costing rule as COGS; items whose product vanished from the catalog are
// costed at zero.
func TopProducts(txs []models.Transaction, idx ProductIndex) (byQuantity, byProfit []models.NameValue) {
	quantity := make(map[string]float64)
	profit := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != models.TransactionSale {
			continue
		}
		for _, item := range tx.Items {
			quantity[item.Name] += item.Quantity
			profit[item.Name] += (item.UnitPrice - EffectiveUnitCost(item, idx)) * item.Quantity
		}
	}
	return topN(sortedPairs(quantity), topProductsLimit), topN(sortedPairs(profit), topProductsLimit)
}

// sortedPairs flattens a frequency/sum map into rows sorted descending by
// value, with the name as tiebreaker so equal values order deterministically.
func sortedPairs(m map[string]float64) []models.NameValue {
	pairs := make([]models.NameValue, 0, len(m))
	for name, value := range m {
		pairs = append(pairs, models.NameValue{Name: name, Value: value})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Name < pairs[j].Name
	})
	return pairs
}

func topN(pairs []models.NameValue, n int) []models.NameValue {
	if len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}
