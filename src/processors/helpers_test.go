package processors

import (
	"math"
	"time"

	"github.com/username/barcontrol/backend/src/models"
)

// Shared builders for engine tests.

func saleAt(ts time.Time, total float64, method string, items ...models.OrderItem) models.Transaction {
	return models.Transaction{
		ID:            "sale-" + ts.Format("20060102150405"),
		Type:          models.TransactionSale,
		Timestamp:     models.NewFlexTime(ts),
		Total:         total,
		PaymentMethod: method,
		Items:         items,
	}
}

func expenseAt(ts time.Time, total float64, category, description string) models.Transaction {
	return models.Transaction{
		ID:              "expense-" + ts.Format("20060102150405"),
		Type:            models.TransactionExpense,
		Timestamp:       models.NewFlexTime(ts),
		Total:           total,
		ExpenseCategory: category,
		Description:     description,
	}
}

func paymentAt(ts time.Time, total float64) models.Transaction {
	return models.Transaction{
		ID:        "payment-" + ts.Format("20060102150405"),
		Type:      models.TransactionPayment,
		Timestamp: models.NewFlexTime(ts),
		Total:     total,
	}
}

func item(productID string, qty, unitPrice float64) models.OrderItem {
	return models.OrderItem{ProductID: productID, Name: productID, Quantity: qty, UnitPrice: unitPrice}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
