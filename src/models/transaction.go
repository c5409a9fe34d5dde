package models

// TransactionType discriminates the three ledger record variants. Go has no
// sum types, so the Transaction struct follows the single-record/discriminant
// convention: type-dependent fields are simply left empty on the variants
// they do not apply to, and the engine branches on Type only.
type TransactionType string

const (
	TransactionSale    TransactionType = "sale"
	TransactionExpense TransactionType = "expense"
	TransactionPayment TransactionType = "payment"
)

// Reserved markers understood across the application.
const (
	// PaymentMethodFiado marks a sale on customer credit. No cash changed
	// hands, so these sales are excluded from cash inflow.
	PaymentMethodFiado = "Fiado"

	// ExpenseCategoryInsumos is the reserved expense category for goods
	// purchased from suppliers.
	ExpenseCategoryInsumos = "Insumos"
)

// Transaction is one immutable ledger record. Total carries the magnitude
// only and is always non-negative; the sign is implied by Type.
type Transaction struct {
	ID              string          `json:"id"`
	Type            TransactionType `json:"type"`
	Timestamp       FlexTime        `json:"timestamp"`
	Total           float64         `json:"total"`
	Items           []OrderItem     `json:"items,omitempty"`           // sale (sometimes expense)
	PaymentMethod   string          `json:"paymentMethod,omitempty"`   // sale, payment
	ExpenseCategory string          `json:"expenseCategory,omitempty"` // expense
	CustomerID      string          `json:"customerId,omitempty"`
	TabName         string          `json:"tabName,omitempty"`
	Description     string          `json:"description,omitempty"`
	// OrderCreatedAt is the moment the originating tab was opened. Zero when
	// the sale was rung up directly, in which case Timestamp stands in.
	OrderCreatedAt FlexTime `json:"orderCreatedAt,omitempty"`
}

// OpenedAt returns when the originating tab was opened, falling back to the
// transaction timestamp for direct sales.
func (t Transaction) OpenedAt() FlexTime {
	if !t.OrderCreatedAt.IsZero() {
		return t.OrderCreatedAt
	}
	return t.Timestamp
}

// OrderItem is a line item inside a sale.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	// Size is the volume dispensed for dose-type sales, in the same unit as
	// the product's base unit size. Zero means a whole-unit sale.
	Size float64 `json:"size,omitempty"`
	// Identifier, when present, marks the item as a wager/game entry
	// regardless of how the product itself is classified.
	Identifier string `json:"identifier,omitempty"`
}

// IsGameItem reports whether this line counts as game revenue, given the set
// of product ids classified as game modalities.
func (i OrderItem) IsGameItem(gameProducts map[string]bool) bool {
	return i.Identifier != "" || gameProducts[i.ProductID]
}
