package models

// Product is a catalog entry, read-only to the report engine.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CostPrice float64 `json:"costPrice"`
	// BaseUnitSize is the size of one purchasable unit (e.g. the volume of a
	// bottle in ml). Dose sales are costed proportionally against it. Zero or
	// absent means the product is costed per unit.
	BaseUnitSize float64 `json:"baseUnitSize,omitempty"`
	SaleType     string  `json:"saleType,omitempty"`
}

// UnitSize returns BaseUnitSize with the documented default of 1.
func (p Product) UnitSize() float64 {
	if p.BaseUnitSize > 0 {
		return p.BaseUnitSize
	}
	return 1
}

// GameModality classifies one product id as game revenue even when its sale
// items carry no wager identifier.
type GameModality struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProductID string `json:"productId"`
}

// Customer is consumed for its balance only: positive balances are credit
// held by the house, negative balances are debt owed by the customer.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}
