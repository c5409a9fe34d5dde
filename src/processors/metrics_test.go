package processors

import (
	"testing"
	"time"

	"github.com/username/barcontrol/backend/src/models"
)

func TestAggregateMetricsScenario(t *testing.T) {
	// One sale of 50 (2 x 25, product cost 10) plus one supply expense of 20.
	ts := date(2024, time.March, 10).Add(14 * time.Hour)
	txs := []models.Transaction{
		saleAt(ts, 50, "Dinheiro", item("p1", 2, 25)),
		expenseAt(ts, 20, models.ExpenseCategoryInsumos, "Compra - Zé"),
	}
	idx := BuildProductIndex([]models.Product{{ID: "p1", Name: "Cerveja", CostPrice: 10}})

	m := AggregateMetrics(txs, idx, nil)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Revenue", m.Revenue, 50},
		{"COGS", m.COGS, 20},
		{"GrossProfit", m.GrossProfit, 30},
		{"Expenses", m.Expenses, 20},
		{"Insumos", m.Insumos, 20},
		{"NetProfit", m.NetProfit, 10},
		{"CashInflow", m.CashInflow, 50},
		{"AvgTicket", m.AvgTicket, 50},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if m.SalesCount != 1 {
		t.Errorf("SalesCount = %d, want 1", m.SalesCount)
	}
}

func TestAggregateMetricsRevenueSplit(t *testing.T) {
	ts := date(2024, time.March, 10)
	wager := models.OrderItem{ProductID: "pX", Name: "Aposta", Quantity: 1, UnitPrice: 15, Identifier: "bilhete-7"}
	txs := []models.Transaction{
		saleAt(ts, 40, "Pix", item("game1", 1, 25), wager),
		saleAt(ts, 30, "Pix", item("beer", 3, 10)),
	}
	gameProducts := BuildGameProductSet([]models.GameModality{{ID: "m1", Name: "Sinuca", ProductID: "game1"}})

	m := AggregateMetrics(txs, BuildProductIndex(nil), gameProducts)

	// identifier-marked item (15) + modality product (25) count as game.
	if !approxEqual(m.GameRevenue, 40) {
		t.Errorf("GameRevenue = %v, want 40", m.GameRevenue)
	}
	if !approxEqual(m.BarRevenue, 30) {
		t.Errorf("BarRevenue = %v, want 30", m.BarRevenue)
	}
	if !approxEqual(m.BarRevenue+m.GameRevenue, m.Revenue) {
		t.Errorf("bar %v + game %v != revenue %v", m.BarRevenue, m.GameRevenue, m.Revenue)
	}
}

func TestAggregateMetricsFiadoExcludedFromCash(t *testing.T) {
	ts := date(2024, time.March, 10)
	txs := []models.Transaction{
		saleAt(ts, 50, models.PaymentMethodFiado),
		saleAt(ts, 30, "Dinheiro"),
		paymentAt(ts, 25), // customer settling debt
	}

	m := AggregateMetrics(txs, BuildProductIndex(nil), nil)

	if !approxEqual(m.Revenue, 80) {
		t.Errorf("Revenue = %v, want 80", m.Revenue)
	}
	if !approxEqual(m.CashInflow, 55) {
		t.Errorf("CashInflow = %v, want 55 (fiado excluded, payment included)", m.CashInflow)
	}
}

func TestAggregateMetricsEmptySubset(t *testing.T) {
	m := AggregateMetrics(nil, BuildProductIndex(nil), nil)

	if m.AvgTicket != 0 || m.Revenue != 0 || m.SalesCount != 0 {
		t.Errorf("empty subset produced non-zero metrics: %+v", m)
	}
}

func TestEffectiveUnitCost(t *testing.T) {
	idx := BuildProductIndex([]models.Product{
		{ID: "whisky", CostPrice: 30, BaseUnitSize: 750},
		{ID: "beer", CostPrice: 4},
	})

	tests := []struct {
		name string
		item models.OrderItem
		want float64
	}{
		{"dose proportional to volume", models.OrderItem{ProductID: "whisky", Size: 100}, 4.0},
		{"whole unit", models.OrderItem{ProductID: "beer"}, 4.0},
		{"whole bottle of a dose product", models.OrderItem{ProductID: "whisky"}, 30.0},
		{"deleted product costs zero", models.OrderItem{ProductID: "ghost"}, 0},
		{"dose with missing base unit size", models.OrderItem{ProductID: "beer", Size: 2}, 8.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveUnitCost(tt.item, idx); !approxEqual(got, tt.want) {
				t.Errorf("EffectiveUnitCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateMetricsUnresolvableProductDegrades(t *testing.T) {
	ts := date(2024, time.March, 10)
	txs := []models.Transaction{
		saleAt(ts, 25, "Pix", item("deleted-product", 1, 25)),
	}

	m := AggregateMetrics(txs, BuildProductIndex(nil), nil)

	if m.COGS != 0 {
		t.Errorf("COGS = %v, want 0 for unresolvable product", m.COGS)
	}
	if !approxEqual(m.GrossProfit, 25) {
		t.Errorf("GrossProfit = %v, want 25", m.GrossProfit)
	}
}
