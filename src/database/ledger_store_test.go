package database

import (
	"testing"

	"github.com/username/barcontrol/backend/src/models"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	InitDB(":memory:")
	t.Cleanup(func() {
		DB.Close()
		DB = nil
	})
	return NewStore()
}

func TestLoadSnapshotRoundTrip(t *testing.T) {
	store := setupTestDB(t)

	mustExec := func(query string, args ...interface{}) {
		t.Helper()
		if _, err := DB.Exec(query, args...); err != nil {
			t.Fatalf("exec %q: %v", query, err)
		}
	}

	mustExec(`INSERT INTO transactions (id, type, timestamp, total, payment_method, tab_name)
		VALUES ('s1', 'sale', '2024-03-10T20:00:00Z', 50, 'Dinheiro', 'Mesa 3')`)
	// Epoch-millis timestamp, as written by the older sync client.
	mustExec(`INSERT INTO transactions (id, type, timestamp, total, expense_category, description)
		VALUES ('e1', 'expense', '1710093600000', 20, 'Insumos', 'Compra - Distribuidora Silva')`)
	mustExec(`INSERT INTO transactions (id, type, timestamp, total) VALUES ('x1', 'sale', 'invalid', 5)`)
	mustExec(`INSERT INTO transaction_items (transaction_id, product_id, name, quantity, unit_price, size)
		VALUES ('s1', 'whisky', 'Dose de whisky', 2, 25, 100)`)
	mustExec(`INSERT INTO products (id, name, cost_price, base_unit_size) VALUES ('whisky', 'Whisky', 30, 750)`)
	mustExec(`INSERT INTO game_modalities (id, name, product_id) VALUES ('m1', 'Sinuca', 'game1')`)
	mustExec(`INSERT INTO customers (id, name, balance) VALUES ('c1', 'João', -70)`)

	snap, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if len(snap.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(snap.Transactions))
	}

	byID := make(map[string]models.Transaction)
	for _, tx := range snap.Transactions {
		byID[tx.ID] = tx
	}

	sale := byID["s1"]
	if sale.Timestamp.IsZero() || sale.PaymentMethod != "Dinheiro" {
		t.Errorf("sale loaded wrong: %+v", sale)
	}
	if len(sale.Items) != 1 || sale.Items[0].Size != 100 || sale.Items[0].Quantity != 2 {
		t.Errorf("sale items = %+v, want the dose item", sale.Items)
	}

	expense := byID["e1"]
	if expense.Timestamp.IsZero() {
		t.Error("epoch-millis timestamp did not normalize")
	}
	if expense.ExpenseCategory != models.ExpenseCategoryInsumos {
		t.Errorf("expense category = %q, want Insumos", expense.ExpenseCategory)
	}

	// The unparseable timestamp stays in the ledger but is zero; the engine
	// will exclude it from interval subsets.
	if broken := byID["x1"]; !broken.Timestamp.IsZero() {
		t.Errorf("invalid timestamp resolved to %v, want zero", broken.Timestamp.Time)
	}

	if len(snap.Products) != 1 || snap.Products[0].BaseUnitSize != 750 {
		t.Errorf("products = %+v", snap.Products)
	}
	if len(snap.GameModalities) != 1 || snap.GameModalities[0].ProductID != "game1" {
		t.Errorf("game modalities = %+v", snap.GameModalities)
	}
	if len(snap.Customers) != 1 || snap.Customers[0].Balance != -70 {
		t.Errorf("customers = %+v", snap.Customers)
	}
}

func TestSaveDailySnapshotUpserts(t *testing.T) {
	store := setupTestDB(t)

	report := &models.DashboardReport{
		Metrics: models.PeriodMetrics{Revenue: 90, CashInflow: 65, Expenses: 20, NetProfit: 10, SalesCount: 2},
		Goal:    50, GoalProgress: 180,
	}
	if err := store.SaveDailySnapshot("2024-03-10", report); err != nil {
		t.Fatalf("SaveDailySnapshot: %v", err)
	}

	report.Metrics.Revenue = 120
	if err := store.SaveDailySnapshot("2024-03-10", report); err != nil {
		t.Fatalf("SaveDailySnapshot (upsert): %v", err)
	}

	var count int
	var revenue float64
	if err := DB.QueryRow(`SELECT COUNT(*), MAX(revenue) FROM daily_snapshots`).Scan(&count, &revenue); err != nil {
		t.Fatalf("querying snapshots: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1 (upsert)", count)
	}
	if revenue != 120 {
		t.Errorf("revenue = %v, want the updated 120", revenue)
	}
}
