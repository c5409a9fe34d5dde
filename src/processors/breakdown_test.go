package processors

import (
	"fmt"
	"testing"
	"time"

	"github.com/username/barcontrol/backend/src/models"
)

func TestRevenueByPaymentMethod(t *testing.T) {
	ts := date(2024, time.March, 10)
	txs := []models.Transaction{
		saleAt(ts, 50, "Dinheiro"),
		saleAt(ts, 30, "Pix"),
		saleAt(ts, 20, "Pix"),
		saleAt(ts, 40, models.PaymentMethodFiado),
		saleAt(ts, 5, ""),
		expenseAt(ts, 99, "Luz", ""),
	}

	all, cash := RevenueByPaymentMethod(txs)

	wantAll := []models.NameValue{
		{Name: "Dinheiro", Value: 50},
		{Name: "Pix", Value: 50},
		{Name: models.PaymentMethodFiado, Value: 40},
		{Name: "Outros", Value: 5},
	}
	if len(all) != len(wantAll) {
		t.Fatalf("all has %d rows, want %d", len(all), len(wantAll))
	}
	for i, want := range wantAll {
		if all[i].Name != want.Name || !approxEqual(all[i].Value, want.Value) {
			t.Errorf("all[%d] = %+v, want %+v", i, all[i], want)
		}
	}

	for _, row := range cash {
		if row.Name == models.PaymentMethodFiado {
			t.Error("fiado appeared in the cash-only breakdown")
		}
	}
}

func TestExpensesByCategory(t *testing.T) {
	ts := date(2024, time.March, 10)
	txs := []models.Transaction{
		expenseAt(ts, 100, models.ExpenseCategoryInsumos, "Compra - Zé"),
		expenseAt(ts, 60, "Luz", ""),
		expenseAt(ts, 40, "Luz", ""),
		expenseAt(ts, 10, "", ""),
	}

	rows := ExpensesByCategory(txs)

	if len(rows) != 3 {
		t.Fatalf("got %d categories, want 3", len(rows))
	}
	// Equal values order deterministically by name.
	if rows[0].Name != models.ExpenseCategoryInsumos || !approxEqual(rows[0].Value, 100) {
		t.Errorf("rows[0] = %+v, want Insumos/100", rows[0])
	}
	if rows[1].Name != "Luz" || !approxEqual(rows[1].Value, 100) {
		t.Errorf("rows[1] = %+v, want Luz/100", rows[1])
	}
	if rows[2].Name != "Sem categoria" {
		t.Errorf("rows[2] = %+v, want the fallback bucket", rows[2])
	}
}

func TestInsumosBySupplier(t *testing.T) {
	ts := date(2024, time.March, 10)
	txs := []models.Transaction{
		expenseAt(ts, 100, models.ExpenseCategoryInsumos, "Compra - Distribuidora Silva"),
		expenseAt(ts, 50, models.ExpenseCategoryInsumos, "Distribuidora Silva"),
		expenseAt(ts, 30, models.ExpenseCategoryInsumos, ""),
		expenseAt(ts, 999, "Luz", "Compra - Não é insumo"),
	}

	rows := InsumosBySupplier(txs)

	if len(rows) != 2 {
		t.Fatalf("got %d suppliers, want 2", len(rows))
	}
	if rows[0].Name != "Distribuidora Silva" || !approxEqual(rows[0].Value, 150) {
		t.Errorf("rows[0] = %+v, want Distribuidora Silva/150", rows[0])
	}
	if rows[1].Name != "Não informado" || !approxEqual(rows[1].Value, 30) {
		t.Errorf("rows[1] = %+v, want fallback/30", rows[1])
	}
}

func TestTopProducts(t *testing.T) {
	ts := date(2024, time.March, 10)
	idx := BuildProductIndex([]models.Product{
		{ID: "beer", CostPrice: 4},
		{ID: "whisky", CostPrice: 30, BaseUnitSize: 750},
	})

	// 12 distinct products to force top-10 truncation.
	var txs []models.Transaction
	for i := 0; i < 12; i++ {
		it := models.OrderItem{
			ProductID: fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Produto %02d", i),
			Quantity:  float64(i + 1),
			UnitPrice: 10,
		}
		txs = append(txs, saleAt(ts.Add(time.Duration(i)*time.Minute), it.Quantity*10, "Pix", it))
	}

	byQty, byProfit := TopProducts(txs, idx)

	if len(byQty) != 10 || len(byProfit) != 10 {
		t.Fatalf("got %d/%d rows, want 10/10", len(byQty), len(byProfit))
	}
	if byQty[0].Name != "Produto 11" || !approxEqual(byQty[0].Value, 12) {
		t.Errorf("byQty[0] = %+v, want Produto 11/12", byQty[0])
	}
	for i := 1; i < len(byQty); i++ {
		if byQty[i].Value > byQty[i-1].Value {
			t.Fatalf("byQty not sorted descending at %d: %+v", i, byQty)
		}
	}
}

func TestTopProductsProfitUsesDoseCosting(t *testing.T) {
	ts := date(2024, time.March, 10)
	idx := BuildProductIndex([]models.Product{
		{ID: "whisky", CostPrice: 30, BaseUnitSize: 750},
	})
	dose := models.OrderItem{ProductID: "whisky", Name: "Dose de whisky", Quantity: 2, UnitPrice: 12, Size: 100}

	_, byProfit := TopProducts([]models.Transaction{saleAt(ts, 24, "Pix", dose)}, idx)

	// (12 - (30/750)*100) * 2 = (12 - 4) * 2 = 16
	if len(byProfit) != 1 || !approxEqual(byProfit[0].Value, 16) {
		t.Errorf("byProfit = %+v, want Dose de whisky/16", byProfit)
	}
}
