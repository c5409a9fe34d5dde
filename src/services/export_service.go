package services

import (
	"fmt"

	"github.com/username/barcontrol/backend/src/models"
	"github.com/username/barcontrol/backend/src/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a computed dashboard report into a spreadsheet for
// offline use. It consumes the report object only; it never recomputes KPIs.
type ExportService struct{}

func NewExportService() *ExportService { return &ExportService{} }

const (
	sheetSummary  = "Resumo"
	sheetProducts = "Produtos"
	sheetPayments = "Pagamentos"
	sheetExpenses = "Despesas"
)

// BuildWorkbook lays the report out across four sheets. The caller owns the
// returned file and must Close it.
func (s *ExportService) BuildWorkbook(report *models.DashboardReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming summary sheet: %w", err)
	}
	for _, name := range []string{sheetProducts, sheetPayments, sheetExpenses} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	s.writeSummary(f, report)
	s.writePairs(f, sheetProducts, "Mais vendidos (quantidade)", report.TopProductsByQuantity, "Mais lucrativos", report.TopProductsByProfit)
	s.writePairs(f, sheetPayments, "Faturamento por método", report.RevenueByPaymentMethod, "Entradas (sem fiado)", report.CashByPaymentMethod)
	s.writePairs(f, sheetExpenses, "Despesas por categoria", report.ExpensesByCategory, "Insumos por fornecedor", report.InsumosBySupplier)

	return f, nil
}

func (s *ExportService) writeSummary(f *excelize.File, report *models.DashboardReport) {
	rows := [][]interface{}{
		{"Período", fmt.Sprintf("%s a %s (%d dias)",
			report.From.Format("02/01/2006"), report.To.Format("02/01/2006"), report.PeriodDays)},
		{},
		{"Indicador", "Valor", "Variação (%)"},
		{"Faturamento", report.Metrics.Revenue, report.Deltas.Revenue},
		{"Faturamento bar", report.Metrics.BarRevenue, nil},
		{"Faturamento jogos", report.Metrics.GameRevenue, nil},
		{"Entradas em caixa", report.Metrics.CashInflow, report.Deltas.CashInflow},
		{"Despesas", report.Metrics.Expenses, report.Deltas.Expenses},
		{"Insumos", report.Metrics.Insumos, report.Deltas.Insumos},
		{"CMV", report.Metrics.COGS, nil},
		{"Lucro bruto", report.Metrics.GrossProfit, report.Deltas.GrossProfit},
		{"Lucro líquido", report.Metrics.NetProfit, report.Deltas.NetProfit},
		{"Vendas", report.Metrics.SalesCount, report.Deltas.SalesCount},
		{"Ticket médio", utils.RoundFloat(report.Metrics.AvgTicket, 2), report.Deltas.AvgTicket},
		{},
		{"Meta do período", utils.RoundFloat(report.Goal, 2)},
		{"Progresso da meta (%)", utils.RoundFloat(report.GoalProgress, 1)},
		{"Crédito de clientes", report.CustomerCredit},
		{"Débito de clientes", report.CustomerDebt},
	}
	for i, row := range rows {
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(sheetSummary, cell, value)
		}
	}
}

// writePairs renders two ranked breakdowns side by side on one sheet.
func (s *ExportService) writePairs(f *excelize.File, sheet, leftTitle string, left []models.NameValue, rightTitle string, right []models.NameValue) {
	f.SetCellValue(sheet, "A1", leftTitle)
	for i, pair := range left {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), pair.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), utils.RoundFloat(pair.Value, 2))
	}
	f.SetCellValue(sheet, "D1", rightTitle)
	for i, pair := range right {
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), pair.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), utils.RoundFloat(pair.Value, 2))
	}
}
