package services

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/barcontrol/backend/src/logger"
	"github.com/username/barcontrol/backend/src/models"
	"github.com/username/barcontrol/backend/src/processors"
)

// Cache keys for computed dashboard reports. One entry per distinct
// (from, to, goal) request; TTL bounds staleness against live ledger writes.
const ckDashboardReport = "res_dashboard_report_%s_%s_%.2f"

type reportServiceImpl struct {
	store       LedgerStore
	processor   *processors.ReportProcessor
	reportCache *cache.Cache
}

func NewReportService(store LedgerStore, processor *processors.ReportProcessor, reportCache *cache.Cache) ReportService {
	return &reportServiceImpl{
		store:       store,
		processor:   processor,
		reportCache: reportCache,
	}
}

// GetDashboardReport runs the full engine for the requested window, serving
// from cache when an identical request was computed recently. The engine is
// pure, so identical inputs always produce identical reports and caching is
// purely an optimization.
func (s *reportServiceImpl) GetDashboardReport(from, to time.Time, manualGoal float64) (*models.DashboardReport, error) {
	if from.IsZero() {
		return nil, ErrMissingDateRange
	}

	cacheKey := fmt.Sprintf(ckDashboardReport,
		from.Format("2006-01-02"), to.Format("2006-01-02"), manualGoal)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for dashboard report", "key", cacheKey)
		return cached.(*models.DashboardReport), nil
	}

	startTime := time.Now()
	snapshot, err := s.store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}

	report := s.processor.Process(snapshot, processors.DateRange{From: from, To: to}, manualGoal)
	if report == nil {
		return nil, ErrMissingDateRange
	}

	logger.L.Info("Dashboard report computed",
		"from", from.Format("2006-01-02"),
		"to", to.Format("2006-01-02"),
		"transactions", len(snapshot.Transactions),
		"duration", time.Since(startTime))

	s.reportCache.Set(cacheKey, report, cache.DefaultExpiration)
	return report, nil
}

// ListTransactions serves the drill-down tables: the window's transactions
// of one type, using the same window resolution and timestamp normalization
// as the KPIs so both views always agree.
func (s *reportServiceImpl) ListTransactions(txType models.TransactionType, from, to time.Time) ([]models.Transaction, error) {
	if from.IsZero() {
		return nil, ErrMissingDateRange
	}

	snapshot, err := s.store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}

	window := processors.ResolveTimeWindow(from, to)
	subsets := processors.FilterLedger(snapshot.Transactions, window)

	transactions := []models.Transaction{}
	for _, tx := range subsets.Current {
		if txType == "" || tx.Type == txType {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// InvalidateCache drops every cached report; call it when the ledger is
// known to have changed out-of-band.
func (s *reportServiceImpl) InvalidateCache() {
	s.reportCache.Flush()
	logger.L.Info("Report cache invalidated")
}
