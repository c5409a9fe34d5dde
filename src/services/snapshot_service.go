package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/username/barcontrol/backend/src/logger"
)

// SnapshotService persists the headline KPIs of each closed business day.
// It runs after closing time, computes a 1-day report for yesterday through
// the same engine the dashboard uses, and stores the result, building the
// venue's historical daily summary feed.
type SnapshotService struct {
	reports ReportService
	store   LedgerStore
	cron    *cron.Cron
}

func NewSnapshotService(reports ReportService, store LedgerStore) *SnapshotService {
	return &SnapshotService{
		reports: reports,
		store:   store,
		cron:    cron.New(),
	}
}

// Start schedules the snapshot job. The spec comes from configuration; the
// default fires at 04:00, well after any tab has been closed.
func (s *SnapshotService) Start(cronSpec string) error {
	_, err := s.cron.AddFunc(cronSpec, s.runOnce)
	if err != nil {
		return err
	}
	s.cron.Start()
	logger.L.Info("Daily snapshot job scheduled", "spec", cronSpec)
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *SnapshotService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *SnapshotService) runOnce() {
	yesterday := time.Now().AddDate(0, 0, -1)

	report, err := s.reports.GetDashboardReport(yesterday, yesterday, 0)
	if err != nil {
		logger.L.Error("Daily snapshot: report computation failed", "error", err)
		return
	}

	day := yesterday.Format("2006-01-02")
	if err := s.store.SaveDailySnapshot(day, report); err != nil {
		logger.L.Error("Daily snapshot: persisting failed", "day", day, "error", err)
		return
	}
	logger.L.Info("Daily snapshot stored",
		"day", day,
		"revenue", report.Metrics.Revenue,
		"netProfit", report.Metrics.NetProfit)
}
