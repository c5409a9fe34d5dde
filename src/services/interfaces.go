package services

import (
	"errors"
	"time"

	"github.com/username/barcontrol/backend/src/models"
	"github.com/username/barcontrol/backend/src/processors"
)

// ErrMissingDateRange is returned when a report is requested without a start
// date. The engine treats that as its defined "no data" state; the HTTP
// layer maps it to a client error.
var ErrMissingDateRange = errors.New("report date range requires a start date")

// LedgerStore is the persistence collaborator: it supplies atomically
// consistent snapshots of the ledger and reference collections and records
// daily closing snapshots. The report engine itself never touches storage.
type LedgerStore interface {
	LoadSnapshot() (processors.Snapshot, error)
	SaveDailySnapshot(day string, report *models.DashboardReport) error
}

// ReportService derives dashboard reports from the current ledger snapshot.
type ReportService interface {
	GetDashboardReport(from, to time.Time, manualGoal float64) (*models.DashboardReport, error)
	ListTransactions(txType models.TransactionType, from, to time.Time) ([]models.Transaction, error)
	InvalidateCache()
}
