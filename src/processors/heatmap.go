package processors

import (
	"fmt"
	"time"

	"github.com/username/barcontrol/backend/src/models"
)

// BuildOccupancyHeatmap fills the day-of-week x hour grid from the
// current-window sales. Each sale increments every whole hour between the
// moment its tab was opened and the moment it closed, both truncated to the
// top of the hour, inclusive: a tab open 10:00-13:00 marks 10, 11, 12 and 13.
// This models the venue being occupied for the whole life of the tab, not
// just the hour the bill was settled.
//
// The grid is emitted dense (7x24 cells, zero-valued where empty) so the
// rendering layer never has to fill gaps.
func BuildOccupancyHeatmap(sales []models.Transaction) []models.HeatmapCell {
	var grid [7][24]int

	for _, tx := range sales {
		if tx.Type != models.TransactionSale || tx.Timestamp.IsZero() {
			continue
		}
		closedAt := tx.Timestamp.Time.Truncate(time.Hour)
		openedAt := tx.OpenedAt().Time.Truncate(time.Hour)
		if openedAt.After(closedAt) {
			// Inconsistent tab data; count only the closing hour.
			openedAt = closedAt
		}
		for h := openedAt; !h.After(closedAt); h = h.Add(time.Hour) {
			grid[int(h.Weekday())][h.Hour()]++
		}
	}

	cells := make([]models.HeatmapCell, 0, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			cells = append(cells, models.HeatmapCell{Day: day, Hour: hour, Value: grid[day][hour]})
		}
	}
	return cells
}

// BuildHourlyHistogram buckets sales by the hour they were finalized,
// emitted as a dense 24-slot series in hour order.
func BuildHourlyHistogram(sales []models.Transaction) []models.HourValue {
	var buckets [24]int
	for _, tx := range sales {
		if tx.Type != models.TransactionSale || tx.Timestamp.IsZero() {
			continue
		}
		buckets[tx.Timestamp.Hour()]++
	}

	histogram := make([]models.HourValue, 24)
	for hour := range buckets {
		histogram[hour] = models.HourValue{Hour: fmt.Sprintf("%02d:00", hour), Value: buckets[hour]}
	}
	return histogram
}
