package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/models"
)

var decimalHundred = decimal.NewFromInt(100)

// GetDashboardStats returns the counts and fee aggregates for the admin
// dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM classes WHERE deleted_at IS NULL").
		Scan(&stats.TotalClasses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(total_billed), 0),
	                   COALESCE(SUM(total_paid), 0),
	                   COALESCE(SUM(balance), 0)
	                   FROM invoices`).
		Scan(&stats.TotalBilled, &stats.TotalCollected, &stats.TotalOutstanding)
	if err != nil {
		return nil, err
	}

	if stats.TotalBilled.IsPositive() {
		rate, _ := stats.TotalCollected.Div(stats.TotalBilled).Mul(decimalHundred).Float64()
		stats.FeeCollectionRate = rate
	}

	return stats, nil
}
