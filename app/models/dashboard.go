package models

import "github.com/shopspring/decimal"

// DashboardStats backs the landing page cards.
type DashboardStats struct {
	TotalStudents     int             `json:"total_students"`
	TotalClasses      int             `json:"total_classes"`
	TotalBilled       decimal.Decimal `json:"total_billed"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`
	FeeCollectionRate float64         `json:"fee_collection_rate"`
}
