package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/models"
)

// StatusFor classifies a billed-vs-paid position.
//
//	balance < 0            -> Overpaid
//	balance = 0            -> Paid
//	balance > 0, paid > 0  -> Partial
//	balance > 0, paid = 0  -> Unpaid
func StatusFor(balance, totalPaid decimal.Decimal) models.FeeStatus {
	switch {
	case balance.IsNegative():
		return models.StatusOverpaid
	case balance.IsZero():
		return models.StatusPaid
	case totalPaid.IsPositive():
		return models.StatusPartial
	default:
		return models.StatusUnpaid
	}
}

// InvoiceStatus classifies a single invoice.
func InvoiceStatus(inv *models.Invoice) models.FeeStatus {
	return StatusFor(inv.Balance, inv.TotalPaid)
}
