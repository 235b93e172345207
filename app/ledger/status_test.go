package ledger

import (
	"testing"

	"github.com/mepraz/bluebells/app/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		paid    string
		want    models.FeeStatus
	}{
		{"nothing billed nothing paid", "0", "0", models.StatusPaid},
		{"settled", "0", "500", models.StatusPaid},
		{"partially paid", "300", "200", models.StatusPartial},
		{"untouched", "500", "0", models.StatusUnpaid},
		{"overpaid", "-100", "600", models.StatusOverpaid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := StatusFor(dec(tc.balance), dec(tc.paid))
			if got != tc.want {
				t.Errorf("StatusFor(%s, %s) = %s, want %s", tc.balance, tc.paid, got, tc.want)
			}
		})
	}
}
