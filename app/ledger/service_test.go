package ledger

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mepraz/bluebells/app/models"
)

// --- MOCKS ---

// mockStore simulates the database for ledger tests.
type mockStore struct {
	students map[string]*models.Student
	classes  map[string]*models.Class
	invoices map[string]*models.Invoice
	settings *models.SchoolSettings

	errFindClass   error
	errAppend      error
	beforeAppend   func()
	createdInvoice *models.Invoice
}

func newMockStore() *mockStore {
	return &mockStore{
		students: map[string]*models.Student{},
		classes:  map[string]*models.Class{},
		invoices: map[string]*models.Invoice{},
		settings: &models.SchoolSettings{SchoolName: "Bluebell School"},
	}
}

func (m *mockStore) FindStudent(_ context.Context, id string) (*models.Student, error) {
	return m.students[id], nil
}

func (m *mockStore) FindClass(_ context.Context, id string) (*models.Class, error) {
	if m.errFindClass != nil {
		return nil, m.errFindClass
	}
	return m.classes[id], nil
}

func (m *mockStore) FindInvoice(_ context.Context, studentID, month string, year int) (*models.Invoice, error) {
	for _, inv := range m.invoices {
		if inv.StudentID == studentID && inv.Month == month && inv.Year == year {
			return inv, nil
		}
	}
	return nil, nil
}

func (m *mockStore) FindInvoiceByID(_ context.Context, id string) (*models.Invoice, error) {
	return m.invoices[id], nil
}

func (m *mockStore) FindInvoicesForStudent(_ context.Context, studentID string) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range m.invoices {
		if inv.StudentID == studentID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *mockStore) FindInvoicesForClassPeriod(_ context.Context, classID, month string, year int) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range m.invoices {
		if inv.ClassID == classID && inv.Month == month && inv.Year == year {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *mockStore) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	m.invoices[inv.ID] = inv
	m.createdInvoice = inv
	return nil
}

// AppendPayment mirrors the SQL implementation: the invoice is locked
// first and the totals come from the full payment list, never from values
// the caller read earlier. beforeAppend stands in for writes that land
// while the append waits on the row lock.
func (m *mockStore) AppendPayment(_ context.Context, invoiceID string, p *models.Payment) (*models.Invoice, error) {
	if m.errAppend != nil {
		return nil, m.errAppend
	}
	if m.beforeAppend != nil {
		m.beforeAppend()
	}
	inv := m.invoices[invoiceID]
	inv.Payments = append(inv.Payments, *p)
	total := decimal.Zero
	for _, payment := range inv.Payments {
		total = total.Add(payment.Amount)
	}
	inv.TotalPaid = total
	inv.Balance = inv.TotalBilled.Sub(total)
	return inv, nil
}

func (m *mockStore) FindSettings(_ context.Context) (*models.SchoolSettings, error) {
	return m.settings, nil
}

// --- helpers ---

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(store *mockStore) *Service {
	svc := NewService(store)
	svc.now = func() time.Time { return time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

// seedStudent adds a class with monthly=500, tuition=300, registration=1000
// and one student in it.
func seedStudent(store *mockStore, opening string, inTuition bool) {
	store.classes["class-5"] = &models.Class{
		ID:      "class-5",
		Name:    "Five",
		Section: "A",
		Fees: models.ClassFees{
			Registration: dec("1000"),
			Monthly:      dec("500"),
			Exam:         dec("250"),
			Tuition:      dec("300"),
		},
	}
	store.students["stu-1"] = &models.Student{
		ID:             "stu-1",
		SID:            "BB-001",
		Name:           "Anita Sharma",
		ClassID:        "class-5",
		OpeningBalance: dec(opening),
		InTuition:      inTuition,
		IsActive:       true,
	}
}

// checkInvariants fails the test if the invoice's derived fields disagree
// with their sources.
func checkInvariants(t *testing.T, inv *models.Invoice) {
	t.Helper()
	itemTotal := decimal.Zero
	for _, item := range inv.LineItems {
		itemTotal = itemTotal.Add(item.Amount)
	}
	if !inv.TotalBilled.Equal(itemTotal) {
		t.Errorf("totalBilled %s != sum of line items %s", inv.TotalBilled, itemTotal)
	}
	paidTotal := decimal.Zero
	for _, p := range inv.Payments {
		paidTotal = paidTotal.Add(p.Amount)
	}
	if !inv.TotalPaid.Equal(paidTotal) {
		t.Errorf("totalPaid %s != sum of payments %s", inv.TotalPaid, paidTotal)
	}
	if !inv.Balance.Equal(inv.TotalBilled.Sub(inv.TotalPaid)) {
		t.Errorf("balance %s != totalBilled %s - totalPaid %s", inv.Balance, inv.TotalBilled, inv.TotalPaid)
	}
}

func lineAmount(inv *models.Invoice, category models.FeeCategory) (decimal.Decimal, bool) {
	for _, item := range inv.LineItems {
		if item.FeeType == category {
			return item.Amount, true
		}
	}
	return decimal.Zero, false
}

// --- TESTS ---

func TestGenerateInvoice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setup      func(store *mockStore)
		studentID  string
		month      string
		year       int
		categories []models.FeeCategory
		wantErr    interface{} // pointer to the expected error type, nil for success
		check      func(t *testing.T, store *mockStore, inv *models.Invoice)
	}{
		{
			name:      "monthly fee only, no prior history",
			setup:     func(store *mockStore) { seedStudent(store, "0", false) },
			studentID: "stu-1",
			month:     "Baisakh",
			year:      2081,
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				if len(inv.LineItems) != 1 || inv.LineItems[0].FeeType != models.FeeMonthly {
					t.Fatalf("expected a single monthly line item, got %+v", inv.LineItems)
				}
				if !inv.TotalBilled.Equal(dec("500")) || !inv.Balance.Equal(dec("500")) {
					t.Errorf("expected totalBilled=500 balance=500, got %s/%s", inv.TotalBilled, inv.Balance)
				}
				if got := InvoiceStatus(inv); got != models.StatusUnpaid {
					t.Errorf("expected Unpaid, got %s", got)
				}
			},
		},
		{
			name:      "opening balance carried as previous dues",
			setup:     func(store *mockStore) { seedStudent(store, "200", false) },
			studentID: "stu-1",
			month:     "Baisakh",
			year:      2081,
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				dues, ok := lineAmount(inv, models.FeePreviousDues)
				if !ok || !dues.Equal(dec("200")) {
					t.Fatalf("expected previous dues of 200, got %+v", inv.LineItems)
				}
				if !inv.TotalBilled.Equal(dec("700")) {
					t.Errorf("expected totalBilled=700, got %s", inv.TotalBilled)
				}
			},
		},
		{
			name: "prior unpaid balance carried forward",
			setup: func(store *mockStore) {
				seedStudent(store, "0", false)
				store.invoices["inv-prior"] = &models.Invoice{
					ID: "inv-prior", StudentID: "stu-1", ClassID: "class-5",
					Month: "Baisakh", Year: 2081,
					TotalBilled: dec("500"), TotalPaid: dec("200"), Balance: dec("300"),
				}
			},
			studentID: "stu-1",
			month:     "Jestha",
			year:      2081,
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				dues, ok := lineAmount(inv, models.FeePreviousDues)
				if !ok || !dues.Equal(dec("300")) {
					t.Fatalf("expected previous dues of 300, got %+v", inv.LineItems)
				}
			},
		},
		{
			name: "fully paid prior invoice carries nothing",
			setup: func(store *mockStore) {
				seedStudent(store, "150", false)
				store.invoices["inv-prior"] = &models.Invoice{
					ID: "inv-prior", StudentID: "stu-1", ClassID: "class-5",
					Month: "Baisakh", Year: 2081,
					TotalBilled: dec("500"), TotalPaid: dec("500"), Balance: dec("0"),
				}
			},
			studentID: "stu-1",
			month:     "Jestha",
			year:      2081,
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				if _, ok := lineAmount(inv, models.FeePreviousDues); ok {
					t.Fatalf("expected no previous dues item, got %+v", inv.LineItems)
				}
				// Opening balance only applies before the first invoice.
				if !inv.TotalBilled.Equal(dec("500")) {
					t.Errorf("expected totalBilled=500, got %s", inv.TotalBilled)
				}
			},
		},
		{
			name:      "tuition billed only for tuition students",
			setup:     func(store *mockStore) { seedStudent(store, "0", true) },
			studentID: "stu-1",
			month:     "Baisakh",
			year:      2081,
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				tuition, ok := lineAmount(inv, models.FeeTuition)
				if !ok || !tuition.Equal(dec("300")) {
					t.Fatalf("expected tuition line of 300, got %+v", inv.LineItems)
				}
				if !inv.TotalBilled.Equal(dec("800")) {
					t.Errorf("expected totalBilled=800, got %s", inv.TotalBilled)
				}
			},
		},
		{
			name:       "tuition request ignored for non-tuition students",
			setup:      func(store *mockStore) { seedStudent(store, "0", false) },
			studentID:  "stu-1",
			month:      "Baisakh",
			year:       2081,
			categories: []models.FeeCategory{models.FeeTuition},
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				if _, ok := lineAmount(inv, models.FeeTuition); ok {
					t.Fatalf("tuition must not be billed for non-tuition students")
				}
			},
		},
		{
			name:       "one-off categories billed on request, zero amounts skipped",
			setup:      func(store *mockStore) { seedStudent(store, "0", false) },
			studentID:  "stu-1",
			month:      "Baisakh",
			year:       2081,
			categories: []models.FeeCategory{models.FeeRegistration, models.FeeExam, models.FeeSports},
			check: func(t *testing.T, store *mockStore, inv *models.Invoice) {
				if _, ok := lineAmount(inv, models.FeeRegistration); !ok {
					t.Errorf("expected registration line item")
				}
				if _, ok := lineAmount(inv, models.FeeExam); !ok {
					t.Errorf("expected exam line item")
				}
				// Sports has a zero scheduled amount for this class.
				if _, ok := lineAmount(inv, models.FeeSports); ok {
					t.Errorf("zero-amount category must be skipped")
				}
				if !inv.TotalBilled.Equal(dec("1750")) {
					t.Errorf("expected totalBilled=1750, got %s", inv.TotalBilled)
				}
			},
		},
		{
			name: "duplicate billing period rejected",
			setup: func(store *mockStore) {
				seedStudent(store, "0", false)
				store.invoices["inv-1"] = &models.Invoice{
					ID: "inv-1", StudentID: "stu-1", ClassID: "class-5",
					Month: "Baisakh", Year: 2081,
					TotalBilled: dec("500"), Balance: dec("500"),
				}
			},
			studentID: "stu-1",
			month:     "Baisakh",
			year:      2081,
			wantErr:   &ValidationError{},
			check: func(t *testing.T, store *mockStore, _ *models.Invoice) {
				if store.createdInvoice != nil {
					t.Errorf("no invoice must be created on a duplicate period")
				}
				if len(store.invoices) != 1 {
					t.Errorf("existing invoice must be untouched")
				}
			},
		},
		{
			name:      "unknown month rejected",
			setup:     func(store *mockStore) { seedStudent(store, "0", false) },
			studentID: "stu-1",
			month:     "January",
			year:      2081,
			wantErr:   &ValidationError{},
		},
		{
			name:      "missing student",
			setup:     func(store *mockStore) {},
			studentID: "stu-404",
			month:     "Baisakh",
			year:      2081,
			wantErr:   &NotFoundError{},
		},
		{
			name: "missing class",
			setup: func(store *mockStore) {
				seedStudent(store, "0", false)
				delete(store.classes, "class-5")
			},
			studentID: "stu-1",
			month:     "Baisakh",
			year:      2081,
			wantErr:   &NotFoundError{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockStore()
			tc.setup(store)
			svc := newTestService(store)

			inv, err := svc.GenerateInvoice(ctx, tc.studentID, tc.month, tc.year, tc.categories)

			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got invoice %+v", inv)
				}
				if !errorIs(err, tc.wantErr) {
					t.Fatalf("expected %T, got %T (%v)", tc.wantErr, err, err)
				}
				if tc.check != nil {
					tc.check(t, store, nil)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store.createdInvoice != inv {
				t.Fatalf("invoice must be persisted through the store")
			}
			if !inv.TotalPaid.IsZero() {
				t.Errorf("new invoice must start with totalPaid=0, got %s", inv.TotalPaid)
			}
			checkInvariants(t, inv)
			if tc.check != nil {
				tc.check(t, store, inv)
			}
		})
	}
}

// errorIs matches err against the expected taxonomy type.
func errorIs(err error, want interface{}) bool {
	switch want.(type) {
	case *ValidationError:
		var target *ValidationError
		return errors.As(err, &target)
	case *NotFoundError:
		var target *NotFoundError
		return errors.As(err, &target)
	case *PersistenceError:
		var target *PersistenceError
		return errors.As(err, &target)
	}
	return false
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	seedInvoice := func(store *mockStore) {
		seedStudent(store, "0", false)
		store.invoices["inv-1"] = &models.Invoice{
			ID: "inv-1", StudentID: "stu-1", ClassID: "class-5",
			Month: "Baisakh", Year: 2081,
			LineItems:   []models.LineItem{{FeeType: models.FeeMonthly, Amount: dec("500")}},
			TotalBilled: dec("500"), TotalPaid: decimal.Zero, Balance: dec("500"),
		}
	}

	t.Run("payment settles balance exactly", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkInvariants(t, inv)
		if !inv.TotalPaid.Equal(dec("500")) || !inv.Balance.IsZero() {
			t.Errorf("expected totalPaid=500 balance=0, got %s/%s", inv.TotalPaid, inv.Balance)
		}
		if got := InvoiceStatus(inv); got != models.StatusPaid {
			t.Errorf("expected Paid, got %s", got)
		}
	})

	t.Run("overpayment drives balance negative", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		if _, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("500")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("100"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkInvariants(t, inv)
		if !inv.TotalPaid.Equal(dec("600")) || !inv.Balance.Equal(dec("-100")) {
			t.Errorf("expected totalPaid=600 balance=-100, got %s/%s", inv.TotalPaid, inv.Balance)
		}
		if got := InvoiceStatus(inv); got != models.StatusOverpaid {
			t.Errorf("expected Overpaid, got %s", got)
		}
	})

	t.Run("one rupee beyond the balance flips Paid to Overpaid", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("501"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := InvoiceStatus(inv); got != models.StatusOverpaid {
			t.Errorf("expected Overpaid, got %s", got)
		}
	})

	t.Run("partial payment", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("200"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkInvariants(t, inv)
		if got := InvoiceStatus(inv); got != models.StatusPartial {
			t.Errorf("expected Partial, got %s", got)
		}
	})

	t.Run("totalPaid is monotonic across payments", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		prev := decimal.Zero
		for _, amount := range []string{"50", "125", "1", "500"} {
			inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec(amount))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.TotalPaid.LessThan(prev) {
				t.Fatalf("totalPaid decreased: %s -> %s", prev, inv.TotalPaid)
			}
			prev = inv.TotalPaid
			checkInvariants(t, inv)
		}
	})

	t.Run("totals include a payment landed by another writer", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		// A second cashier's payment commits while this append waits on
		// the invoice lock; the recomputed totals must count it.
		store.beforeAppend = func() {
			inv := store.invoices["inv-1"]
			inv.Payments = append(inv.Payments, models.Payment{
				ID: "pay-other", StudentID: "stu-1", InvoiceID: "inv-1", Amount: dec("500"),
			})
		}
		svc := newTestService(store)

		inv, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("200"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkInvariants(t, inv)
		if !inv.TotalPaid.Equal(dec("700")) {
			t.Errorf("expected totalPaid=700 counting both payments, got %s", inv.TotalPaid)
		}
		if !inv.Balance.Equal(dec("-200")) {
			t.Errorf("expected balance=-200, got %s", inv.Balance)
		}
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		for _, amount := range []string{"0", "-50"} {
			_, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec(amount))
			if !errorIs(err, &ValidationError{}) {
				t.Errorf("amount %s: expected ValidationError, got %v", amount, err)
			}
		}
		if len(store.invoices["inv-1"].Payments) != 0 {
			t.Errorf("rejected payments must not be stored")
		}
	})

	t.Run("invoice of another student is not found", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		_, err := svc.RecordPayment(ctx, "stu-2", "inv-1", dec("100"))
		if !errorIs(err, &NotFoundError{}) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("missing invoice is not found", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		svc := newTestService(store)

		_, err := svc.RecordPayment(ctx, "stu-1", "inv-404", dec("100"))
		if !errorIs(err, &NotFoundError{}) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("storage failure leaves the invoice untouched", func(t *testing.T) {
		store := newMockStore()
		seedInvoice(store)
		store.errAppend = errors.New("connection reset")
		svc := newTestService(store)

		_, err := svc.RecordPayment(ctx, "stu-1", "inv-1", dec("100"))
		if !errorIs(err, &PersistenceError{}) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
		inv := store.invoices["inv-1"]
		if len(inv.Payments) != 0 || !inv.Balance.Equal(dec("500")) {
			t.Errorf("failed append must not change the invoice: %+v", inv)
		}
	})
}

func TestStudentFeeSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("opening balance with no invoices", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "200", false)
		svc := newTestService(store)

		summary, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.OverallBalance.Equal(dec("200")) {
			t.Errorf("expected overallBalance=200, got %s", summary.OverallBalance)
		}
		if summary.Status != models.StatusUnpaid {
			t.Errorf("expected Unpaid, got %s", summary.Status)
		}
		if summary.LatestInvoice != nil {
			t.Errorf("expected no latest invoice")
		}
	})

	t.Run("student details pass through untouched", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "0", false)
		picture := "https://cdn.example.com/students/bb-001.jpg"
		store.students["stu-1"].ProfilePicture = &picture
		svc := newTestService(store)

		summary, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Student.ProfilePicture == nil || *summary.Student.ProfilePicture != picture {
			t.Errorf("expected profile picture %q on the summary, got %v", picture, summary.Student.ProfilePicture)
		}
	})

	t.Run("latest invoice follows the calendar, not the alphabet", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "0", false)
		// Ashadh sorts before Baisakh lexically but is two months later in
		// the calendar.
		store.invoices["inv-baisakh"] = &models.Invoice{
			ID: "inv-baisakh", StudentID: "stu-1", ClassID: "class-5",
			Month: "Baisakh", Year: 2081,
			TotalBilled: dec("500"), TotalPaid: dec("500"), Balance: dec("0"),
		}
		store.invoices["inv-ashadh"] = &models.Invoice{
			ID: "inv-ashadh", StudentID: "stu-1", ClassID: "class-5",
			Month: "Ashadh", Year: 2081,
			TotalBilled: dec("500"), TotalPaid: dec("100"), Balance: dec("400"),
		}
		svc := newTestService(store)

		summary, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.LatestInvoice == nil || summary.LatestInvoice.ID != "inv-ashadh" {
			t.Fatalf("expected Ashadh invoice to be latest, got %+v", summary.LatestInvoice)
		}
		if !summary.OverallBalance.Equal(dec("400")) {
			t.Errorf("expected overallBalance=400, got %s", summary.OverallBalance)
		}
		if !summary.TotalPaidOverall.Equal(dec("600")) {
			t.Errorf("expected totalPaidOverall=600, got %s", summary.TotalPaidOverall)
		}
		if summary.Status != models.StatusPartial {
			t.Errorf("expected Partial, got %s", summary.Status)
		}
	})

	t.Run("later year wins regardless of month", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "0", false)
		store.invoices["inv-chaitra"] = &models.Invoice{
			ID: "inv-chaitra", StudentID: "stu-1", ClassID: "class-5",
			Month: "Chaitra", Year: 2080,
			TotalBilled: dec("500"), TotalPaid: dec("0"), Balance: dec("500"),
		}
		store.invoices["inv-baisakh"] = &models.Invoice{
			ID: "inv-baisakh", StudentID: "stu-1", ClassID: "class-5",
			Month: "Baisakh", Year: 2081,
			TotalBilled: dec("700"), TotalPaid: dec("0"), Balance: dec("700"),
		}
		svc := newTestService(store)

		summary, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.LatestInvoice == nil || summary.LatestInvoice.ID != "inv-baisakh" {
			t.Fatalf("expected 2081 Baisakh invoice to be latest, got %+v", summary.LatestInvoice)
		}
	})

	t.Run("summary is idempotent", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "0", false)
		store.invoices["inv-1"] = &models.Invoice{
			ID: "inv-1", StudentID: "stu-1", ClassID: "class-5",
			Month: "Baisakh", Year: 2081,
			TotalBilled: dec("500"), TotalPaid: dec("200"), Balance: dec("300"),
		}
		svc := newTestService(store)

		first, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("summaries differ without intervening mutations:\n%+v\n%+v", first, second)
		}
	})

	t.Run("unresolvable class does not fail the summary", func(t *testing.T) {
		store := newMockStore()
		seedStudent(store, "0", false)
		store.errFindClass = errors.New("class lookup failed")
		svc := newTestService(store)

		summary, err := svc.StudentFeeSummary(ctx, "stu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Class != nil {
			t.Errorf("expected nil class, got %+v", summary.Class)
		}
		if summary.Class.DisplayName() != "N/A" {
			t.Errorf("expected N/A display name, got %q", summary.Class.DisplayName())
		}
	})

	t.Run("missing student", func(t *testing.T) {
		store := newMockStore()
		svc := newTestService(store)

		_, err := svc.StudentFeeSummary(ctx, "stu-404")
		if !errorIs(err, &NotFoundError{}) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestClassMonthlySummary(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seedStudent(store, "0", false)
	store.invoices["inv-1"] = &models.Invoice{
		ID: "inv-1", StudentID: "stu-1", ClassID: "class-5",
		Month: "Baisakh", Year: 2081,
		TotalBilled: dec("500"), TotalPaid: dec("500"), Balance: dec("0"),
	}
	store.invoices["inv-2"] = &models.Invoice{
		ID: "inv-2", StudentID: "stu-2", ClassID: "class-5",
		Month: "Baisakh", Year: 2081,
		TotalBilled: dec("700"), TotalPaid: dec("100"), Balance: dec("600"),
	}
	// Different period, must not be counted.
	store.invoices["inv-3"] = &models.Invoice{
		ID: "inv-3", StudentID: "stu-1", ClassID: "class-5",
		Month: "Jestha", Year: 2081,
		TotalBilled: dec("500"), TotalPaid: dec("0"), Balance: dec("500"),
	}
	svc := newTestService(store)

	summary, err := svc.ClassMonthlySummary(ctx, "class-5", "Baisakh", 2081)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.TotalBilled.Equal(dec("1200")) {
		t.Errorf("expected totalBilled=1200, got %s", summary.TotalBilled)
	}
	if !summary.TotalCollected.Equal(dec("600")) {
		t.Errorf("expected totalCollected=600, got %s", summary.TotalCollected)
	}
	if !summary.TotalDues.Equal(dec("600")) {
		t.Errorf("expected totalDues=600, got %s", summary.TotalDues)
	}

	if _, err := svc.ClassMonthlySummary(ctx, "class-404", "Baisakh", 2081); !errorIs(err, &NotFoundError{}) {
		t.Errorf("expected NotFoundError for unknown class, got %v", err)
	}
	if _, err := svc.ClassMonthlySummary(ctx, "class-5", "April", 2081); !errorIs(err, &ValidationError{}) {
		t.Errorf("expected ValidationError for unknown month, got %v", err)
	}
}

func TestStudentBill(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seedStudent(store, "0", false)
	store.invoices["inv-1"] = &models.Invoice{
		ID: "inv-1", StudentID: "stu-1", ClassID: "class-5",
		Month: "Jestha", Year: 2081,
		LineItems: []models.LineItem{
			{FeeType: models.FeeMonthly, Amount: dec("500")},
			{FeeType: models.FeePreviousDues, Amount: dec("250")},
		},
		TotalBilled: dec("750"), TotalPaid: dec("0"), Balance: dec("750"),
	}
	svc := newTestService(store)

	bill, err := svc.StudentBill(ctx, "stu-1", "inv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bill.School == nil || bill.School.SchoolName != "Bluebell School" {
		t.Errorf("expected school letterhead on the bill")
	}
	if !bill.PreviousDues.Equal(dec("250")) {
		t.Errorf("expected previousDues=250, got %s", bill.PreviousDues)
	}

	if _, err := svc.StudentBill(ctx, "stu-2", "inv-1"); !errorIs(err, &NotFoundError{}) {
		t.Errorf("expected NotFoundError for another student's bill, got %v", err)
	}
}
