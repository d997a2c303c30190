package workflow

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattc321/fish-cli/internal/fish"
	"github.com/mattc321/fish-cli/internal/models"
)

type fakePoster struct {
	transactions []*models.Transaction
	applications []fish.PaymentApplicationRequest

	failOnTransaction int // 1-based index of the CreateTransaction call that fails, 0 = never
	failApplication   bool

	nextID int64
}

func (f *fakePoster) CreateTransaction(ctx context.Context, org string, txn *models.Transaction) (*fish.TransactionRecord, error) {
	f.transactions = append(f.transactions, txn)
	if f.failOnTransaction == len(f.transactions) {
		return nil, fmt.Errorf("server rejected %s", txn.Type)
	}
	f.nextID++
	return &fish.TransactionRecord{ID: f.nextID, Date: txn.Date, TransactionType: txn.Type}, nil
}

func (f *fakePoster) CreatePaymentApplication(ctx context.Context, org string, req fish.PaymentApplicationRequest) (*fish.PaymentApplication, error) {
	f.applications = append(f.applications, req)
	if f.failApplication {
		return nil, fmt.Errorf("server rejected application")
	}
	f.nextID++
	return &fish.PaymentApplication{
		ID:                     f.nextID,
		PaymentTransactionID:   req.PaymentTransactionID,
		AppliedToTransactionID: req.AppliedToTransactionID,
		Amount:                 req.Amount,
	}, nil
}

func testParams() Params {
	vendorID := int64(42)
	return Params{
		Org:         "1",
		Date:        "2026-01-05",
		Description: "JetBrains annual license",
		ExpenseLines: []models.LineItem{
			{AccountID: 48, Debit: decimal.RequireFromString("149.00"), Description: "IDE license"},
		},
		VendorID:      &vendorID,
		APAccountID:   12,
		CashAccountID: 1,
	}
}

func TestPayBillSuccess(t *testing.T) {
	poster := &fakePoster{nextID: 99}
	result, err := New(poster).PayBill(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.BillID)
	assert.Equal(t, int64(101), result.PaymentID)
	assert.Equal(t, int64(102), result.ApplicationID)

	require.Len(t, poster.transactions, 2)
	bill, payment := poster.transactions[0], poster.transactions[1]

	assert.Equal(t, models.TransactionTypeBill, bill.Type)
	require.Len(t, bill.LineItems, 2)
	assert.Equal(t, int64(12), bill.LineItems[1].AccountID)
	assert.Equal(t, "149.00", models.FormatAmount(bill.LineItems[1].Credit))
	assert.True(t, bill.TotalDebits().Equal(bill.TotalCredits()))

	assert.Equal(t, models.TransactionTypePayment, payment.Type)
	assert.Equal(t, "Payment — JetBrains annual license", payment.Description)
	assert.Equal(t, "2026-01-05", payment.Date)
	require.Len(t, payment.LineItems, 2)
	assert.Equal(t, int64(12), payment.LineItems[0].AccountID)
	assert.Equal(t, int64(1), payment.LineItems[1].AccountID)
	assert.True(t, payment.TotalDebits().Equal(payment.TotalCredits()))

	require.Len(t, poster.applications, 1)
	app := poster.applications[0]
	assert.Equal(t, result.PaymentID, app.PaymentTransactionID)
	assert.Equal(t, result.BillID, app.AppliedToTransactionID)
	assert.Equal(t, "149.00", app.Amount)
	assert.Equal(t, "2026-01-05", app.AppliedDate)
}

func TestPayBillExplicitPaymentDate(t *testing.T) {
	poster := &fakePoster{}
	p := testParams()
	p.PaymentDate = "2026-01-10"

	_, err := New(poster).PayBill(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", poster.transactions[0].Date)
	assert.Equal(t, "2026-01-10", poster.transactions[1].Date)
	assert.Equal(t, "2026-01-10", poster.applications[0].AppliedDate)
}

func TestPayBillBillFailure(t *testing.T) {
	poster := &fakePoster{failOnTransaction: 1}
	result, err := New(poster).PayBill(context.Background(), testParams())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepBill, stepErr.Step)
	assert.Contains(t, stepErr.Error(), "nothing was created")
	assert.Equal(t, Result{}, result)
	assert.Len(t, poster.transactions, 1)
	assert.Empty(t, poster.applications)
}

func TestPayBillPaymentFailureReportsOrphanedBill(t *testing.T) {
	poster := &fakePoster{failOnTransaction: 2, nextID: 99}
	result, err := New(poster).PayBill(context.Background(), testParams())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepPayment, stepErr.Step)
	assert.Equal(t, int64(100), stepErr.BillID)
	assert.Contains(t, stepErr.Error(), "bill 100")
	assert.Equal(t, int64(100), result.BillID)
	assert.Zero(t, result.PaymentID)

	// Step 3 was never attempted.
	assert.Empty(t, poster.applications)
}

func TestPayBillApplicationFailureReportsBothIDs(t *testing.T) {
	poster := &fakePoster{failApplication: true, nextID: 99}
	result, err := New(poster).PayBill(context.Background(), testParams())

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepApplication, stepErr.Step)
	assert.Equal(t, int64(100), stepErr.BillID)
	assert.Equal(t, int64(101), stepErr.PaymentID)
	assert.Contains(t, stepErr.Error(), "bill 100")
	assert.Contains(t, stepErr.Error(), "payment 101")
	assert.Equal(t, int64(100), result.BillID)
	assert.Equal(t, int64(101), result.PaymentID)
	assert.Zero(t, result.ApplicationID)
}

func TestDryRunMakesNoCalls(t *testing.T) {
	poster := &fakePoster{}
	var buf bytes.Buffer

	require.NoError(t, New(poster).DryRun(&buf, testParams()))

	assert.Empty(t, poster.transactions)
	assert.Empty(t, poster.applications)
	assert.Contains(t, buf.String(), "[DRY RUN] Step 1 — Bill:")
	assert.Contains(t, buf.String(), "149.00")
}
