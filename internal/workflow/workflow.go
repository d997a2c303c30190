// Package workflow sequences the three dependent remote mutations that
// record a cash-paid bill: bill, payment, payment application. The remote
// API has no multi-step transaction, so a failure partway through leaves
// already-created entities behind; the workflow halts at the failing step
// and reports every ID created so far for manual follow-up.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mattc321/fish-cli/internal/fish"
	"github.com/mattc321/fish-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Workflow steps, in order.
const (
	StepBill        = "bill"
	StepPayment     = "payment"
	StepApplication = "payment application"
)

// Poster is the slice of the API client the workflow needs.
type Poster interface {
	CreateTransaction(ctx context.Context, org string, txn *models.Transaction) (*fish.TransactionRecord, error)
	CreatePaymentApplication(ctx context.Context, org string, req fish.PaymentApplicationRequest) (*fish.PaymentApplication, error)
}

// Params describes a cash-paid bill to record.
type Params struct {
	Org           string
	Date          string // bill date, YYYY-MM-DD
	Description   string
	ExpenseLines  []models.LineItem // debit lines only
	VendorID      *int64
	Reference     string
	APAccountID   int64  // accounts payable
	CashAccountID int64  // account the payment draws from
	PaymentDate   string // defaults to the bill date
}

// Result holds the remote IDs created by a fully successful run.
type Result struct {
	BillID        int64
	PaymentID     int64
	ApplicationID int64
}

// StepError reports a failed step together with every remote entity the
// earlier steps already created. There is no rollback: the operator must
// finish or correct the sequence manually using the reported IDs.
type StepError struct {
	Step      string
	BillID    int64
	PaymentID int64
	Err       error
}

func (e *StepError) Error() string {
	switch e.Step {
	case StepPayment:
		return fmt.Sprintf("%s creation failed after bill %d was created: %v (the bill now exists remotely without a payment; create the payment manually)",
			e.Step, e.BillID, e.Err)
	case StepApplication:
		return fmt.Sprintf("%s failed after bill %d and payment %d were created: %v (both exist remotely; apply the payment manually)",
			e.Step, e.BillID, e.PaymentID, e.Err)
	default:
		return fmt.Sprintf("%s creation failed: %v (nothing was created)", e.Step, e.Err)
	}
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Workflow records cash-paid bills through a Poster.
type Workflow struct {
	client Poster
}

// New creates a Workflow over the given client.
func New(client Poster) *Workflow {
	return &Workflow{client: client}
}

// PayBill runs the three steps in order, halting at the first failure.
// Each step's success is reported before the next is attempted.
func (w *Workflow) PayBill(ctx context.Context, p Params) (Result, error) {
	total := models.SumDebits(p.ExpenseLines)

	bill := buildBill(p, total)
	billRec, err := w.client.CreateTransaction(ctx, p.Org, bill)
	if err != nil {
		return Result{}, &StepError{Step: StepBill, Err: err}
	}
	log.WithField("id", billRec.ID).Infof("Step 1: created bill — %s", p.Description)

	payment := buildPayment(p, total)
	paymentRec, err := w.client.CreateTransaction(ctx, p.Org, payment)
	if err != nil {
		return Result{BillID: billRec.ID}, &StepError{Step: StepPayment, BillID: billRec.ID, Err: err}
	}
	log.WithField("id", paymentRec.ID).Infof("Step 2: created payment — %s", payment.Description)

	app, err := w.client.CreatePaymentApplication(ctx, p.Org, fish.PaymentApplicationRequest{
		PaymentTransactionID:   paymentRec.ID,
		AppliedToTransactionID: billRec.ID,
		Amount:                 models.FormatAmount(total),
		AppliedDate:            paymentDate(p),
	})
	if err != nil {
		return Result{BillID: billRec.ID, PaymentID: paymentRec.ID},
			&StepError{Step: StepApplication, BillID: billRec.ID, PaymentID: paymentRec.ID, Err: err}
	}
	log.WithField("id", app.ID).Infof("Step 3: created payment application — $%s", models.FormatAmount(total))

	return Result{BillID: billRec.ID, PaymentID: paymentRec.ID, ApplicationID: app.ID}, nil
}

// DryRun prints the three intended payloads without any remote call.
func (w *Workflow) DryRun(out io.Writer, p Params) error {
	total := models.SumDebits(p.ExpenseLines)

	bill := buildBill(p, total)
	data, err := json.MarshalIndent(bill, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "[DRY RUN] Step 1 — Bill:")
	fmt.Fprintln(out, string(data))
	fmt.Fprintf(out, "\nStep 2 — Payment (%s): DR acct:%d $%s, CR acct:%d $%s\n",
		paymentDate(p), p.APAccountID, models.FormatAmount(total), p.CashAccountID, models.FormatAmount(total))
	fmt.Fprintf(out, "Step 3 — Payment application: $%s\n", models.FormatAmount(total))
	return nil
}

// buildBill debits the expense lines and credits accounts payable for
// their sum, dated at the bill date.
func buildBill(p Params, total decimal.Decimal) *models.Transaction {
	lines := make([]models.LineItem, 0, len(p.ExpenseLines)+1)
	lines = append(lines, p.ExpenseLines...)
	lines = append(lines, models.LineItem{
		AccountID:       p.APAccountID,
		Credit:          total,
		Description:     "Accounts payable",
		FunctionalClass: models.FunctionalClassNone,
	})

	return &models.Transaction{
		Type:        models.TransactionTypeBill,
		Date:        p.Date,
		Description: p.Description,
		Reference:   p.Reference,
		VendorID:    p.VendorID,
		IsPosted:    true,
		LineItems:   lines,
	}
}

// buildPayment debits accounts payable and credits the cash account,
// dated at the payment date, which defaults to the bill date.
func buildPayment(p Params, total decimal.Decimal) *models.Transaction {
	return &models.Transaction{
		Type:        models.TransactionTypePayment,
		Date:        paymentDate(p),
		Description: fmt.Sprintf("Payment — %s", p.Description),
		VendorID:    p.VendorID,
		IsPosted:    true,
		LineItems: []models.LineItem{
			{
				AccountID:       p.APAccountID,
				Debit:           total,
				Description:     "Clear accounts payable",
				FunctionalClass: models.FunctionalClassNone,
			},
			{
				AccountID:       p.CashAccountID,
				Credit:          total,
				Description:     "Payment from cash account",
				FunctionalClass: models.FunctionalClassNone,
			},
		},
	}
}

func paymentDate(p Params) string {
	if p.PaymentDate != "" {
		return p.PaymentDate
	}
	return p.Date
}
