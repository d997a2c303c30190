package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattc321/fish-cli/internal/classifier"
	"github.com/mattc321/fish-cli/internal/dateutils"
	"github.com/mattc321/fish-cli/internal/models"
)

// VendorResolver is the slice of the vendor directory the compiler needs.
type VendorResolver interface {
	Resolve(rawName string) (int64, error)
	DisplayName(rawName string) string
}

// Compiler assembles expense rows into one balanced transaction.
type Compiler struct {
	classifier       *classifier.Classifier
	vendors          VendorResolver
	payableAccountID int64
}

// NewCompiler creates a Compiler. payableAccountID is the account the
// synthetic balancing credit posts to.
func NewCompiler(c *classifier.Classifier, vendors VendorResolver, payableAccountID int64) *Compiler {
	return &Compiler{
		classifier:       c,
		vendors:          vendors,
		payableAccountID: payableAccountID,
	}
}

// Compile turns expense rows into a single expense transaction: one debit
// line per row and exactly one credit to the reimbursement-payable account
// for the sum of all debits, which keeps the transaction balanced without
// the user specifying a credit side. The transaction is dated at the
// chronologically latest row date; rows need not arrive in date order.
//
// Row failures are accumulated, never raised individually. When any row
// fails, the returned error is a *CompileError carrying all of them, and
// the returned transaction holds whatever rows did compile so dry-run
// callers can still inspect it.
func (c *Compiler) Compile(rows []Row, description string) (*models.Transaction, error) {
	var (
		lines      []models.LineItem
		rowErrors  []*RowError
		latestDate time.Time
	)

	for i, row := range rows {
		num := i + 1
		line, date, err := c.compileRow(row)
		if err != nil {
			rowErrors = append(rowErrors, &RowError{Row: num, Err: err})
			continue
		}
		if date.After(latestDate) {
			latestDate = date
		}
		lines = append(lines, line)
	}

	var txn *models.Transaction
	if len(lines) > 0 {
		total := models.SumDebits(lines)
		lines = append(lines, models.LineItem{
			AccountID:       c.payableAccountID,
			Credit:          total,
			Description:     "Reimbursement payable",
			FunctionalClass: models.FunctionalClassNone,
		})
		txn = &models.Transaction{
			Type:                models.TransactionTypeExpense,
			Date:                dateutils.ToISODate(latestDate),
			Description:         description,
			ReimbursementStatus: models.ReimbursementStatusPending,
			IsPosted:            true,
			LineItems:           lines,
		}
	}

	if len(rowErrors) > 0 {
		return txn, &CompileError{RowErrors: rowErrors}
	}
	if txn == nil {
		return nil, fmt.Errorf("no data rows found")
	}
	return txn, nil
}

// compileRow resolves one expense row into its debit line item.
func (c *Compiler) compileRow(row Row) (models.LineItem, time.Time, error) {
	dateRaw := strings.TrimSpace(row.Date)
	vendorRaw := strings.TrimSpace(row.Vendor)
	descRaw := strings.TrimSpace(row.Description)
	amountRaw := strings.TrimSpace(row.Amount)

	if dateRaw == "" || descRaw == "" || amountRaw == "" {
		return models.LineItem{}, time.Time{}, fmt.Errorf("missing date/description/amount")
	}

	date, err := dateutils.ParseMDY(dateRaw)
	if err != nil {
		return models.LineItem{}, time.Time{}, err
	}

	amount, err := models.ParseAmount(amountRaw)
	if err != nil {
		return models.LineItem{}, time.Time{}, err
	}

	rule, err := c.classifier.Classify(descRaw)
	if err != nil {
		return models.LineItem{}, time.Time{}, err
	}

	vendorID, err := c.vendors.Resolve(vendorRaw)
	if err != nil {
		return models.LineItem{}, time.Time{}, err
	}

	// The canonical display name goes into the line description so the
	// posted transaction stays traceable back to the source alias.
	display := c.vendors.DisplayName(vendorRaw)

	return models.LineItem{
		AccountID:       rule.AccountID,
		Debit:           amount,
		Description:     fmt.Sprintf("%s — %s", display, descRaw),
		FunctionalClass: rule.FunctionalClass,
		VendorID:        &vendorID,
		SubcategoryID:   rule.SubcategoryID,
	}, date, nil
}
