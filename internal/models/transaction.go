// Package models defines the domain types shared across the application:
// transactions and line items as the Fi$h API expects them, and the
// decimal money helpers that keep amounts exact to two places.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LineItem is one side of a double-entry posting. Exactly one of Debit and
// Credit is nonzero for any given line; both are rendered as two-decimal
// strings on the wire.
type LineItem struct {
	AccountID       int64
	Debit           decimal.Decimal
	Credit          decimal.Decimal
	Description     string
	FunctionalClass string
	VendorID        *int64
	SubcategoryID   *int64
}

// lineItemJSON is the wire representation of a line item.
type lineItemJSON struct {
	AccountID       int64  `json:"accountId"`
	Debit           string `json:"debit"`
	Credit          string `json:"credit"`
	Description     string `json:"description,omitempty"`
	FunctionalClass string `json:"functionalClass,omitempty"`
	VendorID        *int64 `json:"vendorId,omitempty"`
	SubcategoryID   *int64 `json:"expenseSubcategoryId,omitempty"`
}

// MarshalJSON renders debit and credit as fixed two-decimal strings.
func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineItemJSON{
		AccountID:       li.AccountID,
		Debit:           FormatAmount(li.Debit),
		Credit:          FormatAmount(li.Credit),
		Description:     li.Description,
		FunctionalClass: li.FunctionalClass,
		VendorID:        li.VendorID,
		SubcategoryID:   li.SubcategoryID,
	})
}

// UnmarshalJSON accepts debit/credit as strings ("30.00") and defaults
// absent sides to zero. This is the format operators supply via --lines.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		AccountID       int64           `json:"accountId"`
		Debit           json.RawMessage `json:"debit"`
		Credit          json.RawMessage `json:"credit"`
		Description     string          `json:"description"`
		FunctionalClass string          `json:"functionalClass"`
		VendorID        *int64          `json:"vendorId"`
		SubcategoryID   *int64          `json:"expenseSubcategoryId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	debit, err := decodeAmount(raw.Debit)
	if err != nil {
		return err
	}
	credit, err := decodeAmount(raw.Credit)
	if err != nil {
		return err
	}

	li.AccountID = raw.AccountID
	li.Debit = debit
	li.Credit = credit
	li.Description = raw.Description
	li.FunctionalClass = raw.FunctionalClass
	li.VendorID = raw.VendorID
	li.SubcategoryID = raw.SubcategoryID
	return nil
}

// decodeAmount accepts a JSON string or number, or nothing at all.
func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseAmount(s)
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// Transaction is a pending transaction payload to be posted to the API.
// Debits equal credits across LineItems by construction; the compiler and
// the pay-bill workflow append the balancing side themselves.
type Transaction struct {
	Type                string
	Date                string // YYYY-MM-DD
	Description         string
	Reference           string
	VendorID            *int64
	CustomerID          *int64
	ReimbursementStatus string
	IsPosted            bool
	LineItems           []LineItem
}

// TotalDebits returns the sum of the debit sides of the transaction.
func (t *Transaction) TotalDebits() decimal.Decimal {
	return SumDebits(t.LineItems)
}

// TotalCredits returns the sum of the credit sides of the transaction.
func (t *Transaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, li := range t.LineItems {
		total = total.Add(li.Credit)
	}
	return total
}

// transactionJSON is the header portion of the create-transaction payload.
type transactionJSON struct {
	TransactionType     string `json:"transactionType"`
	Date                string `json:"date"`
	Description         string `json:"description"`
	Reference           string `json:"reference,omitempty"`
	VendorID            *int64 `json:"vendorId,omitempty"`
	CustomerID          *int64 `json:"customerId,omitempty"`
	ReimbursementStatus string `json:"reimbursementStatus,omitempty"`
	IsPosted            bool   `json:"isPosted"`
}

// MarshalJSON renders the full create-transaction body: a "transaction"
// header plus a "lineItems" array, as the API expects.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Transaction transactionJSON `json:"transaction"`
		LineItems   []LineItem      `json:"lineItems"`
	}{
		Transaction: transactionJSON{
			TransactionType:     t.Type,
			Date:                t.Date,
			Description:         t.Description,
			Reference:           t.Reference,
			VendorID:            t.VendorID,
			CustomerID:          t.CustomerID,
			ReimbursementStatus: t.ReimbursementStatus,
			IsPosted:            t.IsPosted,
		},
		LineItems: t.LineItems,
	})
}
