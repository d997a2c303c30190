package fish

// Business is an organization visible to the authenticated client.
type Business struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	EntityType      string `json:"entityType"`
	FiscalYearStart string `json:"fiscalYearStart"`
}

// Account is one entry in an organization's chart of accounts.
type Account struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
}

// Vendor is a payee known to the remote ledger.
type Vendor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// VendorCreate is the payload for creating a vendor.
type VendorCreate struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Customer is a payer known to the remote ledger.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// FiscalYear describes one accounting period.
type FiscalYear struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsClosed  bool   `json:"isClosed"`
}

// LineItemRecord is a posted line item as returned by the API. Amounts
// stay strings on the read path; this client never does arithmetic on them.
type LineItemRecord struct {
	AccountID   int64  `json:"accountId"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Description string `json:"description"`
}

// TransactionRecord is a posted transaction as returned by the API.
type TransactionRecord struct {
	ID              int64            `json:"id"`
	Date            string           `json:"date"`
	TransactionType string           `json:"transactionType"`
	Description     string           `json:"description"`
	Reference       string           `json:"reference"`
	IsPosted        bool             `json:"isPosted"`
	LineItems       []LineItemRecord `json:"lineItems"`
}

// PaymentApplication links a payment transaction to the bill or invoice
// it pays down.
type PaymentApplication struct {
	ID                     int64  `json:"id"`
	PaymentTransactionID   int64  `json:"paymentTransactionId"`
	AppliedToTransactionID int64  `json:"appliedToTransactionId"`
	Amount                 string `json:"amount"`
	AppliedDate            string `json:"appliedDate"`
}

// PaymentApplicationRequest is the payload for creating a payment
// application.
type PaymentApplicationRequest struct {
	PaymentTransactionID   int64  `json:"paymentTransactionId"`
	AppliedToTransactionID int64  `json:"appliedToTransactionId"`
	Amount                 string `json:"amount"`
	AppliedDate            string `json:"appliedDate,omitempty"`
}

// PaymentStatusEntry reports how much of a transaction has been paid.
type PaymentStatusEntry struct {
	Applied string `json:"applied"`
	Total   string `json:"total"`
	Status  string `json:"status"`
}
