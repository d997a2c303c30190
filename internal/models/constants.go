package models

// Transaction types accepted by the Fi$h API.
const (
	TransactionTypeExpense      = "expense"
	TransactionTypeBill         = "bill"
	TransactionTypePayment      = "payment"
	TransactionTypeJournalEntry = "journal_entry"
)

// Functional classes for expense line items.
const (
	FunctionalClassProgram           = "program"
	FunctionalClassManagementGeneral = "management_general"
	FunctionalClassNone              = "none"
)

// Reimbursement statuses.
const (
	ReimbursementStatusPending = "pending"
)

// File permissions for locally persisted data.
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
)
