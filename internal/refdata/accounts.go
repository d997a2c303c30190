// Package refdata holds the static reference tables the tool is
// configured with: the chart-of-accounts shorthand, the vendor alias
// table, and the description classification rules. The tables are plain
// data; the components that interpret them receive them by injection so
// tests can substitute their own.
package refdata

// Structural accounts the core workflows post to directly.
const (
	AccountChecking             int64 = 1
	AccountAccountsPayable      int64 = 12
	AccountReimbursementPayable int64 = 13
)

// Accounts maps shorthand names to Fi$h account IDs.
var Accounts = map[string]int64{
	"checking":            AccountChecking,
	"savings":             2,
	"petty_cash":          3,
	"schwab":              103,
	"accounts_receivable": 4,
	"accounts_payable":    AccountAccountsPayable,
	"reimb_payable":       AccountReimbursementPayable,
	"utilities":           44,
	"office_supplies":     47,
	"software_tech":       48,
	"postage_shipping":    49,
	"telephone_internet":  51,
	"travel_airfare":      52,
	"travel_lodging":      53,
	"travel_meals":        54,
	"travel_ground":       55,
	"conference_reg":      56,
	"legal_fees":          58,
	"program_supplies":    62,
	"marketing":           69,
	"bank_fees":           72,
	"misc_expense":        74,
}
