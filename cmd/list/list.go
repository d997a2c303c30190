// Package list contains the read-only listing commands.
package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/render"
)

// FiscalYear filters the transactions listing.
var FiscalYear string

// BusinessesCmd lists all businesses.
var BusinessesCmd = &cobra.Command{
	Use:   "businesses",
	Short: "List all businesses",
	Run:   businessesFunc,
}

// AccountsCmd lists the chart of accounts.
var AccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List chart of accounts",
	Run:   accountsFunc,
}

// VendorsCmd lists vendors.
var VendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List vendors",
	Run:   vendorsFunc,
}

// CustomersCmd lists customers.
var CustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers",
	Run:   customersFunc,
}

// TransactionsCmd lists transactions with their line items.
var TransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions",
	Run:   transactionsFunc,
}

// FiscalYearsCmd lists fiscal years.
var FiscalYearsCmd = &cobra.Command{
	Use:   "fiscal-years",
	Short: "List fiscal years",
	Run:   fiscalYearsFunc,
}

func init() {
	TransactionsCmd.Flags().StringVar(&FiscalYear, "fy", "", "Fiscal year (e.g. 2025)")
}

func businessesFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	businesses, err := client.ListBusinesses(root.Context())
	if err != nil {
		root.Log.Fatalf("Error listing businesses: %v", err)
	}

	fmt.Printf("%-6s %-30s %-15s %s\n", "ID", "Name", "Type", "FY Start")
	render.Rule(os.Stdout, 70)
	for _, b := range businesses {
		fmt.Printf("%-6d %-30s %-15s %s\n", b.ID, b.Name, b.EntityType, b.FiscalYearStart)
	}
}

func accountsFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	accounts, err := client.ListAccounts(root.Context(), root.Org)
	if err != nil {
		root.Log.Fatalf("Error listing accounts: %v", err)
	}

	fmt.Printf("%-6s %-10s %-35s %-15s %12s\n", "ID", "Number", "Name", "Type", "Balance")
	render.Rule(os.Stdout, 80)
	for _, a := range accounts {
		balance := a.Balance
		if balance == "" {
			balance = "0.00"
		}
		fmt.Printf("%-6d %-10s %-35s %-15s %12s\n", a.ID, a.AccountNumber, a.Name, a.AccountType, balance)
	}
}

func vendorsFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	vendors, err := client.ListVendors(root.Context(), root.Org)
	if err != nil {
		root.Log.Fatalf("Error listing vendors: %v", err)
	}
	if len(vendors) == 0 {
		fmt.Println("No vendors found.")
		return
	}

	fmt.Printf("%-6s %-40s %s\n", "ID", "Name", "Contact")
	render.Rule(os.Stdout, 70)
	for _, v := range vendors {
		contact := v.Email
		if contact == "" {
			contact = v.Phone
		}
		fmt.Printf("%-6d %-40s %s\n", v.ID, v.Name, contact)
	}
}

func customersFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	customers, err := client.ListCustomers(root.Context(), root.Org)
	if err != nil {
		root.Log.Fatalf("Error listing customers: %v", err)
	}
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return
	}

	fmt.Printf("%-6s %-40s %s\n", "ID", "Name", "Contact")
	render.Rule(os.Stdout, 70)
	for _, c := range customers {
		contact := c.Email
		if contact == "" {
			contact = c.Phone
		}
		fmt.Printf("%-6d %-40s %s\n", c.ID, c.Name, contact)
	}
}

func transactionsFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	txns, count, err := client.ListTransactions(root.Context(), root.Org, FiscalYear)
	if err != nil {
		root.Log.Fatalf("Error listing transactions: %v", err)
	}

	fmt.Printf("Transactions: %d\n", count)
	fmt.Printf("%-6s %-12s %-18s %-35s %-15s %s\n", "ID", "Date", "Type", "Description", "Ref", "Posted")
	render.Rule(os.Stdout, 100)
	for _, t := range txns {
		fmt.Printf("%-6d %-12s %-18s %-35s %-15s %s\n",
			t.ID, t.Date, t.TransactionType, t.Description, t.Reference, render.Bool(t.IsPosted))
		for _, li := range t.LineItems {
			debit := li.Debit
			if debit == "" {
				debit = "0.00"
			}
			credit := li.Credit
			if credit == "" {
				credit = "0.00"
			}
			fmt.Printf("       %-20s DR %10s  CR %10s  %s\n",
				fmt.Sprintf("acct:%d", li.AccountID), debit, credit, li.Description)
		}
	}
}

func fiscalYearsFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	years, err := client.ListFiscalYears(root.Context(), root.Org)
	if err != nil {
		root.Log.Fatalf("Error listing fiscal years: %v", err)
	}

	fmt.Printf("%-6s %-20s %-12s %-12s %s\n", "ID", "Label", "Start", "End", "Closed")
	render.Rule(os.Stdout, 60)
	for _, y := range years {
		fmt.Printf("%-6d %-20s %-12s %-12s %s\n",
			y.ID, y.Label, y.StartDate, y.EndDate, render.Bool(y.IsClosed))
	}
}
