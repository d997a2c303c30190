// Package post contains the command for posting an arbitrary
// transaction from line items given as JSON.
package post

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/models"
)

var (
	txnType     string
	txnDate     string
	txnDesc     string
	txnLines    string
	txnRef      string
	txnVendor   int64
	txnCustomer int64
)

// Cmd posts a transaction.
var Cmd = &cobra.Command{
	Use:   "post-txn",
	Short: "Post a transaction from JSON line items",
	Long: `Posts a transaction of any type. Line items are given as a JSON array,
e.g. '[{"accountId": 5, "debit": "100.00"}, {"accountId": 1, "credit": "100.00"}]'.
Debits and credits must balance; the server rejects unbalanced entries.`,
	Run: postFunc,
}

func init() {
	Cmd.Flags().StringVar(&txnType, "type", models.TransactionTypeJournalEntry, "Transaction type")
	Cmd.Flags().StringVar(&txnDate, "date", "", "Transaction date, YYYY-MM-DD (required)")
	Cmd.Flags().StringVar(&txnDesc, "desc", "", "Description (required)")
	Cmd.Flags().StringVar(&txnLines, "lines", "", "Line items as a JSON array (required)")
	Cmd.Flags().StringVar(&txnRef, "ref", "", "Reference")
	Cmd.Flags().Int64Var(&txnVendor, "vendor", 0, "Vendor ID")
	Cmd.Flags().Int64Var(&txnCustomer, "customer", 0, "Customer ID")
	for _, name := range []string{"date", "desc", "lines"} {
		if err := Cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func postFunc(cmd *cobra.Command, args []string) {
	var lines []models.LineItem
	if err := json.Unmarshal([]byte(txnLines), &lines); err != nil {
		root.Log.Fatalf("Invalid --lines JSON: %v", err)
	}
	if len(lines) == 0 {
		root.Log.Fatal("--lines must contain at least one line item")
	}

	txn := &models.Transaction{
		Type:        txnType,
		Date:        txnDate,
		Description: txnDesc,
		Reference:   txnRef,
		IsPosted:    true,
		LineItems:   lines,
	}
	if txnVendor != 0 {
		txn.VendorID = &txnVendor
	}
	if txnCustomer != 0 {
		txn.CustomerID = &txnCustomer
	}

	if !txn.TotalDebits().Equal(txn.TotalCredits()) {
		root.Log.Fatalf("Line items do not balance: debits %s vs credits %s",
			models.FormatAmount(txn.TotalDebits()), models.FormatAmount(txn.TotalCredits()))
	}

	client := root.NewClient()
	rec, err := client.CreateTransaction(root.Context(), root.Org, txn)
	if err != nil {
		root.Log.Fatalf("Error posting transaction: %v", err)
	}
	fmt.Printf("Posted %s ID %d (%s)\n", rec.TransactionType, rec.ID, rec.Date)
}
