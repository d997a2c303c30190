// Package paybill contains the compound pay-bill command: bill, payment
// and payment application in one run.
package paybill

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/models"
	"github.com/mattc321/fish-cli/internal/refdata"
	"github.com/mattc321/fish-cli/internal/workflow"
)

var (
	billDate    string
	billDesc    string
	billLines   string
	billVendor  int64
	billRef     string
	paymentDate string
	cashAccount int64
	dryRun      bool
)

// Cmd records a cash-paid bill in three steps.
var Cmd = &cobra.Command{
	Use:   "pay-bill",
	Short: "Create a bill, its payment, and the payment application",
	Long: `Records a bill that was already paid in cash: creates the bill, a
payment from the cash account, and the payment application linking
them. There is no server-side rollback; if a later step fails, the IDs
already created are reported so the sequence can be finished manually.`,
	Run: payBillFunc,
}

func init() {
	Cmd.Flags().StringVar(&billDate, "date", "", "Bill date, YYYY-MM-DD (required)")
	Cmd.Flags().StringVar(&billDesc, "desc", "", "Bill description (required)")
	Cmd.Flags().StringVar(&billLines, "lines", "", "Expense debit lines as a JSON array (required)")
	Cmd.Flags().Int64Var(&billVendor, "vendor", 0, "Vendor ID")
	Cmd.Flags().StringVar(&billRef, "ref", "", "Bill reference")
	Cmd.Flags().StringVar(&paymentDate, "payment-date", "", "Payment date (default: bill date)")
	Cmd.Flags().Int64Var(&cashAccount, "cash-account", refdata.AccountChecking, "Account the payment draws from")
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the payloads without posting")
	for _, name := range []string{"date", "desc", "lines"} {
		if err := Cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func payBillFunc(cmd *cobra.Command, args []string) {
	var lines []models.LineItem
	if err := json.Unmarshal([]byte(billLines), &lines); err != nil {
		root.Log.Fatalf("Invalid --lines JSON: %v", err)
	}
	if len(lines) == 0 {
		root.Log.Fatal("--lines must contain at least one expense line")
	}
	for i, li := range lines {
		if li.Credit.IsPositive() {
			root.Log.Fatalf("Line %d has a credit; pay-bill lines are debit-only (the payable credit is added automatically)", i+1)
		}
	}

	params := workflow.Params{
		Org:           root.Org,
		Date:          billDate,
		Description:   billDesc,
		ExpenseLines:  lines,
		Reference:     billRef,
		APAccountID:   refdata.AccountAccountsPayable,
		CashAccountID: cashAccount,
		PaymentDate:   paymentDate,
	}
	if billVendor != 0 {
		params.VendorID = &billVendor
	}

	if dryRun {
		if err := workflow.New(nil).DryRun(os.Stdout, params); err != nil {
			root.Log.Fatalf("Error rendering dry run: %v", err)
		}
		return
	}

	result, err := workflow.New(root.NewClient()).PayBill(root.Context(), params)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	fmt.Printf("Done: bill=%d, payment=%d, application=%d\n",
		result.BillID, result.PaymentID, result.ApplicationID)
}
