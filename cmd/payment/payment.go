// Package payment contains the payment application commands.
package payment

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/fish"
	"github.com/mattc321/fish-cli/internal/render"
)

var (
	applyPaymentID int64
	applyBillID    int64
	applyAmount    string
	applyDate      string

	applicationsTxnID string
)

// ApplyCmd applies an existing payment transaction to an existing bill.
var ApplyCmd = &cobra.Command{
	Use:   "apply-payment",
	Short: "Apply a payment transaction to a bill",
	Run:   applyFunc,
}

// StatusCmd reports payment status for a set of transactions.
var StatusCmd = &cobra.Command{
	Use:   "payment-status [ids]",
	Short: "Show payment status for comma-separated transaction IDs",
	Args:  cobra.ExactArgs(1),
	Run:   statusFunc,
}

// ApplicationsCmd lists payment applications.
var ApplicationsCmd = &cobra.Command{
	Use:   "payment-applications",
	Short: "List payment applications",
	Run:   applicationsFunc,
}

func init() {
	ApplyCmd.Flags().Int64Var(&applyPaymentID, "payment-id", 0, "Payment transaction ID (required)")
	ApplyCmd.Flags().Int64Var(&applyBillID, "bill-id", 0, "Bill transaction ID (required)")
	ApplyCmd.Flags().StringVar(&applyAmount, "amount", "", "Amount to apply (required)")
	ApplyCmd.Flags().StringVar(&applyDate, "date", "", "Applied date, YYYY-MM-DD")
	for _, name := range []string{"payment-id", "bill-id", "amount"} {
		if err := ApplyCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	ApplicationsCmd.Flags().StringVar(&applicationsTxnID, "txn-id", "", "Filter by transaction ID")
}

func applyFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	app, err := client.CreatePaymentApplication(root.Context(), root.Org, fish.PaymentApplicationRequest{
		PaymentTransactionID:   applyPaymentID,
		AppliedToTransactionID: applyBillID,
		Amount:                 applyAmount,
		AppliedDate:            applyDate,
	})
	if err != nil {
		root.Log.Fatalf("Error applying payment: %v", err)
	}
	fmt.Printf("Applied payment %d to transaction %d: application ID %d\n",
		app.PaymentTransactionID, app.AppliedToTransactionID, app.ID)
}

func statusFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	statuses, err := client.PaymentStatus(root.Context(), root.Org, args[0])
	if err != nil {
		root.Log.Fatalf("Error fetching payment status: %v", err)
	}

	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%-10s %12s %12s %s\n", "Txn ID", "Applied", "Total", "Status")
	render.Rule(os.Stdout, 50)
	for _, id := range ids {
		s := statuses[id]
		fmt.Printf("%-10s %12s %12s %s\n", id, s.Applied, s.Total, s.Status)
	}
}

func applicationsFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	apps, err := client.ListPaymentApplications(root.Context(), root.Org, applicationsTxnID)
	if err != nil {
		root.Log.Fatalf("Error listing payment applications: %v", err)
	}
	if len(apps) == 0 {
		fmt.Println("No payment applications found.")
		return
	}

	fmt.Printf("%-6s %-12s %-12s %12s %s\n", "ID", "Payment", "Applied To", "Amount", "Date")
	render.Rule(os.Stdout, 60)
	for _, a := range apps {
		fmt.Printf("%-6d %-12d %-12d %12s %s\n",
			a.ID, a.PaymentTransactionID, a.AppliedToTransactionID, a.Amount, a.AppliedDate)
	}
}
