// Package expense contains the expense report import command.
package expense

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/models"
	"github.com/mattc321/fish-cli/internal/report"
)

var (
	reportDesc   string
	reportDryRun bool
)

// Cmd imports a tab-separated expense report and posts it as a single
// balanced expense transaction.
var Cmd = &cobra.Command{
	Use:   "import-report [file]",
	Short: "Import a tab-separated expense report",
	Long: `Reads a tab-separated expense report with Date, Vendor, Description and
Expense Total columns, classifies each row by its description, resolves
vendors through the alias table, and posts one balanced expense
transaction with a reimbursement-payable credit for the total.`,
	Args: cobra.ExactArgs(1),
	Run:  importReportFunc,
}

func init() {
	Cmd.Flags().StringVar(&reportDesc, "desc", "", "Transaction description (required)")
	Cmd.Flags().BoolVar(&reportDryRun, "dry-run", false, "Show the payload without posting")
	if err := Cmd.MarkFlagRequired("desc"); err != nil {
		panic(err)
	}
}

func importReportFunc(cmd *cobra.Command, args []string) {
	rows, err := report.ReadFile(args[0])
	if err != nil {
		root.Log.Fatalf("Error reading report: %v", err)
	}

	dir := root.NewDirectory()
	compiler := root.NewCompiler(dir)

	txn, err := compiler.Compile(rows, reportDesc)
	if err != nil {
		var compileErr *report.CompileError
		if !errors.As(err, &compileErr) {
			root.Log.Fatalf("Error compiling report: %v", err)
		}
		fmt.Printf("%d of %d rows failed:\n", len(compileErr.RowErrors), len(rows))
		for _, re := range compileErr.RowErrors {
			fmt.Printf("  %v\n", re)
		}
		if !reportDryRun || txn == nil {
			root.Log.Fatal("Fix the rows above and retry.")
		}
		fmt.Println()
	}

	printSummary(txn)

	if reportDryRun {
		data, err := json.MarshalIndent(txn, "", "  ")
		if err != nil {
			root.Log.Fatalf("Error encoding payload: %v", err)
		}
		fmt.Println("\n[DRY RUN] Payload:")
		fmt.Println(string(data))
		return
	}

	client := root.NewClient()
	rec, err := client.CreateTransaction(root.Context(), root.Org, txn)
	if err != nil {
		root.Log.Fatalf("Error posting transaction: %v", err)
	}
	fmt.Printf("\nPosted expense transaction ID %d (%s)\n", rec.ID, rec.Date)
}

func printSummary(txn *models.Transaction) {
	fmt.Printf("Transaction: %s (%s), %d line items\n", txn.Description, txn.Date, len(txn.LineItems))
	for _, li := range txn.LineItems {
		side := "DR"
		amount := li.Debit
		if li.Credit.IsPositive() {
			side = "CR"
			amount = li.Credit
		}
		fmt.Fprintf(os.Stdout, "  %s acct:%-4d %10s  %s\n", side, li.AccountID, models.FormatAmount(amount), li.Description)
	}
	fmt.Printf("Total: $%s\n", models.FormatAmount(txn.TotalDebits()))
}
