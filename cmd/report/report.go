// Package report contains the financial report and dashboard commands.
package report

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/internal/render"
)

var (
	reportFY        string
	reportAsOf      string
	reportAccountID string
)

var reportTypes = map[string]bool{
	"activities":    true,
	"balance-sheet": true,
	"trial-balance": true,
	"ledger":        true,
}

// ReportsCmd fetches a financial report and prints it as JSON.
var ReportsCmd = &cobra.Command{
	Use:   "reports [type]",
	Short: "Fetch a financial report (activities, balance-sheet, trial-balance, ledger)",
	Args:  cobra.ExactArgs(1),
	Run:   reportFunc,
}

// DashboardCmd prints the dashboard metrics.
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show dashboard metrics",
	Run:   dashboardFunc,
}

func init() {
	ReportsCmd.Flags().StringVar(&reportFY, "fy", "", "Fiscal year")
	ReportsCmd.Flags().StringVar(&reportAsOf, "as-of", "", "As-of date, YYYY-MM-DD")
	ReportsCmd.Flags().StringVar(&reportAccountID, "account-id", "", "Account ID (required for ledger)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	reportType := args[0]
	if !reportTypes[reportType] {
		root.Log.Fatalf("Unknown report type %q (want activities, balance-sheet, trial-balance or ledger)", reportType)
	}
	if reportType == "ledger" && reportAccountID == "" {
		root.Log.Fatal("The ledger report requires --account-id")
	}

	params := url.Values{}
	if reportFY != "" {
		params.Set("fiscalYear", reportFY)
	}
	if reportAsOf != "" {
		params.Set("asOf", reportAsOf)
	}
	if reportAccountID != "" {
		params.Set("accountId", reportAccountID)
	}

	client := root.NewClient()
	data, err := client.Report(root.Context(), root.Org, reportType, params)
	if err != nil {
		root.Log.Fatalf("Error fetching report: %v", err)
	}
	if err := render.JSON(os.Stdout, data); err != nil {
		root.Log.Fatalf("Error printing report: %v", err)
	}
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	client := root.NewClient()
	data, err := client.Dashboard(root.Context(), root.Org)
	if err != nil {
		root.Log.Fatalf("Error fetching dashboard: %v", err)
	}
	if err := render.JSON(os.Stdout, data); err != nil {
		root.Log.Fatalf("Error printing dashboard: %v", err)
	}
}
