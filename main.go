package main

import (
	"fmt"
	"os"

	"github.com/mattc321/fish-cli/cmd/expense"
	"github.com/mattc321/fish-cli/cmd/list"
	"github.com/mattc321/fish-cli/cmd/paybill"
	"github.com/mattc321/fish-cli/cmd/payment"
	"github.com/mattc321/fish-cli/cmd/post"
	"github.com/mattc321/fish-cli/cmd/report"
	"github.com/mattc321/fish-cli/cmd/root"
	"github.com/mattc321/fish-cli/cmd/vendor"
	"github.com/mattc321/fish-cli/internal/config"
)

func init() {
	// Load credentials and set the global log level before any command
	// wiring logs.
	config.LoadEnv()
	config.ConfigureLogging()

	root.Init()

	root.Cmd.AddCommand(list.BusinessesCmd)
	root.Cmd.AddCommand(list.AccountsCmd)
	root.Cmd.AddCommand(list.VendorsCmd)
	root.Cmd.AddCommand(list.CustomersCmd)
	root.Cmd.AddCommand(list.TransactionsCmd)
	root.Cmd.AddCommand(list.FiscalYearsCmd)
	root.Cmd.AddCommand(vendor.CreateCmd)
	root.Cmd.AddCommand(vendor.ImportCmd)
	root.Cmd.AddCommand(vendor.LookupCmd)
	root.Cmd.AddCommand(post.Cmd)
	root.Cmd.AddCommand(expense.Cmd)
	root.Cmd.AddCommand(paybill.Cmd)
	root.Cmd.AddCommand(payment.ApplyCmd)
	root.Cmd.AddCommand(payment.StatusCmd)
	root.Cmd.AddCommand(payment.ApplicationsCmd)
	root.Cmd.AddCommand(report.ReportsCmd)
	root.Cmd.AddCommand(report.DashboardCmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
