// Package root contains the root command for the application and the
// shared wiring every subcommand uses.
package root

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattc321/fish-cli/internal/classifier"
	"github.com/mattc321/fish-cli/internal/config"
	"github.com/mattc321/fish-cli/internal/fish"
	"github.com/mattc321/fish-cli/internal/refdata"
	"github.com/mattc321/fish-cli/internal/report"
	"github.com/mattc321/fish-cli/internal/vendordir"
	"github.com/mattc321/fish-cli/internal/workflow"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Org is the org/business ID used for API calls.
	Org string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fish-cli",
		Short: "A CLI client for the Fi$h accounting API.",
		Long: `fish-cli talks to the Fi$h accounting REST API: it lists businesses,
accounts, vendors, customers and transactions, posts journal entries,
bills and payments, and imports tab-separated expense reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to the internal packages.
			fish.SetLogger(Log)
			vendordir.SetLogger(Log)
			report.SetLogger(Log)
			workflow.SetLogger(Log)

			if Org == "" {
				Org = cfg.API.DefaultOrg
			}
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&Org, "org", "", "Org/business ID (default from config)")
}

// Context returns the context for a command invocation.
func Context() context.Context {
	return context.Background()
}

// NewClient builds the API client, failing fast when credentials are
// missing.
func NewClient() *fish.Client {
	if err := Cfg.ValidateCredentials(); err != nil {
		Log.Fatalf("%v", err)
	}
	return fish.NewClient(Cfg.API.BaseURL, Cfg.API.Token, Cfg.API.ClientID,
		time.Duration(Cfg.API.TimeoutSeconds)*time.Second)
}

// NewDirectory loads the vendor directory from the static alias table and
// the local vendor store.
func NewDirectory() *vendordir.Directory {
	dir, err := vendordir.New(refdata.VendorAliases, vendordir.NewStore(Cfg.Store.VendorsFile))
	if err != nil {
		Log.Fatalf("Failed to load vendor directory: %v", err)
	}
	return dir
}

// NewCompiler builds the expense-report compiler over a vendor directory.
func NewCompiler(dir *vendordir.Directory) *report.Compiler {
	return report.NewCompiler(
		classifier.New(refdata.DescriptionRules),
		dir,
		refdata.AccountReimbursementPayable,
	)
}
