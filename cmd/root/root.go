// Package root contains the root command for the application
package root

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bankstmt/pdf2ledger/internal/config"
	"bankstmt/pdf2ledger/internal/container"
	"bankstmt/pdf2ledger/internal/pipeerror"
)

// CommonFlags are the flags shared by every statement command.
type CommonFlags struct {
	Input    string
	Output   string
	Password string
	Format   string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Deps is the wired dependency container, built before any command
	// runs.
	Deps *container.Container

	// SharedFlags are accessible to all subcommands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "pdf2ledger",
		Short: "Convert bank statement PDFs into categorized transaction ledgers.",
		Long: `pdf2ledger reads Indian bank and credit card statement PDFs, detects
the issuing bank, extracts the transactions and writes a categorized
ledger as an XLSX workbook or CSV file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf2ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			Deps, err = container.NewContainer(cmd.Context(), cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if Deps != nil {
				if err := Deps.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
	}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement PDF (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Password, "password", "p", "", "Password for encrypted statements")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Export format: xlsx or csv (default from config)")
}

// ExportFormat resolves the export format from the flag, falling back
// to the configured default.
func ExportFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if Cfg != nil && Cfg.Export.Format != "" {
		return Cfg.Export.Format
	}
	return "xlsx"
}

// ExitOnError prints a friendly message for the pipeline's typed errors
// and exits non-zero. A nil error is a no-op.
func ExitOnError(err error) {
	if err == nil {
		return
	}

	var (
		decErr      *pipeerror.DecryptionError
		unsupported *pipeerror.UnsupportedBankError
		extErr      *pipeerror.ExtractionError
		timeout     *pipeerror.TimeoutError
	)
	switch {
	case errors.As(err, &decErr):
		Log.Error("The statement is encrypted and the password was wrong or missing. Retry with --password.")
	case errors.As(err, &unsupported):
		Log.Errorf("No supported bank matched this statement. %v", err)
	case errors.As(err, &extErr):
		Log.Errorf("The statement was recognized but its layout could not be read: %v", err)
	case errors.As(err, &timeout):
		Log.Errorf("Processing took too long and was aborted: %v", err)
	default:
		Log.Errorf("%v", err)
	}
	os.Exit(1)
}
