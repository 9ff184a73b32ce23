// Package convert handles single statement conversion
package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bankstmt/pdf2ledger/cmd/root"
	"bankstmt/pdf2ledger/internal/fileutils"
	"bankstmt/pdf2ledger/internal/report"
)

var showSummary bool

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one statement PDF to a categorized ledger",
	Long: `Convert a single bank or credit card statement PDF into a categorized
transaction ledger.

The bank is detected automatically. The output format follows --format,
defaulting to the configured export format.

Example:
  pdf2ledger convert -i statement.pdf -o ledger.xlsx
  pdf2ledger convert -i statement.pdf -p secret --format csv`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a per-category summary after converting")
}

func convertFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file must be specified with --input")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("Input file does not exist: %s", input)
	}

	format := root.ExportFormat()
	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}

	res, err := root.Deps.GetPipeline().Process(cmd.Context(), input, root.SharedFlags.Password)
	root.ExitOnError(err)

	if format == "csv" {
		err = root.Deps.GetCSVWriter().Write(output, res.Transactions)
	} else {
		err = root.Deps.GetXLSXWriter().Write(output, res.Bank, res.Source, res.Transactions)
	}
	root.ExitOnError(err)

	root.Log.Infof("Detected %s, wrote %d transactions to %s", res.Bank, len(res.Transactions), output)
	for _, w := range res.Warnings {
		root.Log.Warnf("Warning: %s", w.String())
	}

	if showSummary {
		g := report.NewGenerator(root.Deps.GetLogger())
		text, err := g.Render(g.Build(res), "text")
		root.ExitOnError(err)
		fmt.Println(string(text))
	}
}
