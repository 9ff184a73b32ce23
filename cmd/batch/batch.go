// Package batch handles batch processing of statement directories
package batch

import (
	"github.com/spf13/cobra"

	"bankstmt/pdf2ledger/cmd/root"
	"bankstmt/pdf2ledger/internal/batch"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every statement PDF in a directory",
	Long: `Convert every statement PDF found in the input directory, writing one
export per statement into the output directory. Files that fail are
reported and skipped; the rest of the batch continues.

Example:
  pdf2ledger batch -i statements/ -o ledgers/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	runner := batch.NewRunner(
		root.Deps.GetPipeline(),
		root.Deps.GetCSVWriter(),
		root.Deps.GetXLSXWriter(),
		root.ExportFormat(),
		root.Deps.GetLogger(),
	)

	summary, err := runner.Run(cmd.Context(), inputDir, outputDir, root.SharedFlags.Password)
	root.ExitOnError(err)

	root.Log.Infof("Batch complete: %d processed, %d failed", summary.Processed, summary.Failed)
	for _, fr := range summary.Results {
		if fr.Err != nil {
			root.Log.Warnf("%s: %v", fr.Source, fr.Err)
		}
	}
}
