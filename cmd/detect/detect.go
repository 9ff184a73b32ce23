// Package detect handles bank detection without conversion
package detect

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankstmt/pdf2ledger/cmd/root"
	"bankstmt/pdf2ledger/internal/fileutils"
	"bankstmt/pdf2ledger/internal/pdfdecode"
	"bankstmt/pdf2ledger/internal/pipeerror"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect which bank issued a statement",
	Long: `Detect which bank profile matches a statement PDF without converting it.

Prints the matched bank and the marker hits that decided it. Useful to
debug why a statement resolves to an unexpected layout.

Example:
  pdf2ledger detect -i statement.pdf`,
	Run: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file must be specified with --input")
	}
	if !fileutils.FileExists(input) {
		root.Log.Fatalf("Input file does not exist: %s", input)
	}

	decoder := pdfdecode.New(root.Deps.GetLogger())
	doc, err := decoder.Decode(input, root.SharedFlags.Password)
	root.ExitOnError(err)

	res := root.Deps.GetRegistry().Detect(doc, root.Cfg.Processing.DetectionPages)
	if res.Profile == nil {
		root.ExitOnError(&pipeerror.UnsupportedBankError{Source: input, Candidates: res.Candidates()})
	}

	fmt.Printf("%s (%s), score %d\n", res.Profile.Label, res.Profile.ID, res.Score)
	for _, check := range res.Checked {
		if check.Hit && check.ProfileID == res.Profile.ID {
			kind := "weak"
			if check.Strong {
				kind = "strong"
			}
			fmt.Printf("  %-6s %s\n", kind, check.Marker)
		}
	}
}
