// Package categorize handles ad-hoc categorization of narrations
package categorize

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bankstmt/pdf2ledger/cmd/root"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize [narration...]",
	Short: "Categorize a transaction narration",
	Long: `Categorize one or more transaction narrations against the rule set,
without processing a statement.

Example:
  pdf2ledger categorize "UPI/swiggy/food order"
  pdf2ledger categorize "AMAZON PAY INDIA" "ATM WDL MG ROAD"`,
	Args: cobra.MinimumNArgs(1),
	Run:  categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	cat := root.Deps.GetCategorizer()
	for _, narration := range args {
		fmt.Printf("%s -> %s\n", strings.TrimSpace(narration), cat.Categorize(narration))
	}
}
