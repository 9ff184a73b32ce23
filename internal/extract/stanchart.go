package extract

import (
	"regexp"

	"bankstmt/pdf2ledger/internal/models"
)

// stanChartBank reads Standard Chartered Bank account statements.
// Tables list the deposit column before the withdrawal column, and each
// page opens with a BALANCE FORWARD carry-over row.
type stanChartBank struct {
	table tableScan
	scan  statementScan
}

func newStanChartBank() *stanChartBank {
	dateRe := regexp.MustCompile(`^(\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`)
	return &stanChartBank{
		table: tableScan{
			id:             "stanchart-bank",
			dateRe:         dateRe,
			descCol:        2,
			creditCol:      4,
			debitCol:       5,
			balanceCol:     6,
			debitHeader:    "withdrawal",
			creditHeader:   "deposit",
			balanceHeader:  "balance",
			descHeader:     "description",
			skip:           []string{"value date", "cheque", "total"},
			balanceForward: true,
		},
		scan: statementScan{
			id:     "stanchart-bank",
			dateRe: dateRe,
			skip: []string{
				"branch", "statement date", "currency", "account type",
				"account no", "nominee", "branch address", "page ",
				"value date", "cheque", "total",
			},
			debitFirst: false,
			debitWords: []string{
				"WITHDRAWAL", "DEBIT", "ATM", "POS", "PURCHASE", "NACH", "PAID",
			},
			creditWords: []string{
				"DEPOSIT", "CREDIT", "SALARY", "INTEREST", "REFUND", "REVERSAL",
			},
			balanceForward: true,
		},
	}
}

func (e *stanChartBank) ID() string { return e.table.id }

func (e *stanChartBank) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	var out []models.RawTransactionLine
	for i := range doc.Pages {
		e.table.run(&doc.Pages[i], &out)
	}
	if len(out) == 0 {
		out = e.scan.run(doc)
	}
	return finish(e.table.id, out)
}
