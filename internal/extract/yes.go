package extract

import (
	"regexp"

	"bankstmt/pdf2ledger/internal/models"
)

// yesBank reads Yes Bank account statements. Recent statements carry a
// proper table grid; older exports only yield flat text, so the table
// pass falls back to a line scan when it finds nothing.
type yesBank struct {
	table tableScan
	scan  statementScan
}

func newYesBank() *yesBank {
	dateRe := regexp.MustCompile(`^(\d{1,2}\s+[A-Za-z]{3}\s+\d{4}|\d{1,2}/\d{1,2}/\d{4})`)
	return &yesBank{
		table: tableScan{
			id:            "yes-bank",
			dateRe:        dateRe,
			descCol:       3,
			debitCol:      4,
			creditCol:     5,
			balanceCol:    6,
			debitHeader:   "withdrawal",
			creditHeader:  "deposit",
			balanceHeader: "balance",
			descHeader:    "description",
			skip: []string{
				"transaction date", "value date", "cheque no",
				"opening balance", "closing balance",
				"total withdrawal", "total deposit",
			},
		},
		scan: statementScan{
			id:     "yes-bank",
			dateRe: dateRe,
			skip: []string{
				"transaction date", "value date", "cheque no",
				"opening balance", "closing balance", "total withdrawal",
				"total deposit", "account name", "account number", "ifsc",
				"micr", "branch", "nominee", "page ", "statement of account",
				"this is a system generated",
			},
			debitFirst: true,
			debitWords: []string{
				"WITHDRAWAL", "DEBIT", "PAID", "TRANSFER TO", "FUNDS TRF TO",
				"PURCHASE", "POS", "ATM", "NACH",
			},
			creditWords: []string{
				"DEPOSIT", "CREDIT", "RECEIVED", "TRANSFER FROM", "SALARY",
				"INTEREST", "REFUND", "REVERSAL", "CASHBACK",
			},
		},
	}
}

func (e *yesBank) ID() string { return e.table.id }

func (e *yesBank) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	var out []models.RawTransactionLine
	for i := range doc.Pages {
		e.table.run(&doc.Pages[i], &out)
	}
	if len(out) == 0 {
		out = e.scan.run(doc)
	}
	return finish(e.table.id, out)
}

// yesCard reads Yes Bank credit card statements:
// "DD/MM/YYYY <merchant> <MCC> <amount> Dr|Cr".
type yesCard struct {
	scan cardScan
}

func newYesCard() *yesCard {
	return &yesCard{scan: cardScan{
		id:     "yes-card",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})`),
		begin:  []string{"transaction detail", "merchant category"},
		end: []string{
			"making only the minimum", "presenting emi", "important message",
			"promotional message", "total amount due", "for enquiries",
			"please note", "go green",
		},
		endCloses:   true,
		contSkip:    []string{"page ", "statement for", "card number"},
		creditWords: []string{"PAYMENT RECEIVED"},
		cleanups: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\s*-?\s*Ref\s*No\s*:?\s*\S+`),
			// Merchant category code trailing the narration.
			regexp.MustCompile(`\s\d{3,4}$`),
		},
	}}
}

func (e *yesCard) ID() string { return e.scan.id }

func (e *yesCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}
