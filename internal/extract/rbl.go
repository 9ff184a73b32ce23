package extract

import (
	"regexp"

	"bankstmt/pdf2ledger/internal/models"
)

// rblBank reads RBL Bank account statements flattened to
// "DD/MM/YYYY <narration> <cheque> DD/MM/YYYY <debit|credit> <balance>".
type rblBank struct {
	scan statementScan
}

func newRBLBank() *rblBank {
	return &rblBank{scan: statementScan{
		id:     "rbl-bank",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})`),
		skip: []string{
			"accountholder", "customer address", "home branch", "phone",
			"email", "nomination", "cif id", "a/c currency", "a/c type",
			"a/c status", "statement of transaction", "period:",
			"transaction date", "transaction details", "cheque id",
			"value date", "statement summary", "opening balance",
			"closing balance", "eff avail", "date and time", "page ",
			"disclaimer", "lien", "sanction", "drawing power",
			"branch timings", "call center", "branch phone", "total",
		},
		debitFirst: true,
		debitWords: []string{
			"WITHDRAWAL", "DEBIT", "ATM", "POS", "PURCHASE", "NACH", "PAID",
		},
		creditWords: []string{
			"DEPOSIT", "CREDIT", "SALARY", "INTEREST", "REFUND", "REVERSAL",
		},
	}}
}

func (e *rblBank) ID() string { return e.scan.id }

func (e *rblBank) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}

// rblCard reads RBL Bank credit card statements.
type rblCard struct {
	scan cardScan
}

func newRBLCard() *rblCard {
	return &rblCard{scan: cardScan{
		id:     "rbl-card",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{4}|\d{1,2}\s+[A-Za-z]{3}\s+\d{2,4})`),
		begin: []string{
			"transaction detail", "domestic transaction",
			"international transaction", "purchases & cash",
		},
		end: []string{
			"important message", "how to make payment", "closest indusind",
			"marketing message", "promotional message", "total",
		},
		endCloses:   true,
		contSkip:    []string{"page ", "statement", "card no"},
		creditWords: []string{"PAYMENT"},
	}}
}

func (e *rblCard) ID() string { return e.scan.id }

func (e *rblCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}
