package extract

import (
	"regexp"

	"bankstmt/pdf2ledger/internal/models"
)

// sbiBank reads State Bank of India savings/current account statements.
// The decoder flattens the positional table into text rows of the shape
// "1 Jan 2025 1 Jan 2025 <narration> <debit|credit> <balance>".
type sbiBank struct {
	scan statementScan
}

func newSBIBank() *sbiBank {
	return &sbiBank{scan: statementScan{
		id:     "sbi-bank",
		dateRe: regexp.MustCompile(`^(\d{1,2}\s+[A-Za-z]{3}\s+\d{4})`),
		skip: []string{
			"txn date", "value date", "account name", "account number",
			"account description", "branch", "drawing power", "interest rate",
			"mod balance", "cif no", "ckycr", "ifs code", "micr", "nomination",
			"balance as on", "account statement", "please do not",
			"computer generated", "indian financial", "magnetic ink",
			"page no", "opening balance", "closing balance", "lien amount",
			"bank never asks", "do not share", "disclaimer", "helpline",
			"customer care", "toll free",
		},
		debitFirst: true,
		debitWords: []string{
			"TO TRANSFER", "WITHDRAWAL", "DEBIT", "ATM", "POS", "PURCHASE",
			"NACH", "PAID",
		},
		creditWords: []string{
			"BY TRANSFER", "DEPOSIT", "CREDIT", "RECEIVED", "SALARY",
			"INTEREST", "REFUND", "REVERSAL", "CASHBACK",
		},
		cleanups: []*regexp.Regexp{
			// Column filler words around the narration.
			regexp.MustCompile(`\b(TO|BY|FROM|TRANSFER)\b-?`),
		},
	}}
}

func (e *sbiBank) ID() string { return e.scan.id }

func (e *sbiBank) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}

// sbiCard reads SBI Card credit card statements:
// "DD/MM/YYYY <description> <amount> Dr|Cr".
type sbiCard struct {
	scan cardScan
}

func newSBICard() *sbiCard {
	return &sbiCard{scan: cardScan{
		id:     "sbi-card",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}\s+[A-Za-z]{3}\s+\d{4}|\d{1,2}\s[A-Za-z]{3}\s\d{2})`),
		begin: []string{
			"transaction details", "domestic transaction", "international transaction",
		},
		end: []string{
			"account summary", "statement summary", "payment due", "credit limit",
			"available credit", "shop & smile", "reward", "points expiry",
			"gstin", "hsn code", "important information", "useful links", "page ",
		},
		endCloses: true,
		contSkip:  []string{"ref no"},
		contDropRe: []*regexp.Regexp{
			regexp.MustCompile(`^[\d\s\-]+$`),
		},
		creditWords: []string{"PAYMENT RECEIVED", "REVERSAL", "REFUND"},
		cleanups: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\s*-\s*Ref\s*No\s*:\s*\S+`),
		},
	}}
}

func (e *sbiCard) ID() string { return e.scan.id }

func (e *sbiCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}
