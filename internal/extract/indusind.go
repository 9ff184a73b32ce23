package extract

import (
	"regexp"

	"bankstmt/pdf2ledger/internal/models"
)

// indusIndCard reads IndusInd Bank credit card statements. Summary
// blocks interleave with the transaction list, so end markers flush the
// current row without closing the section.
type indusIndCard struct {
	scan cardScan
}

func newIndusIndCard() *indusIndCard {
	return &indusIndCard{scan: cardScan{
		id:     "indusind-card",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})`),
		begin:  []string{"purchases & cash", "transaction detail"},
		end: []string{
			"marketing message", "how to make payment", "closest indusind",
			"important message", "use convenient", "use your tpin", "total",
			"previous balance",
		},
		endCloses: false,
		contSkip:  []string{"page ", "statement"},
		contDropRe: []*regexp.Regexp{
			// Reward point counters print as bare three-digit rows.
			regexp.MustCompile(`^\d{3}$`),
		},
		creditWords: []string{"PAYMENT", "CREDIT"},
		cleanups: []*regexp.Regexp{
			regexp.MustCompile(`\s+\d{3}$`),
		},
	}}
}

func (e *indusIndCard) ID() string { return e.scan.id }

func (e *indusIndCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}
