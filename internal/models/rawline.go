package models

// Dr/Cr indicator values carried on a RawTransactionLine.
const (
	IndicatorDebit  = "DR"
	IndicatorCredit = "CR"
)

// RawTransactionLine is one statement row as an extractor found it,
// before any parsing of dates or amounts. All monetary fields are kept
// as the original text tokens, commas and currency marks included.
//
// A row carries at most one movement: Amount plus an indicator telling
// whether it is a debit or a credit. Rows that only state a balance
// (e.g. "BALANCE FORWARD") leave Amount empty and set Balance.
type RawTransactionLine struct {
	Page int
	Line int

	Date        string
	Description string
	Amount      string
	Indicator   string // IndicatorDebit, IndicatorCredit or ""
	Balance     string
}

// HasAmount reports whether the row carries a monetary movement.
func (r *RawTransactionLine) HasAmount() bool {
	return r.Amount != ""
}
