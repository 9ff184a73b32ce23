package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is the fallback ledger label when no rule matches.
const CategoryUncategorized = "Uncategorized"

// Transaction is one canonical ledger entry produced by the pipeline.
//
// Exactly one of Debit and Credit is non-zero for a monetary row; both
// are zero only for balance-only rows such as an opening balance carried
// forward. Amounts are always positive, the Debit/Credit split carries
// the direction.
type Transaction struct {
	// Serial is the 1-based display position, assigned after extraction.
	Serial int

	Date        time.Time
	Description string

	Debit  decimal.Decimal
	Credit decimal.Decimal

	// Balance is the running balance as stated on the statement, or as
	// back-filled by the pipeline when the layout carries none.
	Balance    decimal.Decimal
	HasBalance bool

	// Category is the ledger label; never empty once categorized.
	Category string
}

// IsDebit reports whether the transaction moves money out.
func (t *Transaction) IsDebit() bool {
	return t.Debit.GreaterThan(decimal.Zero)
}

// IsCredit reports whether the transaction moves money in.
func (t *Transaction) IsCredit() bool {
	return t.Credit.GreaterThan(decimal.Zero)
}

// IsBalanceOnly reports whether the row states a balance without a movement.
func (t *Transaction) IsBalanceOnly() bool {
	return !t.IsDebit() && !t.IsCredit()
}

// SignedAmount returns the movement with direction: credits positive,
// debits negative, zero for balance-only rows.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// DateLayoutISO is the canonical date rendering used in exports.
const DateLayoutISO = "2006-01-02"

// FormatDate renders the transaction date for export, empty when unset.
func (t *Transaction) FormatDate() string {
	if t.Date.IsZero() {
		return ""
	}
	return t.Date.Format(DateLayoutISO)
}
