// Package normalize converts raw statement lines into canonical
// transactions: ISO dates, decimal amounts split into debit and credit,
// and parsed balances. Rows that cannot be normalized are dropped with a
// warning; normalization never aborts a statement over a bad row.
package normalize

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
)

// dateLayouts lists the date forms each statement layout is known to
// print, tried in order.
var dateLayouts = map[string][]string{
	"sbi-bank":       {"2 Jan 2006"},
	"sbi-card":       {"2/1/2006", "2 Jan 2006", "2 Jan 06"},
	"hdfc-bank":      {"2/1/2006", "2/1/06"},
	"hdfc-card":      {"2/1/2006"},
	"yes-bank":       {"2 Jan 2006", "2/1/2006"},
	"yes-card":       {"2/1/2006"},
	"rbl-bank":       {"2/1/2006"},
	"rbl-card":       {"2/1/2006", "2-1-2006", "2 Jan 2006", "2 Jan 06"},
	"indusind-card":  {"2/1/2006"},
	"one-card":       {"2 Jan 2006"},
	"stanchart-bank": {"2 Jan 2006"},
}

// fallbackLayouts is tried for layouts missing from the table, such as
// profiles loaded from an override file.
var fallbackLayouts = []string{"2/1/2006", "2 Jan 2006", "2-1-2006", "2/1/06", "2 Jan 06"}

var amountCleaner = strings.NewReplacer("₹", "", "Rs.", "", "Rs", "", "INR", "", ",", "", " ", "")

// balanceTolerance absorbs paise-level rounding in printed running
// balances before a discontinuity is reported.
var balanceTolerance = decimal.RequireFromString("0.01")

type Normalizer struct {
	log logging.Logger

	// now supplies the year for layouts that print yearless dates.
	now func() time.Time
}

func New(log logging.Logger) *Normalizer {
	return &Normalizer{log: log, now: time.Now}
}

// Normalize converts the raw lines of one statement. The returned
// transactions carry no serial numbers; assignment happens after the
// whole pipeline has settled the final row set.
func (n *Normalizer) Normalize(profileID string, lines []models.RawTransactionLine) ([]models.Transaction, []models.Warning) {
	layouts, ok := dateLayouts[profileID]
	if !ok {
		layouts = fallbackLayouts
	}

	txns := make([]models.Transaction, 0, len(lines))
	srcs := make([]models.RawTransactionLine, 0, len(lines))
	var warnings []models.Warning

	for _, line := range lines {
		date, err := n.parseDate(profileID, layouts, line.Date)
		if err != nil {
			warnings = append(warnings, warn(line, "date", "unparseable date", line.Date))
			continue
		}

		txn := models.Transaction{
			Date:        date,
			Description: line.Description,
		}

		if line.HasAmount() {
			amount, err := parseAmount(line.Amount)
			if err != nil {
				warnings = append(warnings, warn(line, "amount", "unparseable amount", line.Amount))
				continue
			}
			if !amount.IsPositive() {
				warnings = append(warnings, warn(line, "amount", "non-positive amount", line.Amount))
				continue
			}
			if line.Indicator == models.IndicatorCredit {
				txn.Credit = amount
			} else {
				txn.Debit = amount
			}
		}

		if line.Balance != "" {
			balance, err := parseAmount(line.Balance)
			if err != nil {
				// A bad balance degrades the row, it does not drop it.
				warnings = append(warnings, warn(line, "balance", "unparseable balance", line.Balance))
			} else {
				txn.Balance = balance
				txn.HasBalance = true
			}
		}

		txns = append(txns, txn)
		srcs = append(srcs, line)
	}

	warnings = append(warnings, checkContinuity(txns, srcs)...)

	n.log.Debug("normalized statement lines",
		logging.Field{Key: logging.FieldProfile, Value: profileID},
		logging.Field{Key: logging.FieldCount, Value: len(txns)},
		logging.Field{Key: logging.FieldWarnings, Value: len(warnings)})

	return txns, warnings
}

func (n *Normalizer) parseDate(profileID string, layouts []string, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	// One Card prints no year; assume the statement's own year.
	if profileID == "one-card" && len(strings.Fields(raw)) == 2 {
		raw += " " + n.now().Format("2006")
	}

	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountCleaner.Replace(strings.TrimSpace(raw)))
}

func warn(line models.RawTransactionLine, field, reason, raw string) models.Warning {
	return models.Warning{
		Page:   line.Page,
		Line:   line.Line,
		Field:  field,
		Reason: reason,
		Raw:    raw,
	}
}

// checkContinuity verifies that printed running balances agree with the
// movements between them. Disagreement beyond the tolerance usually
// means a row was misread or a page was dropped by the decoder.
func checkContinuity(txns []models.Transaction, srcs []models.RawTransactionLine) []models.Warning {
	var warnings []models.Warning
	var prev decimal.Decimal
	seen := false

	for i, txn := range txns {
		if !txn.HasBalance {
			seen = false
			continue
		}
		if seen && !txn.IsBalanceOnly() {
			expected := prev.Sub(txn.Debit).Add(txn.Credit)
			if expected.Sub(txn.Balance).Abs().GreaterThan(balanceTolerance) {
				warnings = append(warnings, models.Warning{
					Page:   srcs[i].Page,
					Line:   srcs[i].Line,
					Field:  "balance",
					Reason: "running balance discontinuity",
					Raw:    txn.Balance.StringFixed(2),
				})
			}
		}
		prev = txn.Balance
		seen = true
	}
	return warnings
}
