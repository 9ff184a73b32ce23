package extract

import (
	"regexp"
	"strings"

	"bankstmt/pdf2ledger/internal/models"
)

// hdfcBank reads HDFC Bank account statements. The decoder flattens the
// grid into "DD/MM/YY <narration> <ref> <value date> <debit|credit> <balance>".
type hdfcBank struct {
	scan statementScan
}

func newHDFCBank() *hdfcBank {
	return &hdfcBank{scan: statementScan{
		id:     "hdfc-bank",
		dateRe: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})`),
		skip: []string{
			"statement summary", "opening balance", "closing bal",
			"dr count", "cr count", "statement of account", "page no",
			"generated on", "generated by", "requesting branch",
		},
		debitFirst: true,
		debitWords: []string{
			"WITHDRAWAL", "DEBIT", "ATM", "POS", "PURCHASE", "NACH", "EMI",
		},
		creditWords: []string{
			"DEPOSIT", "CREDIT", "SALARY", "INTEREST", "REFUND", "REVERSAL",
		},
		cleanups: []*regexp.Regexp{
			// Value dates and cheque/reference numbers embedded mid-line.
			regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
			regexp.MustCompile(`\b\d{10,}\b`),
		},
	}}
}

func (e *hdfcBank) ID() string { return e.scan.id }

func (e *hdfcBank) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	return finish(e.scan.id, e.scan.run(doc))
}

// hdfcCard reads HDFC Bank credit card statements. Rows carry a
// date-time prefix and rupee-prefixed amounts where a plus sign marks
// credits, so the shared card engine does not fit.
type hdfcCard struct{}

func newHDFCCard() *hdfcCard { return &hdfcCard{} }

func (e *hdfcCard) ID() string { return "hdfc-card" }

var (
	hdfcCardDateRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})\s*\|?\s*(?:\d{1,2}:\d{2}(?::\d{2})?)?\s*`)

	// Amounts print as "₹ 1,234.56", "C 1,234.56" when the rupee glyph is
	// missing from the font, optionally signed.
	hdfcCardAmountRe = regexp.MustCompile(`[+\-]?\s*[₹C]\s*([\d,]+\.\d{2})`)

	// Trailing NeuCoins counts after the amount.
	hdfcCardPointsRe = regexp.MustCompile(`[+\-]?\s*\d+\s*$`)

	hdfcCardBegin = []string{"domestic transaction", "international transaction"}
	hdfcCardEnd   = []string{
		"important information", "useful links", "note:",
		"benefits on your card", "offers on your card", "how to read gst",
	}
	hdfcCardHeader   = []string{"date & time", "transaction description"}
	hdfcCardContSkip = []string{"page ", "note:", "neucoins"}

	hdfcCardCreditWords = []string{"SURCHARGE WAIVER", "REVERSAL", "REFUND"}
)

func (e *hdfcCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	var out []models.RawTransactionLine

	for _, page := range doc.Pages {
		inSection := false
		var cur *pending

		for lineNo, line := range page.Lines() {
			lower := strings.ToLower(line)

			if containsAny(lower, hdfcCardBegin) {
				inSection = true
				continue
			}
			if containsAny(lower, hdfcCardEnd) {
				e.flush(cur, &out)
				cur = nil
				inSection = false
				continue
			}
			if !inSection || containsAny(lower, hdfcCardHeader) {
				continue
			}

			if m := hdfcCardDateRe.FindStringSubmatch(line); m != nil {
				e.flush(cur, &out)
				cur = &pending{page: page.Number, line: lineNo + 1, date: m[1]}
				e.takeAmount(cur, strings.TrimSpace(line[len(m[0]):]))
				continue
			}

			if cur == nil {
				continue
			}
			if cur.amount == "" && hdfcCardAmountRe.MatchString(line) {
				e.takeAmount(cur, line)
				continue
			}
			if containsAny(lower, hdfcCardContSkip) || numericOnlyRe.MatchString(line) {
				continue
			}
			cur.desc += " " + line
		}

		e.flush(cur, &out)
	}

	return finish(e.ID(), out)
}

// takeAmount picks the last rupee amount off the row; a plus sign just
// before it marks a credit.
func (e *hdfcCard) takeAmount(cur *pending, rest string) {
	matches := hdfcCardAmountRe.FindAllStringSubmatchIndex(rest, -1)
	if len(matches) == 0 {
		cur.desc += " " + rest
		return
	}
	m := matches[len(matches)-1]
	cur.amount = rest[m[2]:m[3]]

	start := m[0]
	from := start - 5
	if from < 0 {
		from = 0
	}
	if strings.Contains(rest[from:start+1], "+") || strings.HasPrefix(strings.TrimSpace(rest[start:]), "+") {
		cur.suffix = "CR"
	}

	desc := strings.TrimSpace(rest[:start])
	desc = hdfcCardPointsRe.ReplaceAllString(desc, "")
	cur.desc += " " + desc
}

func (e *hdfcCard) flush(cur *pending, out *[]models.RawTransactionLine) {
	if cur == nil || cur.amount == "" || isZeroAmount(cur.amount) {
		return
	}

	desc := cleanText(cur.desc)
	desc = strings.TrimPrefix(desc, "+ ")
	desc = strings.TrimSuffix(desc, " l")
	if desc == "" {
		return
	}

	indicator := models.IndicatorDebit
	upper := strings.ToUpper(desc)
	if cur.suffix == "CR" || containsAny(upper, hdfcCardCreditWords) ||
		(strings.Contains(upper, "PAYMENT") && strings.Contains(upper, "RECEIVED")) {
		indicator = models.IndicatorCredit
	}

	*out = append(*out, models.RawTransactionLine{
		Page:        cur.page,
		Line:        cur.line,
		Date:        cur.date,
		Description: desc,
		Amount:      cur.amount,
		Indicator:   indicator,
	})
}
