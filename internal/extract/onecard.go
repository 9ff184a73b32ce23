package extract

import (
	"regexp"
	"strings"

	"bankstmt/pdf2ledger/internal/models"
)

// oneCard reads One Card credit card statements. Dates carry no year,
// credits print in parentheses or with a trailing minus, and each row
// trails a reward-points token, so the shared card engine does not fit.
type oneCard struct{}

func newOneCard() *oneCard { return &oneCard{} }

func (e *oneCard) ID() string { return "one-card" }

var (
	oneCardDateRe = regexp.MustCompile(`^(\d{1,2}\s+[A-Za-z]{3})\b`)

	oneCardBegin = []string{"transaction history"}
	oneCardEnd   = []string{
		"total spends", "total repayments", "rewards summary",
		"interest charged", "contact us", "note:", "important",
		"page ", "fee summary",
	}

	oneCardCreditWords = []string{"REFUND", "REVERSAL", "CASHBACK", "REPAYMENT"}

	// Reward points print as a small bare decimal after the amount.
	oneCardPointsRe = regexp.MustCompile(`\b\d{1,2}\.\d{2}\b`)
	oneCardTypeRe   = regexp.MustCompile(`\b(TOKEN_ECOM|POS|ECOM|ATM|CONTACTLESS)\b`)
)

func (e *oneCard) Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error) {
	var out []models.RawTransactionLine

	for _, page := range doc.Pages {
		inSection := false

		for lineNo, line := range page.Lines() {
			lower := strings.ToLower(line)

			if containsAny(lower, oneCardBegin) {
				inSection = true
				continue
			}
			if containsAny(lower, oneCardEnd) {
				continue
			}
			if !inSection {
				continue
			}

			m := oneCardDateRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			rest := strings.TrimSpace(line[len(m[0]):])

			loc := amountRe.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			amount := rest[loc[0]:loc[1]]
			if isZeroAmount(amount) {
				continue
			}
			tail := rest[loc[1]:]

			desc := cleanText(rest[:loc[0]])
			desc = cleanText(oneCardTypeRe.ReplaceAllString(desc, ""))
			desc = cleanText(oneCardPointsRe.ReplaceAllString(desc, ""))
			desc = strings.Trim(desc, "() -")
			if desc == "" {
				continue
			}

			indicator := models.IndicatorDebit
			if strings.Contains(rest, "(") && strings.Contains(rest, ")") ||
				strings.HasPrefix(strings.TrimSpace(tail), "-") ||
				containsAny(strings.ToUpper(desc), oneCardCreditWords) {
				indicator = models.IndicatorCredit
			}

			out = append(out, models.RawTransactionLine{
				Page:        page.Number,
				Line:        lineNo + 1,
				Date:        m[1],
				Description: desc,
				Amount:      amount,
				Indicator:   indicator,
			})
		}
	}

	return finish(e.ID(), out)
}
