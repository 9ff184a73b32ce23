package extract

import (
	"regexp"
	"strings"

	"bankstmt/pdf2ledger/internal/models"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	cidRe   = regexp.MustCompile(`\(cid:\d+\)`)

	// amountRe matches a monetary token anywhere in a row.
	amountRe = regexp.MustCompile(`[\d,]+\.\d{2}`)

	// amountTailRe matches the trailing amount of a card statement row
	// with its optional Dr/Cr suffix.
	amountTailRe = regexp.MustCompile(`([\d,]+\.\d{2})\s*(Dr|Cr|DR|CR|D|C)?\.?\s*$`)

	numericOnlyRe = regexp.MustCompile(`^[\d\s,.\-]+$`)
)

// cleanText collapses whitespace and strips decoder artifacts.
func cleanText(s string) string {
	s = cidRe.ReplaceAllString(s, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isZeroAmount(token string) bool {
	return strings.ReplaceAll(token, ",", "") == "0.00"
}

// pending is a transaction row being assembled across continuation lines.
type pending struct {
	page, line            int
	date, desc            string
	amount, suffix        string
	balance               string
	indicator             string // set when the variant resolved direction itself
}

// cardScan is the line-scan engine shared by the credit-card layouts.
// Rows start with a date, end with an amount and an optional Dr/Cr
// suffix, and live inside a transaction section delimited by begin/end
// marker phrases. Section state resets per page; sections usually
// restart via a header or a dated row on the next page.
type cardScan struct {
	id     string
	dateRe *regexp.Regexp // anchored at line start, group 1 is the date

	begin []string // lowercase phrases opening the transaction section
	end   []string // lowercase phrases ending it

	// endCloses controls whether end markers close the section or only
	// flush the current row (IndusInd keeps scanning after its summary
	// blocks).
	endCloses bool

	contSkip   []string         // continuation lines to ignore, lowercase
	contDropRe []*regexp.Regexp // continuation lines to drop entirely

	creditWords []string         // uppercase words forcing credit
	cleanups    []*regexp.Regexp // stripped from the final description
}

func (c *cardScan) run(doc *models.RawDocument) []models.RawTransactionLine {
	var out []models.RawTransactionLine

	for _, page := range doc.Pages {
		inSection := false
		var cur *pending

		for lineNo, line := range page.Lines() {
			lower := strings.ToLower(line)

			if containsAny(lower, c.begin) {
				inSection = true
				continue
			}
			if containsAny(lower, c.end) {
				c.flush(cur, &out)
				cur = nil
				// Page-break markers interrupt the row flow without
				// ending the transaction section.
				if c.endCloses && !strings.Contains(lower, "page ") {
					inSection = false
				}
				continue
			}

			if !inSection {
				// A dated row carrying an amount opens the section on
				// its own; some statements have no section header at all.
				if c.dateRe.MatchString(line) && amountTailRe.MatchString(line) {
					inSection = true
				} else {
					continue
				}
			}

			if m := c.dateRe.FindStringSubmatch(line); m != nil {
				c.flush(cur, &out)
				cur = &pending{page: page.Number, line: lineNo + 1, date: m[1]}
				rest := strings.TrimSpace(line[len(m[0]):])
				if am := amountTailRe.FindStringSubmatchIndex(rest); am != nil {
					cur.amount = rest[am[2]:am[3]]
					if am[4] >= 0 {
						cur.suffix = strings.ToUpper(rest[am[4]:am[5]])
					}
					rest = strings.TrimSpace(rest[:am[0]])
				}
				cur.desc = rest
				continue
			}

			if cur == nil {
				continue
			}

			// Continuation line: may carry the amount the dated line
			// lacked, otherwise it extends the description.
			if am := amountTailRe.FindStringSubmatchIndex(line); am != nil && cur.amount == "" {
				cur.amount = line[am[2]:am[3]]
				if am[4] >= 0 {
					cur.suffix = strings.ToUpper(line[am[4]:am[5]])
				}
				if part := strings.TrimSpace(line[:am[0]]); part != "" {
					cur.desc += " " + part
				}
				continue
			}
			if containsAny(lower, c.contSkip) || c.dropLine(line) {
				continue
			}
			cur.desc += " " + line
		}

		c.flush(cur, &out)
	}

	return out
}

func (c *cardScan) dropLine(line string) bool {
	for _, re := range c.contDropRe {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func (c *cardScan) flush(cur *pending, out *[]models.RawTransactionLine) {
	if cur == nil || cur.amount == "" || cur.date == "" || isZeroAmount(cur.amount) {
		return
	}

	desc := cleanText(cur.desc)
	for _, re := range c.cleanups {
		desc = strings.TrimSpace(re.ReplaceAllString(desc, ""))
	}
	if desc == "" {
		return
	}

	indicator := models.IndicatorDebit
	if cur.suffix == "CR" || cur.suffix == "C" || containsAny(strings.ToUpper(desc), c.creditWords) {
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

// statementScan is the line-scan engine for bank-account layouts whose
// positional tables the decoder flattens into text. Rows start with a
// date and end with one to three right-anchored amounts; the amount
// count decides what they mean.
type statementScan struct {
	id     string
	dateRe *regexp.Regexp // anchored at line start, group 1 is the date

	skip []string // lowercase keywords excluding a line entirely

	// debitFirst says whether three-amount rows read debit,credit,balance
	// (true) or credit,debit,balance (false).
	debitFirst bool

	// Keyword inference for two-amount rows (movement plus balance).
	debitWords  []string // uppercase
	creditWords []string // uppercase

	balanceForward bool // "BALANCE FORWARD" rows are balance-only

	cleanups []*regexp.Regexp // stripped from the final description
}

func (s *statementScan) run(doc *models.RawDocument) []models.RawTransactionLine {
	var out []models.RawTransactionLine

	for _, page := range doc.Pages {
		var cur *pending

		for lineNo, line := range page.Lines() {
			lower := strings.ToLower(line)
			if containsAny(lower, s.skip) {
				continue
			}

			m := s.dateRe.FindStringSubmatch(line)
			if m == nil {
				// Continuation: amounts stripped, leftovers join the
				// running description.
				if cur == nil {
					continue
				}
				rest := amountRe.ReplaceAllString(line, "")
				rest = strings.TrimSpace(rest)
				if rest != "" && !numericOnlyRe.MatchString(rest) {
					cur.desc += " " + rest
				}
				continue
			}

			s.flush(cur, &out)
			cur = &pending{page: page.Number, line: lineNo + 1, date: m[1]}
			rest := strings.TrimSpace(line[len(m[0]):])

			// A second leading date is the value date; drop it.
			if vm := s.dateRe.FindStringSubmatch(rest); vm != nil {
				rest = strings.TrimSpace(rest[len(vm[0]):])
			}

			amounts := amountRe.FindAllString(rest, -1)
			desc := rest
			for _, a := range amounts {
				desc = strings.Replace(desc, a, "", 1)
			}
			cur.desc = desc

			descUpper := strings.ToUpper(desc)
			switch {
			case s.balanceForward && strings.Contains(descUpper, "BALANCE FORWARD"):
				if len(amounts) > 0 {
					cur.balance = amounts[len(amounts)-1]
				}
			case len(amounts) >= 3:
				first, second := amounts[len(amounts)-3], amounts[len(amounts)-2]
				cur.balance = amounts[len(amounts)-1]
				debit, credit := first, second
				if !s.debitFirst {
					debit, credit = second, first
				}
				if !isZeroAmount(debit) {
					cur.amount, cur.indicator = debit, models.IndicatorDebit
				} else if !isZeroAmount(credit) {
					cur.amount, cur.indicator = credit, models.IndicatorCredit
				}
			case len(amounts) == 2:
				cur.balance = amounts[1]
				cur.amount = amounts[0]
				if s.isDebit(descUpper) {
					cur.indicator = models.IndicatorDebit
				} else {
					cur.indicator = models.IndicatorCredit
				}
			case len(amounts) == 1:
				cur.balance = amounts[0]
			}
		}

		s.flush(cur, &out)
	}

	return out
}

// isDebit infers direction from the narration when the row carries a
// single movement amount. Unrecognised narrations default to debit;
// statements list far more outgoing rows than incoming ones.
func (s *statementScan) isDebit(descUpper string) bool {
	for _, kw := range s.debitWords {
		if strings.Contains(descUpper, kw) {
			return true
		}
	}
	for _, kw := range s.creditWords {
		if strings.Contains(descUpper, kw) {
			return false
		}
	}
	return true
}

func (s *statementScan) flush(cur *pending, out *[]models.RawTransactionLine) {
	if cur == nil {
		return
	}
	// Rows with neither a movement nor a balance are noise.
	if cur.amount == "" && cur.balance == "" {
		return
	}

	desc := cleanText(cur.desc)
	for _, re := range s.cleanups {
		desc = cleanText(re.ReplaceAllString(desc, ""))
	}
	if desc == "" && cur.amount == "" {
		return
	}

	*out = append(*out, models.RawTransactionLine{
		Page:        cur.page,
		Line:        cur.line,
		Date:        cur.date,
		Description: desc,
		Amount:      cur.amount,
		Indicator:   cur.indicator,
		Balance:     cur.balance,
	})
}
