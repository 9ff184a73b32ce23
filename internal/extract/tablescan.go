package extract

import (
	"regexp"
	"strings"

	"bankstmt/pdf2ledger/internal/models"
)

var numericCellRe = regexp.MustCompile(`^[\d.]+$`)

// tableScan is the engine for layouts the decoder delivers as tables.
// Column positions default to the documented layout and are remapped
// from the header row when one is present.
type tableScan struct {
	id     string
	dateRe *regexp.Regexp // matched against the first cell, group 1 is the date

	descCol, debitCol, creditCol, balanceCol int

	// Header substrings identifying each column, lowercase.
	debitHeader, creditHeader, balanceHeader, descHeader string

	skip []string // lowercase keywords excluding summary rows

	balanceForward bool // "BALANCE FORWARD" rows are balance-only
}

// amountCell returns the cleaned cell text when it holds an amount.
func amountCell(cells []string, col int) string {
	if col >= len(cells) {
		return ""
	}
	cell := strings.TrimSpace(cells[col])
	if cell == "" {
		return ""
	}
	bare := strings.ReplaceAll(strings.ReplaceAll(cell, ",", ""), " ", "")
	if !numericCellRe.MatchString(bare) {
		return ""
	}
	return cell
}

func (t *tableScan) run(page *models.Page, out *[]models.RawTransactionLine) {
	debitCol, creditCol := t.debitCol, t.creditCol
	balanceCol, descCol := t.balanceCol, t.descCol

	for _, table := range page.Tables {
		for rowNo, row := range table.Rows {
			if len(row) < 3 {
				continue
			}
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = strings.TrimSpace(c)
			}
			combined := strings.ToLower(strings.Join(cells, " "))

			// Header row: remap column positions. Requiring the balance
			// header keeps narrations mentioning deposits or withdrawals
			// from being mistaken for one.
			if (strings.Contains(combined, t.debitHeader) || strings.Contains(combined, t.creditHeader)) &&
				strings.Contains(combined, t.balanceHeader) {
				for i, c := range cells {
					cl := strings.ToLower(c)
					switch {
					case strings.Contains(cl, t.debitHeader):
						debitCol = i
					case strings.Contains(cl, t.creditHeader):
						creditCol = i
					case strings.Contains(cl, t.balanceHeader):
						balanceCol = i
					case strings.Contains(cl, t.descHeader):
						descCol = i
					}
				}
				continue
			}

			if containsAny(combined, t.skip) {
				continue
			}

			m := t.dateRe.FindStringSubmatch(cells[0])
			if m == nil {
				// Continuation row: extend the previous description.
				if len(*out) > 0 && descCol < len(cells) && cells[descCol] != "" {
					last := &(*out)[len(*out)-1]
					last.Description = cleanText(last.Description + " " + cells[descCol])
				}
				continue
			}

			desc := ""
			if descCol < len(cells) {
				desc = cleanText(cells[descCol])
			}
			if desc == "" {
				continue
			}

			debit := amountCell(cells, debitCol)
			credit := amountCell(cells, creditCol)
			balance := amountCell(cells, balanceCol)

			line := models.RawTransactionLine{
				Page:        page.Number,
				Line:        rowNo + 1,
				Date:        m[1],
				Description: desc,
				Balance:     balance,
			}

			switch {
			case t.balanceForward && strings.Contains(strings.ToUpper(desc), "BALANCE FORWARD") && debit == "" && credit == "":
				if balance == "" {
					continue
				}
			case debit != "" && !isZeroAmount(debit):
				line.Amount, line.Indicator = debit, models.IndicatorDebit
			case credit != "" && !isZeroAmount(credit):
				line.Amount, line.Indicator = credit, models.IndicatorCredit
			default:
				if balance == "" {
					continue
				}
			}

			*out = append(*out, line)
		}
	}
}
