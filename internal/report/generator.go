// Package report summarizes a processed statement by ledger category.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/pipeline"
)

// CategorySummary totals one ledger category.
type CategorySummary struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// Report is the per-statement summary.
type Report struct {
	Bank         string            `json:"bank"`
	Source       string            `json:"source"`
	Transactions int               `json:"transactions"`
	Warnings     int               `json:"warnings"`
	TotalDebit   decimal.Decimal   `json:"total_debit"`
	TotalCredit  decimal.Decimal   `json:"total_credit"`
	Categories   []CategorySummary `json:"categories"`
}

type Generator struct {
	log logging.Logger
}

func NewGenerator(log logging.Logger) *Generator {
	return &Generator{log: log}
}

// Build aggregates a pipeline result into a report. Categories sort by
// total debit, largest first, so the spending buckets lead.
func (g *Generator) Build(res *pipeline.Result) *Report {
	byCategory := map[string]*CategorySummary{}
	report := &Report{
		Bank:         res.Bank,
		Source:       res.Source,
		Transactions: len(res.Transactions),
		Warnings:     len(res.Warnings),
	}

	for _, t := range res.Transactions {
		if t.IsBalanceOnly() {
			continue
		}
		cs, ok := byCategory[t.Category]
		if !ok {
			cs = &CategorySummary{Category: t.Category}
			byCategory[t.Category] = cs
		}
		cs.Count++
		cs.Debit = cs.Debit.Add(t.Debit)
		cs.Credit = cs.Credit.Add(t.Credit)
		report.TotalDebit = report.TotalDebit.Add(t.Debit)
		report.TotalCredit = report.TotalCredit.Add(t.Credit)
	}

	for _, cs := range byCategory {
		report.Categories = append(report.Categories, *cs)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if !a.Debit.Equal(b.Debit) {
			return a.Debit.GreaterThan(b.Debit)
		}
		return a.Category < b.Category
	})

	return report
}

// Render serializes a report as "json" or "text".
func (g *Generator) Render(report *Report, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(report, "", "  ")
	case "text":
		return []byte(renderText(report)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderText(report *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", report.Bank, report.Source)
	fmt.Fprintf(&b, "%d transactions, %d warnings\n", report.Transactions, report.Warnings)
	fmt.Fprintf(&b, "total debit %s, total credit %s\n\n",
		report.TotalDebit.StringFixed(2), report.TotalCredit.StringFixed(2))
	for _, cs := range report.Categories {
		fmt.Fprintf(&b, "%-24s %4d  %12s  %12s\n",
			cs.Category, cs.Count, cs.Debit.StringFixed(2), cs.Credit.StringFixed(2))
	}
	return b.String()
}
