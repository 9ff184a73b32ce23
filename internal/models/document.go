// Package models defines the data types shared across the statement pipeline:
// decoded documents, raw statement lines and canonical transactions.
package models

import "strings"

// Table holds one decoded table from a statement page. Cells are kept as
// strings exactly as the decoder produced them.
type Table struct {
	Rows [][]string
}

// Page holds the decoded content of a single statement page.
// Text is the flattened page text with one physical row per line.
// Tables is populated only when the decoder recognised tabular content.
type Page struct {
	Number int
	Text   string
	Tables []Table
}

// RawDocument is the decoded form of a statement, as handed to bank
// detection and extraction. It carries no interpretation of its content.
type RawDocument struct {
	// Source is the originating file path, used for diagnostics only.
	Source string
	Pages  []Page
}

// PageText returns the text of the n-th page (1-based), or an empty
// string when the page does not exist.
func (d *RawDocument) PageText(n int) string {
	if n < 1 || n > len(d.Pages) {
		return ""
	}
	return d.Pages[n-1].Text
}

// LeadingText joins the text of the first n pages. Detection only ever
// looks at the beginning of a statement.
func (d *RawDocument) LeadingText(n int) string {
	if n > len(d.Pages) {
		n = len(d.Pages)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(d.Pages[i].Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines splits a page's text into trimmed lines, dropping empty ones.
func (p *Page) Lines() []string {
	var lines []string
	for _, l := range strings.Split(p.Text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
