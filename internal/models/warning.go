package models

import "fmt"

// Warning records a recoverable problem on a single statement line.
// Warnings never abort processing; the affected line is dropped or kept
// as the field-level docs describe, and the warning travels with the
// pipeline result.
type Warning struct {
	Page   int
	Line   int
	Field  string
	Reason string
	Raw    string
}

func (w Warning) String() string {
	if w.Raw != "" {
		return fmt.Sprintf("page %d line %d: %s: %s (%q)", w.Page, w.Line, w.Field, w.Reason, w.Raw)
	}
	return fmt.Sprintf("page %d line %d: %s: %s", w.Page, w.Line, w.Field, w.Reason)
}
