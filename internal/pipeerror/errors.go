// Package pipeerror defines the typed errors raised by the statement
// pipeline. Callers are expected to distinguish them with errors.As.
package pipeerror

import (
	"fmt"
	"strings"
	"time"
)

// DecryptionError reports a statement that could not be opened because it
// is encrypted and the supplied password (possibly empty) was rejected.
type DecryptionError struct {
	Source string
	Err    error
}

func (e *DecryptionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("cannot decrypt %s: wrong or missing password", e.Source)
	}
	return "cannot decrypt statement: wrong or missing password"
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// UnsupportedBankError reports a statement no bank profile matched.
// Candidates lists the closest profiles that were considered, with the
// markers that were checked, so the caller can surface diagnostics.
type UnsupportedBankError struct {
	Source     string
	Candidates []string
}

func (e *UnsupportedBankError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("unsupported bank statement: no profile matched (closest: %s)",
			strings.Join(e.Candidates, ", "))
	}
	return "unsupported bank statement: no profile matched"
}

// ExtractionError reports that no transaction content could be read
// from the statement: the matched profile's extractor found none of the
// expected layout, or the decoder produced no text at all (in which
// case ProfileID is empty, detection never ran).
type ExtractionError struct {
	ProfileID string
	Reason    string
}

func (e *ExtractionError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "layout mismatch"
	}
	if e.ProfileID == "" {
		return fmt.Sprintf("extraction failed: %s", reason)
	}
	return fmt.Sprintf("extraction failed for profile %s: %s", e.ProfileID, reason)
}

// TimeoutError reports that processing exceeded its wall-clock budget.
// No partial result accompanies it.
type TimeoutError struct {
	Source  string
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("processing %s timed out after %s", e.Source, e.Elapsed)
}
