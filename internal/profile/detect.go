package profile

import (
	"regexp"
	"strings"

	"bankstmt/pdf2ledger/internal/models"
)

// ifscRe matches an Indian IFSC code: four letters, a zero, six
// alphanumerics. Only the first page is scanned; later pages routinely
// quote other banks' codes in transaction narrations.
var ifscRe = regexp.MustCompile(`\b([A-Z]{4}0[A-Z0-9]{6})\b`)

// DefaultDetectionPages is how many leading pages marker matching scans.
const DefaultDetectionPages = 2

// MarkerCheck records one marker comparison, for diagnostics.
type MarkerCheck struct {
	ProfileID string
	Marker    string
	Strong    bool
	Hit       bool
}

// Result is the outcome of detection. Profile is nil when no profile
// matched; Checked then explains what was looked for.
type Result struct {
	Profile *Profile
	Score   int
	Checked []MarkerCheck
}

// Candidates returns the IDs of profiles that had at least one marker
// hit, in registry order. Used to build diagnostics for unsupported
// statements.
func (res *Result) Candidates() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range res.Checked {
		if c.Hit && !seen[c.ProfileID] {
			seen[c.ProfileID] = true
			out = append(out, c.ProfileID)
		}
	}
	return out
}

// Detect scans the leading pages of a decoded statement and returns the
// best-matching profile.
//
// A profile matches when at least one strong marker hits, or at least two
// weak markers hit. An IFSC code on page one whose prefix belongs to a
// profile counts as a strong hit. Among matching profiles the highest
// score wins, with strong hits weighing double; ties go to the earlier
// registry entry.
func (r *Registry) Detect(doc *models.RawDocument, pages int) Result {
	if pages < 1 {
		pages = DefaultDetectionPages
	}
	text := strings.ToLower(doc.LeadingText(pages))
	firstPage := doc.PageText(1)
	if firstPage == "" {
		firstPage = doc.LeadingText(pages)
	}
	fpLower := strings.ToLower(firstPage)

	ifscPrefixes := map[string]bool{}
	for _, m := range ifscRe.FindAllStringSubmatch(firstPage, -1) {
		ifscPrefixes[m[1][:4]] = true
	}

	var result Result
	for i := range r.profiles {
		p := &r.profiles[i]
		strong, weak := 0, 0

		for _, marker := range p.Strong {
			hit := strings.Contains(text, marker)
			result.Checked = append(result.Checked, MarkerCheck{p.ID, marker, true, hit})
			if hit {
				strong++
			}
		}
		for _, prefix := range p.IFSCPrefixes {
			hit := ifscPrefixes[prefix]
			result.Checked = append(result.Checked, MarkerCheck{p.ID, "ifsc:" + prefix, true, hit})
			if hit {
				strong++
			}
		}
		for _, marker := range p.Weak {
			hit := strings.Contains(text, marker)
			result.Checked = append(result.Checked, MarkerCheck{p.ID, marker, false, hit})
			if hit {
				weak++
			}
		}

		if strong == 0 && weak < 2 {
			continue
		}
		score := 2*strong + weak
		if result.Profile == nil || score > result.Score {
			result.Profile = p
			result.Score = score
		}
	}

	// An HDFC account IFSC on a credit-card statement must not pull the
	// statement to the bank layout.
	if result.Profile != nil && result.Profile.ID == "hdfc-bank" &&
		strings.Contains(fpLower, "credit card") && strings.Contains(fpLower, "credit limit") {
		if card, ok := r.ByID("hdfc-card"); ok {
			c := card
			result.Profile = &c
		}
	}

	return result
}
