// Package categorize assigns ledger categories to transactions by
// ordered keyword matching, with an optional AI fallback for narrations
// the rule set does not know.
package categorize

import (
	"context"
	"strings"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
)

// channelTokens mark bank-transfer narrations. Rules flagged as channel
// rules only apply to these, so that merchant names embedded in UPI
// strings win before the generic transfer buckets.
var channelTokens = []string{"UPI", "IMPS", "NEFT", "RTGS"}

// Categorizer matches transaction descriptions against an ordered rule
// list. The first matching rule wins; order is significant.
type Categorizer struct {
	rules []models.CategoryRule
	log   logging.Logger
}

// New builds a categorizer over the given rules. A nil or empty rule
// set falls back to the built-in defaults.
func New(rules []models.CategoryRule, log logging.Logger) *Categorizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Categorizer{rules: rules, log: log}
}

// Categorize returns the category for a single description.
func (c *Categorizer) Categorize(description string) string {
	upper := strings.ToUpper(description)
	channel := isChannel(upper)

	for _, rule := range c.rules {
		if rule.Channel && !channel {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(kw)) {
				return rule.Category
			}
		}
	}
	return models.CategoryUncategorized
}

// Apply categorizes every transaction in place.
func (c *Categorizer) Apply(txns []models.Transaction) {
	unmatched := 0
	for i := range txns {
		txns[i].Category = c.Categorize(txns[i].Description)
		if txns[i].Category == models.CategoryUncategorized {
			unmatched++
		}
	}
	c.log.Debug("categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(txns)},
		logging.Field{Key: "uncategorized", Value: unmatched})
}

// ApplyWithSuggester runs Apply and then asks the suggester about every
// transaction the rules left uncategorized. Suggester failures leave
// the transaction uncategorized; they never fail the statement.
func (c *Categorizer) ApplyWithSuggester(ctx context.Context, txns []models.Transaction, s Suggester) {
	c.Apply(txns)
	if s == nil {
		return
	}

	for i := range txns {
		if txns[i].Category != models.CategoryUncategorized {
			continue
		}
		category, err := s.Suggest(ctx, txns[i].Description)
		if err != nil {
			c.log.WithError(err).Warn("category suggestion failed",
				logging.Field{Key: logging.FieldCategory, Value: txns[i].Description})
			continue
		}
		if c.knownCategory(category) {
			txns[i].Category = category
		}
	}
}

// Categories lists the distinct categories of the rule set, in rule
// order.
func (c *Categorizer) Categories() []string {
	seen := make(map[string]bool, len(c.rules))
	var out []string
	for _, rule := range c.rules {
		if !seen[rule.Category] {
			seen[rule.Category] = true
			out = append(out, rule.Category)
		}
	}
	return out
}

func (c *Categorizer) knownCategory(name string) bool {
	for _, rule := range c.rules {
		if rule.Category == name {
			return true
		}
	}
	return false
}

func isChannel(upper string) bool {
	for _, tok := range channelTokens {
		if strings.Contains(upper, tok) {
			return true
		}
	}
	return false
}
