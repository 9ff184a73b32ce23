package models

// CategoryRule maps description keywords to a ledger category. Rules are
// evaluated in order; the first rule with a matching keyword wins.
//
// Channel restricts a rule to transfer-channel rows: when set, the rule
// only applies if the description also mentions one of the payment
// channels (UPI/IMPS/NEFT/RTGS). This mirrors how Indian bank statements
// bury the merchant inside a transfer narration.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Channel  bool     `yaml:"channel,omitempty"`
}

// CategoriesConfig is the top-level YAML shape of a category rule file.
type CategoriesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}
