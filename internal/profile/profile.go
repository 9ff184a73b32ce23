// Package profile holds the bank profile registry and statement detection.
// A profile describes how a bank's statement announces itself (marker
// phrases and IFSC prefixes) and which extractor understands its layout.
package profile

// Kind distinguishes the two statement products we parse.
type Kind string

const (
	KindBankAccount Kind = "bank-account"
	KindCreditCard  Kind = "credit-card"
)

// Profile describes one supported statement layout.
//
// A strong marker identifies the bank on its own. Weak markers only count
// in combination: at least two must hit. IFSCPrefixes are matched against
// IFSC codes found on the first page and count as a strong hit.
type Profile struct {
	ID        string
	Label     string
	Kind      Kind
	Extractor string

	Strong       []string
	Weak         []string
	IFSCPrefixes []string
}

// Registry is the ordered set of known profiles. Credit-card profiles
// come before bank-account profiles so that card statements, which often
// also mention the bank's name, resolve to the card layout. The registry
// is built once at startup and not mutated afterwards.
type Registry struct {
	profiles []Profile
}

// NewRegistry returns a registry with the built-in profiles.
func NewRegistry() *Registry {
	return &Registry{profiles: builtinProfiles()}
}

// NewRegistryWithOverrides returns a registry with the given profiles
// prepended to the built-ins. Earlier profiles win detection ties, so
// overrides take precedence.
func NewRegistryWithOverrides(overrides []Profile) *Registry {
	profiles := make([]Profile, 0, len(overrides)+11)
	profiles = append(profiles, overrides...)
	profiles = append(profiles, builtinProfiles()...)
	return &Registry{profiles: profiles}
}

// Profiles returns the registry contents in detection order.
func (r *Registry) Profiles() []Profile {
	return r.profiles
}

// ByID looks a profile up by its identifier.
func (r *Registry) ByID(id string) (Profile, bool) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

func builtinProfiles() []Profile {
	return []Profile{
		{
			ID:        "one-card",
			Label:     "One Credit Card",
			Kind:      KindCreditCard,
			Extractor: "one-card",
			Strong:    []string{"one credit card"},
			Weak:      []string{"transaction history", "reward points"},
		},
		{
			ID:           "indusind-card",
			Label:        "IndusInd Credit Card",
			Kind:         KindCreditCard,
			Extractor:    "indusind-card",
			Weak:         []string{"indusind", "credit card", "previous balance", "card statement", "purchases & cash"},
			IFSCPrefixes: []string{"INDB"},
		},
		{
			ID:        "yes-card",
			Label:     "Yes Credit Card",
			Kind:      KindCreditCard,
			Extractor: "yes-card",
			Weak:      []string{"yes bank", "credit card statement", "card number", "credit limit"},
		},
		{
			ID:        "sbi-card",
			Label:     "SBI Credit Card",
			Kind:      KindCreditCard,
			Extractor: "sbi-card",
			Weak:      []string{"sbi card", "sbi", "credit limit", "stmt no", "xxxx xxxx xxxx"},
		},
		{
			ID:        "hdfc-card",
			Label:     "HDFC Credit Card",
			Kind:      KindCreditCard,
			Extractor: "hdfc-card",
			Strong:    []string{"neucoins", "tata neu", "hdfc bank credit card"},
			Weak:      []string{"hdfc", "credit card", "card no", "statement date"},
		},
		{
			ID:        "rbl-card",
			Label:     "RBL Credit Card",
			Kind:      KindCreditCard,
			Extractor: "rbl-card",
			Weak:      []string{"rbl bank", "credit limit", "min. amt", "the month gone by", "account summary"},
		},
		{
			ID:           "sbi-bank",
			Label:        "SBI Bank",
			Kind:         KindBankAccount,
			Extractor:    "sbi-bank",
			Weak:         []string{"state bank", "sbin", "account statement", "txn date", "regular sb"},
			IFSCPrefixes: []string{"SBIN"},
		},
		{
			ID:           "hdfc-bank",
			Label:        "HDFC Bank",
			Kind:         KindBankAccount,
			Extractor:    "hdfc-bank",
			Weak:         []string{"hdfc", "account statement", "savings", "current account"},
			IFSCPrefixes: []string{"HDFC"},
		},
		{
			ID:           "yes-bank",
			Label:        "Yes Bank",
			Kind:         KindBankAccount,
			Extractor:    "yes-bank",
			Weak:         []string{"yes bank", "yesb", "saving", "transaction details for your account", "statement of account"},
			IFSCPrefixes: []string{"YESB"},
		},
		{
			ID:           "rbl-bank",
			Label:        "RBL Bank",
			Kind:         KindBankAccount,
			Extractor:    "rbl-bank",
			Weak:         []string{"rbl bank", "account"},
			IFSCPrefixes: []string{"RATN"},
		},
		{
			ID:           "stanchart-bank",
			Label:        "Standard Chartered Bank",
			Kind:         KindBankAccount,
			Extractor:    "stanchart-bank",
			Strong:       []string{"standard chartered"},
			Weak:         []string{"statement of account", "balance forward"},
			IFSCPrefixes: []string{"SCBL"},
		},
	}
}
