package profile

import (
	"testing"

	"bankstmt/pdf2ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(pages ...string) *models.RawDocument {
	d := &models.RawDocument{}
	for i, text := range pages {
		d.Pages = append(d.Pages, models.Page{Number: i + 1, Text: text})
	}
	return d
}

func TestDetect_IFSCPrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"sbi by ifsc", "Account Statement\nIFS Code: SBIN0001234\nTxn Date Description", "sbi-bank"},
		{"yes by ifsc", "Statement of Account\nIFSC: YESB0000042", "yes-bank"},
		{"stanchart by ifsc", "Statement\nSCBL0036078 branch", "stanchart-bank"},
		{"rbl by ifsc", "Statement of transaction\nRATN0000123 account", "rbl-bank"},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Detect(doc(tt.text), 2)
			require.NotNil(t, res.Profile)
			assert.Equal(t, tt.want, res.Profile.ID)
		})
	}
}

func TestDetect_CardBeforeBank(t *testing.T) {
	r := NewRegistry()

	// A Yes card statement also names the bank; the card profile must win.
	res := r.Detect(doc("YES BANK Credit Card Statement\nCard Number XXXX\nCredit Limit 1,00,000"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "yes-card", res.Profile.ID)

	res = r.Detect(doc("One Credit Card\nTransaction History"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "one-card", res.Profile.ID)
}

func TestDetect_HDFCCardOverridesBankIFSC(t *testing.T) {
	r := NewRegistry()

	// HDFC card statements quote the account IFSC; the credit-card
	// keywords must pull detection back to the card layout.
	res := r.Detect(doc("HDFC Bank\nHDFC0000123\nCredit Card statement\nCredit Limit 2,00,000"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "hdfc-card", res.Profile.ID)

	// A plain account statement stays on the bank layout.
	res = r.Detect(doc("HDFC Bank\nHDFC0000123\nAccount Statement for savings account"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "hdfc-bank", res.Profile.ID)
}

func TestDetect_WeakMarkersNeedTwo(t *testing.T) {
	r := NewRegistry()

	// A single weak hit is not enough.
	res := r.Detect(doc("some letter mentioning sbi once"), 2)
	if res.Profile != nil {
		t.Fatalf("expected no match, got %s", res.Profile.ID)
	}
	assert.NotEmpty(t, res.Checked)

	// Two weak hits match.
	res = r.Detect(doc("State Bank of India\nAccount Statement"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "sbi-bank", res.Profile.ID)
}

func TestDetect_UnknownReportsCandidates(t *testing.T) {
	r := NewRegistry()
	res := r.Detect(doc("completely unrelated text about savings"), 2)
	assert.Nil(t, res.Profile)
	// "savings" grazes the hdfc-bank profile; it shows up as a candidate.
	assert.Contains(t, res.Candidates(), "hdfc-bank")
}

func TestDetect_SecondPageIgnoredForIFSC(t *testing.T) {
	r := NewRegistry()

	// IFSC codes quoted in transaction narrations on later pages must not
	// steer detection.
	res := r.Detect(doc(
		"Statement of Account\nYes Bank savings",
		"NEFT to SBIN0009999 counterparty",
	), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "yes-bank", res.Profile.ID)
}

func TestRegistryOverridesWinTies(t *testing.T) {
	custom := Profile{
		ID:        "axis-bank",
		Label:     "Axis Bank",
		Kind:      KindBankAccount,
		Extractor: "sbi-bank",
		Strong:    []string{"axis bank"},
	}
	r := NewRegistryWithOverrides([]Profile{custom})

	res := r.Detect(doc("Axis Bank account statement"), 2)
	require.NotNil(t, res.Profile)
	assert.Equal(t, "axis-bank", res.Profile.ID)

	p, ok := r.ByID("sbi-bank")
	require.True(t, ok)
	assert.Equal(t, "SBI Bank", p.Label)
}
