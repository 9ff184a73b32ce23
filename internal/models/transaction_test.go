package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionDirection(t *testing.T) {
	tests := []struct {
		name        string
		debit       string
		credit      string
		wantDebit   bool
		wantCredit  bool
		balanceOnly bool
	}{
		{"debit row", "120.50", "0", true, false, false},
		{"credit row", "0", "5000.00", false, true, false},
		{"balance only", "0", "0", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{
				Debit:  decimal.RequireFromString(tt.debit),
				Credit: decimal.RequireFromString(tt.credit),
			}
			assert.Equal(t, tt.wantDebit, tx.IsDebit())
			assert.Equal(t, tt.wantCredit, tx.IsCredit())
			assert.Equal(t, tt.balanceOnly, tx.IsBalanceOnly())
		})
	}
}

func TestSignedAmount(t *testing.T) {
	debit := Transaction{Debit: decimal.RequireFromString("250.00")}
	assert.True(t, debit.SignedAmount().Equal(decimal.RequireFromString("-250.00")))

	credit := Transaction{Credit: decimal.RequireFromString("1000.00")}
	assert.True(t, credit.SignedAmount().Equal(decimal.RequireFromString("1000.00")))
}

func TestFormatDate(t *testing.T) {
	tx := Transaction{Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-03-14", tx.FormatDate())

	assert.Equal(t, "", (&Transaction{}).FormatDate())
}

func TestDocumentLeadingText(t *testing.T) {
	doc := RawDocument{Pages: []Page{
		{Number: 1, Text: "first"},
		{Number: 2, Text: "second"},
		{Number: 3, Text: "third"},
	}}

	assert.Equal(t, "first\nsecond\n", doc.LeadingText(2))
	assert.Equal(t, "first\nsecond\nthird\n", doc.LeadingText(10))
	assert.Equal(t, "second", doc.PageText(2))
	assert.Equal(t, "", doc.PageText(9))
}

func TestPageLines(t *testing.T) {
	p := Page{Text: "  one \n\n two\n"}
	assert.Equal(t, []string{"one", "two"}, p.Lines())
}
