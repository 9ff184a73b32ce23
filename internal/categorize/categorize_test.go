package categorize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
)

func TestCategorizeDefaults(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"SWIGGY BANGALORE", "Food & Dining"},
		{"UPI/swiggy/food order", "Food & Dining"},
		{"UPI/rahul kumar/rent january", "Rent"},
		{"UPI/sbicardsan/autopay", "Credit Card Payment"},
		{"UPI/9876543210/sent via upi", "Transfer"},
		{"IMPS-4012/landlord", "Transfer"},
		{"AMAZON PAY INDIA", "Shopping Online"},
		{"NETFLIX.COM", "Entertainment"},
		{"BHARAT PETROLEUM FILLING", "Fuel"},
		{"APOLLO PHARMACY CHENNAI", "Medical"},
		{"IRCTC WEB BOOKING", "Travel"},
		{"BLINKIT GURGAON", "Groceries"},
		{"PAYMENT RECEIVED, THANK YOU", "Payment/Refund"},
		{"ANNUAL FEE WAIVER", "Fees & Charges"},
		{"SALARY JAN 2025", "Salary"},
		{"INT.COLL 4512", "Interest"},
		{"ATM WDL MG ROAD", "Cash"},
		{"TDS 194N", "Tax"},
		{"SOMETHING ENTIRELY ELSE", models.CategoryUncategorized},
	}

	c := New(nil, &logging.MockLogger{})
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestChannelRulesNeedChannelToken(t *testing.T) {
	c := New(nil, &logging.MockLogger{})

	// "rent" only categorizes inside a transfer narration; a card
	// merchant containing the substring must not hit the Rent bucket.
	assert.Equal(t, "Rent", c.Categorize("NEFT DR RENT FEBRUARY"))
	assert.NotEqual(t, "Rent", c.Categorize("CARRENTALS DOT COM"))
}

func TestFirstMatchWins(t *testing.T) {
	rules := []models.CategoryRule{
		{Category: "A", Keywords: []string{"swiggy"}},
		{Category: "B", Keywords: []string{"swiggy bangalore"}},
	}
	c := New(rules, &logging.MockLogger{})
	assert.Equal(t, "A", c.Categorize("SWIGGY BANGALORE"))
}

func TestApplySetsEveryCategory(t *testing.T) {
	c := New(nil, &logging.MockLogger{})
	txns := []models.Transaction{
		{Description: "SWIGGY BANGALORE"},
		{Description: "UNKNOWN MERCHANT 42"},
	}
	c.Apply(txns)

	assert.Equal(t, "Food & Dining", txns[0].Category)
	assert.Equal(t, models.CategoryUncategorized, txns[1].Category)
}

type stubSuggester struct {
	answer string
	err    error
	calls  int
}

func (s *stubSuggester) Suggest(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.answer, s.err
}

func TestApplyWithSuggester(t *testing.T) {
	c := New(nil, &logging.MockLogger{})
	txns := []models.Transaction{
		{Description: "SWIGGY BANGALORE"},
		{Description: "UNKNOWN MERCHANT 42"},
	}

	s := &stubSuggester{answer: "Groceries"}
	c.ApplyWithSuggester(context.Background(), txns, s)

	// Only the uncategorized transaction goes to the suggester.
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "Groceries", txns[1].Category)
}

func TestApplyWithSuggesterFailureLeavesUncategorized(t *testing.T) {
	c := New(nil, &logging.MockLogger{})
	txns := []models.Transaction{{Description: "UNKNOWN MERCHANT 42"}}

	s := &stubSuggester{err: errors.New("quota exceeded")}
	c.ApplyWithSuggester(context.Background(), txns, s)
	assert.Equal(t, models.CategoryUncategorized, txns[0].Category)

	// Answers outside the rule set are discarded too.
	s = &stubSuggester{answer: "Cryptocurrency"}
	c.ApplyWithSuggester(context.Background(), txns, s)
	assert.Equal(t, models.CategoryUncategorized, txns[0].Category)
}

func TestCategoriesAreDistinctAndOrdered(t *testing.T) {
	c := New(nil, &logging.MockLogger{})
	cats := c.Categories()
	require.NotEmpty(t, cats)

	seen := map[string]bool{}
	for _, name := range cats {
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.Equal(t, "Food & Dining", cats[0])
}
