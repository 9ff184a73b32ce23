package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Source: "statement.pdf",
		Bank:   "SBI Bank",
		Transactions: []models.Transaction{
			{Serial: 1, Description: "UPI/swiggy", Debit: decimal.RequireFromString("450.00"), Category: "Food & Dining"},
			{Serial: 2, Description: "UPI/zomato", Debit: decimal.RequireFromString("320.00"), Category: "Food & Dining"},
			{Serial: 3, Description: "SALARY JAN", Credit: decimal.RequireFromString("50000.00"), Category: "Salary"},
			{Serial: 4, Description: "BALANCE FORWARD", HasBalance: true, Balance: decimal.RequireFromString("1000.00")},
		},
		Warnings: []models.Warning{{Field: "date", Reason: "unparseable date"}},
	}
}

func TestBuild(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	r := g.Build(sampleResult())

	assert.Equal(t, "SBI Bank", r.Bank)
	assert.Equal(t, 4, r.Transactions)
	assert.Equal(t, 1, r.Warnings)
	assert.True(t, r.TotalDebit.Equal(decimal.RequireFromString("770.00")))
	assert.True(t, r.TotalCredit.Equal(decimal.RequireFromString("50000.00")))

	// Balance-only rows are not a category; spending buckets lead.
	require.Len(t, r.Categories, 2)
	assert.Equal(t, "Food & Dining", r.Categories[0].Category)
	assert.Equal(t, 2, r.Categories[0].Count)
	assert.Equal(t, "Salary", r.Categories[1].Category)
}

func TestRenderJSON(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	out, err := g.Render(g.Build(sampleResult()), "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "SBI Bank", decoded["bank"])
}

func TestRenderText(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	out, err := g.Render(g.Build(sampleResult()), "text")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "SBI Bank")
	assert.Contains(t, text, "Food & Dining")
	assert.Contains(t, text, "50000.00")
}

func TestRenderUnknownFormat(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})
	_, err := g.Render(g.Build(sampleResult()), "xml")
	assert.Error(t, err)
}
