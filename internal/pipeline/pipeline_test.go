package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/pdf2ledger/internal/categorize"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/normalize"
	"bankstmt/pdf2ledger/internal/pipeerror"
	"bankstmt/pdf2ledger/internal/profile"
)

type stubDecoder struct {
	doc   *models.RawDocument
	err   error
	delay time.Duration
}

func (s *stubDecoder) Decode(path, _ string) (*models.RawDocument, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	doc := *s.doc
	doc.Source = path
	return &doc, nil
}

func newTestPipeline(dec *stubDecoder, opts ...Option) *Pipeline {
	log := &logging.MockLogger{}
	return New(dec, profile.NewRegistry(), normalize.New(log), categorize.New(nil, log), log, opts...)
}

func pagesDoc(pages ...string) *models.RawDocument {
	doc := &models.RawDocument{}
	for i, text := range pages {
		doc.Pages = append(doc.Pages, models.Page{Number: i + 1, Text: text})
	}
	return doc
}

func TestProcessMultiPageBankStatement(t *testing.T) {
	dec := &stubDecoder{doc: pagesDoc(
		`State Bank of India
Account Statement
IFS Code: SBIN0001234
1 Jan 2025 1 Jan 2025 TO TRANSFER-UPI/swiggy/food order 500.00 9,500.00
`,
		`2 Jan 2025 2 Jan 2025 BY TRANSFER SALARY JAN CREDIT 0.00 10,000.00 19,500.00
`,
	)}

	p := newTestPipeline(dec)
	res, err := p.Process(context.Background(), "sbi.pdf", "")
	require.NoError(t, err)

	assert.Equal(t, "SBI Bank", res.Bank)
	assert.Equal(t, "sbi-bank", res.ProfileID)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Transactions, 2)

	first := res.Transactions[0]
	assert.Equal(t, 1, first.Serial)
	assert.Equal(t, "2025-01-01", first.FormatDate())
	assert.True(t, first.Debit.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, "Food & Dining", first.Category)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("9500.00")))

	second := res.Transactions[1]
	assert.Equal(t, 2, second.Serial)
	assert.True(t, second.Credit.Equal(decimal.RequireFromString("10000.00")))
	assert.Equal(t, "Salary", second.Category)
}

func TestProcessBackfillsCardBalances(t *testing.T) {
	dec := &stubDecoder{doc: pagesDoc(
		`SBI Card Statement
Credit Limit: 1,00,000.00
Transaction Details
05/01/2025 SWIGGY BANGALORE 450.00 Dr
06/01/2025 PAYMENT RECEIVED 2,000.00 Cr
`,
	)}

	p := newTestPipeline(dec)
	res, err := p.Process(context.Background(), "card.pdf", "")
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)

	// Card statements print no running balance; one is computed from zero.
	assert.True(t, res.Transactions[0].HasBalance)
	assert.True(t, res.Transactions[0].Balance.Equal(decimal.RequireFromString("-450.00")))
	assert.True(t, res.Transactions[1].Balance.Equal(decimal.RequireFromString("1550.00")))
}

func TestProcessWrongPassword(t *testing.T) {
	dec := &stubDecoder{err: &pipeerror.DecryptionError{Source: "locked.pdf"}}

	p := newTestPipeline(dec)
	_, err := p.Process(context.Background(), "locked.pdf", "nope")
	require.Error(t, err)

	var decErr *pipeerror.DecryptionError
	assert.ErrorAs(t, err, &decErr)
}

func TestProcessUnknownBank(t *testing.T) {
	dec := &stubDecoder{doc: pagesDoc("Some Neo Bank\nWelcome to your monthly summary\n")}

	p := newTestPipeline(dec)
	_, err := p.Process(context.Background(), "mystery.pdf", "")
	require.Error(t, err)

	var unsupported *pipeerror.UnsupportedBankError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "mystery.pdf", unsupported.Source)
}

func TestProcessTimeout(t *testing.T) {
	dec := &stubDecoder{doc: pagesDoc("x"), delay: 300 * time.Millisecond}

	p := newTestPipeline(dec, WithTimeout(20*time.Millisecond))
	_, err := p.Process(context.Background(), "slow.pdf", "")
	require.Error(t, err)

	var timeout *pipeerror.TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, "slow.pdf", timeout.Source)
	assert.Greater(t, timeout.Elapsed, time.Duration(0))
}

func TestProcessDetectedButUnreadableLayout(t *testing.T) {
	// Markers match a bank, but no page carries transaction rows.
	dec := &stubDecoder{doc: pagesDoc(
		"SBI Card Statement\nCredit Limit: 50,000.00\nStmt No: 42\n",
	)}

	p := newTestPipeline(dec)
	_, err := p.Process(context.Background(), "empty.pdf", "")
	require.Error(t, err)

	var extErr *pipeerror.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "sbi-card", extErr.ProfileID)
}
