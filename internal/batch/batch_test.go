package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/pdf2ledger/internal/categorize"
	"bankstmt/pdf2ledger/internal/export"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/normalize"
	"bankstmt/pdf2ledger/internal/pipeerror"
	"bankstmt/pdf2ledger/internal/pipeline"
	"bankstmt/pdf2ledger/internal/profile"
)

// fakeDecoder serves canned pages for any file, and a decryption error
// for files whose name says "locked".
type fakeDecoder struct{}

func (fakeDecoder) Decode(path, _ string) (*models.RawDocument, error) {
	if strings.Contains(path, "locked") {
		return nil, &pipeerror.DecryptionError{Source: path}
	}
	return &models.RawDocument{
		Source: path,
		Pages: []models.Page{{
			Number: 1,
			Text: `SBI Card Statement
Credit Limit: 50,000.00
Transaction Details
05/01/2025 SWIGGY BANGALORE 450.00 Dr
`,
		}},
	}, nil
}

func newTestRunner(format string) *Runner {
	log := &logging.MockLogger{}
	pipe := pipeline.New(fakeDecoder{}, profile.NewRegistry(), normalize.New(log),
		categorize.New(nil, log), log)
	return NewRunner(pipe, export.NewCSVWriter(log, ','), export.NewXLSXWriter(log), format, log)
}

func writePDFs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
}

func TestRunExportsEveryStatement(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writePDFs(t, inputDir, "jan.pdf", "feb.PDF", "notes.txt")

	r := newTestRunner("csv")
	summary, err := r.Run(context.Background(), inputDir, outputDir, "")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.Results, 2)

	assert.FileExists(t, filepath.Join(outputDir, "jan.csv"))
	assert.FileExists(t, filepath.Join(outputDir, "feb.csv"))
}

func TestRunContinuesPastFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writePDFs(t, inputDir, "good.pdf", "locked.pdf")

	r := newTestRunner("xlsx")
	summary, err := r.Run(context.Background(), inputDir, outputDir, "")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	assert.FileExists(t, filepath.Join(outputDir, "good.xlsx"))

	for _, fr := range summary.Results {
		if strings.Contains(fr.Source, "locked") {
			var decErr *pipeerror.DecryptionError
			assert.ErrorAs(t, fr.Err, &decErr)
		}
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	r := newTestRunner("csv")
	_, err := r.Run(context.Background(), t.TempDir(), t.TempDir(), "")
	assert.Error(t, err)
}
