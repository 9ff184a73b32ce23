// Package batch processes every statement PDF in a directory through
// the pipeline and exports each result. One bad statement never stops
// the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"bankstmt/pdf2ledger/internal/export"
	"bankstmt/pdf2ledger/internal/fileutils"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/pipeline"
)

// FileResult is the outcome for one file in a batch.
type FileResult struct {
	Source string
	Output string
	Result *pipeline.Result
	Err    error
}

// Summary aggregates a batch run.
type Summary struct {
	Processed int
	Failed    int
	Results   []FileResult
}

type Runner struct {
	pipe   *pipeline.Pipeline
	csv    *export.CSVWriter
	xlsx   *export.XLSXWriter
	log    logging.Logger
	format string // "xlsx" or "csv"
}

func NewRunner(pipe *pipeline.Pipeline, csv *export.CSVWriter, xlsx *export.XLSXWriter,
	format string, log logging.Logger) *Runner {
	if format != "csv" {
		format = "xlsx"
	}
	return &Runner{pipe: pipe, csv: csv, xlsx: xlsx, format: format, log: log}
}

// Run processes every *.pdf in inputDir and writes one export per
// statement into outputDir. The password, when given, is tried on every
// file; unencrypted files ignore it.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir, password string) (*Summary, error) {
	pdfs, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("batch: no pdf files in %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	summary := &Summary{}
	for _, src := range pdfs {
		fr := r.processOne(ctx, src, outputDir, password)
		if fr.Err != nil {
			summary.Failed++
			r.log.WithError(fr.Err).Error("statement failed",
				logging.Field{Key: logging.FieldFile, Value: src})
		} else {
			summary.Processed++
		}
		summary.Results = append(summary.Results, fr)
	}

	r.log.Info("batch finished",
		logging.Field{Key: logging.FieldCount, Value: summary.Processed},
		logging.Field{Key: "failed", Value: summary.Failed})
	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, src, outputDir, password string) FileResult {
	fr := FileResult{Source: src}

	res, err := r.pipe.Process(ctx, src, password)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Result = res

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	fr.Output = filepath.Join(outputDir, base+"."+r.format)

	if r.format == "csv" {
		fr.Err = r.csv.Write(fr.Output, res.Transactions)
	} else {
		fr.Err = r.xlsx.Write(fr.Output, res.Bank, res.Source, res.Transactions)
	}
	return fr
}
