// Package pipeline drives a statement from PDF to categorized ledger:
// decode, detect the bank, extract raw lines, normalize, categorize,
// settle balances and assign serial numbers. Each statement either
// yields a complete Result or a typed error; there is no partial output.
package pipeline

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"bankstmt/pdf2ledger/internal/categorize"
	"bankstmt/pdf2ledger/internal/extract"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/normalize"
	"bankstmt/pdf2ledger/internal/pdfdecode"
	"bankstmt/pdf2ledger/internal/pipeerror"
	"bankstmt/pdf2ledger/internal/profile"
)

// Result is the complete outcome for one statement.
type Result struct {
	Source       string
	Bank         string
	ProfileID    string
	Transactions []models.Transaction
	Warnings     []models.Warning
}

type Pipeline struct {
	decoder     pdfdecode.Decoder
	registry    *profile.Registry
	normalizer  *normalize.Normalizer
	categorizer *categorize.Categorizer
	suggester   categorize.Suggester
	log         logging.Logger

	timeout     time.Duration
	detectPages int
}

type Option func(*Pipeline)

// WithTimeout bounds each Process call. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithSuggester adds an AI fallback for uncategorized narrations.
func WithSuggester(s categorize.Suggester) Option {
	return func(p *Pipeline) { p.suggester = s }
}

// WithDetectionPages overrides how many leading pages detection scans.
func WithDetectionPages(n int) Option {
	return func(p *Pipeline) { p.detectPages = n }
}

func New(dec pdfdecode.Decoder, reg *profile.Registry, norm *normalize.Normalizer,
	cat *categorize.Categorizer, log logging.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		decoder:     dec,
		registry:    reg,
		normalizer:  norm,
		categorizer: cat,
		log:         log,
		detectPages: profile.DefaultDetectionPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the whole pipeline for one statement file. On timeout it
// returns a TimeoutError and discards whatever stage was in flight.
func (p *Pipeline) Process(ctx context.Context, path, password string) (*Result, error) {
	start := time.Now()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := p.run(ctx, path, password)
		done <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		p.log.Warn("statement processing timed out",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start)})
		return nil, &pipeerror.TimeoutError{Source: path, Elapsed: time.Since(start)}
	case o := <-done:
		if o.err == nil {
			p.log.Info("statement processed",
				logging.Field{Key: logging.FieldFile, Value: path},
				logging.Field{Key: logging.FieldBank, Value: o.res.Bank},
				logging.Field{Key: logging.FieldCount, Value: len(o.res.Transactions)},
				logging.Field{Key: logging.FieldWarnings, Value: len(o.res.Warnings)},
				logging.Field{Key: logging.FieldDuration, Value: time.Since(start)})
		}
		return o.res, o.err
	}
}

func (p *Pipeline) run(ctx context.Context, path, password string) (*Result, error) {
	doc, err := p.decoder.Decode(path, password)
	if err != nil {
		return nil, err
	}

	det := p.registry.Detect(doc, p.detectPages)
	if det.Profile == nil {
		return nil, &pipeerror.UnsupportedBankError{Source: path, Candidates: det.Candidates()}
	}
	p.log.Debug("bank detected",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldProfile, Value: det.Profile.ID})

	ex, err := extract.New(det.Profile.Extractor)
	if err != nil {
		return nil, err
	}
	lines, err := ex.Extract(doc)
	if err != nil {
		return nil, err
	}

	txns, warnings := p.normalizer.Normalize(det.Profile.ID, lines)
	if len(txns) == 0 {
		return nil, &pipeerror.ExtractionError{
			ProfileID: det.Profile.ID,
			Reason:    "no rows survived normalization",
		}
	}

	p.categorizer.ApplyWithSuggester(ctx, txns, p.suggester)
	backfillBalances(txns)

	for i := range txns {
		txns[i].Serial = i + 1
	}

	return &Result{
		Source:       path,
		Bank:         det.Profile.Label,
		ProfileID:    det.Profile.ID,
		Transactions: txns,
		Warnings:     warnings,
	}, nil
}

// backfillBalances computes a running balance when the statement printed
// none at all, starting from zero. Statements that print any balance
// keep exactly what they printed.
func backfillBalances(txns []models.Transaction) {
	for _, t := range txns {
		if t.HasBalance {
			return
		}
	}

	running := decimal.Zero
	for i := range txns {
		running = running.Sub(txns[i].Debit).Add(txns[i].Credit)
		txns[i].Balance = running
		txns[i].HasBalance = true
	}
}
