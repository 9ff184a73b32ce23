// Package extract turns decoded statement pages into raw transaction
// lines. One extractor exists per supported statement layout; the set is
// closed and selected through the factory by profile extractor key.
package extract

import (
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/pipeerror"
)

// Extractor reads statement rows out of a decoded document. It performs
// no date or amount parsing; every field on the returned lines is the
// original text token.
//
// Extract returns an ExtractionError when no page yields the expected
// row structure. It never silently returns an empty result.
type Extractor interface {
	ID() string
	Extract(doc *models.RawDocument) ([]models.RawTransactionLine, error)
}

// finish enforces the no-silent-empty contract shared by all variants.
func finish(id string, lines []models.RawTransactionLine) ([]models.RawTransactionLine, error) {
	if len(lines) == 0 {
		return nil, &pipeerror.ExtractionError{ProfileID: id, Reason: "layout mismatch"}
	}
	return lines, nil
}
