// Package pdfdecode opens statement PDFs and turns them into decoded
// documents: per-page text with one physical row per line, plus cell
// grids for pages whose rows align into columns. It interprets nothing
// beyond glyph positions.
package pdfdecode

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
	"bankstmt/pdf2ledger/internal/pipeerror"
)

// Decoder turns a statement file into a RawDocument. The password is
// ignored for unencrypted files.
type Decoder interface {
	Decode(path, password string) (*models.RawDocument, error)
}

// colGap is the horizontal whitespace, in text-space units, treated as
// a column boundary when rebuilding table cells from glyph runs.
const colGap = 12.0

// tableMinRows is how many multi-cell rows a page needs before its grid
// is exposed as a table rather than flat text.
const tableMinRows = 3

type PDFDecoder struct {
	log logging.Logger
}

func New(log logging.Logger) *PDFDecoder {
	return &PDFDecoder{log: log}
}

func (d *PDFDecoder) Decode(path, password string) (doc *models.RawDocument, err error) {
	// The PDF library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("decode %s: malformed pdf: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// The password callback is polled until it gives up by returning
	// the empty string; offer the password exactly once.
	tried := false
	reader, err := pdf.NewReaderEncrypted(f, info.Size(), func() string {
		if tried || password == "" {
			return ""
		}
		tried = true
		return password
	})
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, &pipeerror.DecryptionError{Source: path, Err: err}
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	doc = &models.RawDocument{Source: path}
	totalText := 0

	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		page := models.Page{Number: i}

		rows, err := p.GetTextByRow()
		if err != nil {
			d.log.WithError(err).Warn("page text extraction failed",
				logging.Field{Key: logging.FieldFile, Value: path},
				logging.Field{Key: logging.FieldPage, Value: i})
			doc.Pages = append(doc.Pages, page)
			continue
		}

		var lines []string
		var cells [][]string
		multiCell := 0

		for _, row := range rows {
			line, rowCells := splitRow(row)
			if line == "" {
				continue
			}
			lines = append(lines, line)
			cells = append(cells, rowCells)
			if len(rowCells) >= 4 {
				multiCell++
			}
		}

		page.Text = strings.Join(lines, "\n")
		totalText += len(page.Text)
		if multiCell >= tableMinRows {
			page.Tables = []models.Table{{Rows: cells}}
		}
		doc.Pages = append(doc.Pages, page)
	}

	if totalText == 0 {
		return nil, &pipeerror.ExtractionError{
			Reason: fmt.Sprintf("%s: no extractable text, file may be scanned or image-based", path),
		}
	}

	d.log.Debug("decoded statement",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(doc.Pages)})

	return doc, nil
}

// splitRow joins a glyph row into a text line and, in parallel, into
// cells separated by column-sized gaps.
func splitRow(row *pdf.Row) (string, []string) {
	var parts []string
	var cells []string
	var cell strings.Builder
	var prevEnd float64

	for i, word := range row.Content {
		s := strings.TrimSpace(word.S)
		if s == "" {
			continue
		}
		parts = append(parts, s)

		if i > 0 && word.X-prevEnd > colGap && cell.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		if cell.Len() > 0 {
			cell.WriteByte(' ')
		}
		cell.WriteString(s)
		prevEnd = word.X + word.W
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}

	return strings.TrimSpace(strings.Join(parts, " ")), cells
}
