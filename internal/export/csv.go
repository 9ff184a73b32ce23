// Package export writes categorized ledgers to XLSX workbooks and CSV
// files.
package export

import (
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"bankstmt/pdf2ledger/internal/fileutils"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
)

// csvRow is the flat CSV projection of a transaction. Amounts print
// with two decimals; empty debit/credit cells stay empty rather than
// printing zeros.
type csvRow struct {
	Serial      int    `csv:"S.No."`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Debit       string `csv:"Debit"`
	Credit      string `csv:"Credit"`
	Balance     string `csv:"Running Balance"`
	Category    string `csv:"Ledger"`
}

type CSVWriter struct {
	log       logging.Logger
	delimiter rune
}

func NewCSVWriter(log logging.Logger, delimiter rune) *CSVWriter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVWriter{log: log, delimiter: delimiter}
}

// Write saves the transactions of one statement to path.
func (w *CSVWriter) Write(path string, txns []models.Transaction) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.log.WithError(err).Warn("failed to close export file",
				logging.Field{Key: logging.FieldOutputFile, Value: path})
		}
	}()

	rows := make([]csvRow, 0, len(txns))
	for _, t := range txns {
		row := csvRow{
			Serial:      t.Serial,
			Date:        t.FormatDate(),
			Description: t.Description,
			Category:    t.Category,
		}
		if t.IsDebit() {
			row.Debit = t.Debit.StringFixed(2)
		}
		if t.IsCredit() {
			row.Credit = t.Credit.StringFixed(2)
		}
		if t.HasBalance {
			row.Balance = t.Balance.StringFixed(2)
		}
		rows = append(rows, row)
	}

	writer := csv.NewWriter(file)
	writer.Comma = w.delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	w.log.Info("wrote csv export",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}
