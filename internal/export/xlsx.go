package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"bankstmt/pdf2ledger/internal/fileutils"
	"bankstmt/pdf2ledger/internal/logging"
	"bankstmt/pdf2ledger/internal/models"
)

const sheetName = "Transactions"

var headers = []string{"S.No.", "Date", "Description", "Debit", "Credit", "Running Balance", "Ledger"}

var columnWidths = []float64{8, 14, 55, 15, 15, 18, 20}

type XLSXWriter struct {
	log logging.Logger
}

func NewXLSXWriter(log logging.Logger) *XLSXWriter {
	return &XLSXWriter{log: log}
}

// Write saves one statement's ledger as a styled workbook: a title and
// source line on top, the header on row 4, data from row 5.
func (w *XLSXWriter) Write(path, bank, source string, txns []models.Transaction) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.log.WithError(err).Warn("failed to close workbook",
				logging.Field{Key: logging.FieldOutputFile, Value: path})
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	}

	if err := w.writeHead(f, bank, source); err != nil {
		return err
	}
	if err := w.writeRows(f, txns); err != nil {
		return err
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	w.log.Info("wrote xlsx export",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(txns)})
	return nil
}

func (w *XLSXWriter) writeHead(f *excelize.File, bank, source string) error {
	if err := f.MergeCell(sheetName, "A1", "G1"); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "2F5496"},
	})
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	sourceStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 10, Color: "808080"},
	})
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Transaction Ledger", bank))
	f.SetCellStyle(sheetName, "A1", "G1", titleStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Source: %s", source))
	f.SetCellStyle(sheetName, "A2", "A2", sourceStyle)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", "G4", headerStyle)
	return nil
}

func (w *XLSXWriter) writeRows(f *excelize.File, txns []models.Transaction) error {
	amountFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	for i, t := range txns {
		rowNo := i + 5
		f.SetCellValue(sheetName, cell(1, rowNo), t.Serial)
		f.SetCellValue(sheetName, cell(2, rowNo), t.FormatDate())
		f.SetCellValue(sheetName, cell(3, rowNo), t.Description)
		if t.IsDebit() {
			f.SetCellValue(sheetName, cell(4, rowNo), t.Debit.InexactFloat64())
		}
		if t.IsCredit() {
			f.SetCellValue(sheetName, cell(5, rowNo), t.Credit.InexactFloat64())
		}
		if t.HasBalance {
			f.SetCellValue(sheetName, cell(6, rowNo), t.Balance.InexactFloat64())
		}
		f.SetCellValue(sheetName, cell(7, rowNo), t.Category)
		f.SetCellStyle(sheetName, cell(4, rowNo), cell(6, rowNo), amountStyle)
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
