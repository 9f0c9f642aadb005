package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tealeg/xlsx"
	apperrors "voxscribe/internal/app/errors"
	"voxscribe/internal/app/model"
)

// ExcelFileName is the download name of a history spreadsheet.
const ExcelFileName = "transcriptions.xlsx"

// ExcelMIMEType is the content type of a history spreadsheet.
const ExcelMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var excelHeader = []string{
	"ID",
	"Source Name",
	"Created At",
	"Status",
	"Duration (s)",
	"Confidence",
	"Transcription",
}

// HistoryToExcel writes entries as a single-sheet workbook to w.
func HistoryToExcel(entries []model.HistoryEntry, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range excelHeader {
		headerRow.AddCell().Value = title
	}

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().Value = e.ID
		row.AddCell().Value = e.SourceName
		row.AddCell().Value = e.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = string(e.Status)
		row.AddCell().Value = fmt.Sprint(e.Duration)
		row.AddCell().Value = fmt.Sprintf("%.2f", e.Confidence)
		row.AddCell().Value = e.Text
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveExcel writes the workbook to path.
func SaveExcel(entries []model.HistoryEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &apperrors.ExportError{FileName: path, Err: err}
	}
	if err := HistoryToExcel(entries, f); err != nil {
		f.Close()
		return &apperrors.ExportError{FileName: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &apperrors.ExportError{FileName: path, Err: err}
	}
	return nil
}
