package encoder

import (
	"bytes"

	"github.com/futig/report-backend/internal/entity"
	"github.com/xuri/excelize/v2"
)

const (
	spreadsheetFormat = "spreadsheet"
	sheetName         = "Report"
	defaultSheetName  = "Sheet1"
)

// SpreadsheetEncoder writes a single sheet workbook. Every cell, numeric
// columns included, is stored as a string cell.
type SpreadsheetEncoder[T any] struct {
	schema entity.Schema[T]
}

func NewSpreadsheetEncoder[T any](schema entity.Schema[T]) *SpreadsheetEncoder[T] {
	return &SpreadsheetEncoder[T]{schema: schema}
}

func (e *SpreadsheetEncoder[T]) Format() string {
	return spreadsheetFormat
}

// Generate builds a fresh workbook per call; workbooks are never shared.
func (e *SpreadsheetEncoder[T]) Generate(records []T) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
		return nil, entity.NewGenerationError(entity.StageWriteHeader, err)
	}

	if err := writeCells(f, 1, e.schema.Header()); err != nil {
		return nil, entity.NewGenerationError(entity.StageWriteHeader, err)
	}

	for i, rec := range records {
		if err := writeCells(f, i+2, e.schema.Row(rec)); err != nil {
			return nil, entity.NewGenerationError(entity.StageWriteData, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, entity.NewGenerationError(entity.StageFinalize, err)
	}
	return buf.Bytes(), nil
}

// writeCells stores values as string cells of the 1-based row.
func writeCells(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
