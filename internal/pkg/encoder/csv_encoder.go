package encoder

import (
	"bufio"
	"bytes"
	"io"

	"github.com/futig/report-backend/internal/entity"
)

const (
	csvSeparator = ';'
	csvLineEnd   = "\n"
)

// CSVEncoder writes semicolon separated rows without quoting. Values are
// written as is, so a value holding the separator is not protected.
type CSVEncoder[T any] struct {
	schema entity.Schema[T]
}

func NewCSVEncoder[T any](schema entity.Schema[T]) *CSVEncoder[T] {
	return &CSVEncoder[T]{schema: schema}
}

func (e *CSVEncoder[T]) Format() string {
	return ExtensionCSV
}

func (e *CSVEncoder[T]) Generate(records []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encode(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *CSVEncoder[T]) encode(w io.Writer, records []T) error {
	rw := newRowWriter(w)

	if err := rw.WriteRow(e.schema.Header()); err != nil {
		return entity.NewGenerationError(entity.StageWriteHeader, err)
	}

	for _, rec := range records {
		if err := rw.WriteRow(e.schema.Row(rec)); err != nil {
			return entity.NewGenerationError(entity.StageWriteData, err)
		}
	}

	if err := rw.Flush(); err != nil {
		return entity.NewGenerationError(entity.StageFinalize, err)
	}
	return nil
}

// rowWriter is a minimal delimited writer: no quote or escape character,
// one line end per row.
type rowWriter struct {
	w *bufio.Writer
}

func newRowWriter(w io.Writer) *rowWriter {
	return &rowWriter{w: bufio.NewWriter(w)}
}

func (rw *rowWriter) WriteRow(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := rw.w.WriteByte(csvSeparator); err != nil {
				return err
			}
		}
		if _, err := rw.w.WriteString(field); err != nil {
			return err
		}
	}
	_, err := rw.w.WriteString(csvLineEnd)
	return err
}

func (rw *rowWriter) Flush() error {
	return rw.w.Flush()
}
