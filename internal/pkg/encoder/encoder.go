package encoder

import (
	"sort"
	"strings"

	"github.com/futig/report-backend/internal/entity"
)

// Supported report extensions.
const (
	ExtensionCSV  = "csv"
	ExtensionTXT  = "txt"
	ExtensionXLS  = "xls"
	ExtensionXLSX = "xlsx"
)

// Encoder turns a list of records into a complete report file.
type Encoder[T any] interface {
	Generate(records []T) ([]byte, error)
	Format() string
}

// Factory maps report extensions to encoders. The table is filled once in
// NewFactory and only read afterwards, so Resolve is safe for concurrent use.
type Factory[T any] struct {
	encoders map[string]Encoder[T]
}

func NewFactory[T any](schema entity.Schema[T]) *Factory[T] {
	spreadsheet := NewSpreadsheetEncoder(schema)

	return &Factory[T]{
		encoders: map[string]Encoder[T]{
			ExtensionCSV:  NewCSVEncoder(schema),
			ExtensionTXT:  NewTXTEncoder(schema),
			ExtensionXLS:  spreadsheet,
			ExtensionXLSX: spreadsheet,
		},
	}
}

// Resolve returns the encoder registered for extension, ignoring case.
func (f *Factory[T]) Resolve(extension string) (Encoder[T], error) {
	enc, ok := f.encoders[strings.ToLower(extension)]
	if !ok {
		return nil, &entity.UnsupportedFormatError{Extension: extension}
	}
	return enc, nil
}

// Extensions lists the supported extensions in alphabetical order.
func (f *Factory[T]) Extensions() []string {
	exts := make([]string, 0, len(f.encoders))
	for ext := range f.encoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
