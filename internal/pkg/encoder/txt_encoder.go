package encoder

import (
	"strings"

	"github.com/futig/report-backend/internal/entity"
)

const (
	txtSeparator = ";"
	txtLineEnd   = "\n"
)

// TXTEncoder joins values with a semicolon, one line per record.
type TXTEncoder[T any] struct {
	schema entity.Schema[T]
}

func NewTXTEncoder[T any](schema entity.Schema[T]) *TXTEncoder[T] {
	return &TXTEncoder[T]{schema: schema}
}

func (e *TXTEncoder[T]) Format() string {
	return ExtensionTXT
}

func (e *TXTEncoder[T]) Generate(records []T) ([]byte, error) {
	var sb strings.Builder

	writeLine(&sb, e.schema.Header())
	for _, rec := range records {
		writeLine(&sb, e.schema.Row(rec))
	}

	return []byte(sb.String()), nil
}

func writeLine(sb *strings.Builder, values []string) {
	sb.WriteString(strings.Join(values, txtSeparator))
	sb.WriteString(txtLineEnd)
}
