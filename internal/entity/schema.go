package entity

// Field describes one report column: its header name and how to render
// the column value for a record.
type Field[T any] struct {
	Name  string
	Value func(T) string
}

// Schema is the ordered column list of a record type. A schema is
// declared once per record type and never modified afterwards.
type Schema[T any] []Field[T]

// Header returns the column names in schema order.
func (s Schema[T]) Header() []string {
	header := make([]string, len(s))
	for i, f := range s {
		header[i] = f.Name
	}
	return header
}

// Row renders every column of rec in schema order.
func (s Schema[T]) Row(rec T) []string {
	row := make([]string, len(s))
	for i, f := range s {
		row[i] = f.Value(rec)
	}
	return row
}
