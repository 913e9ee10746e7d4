package ledger

import "fmt"

// SchemaError reports a source whose header or row shape does not match the
// expected columns. Row is 1-based and counts the header.
type SchemaError struct {
	Row    int
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema: row %d: column %q: %s", e.Row, e.Column, e.Reason)
	}
	return fmt.Sprintf("schema: row %d: %s", e.Row, e.Reason)
}

// ParseError reports a cell that could not be parsed as a date or decimal.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
