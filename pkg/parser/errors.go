package parser

import "fmt"

// ParseError is a position-tagged parse failure. The grammar (§7) halts
// parsing at the first error rather than collecting and recovering from
// several, so a parse ever produces at most one of these.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
