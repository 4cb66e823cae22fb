package parser

import (
	"errors"
	"fmt"

	"github.com/conneroisu/murmur/internal/ast"
)

// errNoMatch signals that a tentative production did not start at the
// current position; callers use errors.Is to distinguish it from a real,
// aborting parse error.
var errNoMatch = errors.New("no expression alternative matched")

// Parser holds a rune cursor over the source plus the phrase-rotation state
// required by conditional and else keywords. A Parser is single-use: build
// a fresh one per parse.
type Parser struct {
	input  []rune
	pos    int
	line   int
	column int

	ifs   *phraseRotation
	elses *phraseRotation
}

// New returns a Parser over source, ready to Parse.
func New(source string) *Parser {
	return &Parser{
		input:  []rune(source),
		line:   1,
		column: 1,
		ifs:    newPhraseRotation(IFS),
		elses:  newPhraseRotation(ELSES),
	}
}

// mark is a cursor snapshot for backtracking.
type mark struct {
	pos, line, column int
}

func (p *Parser) mark() mark {
	return mark{pos: p.pos, line: p.line, column: p.column}
}

func (p *Parser) reset(m mark) {
	p.pos, p.line, p.column = m.pos, m.line, m.column
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) current() rune {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) advance() {
	if p.atEnd() {
		return
	}
	if p.input[p.pos] == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	p.pos++
}

// peekLiteral reports whether s occurs verbatim at the current position,
// without consuming input.
func (p *Parser) peekLiteral(s string) bool {
	runes := []rune(s)
	if p.pos+len(runes) > len(p.input) {
		return false
	}
	for i, r := range runes {
		if p.input[p.pos+i] != r {
			return false
		}
	}
	return true
}

// consumeLiteral consumes s if it occurs verbatim at the current position.
func (p *Parser) consumeLiteral(s string) bool {
	if !p.peekLiteral(s) {
		return false
	}
	for range []rune(s) {
		p.advance()
	}
	return true
}

// skipInlineSpace skips spaces and tabs (never newlines) and reports how
// many runes were skipped.
func (p *Parser) skipInlineSpace() int {
	n := 0
	for p.current() == ' ' || p.current() == '\t' {
		p.advance()
		n++
	}
	return n
}

// skipAllWhitespace skips any whitespace, including newlines; used only
// between top-level expressions, where newlines carry no scope-terminating
// meaning.
func (p *Parser) skipAllWhitespace() {
	for {
		switch p.current() {
		case ' ', '\t', '\r', '\n':
			p.advance()
		default:
			return
		}
	}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Line: p.line, Column: p.column}
}

// Parse consumes the entire source as a whitespace-delimited sequence of
// expressions and returns the resulting forest, or the first parse error
// encountered. Parsing halts at that first error rather than recovering
// and continuing (§7).
func (p *Parser) Parse() ([]ast.Expr, error) {
	p.skipAllWhitespace()
	var exprs []ast.Expr
	for !p.atEnd() {
		e, err := p.parseExpr()
		if err != nil {
			if errors.Is(err, errNoMatch) {
				return nil, p.errorf("unrecognized construct")
			}
			return nil, err
		}
		exprs = append(exprs, e)
		p.skipAllWhitespace()
	}
	return exprs, nil
}
