package parser

import (
	"strings"

	"github.com/conneroisu/murmur/internal/ast"
)

// tryText scans a text literal. A `/` opens the token; the scanner then
// repeatedly requires a `/` (the opener, or a continuation sentinel left by
// the previous segment stopping at another `/`), optionally folds a doubled
// `/` into a literal `/` and a following space into a literal space, then
// takes a maximal run of characters that are none of `/`, space, CR, or LF.
// Scanning stops at end of input or at a space/CR/LF; stopping at `/`
// instead re-enters the loop.
func (p *Parser) tryText() (ast.Expr, error) {
	if p.current() != '/' {
		return nil, errNoMatch
	}
	var sb strings.Builder
	for {
		p.advance() // the '/'
		if p.current() == '/' {
			sb.WriteRune('/')
			p.advance()
		}
		if p.current() == ' ' {
			sb.WriteRune(' ')
			p.advance()
		}
		for !p.atEnd() {
			c := p.current()
			if c == '/' || c == ' ' || c == '\r' || c == '\n' {
				break
			}
			sb.WriteRune(c)
			p.advance()
		}
		if p.atEnd() {
			break
		}
		c := p.current()
		if c == ' ' || c == '\r' || c == '\n' {
			break
		}
		// c == '/': loop again, the next iteration's leading '/' check
		// is satisfied by the current position.
	}
	if sb.Len() == 0 {
		return nil, p.errorf("empty text literal")
	}
	p.skipInlineSpace()
	return &ast.Text{Value: sb.String()}, nil
}
