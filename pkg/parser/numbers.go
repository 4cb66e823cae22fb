package parser

import (
	"unicode"

	"github.com/conneroisu/murmur/internal/ast"
)

// scanNumber scans the punctuation-digit encoding: the literal opens with
// either '.' (base 1) or ':' (base 2), followed by zero or more ':' each
// contributing +2.
func (p *Parser) scanNumber() (uint64, bool) {
	c := p.current()
	if c != '.' && c != ':' {
		return 0, false
	}
	var n uint64 = 1
	if c == ':' {
		n = 2
	}
	p.advance()
	for p.current() == ':' {
		n += 2
		p.advance()
	}
	return n, true
}

// scanIdent scans a maximal run of non-ASCII Unicode alphanumeric code
// points.
func (p *Parser) scanIdent() (string, bool) {
	start := p.pos
	for {
		c := p.current()
		if c < 0x80 || !(unicode.IsLetter(c) || unicode.IsDigit(c)) {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return "", false
	}
	return string(p.input[start:p.pos]), true
}

// tryComponent scans one vector component: a literal Number, or a `\`
// parameter reference (`\\` denotes index 0, "all parameters").
func (p *Parser) tryComponent() (ast.VectorComponent, bool) {
	if p.current() == '.' || p.current() == ':' {
		n, _ := p.scanNumber()
		return ast.NumberComponent(n), true
	}
	if p.current() == '\\' {
		save := p.mark()
		p.advance()
		if p.current() == '\\' {
			p.advance()
			return ast.ParamComponent{Index: 0}, true
		}
		if n, ok := p.scanNumber(); ok {
			return ast.ParamComponent{Index: n}, true
		}
		p.reset(save)
	}
	return nil, false
}

// trySingleComponent parses exactly one vector component as a standalone
// primary, without absorbing any further whitespace-separated components:
// a lone Number becomes Vector([n]); a lone Param component becomes Param.
// Used for call-argument position, where each bare component is its own
// argument rather than collapsing a whitespace-separated run into one
// Vector (contrast tryVectorOrParam's greedy form, used everywhere else).
func (p *Parser) trySingleComponent() (ast.Expr, error) {
	c, ok := p.tryComponent()
	if !ok {
		return nil, errNoMatch
	}
	if pc, isParam := c.(ast.ParamComponent); isParam {
		return &ast.Param{Index: pc.Index}, nil
	}
	return &ast.Vector{Components: []ast.VectorComponent{c}}, nil
}

// tryVectorOrParam scans a whitespace-separated, non-empty run of vector
// components. A lone Param component collapses to a standalone Param
// expression; any other run (including a lone Number) becomes a Vector.
func (p *Parser) tryVectorOrParam() (ast.Expr, error) {
	first, ok := p.tryComponent()
	if !ok {
		return nil, errNoMatch
	}
	comps := []ast.VectorComponent{first}
	for {
		save := p.mark()
		if p.skipInlineSpace() == 0 {
			p.reset(save)
			break
		}
		comp, ok := p.tryComponent()
		if !ok {
			p.reset(save)
			break
		}
		comps = append(comps, comp)
	}
	p.skipInlineSpace()
	if len(comps) == 1 {
		if pc, isParam := comps[0].(ast.ParamComponent); isParam {
			return &ast.Param{Index: pc.Index}, nil
		}
	}
	return &ast.Vector{Components: comps}, nil
}
