package parser

import (
	"errors"

	"github.com/conneroisu/murmur/internal/ast"
)

// parseExpr parses one full expression: a primary alternative followed by
// an optional operator suffix. Operators are flat and right-leaning, so the
// right-hand side of a matched operator is itself a full expr.
func (p *Parser) parseExpr() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.skipInlineSpace()
	if op, ok := p.tryOperator(); ok {
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Op{Lhs: e, Operator: op, Rhs: rhs}, nil
	}
	return e, nil
}

// parsePrimary tries each primary alternative in grammar order, stopping at
// the first one that starts (matches or fails hard) at the current
// position.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	alternatives := []func() (ast.Expr, error){
		p.tryIdentLed,
		p.tryText,
		p.tryWriteIO,
		p.tryScope,
		p.tryConditional,
		p.tryVectorOrParam,
	}
	for _, try := range alternatives {
		e, err := try()
		if errors.Is(err, errNoMatch) {
			continue
		}
		return e, err
	}
	return nil, errNoMatch
}

// tryOperator consumes one of =, *, +, - plus any trailing inline space.
func (p *Parser) tryOperator() (ast.Operator, bool) {
	var op ast.Operator
	switch p.current() {
	case '=':
		op = ast.OpEqu
	case '*':
		op = ast.OpMul
	case '+':
		op = ast.OpAdd
	case '-':
		op = ast.OpSub
	default:
		return 0, false
	}
	p.advance()
	p.skipInlineSpace()
	return op, true
}

// tryIdentLed parses the two identifier-led productions: a function
// definition (IDENT ¤ expr) or a function call (IDENT expr*). Both share
// the same identifier prefix, so there is nothing to backtrack between
// them.
func (p *Parser) tryIdentLed() (ast.Expr, error) {
	name, ok := p.scanIdent()
	if !ok {
		return nil, errNoMatch
	}
	p.skipInlineSpace()
	if p.current() == '¤' {
		p.advance()
		p.skipInlineSpace()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Definition{Name: name, Body: body}, nil
	}

	var args []ast.Expr
	for {
		save := p.mark()
		arg, err := p.parseCallArg()
		if errors.Is(err, errNoMatch) {
			p.reset(save)
			break
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &ast.Call{Name: name, Args: args}, nil
}

// parseCallArg parses one call argument: an argument primary (see
// parseArgPrimary) followed by an optional operator suffix, mirroring
// parseExpr's shape but parsing bare vector components one at a time so
// that e.g. "ö . .:" yields two arguments instead of one collapsed Vector.
func (p *Parser) parseCallArg() (ast.Expr, error) {
	e, err := p.parseArgPrimary()
	if err != nil {
		return nil, err
	}
	p.skipInlineSpace()
	if op, ok := p.tryOperator(); ok {
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Op{Lhs: e, Operator: op, Rhs: rhs}, nil
	}
	return e, nil
}

// parseArgPrimary is parsePrimary's argument-position counterpart: every
// alternative is shared except the vector/param case, which parses a
// single component (trySingleComponent) instead of greedily absorbing a
// whole whitespace-separated run (tryVectorOrParam).
func (p *Parser) parseArgPrimary() (ast.Expr, error) {
	alternatives := []func() (ast.Expr, error){
		p.tryIdentLed,
		p.tryText,
		p.tryWriteIO,
		p.tryScope,
		p.tryConditional,
		p.trySingleComponent,
	}
	for _, try := range alternatives {
		e, err := try()
		if errors.Is(err, errNoMatch) {
			continue
		}
		return e, err
	}
	return nil, errNoMatch
}

// tryWriteIO parses `@ << expr`.
func (p *Parser) tryWriteIO() (ast.Expr, error) {
	if p.current() != '@' {
		return nil, errNoMatch
	}
	save := p.mark()
	p.advance()
	p.skipInlineSpace()
	if !p.consumeLiteral("<<") {
		p.reset(save)
		return nil, errNoMatch
	}
	p.skipInlineSpace()
	src, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.WriteIO{Src: src}, nil
}

// tryScope parses `{ expr TERMINATOR`, where TERMINATOR is a literal `)`
// (consumed), a peeked newline (not consumed), or end of input.
func (p *Parser) tryScope() (ast.Expr, error) {
	if p.current() != '{' {
		return nil, errNoMatch
	}
	p.advance()
	p.skipInlineSpace()
	child, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipInlineSpace()
	switch {
	case p.current() == ')':
		p.advance()
		p.skipInlineSpace()
	case p.current() == '\r' || p.current() == '\n' || p.atEnd():
		// terminator is peeked, not consumed
	default:
		return nil, p.errorf("expected ')' or end of line to close scope")
	}
	return &ast.Scope{Child: child}, nil
}

// tryConditional parses `IF_PHRASE expr expr (ELSE_PHRASE expr)?`.
func (p *Parser) tryConditional() (ast.Expr, error) {
	matched, err := p.tryPhrase(p.ifs)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, errNoMatch
	}
	condition, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	success, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var failure ast.Expr
	save := p.mark()
	matchedElse, err := p.tryPhrase(p.elses)
	if err != nil {
		return nil, err
	}
	if matchedElse {
		failure, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	} else {
		p.reset(save)
	}
	return &ast.Conditional{Condition: condition, Success: success, Failure: failure}, nil
}
