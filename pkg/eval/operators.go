package eval

import (
	"fmt"
	"strings"

	"github.com/conneroisu/murmur/internal/ast"
	"github.com/conneroisu/murmur/internal/value"
	"github.com/rivo/uniseg"
)

// evalOp evaluates a binary Op: lhs then rhs, fully, left to right, then
// dispatches on the operator tag. This ordering is observable because of
// I/O and random-number consumption inside either operand.
func (e *Evaluator) evalOp(o *ast.Op) (value.Value, error) {
	lhs, err := e.evalExpr(o.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpr(o.Rhs)
	if err != nil {
		return nil, err
	}

	switch o.Operator {
	case ast.OpEqu:
		return value.Boolean(lhs.Equals(rhs)), nil
	case ast.OpAdd:
		return e.add(lhs, rhs)
	case ast.OpSub:
		return evalSub(lhs, rhs)
	case ast.OpMul:
		return evalMul(lhs, rhs)
	default:
		return nil, fmt.Errorf("unknown operator: %v", o.Operator)
	}
}

// evalSub is a placeholder mirroring the source this language was
// distilled from: Sub is unimplemented beyond returning lhs unchanged.
func evalSub(lhs, _ value.Value) (value.Value, error) {
	return lhs, nil
}

// evalMul is a placeholder mirroring the source this language was
// distilled from: Mul is unimplemented beyond returning lhs unchanged.
func evalMul(lhs, _ value.Value) (value.Value, error) {
	return lhs, nil
}

// add implements the full variant-pair Add dispatch table. Function and
// Empty operands are unwrapped first (on either side) since they recur
// through the same dispatch regardless of the other operand's variant.
func (e *Evaluator) add(lhs, rhs value.Value) (value.Value, error) {
	if fn, ok := lhs.(value.Function); ok {
		res, err := e.evalExpr(fn.Body)
		if err != nil {
			return nil, err
		}
		return e.add(res, rhs)
	}
	if _, ok := lhs.(value.Empty); ok {
		return rhs, nil
	}
	if fn, ok := rhs.(value.Function); ok {
		res, err := e.evalExpr(fn.Body)
		if err != nil {
			return nil, err
		}
		return e.add(lhs, res)
	}
	if _, ok := rhs.(value.Empty); ok {
		return lhs, nil
	}

	switch l := lhs.(type) {
	case value.Boolean:
		switch r := rhs.(type) {
		case value.Boolean:
			return value.Boolean(bool(l) != bool(r)), nil
		case value.Text:
			if l {
				return value.Text(reverseGraphemes(string(r))), nil
			}
			return r, nil
		case value.Vector:
			if l {
				return e.permute(r), nil
			}
			return r, nil
		}

	case value.Text:
		switch r := rhs.(type) {
		case value.Boolean:
			if !bool(r) {
				return value.Text(reverseGraphemes(string(l))), nil
			}
			return l, nil
		case value.Text:
			return value.Text(string(l) + " " + string(r)), nil
		case value.Vector:
			return value.Text(string(l) + vectorDigits(r)), nil
		}

	case value.Vector:
		switch r := rhs.(type) {
		case value.Text:
			return value.Text(vectorDigits(l) + string(r)), nil
		case value.Vector:
			return addVectors(l, r), nil
		}
	}

	return nil, fmt.Errorf("unsupported operand pair for +: %s, %s", lhs.Type(), rhs.Type())
}

// addVectors implements the elementwise Vector+Vector rule: index i
// contributes a[i]+b[i] (0 for whichever side is shorter), and the entire
// trailing run of zeros is trimmed. See DESIGN.md for why this departs from
// the source's lhs[i]+lhs[i] formula and its single-zero trim.
func addVectors(a, b value.Vector) value.Vector {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(value.Vector, n)
	for i := range n {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = av + bv
	}
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// vectorDigits concatenates each element's decimal representation with no
// separator, used by the Text+Vector and Vector+Text addition rules.
func vectorDigits(v value.Vector) string {
	var b strings.Builder
	for _, n := range v {
		fmt.Fprintf(&b, "%d", n)
	}
	return b.String()
}

// permute draws a random permutation of v using the evaluator's seedable
// random source, leaving v itself untouched.
func (e *Evaluator) permute(v value.Vector) value.Vector {
	out := make(value.Vector, len(v))
	copy(out, v)
	e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// reverseGraphemes reverses s by grapheme cluster rather than by code point
// or byte, so that combining marks stay attached to their base character.
func reverseGraphemes(s string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	var b strings.Builder
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}
