package eval

import (
	"fmt"
	"unicode/utf8"

	"github.com/conneroisu/murmur/internal/value"
)

// vectorize is the total coercion from any Value to Vector contents.
// Function is the only variant requiring evaluation, so the coercion can
// fail even though the source models it as total; failures surface the
// underlying evaluation error.
func (e *Evaluator) vectorize(v value.Value) (value.Vector, error) {
	switch vv := v.(type) {
	case value.Vector:
		return vv, nil
	case value.Boolean:
		if vv {
			return value.Vector{42}, nil
		}
		return value.Vector{7}, nil
	case value.Empty:
		return value.Vector{0}, nil
	case value.Text:
		return value.Vector{int64(utf8.RuneCountInString(string(vv)))}, nil
	case value.Function:
		res, err := e.evalExpr(vv.Body)
		if err != nil {
			return nil, err
		}
		return e.vectorize(res)
	default:
		return nil, fmt.Errorf("cannot vectorize value of type %s", v.Type())
	}
}
