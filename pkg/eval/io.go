package eval

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/conneroisu/murmur/internal/ast"
	"github.com/conneroisu/murmur/internal/value"
)

// evalWriteIO evaluates the operand and, if a write sink was configured,
// emits its textual form. WriteIO yields the evaluated value, so it can be
// embedded inside a larger expression rather than only used as a statement.
func (e *Evaluator) evalWriteIO(w *ast.WriteIO) (value.Value, error) {
	v, err := e.evalExpr(w.Src)
	if err != nil {
		return nil, err
	}
	if e.write != nil {
		fmt.Fprintln(e.write, v.String())
	}
	return v, nil
}

// evalReadIO reads one line from the configured read source and yields it
// as Text. Without a configured read source, or at end of input, it yields
// Empty — ReadIO's semantics are unspecified beyond existence (§9).
func (e *Evaluator) evalReadIO() (value.Value, error) {
	if e.read == nil {
		return value.Empty{}, nil
	}
	if e.reader == nil {
		e.reader = bufio.NewReader(e.read)
	}
	line, err := e.reader.ReadString('\n')
	if err != nil && line == "" {
		return value.Empty{}, nil
	}
	return value.Text(strings.TrimRight(line, "\r\n")), nil
}
