package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conneroisu/murmur/internal/ast"
	"github.com/conneroisu/murmur/internal/value"
	"github.com/conneroisu/murmur/pkg/parser"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Expr {
	t.Helper()
	exprs, err := parser.New(src).Parse()
	require.NoError(t, err, "parsing %q", src)
	return exprs
}

func mustEval(t *testing.T, src string, opts ...Option) value.Value {
	t.Helper()
	exprs := mustParse(t, src)
	result, err := New(opts...).Eval(exprs)
	require.NoError(t, err, "evaluating %q", src)
	return result
}

// §8.3 literal end-to-end scenarios.

func TestEqualityScenarios(t *testing.T) {
	require.Equal(t, value.Boolean(true), mustEval(t, ". = ."))
	require.Equal(t, value.Boolean(false), mustEval(t, ". = :"))
	require.Equal(t, value.Boolean(true), mustEval(t, ". : = . :"))
	require.Equal(t, value.Boolean(false), mustEval(t, ". : = ."))
}

func TestAdditionScenarios(t *testing.T) {
	require.Equal(t, value.Vector{2}, mustEval(t, ". + ."))
	require.Equal(t, value.Vector{3}, mustEval(t, ". + :"))
	require.Equal(t, value.Vector{4}, mustEval(t, ": + :"))
}

func TestFunctionEqualityByBody(t *testing.T) {
	result := mustEval(t, `{ö ¤ \. + \:) = {ä ¤ \. + \:)`)
	require.Equal(t, value.Boolean(true), result)
}

func TestEndToEndProgram(t *testing.T) {
	// ö . .: calls ö with params vectorizing to [1] and [3]; ö's body is
	// ({\.+\:}) * (\.+.:::), and * is the Sub/Mul placeholder (returns
	// its lhs), so ö . .: evaluates to Vector{4}. The condition compares
	// that against the 12-colon literal (value 24), which is false, so
	// the otherwise branch fires.
	var out bytes.Buffer
	src := `ö ¤ {\. + \:) * \. + .:::
given that :::::::::::: = {ö . .:) @ << /true otherwise @ << /false`
	exprs := mustParse(t, src)
	_, err := New(WithWriter(&out)).Eval(exprs)
	require.NoError(t, err)
	require.Equal(t, "false\n", out.String())
}

// §8.2 evaluator laws.

func TestEqualityIsVariantExact(t *testing.T) {
	require.False(t, value.Text("1").Equals(value.Vector{1}))
	require.False(t, value.Empty{}.Equals(value.Boolean(false)))
	require.True(t, value.Text("a").Equals(value.Text("a")))
}

func TestTruthinessOfTextOkVariants(t *testing.T) {
	e := New()
	okTrue, err := e.truthy(value.Text("Ok"))
	require.NoError(t, err)
	require.True(t, okTrue)

	ookTrue, err := e.truthy(value.Text("OOk"))
	require.NoError(t, err)
	require.True(t, ookTrue)

	emptyTrue, err := e.truthy(value.Text(""))
	require.NoError(t, err)
	require.True(t, emptyTrue)

	noTrue, err := e.truthy(value.Text("no"))
	require.NoError(t, err)
	require.False(t, noTrue)
}

func TestVectorPlusEmptyIsIdentity(t *testing.T) {
	e := New()
	result, err := e.add(value.Vector{1, 2, 3}, value.Empty{})
	require.NoError(t, err)
	require.Equal(t, value.Vector{1, 2, 3}, result)

	result, err = e.add(value.Empty{}, value.Text("x"))
	require.NoError(t, err)
	require.Equal(t, value.Text("x"), result)
}

func TestBooleanAddIsXOR(t *testing.T) {
	e := New()
	cases := []struct {
		a, b, want bool
	}{
		{true, true, false},
		{true, false, true},
		{false, true, true},
		{false, false, false},
	}
	for _, c := range cases {
		result, err := e.add(value.Boolean(c.a), value.Boolean(c.b))
		require.NoError(t, err)
		require.Equal(t, value.Boolean(c.want), result)
	}
}

// §8.4 additional coverage.

func TestParameterStackFlattensAcrossCalls(t *testing.T) {
	// τ reads \: (index 2) with zero parameters of its own, so resolution
	// must fall through to σ's two-argument frame instead.
	src := `τ ¤ \:
σ ¤ {τ)
σ . .:`
	result := mustEval(t, src)
	require.Equal(t, value.Vector{3}, result)
}

func TestSubAndMulPlaceholdersReturnLhs(t *testing.T) {
	result := mustEval(t, ". - :")
	require.Equal(t, value.Vector{1}, result)

	result = mustEval(t, ": * .")
	require.Equal(t, value.Vector{2}, result)
}

func TestGraphemeAwareReversal(t *testing.T) {
	// "e" followed by a combining acute accent (U+0301) is one grapheme
	// cluster; a naive rune reversal would separate the base letter from
	// its mark.
	combining := "ébc"
	reversed := reverseGraphemes(combining)
	require.Equal(t, "cb"+"é", reversed)
}

func TestSignatureBasedFunctionEquality(t *testing.T) {
	identicalA := mustEval(t, `ö ¤ \. + \:`)
	identicalB := mustEval(t, `ä ¤ \. + \:`)
	require.True(t, identicalA.Equals(identicalB))

	different := mustEval(t, `ü ¤ \. + .:`)
	require.False(t, identicalA.Equals(different))

	// Outer binding names (ξ vs ζ) never enter the Function's signature
	// (only the body does), so identical inner structure still compares
	// equal across differently-named outer definitions.
	nestedA := mustEval(t, `ξ ¤ {υ ¤ \. + \:)`)
	nestedB := mustEval(t, `ζ ¤ {υ ¤ \. + \:)`)
	require.True(t, nestedA.Equals(nestedB))
}

func TestDeterministicPermutationWithSeed(t *testing.T) {
	src := `{. = .) + . : .: :: .::`
	a := mustEval(t, src, WithSeed(42))
	b := mustEval(t, src, WithSeed(42))
	require.Equal(t, a, b)
}

func TestReadIOYieldsLine(t *testing.T) {
	r := strings.NewReader("hello\n")
	e := New(WithReader(r))
	result, err := e.evalReadIO()
	require.NoError(t, err)
	require.Equal(t, value.Text("hello"), result)
}

func TestReadIOWithoutSourceYieldsEmpty(t *testing.T) {
	e := New()
	result, err := e.evalReadIO()
	require.NoError(t, err)
	require.Equal(t, value.Empty{}, result)
}

func TestUndefinedFunctionIsAnError(t *testing.T) {
	exprs := mustParse(t, "ψ .")
	_, err := New().Eval(exprs)
	require.Error(t, err)
}

func TestUnboundParameterIsAnError(t *testing.T) {
	exprs := mustParse(t, `\.`)
	_, err := New().Eval(exprs)
	require.Error(t, err)
}
