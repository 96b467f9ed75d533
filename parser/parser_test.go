package parser_test

import (
	"testing"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/parser"
	"github.com/kdgonz7/vasm/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.Root, error) {
	t.Helper()
	lex := token.NewLexer(src, 127, true)
	tokens := lex.Tokenize()
	require.Empty(t, lex.Errors())
	return parser.NewParser(tokens).Parse()
}

func TestParseProcedureWithInstructions(t *testing.T) {
	root, err := parse(t, "_start: echo 'A'; echo 'B'\n")
	require.NoError(t, err)

	// Root.Children contains only Procedure | Macro | Aside.
	require.Len(t, root.Children, 1)
	proc, ok := root.Children[0].(ast.Procedure)
	require.True(t, ok)
	assert.Equal(t, "_start", proc.Header)
}

func TestParseEmptyProcedureRejected(t *testing.T) {
	_, err := parse(t, "_start:\n")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrEmptySubroutine, perr.Kind)
}

func TestParseBareIdentifierAtTopLevelFails(t *testing.T) {
	_, err := parse(t, "stray_name\n")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrExpressionIsNotSubroutine, perr.Kind)
}

func TestParseRegisterValue(t *testing.T) {
	root, err := parse(t, "_start: mov R1, 0x0a\n")
	require.NoError(t, err)
	proc := root.Children[0].(ast.Procedure)
	call := proc.Children[0]
	reg, ok := call.Parameters[0].(ast.Register)
	require.True(t, ok)
	assert.Equal(t, 1, reg.Number)
}

func TestParseRegisterMissingNumberFails(t *testing.T) {
	_, err := parse(t, "_start: mov R, 0x0a\n")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrRegisterMissingNumber, perr.Kind)
}

func TestParseNilValue(t *testing.T) {
	root, err := parse(t, "_start: mov R1, nil\n")
	require.NoError(t, err)
	proc := root.Children[0].(ast.Procedure)
	_, ok := proc.Children[0].Parameters[1].(ast.Nil)
	assert.True(t, ok)
}

func TestParseRangeValue(t *testing.T) {
	root, err := parse(t, "_start: lsl R1, {1:5}\n")
	require.NoError(t, err)
	proc := root.Children[0].(ast.Procedure)
	rng, ok := proc.Children[0].Parameters[1].(ast.Range)
	require.True(t, ok)
	assert.Equal(t, int64(1), rng.Start)
	assert.Equal(t, int64(5), rng.End)
}

func TestParseRangeStartAfterEndFails(t *testing.T) {
	_, err := parse(t, "_start: lsl R1, {5:1}\n")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrRangeStartsAfterEnd, perr.Kind)
}

func TestParseMacro(t *testing.T) {
	root, err := parse(t, "[compat openlud]\n_start: echo 'A'\n")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	macro, ok := root.Children[0].(ast.Macro)
	require.True(t, ok)
	assert.Equal(t, "compat", macro.Name)
}

func TestParseMacroNeverClosedFails(t *testing.T) {
	_, err := parse(t, "[compat openlud\n")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrMacroNeverClosed, perr.Kind)
}

func TestParseAside(t *testing.T) {
	root, err := parse(t, ":greeting 'h'\n_start: echo 'A'\n")
	require.NoError(t, err)
	aside, ok := root.Children[0].(ast.Aside)
	require.True(t, ok)
	assert.Equal(t, "greeting", aside.Name)
}

func TestParseMultipleProceduresDoNotNest(t *testing.T) {
	root, err := parse(t, "a: echo 'A'\n_start: echo 'B'\n")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	for _, child := range root.Children {
		_, isProcedure := child.(ast.Procedure)
		assert.True(t, isProcedure, "no Procedure may contain another Procedure")
	}
}
