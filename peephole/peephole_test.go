package peephole_test

import (
	"testing"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/parser"
	"github.com/kdgonz7/vasm/peephole"
	"github.com/kdgonz7/vasm/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Root {
	t.Helper()
	lex := token.NewLexer(src, 127, true)
	tokens := lex.Tokenize()
	require.Empty(t, lex.Errors())
	root, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)
	return root
}

func TestPruneRemovesUnreachableProcedure(t *testing.T) {
	// Concrete scenario 6: "a: one 0x0A; b: one 0x0A; _start: a;" with
	// peephole seeded on "_start" leaves "b" absent, "a" and "_start"
	// present. No target registers "one", so "mov" stands in for it here.
	root := mustParse(t, "a: mov R1, 0x0a\nb: mov R1, 0x0a\n_start: a\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	require.NoError(t, gen.Generate(root))
	require.Equal(t, 3, gen.Procedures.Len())

	removed := peephole.Prune(gen.Procedures, gen.Used, "_start")
	assert.Equal(t, []string{"b"}, removed)

	_, hasA := gen.Procedures.Get("a")
	_, hasStart := gen.Procedures.Get("_start")
	_, hasB := gen.Procedures.Get("b")
	assert.True(t, hasA)
	assert.True(t, hasStart)
	assert.False(t, hasB)
}

func TestPruneKeepsEntryEvenIfUnused(t *testing.T) {
	root := mustParse(t, "_start: echo 'A'\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	require.NoError(t, gen.Generate(root))

	removed := peephole.Prune(gen.Procedures, gen.Used, "_start")
	assert.Empty(t, removed)
}
