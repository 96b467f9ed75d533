package linker_test

import (
	"testing"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/linker"
	"github.com/kdgonz7/vasm/options"
	"github.com/kdgonz7/vasm/parser"
	"github.com/kdgonz7/vasm/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Root {
	t.Helper()
	lex := token.NewLexer(src, 2147483647, false)
	tokens := lex.Tokenize()
	require.Empty(t, lex.Errors())
	root, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)
	return root
}

// Scenario 1: _start: echo 'A' / openlud -> [40, 65, 0, 12]
func TestScenarioOpenLUDEcho(t *testing.T) {
	root := mustParse(t, "_start: echo 'A'\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	require.NoError(t, gen.Generate(root))

	out, err := linker.Link(gen.Procedures, "_start", linker.OpenLUDContext())
	require.NoError(t, err)
	assert.Equal(t, []int8{40, 65, 0, 12}, out)
}

// Scenario 2: _start: echo 'A' / nexfuse -> [40, 65, 0, 22]
func TestScenarioNexFUSEEcho(t *testing.T) {
	root := mustParse(t, "_start: echo 'A'\n")
	gen := codegen.NewGenerator(codegen.NewNexFUSE())
	require.NoError(t, gen.Generate(root))

	out, err := linker.Link(gen.Procedures, "_start", linker.NexFUSEContext())
	require.NoError(t, err)
	assert.Equal(t, []uint8{40, 65, 0, 22}, out)
}

// Scenario 3: _start:\n echo '\n'\n echo 'B'\n / nexfuse -> [40, 10, 0, 40, 66, 0, 22]
func TestScenarioNexFUSETwoEchoes(t *testing.T) {
	root := mustParse(t, "_start:\n echo '\\n'\n echo 'B'\n")
	gen := codegen.NewGenerator(codegen.NewNexFUSE())
	require.NoError(t, gen.Generate(root))

	out, err := linker.Link(gen.Procedures, "_start", linker.NexFUSEContext())
	require.NoError(t, err)
	assert.Equal(t, []uint8{40, 10, 0, 40, 66, 0, 22}, out)
}

// Scenario 4: a: echo 'A' / nexfuse non-fold compile-only ->
// [10, 97, 40, 65, 0, 128, 22]
func TestScenarioNexFUSECompileOnlyLibrary(t *testing.T) {
	root := mustParse(t, "a: echo 'A'\n")
	gen := codegen.NewGenerator(codegen.NewNexFUSE())
	require.NoError(t, gen.Generate(root))

	ctx := linker.NexFUSEContext()
	ctx.Compile = true
	out, err := linker.Link(gen.Procedures, "_start", ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint8{10, 97, 40, 65, 0, 128, 22}, out)
}

// Scenario 5: _start: mov R1, 0x0a\n each R1 / nexfuse fold ->
// [41, 1, 10, 0, 42, 1, 0, 22]
func TestScenarioNexFUSEFoldedMovEach(t *testing.T) {
	root := mustParse(t, "_start: mov R1, 0x0a\n each R1\n")
	gen := codegen.NewGenerator(codegen.NewNexFUSE())
	require.NoError(t, gen.Generate(root))

	ctx := linker.NexFUSEContext()
	ctx.FoldProcedures = true
	out, err := linker.Link(gen.Procedures, "_start", ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint8{41, 1, 10, 0, 42, 1, 0, 22}, out)
}

// Scenario 6: a: mov R1,0x0a; b: mov R1,0x0a; _start: a; with peephole
// seeded on "_start" -> "b" absent from map.
func TestScenarioPeepholeRemovesDeadProcedure(t *testing.T) {
	root := mustParse(t, "a: mov R1, 0x0a\nb: mov R1, 0x0a\n_start: a\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	require.NoError(t, gen.Generate(root))

	_, removed, err := linker.OptimizedLink(gen.Procedures, gen.Used, "_start", linker.OpenLUDContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, removed)

	_, hasB := gen.Procedures.Get("b")
	assert.False(t, hasB)
}

// Scenario 7: _start: one R15353135 with W=i8 -> RegisterNumberTooLarge
// at the register's span. "one" stands in for any register-taking
// opcode; "each" is used here since OpenLUD has no "one".
func TestScenarioRegisterNumberTooLarge(t *testing.T) {
	root := mustParse(t, "_start: each R15353135\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	err := gen.Generate(root)
	require.Error(t, err)

	var ierr *codegen.InstructionError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, codegen.ResultRegisterNumberTooLarge, ierr.Result.Kind)
}

func TestMissingStartFailsWhenNotCompileMode(t *testing.T) {
	root := mustParse(t, "a: echo 'A'\n")
	gen := codegen.NewGenerator(codegen.NewOpenLUD())
	require.NoError(t, gen.Generate(root))

	ctx := linker.OpenLUDContext()
	ctx.Compile = false
	_, err := linker.Link(gen.Procedures, "_start", ctx)
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, linker.ErrMissingStart, lerr.Kind)
}

func TestPersistBigEndianUint32(t *testing.T) {
	out := linker.Persist([]uint32{0x01020304}, options.BigEndian, false)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, out)
}

func TestPersistLittleEndianUint32(t *testing.T) {
	out := linker.Persist([]uint32{0x01020304}, options.LittleEndian, false)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, out)
}

func TestPersistVasmHeader(t *testing.T) {
	out := linker.Persist([]int8{40, 65}, options.LittleEndian, true)
	assert.Contains(t, string(out), "compiled using volt assembler(VASM)")
}
