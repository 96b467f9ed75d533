package stylist_test

import (
	"testing"

	"github.com/kdgonz7/vasm/stylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasKind(diags []stylist.Diagnostic, kind stylist.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func TestStylistTrailingComma(t *testing.T) {
	diags := stylist.Run("_start: echo 'A',\n")
	assert.True(t, hasKind(diags, stylist.GoodPractice))
}

func TestStylistCommaWithoutSpace(t *testing.T) {
	diags := stylist.Run("_start: mov R1,0x0a\n")
	assert.True(t, hasKind(diags, stylist.NonCompliant))
}

func TestStylistLongJumpTarget(t *testing.T) {
	diags := stylist.Run("_start: jmp procedure_b\n")
	assert.True(t, hasKind(diags, stylist.GoodPractice))
}

func TestStylistShortJumpTargetIsClean(t *testing.T) {
	diags := stylist.Run("_start: jmp a\n")
	for _, d := range diags {
		assert.NotContains(t, d.Message, "jmp target")
	}
}

func TestStylistMissingFinalNewline(t *testing.T) {
	diags := stylist.Run("_start: echo 'A'")
	assert.True(t, hasKind(diags, stylist.GoodPractice))
}

func TestStylistSuppressedInsideComment(t *testing.T) {
	diags := stylist.Run("_start: mov R1,0x0a ; mov R2,0x0b\n")
	// the comma immediately after R1 precedes the comment marker and is
	// still flagged; nothing past the ';' should contribute diagnostics
	// of its own.
	for _, d := range diags {
		assert.LessOrEqual(t, d.Location.Column, len("_start: mov R1,0x0a"))
	}
}

func TestStylistIdempotent(t *testing.T) {
	src := "_start: mov R1,0x0a\njmp procedure_with_a_long_name\n"
	require.Equal(t, stylist.Run(src), stylist.Run(src))
}
