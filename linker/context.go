// Package linker assembles a codegen.ProcedureMap into the final byte
// sequence, with per-target framing, by walking a name-keyed
// instruction map in a fixed order to build one contiguous output
// buffer.
package linker

import "github.com/kdgonz7/vasm/codegen"

// Context holds one target's link-time framing parameters.
type Context[W codegen.Width] struct {
	FoldProcedures        bool
	ProcedureHeadingByte  W
	ProcedureClosingByte  W
	ProcEndByte           bool
	EndByte               W
	UseEndByte            bool
	Compile               bool
	VasmHeader            bool

	// StatementTerminator is MercuryPIC's documented 0xAF terminator.
	// No code path consumes it yet; it is carried here so a future
	// statement-level framing pass has somewhere to read it from
	// instead of reintroducing the field.
	StatementTerminator W
}

// OpenLUDContext: fold enabled, nul_after_sequence, end_byte = 12.
// nul_after_sequence is a Vendor flag, not a Context field; see
// codegen.NewOpenLUD.
func OpenLUDContext() Context[int8] {
	return Context[int8]{
		FoldProcedures: true,
		UseEndByte:     true,
		EndByte:        12,
	}
}

// NexFUSEContext: no folding, heading byte 10, closing byte 128, end
// byte 22.
func NexFUSEContext() Context[uint8] {
	return Context[uint8]{
		FoldProcedures:       false,
		ProcedureHeadingByte: 10,
		ProcedureClosingByte: 128,
		UseEndByte:           true,
		EndByte:              22,
	}
}

// MercuryContext: as NexFUSE but with statement terminator 0xAF.
func MercuryContext() Context[uint8] {
	ctx := NexFUSEContext()
	ctx.StatementTerminator = 0xAF
	return ctx
}

// SiAXContext, JADEContext, and SolarisVMContext cover the three
// experimental targets, whose bit-level framing is otherwise
// unmandated. Folding is left enabled and no end byte is emitted,
// matching the simplest legal reading of an unspecified framing.
func SiAXContext() Context[int32] {
	return Context[int32]{FoldProcedures: true}
}

func JADEContext() Context[uint32] {
	return Context[uint32]{FoldProcedures: true}
}

func SolarisVMContext() Context[uint32] {
	return Context[uint32]{FoldProcedures: true}
}
