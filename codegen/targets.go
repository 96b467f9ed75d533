package codegen

import "math"

// registerOpenLUDSet installs OpenLUD's eight base handlers: "echo mov
// each init put clear reset get".
func registerOpenLUDSet[W Width](v *Vendor[W]) {
	v.Register("echo", handleEcho[W])
	v.Register("mov", handleMov[W])
	v.Register("each", handleUnaryRegister[W](opEach, "each Rn"))
	v.Register("init", handleNullary[W](opInit))
	v.Register("put", handlePut[W])
	v.Register("clear", handleNullary[W](opClear))
	v.Register("reset", handleUnaryRegister[W](opReset, "reset Rn"))
	v.Register("get", handleGet[W])
}

// registerNexFUSEAdditions installs the ten opcodes NexFUSE adds on top
// of the OpenLUD set: "add nop lar lsl in cmp inc rep jmp zeroall".
func registerNexFUSEAdditions[W Width](v *Vendor[W]) {
	v.Register("add", handleAdd[W])
	v.Register("nop", handleNop[W])
	v.Register("lar", handleUnaryRegister[W](opLar, "lar Rn"))
	v.Register("lsl", handleLsl[W])
	v.Register("in", handleUnaryRegister[W](opIn, "in Rn"))
	v.Register("cmp", handleCmp[W])
	v.Register("inc", handleUnaryRegister[W](opInc, "inc Rn"))
	v.Register("rep", handleRep[W])
	v.Register("jmp", handleJmp[W])
	v.Register("zeroall", handleNullary[W](opClear))
}

// NewOpenLUD builds the OpenLUD vendor: width i8, folding target,
// nul_after_sequence set.
func NewOpenLUD() *Vendor[int8] {
	v := NewVendor[int8]("openlud", math.MaxInt8)
	v.NulAfterSequence = true
	v.NulByte = 0
	registerOpenLUDSet(v)
	return v
}

// NewNexFUSE builds the NexFUSE vendor: width u8, the OpenLUD set plus
// its own ten opcodes, nul_after_sequence set.
func NewNexFUSE() *Vendor[uint8] {
	v := NewVendor[uint8]("nexfuse", math.MaxUint8)
	v.NulAfterSequence = true
	v.NulByte = 0
	registerOpenLUDSet(v)
	registerNexFUSEAdditions(v)
	return v
}

// NewMercury builds the MercuryPIC vendor: same instruction set as
// NexFUSE at the codegen layer. The 0xAF statement terminator it adds
// is a linker-level framing detail, not a vendor flag.
func NewMercury() *Vendor[uint8] {
	v := NewVendor[uint8]("mercury", math.MaxUint8)
	v.NulAfterSequence = true
	v.NulByte = 0
	registerOpenLUDSet(v)
	registerNexFUSEAdditions(v)
	return v
}

// NewSiAX, NewJADE, and NewSolarisVM build the three experimental
// targets, whose bit-level framing is otherwise unmandated. This
// carries the NexFUSE instruction set forward onto wider register
// files (i32/u32) rather than inventing a fourth opcode table.
func NewSiAX() *Vendor[int32] {
	v := NewVendor[int32]("siax", math.MaxInt32)
	registerOpenLUDSet(v)
	registerNexFUSEAdditions(v)
	return v
}

func NewJADE() *Vendor[uint32] {
	v := NewVendor[uint32]("jade", math.MaxUint32)
	registerOpenLUDSet(v)
	registerNexFUSEAdditions(v)
	return v
}

func NewSolarisVM() *Vendor[uint32] {
	v := NewVendor[uint32]("solarisvm", math.MaxUint32)
	registerOpenLUDSet(v)
	registerNexFUSEAdditions(v)
	return v
}
