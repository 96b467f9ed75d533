package codegen

import "github.com/kdgonz7/vasm/ast"

// Handler emits the byte sequence for one instruction call against a
// vendor's opcode layout, returning the instruction's outcome alongside
// it. A non-OK Result means the returned byte slice is meaningless.
type Handler[W Width] func(g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result)

// Vendor bundles a per-target instruction table with its generation
// flags. The handler table is data (a map) rather than a type switch,
// so Hybrid can build one by set intersection.
type Vendor[W Width] struct {
	Name            string
	Handlers        map[string]Handler[W]
	NulAfterSequence bool
	NulByte         W
	MaxRegister     int64
}

func NewVendor[W Width](name string, maxRegister int64) *Vendor[W] {
	return &Vendor[W]{
		Name:        name,
		Handlers:    make(map[string]Handler[W]),
		MaxRegister: maxRegister,
	}
}

func (v *Vendor[W]) Register(name string, h Handler[W]) {
	v.Handlers[name] = h
}

func (v *Vendor[W]) Lookup(name string) (Handler[W], bool) {
	h, ok := v.Handlers[name]
	return h, ok
}
