package codegen

import (
	"github.com/kdgonz7/vasm/ast"
)

// Generator walks a parsed Root and produces a ProcedureMap for one
// vendor. Used records which procedure names were inlined by folding
// during generation — the initial reachable set peephole.Prune extends
// with the seeded entry name.
type Generator[W Width] struct {
	Vendor     *Vendor[W]
	Procedures *ProcedureMap[W]
	Used       map[string]bool
}

func NewGenerator[W Width](v *Vendor[W]) *Generator[W] {
	return &Generator[W]{
		Vendor:     v,
		Procedures: NewProcedureMap[W](),
		Used:       make(map[string]bool),
	}
}

// Generate runs codegen over every Procedure in root, in order, storing
// each result in g.Procedures. Macro and Aside nodes are ignored here:
// macros are the preprocessor's concern, and asides are parsed but not
// acted on by any later stage.
func (g *Generator[W]) Generate(root *ast.Root) error {
	for _, child := range root.Children {
		proc, ok := child.(ast.Procedure)
		if !ok {
			continue
		}
		body, err := g.generateProcedure(proc)
		if err != nil {
			return err
		}
		g.Procedures.Set(proc.Header, body)
	}
	return nil
}

func (g *Generator[W]) generateProcedure(proc ast.Procedure) ([]W, error) {
	var buf []W
	for _, call := range proc.Children {
		name := call.Name.Text

		if folded, ok := g.Procedures.Get(name); ok {
			buf = append(buf, folded...)
			g.Used[name] = true
			continue
		}

		handler, ok := g.Vendor.Lookup(name)
		if !ok {
			return nil, wrapResult(InstructionDoesntExist(), proc.Header, name, call.Sp)
		}

		for _, param := range call.Parameters {
			reg, ok := param.(ast.Register)
			if !ok {
				continue
			}
			// Register numbers are 1-based; R0 is out of range the same
			// as a register past the target's MaxRegister.
			if reg.Number < 1 || int64(reg.Number) > g.Vendor.MaxRegister {
				return nil, wrapResult(RegisterTooLarge(), proc.Header, name, reg.Sp)
			}
		}

		bytes, result := handler(g, g.Vendor, call)
		if !result.OK() {
			return nil, wrapResult(result, proc.Header, name, call.Sp)
		}
		buf = append(buf, bytes...)
		if g.Vendor.NulAfterSequence {
			buf = append(buf, g.Vendor.NulByte)
		}
	}
	return buf, nil
}
