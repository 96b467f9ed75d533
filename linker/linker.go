package linker

import (
	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/peephole"
)

// Link assembles pm into the final byte sequence for entry under ctx,
// following the four-step framing algorithm exactly.
func Link[W codegen.Width](pm *codegen.ProcedureMap[W], entry string, ctx Context[W]) ([]W, error) {
	var out []W

	if !ctx.FoldProcedures {
		for _, name := range pm.Names() {
			if name == entry {
				continue
			}
			body, _ := pm.Get(name)
			out = append(out, ctx.ProcedureHeadingByte)
			out = append(out, W(name[0]))
			out = append(out, body...)
			if ctx.ProcEndByte {
				out = append(out, ctx.EndByte)
			}
			out = append(out, ctx.ProcedureClosingByte)
		}
	}

	body, hasEntry := pm.Get(entry)
	if hasEntry {
		out = append(out, body...)
	} else if !ctx.Compile {
		return nil, &Error{Kind: ErrMissingStart, Message: "entry procedure " + entry + " not found"}
	}

	if ctx.UseEndByte {
		out = append(out, ctx.EndByte)
	}

	return out, nil
}

// OptimizedLink seeds peephole with entry, prunes pm, then links with
// the same context.
func OptimizedLink[W codegen.Width](pm *codegen.ProcedureMap[W], used map[string]bool, entry string, ctx Context[W]) ([]W, []string, error) {
	removed := peephole.Prune(pm, used, entry)
	out, err := Link(pm, entry, ctx)
	return out, removed, err
}
