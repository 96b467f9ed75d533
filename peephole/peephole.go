// Package peephole implements a dead-procedure eliminator: given a
// procedure map and the set of names folding touched during codegen, it
// keeps the entry procedure and every folded name and deletes the rest,
// reporting what it removed, the way a cross-reference pass finds
// unreferenced symbols. It does not walk jmp or other branch targets.
package peephole

import "github.com/kdgonz7/vasm/codegen"

// Prune removes every procedure from pm whose name is neither entry nor
// present in used (the fold-time "marked used" set a codegen.Generator
// accumulates). It mutates pm in place and returns the removed names in
// iteration order, for an optional removed-procedures report.
func Prune[W codegen.Width](pm *codegen.ProcedureMap[W], used map[string]bool, entry string) []string {
	reachable := make(map[string]bool, len(used)+1)
	for name := range used {
		reachable[name] = true
	}
	reachable[entry] = true

	var removed []string
	for _, name := range pm.Names() {
		if !reachable[name] {
			removed = append(removed, name)
		}
	}
	for _, name := range removed {
		pm.Delete(name)
	}
	return removed
}
