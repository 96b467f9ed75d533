package codegen

import (
	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/token"
)

// Opcode bytes shared by every target that registers the corresponding
// handler, so a byte only needs naming once.
const (
	opEcho    = 40
	opMov     = 41
	opEach    = 42
	opReset   = 43
	opClear   = 44
	opPut     = 45
	opGet     = 46
	opAdd     = 47
	opLar     = 48
	opLsl     = 49
	opIn      = 50
	opCmp     = 51
	opInc     = 52
	opRep     = 53
	opInit    = 54 // no standard layout defined; assigned here as a nullary no-op marker
	opJmp     = 15
)

func param(call ast.InstructionCall, i int, name, signature string) (ast.Value, Result) {
	if i >= len(call.Parameters) {
		return nil, TooLittleParams(name, signature)
	}
	return call.Parameters[i], OKResult()
}

func asRegister(v ast.Value) (ast.Register, bool) {
	reg, ok := v.(ast.Register)
	return reg, ok
}

func asNumber(v ast.Value) (int64, bool) {
	n, ok := v.(ast.Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func asLiteralByte(v ast.Value) (byte, bool) {
	lit, ok := v.(ast.Literal)
	if !ok {
		return 0, false
	}
	return token.ToCharacter(lit.Body)
}

// numericByte resolves a value that may be either a Number or a Literal,
// used where a byte layout allows ints and chars interchangeably (lsl)
// or a plain immediate (mov, put, get).
func numericByte[W Width](v ast.Value) (W, bool) {
	if n, ok := asNumber(v); ok {
		return W(n), true
	}
	if b, ok := asLiteralByte(v); ok {
		return W(b), true
	}
	return 0, false
}

func labelByte[W Width](v ast.Value) (W, bool) {
	id, ok := v.(ast.Identifier)
	if !ok || len(id.Text) == 0 {
		return 0, false
	}
	return W(id.Text[0]), true
}

func handleEcho[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	p, res := param(call, 0, "c", "echo 'c'")
	if !res.OK() {
		return nil, res
	}
	b, ok := asLiteralByte(p)
	if !ok {
		return nil, TypeMismatch("literal", "other")
	}
	return []W{opEcho, W(b)}, OKResult()
}

func handleMov[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "mov Rn, k")
	if !res.OK() {
		return nil, res
	}
	reg, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	kp, res := param(call, 1, "k", "mov Rn, k")
	if !res.OK() {
		return nil, res
	}
	k, ok := numericByte[W](kp)
	if !ok {
		return nil, TypeMismatch("number or literal", "other")
	}
	return []W{opMov, W(reg.Number), k}, OKResult()
}

func handleUnaryRegister[W Width](opcode byte, signature string) Handler[W] {
	return func(g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
		rp, res := param(call, 0, "Rn", signature)
		if !res.OK() {
			return nil, res
		}
		reg, ok := asRegister(rp)
		if !ok {
			return nil, TypeMismatch("register", "other")
		}
		return []W{W(opcode), W(reg.Number)}, OKResult()
	}
}

func handleNullary[W Width](opcode byte) Handler[W] {
	return func(g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
		return []W{W(opcode)}, OKResult()
	}
}

// handleNop implements "nop -> empty": no bytes at all, not even an
// opcode byte.
func handleNop[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	return nil, OKResult()
}

func handlePut[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "put Rn, k, p")
	if !res.OK() {
		return nil, res
	}
	reg, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	kp, res := param(call, 1, "k", "put Rn, k, p")
	if !res.OK() {
		return nil, res
	}
	k, ok := numericByte[W](kp)
	if !ok {
		return nil, TypeMismatch("number or literal", "other")
	}
	pp, res := param(call, 2, "p", "put Rn, k, p")
	if !res.OK() {
		return nil, res
	}
	p, ok := numericByte[W](pp)
	if !ok {
		return nil, TypeMismatch("number or literal", "other")
	}
	return []W{opPut, W(reg.Number), k, p}, OKResult()
}

func handleGet[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "get Rn, p, Rm")
	if !res.OK() {
		return nil, res
	}
	reg, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	pp, res := param(call, 1, "p", "get Rn, p, Rm")
	if !res.OK() {
		return nil, res
	}
	p, ok := numericByte[W](pp)
	if !ok {
		return nil, TypeMismatch("number or literal", "other")
	}
	mp, res := param(call, 2, "Rm", "get Rn, p, Rm")
	if !res.OK() {
		return nil, res
	}
	m, ok := asRegister(mp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	return []W{opGet, W(reg.Number), p, W(m.Number)}, OKResult()
}

func handleAdd[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "add Rn, Rm")
	if !res.OK() {
		return nil, res
	}
	n, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	mp, res := param(call, 1, "Rm", "add Rn, Rm")
	if !res.OK() {
		return nil, res
	}
	m, ok := asRegister(mp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	return []W{opAdd, W(n.Number), W(m.Number)}, OKResult()
}

func handleLsl[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "lsl Rn, ...")
	if !res.OK() {
		return nil, res
	}
	reg, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	out := []W{opLsl, W(reg.Number)}
	for _, rest := range call.Parameters[1:] {
		b, ok := numericByte[W](rest)
		if !ok {
			return nil, TypeMismatch("number or literal", "other")
		}
		out = append(out, b)
	}
	return out, OKResult()
}

func handleCmp[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	rp, res := param(call, 0, "Rn", "cmp Rn, Rm, label")
	if !res.OK() {
		return nil, res
	}
	n, ok := asRegister(rp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	mp, res := param(call, 1, "Rm", "cmp Rn, Rm, label")
	if !res.OK() {
		return nil, res
	}
	m, ok := asRegister(mp)
	if !ok {
		return nil, TypeMismatch("register", "other")
	}
	lp, res := param(call, 2, "label", "cmp Rn, Rm, label")
	if !res.OK() {
		return nil, res
	}
	label, ok := labelByte[W](lp)
	if !ok {
		return nil, TypeMismatch("identifier", "other")
	}
	return []W{opCmp, W(n.Number), W(m.Number), label}, OKResult()
}

func handleRep[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	lp, res := param(call, 0, "label", "rep label, k")
	if !res.OK() {
		return nil, res
	}
	label, ok := labelByte[W](lp)
	if !ok {
		return nil, TypeMismatch("identifier", "other")
	}
	kp, res := param(call, 1, "k", "rep label, k")
	if !res.OK() {
		return nil, res
	}
	k, ok := numericByte[W](kp)
	if !ok {
		return nil, TypeMismatch("number or literal", "other")
	}
	return []W{opRep, label, k}, OKResult()
}

func handleJmp[W Width](g *Generator[W], v *Vendor[W], call ast.InstructionCall) ([]W, Result) {
	lp, res := param(call, 0, "label", "jmp label")
	if !res.OK() {
		return nil, res
	}
	label, ok := labelByte[W](lp)
	if !ok {
		return nil, TypeMismatch("identifier", "other")
	}
	return []W{opJmp, label}, OKResult()
}
