package ast

import "github.com/kdgonz7/vasm/token"

// Node is the AST tagged variant. Root.Children contains only Procedure,
// Macro, and Aside values; a Procedure's Children contains only
// InstructionCall values.
type Node interface {
	isNode()
	Span() token.Span
}

// Root is the top of the tree returned by Parser.Parse.
type Root struct {
	Children []Node
}

func (Root) isNode() {}

// Root has no single source position of its own; it spans the whole file.
func (r Root) Span() token.Span {
	if len(r.Children) == 0 {
		return token.Span{}
	}
	return r.Children[0].Span().Join(r.Children[len(r.Children)-1].Span())
}

// Procedure is "name:" followed by instruction calls up to the next
// "identifier :" pair or end of input. Procedures never nest.
type Procedure struct {
	Header   string
	Children []InstructionCall
	Sp       token.Span
}

func (Procedure) isNode()           {}
func (p Procedure) Span() token.Span { return p.Sp }

// InstructionCall is a single instruction invocation inside a procedure
// body: a name followed by a comma-separated argument list.
type InstructionCall struct {
	Name       Identifier
	Parameters []Value
	Sp         token.Span
}

func (InstructionCall) isNode()            {}
func (c InstructionCall) Span() token.Span { return c.Sp }

// Macro is the bracket form "[name args...]", living at the root.
type Macro struct {
	Name       string
	Parameters []Value
	Sp         token.Span
}

func (Macro) isNode()            {}
func (m Macro) Span() token.Span { return m.Sp }

// Aside is the colon-led form ":name args..." at the root, binding a
// compile-time symbol. Currently parsed but reserved for future value
// expansion.
type Aside struct {
	Name       string
	Parameters []Value
	Sp         token.Span
}

func (Aside) isNode()            {}
func (a Aside) Span() token.Span { return a.Sp }
