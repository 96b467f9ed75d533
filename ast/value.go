// Package ast defines the typed syntax tree the parser builds: Value and
// Node tagged variants, modeled as sealed interfaces with one concrete
// type per case rather than a single discriminated struct, since the
// cases carry genuinely different payload shapes (a Range's two
// endpoints have nothing in common with an Identifier's text).
package ast

import "github.com/kdgonz7/vasm/token"

// Value is the AST-level tagged variant derived from tokens at parse
// time. The unexported isValue method seals the interface
// to this package's concrete types, so the set of cases is closed to this
// file. The compiler does not check a type switch over Value for
// exhaustiveness: a switch that omits a case still compiles.
type Value interface {
	isValue()
	Span() token.Span
}

// Identifier is a bare name that isn't nil or a register.
type Identifier struct {
	Text string
	Sp   token.Span
}

func (Identifier) isValue()            {}
func (v Identifier) Span() token.Span  { return v.Sp }

// Number is an integer literal, decimal or 0x-prefixed hex.
type Number struct {
	Value int64
	Sp    token.Span
}

func (Number) isValue()           {}
func (v Number) Span() token.Span { return v.Sp }

// Literal is a character literal; Body is the raw text between the
// quotes, escapes unexpanded (see token.ToCharacter).
type Literal struct {
	Body string
	Sp   token.Span
}

func (Literal) isValue()           {}
func (v Literal) Span() token.Span { return v.Sp }

// Register is an identifier shaped "R<digits>", pre-resolved to its
// number so codegen never has to re-parse it.
type Register struct {
	Number int
	Sp     token.Span
}

func (Register) isValue()           {}
func (v Register) Span() token.Span { return v.Sp }

// Range is a "{N:M}" pair with Start <= End, enforced at parse time.
type Range struct {
	Start int64
	End   int64
	Sp    token.Span
}

func (Range) isValue()           {}
func (v Range) Span() token.Span { return v.Sp }

// Nil is the identifier "nil" (case-insensitive): a type-safe "nothing",
// distinct from the number zero and never comparable to a number.
type Nil struct {
	Sp token.Span
}

func (Nil) isValue()           {}
func (v Nil) Span() token.Span { return v.Sp }
