// Package token implements the LR Assembly lexer: a single-pass scanner
// that turns source bytes into a flat token list.
package token

import "fmt"

// Span is a closed-open character range attached to every token and AST
// value so diagnostics can point back at the exact source text that
// produced them. Begin/End are byte offsets into the whole source;
// Line and CharBegin are the 1-based line and column of Begin within
// that line.
type Span struct {
	Begin     int
	End       int
	CharBegin int
	Line      int
}

// String renders the span as a short file-independent location, used by
// Token.String and debug output; the reporter package attaches the
// filename separately.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.CharBegin)
}

// Join returns the smallest span covering both s and other. Used when a
// parser rule builds a value out of several tokens and wants a span for
// the whole thing.
func (s Span) Join(other Span) Span {
	begin, charBegin, line := s.Begin, s.CharBegin, s.Line
	if other.Begin < begin {
		begin, charBegin, line = other.Begin, other.CharBegin, other.Line
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Begin: begin, End: end, CharBegin: charBegin, Line: line}
}
