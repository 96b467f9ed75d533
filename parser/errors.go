// Package parser implements the LR Assembly recursive-descent parser: a
// token-stream-to-AST pass that never looks back at raw source bytes.
package parser

import (
	"fmt"

	"github.com/kdgonz7/vasm/token"
)

// ErrorKind enumerates the Parse error taxonomy, plus
// OldProcedureSyntax for the reserved "@" top-level form.
type ErrorKind int

const (
	ErrExpressionIsNotSubroutine ErrorKind = iota
	ErrEmptySubroutine
	ErrUnexpectedToken
	ErrRegisterMissingNumber
	ErrRangeExpectsStart
	ErrRangeExpectsSeparator
	ErrRangeExpectsEnd
	ErrRangeExpectsNumber
	ErrRangeStartsAfterEnd
	ErrMacroNeverClosed
	ErrAsideExpectsName
	ErrAsideNameMustBeIdentifier
	ErrInvalidTokenValue
	ErrOldProcedureSyntax
)

var errorNames = map[ErrorKind]string{
	ErrExpressionIsNotSubroutine: "ExpressionIsNotSubroutine",
	ErrEmptySubroutine:           "EmptySubroutine",
	ErrUnexpectedToken:           "UnexpectedToken",
	ErrRegisterMissingNumber:     "RegisterMissingNumber",
	ErrRangeExpectsStart:         "RangeExpectsStart",
	ErrRangeExpectsSeparator:     "RangeExpectsSeparator",
	ErrRangeExpectsEnd:           "RangeExpectsEnd",
	ErrRangeExpectsNumber:        "RangeExpectsNumber",
	ErrRangeStartsAfterEnd:       "RangeStartsAfterEnd",
	ErrMacroNeverClosed:          "MacroNeverClosed",
	ErrAsideExpectsName:          "AsideExpectsName",
	ErrAsideNameMustBeIdentifier: "AsideNameMustBeIdentifier",
	ErrInvalidTokenValue:         "InvalidTokenValue",
	ErrOldProcedureSyntax:        "OldProcedureSyntax",
}

func (k ErrorKind) String() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a parse-time error anchored to the cursor span active when it
// was raised.
type Error struct {
	Kind    ErrorKind
	Span    token.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Span, e.Kind, e.Message)
}

func newError(kind ErrorKind, span token.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}
