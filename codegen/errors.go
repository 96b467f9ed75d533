package codegen

import (
	"fmt"

	"github.com/kdgonz7/vasm/token"
)

// InstructionError wraps a non-OK Result with the call site's span and
// owning procedure: an inner cause plus positional context added at the
// boundary that first has a span to attach.
type InstructionError struct {
	Result    Result
	Procedure string
	Call      string
	Span      token.Span
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("%s: in procedure %q, instruction %q: %s", e.Span, e.Procedure, e.Call, e.Result)
}

func wrapResult(result Result, procedure, call string, span token.Span) error {
	if result.OK() {
		return nil
	}
	return &InstructionError{Result: result, Procedure: procedure, Call: call, Span: span}
}
