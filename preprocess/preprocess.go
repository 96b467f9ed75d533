// Package preprocess walks the parsed AST and executes the directive
// nodes: bracket-form macros matching a registered name, each with an
// effect on shared compile options. Directives are a name-keyed table,
// the same map-based Define/Lookup registry shape a macro table uses.
package preprocess

import (
	"fmt"
	"strings"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/options"
)

// ErrorKind enumerates the Preprocess error taxonomy.
type ErrorKind int

const (
	ErrNonexistentDirective ErrorKind = iota
	ErrInvalidArgumentCount
	ErrInvalidArgumentType
)

// Error is a preprocessor-time error. Directives are bracket macros, not
// tokens with spans of their own in this package's view, so Error carries
// the directive name instead of a token.Span; the caller (driver) can
// still recover the macro's span from the ast.Macro it was invoked on.
type Error struct {
	Kind      ErrorKind
	Directive string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("directive %q: %s", e.Directive, e.Message)
}

// Directive is a registered preprocessor effect: it receives the macro's
// parameters and the shared options object to mutate.
type Directive func(params []ast.Value, opts *options.Options) error

// Preprocessor holds the registered directive table. Built-ins are
// installed by New; callers may Register additional ones before Run.
type Preprocessor struct {
	directives map[string]Directive
}

// New returns a Preprocessor with the three built-in directives
// registered.
func New() *Preprocessor {
	p := &Preprocessor{directives: make(map[string]Directive)}
	p.Register("compat", directiveCompat)
	p.Register("endian", directiveEndian)
	p.Register("compile-if", directiveCompileIf)
	return p
}

// Register installs a directive under name, overwriting any existing
// registration — this is how a caller could add a fourth directive
// without touching this file.
func (p *Preprocessor) Register(name string, d Directive) {
	p.directives[name] = d
}

// Run walks root's children in order, dispatching every Macro node to its
// registered directive. Procedures and Asides pass through untouched.
func (p *Preprocessor) Run(root *ast.Root, opts *options.Options) error {
	for _, child := range root.Children {
		macro, ok := child.(ast.Macro)
		if !ok {
			continue
		}
		directive, ok := p.directives[macro.Name]
		if !ok {
			return &Error{Kind: ErrNonexistentDirective, Directive: macro.Name, Message: "no such directive"}
		}
		if err := directive(macro.Parameters, opts); err != nil {
			return err
		}
	}
	return nil
}

func directiveName(params []ast.Value, directive string) (string, error) {
	if len(params) != 1 {
		return "", &Error{Kind: ErrInvalidArgumentCount, Directive: directive, Message: "expects exactly one argument"}
	}
	id, ok := params[0].(ast.Identifier)
	if !ok {
		return "", &Error{Kind: ErrInvalidArgumentType, Directive: directive, Message: "argument must be an identifier"}
	}
	return id.Text, nil
}

// directiveCompat sets options.Format, unless the CLI already pinned
// it: a CLI --format flag supersedes a [compat ...] directive.
func directiveCompat(params []ast.Value, opts *options.Options) error {
	name, err := directiveName(params, "compat")
	if err != nil {
		return err
	}
	if opts.FormatSetByCLI {
		return nil
	}
	format, ok := options.ParseFormat(name)
	if !ok {
		return &Error{Kind: ErrInvalidArgumentType, Directive: "compat", Message: fmt.Sprintf("unknown format %q", name)}
	}
	opts.Format = format
	return nil
}

// directiveEndian sets options.Endian.
func directiveEndian(params []ast.Value, opts *options.Options) error {
	name, err := directiveName(params, "endian")
	if err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "little":
		opts.Endian = options.LittleEndian
	case "big":
		opts.Endian = options.BigEndian
	default:
		return &Error{Kind: ErrInvalidArgumentType, Directive: "endian", Message: fmt.Sprintf("expected little or big, got %q", name)}
	}
	return nil
}

// directiveCompileIf aborts compilation if options.Format is already set
// and differs from the argument.
func directiveCompileIf(params []ast.Value, opts *options.Options) error {
	name, err := directiveName(params, "compile-if")
	if err != nil {
		return err
	}
	if opts.Format == options.FormatUnset {
		return nil
	}
	if !strings.EqualFold(opts.Format.String(), name) {
		return &Error{
			Kind:      ErrInvalidArgumentType,
			Directive: "compile-if",
			Message:   fmt.Sprintf("this source requires target %q but compiling for %q", name, opts.Format),
		}
	}
	return nil
}
