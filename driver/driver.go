// Package driver orchestrates the pipeline stages in sequence: stylist,
// lex, parse, preprocess, generate, link, persist. One orchestration
// function, Compile, strings the stages together and owns no stage's
// internals, only their call order.
package driver

import (
	"errors"
	"log"
	"math"
	"os"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/linker"
	"github.com/kdgonz7/vasm/options"
	"github.com/kdgonz7/vasm/parser"
	"github.com/kdgonz7/vasm/preprocess"
	"github.com/kdgonz7/vasm/stylist"
	"github.com/kdgonz7/vasm/token"
)

// logger uses the standard library log package directly, unadorned,
// rather than a structured third-party logger. Stage transitions are
// only printed under Options.Verbose.
var logger = log.New(os.Stderr, "", log.Lshortfile)

func logStage(opts *options.Options, stage string) {
	if opts.Verbose {
		logger.Printf("stage: %s", stage)
	}
}

// EntryProcedure is the conventional name the linker seeds as the
// reachability root. On non-folding targets its body is appended after
// every framed section; on folding targets it is the only body emitted.
const EntryProcedure = "_start"

// ErrStrictStylist is returned when strict mode is on and the stylist
// produced at least one diagnostic.
var ErrStrictStylist = errors.New("compilation aborted: strict stylist mode and diagnostics present")

// Result is everything a successful compile produced.
type Result struct {
	Bytes             []byte
	StyleDiagnostics  []stylist.Diagnostic
	RemovedProcedures []string
}

// maxNumberSize returns the lexer's numeric range ceiling for a format,
// matching the target's element width.
func maxNumberSize(format options.Format) int64 {
	switch format {
	case options.OpenLUD:
		return math.MaxInt8
	case options.NexFUSE, options.Mercury:
		return math.MaxUint8
	case options.SiAX:
		return math.MaxInt32
	case options.JADE, options.SolarisVM:
		return math.MaxUint32
	default:
		return math.MaxInt32
	}
}

// Compile runs the full pipeline over source for one translation unit.
func Compile(source string, opts *options.Options) (*Result, error) {
	var styleDiags []stylist.Diagnostic
	if opts.StylistEnabled {
		logStage(opts, "stylist")
		styleDiags = stylist.Run(source)
		if opts.StrictStylist && len(styleDiags) > 0 {
			return &Result{StyleDiagnostics: styleDiags}, ErrStrictStylist
		}
	}

	logStage(opts, "lex")
	lex := token.NewLexer(source, maxNumberSize(opts.Format), !opts.AllowBigNumbers)
	tokens := lex.Tokenize()
	if errs := lex.Errors(); len(errs) > 0 {
		return &Result{StyleDiagnostics: styleDiags}, errs[0]
	}

	logStage(opts, "parse")
	p := parser.NewParser(tokens)
	root, err := p.Parse()
	if err != nil {
		return &Result{StyleDiagnostics: styleDiags}, err
	}

	logStage(opts, "preprocess")
	pre := preprocess.New()
	if err := pre.Run(root, opts); err != nil {
		return &Result{StyleDiagnostics: styleDiags}, err
	}

	logStage(opts, "codegen+link")
	bytes, removed, err := generateAndLink(root, opts)
	if err != nil {
		return &Result{StyleDiagnostics: styleDiags}, err
	}
	if opts.Verbose && len(removed) > 0 {
		logger.Printf("peephole removed %d unreachable procedures: %v", len(removed), removed)
	}

	return &Result{Bytes: bytes, StyleDiagnostics: styleDiags, RemovedProcedures: removed}, nil
}

func generateAndLink(root *ast.Root, opts *options.Options) ([]byte, []string, error) {
	switch opts.Format {
	case options.OpenLUD:
		return compileWith(root, opts, codegen.NewOpenLUD(), linker.OpenLUDContext())
	case options.NexFUSE:
		return compileWith(root, opts, codegen.NewNexFUSE(), linker.NexFUSEContext())
	case options.Mercury:
		return compileWith(root, opts, codegen.NewMercury(), linker.MercuryContext())
	case options.SiAX:
		return compileWith(root, opts, codegen.NewSiAX(), linker.SiAXContext())
	case options.JADE:
		return compileWith(root, opts, codegen.NewJADE(), linker.JADEContext())
	case options.SolarisVM:
		return compileWith(root, opts, codegen.NewSolarisVM(), linker.SolarisVMContext())
	default:
		return nil, nil, errors.New("no target format selected")
	}
}

// compileWith is the single generic instantiation point: one call per
// branch in generateAndLink monomorphizes codegen, peephole, and the
// linker for that target's W.
func compileWith[W codegen.Width](root *ast.Root, opts *options.Options, vendor *codegen.Vendor[W], ctx linker.Context[W]) ([]byte, []string, error) {
	gen := codegen.NewGenerator(vendor)
	if err := gen.Generate(root); err != nil {
		return nil, nil, err
	}

	var buf []W
	var removed []string
	var err error
	if opts.OptimizationLevel > 0 {
		buf, removed, err = linker.OptimizedLink(gen.Procedures, gen.Used, EntryProcedure, ctx)
	} else {
		buf, err = linker.Link(gen.Procedures, EntryProcedure, ctx)
	}
	if err != nil {
		return nil, nil, err
	}

	return linker.Persist(buf, opts.Endian, ctx.VasmHeader), removed, nil
}
