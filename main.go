// Command vasm compiles LR Assembly source into one of six bytecode
// targets: a thin flag.FlagSet wrapper that loads config, applies CLI
// overrides, and hands off to the orchestration package for everything
// else.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kdgonz7/vasm/codegen"
	"github.com/kdgonz7/vasm/config"
	"github.com/kdgonz7/vasm/driver"
	"github.com/kdgonz7/vasm/options"
	"github.com/kdgonz7/vasm/parser"
	"github.com/kdgonz7/vasm/reporter"
	"github.com/kdgonz7/vasm/stylist"
	"github.com/kdgonz7/vasm/token"
)

const embeddedHelp = `vasm - LR Assembly compiler

Usage: vasm [options] FILE

  -f, --format FORMAT          openlud, nexfuse, mercury, solarisvm, jade, siax
  -o, --output PATH            output path (default a.out)
      --no-stylist             disable the style pass
      --strict, --enforce-stylist
                                any style diagnostic aborts compilation
  -ln, --allow-large-numbers   disable lex-time numeric range checking
  -le                          force little-endian output
  -be                          force big-endian output
  -h, --help                   this page
      --verbose                log pipeline stage transitions to stderr
      --browse                 page through diagnostics in an interactive,
                                read-only viewer instead of printing them
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vasm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		format    string
		output    string
		noStylist bool
		strict    bool
		strict2   bool
		allowBig  bool
		littleEnd bool
		bigEnd    bool
		help      bool
		verbose   bool
		browse    bool
	)
	fs.StringVar(&format, "f", "", "")
	fs.StringVar(&format, "format", "", "")
	fs.StringVar(&output, "o", "", "")
	fs.StringVar(&output, "output", "", "")
	fs.BoolVar(&noStylist, "no-stylist", false, "")
	fs.BoolVar(&strict, "strict", false, "")
	fs.BoolVar(&strict2, "enforce-stylist", false, "")
	fs.BoolVar(&allowBig, "ln", false, "")
	fs.BoolVar(&allowBig, "allow-large-numbers", false, "")
	fs.BoolVar(&littleEnd, "le", false, "")
	fs.BoolVar(&bigEnd, "be", false, "")
	fs.BoolVar(&help, "h", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.BoolVar(&browse, "browse", false, "")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if help {
		printHelp()
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "vasm: expected exactly one FILE argument")
		return 1
	}
	path := fs.Arg(0)

	opts := options.Default()
	if cfg, err := config.Load(); err == nil {
		cfg.Apply(&opts)
	}

	if format != "" {
		f, ok := options.ParseFormat(format)
		if !ok {
			fmt.Fprintf(os.Stderr, "vasm: unknown format %q\n", format)
			return 1
		}
		opts.Format = f
		opts.FormatSetByCLI = true
	}
	if output != "" {
		opts.Output = output
	}
	if noStylist {
		opts.StylistEnabled = false
	}
	if strict || strict2 {
		opts.StrictStylist = true
	}
	if allowBig {
		opts.AllowBigNumbers = true
	}
	if littleEnd {
		opts.Endian = options.LittleEndian
	}
	if bigEnd {
		opts.Endian = options.BigEndian
	}
	opts.Verbose = verbose
	opts.Files = []string{path}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vasm: %s: %s\n", path, err)
		return 1
	}

	result, err := driver.Compile(string(source), &opts)
	lines := strings.Split(string(source), "\n")

	var diags []reporter.Diagnostic
	if result != nil {
		for _, d := range result.StyleDiagnostics {
			diags = append(diags, styleToDiagnostic(path, d))
		}
	}

	var plainErr string
	if err != nil {
		if d, ok := errToDiagnostic(path, err); ok {
			diags = append(diags, d)
		} else {
			// preprocess.Error and linker.Error carry no span to anchor a
			// source excerpt to, so they print as plain diagnostics.
			plainErr = fmt.Sprintf("vasm: %s\n", err)
		}
	}

	if browse && len(diags) > 0 {
		if browseErr := reporter.Browse(diags, lines); browseErr != nil {
			fmt.Fprintf(os.Stderr, "vasm: browse: %s\n", browseErr)
		}
	} else {
		reporter.ReportAll(os.Stderr, diags, lines)
	}
	if plainErr != "" {
		fmt.Fprint(os.Stderr, plainErr)
	}

	if err != nil {
		return 1
	}

	if writeErr := os.WriteFile(opts.Output, result.Bytes, 0644); writeErr != nil {
		fmt.Fprintf(os.Stderr, "vasm: failed to write %s: %s\n", opts.Output, writeErr)
		return 1
	}

	return 0
}

func styleToDiagnostic(path string, d stylist.Diagnostic) reporter.Diagnostic {
	severity := reporter.SeveritySuggestion
	if d.Kind == stylist.NonCompliant || d.Kind == stylist.UndefinedBehavior {
		severity = reporter.SeverityError
	}
	return reporter.Diagnostic{
		File:     path,
		Span:     token.Span{Line: d.Location.Line, CharBegin: d.Location.Column},
		Message:  fmt.Sprintf("[%s] %s", d.Kind, d.Message),
		Severity: severity,
	}
}

// errToDiagnostic converts a lex/parse/codegen error into a span-bearing
// Diagnostic. Errors from other stages carry no span and report false.
func errToDiagnostic(path string, err error) (reporter.Diagnostic, bool) {
	var lexErr *token.Error
	var parseErr *parser.Error
	var codegenErr *codegen.InstructionError

	switch {
	case errors.As(err, &lexErr):
		return reporter.Diagnostic{File: path, Span: lexErr.Span, Message: lexErr.Message, Severity: reporter.SeverityError}, true
	case errors.As(err, &parseErr):
		return reporter.Diagnostic{File: path, Span: parseErr.Span, Message: parseErr.Message, Severity: reporter.SeverityError}, true
	case errors.As(err, &codegenErr):
		return reporter.Diagnostic{File: path, Span: codegenErr.Span, Message: codegenErr.Error(), Severity: reporter.SeverityError}, true
	default:
		return reporter.Diagnostic{}, false
	}
}

func printHelp() {
	if path, err := exec.LookPath("man"); err == nil {
		cmd := exec.Command(path, "vasm")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if cmd.Run() == nil {
			return
		}
	}
	fmt.Print(embeddedHelp)
}
