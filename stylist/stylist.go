// Package stylist implements an advisory style scanner: a line/byte
// scanner independent of the lexer and parser, built as a table of
// independent checks rather than a monolithic switch, covering the
// four LR Assembly style rules.
package stylist

import (
	"fmt"
	"strings"
)

// Kind categorizes a diagnostic's severity.
type Kind int

const (
	Regular Kind = iota
	GoodPractice
	NonCompliant
	UndefinedBehavior
)

func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case GoodPractice:
		return "good_practice"
	case NonCompliant:
		return "non_compliant"
	case UndefinedBehavior:
		return "undefined_behavior"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Location is a 1-based line/column pointing at a diagnostic's source,
// independent of token.Span since the stylist never tokenizes.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Diagnostic is one style finding.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Location Location
}

// check is one independent scanner pass, mirroring tools/lint.go's table
// of checkers. Each check receives the full source split into lines so a
// fifth rule can be added without touching the others.
type check func(src string, lines []string) []Diagnostic

var checks = []check{
	checkCommaSpacing,
	checkLongJumpTargets,
	checkFinalNewline,
}

// Run scans src and returns every diagnostic found, in the order the
// checks were registered. Running Run twice on the same source yields
// identical results, since every check is a pure function of its
// input.
func Run(src string) []Diagnostic {
	lines := strings.Split(src, "\n")
	var out []Diagnostic
	for _, c := range checks {
		out = append(out, c(src, lines)...)
	}
	return out
}

// activeSegment returns the portion of line before its first ';', and
// whether a comment marker was present at all. Style rules do
// not apply past that point: inside a ';'-started line, all of them are
// suppressed until the next newline. Unlike the lexer, which only
// treats a doubled ";;" as a comment, the stylist is a plain byte
// scanner and follows the single-';' rule verbatim.
func activeSegment(line string) (active string, hasComment bool) {
	line = strings.TrimSuffix(line, "\r")
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		return line[:idx], true
	}
	return line, false
}
