package parser

import (
	"strconv"
	"strings"

	"github.com/kdgonz7/vasm/ast"
	"github.com/kdgonz7/vasm/token"
)

// Parser is a recursive-descent parser over a flat token slice. It keeps
// a simple integer cursor rather than separate current/peek fields,
// since every lookahead this grammar needs is expressible as
// tokens[pos+n] with explicit bounds checks.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser wraps an already-tokenized stream. The lexer runs first (and
// separately) because lex errors and parse errors are reported through
// different taxonomies; Parse does not re-enter the lexer.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() token.Token {
	return p.at(0)
}

func (p *Parser) at(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.Token{Kind: token.KindEOF}
		}
		return token.Token{Kind: token.KindEOF, Span: p.tokens[len(p.tokens)-1].Span}
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool {
	return p.cur().Kind == token.KindEOF
}

// Parse consumes the whole token stream and produces the root of the
// AST. It stops at the first error, fail-fast (unlike the lexer and
// stylist, which accumulate).
func (p *Parser) Parse() (*ast.Root, error) {
	var children []ast.Node
	for !p.atEnd() {
		if p.cur().IsOperator(token.Newline) {
			p.advance()
			continue
		}

		switch {
		case p.cur().Kind == token.KindIdentifier && p.at(1).IsOperator(token.Colon):
			proc, err := p.parseProcedure()
			if err != nil {
				return nil, err
			}
			children = append(children, proc)

		case p.cur().IsOperator(token.Colon):
			aside, err := p.parseAside()
			if err != nil {
				return nil, err
			}
			children = append(children, aside)

		case p.cur().IsOperator(token.BracketOpen):
			macro, err := p.parseMacro()
			if err != nil {
				return nil, err
			}
			children = append(children, macro)

		case p.cur().IsOperator(token.AtSymbol):
			return nil, newError(ErrOldProcedureSyntax, p.cur().Span, "the '@' procedure form is no longer supported")

		case p.cur().Kind == token.KindIdentifier:
			return nil, newError(ErrExpressionIsNotSubroutine, p.cur().Span, "%s is not followed by ':' and cannot start a subroutine", p.cur())

		default:
			return nil, newError(ErrUnexpectedToken, p.cur().Span, "unexpected %s at top level", p.cur())
		}
	}
	return &ast.Root{Children: children}, nil
}

// parseProcedure consumes "name:" then instruction calls up to the next
// "identifier :" pair or end of input. Procedures never nest: seeing
// another "identifier :" ends the current one without consuming it, so
// the top-level loop picks the new header straight back up.
func (p *Parser) parseProcedure() (ast.Procedure, error) {
	begin := p.cur().Span
	name := p.advance() // identifier
	p.advance()         // colon

	var calls []ast.InstructionCall
	for {
		if p.atEnd() {
			break
		}
		if p.cur().IsOperator(token.Newline) || p.cur().IsOperator(token.Semicolon) {
			p.advance()
			continue
		}
		if p.cur().Kind == token.KindIdentifier && p.at(1).IsOperator(token.Colon) {
			break
		}
		if p.cur().Kind != token.KindIdentifier {
			return ast.Procedure{}, newError(ErrUnexpectedToken, p.cur().Span, "expected an instruction, found %s", p.cur())
		}
		call, err := p.parseInstructionCall()
		if err != nil {
			return ast.Procedure{}, err
		}
		calls = append(calls, call)
	}

	if len(calls) == 0 {
		return ast.Procedure{}, newError(ErrEmptySubroutine, begin, "procedure %q has no instructions", name.Text)
	}
	return ast.Procedure{Header: name.Text, Children: calls, Sp: begin.Join(calls[len(calls)-1].Sp)}, nil
}

func (p *Parser) parseInstructionCall() (ast.InstructionCall, error) {
	nameTok := p.advance()
	name := ast.Identifier{Text: nameTok.Text, Sp: nameTok.Span}

	var params []ast.Value
	if !p.cur().IsOperator(token.Newline) && !p.cur().IsOperator(token.Semicolon) && !p.atEnd() {
		for {
			val, err := p.parseValue()
			if err != nil {
				return ast.InstructionCall{}, err
			}
			params = append(params, val)

			if p.cur().IsOperator(token.Comma) {
				p.advance()
				if p.cur().IsOperator(token.Newline) || p.cur().IsOperator(token.Semicolon) || p.atEnd() {
					break // trailing comma, tolerated (stylist flags it)
				}
				continue
			}
			break
		}
	}

	end := nameTok.Span
	if len(params) > 0 {
		end = params[len(params)-1].Span()
	}
	if p.cur().IsOperator(token.Newline) || p.cur().IsOperator(token.Semicolon) {
		p.advance()
	}
	return ast.InstructionCall{Name: name, Parameters: params, Sp: nameTok.Span.Join(end)}, nil
}

// parseMacro consumes "[name args...]".
func (p *Parser) parseMacro() (ast.Macro, error) {
	begin := p.advance().Span // '['
	nameTok := p.advance()
	name := nameTok.Text

	var params []ast.Value
	for {
		if p.atEnd() {
			return ast.Macro{}, newError(ErrMacroNeverClosed, begin, "macro %q is never closed", name)
		}
		if p.cur().IsOperator(token.BracketClose) {
			end := p.advance().Span
			return ast.Macro{Name: name, Parameters: params, Sp: begin.Join(end)}, nil
		}
		if p.cur().IsOperator(token.Newline) {
			p.advance()
			continue
		}
		val, err := p.parseValue()
		if err != nil {
			return ast.Macro{}, err
		}
		params = append(params, val)
	}
}

// parseAside consumes ":name args..." up to the next newline.
func (p *Parser) parseAside() (ast.Aside, error) {
	begin := p.advance().Span // ':'
	if p.atEnd() || p.cur().IsOperator(token.Newline) {
		return ast.Aside{}, newError(ErrAsideExpectsName, begin, "aside is missing a name")
	}
	nameTok := p.cur()
	if nameTok.Kind != token.KindIdentifier {
		return ast.Aside{}, newError(ErrAsideNameMustBeIdentifier, nameTok.Span, "aside name must be an identifier, found %s", nameTok)
	}
	p.advance()

	var params []ast.Value
	end := nameTok.Span
	for !p.atEnd() && !p.cur().IsOperator(token.Newline) {
		val, err := p.parseValue()
		if err != nil {
			return ast.Aside{}, err
		}
		params = append(params, val)
		end = val.Span()
	}
	if p.cur().IsOperator(token.Newline) {
		p.advance()
	}
	return ast.Aside{Name: nameTok.Text, Parameters: params, Sp: begin.Join(end)}, nil
}

// parseValue builds an ast.Value from the current token.
func (p *Parser) parseValue() (ast.Value, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.KindNumber:
		p.advance()
		return ast.Number{Value: tok.Number, Sp: tok.Span}, nil

	case token.KindLiteral:
		p.advance()
		return ast.Literal{Body: tok.Body, Sp: tok.Span}, nil

	case token.KindIdentifier:
		p.advance()
		return identifierValue(tok)

	case token.KindOperator:
		if tok.Operator == token.CurlyOpen {
			return p.parseRange()
		}
		return nil, newError(ErrInvalidTokenValue, tok.Span, "%s cannot start a value", tok)

	default:
		return nil, newError(ErrInvalidTokenValue, tok.Span, "%s cannot start a value", tok)
	}
}

func identifierValue(tok token.Token) (ast.Value, error) {
	if strings.EqualFold(tok.Text, "nil") {
		return ast.Nil{Sp: tok.Span}, nil
	}
	if len(tok.Text) > 0 && tok.Text[0] == 'R' {
		if tok.Text == "R" {
			return nil, newError(ErrRegisterMissingNumber, tok.Span, "register name %q is missing its number", tok.Text)
		}
		if digits := tok.Text[1:]; isAllDigits(digits) {
			n, err := strconv.Atoi(digits)
			if err == nil {
				return ast.Register{Number: n, Sp: tok.Span}, nil
			}
		}
	}
	return ast.Identifier{Text: tok.Text, Sp: tok.Span}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseRange parses "{ number : number }", enforcing its five edge
// cases: missing start, missing end, start after end, missing
// separator, and an unterminated range.
func (p *Parser) parseRange() (ast.Value, error) {
	begin := p.advance().Span // '{'

	startTok := p.cur()
	if startTok.Kind != token.KindNumber {
		return nil, newError(ErrRangeExpectsStart, startTok.Span, "range expects a starting number, found %s", startTok)
	}
	p.advance()

	if !p.cur().IsOperator(token.Colon) {
		return nil, newError(ErrRangeExpectsSeparator, p.cur().Span, "range expects ':' between its bounds, found %s", p.cur())
	}
	p.advance()

	endTok := p.cur()
	if endTok.Kind != token.KindNumber {
		return nil, newError(ErrRangeExpectsEnd, endTok.Span, "range expects an ending number, found %s", endTok)
	}
	p.advance()

	if !p.cur().IsOperator(token.CurlyClose) {
		return nil, newError(ErrRangeExpectsNumber, p.cur().Span, "range is missing its closing '}', found %s", p.cur())
	}
	end := p.advance().Span

	if startTok.Number > endTok.Number {
		return nil, newError(ErrRangeStartsAfterEnd, begin.Join(end), "range start %d is after its end %d", startTok.Number, endTok.Number)
	}

	return ast.Range{Start: startTok.Number, End: endTok.Number, Sp: begin.Join(end)}, nil
}
