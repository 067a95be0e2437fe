// Released under an MIT license. See LICENSE.

package parser

import (
	"github.com/Mortrax/shaka-scheme/internal/datum"
	"github.com/Mortrax/shaka-scheme/internal/lexer"
	"github.com/Mortrax/shaka-scheme/internal/report"
	"github.com/Mortrax/shaka-scheme/internal/token"
)

//nolint:gochecknoglobals
var (
	quoteSym           = datum.NewSymbol("quote")
	quasiquoteSym      = datum.NewSymbol("quasiquote")
	unquoteSym         = datum.NewSymbol("unquote")
	unquoteSplicingSym = datum.NewSymbol("unquote-splicing")
)

// T is a parser over a lexer's token stream.
type T struct {
	lex *lexer.T
	log *report.Logger
}

// New creates a parser reading from lex.
func New(lex *lexer.T) *T {
	return &T{lex: lex, log: report.Named("parser")}
}

// ParseDatum reads and returns the next complete datum, or reports why it
// could not: Incomplete if more input might still complete it, a
// LexerError if the lexer rejected the text, or a ParserError if the
// tokens were individually valid but did not match the grammar.
func (p *T) ParseDatum() Result {
	result := p.parseDatum()

	switch result.Kind {
	case KindComplete:
		p.log.Debugf("datum %s", result.Datum)
	case KindDirective:
		p.log.Debugf("directive %s", result.Directive)
	case KindLexerError, KindParserError:
		p.log.Debugf("%v", result.Err)
	}

	return result
}

func (p *T) parseDatum() Result {
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return lexResult(err)
		}

		if tok.Class == token.EOF {
			return incomplete()
		}

		if tok.Class != token.DatumComment {
			break
		}

		p.lex.Get()

		discarded := p.ParseDatum()
		if discarded.Kind != KindComplete {
			return discarded
		}
	}

	tok, err := p.lex.Peek()
	if err != nil {
		return lexResult(err)
	}

	switch tok.Class {
	case token.Quote:
		return p.parseAbbreviation(quoteSym)
	case token.Backtick:
		return p.parseAbbreviation(quasiquoteSym)
	case token.Comma:
		return p.parseAbbreviation(unquoteSym)
	case token.CommaAt:
		return p.parseAbbreviation(unquoteSplicingSym)
	case token.ParenLeft:
		return p.parseList()
	case token.VectorStart:
		return p.parseVector()
	case token.BytevectorStart:
		return p.parseBytevector()
	case token.Directive:
		p.lex.Get()
		return directive(tok.Lexeme)
	}

	return p.parseSimple()
}

func lexResult(err error) Result {
	if err == lexer.ErrIncomplete { //nolint:errorlint
		return incomplete()
	}

	return lexerError(err)
}

// parseAbbreviation handles ', `, ,, and ,@: read the sub-datum and wrap
// it as (quote x), (quasiquote x), (unquote x), or (unquote-splicing x).
// If the sub-datum does not complete, the quote-family token is pushed
// back; tokens the failed sub-parse already consumed are not restored.
func (p *T) parseAbbreviation(wrap *datum.Symbol) Result {
	saved, _ := p.lex.Get()

	sub := p.ParseDatum()
	if sub.Kind != KindComplete {
		p.lex.Unget(saved)
		return sub
	}

	return complete(datum.List(wrap, sub.Datum))
}

func (p *T) parseSimple() Result {
	tok, err := p.lex.Peek()
	if err != nil {
		return lexResult(err)
	}

	switch tok.Class {
	case token.String:
		p.lex.Get()
		return complete(datum.NewString(tok.Lexeme))
	case token.Identifier:
		p.lex.Get()
		return complete(datum.NewSymbol(tok.Lexeme))
	case token.BooleanTrue:
		p.lex.Get()
		return complete(datum.True)
	case token.BooleanFalse:
		p.lex.Get()
		return complete(datum.False)
	case token.Number:
		p.lex.Get()

		n, ok := datum.NewNumber(tok.Lexeme)
		if !ok {
			return parserError(&ParserError{Message: "malformed number " + tok.Lexeme, At: tok.At})
		}

		return complete(n)
	case token.Character:
		p.lex.Get()

		r := []rune(tok.Lexeme)[0]

		return complete(datum.NewCharacter(r))
	}

	return parserError(&ParserError{Message: "could not match to a simple datum", At: tok.At})
}

// parseList parses a '(' ... ')' form, including the '.' improper-tail
// syntax. The opening '(' must already be the next token.
func (p *T) parseList() Result {
	p.lex.Get() // '('

	var elements []datum.Value

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return lexResult(err)
		}

		if tok.Class == token.ParenRight {
			p.lex.Get()
			return complete(buildList(elements, datum.Null))
		}

		if tok.Class == token.Period {
			p.lex.Get()

			tail := p.ParseDatum()
			if tail.Kind != KindComplete {
				return tail
			}

			closeTok, err := p.lex.Peek()
			if err != nil {
				return lexResult(err)
			}

			if closeTok.Class != token.ParenRight {
				return parserError(&ParserError{
					Message: "expected ) after improper list tail",
					At:      closeTok.At,
				})
			}

			p.lex.Get()

			return complete(buildList(elements, tail.Datum))
		}

		elem := p.ParseDatum()
		if elem.Kind != KindComplete {
			return elem
		}

		elements = append(elements, elem.Datum)
	}
}

func (p *T) parseVector() Result {
	p.lex.Get() // '#('

	elements, result := p.parseSequence(token.ParenRight)
	if result.Kind != KindComplete {
		return result
	}

	return complete(datum.NewVector(elements))
}

func (p *T) parseBytevector() Result {
	p.lex.Get() // '#u8('

	elements, result := p.parseSequence(token.ParenRight)
	if result.Kind != KindComplete {
		return result
	}

	ints := make([]int, len(elements))

	for i, e := range elements {
		n, ok := e.(*datum.Number)
		if !ok {
			return parserError(&ParserError{Message: "bytevector elements must be numbers"})
		}

		f, _ := n.Rat().Float64()
		ints[i] = int(f)
	}

	bv, err := datum.NewBytevector(ints)
	if err != nil {
		return parserError(&ParserError{Message: err.Error()})
	}

	return complete(bv)
}

// parseSequence parses datums up to and including close, returning them
// as a Go slice (used by vectors and bytevectors, which have no
// improper-tail syntax).
func (p *T) parseSequence(close token.Class) ([]datum.Value, Result) {
	var elements []datum.Value

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, lexResult(err)
		}

		if tok.Class == close {
			p.lex.Get()
			return elements, complete(datum.Unspecified)
		}

		elem := p.ParseDatum()
		if elem.Kind != KindComplete {
			return nil, elem
		}

		elements = append(elements, elem.Datum)
	}
}

func buildList(elements []datum.Value, tail datum.Value) datum.Value {
	result := tail

	for i := len(elements) - 1; i >= 0; i-- {
		result = datum.Cons(elements[i], result)
	}

	return result
}
