// Package css parses a restricted subset of CSS into rules whose
// selector lists are ordered by specificity. Simple selectors only; no
// combinators and no cascade computation.
package css

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mazznoer/csscolorparser"
)

type Parser struct {
	input string
	pos   int
}

func NewParser(input string) *Parser {
	return &Parser{
		input: input,
		pos:   0,
	}
}

// ParseStylesheet consumes a complete style sheet and returns its rules
// in source order. Any structural violation aborts the whole parse.
func ParseStylesheet(source string) (sheet *Stylesheet, err error) {
	p := NewParser(source)
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			sheet, err = nil, perr
		}
	}()

	sheet = &Stylesheet{}
	for {
		p.consume_whitespace()
		if p.eof() {
			return sheet, nil
		}
		sheet.Rules = append(sheet.Rules, p.parse_rule())
	}
}

// ParseSelectors consumes one comma-separated selector list, up to but
// excluding the `{` that opens the rule body, and returns the selectors
// sorted by specificity in descending order. Equal specificities keep
// their input order.
func (p *Parser) ParseSelectors() (selectors []Selector, err error) {
	defer p.catch(&err)
	return p.parse_selectors(), nil
}

// ParseRule consumes one full rule, selector list and declaration block.
func (p *Parser) ParseRule() (rule Rule, err error) {
	defer p.catch(&err)
	return p.parse_rule(), nil
}

func (p *Parser) catch(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*ParseError)
		if !ok {
			panic(r)
		}
		*err = perr
	}
}

func (p *Parser) fail(kind ErrorKind, msg string) {
	p.fail_at(kind, p.pos, msg)
}

func (p *Parser) fail_at(kind ErrorKind, pos int, msg string) {
	panic(&ParseError{Kind: kind, Pos: pos, Msg: msg})
}

func (p *Parser) next_char() rune {
	char, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return char
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) consume_char() rune {
	char, width := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += width
	return char
}

func (p *Parser) consume_while(test func(rune) bool) string {
	start := p.pos
	for !p.eof() && test(p.next_char()) {
		p.consume_char()
	}
	return p.input[start:p.pos]
}

func (p *Parser) consume_whitespace() {
	p.consume_while(unicode.IsSpace)
}

func (p *Parser) literal(char rune, kind ErrorKind) {
	if p.eof() {
		p.fail(kind, "expected "+strconv.QuoteRune(char)+", found end of input")
	}
	if p.next_char() != char {
		p.fail(kind, "expected "+strconv.QuoteRune(char)+", found "+strconv.QuoteRune(p.next_char()))
	}
	p.consume_char()
}

func valid_identifier_char(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == '-' || char == '_'
}

func (p *Parser) parse_identifier() string {
	return p.consume_while(valid_identifier_char)
}

// Parse one simple selector: `#id` and `.class` segments accumulate, `*`
// contributes no constraint, and a bare identifier sets the tag name. A
// second bare identifier run overwrites the first rather than being
// rejected.
func (p *Parser) parse_simple_selector() *SimpleSelector {
	selector := &SimpleSelector{}
	for !p.eof() {
		switch char := p.next_char(); {
		case char == '#':
			p.consume_char()
			selector.ID = p.parse_identifier()
		case char == '.':
			p.consume_char()
			selector.Classes = append(selector.Classes, p.parse_identifier())
		case char == '*':
			// universal selector
			p.consume_char()
		case valid_identifier_char(char):
			selector.TagName = p.parse_identifier()
		default:
			return selector
		}
	}
	return selector
}

func (p *Parser) parse_rule() Rule {
	return Rule{
		Selectors:    p.parse_selectors(),
		Declarations: p.parse_declarations(),
	}
}

// Parse a comma-separated selector list, stopping at `{`.
func (p *Parser) parse_selectors() []Selector {
	selectors := []Selector{}
	for {
		start := p.pos
		selector := p.parse_simple_selector()
		if p.pos == start {
			p.fail(EmptySelectorList, "expected a selector")
		}
		selectors = append(selectors, selector)
		p.consume_whitespace()
		if p.eof() {
			p.fail(UnexpectedCharacter, "expected ',' or '{' in selector list, found end of input")
		}
		switch char := p.next_char(); char {
		case ',':
			p.consume_char()
			p.consume_whitespace()
		case '{':
			// declarations follow
			slices.SortStableFunc(selectors, func(a, b Selector) int {
				return b.Specificity().Compare(a.Specificity())
			})
			return selectors
		default:
			p.fail(UnexpectedCharacter, strconv.QuoteRune(char)+" in selector list")
		}
	}
}

func (p *Parser) parse_declarations() []Declaration {
	open_pos := p.pos
	p.literal('{', UnexpectedCharacter)
	declarations := []Declaration{}
	for {
		p.consume_whitespace()
		if p.eof() {
			p.fail_at(UnterminatedRule, open_pos, "declaration block never closed")
		}
		if p.next_char() == '}' {
			p.consume_char()
			return declarations
		}
		declarations = append(declarations, p.parse_declaration())
	}
}

// Parse one `name: value;` pair.
func (p *Parser) parse_declaration() Declaration {
	name := p.parse_identifier()
	if name == "" {
		p.fail(UnexpectedCharacter, "expected a property name")
	}
	p.consume_whitespace()
	p.literal(':', UnexpectedCharacter)
	p.consume_whitespace()
	value := p.parse_value()
	p.consume_whitespace()
	p.literal(';', UnexpectedCharacter)
	return Declaration{
		Name:  strings.ToLower(name),
		Value: value,
	}
}

func (p *Parser) parse_value() Value {
	if p.eof() {
		p.fail(UnexpectedCharacter, "expected a declaration value, found end of input")
	}
	switch char := p.next_char(); {
	case char >= '0' && char <= '9':
		return p.parse_length()
	case char == '#':
		return p.parse_color()
	default:
		keyword := p.parse_identifier()
		if keyword == "" {
			p.fail(UnexpectedCharacter, strconv.QuoteRune(char)+" in declaration value")
		}
		return Keyword{Name: keyword}
	}
}

func (p *Parser) parse_length() Value {
	return Length{
		Quantity: p.parse_float(),
		Unit:     p.parse_unit(),
	}
}

func (p *Parser) parse_float() float64 {
	s := p.consume_while(func(char rune) bool {
		return (char >= '0' && char <= '9') || char == '.'
	})
	quantity, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(UnexpectedCharacter, "invalid length "+strconv.Quote(s))
	}
	return quantity
}

func (p *Parser) parse_unit() Unit {
	switch unit := strings.ToLower(p.parse_identifier()); unit {
	case "px":
		return Px
	default:
		p.fail(UnexpectedCharacter, "unrecognized unit "+strconv.Quote(unit))
		return 0 // unreachable
	}
}

// Parse a hex color literal such as #cc0000 or #c00.
func (p *Parser) parse_color() Value {
	start := p.pos
	p.consume_char() // '#'
	p.consume_while(func(char rune) bool {
		return (char >= '0' && char <= '9') ||
			(char >= 'a' && char <= 'f') ||
			(char >= 'A' && char <= 'F')
	})
	color, err := csscolorparser.Parse(p.input[start:p.pos])
	if err != nil {
		p.fail(UnexpectedCharacter, "invalid color "+strconv.Quote(p.input[start:p.pos]))
	}
	r, g, b, a := color.RGBA255()
	return Color{R: r, G: g, B: b, A: a}
}
