// Package html parses a restricted subset of HTML markup into a dom.Node
// tree. Supported are nested elements with quoted attributes, text, and
// comments; there is no tokenizer-level HTML5 compliance and no recovery
// from malformed input.
package html

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"twig/dom"
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

// Parse consumes a complete document and returns its root node. A
// document with exactly one top-level node returns that node directly;
// otherwise the nodes are wrapped in a synthesized "html" element so the
// caller always sees a single root. Any structural violation aborts the
// whole parse; no partial tree is returned.
func Parse(document string) (*dom.Node, error) {
	return NewParser(document).Parse()
}

func (p *Parser) Parse() (root *dom.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			root, err = nil, perr
		}
	}()

	nodes := p.parse_nodes()
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return dom.NewElement("html", dom.AttrMap{}, nodes), nil
}

func (p *Parser) fail(kind ErrorKind, msg string) {
	p.fail_at(kind, p.pos, msg)
}

func (p *Parser) fail_at(kind ErrorKind, pos int, msg string) {
	panic(&ParseError{Kind: kind, Pos: pos, Msg: msg})
}

// Read the current character without consuming it. Callers must check
// eof first.
func (p *Parser) next_char() rune {
	char, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return char
}

func (p *Parser) starts_with(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.input)
}

// Consume the current character and advance past it. The cursor moves by
// the character's encoded width, which also holds for the last character
// of the input.
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

// Consume the given character or abort with the given error kind.
func (p *Parser) literal(char rune, kind ErrorKind) {
	if p.eof() {
		p.fail(kind, "expected "+strconv.QuoteRune(char)+", found end of input")
	}
	if p.next_char() != char {
		p.fail(kind, "expected "+strconv.QuoteRune(char)+", found "+strconv.QuoteRune(p.next_char()))
	}
	p.consume_char()
}

func is_tag_char(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9')
}

// Parse a tag or attribute name.
func (p *Parser) parse_tag_name() string {
	return p.consume_while(is_tag_char)
}

// Parse a single node, or nothing for a comment or a stray closing tag.
func (p *Parser) parse_node() *dom.Node {
	if p.starts_with("<!--") {
		p.parse_comment()
		return nil
	}
	if p.starts_with("</") {
		return nil
	}
	if p.next_char() == '<' {
		return p.parse_element()
	}
	return p.parse_text()
}

// Parse a text run. Comments inside the run are dropped and the
// surrounding text is merged into a single node rather than split.
func (p *Parser) parse_text() *dom.Node {
	data := strings.Builder{}
	for {
		data.WriteString(p.consume_while(func(char rune) bool { return char != '<' }))
		if p.starts_with("<!--") {
			p.parse_comment()
		} else {
			break
		}
	}
	return dom.NewText(data.String())
}

func (p *Parser) parse_element() *dom.Node {
	// opening tag
	open_pos := p.pos
	p.literal('<', UnexpectedCharacter)
	tag_name := p.parse_tag_name()
	attrs := p.parse_attributes(tag_name)
	p.literal('>', UnterminatedTag)

	children := p.parse_nodes()

	// closing tag, which must name the same tag
	if p.eof() {
		p.fail_at(UnterminatedTag, open_pos, "no closing tag for <"+tag_name+">")
	}
	p.literal('<', UnterminatedTag)
	p.literal('/', UnterminatedTag)
	closing_name := p.parse_tag_name()
	if closing_name != tag_name {
		p.fail(ClosingTagMismatch, "expected </"+tag_name+">, found </"+closing_name+">")
	}
	p.literal('>', UnterminatedTag)

	return dom.NewElement(tag_name, attrs, children)
}

// Parse a single name="value" attribute pair.
func (p *Parser) parse_attr() (string, string) {
	name := p.parse_tag_name()
	p.literal('=', UnexpectedCharacter)
	value := p.parse_attr_value()
	return name, value
}

func (p *Parser) parse_attr_value() string {
	if p.eof() {
		p.fail(UnterminatedQuotedValue, "expected attribute value, found end of input")
	}
	open_quote := p.consume_char()
	if open_quote != '"' && open_quote != '\'' {
		p.fail(UnexpectedCharacter, "attribute value must be quoted, found "+strconv.QuoteRune(open_quote))
	}
	value := p.consume_while(func(char rune) bool { return char != open_quote })
	if p.eof() {
		p.fail(UnterminatedQuotedValue, "no closing "+strconv.QuoteRune(open_quote)+" for attribute value")
	}
	p.consume_char() // closing quote
	return value
}

func (p *Parser) parse_attributes(tag_name string) dom.AttrMap {
	attributes := dom.AttrMap{}
	for {
		p.consume_whitespace()
		if p.eof() {
			p.fail(UnterminatedTag, "tag <"+tag_name+"> never closed")
		}
		if p.next_char() == '>' {
			break
		}
		name, value := p.parse_attr()
		// a repeated attribute name overwrites the earlier value
		attributes[name] = value
	}
	return attributes
}

// Consume a comment and discard its contents. Nested comments are not
// recognized.
func (p *Parser) parse_comment() {
	open_pos := p.pos
	p.pos += len("<!--")
	for !p.starts_with("-->") {
		if p.eof() {
			p.fail_at(UnterminatedComment, open_pos, "comment never closed")
		}
		p.consume_char()
	}
	p.pos += len("-->")
}

// Parse sibling nodes until end of input or a closing tag.
func (p *Parser) parse_nodes() []*dom.Node {
	nodes := []*dom.Node{}
	for {
		p.consume_whitespace()
		if p.starts_with("<!--") {
			p.parse_comment()
			continue
		}
		if p.eof() || p.starts_with("</") {
			break
		}
		if node := p.parse_node(); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
