package html

import (
	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/log"
)

// insertionMode names one of the tree-construction states.
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHtml
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// Parser is an insertion-mode tree constructor: it drives a Tokenizer and
// builds a DOM tree rooted at a Window's Document.
type Parser struct {
	tokenizer *Tokenizer
	window    *dom.Window

	mode         insertionMode
	originalMode insertionMode // saved on entering Text mode
	stack        []*dom.Node   // stack of open elements
}

// NewParser creates a Parser over HTML source text.
func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
		window:    dom.NewWindow(),
		mode:      modeInitial,
	}
}

// Parse runs the parser to completion and returns the resulting Window.
func Parse(input string) *dom.Window {
	return NewParser(input).Parse()
}

// Parse drives the tokenizer/insertion-mode loop until Eof.
func (p *Parser) Parse() *dom.Window {
	for {
		tok := p.tokenizer.Next()
		if p.step(tok) {
			break
		}
	}
	return p.window
}

func (p *Parser) currentNode() *dom.Node {
	if len(p.stack) == 0 {
		return p.window.Document
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(n *dom.Node) { p.stack = append(p.stack, n) }

func (p *Parser) popCurrentNode() {
	if len(p.stack) == 0 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Parser) containsInStack(tag dom.ElementTag) bool {
	for _, n := range p.stack {
		if n.IsElement(tag) {
			return true
		}
	}
	return false
}

// popUntil pops the stack up to and including the nearest element with
// tag. If tag never appears on the stack, this is a no-op: malformed
// input must never abort the parse.
func (p *Parser) popUntil(tag dom.ElementTag) {
	if !p.containsInStack(tag) {
		return
	}
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.popCurrentNode()
		if top.IsElement(tag) {
			return
		}
	}
}

// insertElement appends a new Element child to the current node and
// pushes it onto the open-elements stack.
func (p *Parser) insertElement(tag dom.ElementTag, attrs []Attribute) *dom.Node {
	n := dom.NewElement(tag, convertAttrs(attrs))
	p.currentNode().AppendChild(n)
	p.push(n)
	return n
}

func convertAttrs(attrs []Attribute) []dom.Attribute {
	out := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = dom.Attribute{Name: a.Name, Value: a.Value}
	}
	return out
}

// insertChar appends c to the current node: extending its last child if
// that child is already a Text node, otherwise starting a new one.
// Outside Text mode, whitespace-only runs that would start a fresh Text
// node are dropped instead.
func (p *Parser) insertChar(c rune, dropLeadingWhitespace bool) {
	cur := p.currentNode()
	if last := cur.LastChild(); last != nil && last.Kind == dom.TextKind {
		last.Text += string(c)
		return
	}
	if dropLeadingWhitespace && isHTMLWhitespace(c) {
		return
	}
	cur.AppendChild(dom.NewText(string(c)))
}

func isHTMLWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// step processes one token under the current insertion mode. It returns
// true once Eof has been fully handled and the parse should stop.
func (p *Parser) step(tok Token) bool {
	switch p.mode {
	case modeInitial:
		if tok.Kind == Eof {
			return true
		}
		if tok.Kind == Char {
			return false // swallow char tokens
		}
		p.mode = modeBeforeHtml
		return p.step(tok)

	case modeBeforeHtml:
		if tok.Kind == Eof {
			return true
		}
		if tok.Kind == Char && isHTMLWhitespace(tok.Char) {
			return false
		}
		if tok.Kind == StartTag && tok.Tag == "html" {
			p.insertElement(dom.Html, tok.Attributes)
			p.mode = modeBeforeHead
			return false
		}
		p.insertElement(dom.Html, nil)
		p.mode = modeBeforeHead
		return p.step(tok)

	case modeBeforeHead:
		if tok.Kind == Eof {
			return true
		}
		if tok.Kind == Char && isHTMLWhitespace(tok.Char) {
			return false
		}
		if tok.Kind == StartTag && tok.Tag == "head" {
			p.insertElement(dom.Head, tok.Attributes)
			p.mode = modeInHead
			return false
		}
		p.insertElement(dom.Head, nil)
		p.mode = modeInHead
		return p.step(tok)

	case modeInHead:
		switch {
		case tok.Kind == Eof:
			return true
		case tok.Kind == StartTag && (tok.Tag == "style" || tok.Tag == "script"):
			tag := dom.Style
			if tok.Tag == "script" {
				tag = dom.Script
			}
			p.insertElement(tag, tok.Attributes)
			p.tokenizer.EnterRawText(tok.Tag)
			p.originalMode = modeInHead
			p.mode = modeText
			return false
		case tok.Kind == EndTag && tok.Tag == "head":
			p.popCurrentNode()
			p.mode = modeAfterHead
			return false
		case tok.Kind == StartTag && (tok.Tag == "body" || tok.Tag == "p" || tok.Tag == "h1" || tok.Tag == "h2" || tok.Tag == "a"),
			tok.Kind == EndTag && (tok.Tag == "body" || tok.Tag == "html"):
			// <body>, a body-level start tag, or </body>/</html> implicitly
			// closes head; the token is reprocessed after head.
			p.popUntil(dom.Head)
			p.mode = modeAfterHead
			return p.step(tok)
		default:
			// unknown tokens inside head are discarded.
			return false
		}

	case modeAfterHead:
		if tok.Kind == Eof {
			return true
		}
		if tok.Kind == Char && isHTMLWhitespace(tok.Char) {
			return false
		}
		if tok.Kind == StartTag && tok.Tag == "body" {
			p.insertElement(dom.Body, tok.Attributes)
			p.mode = modeInBody
			return false
		}
		p.insertElement(dom.Body, nil)
		p.mode = modeInBody
		return p.step(tok)

	case modeInBody:
		return p.stepInBody(tok)

	case modeText:
		if tok.Kind == Char {
			p.insertChar(tok.Char, false)
			return false
		}
		if tok.Kind == EndTag && (tok.Tag == "style" || tok.Tag == "script") {
			p.popCurrentNode()
			p.mode = p.originalMode
			return false
		}
		if tok.Kind == Eof {
			p.mode = p.originalMode
			return p.step(tok)
		}
		return false

	case modeAfterBody:
		if tok.Kind == Char && isHTMLWhitespace(tok.Char) {
			return false
		}
		if tok.Kind == EndTag && tok.Tag == "html" {
			p.mode = modeAfterAfterBody
			return false
		}
		if tok.Kind == Eof {
			return true
		}
		return false

	case modeAfterAfterBody:
		if tok.Kind == Eof {
			return true
		}
		return false
	}
	return tok.Kind == Eof
}

func (p *Parser) stepInBody(tok Token) bool {
	switch tok.Kind {
	case StartTag:
		if tag, ok := dom.TagFromName(tok.Tag); ok {
			switch tag {
			case dom.P, dom.H1, dom.H2, dom.A:
				p.insertElement(tag, tok.Attributes)
				return false
			}
		}
		log.Debugf("html: discarding unrecognized start tag %q", tok.Tag)
		return false

	case EndTag:
		switch tok.Tag {
		case "p":
			p.popUntil(dom.P)
			return false
		case "h1":
			p.popUntil(dom.H1)
			return false
		case "h2":
			p.popUntil(dom.H2)
			return false
		case "a":
			p.popUntil(dom.A)
			return false
		case "body":
			if p.containsInStack(dom.Body) {
				p.mode = modeAfterBody
			}
			return false
		case "html":
			p.popUntil(dom.Body)
			p.popUntil(dom.Html)
			p.mode = modeAfterBody
			return false
		default:
			return false
		}

	case Char:
		p.insertChar(tok.Char, true)
		return false

	case Eof:
		return true
	}
	return false
}
