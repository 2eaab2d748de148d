// Package html implements a simplified HTML5-style tokenizer and
// insertion-mode tree constructor. It supports only the small element
// vocabulary the engine cares about and performs no character-reference
// decoding, per the stated non-goals.
package html

import "strings"

// TokenKind enumerates the four HtmlToken variants.
type TokenKind int

const (
	Char TokenKind = iota
	StartTag
	EndTag
	Eof
)

// Attribute is a single insertion-ordered attribute on a StartTag token.
type Attribute struct {
	Name  string
	Value string
}

// Token is one HTML token. Only the fields matching Kind are meaningful.
type Token struct {
	Kind         TokenKind
	Char         rune
	Tag          string
	SelfClosing  bool
	Attributes   []Attribute
}

// state names the tokenizer's current state, following the HTML5
// tokenization state machine restricted to the states this engine needs.
type state int

const (
	stData state = iota
	stTagOpen
	stEndTagOpen
	stTagName
	stBeforeAttributeName
	stAttributeName
	stBeforeAttributeValue
	stAttributeValueQuoted
	stAfterAttributeValueQuoted
	stSelfClosingStartTag
	stScriptData
	stTemporaryBuffer
)

// Tokenizer turns a character stream into HtmlTokens, one per Next call.
type Tokenizer struct {
	input []rune
	pos   int
	state state

	rawTextEndTag string // "script" or "style": which end tag exits ScriptData

	// scratch buffers for the tag/attribute currently being assembled.
	tagBuf          []rune
	isEndTag        bool
	pendingTag      string
	pendingIsEnd    bool
	pendingAttrs    []Attribute
	attrNameBuf     []rune
	currentAttrName string
	attrValueBuf    []rune
	quote           rune
}

// NewTokenizer creates a Tokenizer over input, starting in the Data state.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), state: stData}
}

func (t *Tokenizer) peekRune() (rune, bool) {
	if t.pos >= len(t.input) {
		return 0, false
	}
	return t.input[t.pos], true
}

// Next produces the next HtmlToken. Once Eof is returned, further calls
// keep returning Eof.
func (t *Tokenizer) Next() Token {
	for {
		switch t.state {
		case stData:
			c, ok := t.peekRune()
			if !ok {
				return Token{Kind: Eof}
			}
			if c == '<' {
				t.pos++
				t.state = stTagOpen
				continue
			}
			t.pos++
			return Token{Kind: Char, Char: c}

		case stTagOpen:
			c, ok := t.peekRune()
			if !ok {
				t.state = stData
				return Token{Kind: Char, Char: '<'}
			}
			switch {
			case c == '/':
				t.pos++
				t.state = stEndTagOpen
				continue
			case isAsciiLetter(c):
				t.state = stTagName
				t.tagBuf = nil
				continue
			default:
				// unrecognized character inside a tag: fall back to Data,
				// reconsuming '<' as ordinary text.
				t.state = stData
				return Token{Kind: Char, Char: '<'}
			}

		case stEndTagOpen:
			t.state = stTagName
			t.tagBuf = nil
			t.isEndTag = true
			continue

		case stTagName:
			c, ok := t.peekRune()
			if !ok || c == '>' || isSpace(c) || c == '/' {
				tag := strings.ToLower(string(t.tagBuf))
				isEnd := t.isEndTag
				t.isEndTag = false
				if !ok {
					t.state = stData
					return t.emitTag(tag, isEnd, nil, false)
				}
				if isSpace(c) {
					t.pos++
					t.state = stBeforeAttributeName
					t.pendingTag = tag
					t.pendingIsEnd = isEnd
					continue
				}
				if c == '/' {
					t.pos++
					t.state = stSelfClosingStartTag
					t.pendingTag = tag
					t.pendingIsEnd = isEnd
					continue
				}
				// c == '>'
				t.pos++
				t.state = stData
				return t.emitTag(tag, isEnd, nil, false)
			}
			t.tagBuf = append(t.tagBuf, c)
			t.pos++
			continue

		case stBeforeAttributeName:
			c, ok := t.peekRune()
			if !ok {
				t.state = stData
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			if isSpace(c) {
				t.pos++
				continue
			}
			if c == '/' {
				t.pos++
				t.state = stSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.pos++
				t.state = stData
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			t.state = stAttributeName
			t.attrNameBuf = nil
			continue

		case stAttributeName:
			c, ok := t.peekRune()
			if !ok || isSpace(c) || c == '/' || c == '>' || c == '=' {
				name := strings.ToLower(string(t.attrNameBuf))
				t.currentAttrName = name
				if !ok {
					t.pendingAttrs = append(t.pendingAttrs, Attribute{Name: name})
					t.state = stData
					return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
				}
				if c == '=' {
					t.pos++
					t.state = stBeforeAttributeValue
					continue
				}
				t.pendingAttrs = append(t.pendingAttrs, Attribute{Name: name})
				t.state = stBeforeAttributeName
				continue
			}
			t.attrNameBuf = append(t.attrNameBuf, c)
			t.pos++
			continue

		case stBeforeAttributeValue:
			c, ok := t.peekRune()
			if !ok {
				t.state = stData
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			if isSpace(c) {
				t.pos++
				continue
			}
			if c == '"' || c == '\'' {
				t.pos++
				t.quote = c
				t.attrValueBuf = nil
				t.state = stAttributeValueQuoted
				continue
			}
			// unrecognized (unquoted value): fall back to Data.
			t.state = stData
			return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)

		case stAttributeValueQuoted:
			c, ok := t.peekRune()
			if !ok {
				t.state = stData
				t.pendingAttrs = append(t.pendingAttrs, Attribute{Name: t.currentAttrName, Value: string(t.attrValueBuf)})
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			if c == t.quote {
				t.pos++
				t.pendingAttrs = append(t.pendingAttrs, Attribute{Name: t.currentAttrName, Value: string(t.attrValueBuf)})
				t.state = stAfterAttributeValueQuoted
				continue
			}
			t.attrValueBuf = append(t.attrValueBuf, c)
			t.pos++
			continue

		case stAfterAttributeValueQuoted:
			c, ok := t.peekRune()
			if !ok {
				t.state = stData
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			if isSpace(c) {
				t.pos++
				t.state = stBeforeAttributeName
				continue
			}
			if c == '/' {
				t.pos++
				t.state = stSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.pos++
				t.state = stData
				return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, false)
			}
			// unrecognized character: reconsume it in BeforeAttributeName,
			// where it starts the next attribute name.
			t.state = stBeforeAttributeName
			continue

		case stSelfClosingStartTag:
			c, ok := t.peekRune()
			if ok && c == '>' {
				t.pos++
			}
			t.state = stData
			return t.emitTag(t.pendingTag, t.pendingIsEnd, t.pendingAttrs, true)

		case stScriptData:
			return t.readScriptData()

		default:
			t.state = stData
			continue
		}
	}
}

// EnterRawText switches the tokenizer into ScriptData mode for the named
// raw-text element ("script" or "style"); the parser calls this right
// after consuming a <script>/<style> start tag.
func (t *Tokenizer) EnterRawText(endTag string) {
	t.state = stScriptData
	t.rawTextEndTag = endTag
}

// readScriptData emits Char tokens verbatim until it finds the matching
// "</tag" end tag (case-insensitively), at which point it consumes up to
// and including the closing '>' and emits the EndTag token.
func (t *Tokenizer) readScriptData() Token {
	if t.pos >= len(t.input) {
		t.state = stData
		return Token{Kind: Eof}
	}
	if t.input[t.pos] == '<' && t.matchesEndTagAhead() {
		start := t.pos
		t.pos += 2 + len(t.rawTextEndTag) // "</tag"
		for t.pos < len(t.input) && t.input[t.pos] != '>' {
			t.pos++
		}
		if t.pos < len(t.input) {
			t.pos++ // consume '>'
		}
		_ = start
		t.state = stData
		return Token{Kind: EndTag, Tag: t.rawTextEndTag}
	}
	c := t.input[t.pos]
	t.pos++
	return Token{Kind: Char, Char: c}
}

func (t *Tokenizer) matchesEndTagAhead() bool {
	want := "</" + t.rawTextEndTag
	if t.pos+len(want) > len(t.input) {
		return false
	}
	for i, r := range want {
		got := t.input[t.pos+i]
		if toLowerRune(got) != toLowerRune(r) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) emitTag(tag string, isEnd bool, attrs []Attribute, selfClosing bool) Token {
	t.pendingTag = ""
	t.pendingIsEnd = false
	t.pendingAttrs = nil
	if isEnd {
		return Token{Kind: EndTag, Tag: tag}
	}
	return Token{Kind: StartTag, Tag: tag, Attributes: attrs, SelfClosing: selfClosing}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isAsciiLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
