package css

// SelectorKind distinguishes the kinds of selector this engine matches.
type SelectorKind int

const (
	TypeSelector SelectorKind = iota
	ClassSelector
	IdSelector
	UnknownSelector
)

// Selector is a single, unqualified simple selector: no descendant
// combinators, no specificity, no comma-separated lists.
type Selector struct {
	Kind SelectorKind
	Name string
}

// Declaration is one "property: value" pair; Value is a single CSS token,
// matching the spec's ComponentValue = CssToken simplification.
type Declaration struct {
	Property string
	Value    Token
}

// QualifiedRule pairs one selector with its declaration block.
type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered list of rules as they appeared in source.
type StyleSheet struct {
	Rules []QualifiedRule
}

// Parser is a recursive-descent parser over a CSS token stream.
type Parser struct {
	t *Tokenizer
}

// NewParser creates a Parser over CSS source text.
func NewParser(input string) *Parser {
	return &Parser{t: NewTokenizer(input)}
}

// ParseStyleSheet parses the whole input and returns the resulting rules.
func ParseStyleSheet(input string) *StyleSheet {
	return NewParser(input).ParseStyleSheet()
}

// ParseStyleSheet repeatedly consumes qualified rules (skipping at-rules)
// until the token stream is exhausted.
func (p *Parser) ParseStyleSheet() *StyleSheet {
	sheet := &StyleSheet{}
	for {
		tok, ok := p.t.Peek()
		if !ok {
			break
		}
		if tok.Kind == AtKeyword {
			p.skipAtRule()
			continue
		}
		rule, ok := p.consumeQualifiedRule()
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet
}

// skipAtRule discards tokens up to and including the matching "{...}"
// block.
func (p *Parser) skipAtRule() {
	for {
		tok, ok := p.t.Next()
		if !ok {
			return
		}
		if tok.Kind == OpenCurly {
			p.skipBlock()
			return
		}
	}
}

func (p *Parser) skipBlock() {
	depth := 1
	for depth > 0 {
		tok, ok := p.t.Next()
		if !ok {
			return
		}
		switch tok.Kind {
		case OpenCurly:
			depth++
		case CloseCurly:
			depth--
		}
	}
}

// consumeQualifiedRule reads a selector prefix then a "{ declarations }"
// block.
func (p *Parser) consumeQualifiedRule() (QualifiedRule, bool) {
	sel, ok := p.consumeSelector()
	if !ok {
		return QualifiedRule{}, false
	}

	tok, ok := p.t.Next()
	if !ok || tok.Kind != OpenCurly {
		return QualifiedRule{}, false
	}

	var decls []Declaration
	for {
		tok, ok := p.t.Peek()
		if !ok {
			break
		}
		if tok.Kind == CloseCurly {
			p.t.Next()
			break
		}
		decl, ok := p.consumeDeclaration()
		if ok {
			decls = append(decls, decl)
		} else {
			// malformed declaration: drop one token and keep scanning,
			// abandoning only this declaration.
			p.t.Next()
		}
	}
	return QualifiedRule{Selector: sel, Declarations: decls}, true
}

// consumeSelector reads one simple selector. HashToken -> IdSelector;
// Delim('.') followed by an Ident -> ClassSelector; Ident -> TypeSelector.
// A trailing ":" (pseudo-class) is skipped, keeping the Type selector.
func (p *Parser) consumeSelector() (Selector, bool) {
	tok, ok := p.t.Next()
	if !ok {
		return Selector{}, false
	}

	var sel Selector
	switch {
	case tok.Kind == HashToken:
		sel = Selector{Kind: IdSelector, Name: tok.Ident}
	case tok.Kind == Delim && tok.DelimChar == '.':
		next, ok := p.t.Next()
		if !ok || next.Kind != Ident {
			return Selector{}, false
		}
		sel = Selector{Kind: ClassSelector, Name: next.Ident}
	case tok.Kind == Ident:
		sel = Selector{Kind: TypeSelector, Name: tok.Ident}
	default:
		sel = Selector{Kind: UnknownSelector}
	}

	if peek, ok := p.t.Peek(); ok && peek.Kind == Colon {
		for {
			next, ok := p.t.Peek()
			if !ok || next.Kind == OpenCurly {
				break
			}
			p.t.Next()
		}
	}
	return sel, true
}

// consumeDeclaration reads "Ident : ComponentValue ;?".
func (p *Parser) consumeDeclaration() (Declaration, bool) {
	prop, ok := p.t.Next()
	if !ok || prop.Kind != Ident {
		return Declaration{}, false
	}
	colon, ok := p.t.Next()
	if !ok || colon.Kind != Colon {
		return Declaration{}, false
	}
	value, ok := p.t.Next()
	if !ok {
		return Declaration{}, false
	}
	if semi, ok := p.t.Peek(); ok && semi.Kind == SemiColon {
		p.t.Next()
	}
	return Declaration{Property: prop.Ident, Value: value}, true
}
