package js

import "fmt"

// Parser is a recursive-descent parser over a JS token stream, producing
// a Program whose AdditiveExpression grammar is deliberately
// right-associative (see AdditiveExpr in the grammar): "1-2+3" parses as
// 1-(2+3), not (1-2)+3.
type Parser struct {
	l       *Lexer
	current Token
	err     error
}

// NewParser creates a Parser over JS source text.
func NewParser(input string) *Parser {
	p := &Parser{l: NewLexer(input)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, ok := p.l.Next()
	if !ok {
		p.err = fmt.Errorf("js lex error: %s", tok.Text)
		return
	}
	p.current = tok
}

func (p *Parser) isPunct(s string) bool {
	return p.current.Kind == Punctuator && p.current.Text == s
}

func (p *Parser) isKeyword(s string) bool {
	return p.current.Kind == Keyword && p.current.Text == s
}

func (p *Parser) eatPunct(s string) bool {
	if p.isPunct(s) {
		p.advance()
		return true
	}
	return false
}

// ParseProgram parses the whole input into a Program. An error is
// returned only for a lex error; structurally malformed input is parsed
// leniently (a malformed primary expression becomes an empty Identifier),
// and the JS-runtime-level "missing identifier" cases the interpreter
// tolerates never produce one.
func ParseProgram(input string) (*Program, error) {
	return NewParser(input).ParseProgram()
}

// ParseProgram consumes source elements until EOF.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{}
	for p.current.Kind != EOFToken {
		if p.err != nil {
			return nil, p.err
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}
	return prog, nil
}

func (p *Parser) parseStatement() Node {
	switch {
	case p.isKeyword("var"):
		return p.parseVariableStatement()
	case p.isKeyword("function"):
		return p.parseFunctionDeclaration()
	case p.isKeyword("return"):
		return p.parseReturnStatement()
	case p.isPunct("{"):
		return p.parseBlockStatement()
	default:
		expr := p.parseAssignmentExpr()
		p.eatPunct(";")
		return &ExpressionStatement{Expression: expr}
	}
}

func (p *Parser) parseVariableStatement() Node {
	p.advance() // "var"
	decl := &VariableDeclaration{}
	for {
		d := p.parseVariableDeclarator()
		decl.Declarations = append(decl.Declarations, d)
		if !p.eatPunct(",") {
			break
		}
	}
	p.eatPunct(";")
	return decl
}

func (p *Parser) parseVariableDeclarator() *VariableDeclarator {
	id := p.parseIdentifier()
	d := &VariableDeclarator{ID: id}
	if p.eatPunct("=") {
		d.Init = p.parseAssignmentExpr()
	}
	return d
}

func (p *Parser) parseIdentifier() *Identifier {
	name := p.current.Text
	if p.current.Kind == IdentifierToken || p.current.Kind == Keyword {
		p.advance()
	}
	return &Identifier{Name: name}
}

func (p *Parser) parseFunctionDeclaration() Node {
	p.advance() // "function"
	id := p.parseIdentifier()
	p.eatPunct("(")
	var params []*Identifier
	for !p.isPunct(")") && p.current.Kind != EOFToken {
		params = append(params, p.parseIdentifier())
		if !p.eatPunct(",") {
			break
		}
	}
	p.eatPunct(")")
	body := p.parseBlockStatement().(*BlockStatement)
	return &FunctionDeclaration{ID: id, Params: params, Body: body}
}

func (p *Parser) parseReturnStatement() Node {
	p.advance() // "return"
	var arg Node
	if !p.isPunct(";") && !p.isPunct("}") && p.current.Kind != EOFToken {
		arg = p.parseAssignmentExpr()
	}
	p.eatPunct(";")
	return &ReturnStatement{Argument: arg}
}

func (p *Parser) parseBlockStatement() Node {
	p.eatPunct("{")
	block := &BlockStatement{}
	for !p.isPunct("}") && p.current.Kind != EOFToken {
		block.Body = append(block.Body, p.parseStatement())
	}
	p.eatPunct("}")
	return block
}

// parseAssignmentExpr := AdditiveExpr ( "=" AssignmentExpr )?
func (p *Parser) parseAssignmentExpr() Node {
	left := p.parseAdditiveExpr()
	if p.eatPunct("=") {
		right := p.parseAssignmentExpr()
		return &AssignmentExpression{Operator: "=", Left: left, Right: right}
	}
	return left
}

// parseAdditiveExpr := LeftHandSideExpr ( ("+"|"-") AssignmentExpr )?
// The right operand descends into AssignmentExpr (not another Additive),
// which makes the whole chain right-associative.
func (p *Parser) parseAdditiveExpr() Node {
	left := p.parseLeftHandSideExpr()
	if p.isPunct("+") || p.isPunct("-") {
		op := p.current.Text
		p.advance()
		right := p.parseAssignmentExpr()
		return &AdditiveExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseLeftHandSideExpr := PrimaryExpr ( "." Identifier | "(" Arguments ")" )*
// The two postfix forms interleave in a single loop so that a call's
// result can itself be the object of a further member access, e.g.
// "document.getElementById(\"t\").textContent" parses as one
// MemberExpression wrapping a CallExpression, not three separate
// expressions.
func (p *Parser) parseLeftHandSideExpr() Node {
	expr := p.parsePrimaryExpr()
	for {
		switch {
		case p.eatPunct("."):
			prop := p.parseIdentifier()
			expr = &MemberExpression{Object: expr, Property: prop}
		case p.eatPunct("("):
			var args []Node
			for !p.isPunct(")") && p.current.Kind != EOFToken {
				args = append(args, p.parseAssignmentExpr())
				if !p.eatPunct(",") {
					break
				}
			}
			p.eatPunct(")")
			expr = &CallExpression{Callee: expr, Arguments: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpr() Node {
	switch p.current.Kind {
	case NumberToken:
		n := p.current.Number
		p.advance()
		return &NumericLiteral{Value: n}
	case StringToken:
		s := p.current.Text
		p.advance()
		return &StringLiteral{Value: s}
	case IdentifierToken:
		return p.parseIdentifier()
	case Punctuator:
		if p.eatPunct("(") {
			expr := p.parseAssignmentExpr()
			p.eatPunct(")")
			return expr
		}
		fallthrough
	default:
		// malformed primary expression: treat as an empty identifier
		// rather than aborting the whole parse, matching the "parsers
		// never panic" error policy.
		p.advance()
		return &Identifier{Name: ""}
	}
}
