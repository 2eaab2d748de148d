package js

import "testing"

func TestLexerNumberAndPunctuator(t *testing.T) {
	l := NewLexer("1+2")
	tok, ok := l.Next()
	if !ok || tok.Kind != NumberToken || tok.Number != 1 {
		t.Fatalf("expected NumberToken(1), got %+v ok=%v", tok, ok)
	}
	tok, ok = l.Next()
	if !ok || tok.Kind != Punctuator || tok.Text != "+" {
		t.Fatalf("expected Punctuator(+), got %+v ok=%v", tok, ok)
	}
}

func TestLexerKeywordVsIdentifier(t *testing.T) {
	l := NewLexer("var a")
	tok, _ := l.Next()
	if tok.Kind != Keyword || tok.Text != "var" {
		t.Fatalf("expected Keyword(var), got %+v", tok)
	}
	tok, _ = l.Next()
	if tok.Kind != IdentifierToken || tok.Text != "a" {
		t.Fatalf("expected Identifier(a), got %+v", tok)
	}
}

func TestLexerStringLiteral(t *testing.T) {
	l := NewLexer(`"ok"`)
	tok, ok := l.Next()
	if !ok || tok.Kind != StringToken || tok.Text != "ok" {
		t.Fatalf("expected StringToken(ok), got %+v ok=%v", tok, ok)
	}
}

func TestLexerUnrecognizedCharacterIsFatal(t *testing.T) {
	l := NewLexer("1 % 2")
	l.Next() // "1"
	_, ok := l.Next()
	if ok {
		t.Fatalf("expected lex error on '%%'")
	}
}

func TestLexerMemberAccessDotsAndParens(t *testing.T) {
	l := NewLexer("document.getElementById(\"t\")")
	var kinds []TokenKind
	for {
		tok, ok := l.Next()
		if !ok || tok.Kind == EOFToken {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{IdentifierToken, Punctuator, IdentifierToken, Punctuator, StringToken, Punctuator}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}
