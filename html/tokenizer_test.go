package html

import "testing"

func TestTokenizerPlainText(t *testing.T) {
	tz := NewTokenizer("ab")
	for _, want := range []rune{'a', 'b'} {
		tok := tz.Next()
		if tok.Kind != Char || tok.Char != want {
			t.Fatalf("expected Char(%q), got %+v", want, tok)
		}
	}
	if tok := tz.Next(); tok.Kind != Eof {
		t.Fatalf("expected Eof, got %+v", tok)
	}
}

func TestTokenizerStartAndEndTag(t *testing.T) {
	tz := NewTokenizer("<p></p>")
	tok := tz.Next()
	if tok.Kind != StartTag || tok.Tag != "p" {
		t.Fatalf("expected StartTag(p), got %+v", tok)
	}
	tok = tz.Next()
	if tok.Kind != EndTag || tok.Tag != "p" {
		t.Fatalf("expected EndTag(p), got %+v", tok)
	}
}

func TestTokenizerAttributes(t *testing.T) {
	tz := NewTokenizer(`<a href="example.com" id='t'>`)
	tok := tz.Next()
	if tok.Kind != StartTag || tok.Tag != "a" {
		t.Fatalf("expected StartTag(a), got %+v", tok)
	}
	if len(tok.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %+v", tok.Attributes)
	}
	if tok.Attributes[0].Name != "href" || tok.Attributes[0].Value != "example.com" {
		t.Fatalf("unexpected first attribute: %+v", tok.Attributes[0])
	}
	if tok.Attributes[1].Name != "id" || tok.Attributes[1].Value != "t" {
		t.Fatalf("unexpected second attribute: %+v", tok.Attributes[1])
	}
}

func TestTokenizerSelfClosing(t *testing.T) {
	tz := NewTokenizer(`<br/>`)
	tok := tz.Next()
	if tok.Kind != StartTag || !tok.SelfClosing {
		t.Fatalf("expected self-closing StartTag, got %+v", tok)
	}
}

func TestTokenizerRawTextUntilMatchingEndTag(t *testing.T) {
	tz := NewTokenizer(`body{display:none;}</style>after`)
	tz.EnterRawText("style")

	var gotChars []rune
	for {
		tok := tz.Next()
		if tok.Kind != Char {
			if tok.Kind != EndTag || tok.Tag != "style" {
				t.Fatalf("expected EndTag(style), got %+v", tok)
			}
			break
		}
		gotChars = append(gotChars, tok.Char)
	}
	if string(gotChars) != "body{display:none;}" {
		t.Fatalf("unexpected raw text: %q", string(gotChars))
	}

	tok := tz.Next()
	if tok.Kind != Char || tok.Char != 'a' {
		t.Fatalf("expected to resume Data state after raw text, got %+v", tok)
	}
}

func TestTokenizerUnrecognizedCharacterFallsBackToData(t *testing.T) {
	tz := NewTokenizer("< foo")
	tok := tz.Next()
	if tok.Kind != Char || tok.Char != '<' {
		t.Fatalf("expected '<' to fall back to Data, got %+v", tok)
	}
}
