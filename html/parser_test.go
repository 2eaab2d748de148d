package html

import (
	"testing"

	"github.com/lukehoban/browser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyDocumentHasNoElements(t *testing.T) {
	w := Parse("")
	assert.Empty(t, w.Document.Children)
}

func TestParseSynthesizesMissingHeadAndBody(t *testing.T) {
	w := Parse("<html></html>")
	require.Len(t, w.Document.Children, 1)
	html := w.Document.Children[0]
	require.True(t, html.IsElement(dom.Html))
	require.Len(t, html.Children, 2)
	assert.True(t, html.Children[0].IsElement(dom.Head))
	assert.True(t, html.Children[1].IsElement(dom.Body))
}

func TestParseExplicitHeadAndBody(t *testing.T) {
	w := Parse("<html><head></head><body></body></html>")
	html := w.Document.Children[0]
	body := html.Children[1]
	assert.True(t, body.IsElement(dom.Body))
	assert.Empty(t, body.Children)
}

func TestParseBodyText(t *testing.T) {
	w := Parse("<html><head></head><body>text</body></html>")
	body := w.Document.Children[0].Children[1]
	require.Len(t, body.Children, 1)
	assert.Equal(t, dom.TextKind, body.Children[0].Kind)
	assert.Equal(t, "text", body.Children[0].Text)
}

func TestParseStyleContentGoesToRawText(t *testing.T) {
	w := Parse("<html><head><style>body{display:none;}</style></head><body>text</body></html>")
	head := w.Document.Children[0].Children[0]
	require.Len(t, head.Children, 1)
	style := head.Children[0]
	require.True(t, style.IsElement(dom.Style))
	require.Len(t, style.Children, 1)
	assert.Equal(t, "body{display:none;}", style.Children[0].Text)
}

func TestParseH1AndPElementsAndEndTags(t *testing.T) {
	w := Parse(`<html><body><h1 id="t">hi</h1><p>x</p></body></html>`)
	body := w.Document.Children[0].Children[1]
	require.Len(t, body.Children, 2)
	h1 := body.Children[0]
	assert.True(t, h1.IsElement(dom.H1))
	assert.Equal(t, "t", h1.ID())
	assert.Equal(t, "hi", h1.Children[0].Text)
	p := body.Children[1]
	assert.True(t, p.IsElement(dom.P))
	assert.Equal(t, "x", p.Children[0].Text)
}

func TestParseAnchorWithHref(t *testing.T) {
	w := Parse(`<body><a href="example.com">L</a></body>`)
	body := w.Document.Children[0].Children[1]
	a := body.Children[0]
	assert.True(t, a.IsElement(dom.A))
	assert.Equal(t, "example.com", a.GetAttribute("href"))
	assert.Equal(t, "L", a.Children[0].Text)
}

func TestParseUnknownTagIsIgnored(t *testing.T) {
	w := Parse(`<html><body><div>text</div></body></html>`)
	body := w.Document.Children[0].Children[1]
	// <div> produces no Element node; its text is appended directly to body.
	require.Len(t, body.Children, 1)
	assert.Equal(t, dom.TextKind, body.Children[0].Kind)
	assert.Equal(t, "text", body.Children[0].Text)
}

func TestParseIndependentH1H2EndTags(t *testing.T) {
	w := Parse(`<html><body><h1>a</h1><h2>b</h2></body></html>`)
	body := w.Document.Children[0].Children[1]
	require.Len(t, body.Children, 2)
	assert.True(t, body.Children[0].IsElement(dom.H1))
	assert.True(t, body.Children[1].IsElement(dom.H2))
}
