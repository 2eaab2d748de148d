package page

import (
	"testing"

	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/httpmsg"
	"github.com/lukehoban/browser/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResponse(t *testing.T, body string) *httpmsg.Response {
	t.Helper()
	raw := "HTTP/1.1 200 OK\n\n" + body
	resp, err := httpmsg.Parse(raw)
	require.NoError(t, err)
	return resp
}

func TestReceiveResponseEmptyBodyProducesNoDisplayItems(t *testing.T) {
	p := New()
	p.ReceiveResponse(mustResponse(t, ""))
	assert.Empty(t, p.DisplayItems())
}

func TestReceiveResponsePaintsBodyText(t *testing.T) {
	p := New()
	p.ReceiveResponse(mustResponse(t, "<html><head></head><body>hi</body></html>"))
	items := p.DisplayItems()
	require.Len(t, items, 1)
	assert.Equal(t, paint.TextItem, items[0].Kind)
	assert.Equal(t, "hi", items[0].Text)
}

func TestReceiveResponseRunsScriptBeforeLayout(t *testing.T) {
	html := `<html><head><script>
	var target = document.getElementById("t");
	target.textContent = "changed";
	</script></head><body><p id="t">original</p></body></html>`
	p := New()
	p.ReceiveResponse(mustResponse(t, html))
	items := p.DisplayItems()
	require.Len(t, items, 1)
	assert.Equal(t, "changed", items[0].Text)
}

func TestClickedOnAnchorTextReturnsHref(t *testing.T) {
	html := `<body><a href="https://example.com">link</a></body>`
	p := New()
	p.ReceiveResponse(mustResponse(t, html))

	root := p.layoutView.Root()
	require.NotNil(t, root)
	text := root.Children[0]
	href, ok := p.Clicked(text.Point.X, text.Point.Y)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", href)
}

func TestClickedOutsideAnyAnchorReturnsFalse(t *testing.T) {
	html := `<body><p>no link here</p></body>`
	p := New()
	p.ReceiveResponse(mustResponse(t, html))

	root := p.layoutView.Root()
	text := root.Children[0]
	_, ok := p.Clicked(text.Point.X, text.Point.Y)
	assert.False(t, ok)
}

func TestClickedDirectlyOnEmptyAnchorBoxReturnsHref(t *testing.T) {
	html := `<body><a href="https://example.com"></a></body>`
	p := New()
	p.ReceiveResponse(mustResponse(t, html))

	root := p.layoutView.Root()
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)
	a := root.Children[0]
	require.True(t, a.DOMNode.IsElement(dom.A))

	// The anchor has no text child, so FindNodeByPosition returns the
	// <a> box itself rather than a descendant — Clicked must recognize
	// the hit node as the enclosing element without needing a parent hop.
	href, ok := p.Clicked(a.Point.X, a.Point.Y)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", href)
}

func TestClickedBeforeAnyResponseReturnsFalse(t *testing.T) {
	p := New()
	_, ok := p.Clicked(0, 0)
	assert.False(t, ok)
}
