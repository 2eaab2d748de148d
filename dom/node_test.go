package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFromName(t *testing.T) {
	tag, ok := TagFromName("BODY")
	require.True(t, ok)
	assert.Equal(t, Body, tag)

	_, ok = TagFromName("div")
	assert.False(t, ok, "div is not a recognized element tag")
}

func TestAppendChildSetsParent(t *testing.T) {
	doc := NewDocument()
	html := NewElement(Html, nil)
	doc.AppendChild(html)

	require.Len(t, doc.Children, 1)
	assert.Same(t, doc, html.Parent)
	assert.Same(t, html, doc.LastChild())
}

func TestAttributesInsertionOrder(t *testing.T) {
	n := NewElement(A, nil)
	n.SetAttribute("href", "example.com")
	n.SetAttribute("id", "link")
	n.SetAttribute("href", "example.org")

	require.Len(t, n.Attributes, 2)
	assert.Equal(t, "href", n.Attributes[0].Name)
	assert.Equal(t, "example.org", n.GetAttribute("href"))
	assert.Equal(t, "link", n.ID())
	assert.False(t, n.HasAttribute("class"))
}

func TestTextNodeHasNoChildren(t *testing.T) {
	text := NewText("hello")
	assert.Equal(t, TextKind, text.Kind)
	assert.Empty(t, text.Children)
}

func TestNewWindow(t *testing.T) {
	w := NewWindow()
	require.NotNil(t, w.Document)
	assert.Equal(t, DocumentKind, w.Document.Kind)
}
