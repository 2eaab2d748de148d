// Package dom provides the Document Object Model tree structure produced by
// the HTML parser: documents, elements, and text nodes linked by
// parent/children references.
package dom

import "strings"

// NodeKind distinguishes the three node variants the engine recognizes.
type NodeKind int

const (
	// DocumentKind is the single root node of a tree, owned by a Window.
	DocumentKind NodeKind = iota
	// ElementKind is a tagged node with attributes and children.
	ElementKind
	// TextKind is a leaf node holding character data.
	TextKind
)

func (k NodeKind) String() string {
	switch k {
	case DocumentKind:
		return "Document"
	case ElementKind:
		return "Element"
	case TextKind:
		return "Text"
	default:
		return "Unknown"
	}
}

// ElementTag is the closed set of element tags the parser and layout
// builder know how to handle. Any other start tag is consumed by the
// tokenizer/parser but produces no Element node.
type ElementTag int

const (
	Html ElementTag = iota
	Head
	Style
	Script
	Body
	P
	H1
	H2
	A
)

var tagNames = map[ElementTag]string{
	Html: "html", Head: "head", Style: "style", Script: "script",
	Body: "body", P: "p", H1: "h1", H2: "h2", A: "a",
}

var namesToTag = func() map[string]ElementTag {
	m := make(map[string]ElementTag, len(tagNames))
	for tag, name := range tagNames {
		m[name] = tag
	}
	return m
}()

func (t ElementTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "unknown"
}

// TagFromName resolves a lowercase tag name to a recognized ElementTag.
// ok is false for any tag the engine doesn't model.
func TagFromName(name string) (ElementTag, bool) {
	t, ok := namesToTag[strings.ToLower(name)]
	return t, ok
}

// Attribute is a single insertion-ordered name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is one node of the DOM tree. Exactly one of the *Kind-specific
// fields is meaningful for a given Kind: Tag/Attributes for ElementKind,
// Text for TextKind; DocumentKind uses neither.
type Node struct {
	Kind       NodeKind
	Tag        ElementTag
	Attributes []Attribute
	Text       string

	Parent   *Node
	Children []*Node
}

// NewDocument creates the root node of a tree.
func NewDocument() *Node {
	return &Node{Kind: DocumentKind}
}

// NewElement creates an element node for a recognized tag.
func NewElement(tag ElementTag, attrs []Attribute) *Node {
	return &Node{Kind: ElementKind, Tag: tag, Attributes: attrs}
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: TextKind, Text: text}
}

// AppendChild links child as the last child of n, replacing any previous
// parent link child held.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// LastChild returns the most recently appended child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// GetAttribute returns an attribute's value, or "" if absent.
func (n *Node) GetAttribute(name string) string {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) bool {
	for _, a := range n.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute inserts or updates an attribute, preserving insertion order.
func (n *Node) SetAttribute(name, value string) {
	for i, a := range n.Attributes {
		if a.Name == name {
			n.Attributes[i].Value = value
			return
		}
	}
	n.Attributes = append(n.Attributes, Attribute{Name: name, Value: value})
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// IsElement reports whether n is an element of the given tag.
func (n *Node) IsElement(tag ElementTag) bool {
	return n.Kind == ElementKind && n.Tag == tag
}

// Window owns the root Document of a parsed page.
type Window struct {
	Document *Node
}

// NewWindow creates a Window wrapping a fresh Document root.
func NewWindow() *Window {
	return &Window{Document: NewDocument()}
}
