// Package layout builds a render tree from a DOM tree and a CSSOM,
// computing each box's style, size, and position. Only the subtree
// rooted at <body> ever produces layout objects: the layout tree is
// strictly the set of visible boxes.
package layout

import (
	"github.com/lukehoban/browser/css"
	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/geom"
	"github.com/lukehoban/browser/style"
)

// Kind is the final box kind, resolved from the DOM node kind and its
// cascaded/defaulted display property.
type Kind int

const (
	Block Kind = iota
	Inline
	Text
)

// Point and Size are page-relative pixel geometry, aliased from geom so
// layout, paint, and the debug raster renderer share one definition.
type Point = geom.Point
type Size = geom.Size

// Object is one box of the layout tree. Document nodes never produce an
// Object; a node whose cascaded display is "none" is pruned entirely,
// along with its subtree.
type Object struct {
	Kind     Kind
	DOMNode  *dom.Node
	Style    *style.ComputedStyle
	Parent   *Object
	Children []*Object

	Point Point
	Size  Size
}

// View is the layout tree for a single page: the body element's box,
// with every child/grandchild box already sized and positioned.
type View struct {
	root *Object
}

// Root returns the body element's layout box, or nil if the document
// has no <body>, or <body> itself is display:none.
func (v *View) Root() *Object {
	return v.root
}

// Build walks document looking for its first <body> element and lays
// out that element's subtree against sheet. The returned View's Root
// is nil when there is no body, or the body is pruned.
func Build(document *dom.Node, sheet *css.StyleSheet) *View {
	body := findBody(document)
	v := &View{}
	if body == nil {
		return v
	}
	root, ok := createObject(body, nil, sheet)
	if !ok {
		return v
	}
	root.Children = buildChildren(root, sheet)
	v.root = root

	computeSize(v.root, Size{Width: geom.ContentAreaWidth})
	computePosition(v.root, Point{}, -1, nil, nil)
	return v
}

func findBody(node *dom.Node) *dom.Node {
	if node.IsElement(dom.Body) {
		return node
	}
	for _, c := range node.Children {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// createObject cascades and defaults domNode's style against sheet,
// returning ok=false when the node resolves to display:none and so
// must be pruned from the layout tree.
func createObject(domNode *dom.Node, parentStyle *style.ComputedStyle, sheet *css.StyleSheet) (*Object, bool) {
	s := style.Cascade(domNode, sheet)
	style.Default(s, domNode, parentStyle)

	if domNode.Kind == dom.ElementKind && s.Display() == style.DisplayNone {
		return nil, false
	}

	var kind Kind
	switch {
	case domNode.Kind == dom.TextKind:
		kind = Text
	case s.Display() == style.Block:
		kind = Block
	default:
		kind = Inline
	}

	return &Object{Kind: kind, DOMNode: domNode, Style: s}, true
}

// buildChildren produces the layout children of parent's DOM node, in
// DOM order. A child whose style prunes it (display:none) is skipped
// entirely along with its subtree: no retry descends into a pruned
// node's children, matching the prune-means-gone semantics of the
// upstream algorithm this is adapted from.
func buildChildren(parent *Object, sheet *css.StyleSheet) []*Object {
	var children []*Object
	for _, domChild := range parent.DOMNode.Children {
		obj, ok := createObject(domChild, parent.Style, sheet)
		if !ok {
			continue
		}
		obj.Parent = parent
		obj.Children = buildChildren(obj, sheet)
		children = append(children, obj)
	}
	return children
}

// computeSize sizes n and, recursively, every descendant, against
// parentSize. A block box claims its final width from the parent
// before its children are sized; every box's own size is finalized
// only once its children's sizes are known.
func computeSize(n *Object, parentSize Size) {
	if n == nil {
		return
	}
	if n.Kind == Block {
		n.Size = sizeOf(n, parentSize)
	}
	for _, c := range n.Children {
		computeSize(c, n.Size)
	}
	n.Size = sizeOf(n, parentSize)
}

func sizeOf(n *Object, parentSize Size) Size {
	switch n.Kind {
	case Block:
		width := parentSize.Width
		var height int64
		prevBlock := true
		for _, c := range n.Children {
			if prevBlock || c.Kind == Block {
				height += c.Size.Height
			}
			prevBlock = c.Kind == Block
		}
		return Size{Width: width, Height: height}

	case Inline:
		var width, height int64
		for _, c := range n.Children {
			width += c.Size.Width
			height += c.Size.Height
		}
		return Size{Width: width, Height: height}

	default: // Text
		ratio := fontSizeRatio(n.Style.FontSize())
		width := geom.CharWidth * ratio * int64(len([]rune(n.DOMNode.Text)))
		if width > geom.ContentAreaWidth {
			lines := width / geom.ContentAreaWidth
			if width%geom.ContentAreaWidth != 0 {
				lines++
			}
			return Size{Width: geom.ContentAreaWidth, Height: geom.CharHeightWithPadding * ratio * lines}
		}
		return Size{Width: width, Height: geom.CharHeightWithPadding * ratio}
	}
}

func fontSizeRatio(f style.FontSize) int64 {
	switch f {
	case style.XLarge:
		return 2
	case style.XXLarge:
		return 3
	default:
		return 1
	}
}

// computePosition positions n and its descendants. previousKind is -1
// when n has no previous sibling.
func computePosition(n *Object, parentPoint Point, previousKind Kind, previousPoint *Point, previousSize *Size) {
	if n == nil {
		return
	}
	n.Point = pointOf(n, parentPoint, previousKind, previousPoint, previousSize)

	var prevKind Kind = -1
	var prevPoint *Point
	var prevSize *Size
	for _, c := range n.Children {
		computePosition(c, n.Point, prevKind, prevPoint, prevSize)
		p, s := c.Point, c.Size
		prevPoint, prevSize = &p, &s
		prevKind = c.Kind
	}
}

// pointOf places n relative to its parent and previous sibling. A
// block box (or one following a block sibling) always starts a new
// line under its parent's x; consecutive inline boxes continue along
// the same line; anything else (a lone text box, or a box with no
// previous sibling) inherits the parent's point outright.
func pointOf(n *Object, parentPoint Point, previousKind Kind, previousPoint *Point, previousSize *Size) Point {
	switch {
	case n.Kind == Block || previousKind == Block:
		if previousPoint != nil && previousSize != nil {
			return Point{X: parentPoint.X, Y: previousPoint.Y + previousSize.Height}
		}
		return Point{X: parentPoint.X, Y: parentPoint.Y}

	case n.Kind == Inline && previousKind == Inline:
		if previousPoint != nil && previousSize != nil {
			return Point{X: previousPoint.X + previousSize.Width, Y: previousPoint.Y}
		}
		return parentPoint

	default:
		return parentPoint
	}
}
