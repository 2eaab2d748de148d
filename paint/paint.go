// Package paint turns a layout tree into a flat list of display items
// ready for a rasterizer, and answers hit-test queries against it.
package paint

import (
	"github.com/lukehoban/browser/geom"
	"github.com/lukehoban/browser/layout"
	"github.com/lukehoban/browser/style"
)

// ItemKind distinguishes the two DisplayItem variants.
type ItemKind int

const (
	RectItem ItemKind = iota
	TextItem
)

// DisplayItem is one paint command. Only the fields matching Kind are
// meaningful: Rect carries Size, Text does not (a text run's extent is
// implied by its style and content, not stored again here).
type DisplayItem struct {
	Kind  ItemKind
	Style *style.ComputedStyle
	Point geom.Point
	Size  geom.Size // RectItem only
	Text  string    // TextItem only
}

// Paint walks root pre-order (self, then children left to right) and
// emits one Rect per box painting a non-white background, plus one
// Text item per visual line of a text box.
func Paint(root *layout.Object) []DisplayItem {
	var items []DisplayItem
	paintNode(root, &items)
	return items
}

func paintNode(n *layout.Object, items *[]DisplayItem) {
	if n == nil {
		return
	}
	switch n.Kind {
	case layout.Block, layout.Inline:
		if bg := n.Style.BackgroundColor(); bg != style.White {
			*items = append(*items, DisplayItem{Kind: RectItem, Style: n.Style, Point: n.Point, Size: n.Size})
		}
	case layout.Text:
		*items = append(*items, textItems(n)...)
	}
	for _, c := range n.Children {
		paintNode(c, items)
	}
}

// textItems splits a text box's content into one DisplayItem per
// visual line of whole characters (ContentAreaWidth / (CharWidth*ratio)
// characters per line). A box that computeSize did not wrap is always a
// single line; for a wrapped box the number of lines emitted can be one
// more than the line count computeSize used for its height, since
// computeSize divides the pixel width rather than whole characters.
func textItems(n *layout.Object) []DisplayItem {
	ratio := fontSizeRatio(n.Style.FontSize())
	charsPerLine := geom.ContentAreaWidth / (geom.CharWidth * ratio)
	if charsPerLine <= 0 {
		charsPerLine = 1
	}
	runes := []rune(n.DOMNode.Text)
	if int64(len(runes)) <= charsPerLine {
		return []DisplayItem{{Kind: TextItem, Style: n.Style, Point: n.Point, Text: string(runes)}}
	}

	lineHeight := geom.CharHeightWithPadding * ratio
	var items []DisplayItem
	for start := int64(0); start < int64(len(runes)); start += charsPerLine {
		end := start + charsPerLine
		if end > int64(len(runes)) {
			end = int64(len(runes))
		}
		line := start / charsPerLine
		items = append(items, DisplayItem{
			Kind:  TextItem,
			Style: n.Style,
			Point: geom.Point{X: n.Point.X, Y: n.Point.Y + line*lineHeight},
			Text:  string(runes[start:end]),
		})
	}
	return items
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

// FindNodeByPosition hit-tests the layout tree at (x, y), preferring a
// descendant over its ancestor and an earlier child over a later
// sibling: the deepest, frontmost box containing the point wins.
// Boundaries are inclusive, matching the box's own point+size extent.
func FindNodeByPosition(root *layout.Object, x, y int64) *layout.Object {
	return findNode(root, x, y)
}

func findNode(n *layout.Object, x, y int64) *layout.Object {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if found := findNode(c, x, y); found != nil {
			return found
		}
	}
	if n.Point.X <= x && x <= n.Point.X+n.Size.Width &&
		n.Point.Y <= y && y <= n.Point.Y+n.Size.Height {
		return n
	}
	return nil
}
