// Package style computes a ComputedStyle for each DOM node by cascading
// matching CSSOM declarations in source order and then defaulting any
// property the cascade left unresolved.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukehoban/browser/css"
	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/herr"
)

// DisplayType is the resolved CSS display value.
type DisplayType int

const (
	Block DisplayType = iota
	Inline
	DisplayNone
)

// ParseDisplay resolves a CSS display keyword.
func ParseDisplay(s string) (DisplayType, error) {
	switch s {
	case "block":
		return Block, nil
	case "inline":
		return Inline, nil
	case "none":
		return DisplayNone, nil
	default:
		return 0, herr.New(herr.UnexpectedInput, fmt.Sprintf("display %q is not supported", s))
	}
}

// FontSize is the resolved font-size keyword; the engine has no CSS
// font-size property support, only the per-tag default.
type FontSize int

const (
	Medium FontSize = iota
	XLarge
	XXLarge
)

// TextDecoration is the resolved text-decoration keyword.
type TextDecoration int

const (
	NoDecoration TextDecoration = iota
	Underline
)

// Color is a CSS color, tracked by both its canonical name (if any) and
// its 6-hex-digit code.
type Color struct {
	Name string
	Code string // "#rrggbb", lowercase
}

var colorTable = []struct{ name, code string }{
	{"black", "#000000"}, {"silver", "#c0c0c0"}, {"gray", "#808080"}, {"white", "#ffffff"},
	{"maroon", "#800000"}, {"red", "#ff0000"}, {"purple", "#800080"}, {"fuchsia", "#ff00ff"},
	{"green", "#008000"}, {"lime", "#00ff00"}, {"olive", "#808000"}, {"yellow", "#ffff00"},
	{"navy", "#000080"}, {"blue", "#0000ff"}, {"teal", "#008080"}, {"aqua", "#00ffff"},
	{"orange", "#ffa500"}, {"lightgray", "#d3d3d3"},
}

// White and Black are the two initial colors (background and foreground).
var White = Color{Name: "white", Code: "#ffffff"}
var Black = Color{Name: "black", Code: "#000000"}

// ColorFromName resolves a CSS color keyword. On failure, per the error
// handling policy, callers fall back to White (background) or Black
// (foreground) rather than failing the cascade.
func ColorFromName(name string) (Color, bool) {
	for _, c := range colorTable {
		if c.name == name {
			return Color{Name: c.name, Code: c.code}, true
		}
	}
	return Color{}, false
}

// ColorFromHex resolves a "#rrggbb" code, recovering the canonical name
// when it matches the fixed palette (and leaving Name empty otherwise —
// arbitrary hex colors are still valid, just unnamed).
func ColorFromHex(code string) (Color, bool) {
	if len(code) != 7 || code[0] != '#' {
		return Color{}, false
	}
	code = strings.ToLower(code)
	for _, c := range colorTable {
		if c.code == code {
			return Color{Name: c.name, Code: c.code}, true
		}
	}
	return Color{Code: code}, true
}

// RGB decodes the color's hex code into its 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(c.Code, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// ComputedStyle holds the fully-resolved style properties used by layout
// and paint. Every field is meaningful only after Default has run.
type ComputedStyle struct {
	backgroundColor *Color
	color           *Color
	display         *DisplayType
	fontSize        *FontSize
	textDecoration  *TextDecoration
	width           *float64
	height          *float64
}

func (s *ComputedStyle) SetBackgroundColor(c Color)         { s.backgroundColor = &c }
func (s *ComputedStyle) SetColor(c Color)                   { s.color = &c }
func (s *ComputedStyle) SetDisplay(d DisplayType)           { s.display = &d }
func (s *ComputedStyle) SetFontSize(f FontSize)             { s.fontSize = &f }
func (s *ComputedStyle) SetTextDecoration(d TextDecoration) { s.textDecoration = &d }
func (s *ComputedStyle) SetWidth(w float64)                 { s.width = &w }
func (s *ComputedStyle) SetHeight(h float64)                { s.height = &h }

func (s *ComputedStyle) BackgroundColor() Color         { return *s.backgroundColor }
func (s *ComputedStyle) Color() Color                   { return *s.color }
func (s *ComputedStyle) Display() DisplayType           { return *s.display }
func (s *ComputedStyle) FontSize() FontSize             { return *s.fontSize }
func (s *ComputedStyle) TextDecoration() TextDecoration { return *s.textDecoration }
func (s *ComputedStyle) Width() float64                 { return *s.width }
func (s *ComputedStyle) Height() float64                { return *s.height }

// matchesSelector reports whether sel applies to node, per the simplified
// matching rules: TypeSelector compares tag names; ClassSelector/
// IdSelector compare a single attribute by equality (no class-list
// splitting); UnknownSelector never matches.
func matchesSelector(sel css.Selector, node *dom.Node) bool {
	if node.Kind != dom.ElementKind {
		return false
	}
	switch sel.Kind {
	case css.TypeSelector:
		return node.Tag.String() == sel.Name
	case css.ClassSelector:
		return node.GetAttribute("class") == sel.Name
	case css.IdSelector:
		return node.GetAttribute("id") == sel.Name
	default:
		return false
	}
}

// Cascade applies every declaration of every rule in sheet whose selector
// matches node, in source order, to a fresh ComputedStyle.
func Cascade(node *dom.Node, sheet *css.StyleSheet) *ComputedStyle {
	s := &ComputedStyle{}
	if sheet == nil {
		return s
	}
	for _, rule := range sheet.Rules {
		if !matchesSelector(rule.Selector, node) {
			continue
		}
		for _, decl := range rule.Declarations {
			applyDeclaration(s, decl)
		}
	}
	return s
}

func applyDeclaration(s *ComputedStyle, decl css.Declaration) {
	switch decl.Property {
	case "background-color":
		if c, ok := colorFromToken(decl.Value); ok {
			s.SetBackgroundColor(c)
		} else {
			s.SetBackgroundColor(White)
		}
	case "color":
		if c, ok := colorFromToken(decl.Value); ok {
			s.SetColor(c)
		} else {
			s.SetColor(Black)
		}
	case "display":
		if decl.Value.Kind == css.Ident {
			if d, err := ParseDisplay(decl.Value.Ident); err == nil {
				s.SetDisplay(d)
			}
		}
	}
	// unsupported properties are stored nowhere and simply ignored.
}

func colorFromToken(tok css.Token) (Color, bool) {
	switch tok.Kind {
	case css.Ident:
		return ColorFromName(tok.Ident)
	case css.HashToken:
		return ColorFromHex("#" + tok.Ident)
	default:
		return Color{}, false
	}
}

// Default fills every unresolved property of s, inheriting from parent
// when the parent's own resolved value differs from that property's
// initial value, then falling back to the initial value.
func Default(s *ComputedStyle, node *dom.Node, parent *ComputedStyle) {
	if parent != nil {
		if s.backgroundColor == nil && parent.BackgroundColor() != White {
			s.SetBackgroundColor(parent.BackgroundColor())
		}
		if s.color == nil && parent.Color() != Black {
			s.SetColor(parent.Color())
		}
		if s.fontSize == nil && parent.FontSize() != Medium {
			s.SetFontSize(parent.FontSize())
		}
		if s.textDecoration == nil && parent.TextDecoration() != NoDecoration {
			s.SetTextDecoration(parent.TextDecoration())
		}
	}

	if s.backgroundColor == nil {
		s.SetBackgroundColor(White)
	}
	if s.color == nil {
		s.SetColor(Black)
	}
	if s.display == nil {
		s.SetDisplay(defaultDisplay(node))
	}
	if s.fontSize == nil {
		s.SetFontSize(defaultFontSize(node))
	}
	if s.textDecoration == nil {
		s.SetTextDecoration(defaultTextDecoration(node))
	}
	if s.width == nil {
		s.SetWidth(0)
	}
	if s.height == nil {
		s.SetHeight(0)
	}
}

func defaultDisplay(node *dom.Node) DisplayType {
	switch node.Kind {
	case dom.DocumentKind:
		return Block
	case dom.ElementKind:
		switch node.Tag {
		case dom.Html, dom.Body, dom.P, dom.H1, dom.H2:
			return Block
		default:
			return Inline
		}
	default: // TextKind
		return Inline
	}
}

func defaultFontSize(node *dom.Node) FontSize {
	if node.Kind != dom.ElementKind {
		return Medium
	}
	switch node.Tag {
	case dom.H1:
		return XXLarge
	case dom.H2:
		return XLarge
	default:
		return Medium
	}
}

func defaultTextDecoration(node *dom.Node) TextDecoration {
	if node.IsElement(dom.A) {
		return Underline
	}
	return NoDecoration
}
