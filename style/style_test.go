package style

import (
	"testing"

	"github.com/lukehoban/browser/css"
	"github.com/lukehoban/browser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeAppliesMatchingTypeSelector(t *testing.T) {
	body := dom.NewElement(dom.Body, nil)
	sheet := css.ParseStyleSheet(`body { display: none; }`)

	s := Cascade(body, sheet)
	require.NotNil(t, s)
	require.NotNil(t, s.display)
	assert.Equal(t, DisplayNone, s.Display())
}

func TestDefaultingInitialsByTag(t *testing.T) {
	h1 := dom.NewElement(dom.H1, nil)
	s := Cascade(h1, nil)
	Default(s, h1, nil)

	assert.Equal(t, Block, s.Display())
	assert.Equal(t, XXLarge, s.FontSize())
	assert.Equal(t, NoDecoration, s.TextDecoration())
	assert.Equal(t, White, s.BackgroundColor())
	assert.Equal(t, Black, s.Color())
}

func TestDefaultingAnchorGetsUnderline(t *testing.T) {
	a := dom.NewElement(dom.A, nil)
	s := Cascade(a, nil)
	Default(s, a, nil)
	assert.Equal(t, Underline, s.TextDecoration())
	assert.Equal(t, Inline, s.Display())
}

func TestDefaultingInheritsNonInitialParentValues(t *testing.T) {
	parentStyle := &ComputedStyle{}
	parentStyle.SetColor(mustColor(t, "red"))
	Default(parentStyle, dom.NewElement(dom.Body, nil), nil)

	child := dom.NewElement(dom.P, nil)
	childStyle := Cascade(child, nil)
	Default(childStyle, child, parentStyle)

	assert.Equal(t, mustColor(t, "red"), childStyle.Color())
}

func TestColorFromHexRecoversName(t *testing.T) {
	c, ok := ColorFromHex("#ff0000")
	require.True(t, ok)
	assert.Equal(t, "red", c.Name)
}

func TestColorFromNameUnknownFails(t *testing.T) {
	_, ok := ColorFromName("chartreuse")
	assert.False(t, ok)
}

func mustColor(t *testing.T, name string) Color {
	t.Helper()
	c, ok := ColorFromName(name)
	require.True(t, ok)
	return c
}
