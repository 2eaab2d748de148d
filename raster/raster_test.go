package raster

import (
	"image/color"
	"testing"

	"github.com/lukehoban/browser/geom"
	"github.com/lukehoban/browser/paint"
	"github.com/lukehoban/browser/style"
	"github.com/stretchr/testify/assert"
)

func TestFillRectPaintsBounds(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(2, 2, 3, 3, color.RGBA{R: 255, A: 255})
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.Pixels[2*10+2])
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c.Pixels[0])
}

func TestRenderProducesWindowSizedCanvas(t *testing.T) {
	s := &style.ComputedStyle{}
	s.SetBackgroundColor(style.Color{Name: "red", Code: "#ff0000"})
	items := []paint.DisplayItem{{Kind: paint.RectItem, Style: s, Point: geom.Point{X: 0, Y: 0}, Size: geom.Size{Width: 10, Height: 10}}}

	canvas := Render(items)
	assert.Equal(t, int(geom.WindowWidth), canvas.Width)
	assert.Equal(t, int(geom.WindowHeight), canvas.Height)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, canvas.Pixels[0])
}
