// Package raster is an optional debug renderer: it rasterizes a page's
// display items to a PNG, for visually inspecting what the engine
// painted without a real windowing toolkit.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lukehoban/browser/geom"
	"github.com/lukehoban/browser/paint"
	"github.com/lukehoban/browser/style"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a fixed-size RGBA pixel surface.
type Canvas struct {
	Width, Height int
	Pixels        []color.RGBA
}

// NewCanvas creates a Canvas filled with white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, Pixels: make([]color.RGBA, width*height)}
	c.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return c
}

// Clear fills the whole canvas with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.Pixels {
		c.Pixels[i] = bg
	}
}

func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.Pixels[y*c.Width+x] = col
	}
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(x, y, width, height int, col color.RGBA) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.setPixel(x+dx, y+dy, col)
		}
	}
}

// DrawText draws text at (x, y) in col using a fixed 7x13 bitmap font,
// scaled by ratio (the same font-size ratio layout/paint use).
func (c *Canvas) DrawText(text string, x, y int, col color.RGBA, ratio int) {
	if ratio < 1 {
		ratio = 1
	}
	face := basicfont.Face7x13
	img := image.NewRGBA(image.Rect(0, 0, len(text)*face.Advance, face.Height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(face.Ascent)},
	}
	drawer.DrawString(text)

	bounds := img.Bounds()
	for dy := 0; dy < bounds.Dy()*ratio; dy++ {
		for dx := 0; dx < bounds.Dx()*ratio; dx++ {
			_, _, _, a := img.At(dx/ratio, dy/ratio).RGBA()
			if a == 0 {
				continue
			}
			c.setPixel(x+dx, y+dy, col)
		}
	}
}

func (c *Canvas) toImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.Set(x, y, c.Pixels[y*c.Width+x])
		}
	}
	return img
}

// SavePNG writes the canvas to filename as a PNG.
func (c *Canvas) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(file, c.toImage()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func rgba(col style.Color) color.RGBA {
	r, g, b := col.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func fontRatio(f style.FontSize) int {
	switch f {
	case style.XLarge:
		return 2
	case style.XXLarge:
		return 3
	default:
		return 1
	}
}

// Render draws items onto a window-sized canvas and returns it.
func Render(items []paint.DisplayItem) *Canvas {
	canvas := NewCanvas(int(geom.WindowWidth), int(geom.WindowHeight))
	for _, item := range items {
		switch item.Kind {
		case paint.RectItem:
			canvas.FillRect(int(item.Point.X), int(item.Point.Y), int(item.Size.Width), int(item.Size.Height), rgba(item.Style.BackgroundColor()))
		case paint.TextItem:
			ratio := fontRatio(item.Style.FontSize())
			canvas.DrawText(item.Text, int(item.Point.X), int(item.Point.Y)+13*ratio, rgba(item.Style.Color()), ratio)
		}
	}
	return canvas
}
