// Package geom holds the fixed pixel geometry shared by layout, paint,
// and the debug raster renderer.
package geom

const (
	WindowWidth   int64 = 600
	WindowHeight  int64 = 400
	WindowPadding int64 = 5

	TitleBarHeight int64 = 24
	ToolbarHeight  int64 = 26
	AddressBarHeight int64 = 20

	WindowInitXPos int64 = 30
	WindowInitYPos int64 = 50

	// ContentAreaWidth is the width available to the layout tree: the
	// window minus its left/right padding.
	ContentAreaWidth int64 = WindowWidth - WindowPadding*2

	CharWidth             int64 = 8
	CharHeight            int64 = 16
	CharHeightWithPadding int64 = CharHeight + 4
)

// Palette colors, as 0xRRGGBB values. The debug raster renderer takes its
// colors from style.Color, not from these constants.
const (
	White    uint32 = 0xffffff
	LightGrey uint32 = 0xd3d3d3
	Grey     uint32 = 0x808080
	DarkGrey uint32 = 0x5a5a5a
	Black    uint32 = 0x000000
)

// Point is a pixel coordinate within the content area.
type Point struct {
	X, Y int64
}

// Size is a pixel width/height pair.
type Size struct {
	Width, Height int64
}
