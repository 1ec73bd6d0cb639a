package escapetime

import (
	"fmt"
	"image"
	"image/color"
)

// Color is an opaque 24-bit colour with one byte per channel.
type Color struct {
	R, G, B uint8
}

// Black marks points inside the set under every palette.
var Black = Color{}

// Pack returns the colour as 0xRRGGBB.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack is the inverse of Pack. Bits above the low 24 are ignored.
func Unpack(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Pack())
}

// Image is a dense row-major buffer of colours, one per pixel.
//
// It satisfies image.Image so it can be handed to any encoder; alpha is
// always fully opaque.
type Image struct {
	Width, Height int
	Pix           []Color
}

// NewImage allocates a black image. Both dimensions must be positive.
func NewImage(width, height int) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}, nil
}

// Row returns the pixels of row y. The slice aliases the image.
func (m *Image) Row(y int) []Color {
	return m.Pix[y*m.Width : (y+1)*m.Width]
}

// ColorAt returns the colour at (x, y). Out-of-range coordinates yield Black.
func (m *Image) ColorAt(x, y int) Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Black
	}
	return m.Pix[y*m.Width+x]
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (m *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = c
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := range m.Pix {
		m.Pix[i] = c
	}
}

// RGBAt returns the channels at (x, y) without boxing a color.Color.
// Raster writers use it as a fast path.
func (m *Image) RGBAt(x, y int) (r, g, b uint8) {
	c := m.ColorAt(x, y)
	return c.R, c.G, c.B
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.RGBA{}
	}
	c := m.Pix[y*m.Width+x]
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Opaque reports that every pixel is fully opaque.
func (m *Image) Opaque() bool { return true }
