// Package canvas accumulates linear color samples in a fixed-size pixel grid
// and serializes it as a plain-text PPM (P3) image.
//
// A Canvas is a plain mutable value without internal locking. Fill it from a
// single goroutine, then encode it; reads (ToPPM, At) may run concurrently
// as long as no write is in flight.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/tigleym/ray-tracer/tuple"
)

// MaxColorValue is the largest channel value a canvas stores.
const MaxColorValue = 255

// bytes per pixel: r, g, b
const bpp = 3

type Canvas struct {
	width  int
	height int
	// pix holds the display values. The pixel at (x, y) starts at
	// pix[(y*width + x)*3].
	pix []uint8
}

var _ image.Image = (*Canvas)(nil)

// New allocates a width by height canvas with every pixel black.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/bpp/height {
		return nil, fmt.Errorf("%w: %dx%d overflows the pixel buffer", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*bpp),
	}, nil
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) offset(x, y int) int {
	return (y*c.width + x) * bpp
}

// WritePixel stores col at column x, row y. Row 0 is the first row of the
// encoded image; flipping the vertical axis is up to the caller.
func (c *Canvas) WritePixel(x, y int, col tuple.Color) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.set(c.offset(x, y), scale(col.R), scale(col.G), scale(col.B))
	return nil
}

// PixelAt returns the display values stored at column x, row y.
func (c *Canvas) PixelAt(x, y int) (r, g, b uint8, err error) {
	if !c.inBounds(x, y) {
		return 0, 0, 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	i := c.offset(x, y)
	return c.pix[i], c.pix[i+1], c.pix[i+2], nil
}

// Fill writes col to every pixel.
func (c *Canvas) Fill(col tuple.Color) {
	r, g, b := scale(col.R), scale(col.G), scale(col.B)
	for i := 0; i < len(c.pix); i += bpp {
		c.set(i, r, g, b)
	}
}

func (c *Canvas) set(i int, r, g, b uint8) {
	c.pix[i+0] = r
	c.pix[i+1] = g
	c.pix[i+2] = b
}

// scale maps a linear channel to its display value: the scaled value is
// clamped to [0, 255] and rounded up, so 0.5 becomes 128.
func scale(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Ceil(min(max(v*MaxColorValue, 0), MaxColorValue)))
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image. Pixels are opaque; points outside the canvas
// return the zero color.
func (c *Canvas) At(x, y int) color.Color {
	if !c.inBounds(x, y) {
		return color.RGBA{}
	}
	i := c.offset(x, y)
	return color.RGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: 0xFF}
}

// FromImage copies img into a new canvas. Channels are reduced to 8 bits;
// translucent pixels keep their alpha-premultiplied values.
func FromImage(img image.Image) (*Canvas, error) {
	b := img.Bounds()
	c, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			rgba := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			c.set(c.offset(x, y), rgba.R, rgba.G, rgba.B)
		}
	}
	return c, nil
}
