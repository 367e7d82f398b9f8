package output

import (
	"image"

	"github.com/tigleym/ray-tracer/canvas"

	"golang.org/x/image/draw"
)

// upscale enlarges c by an integer factor. Nearest neighbour keeps every
// source pixel a solid block so the PPM stays exact.
func upscale(c *canvas.Canvas, factor int) (*canvas.Canvas, error) {
	srcBounds := c.Bounds()
	destBounds := image.Rect(0, 0, srcBounds.Dx()*factor, srcBounds.Dy()*factor)

	dest := image.NewRGBA(destBounds)
	draw.NearestNeighbor.Scale(dest, destBounds, c, srcBounds, draw.Src, nil)

	return canvas.FromImage(dest)
}
