// Package convert loads an existing image into a canvas and writes it back
// out, for example to turn a PNG into plain-text PPM or the reverse.
package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/output"
	"github.com/tigleym/ray-tracer/parallel"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	In string `help:"Source image (ppm, png, jpeg, gif, bmp, tiff, webp)" required:"" type:"existingfile"`
	output.Options
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	in, err := filepath.Abs(c.In)
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.In, err)
	}
	c.In = in
	return c.Options.Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	cv, err := Load(c.In)
	if err != nil {
		return err
	}
	return output.Save(worker, wait, cv, c.Options)
}

// Load decodes the image at path into a canvas.
func Load(path string) (*canvas.Canvas, error) {
	logger := slog.Default().With("file", path)

	imgFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	logger.Info("decoded", "format", imgType, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if cv, ok := img.(*canvas.Canvas); ok {
		return cv, nil
	}
	return canvas.FromImage(img)
}
