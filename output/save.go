// Package output writes finished canvases to disk.
package output

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/parallel"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the accepted output formats, in kong enum form.
const Formats = "ppm,png,jpeg,gif,bmp,tiff"

type Options struct {
	Dest      string   `help:"Destination folder for rendered images" default:"."`
	Name      string   `help:"Base file name, without extension" default:"canvas"`
	Format    []string `help:"Output formats" enum:"${formats}" default:"ppm" sep:","`
	Scale     int      `help:"Integer upscale factor applied before encoding" default:"1"`
	Overwrite bool     `help:"Replace existing destination files" default:"false"`
}

func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("empty output name")
	}
	if o.Scale < 1 {
		return fmt.Errorf("invalid scale factor: %d", o.Scale)
	}
	if len(o.Format) == 0 {
		return fmt.Errorf("no output format given")
	}
	// one job per destination file
	slices.Sort(o.Format)
	o.Format = slices.Compact(o.Format)

	dest, err := filepath.Abs(o.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", o.Dest, err)
	}
	o.Dest = dest
	return nil
}

// Save encodes c once per requested format, each in its own pool job, and
// waits for all of them. The canvas must not be written while Save runs.
func Save(worker parallel.WorkerFunc, wait parallel.WaitFunc, c *canvas.Canvas, opts Options) error {
	if err := os.MkdirAll(opts.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", opts.Dest, err)
	}

	src := c
	if opts.Scale > 1 {
		var err error
		if src, err = upscale(c, opts.Scale); err != nil {
			return fmt.Errorf("could not scale canvas: %w", err)
		}
	}

	var savedCount, errCount atomic.Uint64
	for _, format := range opts.Format {
		worker(func(format string) func() {
			return func() {
				destName := fmt.Sprintf("%s.%s", opts.Name, format)
				logger := slog.Default().With("file", filepath.Join(opts.Dest, destName))

				if err := save(src, format, opts.Dest, destName, opts.Overwrite); err != nil {
					errCount.Add(1)
					logger.Error("could not save image", "error", err)
					return
				}
				logger.Info("saved", "width", src.Width(), "height", src.Height())
				savedCount.Add(1)
			}
		}(format))
	}

	wait(true)

	saved := savedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "saved", saved, "errors", errors, "total", saved+errors)

	if errors > 0 {
		return fmt.Errorf("error saving %d formats", errors)
	}
	return nil
}

func save(c *canvas.Canvas, format, destDir, destName string, overwrite bool) (err error) {
	destPath := filepath.Join(destDir, destName)
	if err = checkDest(destPath, overwrite); err != nil {
		return err
	}

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), destPath); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
			return
		}
		if defErr := os.Remove(outFile.Name()); defErr != nil {
			slog.Error("could not remove temporary destination", "name", outFile.Name(), "error", defErr)
		}
	}()

	if err = encode(outFile, c, format); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", format, destName, err)
	}

	canRename = true
	return nil
}

func encode(w io.Writer, c *canvas.Canvas, format string) error {
	var img image.Image = c
	switch format {
	case "ppm":
		_, err := io.WriteString(w, c.ToPPM())
		return err
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
