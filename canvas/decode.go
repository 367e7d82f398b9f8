package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

func init() {
	image.RegisterFormat("ppm", ppmMagic, Decode, DecodeConfig)
}

// Decode reads a plain-text PPM image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	c, err := DecodePPM(r)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeConfig returns the color model and dimensions of a plain-text PPM
// image without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := decoder{br: bufio.NewReader(r)}
	if err := d.decodeHeader(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}

// MaxDecodePixels bounds the size of images DecodePPM accepts, so a header
// alone cannot make it allocate an arbitrarily large canvas.
const MaxDecodePixels = 1 << 26

// DecodePPM parses plain-text PPM data into a new canvas. Comments and any
// whitespace layout are accepted; samples are rescaled to 8 bits when the
// maximum value is not 255. Images over MaxDecodePixels are rejected.
func DecodePPM(r io.Reader) (*Canvas, error) {
	d := decoder{br: bufio.NewReader(r)}
	if err := d.decodeHeader(); err != nil {
		return nil, err
	}
	if d.width > MaxDecodePixels/d.height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrMalformedPPM, d.width, d.height, MaxDecodePixels)
	}

	c, err := New(d.width, d.height)
	if err != nil {
		return nil, err
	}

	for i := range c.pix {
		v, err := d.nextInt()
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if v > d.maxVal {
			return nil, fmt.Errorf("%w: sample %d value %d exceeds maximum %d", ErrMalformedPPM, i, v, d.maxVal)
		}
		if d.maxVal == MaxColorValue {
			c.pix[i] = uint8(v)
		} else {
			c.pix[i] = uint8((v*MaxColorValue + d.maxVal/2) / d.maxVal)
		}
	}
	return c, nil
}

type decoder struct {
	br *bufio.Reader

	// from header
	width  int
	height int
	maxVal int
}

func (d *decoder) decodeHeader() error {
	magic, err := d.nextToken()
	if err != nil {
		return err
	}
	if string(magic) != ppmMagic {
		return fmt.Errorf("%w: unsupported magic number %q", ErrMalformedPPM, magic)
	}

	if d.width, err = d.nextInt(); err != nil {
		return fmt.Errorf("width: %w", err)
	}
	if d.height, err = d.nextInt(); err != nil {
		return fmt.Errorf("height: %w", err)
	}
	if d.maxVal, err = d.nextInt(); err != nil {
		return fmt.Errorf("maximum value: %w", err)
	}

	if d.width <= 0 || d.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, d.width, d.height)
	}
	if d.maxVal < 1 || d.maxVal > 65535 {
		return fmt.Errorf("%w: maximum value %d out of range", ErrMalformedPPM, d.maxVal)
	}
	return nil
}

func (d *decoder) nextInt() (int, error) {
	tok, err := d.nextToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(tok))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformedPPM, tok)
	}
	return v, nil
}

// nextToken returns the next whitespace separated token, skipping comments
// that run from '#' to the end of the line.
func (d *decoder) nextToken() ([]byte, error) {
	var tok []byte
	for {
		b, err := d.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(tok) > 0 {
					return tok, nil
				}
				return nil, fmt.Errorf("%w: unexpected end of data", ErrMalformedPPM)
			}
			return nil, err
		}

		switch {
		case b == '#':
			if len(tok) > 0 {
				return tok, d.br.UnreadByte()
			}
			if _, err := d.br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(tok) > 0 {
				return tok, nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
