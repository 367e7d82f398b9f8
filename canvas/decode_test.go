package canvas_test

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigleym/ray-tracer/canvas"
	"github.com/tigleym/ray-tracer/tuple"
)

func TestDecodePPM_RoundTrip(t *testing.T) {
	src, err := canvas.New(30, 4)
	require.NoError(t, err)
	for y := range src.Height() {
		for x := range src.Width() {
			col := tuple.Color{R: float64(x) / 30, G: float64(y) / 4, B: 0.5}
			require.NoError(t, src.WritePixel(x, y, col))
		}
	}

	ppm := src.ToPPM()
	got, err := canvas.DecodePPM(strings.NewReader(ppm))
	require.NoError(t, err)
	assert.Equal(t, ppm, got.ToPPM())
}

func TestDecodePPM_CommentsAndLayout(t *testing.T) {
	in := "P3 # plain\n# size follows\n2 1\n#max\n15\n15 0 0   0 15\n\t7\n"
	c, err := canvas.DecodePPM(strings.NewReader(in))
	require.NoError(t, err)

	r, g, b, err := c.PixelAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b, err = c.PixelAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{0, 255, 119}, [3]uint8{r, g, b})
}

func TestDecodePPM_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", canvas.ErrMalformedPPM},
		{"BinaryMagic", "P6\n1 1\n255\n", canvas.ErrMalformedPPM},
		{"ZeroWidth", "P3\n0 1\n255\n", canvas.ErrInvalidDimensions},
		{"BadNumber", "P3\n1 x\n255\n", canvas.ErrMalformedPPM},
		{"MaxValueRange", "P3\n1 1\n70000\n0 0 0\n", canvas.ErrMalformedPPM},
		{"Truncated", "P3\n2 1\n255\n1 2 3 4\n", canvas.ErrMalformedPPM},
		{"SampleTooLarge", "P3\n1 1\n255\n256 0 0\n", canvas.ErrMalformedPPM},
		{"NegativeSample", "P3\n1 1\n255\n-1 0 0\n", canvas.ErrMalformedPPM},
		{"SizeOverflow", "P3\n3037000500 3037000500\n255\n0 0 0\n", canvas.ErrMalformedPPM},
		{"OverPixelLimit", "P3\n100000 100000\n255\n0 0 0\n", canvas.ErrMalformedPPM},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := canvas.DecodePPM(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecode_RegisteredFormat(t *testing.T) {
	c, err := canvas.New(3, 2)
	require.NoError(t, err)
	c.Fill(tuple.White)
	data := []byte(c.ToPPM())

	conf, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "ppm", format)
	assert.Equal(t, 3, conf.Width)
	assert.Equal(t, 2, conf.Height)

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "ppm", format)
	assert.Equal(t, c.At(2, 1), img.At(2, 1))
}
