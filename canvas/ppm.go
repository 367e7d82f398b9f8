package canvas

import (
	"strconv"
	"strings"
)

const (
	ppmMagic = "P3"
	// maxLineLength is the PPM limit on characters per physical line.
	maxLineLength = 70
)

// ToPPM encodes the canvas as plain-text PPM: a three line header followed
// by one or more lines per row. No body line is longer than 70 characters
// and the output ends with a single newline.
func (c *Canvas) ToPPM() string {
	// "255 " per channel is the worst case
	body := make([]byte, 0, len(c.pix)*4)
	stride := c.width * bpp
	for y := 0; y < c.height; y++ {
		body = appendRow(body, c.pix[y*stride:(y+1)*stride])
	}

	var b strings.Builder
	b.Grow(len(ppmMagic) + 32 + len(body))
	b.WriteString(ppmMagic)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(c.width))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(c.height))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(MaxColorValue))
	b.WriteByte('\n')

	b.Write(body)

	return b.String()
}

// appendRow appends one row of channel values to buf. Each token counts its
// digits plus one separator against the current line; once the count goes
// over maxLineLength the separator before the token becomes a newline and
// the token opens the next line.
func appendRow(buf []byte, row []uint8) []byte {
	var digits [3]byte
	lineLen := 0
	for i, v := range row {
		tok := strconv.AppendUint(digits[:0], uint64(v), 10)
		lineLen += len(tok) + 1
		if lineLen > maxLineLength {
			// never at the start of a row, so the last byte is a separator
			buf[len(buf)-1] = '\n'
			// the opening token counts against the new line; restarting
			// from zero would let a wide row produce 71-character lines
			lineLen = len(tok) + 1
		}
		buf = append(buf, tok...)
		if i == len(row)-1 {
			buf = append(buf, '\n')
		} else {
			buf = append(buf, ' ')
		}
	}
	return buf
}
