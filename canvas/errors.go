package canvas

import "errors"

var (
	// ErrInvalidDimensions indicates a canvas was requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas: width and height must be positive")
	// ErrOutOfBounds indicates a pixel address outside the canvas.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")
	// ErrMalformedPPM indicates PPM input that could not be parsed.
	ErrMalformedPPM = errors.New("canvas: malformed PPM data")
)
