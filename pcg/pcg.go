/*
Package pcg implements an encoder and decoder for the Sharp X1 Programmable
Character Generator (PCG) format.

Each character is an 8 by 8 glyph held as three 1-bit planes. Every glyph
row is stored as three bytes in the order blue, red and green, the leftmost
pixel being the most significant bit, so a glyph is 24 bytes. A full set
of 256 characters is 6144 bytes. There is no header or other metadata.
*/
package pcg

import "errors"

const (
	glyphWidth  = 8
	glyphHeight = glyphWidth
	planes      = 3
	rowBytes    = planes
	glyphBytes  = glyphHeight * rowBytes
	maxGlyphs   = 256
	maxBytes    = maxGlyphs * glyphBytes

	// Glyphs per row when rendering a decoded set, as the X1 preview does
	glyphsPerRow = 16
	pixelX       = glyphsPerRow * glyphWidth

	threshold = 0x7f
)

var (
	// ErrBadSize is returned when the image dimensions are not a positive
	// multiple of 8
	ErrBadSize = errors.New("pcg: image dimensions are not a multiple of 8")

	// ErrTooManyGlyphs is returned when the image needs more than 256
	// character codes
	ErrTooManyGlyphs = errors.New("pcg: too many glyphs")
)
