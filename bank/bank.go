/*
Package bank implements a full Sharp X1 PCG character bank, the 6144 byte
file loaded onto the machine to redefine all 256 characters at once.
*/
package bank

import (
	"errors"
	"fmt"
)

const (
	// GlyphSize is the size in bytes of each glyph
	GlyphSize = 24

	// Size is the size in bytes of a marshalled bank
	Size = maxGlyphs * GlyphSize

	maxGlyphs = 256
)

var errLength = errors.New("bank: incorrect glyph length")

// Bank holds one glyph per character code. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Bank struct {
	glyphs [maxGlyphs][GlyphSize]byte
	length int
}

// New returns an empty bank
func New() *Bank {
	return &Bank{}
}

// Length returns one more than the highest character code set
func (b *Bank) Length() int {
	return b.length
}

// Set stores the glyph for the given character code
func (b *Bank) Set(code byte, glyph []byte) error {
	if len(glyph) != GlyphSize {
		return errLength
	}
	copy(b.glyphs[code][:], glyph)
	if int(code) >= b.length {
		b.length = int(code) + 1
	}
	return nil
}

// Glyph returns a copy of the glyph for the given character code
func (b *Bank) Glyph(code byte) []byte {
	g := b.glyphs[code]
	return g[:]
}

// Append stores each glyph in p after the highest character code already
// set
func (b *Bank) Append(p []byte) error {
	if len(p)%GlyphSize != 0 {
		return errLength
	}
	if n := len(p) / GlyphSize; b.length+n > maxGlyphs {
		return fmt.Errorf("bank: more than %d glyphs", maxGlyphs)
	}
	for i := 0; i < len(p); i += GlyphSize {
		if err := b.Set(byte(b.length), p[i:i+GlyphSize]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinary encodes the bank into binary form and returns the result.
// Undefined glyphs are left blank so the result is always Size bytes.
func (b *Bank) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, Size)
	for i := range b.glyphs {
		out = append(out, b.glyphs[i][:]...)
	}
	return out, nil
}

// UnmarshalBinary decodes the bank from binary form. Shorter data defines
// only the leading glyphs.
func (b *Bank) UnmarshalBinary(p []byte) error {
	if len(p) > Size {
		return fmt.Errorf("bank: more than %d bytes", Size)
	}
	if len(p)%GlyphSize != 0 {
		return errLength
	}

	*b = Bank{}
	return b.Append(p)
}
