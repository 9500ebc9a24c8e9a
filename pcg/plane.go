package pcg

import "image/color"

// Channel selects one of the three colour planes.
type Channel int

// The order matches the order of the planes within a glyph row.
const (
	Blue Channel = iota
	Red
	Green
)

func (c Channel) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

func (c Channel) value(p color.NRGBA) uint8 {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	default:
		return p.B
	}
}

// Plane extracts the bit plane for channel c from a row of pixels. A
// channel value above 0x7f sets the bit. Bits are packed eight to a byte
// with the first pixel in bit 7. A trailing group of fewer than eight
// pixels is folded as is, without padding.
func Plane(row []color.NRGBA, c Channel) []byte {
	b := make([]byte, 0, (len(row)+glyphWidth-1)/glyphWidth)
	for i := 0; i < len(row); i += glyphWidth {
		var acc byte
		for j := i; j < i+glyphWidth && j < len(row); j++ {
			acc <<= 1
			if c.value(row[j]) > threshold {
				acc |= 1
			}
		}
		b = append(b, acc)
	}
	return b
}

// Interleave merges the three planes of a row into blue, red, green byte
// triples. The planes are expected to be the same length.
func Interleave(blue, red, green []byte) []byte {
	b := make([]byte, 0, len(blue)*planes)
	for i := range blue {
		b = append(b, blue[i], red[i], green[i])
	}
	return b
}
