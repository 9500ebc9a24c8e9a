package pcg

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("pcg: not enough glyph data")
	errTooMuch   = errors.New("pcg: too much glyph data")
)

// Palette is the fixed eight colour X1 palette. The index of a colour is
// its blue bit, plus its red bit shifted left once, plus its green bit
// shifted left twice.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0x00, 0xff, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x00, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

func bit(b byte, x int) uint8 {
	return b >> uint(glyphWidth-1-x) & 1
}

type decoder struct {
	r io.Reader

	glyphs int

	image *image.Paletted

	// Enough to hold a full set of glyphs
	tmp [maxBytes]byte
}

func (d *decoder) height() int {
	return (d.glyphs + glyphsPerRow - 1) / glyphsPerRow * glyphHeight
}

func (d *decoder) readGlyphs() error {
	n, err := io.ReadFull(d.r, d.tmp[:])
	switch err {
	case nil:
		var extra [1]byte
		if _, err := io.ReadFull(d.r, extra[:]); err != io.EOF {
			if err != nil {
				return err
			}
			return errTooMuch
		}
	case io.EOF, io.ErrUnexpectedEOF:
	default:
		return err
	}

	if n == 0 || n%glyphBytes != 0 {
		return errNotEnough
	}
	d.glyphs = n / glyphBytes
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readGlyphs(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, pixelX, d.height()), Palette)

	for i := 0; i < d.glyphs; i++ {
		gx := i % glyphsPerRow * glyphWidth
		gy := i / glyphsPerRow * glyphHeight
		for y := 0; y < glyphHeight; y++ {
			o := i*glyphBytes + y*rowBytes
			b, r, g := d.tmp[o], d.tmp[o+1], d.tmp[o+2]
			for x := 0; x < glyphWidth; x++ {
				d.image.SetColorIndex(gx+x, gy+y, bit(b, x)|bit(r, x)<<1|bit(g, x)<<2)
			}
		}
	}

	return nil
}

// Decode reads PCG data from r and returns it as an image.Image. The glyphs
// are laid out sixteen to a row in character code order.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of PCG data without
// decoding the glyphs.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      pixelX,
		Height:     d.height(),
	}, nil
}
