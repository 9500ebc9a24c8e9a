package pcg

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Layout controls how the rows of each group of eight image rows are
// serialised.
type Layout int

const (
	// CharacterLayout writes each 8 by 8 block as one contiguous glyph,
	// left to right then top to bottom. The character code of a block is
	// its row group multiplied by the number of column groups, plus its
	// column group. This is the layout the X1 loads.
	CharacterLayout Layout = iota

	// RowLayout writes the eight interleaved rows of each group one
	// after another, each row spanning the full image width. For images
	// 8 pixels wide this is identical to CharacterLayout.
	RowLayout
)

func (l Layout) String() string {
	switch l {
	case CharacterLayout:
		return "char"
	case RowLayout:
		return "row"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout returns the Layout named by s, either "char" or "row".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "char", "character", "":
		return CharacterLayout, nil
	case "row":
		return RowLayout, nil
	}
	return CharacterLayout, fmt.Errorf("pcg: unknown layout %q", s)
}

func rowAt(m image.Image, y int) []color.NRGBA {
	b := m.Bounds()
	row := make([]color.NRGBA, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		row = append(row, color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA))
	}
	return row
}

func interleaveRow(row []color.NRGBA) []byte {
	return Interleave(Plane(row, Blue), Plane(row, Red), Plane(row, Green))
}

// Pack converts m to PCG data using layout l. It performs no validation;
// if the height is not a multiple of 8 the final group simply has fewer
// rows and if the width is not a multiple of 8 the final byte of each
// plane holds fewer bits.
func Pack(m image.Image, l Layout) []byte {
	b := m.Bounds()
	out := make([]byte, 0, ((b.Dx()+glyphWidth-1)/glyphWidth)*b.Dy()*rowBytes)

	for y := b.Min.Y; y < b.Max.Y; y += glyphHeight {
		group := make([][]byte, 0, glyphHeight)
		for dy := y; dy < y+glyphHeight && dy < b.Max.Y; dy++ {
			group = append(group, interleaveRow(rowAt(m, dy)))
		}

		switch l {
		case RowLayout:
			for _, row := range group {
				out = append(out, row...)
			}
		default:
			// Transpose so each column of triples becomes one glyph
			for x := 0; x < len(group[0]); x += rowBytes {
				for _, row := range group {
					out = append(out, row[x:x+rowBytes]...)
				}
			}
		}
	}

	return out
}

// Encoder configures encoding PCG data.
type Encoder struct {
	Layout Layout
}

// glyphs returns how many character codes the image occupies. With
// RowLayout each group of eight rows is one code regardless of width.
func (enc *Encoder) glyphs(b image.Rectangle) int {
	if enc.Layout == RowLayout {
		return b.Dy() / glyphHeight
	}
	return (b.Dx() / glyphWidth) * (b.Dy() / glyphHeight)
}

// Encode writes the Image m to w in PCG format.
func (enc *Encoder) Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx()%glyphWidth != 0 || b.Dy()%glyphHeight != 0 {
		return ErrBadSize
	}
	if enc.glyphs(b) > maxGlyphs {
		return ErrTooManyGlyphs
	}

	_, err := w.Write(Pack(m, enc.Layout))
	return err
}

// Encode writes the Image m to w in PCG format using CharacterLayout.
func Encode(w io.Writer, m image.Image) error {
	var e Encoder
	return e.Encode(w, m)
}
