package pcg

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	m := pattern(128, 128)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	d, err := Decode(b)
	require.NoError(t, err)

	pm, ok := d.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, m.Rect, pm.Rect)
	assert.Equal(t, m.Pix, pm.Pix)
}

func TestDecodeLayout(t *testing.T) {
	// 20 glyphs wrap onto a second row of sixteen
	m := pattern(160, 8)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	d, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 128, 16), d.Bounds())

	pm := d.(*image.Paletted)
	for i := 0; i < 20; i++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				want := m.ColorIndexAt(i*8+x, y)
				got := pm.ColorIndexAt(i%16*8+x, i/16*8+y)
				require.Equal(t, want, got, "glyph %d at %d,%d", i, x, y)
			}
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(bytes.NewReader(make([]byte, 24*17)))
	require.NoError(t, err)
	assert.Equal(t, 128, c.Width)
	assert.Equal(t, 16, c.Height)
	assert.Equal(t, Palette, c.ColorModel)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		err  error
	}{
		{"empty", 0, errNotEnough},
		{"short glyph", 23, errNotEnough},
		{"ragged", 24*3 + 1, errNotEnough},
		{"too much", maxBytes + 1, errTooMuch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(make([]byte, tt.n)))
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestDecodeFullSet(t *testing.T) {
	d, err := Decode(bytes.NewReader(bytes.Repeat([]byte{0xff}, maxBytes)))
	require.NoError(t, err)

	pm := d.(*image.Paletted)
	assert.Equal(t, image.Rect(0, 0, 128, 128), pm.Rect)
	for _, i := range pm.Pix {
		if i != 7 {
			t.Fatalf("pixel index %d, want 7", i)
		}
	}
}
