package bank

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyph(v byte) []byte {
	return bytes.Repeat([]byte{v}, GlyphSize)
}

func TestSet(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Length())

	require.NoError(t, b.Set(10, glyph(0xaa)))
	assert.Equal(t, 11, b.Length())
	assert.Equal(t, glyph(0xaa), b.Glyph(10))
	assert.Equal(t, glyph(0x00), b.Glyph(9))

	require.NoError(t, b.Set(2, glyph(0x55)))
	assert.Equal(t, 11, b.Length())

	assert.Equal(t, errLength, b.Set(0, make([]byte, GlyphSize-1)))
}

func TestGlyphIsCopy(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(0, glyph(0x01)))

	g := b.Glyph(0)
	g[0] = 0xff
	assert.Equal(t, glyph(0x01), b.Glyph(0))
}

func TestAppend(t *testing.T) {
	b := New()
	require.NoError(t, b.Append(append(glyph(1), glyph(2)...)))
	require.NoError(t, b.Append(glyph(3)))
	assert.Equal(t, 3, b.Length())
	assert.Equal(t, glyph(3), b.Glyph(2))

	assert.Equal(t, errLength, b.Append(make([]byte, 25)))
	assert.Error(t, b.Append(make([]byte, 254*GlyphSize)))
	require.NoError(t, b.Append(make([]byte, 253*GlyphSize)))
	assert.Equal(t, 256, b.Length())
}

func TestMarshalBinary(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(255, glyph(0xff)))

	p, err := b.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, p, Size)
	assert.Equal(t, make([]byte, Size-GlyphSize), p[:Size-GlyphSize])
	assert.Equal(t, glyph(0xff), p[Size-GlyphSize:])

	p, err = New().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, p, Size)
}

func TestUnmarshalBinary(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(200, glyph(0x12)))

	require.NoError(t, b.UnmarshalBinary(append(glyph(0x34), glyph(0x56)...)))
	assert.Equal(t, 2, b.Length())
	assert.Equal(t, glyph(0x56), b.Glyph(1))
	assert.Equal(t, glyph(0x00), b.Glyph(200))

	assert.Error(t, b.UnmarshalBinary(make([]byte, Size+GlyphSize)))
	assert.Equal(t, errLength, b.UnmarshalBinary(make([]byte, 30)))
}

func TestRoundTrip(t *testing.T) {
	in := make([]byte, Size)
	for i := range in {
		in[i] = byte(i * 7)
	}

	b := New()
	require.NoError(t, b.UnmarshalBinary(in))
	assert.Equal(t, 256, b.Length())

	out, err := b.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
