package x1pcg

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/bodgit/x1pcg/bank"
	"github.com/bodgit/x1pcg/pcg"
	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/draw"
)

const outputMode = 0644

// writeFile writes b to a temporary file alongside file and renames it into
// place so a failure never leaves a partial file behind.
func writeFile(file string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(file), ".x1pcg-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}

	// CreateTemp uses 0600, match what os.Create would give instead
	if err := f.Chmod(outputMode); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), file)
}

func (c *Converter) encode(file string) ([]byte, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	path, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	if c.db != nil {
		id, glyphs, err := c.db.Lookup(sha, c.layout)
		if err != nil {
			return nil, err
		}
		if glyphs != nil {
			c.logger.Printf("Using cached glyphs for \"%s\", with SHA1 \"%s\"\n", file, sha)
			return glyphs, c.db.Record(path, id)
		}
	}

	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Decoded \"%s\" as %s, %dx%d\n", file, format, m.Bounds().Dx(), m.Bounds().Dy())

	buf := new(bytes.Buffer)
	e := pcg.Encoder{Layout: c.layout}
	if err := e.Encode(buf, m); err != nil {
		return nil, err
	}

	if c.db != nil {
		id, err := c.db.Add(sha, c.layout, m.Bounds().Size(), buf.Bytes())
		if err != nil {
			return nil, err
		}
		if err := c.db.Record(path, id); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// ConvertFile converts the image file to PCG format, writing the result to
// the file named by OutputName. It returns the name of the written file.
func (c *Converter) ConvertFile(file string) (string, error) {
	out := OutputName(file)
	c.progress("%s -> %s\n", file, out)

	b, err := c.encode(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}

	if err := writeFile(out, b); err != nil {
		return "", fmt.Errorf("%s: %w", out, err)
	}
	c.logger.Printf("Wrote %d glyphs to \"%s\"\n", len(b)/bank.GlyphSize, out)

	return out, nil
}

// Preview renders the PCG file as a PNG image written to out, sixteen glyphs
// to a row. If wide is set the image is doubled horizontally, matching the
// double width text mode.
func (c *Converter) Preview(file, out string, wide bool) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := pcg.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	if wide {
		r := m.Bounds()
		dst := image.NewPaletted(image.Rect(0, 0, r.Dx()*2, r.Dy()), pcg.Palette)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, r, draw.Src, nil)
		m = dst
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, m); err != nil {
		return err
	}

	if err := writeFile(out, buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	c.logger.Printf("Rendered \"%s\" to \"%s\"\n", file, out)

	return nil
}

// Merge concatenates the glyphs from each PCG file into a single full bank
// written to out.
func (c *Converter) Merge(out string, files ...string) error {
	bk := bank.New()
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		start := bk.Length()
		if err := bk.Append(b); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		c.logger.Printf("Loaded \"%s\" as characters %d to %d\n", file, start, bk.Length()-1)
	}

	b, err := bk.MarshalBinary()
	if err != nil {
		return err
	}

	return writeFile(out, b)
}
