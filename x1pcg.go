/*
Package x1pcg is a library for converting 8 color images into character
definitions for the Sharp X1 Programmable Character Generator.
*/
package x1pcg

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/x1pcg/pcg"
)

const (
	pngExt     = ".png"
	pcgExt     = ".PCG"
	previewExt = ".preview.png"
)

// Converter converts image files to PCG files, optionally caching the
// results.
type Converter struct {
	db     *CacheDB
	layout pcg.Layout
	logger *log.Logger

	mu  sync.Mutex
	out io.Writer
}

// New returns a Converter writing glyphs with the given layout. If dbFile is
// not empty it is opened as a cache of previous conversions.
func New(dbFile string, layout pcg.Layout, logger *log.Logger) (*Converter, error) {
	c := &Converter{
		layout: layout,
		logger: logger,
		out:    os.Stdout,
	}

	if dbFile != "" {
		db, err := NewCacheDB(dbFile)
		if err != nil {
			return nil, err
		}
		c.db = db
	}

	return c, nil
}

// SetOutput sets the destination for progress lines.
func (c *Converter) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

func (c *Converter) progress(format string, v ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, v...)
}

// Close closes the cache database, if any.
func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// CacheDB returns the cache database, or nil if caching is disabled.
func (c *Converter) CacheDB() *CacheDB {
	return c.db
}

func replaceExt(file, ext, repl string) string {
	if strings.EqualFold(filepath.Ext(file), ext) {
		return strings.TrimSuffix(file, filepath.Ext(file)) + repl
	}
	return file + repl
}

// OutputName returns the PCG filename for an image file. A .png extension
// in any case is replaced, otherwise the PCG extension is appended.
func OutputName(file string) string {
	return replaceExt(file, pngExt, pcgExt)
}

// PreviewName returns the filename used when rendering a PCG file as an
// image.
func PreviewName(file string) string {
	return replaceExt(file, pcgExt, previewExt)
}
