package x1pcg

import (
	"database/sql"
	"fmt"
	"image"

	"github.com/bodgit/x1pcg/pcg"
	_ "github.com/mattn/go-sqlite3"
)

// CacheDB records the PCG data produced for each distinct source image so
// unchanged images are not decoded again.
type CacheDB struct {
	db *sql.DB
}

// Entry describes a converted source file.
type Entry struct {
	Path   string
	SHA1   string
	Layout pcg.Layout
	Width  int
	Height int
	Size   int
}

// NewCacheDB opens, creating if necessary, the cache database in file.
func NewCacheDB(file string) (*CacheDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// Only one writer at a time, otherwise scanning workers hit "database is locked"
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS glyphset (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, layout INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, pcg BLOB NOT NULL, UNIQUE(sha1, layout))"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, glyphset_id INTEGER NOT NULL, FOREIGN KEY(glyphset_id) REFERENCES glyphset(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &CacheDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *CacheDB) Close() error {
	return db.db.Close()
}

// Lookup returns the id and PCG data previously stored for the source image
// with the given SHA1 and layout. A nil slice is returned if there is none.
func (db *CacheDB) Lookup(sha string, layout pcg.Layout) (int64, []byte, error) {
	var id int64
	var glyphs []byte
	switch err := db.db.QueryRow("SELECT id, pcg FROM glyphset WHERE sha1 = ? AND layout = ?", sha, int(layout)).Scan(&id, &glyphs); err {
	case sql.ErrNoRows:
		return 0, nil, nil
	case nil:
		return id, glyphs, nil
	default:
		return 0, nil, err
	}
}

// Add stores the PCG data for a source image, returning the id of the new
// or existing row.
func (db *CacheDB) Add(sha string, layout pcg.Layout, size image.Point, glyphs []byte) (int64, error) {
	// Concurrent scanning workers may race to add the same image
	if _, err := db.db.Exec("INSERT OR IGNORE INTO glyphset (sha1, layout, width, height, pcg) VALUES (?, ?, ?, ?, ?)", sha, int(layout), size.X, size.Y, glyphs); err != nil {
		return 0, err
	}

	var id int64
	if err := db.db.QueryRow("SELECT id FROM glyphset WHERE sha1 = ? AND layout = ?", sha, int(layout)).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Record associates path with a stored glyph set, replacing any previous
// association.
func (db *CacheDB) Record(path string, id int64) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO source (path, glyphset_id) VALUES (?, ?)", path, id); err != nil {
		return err
	}
	return nil
}

// List returns every recorded source file ordered by path.
func (db *CacheDB) List() ([]Entry, error) {
	rows, err := db.db.Query("SELECT s.path, g.sha1, g.layout, g.width, g.height, length(g.pcg) FROM source AS s JOIN glyphset AS g ON s.glyphset_id = g.id ORDER BY s.path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var layout int
		if err := rows.Scan(&e.Path, &e.SHA1, &layout, &e.Width, &e.Height, &e.Size); err != nil {
			return nil, err
		}
		e.Layout = pcg.Layout(layout)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
