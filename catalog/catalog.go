/*
Package catalog maintains an SQLite database of Mini-PNG files found on disk,
recording each file's dimensions, pixel type and comments.
*/
package catalog

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/bodgit/minipng"
	"github.com/cespare/xxhash/v2"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a catalog backed by an SQLite database.
type DB struct {
	db     *sql.DB
	logger *log.Logger
}

// Entry is one cataloged file.
type Entry struct {
	Path      string
	Digest    string
	Width     uint32
	Height    uint32
	PixelType minipng.PixelType
	Size      int64
	Comments  []string
}

// New opens the catalog in file, creating it if necessary.
func New(file string, logger *log.Logger) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, digest TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, pixel_type INTEGER NOT NULL, size INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS comment (image_id INTEGER NOT NULL, seq INTEGER NOT NULL, text TEXT NOT NULL, PRIMARY KEY(image_id, seq), FOREIGN KEY(image_id) REFERENCES image(id) ON DELETE CASCADE)"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.db.Close()
}

func digest(b []byte) string {
	return fmt.Sprintf("%016X", xxhash.Sum64(b))
}

// Add records f, parsed from b, under path. An existing entry for the same
// path is replaced along with its comments.
func (db *DB) Add(path string, b []byte, f *minipng.File) error {
	if f.Header == nil {
		return &minipng.MalformedFileError{Reason: minipng.ErrMissingHeader, Offset: -1, Detail: path}
	}
	h := f.Header

	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	switch err := tx.QueryRow("SELECT id FROM image WHERE path = ?", path).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO image (path, digest, width, height, pixel_type, size) VALUES (?, ?, ?, ?, ?, ?)", path, digest(b), h.Width, h.Height, h.PixelType, len(b))
		if err != nil {
			return err
		}
		if id, err = result.LastInsertId(); err != nil {
			return err
		}
	case nil:
		if _, err := tx.Exec("UPDATE image SET digest = ?, width = ?, height = ?, pixel_type = ?, size = ? WHERE id = ?", digest(b), h.Width, h.Height, h.PixelType, len(b), id); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM comment WHERE image_id = ?", id); err != nil {
			return err
		}
	default:
		return err
	}

	for i, c := range f.Comments {
		if _, err := tx.Exec("INSERT INTO comment (image_id, seq, text) VALUES (?, ?, ?)", id, i, c.Text); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (db *DB) comments(id int64) ([]string, error) {
	rows, err := db.db.Query("SELECT text FROM comment WHERE image_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		comments = append(comments, text)
	}
	return comments, rows.Err()
}

// Find returns the entry for path, or nil if there isn't one.
func (db *DB) Find(path string) (*Entry, error) {
	var id int64
	var e Entry
	switch err := db.db.QueryRow("SELECT id, path, digest, width, height, pixel_type, size FROM image WHERE path = ?", path).Scan(&id, &e.Path, &e.Digest, &e.Width, &e.Height, &e.PixelType, &e.Size); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		comments, err := db.comments(id)
		if err != nil {
			return nil, err
		}
		e.Comments = comments
		return &e, nil
	default:
		return nil, err
	}
}

// List returns every entry ordered by path.
func (db *DB) List() ([]Entry, error) {
	rows, err := db.db.Query("SELECT id, path, digest, width, height, pixel_type, size FROM image ORDER BY path")
	if err != nil {
		return nil, err
	}

	var ids []int64
	var entries []Entry
	for rows.Next() {
		var id int64
		var e Entry
		if err := rows.Scan(&id, &e.Path, &e.Digest, &e.Width, &e.Height, &e.PixelType, &e.Size); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// The connection is released before the comments are queried
	for i, id := range ids {
		comments, err := db.comments(id)
		if err != nil {
			return nil, err
		}
		entries[i].Comments = comments
	}

	return entries, nil
}
