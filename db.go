package imgbin

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a sqlite database of previous conversions keyed by the SHA-1 of
// the source file, so unchanged images aren't converted twice across runs.
type Store struct {
	db *sql.DB
}

// Conversion is a stored conversion.
type Conversion struct {
	Width  int
	Height int
	Data   []byte
}

// NewStore opens or creates the database in file.
func NewStore(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

func checksum(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Find returns the conversion stored for the given checksum, or nil if there
// isn't one.
func (s *Store) Find(sha string) (*Conversion, error) {
	var c Conversion
	switch err := s.db.QueryRow("SELECT width, height, data FROM conversion WHERE sha1 = ?", sha).Scan(&c.Width, &c.Height, &c.Data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &c, nil
	default:
		return nil, err
	}
}

// Add stores a conversion. An existing entry for the checksum is kept.
func (s *Store) Add(sha string, c *Conversion) error {
	if _, err := s.db.Exec("INSERT OR IGNORE INTO conversion (sha1, width, height, data) VALUES (?, ?, ?, ?)", sha, c.Width, c.Height, c.Data); err != nil {
		return err
	}
	return nil
}

// Len returns the number of stored conversions.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
