// Package prefs persists user preferences and the activity log.
package prefs

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/zhubert/dotide/internal/errors"
)

// Store is a small key/value persistence backend.
type Store interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// MemoryStore keeps values in a map. Used in tests and when no disk is available.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// FileStore keeps every key in a single JSON document. The whole document is
// rewritten on each save via a temp file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *FileStore) write(doc map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Load(key string) ([]byte, bool, error) {
	const op errors.Op = "prefs.FileStore.Load"
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, false, errors.E(op, errors.KindStorage, key, err)
	}
	v, ok := doc[key]
	return []byte(v), ok, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	const op errors.Op = "prefs.FileStore.Save"
	if !json.Valid(value) {
		return errors.E(op, errors.KindInvalid, key, fmt.Errorf("value is not valid JSON"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		// Corrupt documents are replaced.
		doc = make(map[string]json.RawMessage)
	}
	doc[key] = json.RawMessage(value)
	if err := s.write(doc); err != nil {
		return errors.E(op, errors.KindStorage, key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	const op errors.Op = "prefs.FileStore.Delete"
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return errors.E(op, errors.KindStorage, key, err)
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	if err := s.write(doc); err != nil {
		return errors.E(op, errors.KindStorage, key, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// SQLiteStore keeps values in a single-table SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (creating if needed) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	const op errors.Op = "prefs.OpenSQLiteStore"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.E(op, errors.KindIO, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.E(op, errors.KindStorage, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, errors.E(op, errors.KindStorage, err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func migrate(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("prefs migration failed: %w", err)
		}
	}
	return nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.E(errors.Op("prefs.SQLiteStore.Load"), errors.KindStorage, key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return errors.E(errors.Op("prefs.SQLiteStore.Save"), errors.KindStorage, key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return errors.E(errors.Op("prefs.SQLiteStore.Delete"), errors.KindStorage, key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Open returns the store for backend ("json" or "sqlite") rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", "json":
		return NewFileStore(filepath.Join(dir, "prefs.json")), nil
	case "sqlite":
		s, err := OpenSQLiteStore(filepath.Join(dir, "prefs.sqlite"))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.E(errors.Op("prefs.Open"), errors.KindConfig, fmt.Errorf("unknown store backend %q", backend))
	}
}
