// pkg/jsonstore/store.go
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// ErrNoChange can be returned from an Update function to signal that the
// document was not modified; the store then skips the write entirely.
var ErrNoChange = errors.New("jsonstore: no change")

const DefaultFileMode = os.FileMode(0o644)

// Document is the entire persisted state. Every mutation reads the whole
// document, applies one change and writes the whole document back.
type Document struct {
	Menu         []models.MenuItem          `json:"menu"`
	Categories   []models.Category          `json:"categories"`
	Orders       []models.Order             `json:"orders"`
	SalesHistory []models.SalesHistoryRecord `json:"salesHistory"`
}

// normalize replaces nil collections with empty slices so older documents
// without a salesHistory field (or hand-edited ones) load cleanly and
// marshal back as [] instead of null.
func (d *Document) normalize() {
	if d.Menu == nil {
		d.Menu = []models.MenuItem{}
	}
	if d.Categories == nil {
		d.Categories = []models.Category{}
	}
	if d.Orders == nil {
		d.Orders = []models.Order{}
	}
	if d.SalesHistory == nil {
		d.SalesHistory = []models.SalesHistoryRecord{}
	}
}

type Config struct {
	Path     string
	FileMode os.FileMode
}

// DefaultConfig returns a store configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "data/database.json",
		FileMode: DefaultFileMode,
	}
}

// Store owns the durable JSON document. All access goes through View and
// Update, which hold the mutex for the full read-modify-write cycle; this
// is the serializing gate that keeps concurrent requests from interleaving
// partial states.
type Store struct {
	mu     sync.Mutex
	path   string
	mode   os.FileMode
	logger *logger.Logger
}

// Open prepares the store, creating the data directory and seeding an
// empty document when the file does not exist yet.
func Open(config Config, log *logger.Logger) (*Store, error) {
	if config.Path == "" {
		config.Path = DefaultConfig().Path
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}

	log.Info("Opening JSON document store", "path", config.Path)

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Failed to create data directory", "dir", dir, "error", err)
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &Store{
		path:   config.Path,
		mode:   config.FileMode,
		logger: log.WithComponent("jsonstore"),
	}

	if _, err := os.Stat(config.Path); errors.Is(err, os.ErrNotExist) {
		doc := &Document{}
		doc.normalize()
		if err := s.write(doc); err != nil {
			log.Error("Failed to seed empty document", "path", config.Path, "error", err)
			return nil, fmt.Errorf("failed to seed empty document: %w", err)
		}
		s.logger.Info("Seeded empty document", "path", config.Path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat store file: %w", err)
	}

	return s, nil
}

// View runs fn with a read-only snapshot of the document.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn with the current document and persists the result in one
// atomic replace. When fn returns ErrNoChange nothing is written and Update
// returns nil; any other error aborts the cycle before the write.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		if errors.Is(err, ErrNoChange) {
			s.logger.Debug("Update produced no change, skipping write")
			return nil
		}
		return err
	}

	return s.write(doc)
}

// HealthCheck verifies the document can be read and parsed.
func (s *Store) HealthCheck() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.read(); err != nil {
		s.logger.Error("Store health check failed", "error", err)
		return err
	}
	return nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Close exists for symmetry with connection-style stores; the file is only
// held open during individual reads and writes.
func (s *Store) Close() error {
	return nil
}

func (s *Store) read() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}

	doc.normalize()
	return doc, nil
}

// write marshals the document and replaces the backing file via a temp
// file and rename, so readers never observe a half-written document.
func (s *Store) write(doc *Document) error {
	doc.normalize()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, s.mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	return nil
}
