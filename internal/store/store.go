package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"shared-data/internal/logger"
	"shared-data/internal/models"
)

// DefaultPath is the document location used when none is configured.
const DefaultPath = "data.json"

// Store persists a single Record as a flat JSON object.
// It assumes one process is the only writer.
type Store struct {
	path   string
	logger logger.Logger
}

func New(path string, log logger.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the stored record. A missing document yields the default record;
// an unreadable or malformed one is a *ReadError.
func (s *Store) Load() (models.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Store", "no stored record, using defaults", map[string]interface{}{
			"path": s.path,
		})
		return models.NewRecord(), nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	record := models.Record{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	if record == nil {
		// a literal "null" document
		return nil, &ReadError{Path: s.path, Err: errors.New("document is not an object")}
	}
	record.Normalize()

	s.logger.Debug("Store", "record loaded", map[string]interface{}{
		"path":   s.path,
		"fields": len(record),
	})
	return record, nil
}

// Save replaces the stored document with record. The bytes are written to a
// temporary sibling first and renamed into place, so a failed save never
// truncates the previous document.
func (s *Store) Save(record models.Record) error {
	out := record.Clone()
	out.Normalize()

	data, err := json.Marshal(out)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	s.logger.Debug("Store", "record saved", map[string]interface{}{
		"path":  s.path,
		"bytes": len(data),
	})
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Chmod(perm); err != nil {
		return cleanup(fmt.Errorf("chmod temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
