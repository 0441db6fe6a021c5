package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pollbox/pollbox/models"
)

// Store owns the poll document persisted as one JSON file. The design is
// single-writer: each request performs a sequential read-modify-write
// cycle, and no cross-process locking is attempted.
type Store struct {
	path string
}

// Open returns a Store backed by the JSON document at path. Nothing is
// read until Load.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load returns the persisted document. A missing file is seeded with the
// default document and persisted. An unreadable or corrupt file falls back
// to the in-memory default seed without persisting, so a damaged document
// never takes the app down (degraded mode).
func (s *Store) Load() (*models.PollDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := models.DefaultDocument()
		if saveErr := s.Save(doc); saveErr != nil {
			slog.Warn("seed document could not be persisted, running in memory", "path", s.path, "error", saveErr)
		}
		return doc, nil
	}
	if err != nil {
		slog.Warn("poll document unreadable, falling back to default seed", "path", s.path, "error", err)
		return models.DefaultDocument(), nil
	}

	var doc models.PollDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("poll document corrupt, falling back to default seed", "path", s.path, "error", err)
		return models.DefaultDocument(), nil
	}
	return &doc, nil
}

// Save serializes the full document and overwrites prior state. The write
// goes to a temp file in the same directory followed by a rename, so a
// failed write never truncates the existing document.
func (s *Store) Save(doc *models.PollDocument) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return &models.StorageError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".polldata-*")
	if err != nil {
		return &models.StorageError{Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &models.StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &models.StorageError{Op: "close", Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &models.StorageError{Op: "rename", Err: err}
	}
	return nil
}

// RecordVote stamps the selection with the current time, appends it to the
// vote log, and persists. It checks non-emptiness and that the selection's
// cardinality matches the current mode; membership of each name in the
// current option list is the HTTP layer's responsibility.
func (s *Store) RecordVote(doc *models.PollDocument, sel models.Selection) (models.Vote, error) {
	if sel.Len() == 0 {
		return models.Vote{}, models.NewValidationError("selection", "at least one option is required")
	}
	if !doc.Config.EnableMultiSelect {
		if sel.Len() != 1 {
			return models.Vote{}, models.NewValidationError("selection", "exactly one option is required in single-select mode")
		}
	} else if sel.Len() > doc.Config.MaxSelections {
		return models.Vote{}, models.NewValidationError("selection", "too many options selected")
	}

	vote := models.NewVote(sel, time.Now())
	doc.Votes = append(doc.Votes, vote)
	if err := s.Save(doc); err != nil {
		return models.Vote{}, err
	}
	return vote, nil
}

// ResetVotes clears the vote log and persists. Title, password, config,
// and options are untouched.
func (s *Store) ResetVotes(doc *models.PollDocument) error {
	doc.Votes = []models.Vote{}
	return s.Save(doc)
}
