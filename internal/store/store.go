package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"context"

	"github.com/whykushh/discord-panel-bot/internal/logger"
	"log/slog"
)

// ErrDuplicateName indicates a slash command name already exists in the store.
var ErrDuplicateName = errors.New("store: duplicate slash command name")

// TextCommand is a keyword trigger matched against incoming messages.
type TextCommand struct {
	Keyword  string `json:"keyword"`
	Response string `json:"response"`
}

// SlashCommand is a user-created slash command served from the store.
type SlashCommand struct {
	Name     string `json:"name"`
	Response string `json:"response"`
}

// Document is the whole persisted command configuration.
// TextCommands and SlashCommands are always non-nil after a Load.
type Document struct {
	TextCommands  []TextCommand  `json:"textCommands"`
	SlashCommands []SlashCommand `json:"slashCommands"`
}

// HasSlash reports whether a slash command with the given name is stored.
func (d *Document) HasSlash(name string) bool {
	for _, c := range d.SlashCommands {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Store persists the command document as a single JSON file.
// Mutations are serialized behind a single-writer lock so concurrent
// creations cannot both pass a uniqueness check against a stale snapshot.
type Store struct {
	path string
	mu   sync.Mutex
}

// New constructs a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the configured document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document, normalizing its shape. A missing file or a
// malformed document is replaced wholesale with the default shape.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (*Document, error) {
	start := time.Now()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("store load: %w", err)
		}
		doc := defaultDocument()
		if err := s.saveLocked(doc); err != nil {
			return nil, err
		}
		logger.Info(context.Background(), "store", "store.init",
			slog.String("path", s.path),
		)
		return doc, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn(context.Background(), "store", "store.reset",
			slog.String("path", s.path),
			slog.String("err", err.Error()),
		)
		fresh := defaultDocument()
		if err := s.saveLocked(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	if normalize(&doc) {
		// Persist the corrected shape so older documents are migrated once.
		if err := s.saveLocked(&doc); err != nil {
			return nil, err
		}
		logger.Info(context.Background(), "store", "store.migrate",
			slog.String("path", s.path),
		)
	}

	logger.Debug(context.Background(), "store", "store.load",
		slog.Int("count", len(doc.TextCommands)+len(doc.SlashCommands)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return &doc, nil
}

// Save replaces the whole document on disk. The write goes through a
// temp file and rename so a crash never leaves a torn document.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(doc)
}

func (s *Store) saveLocked(doc *Document) error {
	if doc == nil {
		return errors.New("store save: nil document")
	}
	normalize(doc)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store save: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store save: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".commands-*.json")
	if err != nil {
		return fmt.Errorf("store save: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("store save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store save: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store save: %w", err)
	}

	logger.Debug(context.Background(), "store", "store.save",
		slog.Int("count", len(doc.TextCommands)+len(doc.SlashCommands)),
	)
	return nil
}

// Update runs fn against the current document and persists the result.
// The whole read-modify-write cycle holds the store lock, so uniqueness
// checks inside fn observe a consistent snapshot. An error from fn aborts
// the update without touching disk.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.saveLocked(doc)
}

// AddTextCommand appends a keyword trigger.
func (s *Store) AddTextCommand(keyword, response string) error {
	return s.Update(func(doc *Document) error {
		doc.TextCommands = append(doc.TextCommands, TextCommand{Keyword: keyword, Response: response})
		return nil
	})
}

// AddSlashCommand appends a slash command, rejecting duplicate names.
func (s *Store) AddSlashCommand(name, response string) error {
	return s.Update(func(doc *Document) error {
		if doc.HasSlash(name) {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		doc.SlashCommands = append(doc.SlashCommands, SlashCommand{Name: name, Response: response})
		return nil
	})
}

func defaultDocument() *Document {
	return &Document{
		TextCommands:  []TextCommand{},
		SlashCommands: []SlashCommand{},
	}
}

// normalize fills missing collections and reports whether a fix was applied.
func normalize(doc *Document) bool {
	fixed := false
	if doc.TextCommands == nil {
		doc.TextCommands = []TextCommand{}
		fixed = true
	}
	if doc.SlashCommands == nil {
		doc.SlashCommands = []SlashCommand{}
		fixed = true
	}
	return fixed
}
