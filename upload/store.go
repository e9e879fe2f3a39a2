// Package upload keeps an in-memory registry of validated image and video
// files, keyed by the version-5 UUID of their content.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gobeaver/inputkit/filevalidator"
	"github.com/gobeaver/inputkit/uuidvalidator"
	"github.com/gobwas/glob"
	"github.com/google/uuid"
)

// Record describes one accepted upload
type Record struct {
	ID         uuid.UUID
	Path       string
	Kind       filevalidator.Classification
	Size       int64
	Checksum   uint64
	UploadedAt time.Time
}

// IsVideo reports whether the upload was classified as a video
func (r Record) IsVideo() bool {
	return r.Kind == filevalidator.Video
}

// Config holds configuration for the store
type Config struct {
	// Namespace scopes the UUIDs derived from file content
	Namespace uuid.UUID

	// CheckExtension requires the file name to match the detected type
	CheckExtension bool

	// MaxSize is the largest accepted file in bytes (0 = unlimited)
	MaxSize int64

	// URLBase prefixes links returned by URL
	URLBase string
}

// Store is a concurrency-safe registry of uploads
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
	cfg     Config
	now     func() time.Time
}

// New creates an empty store
func New(cfg Config) *Store {
	return &Store{
		records: make(map[uuid.UUID]*Record),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Upload validates the file at path and registers it under the UUID derived
// from its content. A file whose content is already registered is rejected
// with ErrExist, whatever its path.
func (s *Store) Upload(ctx context.Context, path string) (Record, error) {
	select {
	case <-ctx.Done():
		return Record{}, ctx.Err()
	default:
	}

	kind, err := filevalidator.ValidateFile(path, s.cfg.CheckExtension)
	if err != nil {
		return Record{}, &PathError{Op: "upload", Path: path, Err: err}
	}
	if kind == filevalidator.Invalid {
		return Record{}, &PathError{Op: "upload", Path: path, Err: ErrInvalidContent}
	}

	data, err := s.readFile(path)
	if err != nil {
		return Record{}, &PathError{Op: "upload", Path: path, Err: err}
	}

	rec := &Record{
		ID:         uuidvalidator.Derive(s.cfg.Namespace, data),
		Path:       path,
		Kind:       kind,
		Size:       int64(len(data)),
		Checksum:   ChecksumBytes(data),
		UploadedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.records[rec.ID]; exists {
		return *existing, &PathError{Op: "upload", Path: path, Err: ErrExist}
	}
	s.records[rec.ID] = rec

	return *rec, nil
}

// readFile reads path, refusing files over the configured size
func (s *Store) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if s.cfg.MaxSize > 0 {
		r = io.LimitReader(f, s.cfg.MaxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxSize > 0 && int64(len(data)) > s.cfg.MaxSize {
		return nil, fmt.Errorf("%w (max: %d bytes)", ErrTooLarge, s.cfg.MaxSize)
	}
	return data, nil
}

// Get returns the upload registered under id. Malformed ids fail with
// ErrInvalidID before the registry is consulted.
func (s *Store) Get(id string) (Record, error) {
	key, err := uuidvalidator.ParseUUID(id)
	if err != nil {
		return Record{}, &PathError{Op: "get", Path: id, Err: ErrInvalidID}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[key]
	if !exists {
		return Record{}, &PathError{Op: "get", Path: id, Err: ErrNotExist}
	}
	return *rec, nil
}

// Verify re-reads the file behind id and checks it still has the content the
// id was derived from.
func (s *Store) Verify(ctx context.Context, id string) (Record, error) {
	select {
	case <-ctx.Done():
		return Record{}, ctx.Err()
	default:
	}

	rec, err := s.Get(id)
	if err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(rec.Path)
	if err != nil {
		return rec, &PathError{Op: "verify", Path: rec.Path, Err: err}
	}

	// The checksum is a cheap first pass; the uuid binding is authoritative.
	if ChecksumBytes(data) != rec.Checksum || !uuidvalidator.ValidateFileUUID(s.cfg.Namespace, data, rec.ID) {
		return rec, &PathError{Op: "verify", Path: rec.Path, Err: ErrContentChanged}
	}
	return rec, nil
}

// URL returns the public link of the upload registered under id
func (s *Store) URL(id string) (string, error) {
	rec, err := s.Get(id)
	if err != nil {
		return "", err
	}

	dir := "images"
	if rec.IsVideo() {
		dir = "videos"
	}
	return s.cfg.URLBase + "/" + dir + "/" + strings.TrimLeft(filepath.ToSlash(rec.Path), "/"), nil
}

// List returns the uploads whose path matches a glob pattern, sorted by path.
// Supports patterns like "**/*.jpg", "*.mov" or "photos/*"; an empty pattern
// matches everything.
func (s *Store) List(pattern string) ([]Record, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		g, err = glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if g != nil && !g.Match(filepath.ToSlash(rec.Path)) {
			continue
		}
		out = append(out, *rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}

// Len returns the number of registered uploads
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
