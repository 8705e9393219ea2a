// Package store manages exported templates under the cache root: slugged
// timestamped JSON exports, listing, and an LRU decode cache so repeat loads
// of the same file skip parsing.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/hashicorp/golang-lru/v2"

	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

const decodeCacheSize = 32

// Store is a templates directory rooted under the cache dir.
type Store struct {
	root  string
	now   func() time.Time
	cache *lru.Cache[string, *ir.Template]
}

// Option customises the store.
type Option func(*Store)

// WithClock overrides the timestamp source used for export names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a store rooted at the given cache directory.
func New(root string, options ...Option) (*Store, error) {
	cache, err := lru.New[string, *ir.Template](decodeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("store: cache: %w", err)
	}
	s := &Store{root: root, now: time.Now, cache: cache}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Dir returns the templates directory under the cache root.
func (s *Store) Dir() string {
	return filepath.Join(s.root, "templates")
}

// Save encodes the template into the store and returns the written path. The
// file name is the slugged template name plus an export timestamp.
func (s *Store) Save(t *ir.Template) (string, error) {
	data, err := ir.Encode(t)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return "", fmt.Errorf("store: create templates dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.json", Slug(t.Name), s.now().Format("20060102_150405"))
	path := filepath.Join(s.Dir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store: write template: %w", err)
	}
	return path, nil
}

// List returns the stored template paths sorted by file name. A store that
// has never saved anything lists empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: list templates: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(s.Dir(), entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Load reads and decodes a template file. Repeat loads of an unchanged file
// return the cached decode. Missing and unreadable paths surface as source
// errors so callers report them like any other bad input artifact.
func (s *Store) Load(path string) (*ir.Template, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &extract.SourceNotFoundError{Path: path}
		}
		return nil, &extract.SourceUnreadableError{Path: path, Err: err}
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	if t, ok := s.cache.Get(key); ok {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &extract.SourceUnreadableError{Path: path, Err: err}
	}
	t, err := ir.Decode(data)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, t)
	return t, nil
}

// Slug reduces a template name to a filename-safe identifier: letters,
// digits and spaces survive, spaces become underscores. Names with nothing
// safe left fall back to "template".
func Slug(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	slug := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if slug == "" {
		return "template"
	}
	return slug
}
