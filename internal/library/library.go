// Package library keeps imported EQ presets in a JSON file.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-eq/dsp/eq/preset"
)

// maxRecent caps the recently-used list.
const maxRecent = 10

var (
	// ErrNotFound is returned when no entry has the requested ID.
	ErrNotFound = errors.New("library: preset not found")
	// ErrEmptyName is returned by Add for a blank name.
	ErrEmptyName = errors.New("library: empty preset name")
)

// Entry is one stored preset: the source text as submitted and the result of
// importing it.
type Entry struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Format  string        `json:"format"`
	Source  string        `json:"source"`
	Result  preset.Result `json:"result"`
	Created time.Time     `json:"created"`
}

type store struct {
	Presets      []Entry  `json:"presets"`
	RecentlyUsed []string `json:"recentlyUsed"` // MRU order
}

// Library is a preset store backed by a JSON file. It is safe for concurrent
// use.
type Library struct {
	mu    sync.RWMutex
	path  string
	store store
	now   func() time.Time
}

// Open loads the library at path. A missing file yields an empty library;
// the file is created on the first write.
func Open(path string) (*Library, error) {
	l := &Library{
		path:  path,
		store: store{Presets: []Entry{}, RecentlyUsed: []string{}},
		now:   time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &l.store); err != nil {
		return nil, fmt.Errorf("library: decode %s: %w", path, err)
	}
	if l.store.Presets == nil {
		l.store.Presets = []Entry{}
	}
	if l.store.RecentlyUsed == nil {
		l.store.RecentlyUsed = []string{}
	}
	return l, nil
}

// Path returns the backing file path.
func (l *Library) Path() string { return l.path }

// Add imports source with the given format, stores it under name and returns
// the new entry. FormatAuto is resolved to the detected format.
func (l *Library) Add(name string, format preset.Format, source string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}

	if format == preset.FormatAuto {
		format = preset.DetectFormat(source)
	}
	res, err := preset.Import(format, source)
	if err != nil {
		return Entry{}, fmt.Errorf("library: add %q: %w", name, err)
	}

	e := Entry{
		ID:      uuid.New().String(),
		Name:    name,
		Format:  format.String(),
		Source:  source,
		Result:  res,
		Created: l.now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := copyStore(l.store)
	next.Presets = append(next.Presets, e)
	if err := l.writeAtomic(next); err != nil {
		return Entry{}, err
	}
	l.store = next
	return e, nil
}

// Get returns the entry with the given ID.
func (l *Library) Get(id string) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.index(id); i >= 0 {
		return l.store.Presets[i], nil
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns all entries sorted by name, then by creation time.
func (l *Library) List() []Entry {
	l.mu.RLock()
	out := append([]Entry(nil), l.store.Presets...)
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].Created.Before(out[j].Created)
	})
	return out
}

// Delete removes the entry with the given ID and drops it from the
// recently-used list.
func (l *Library) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := copyStore(l.store)
	next.Presets = append(next.Presets[:i], next.Presets[i+1:]...)
	next.RecentlyUsed = without(next.RecentlyUsed, id)
	if err := l.writeAtomic(next); err != nil {
		return err
	}
	l.store = next
	return nil
}

// MarkUsed moves id to the front of the recently-used list, which holds at
// most 10 IDs.
func (l *Library) MarkUsed(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := copyStore(l.store)
	next.RecentlyUsed = append([]string{id}, without(next.RecentlyUsed, id)...)
	if len(next.RecentlyUsed) > maxRecent {
		next.RecentlyUsed = next.RecentlyUsed[:maxRecent]
	}
	if err := l.writeAtomic(next); err != nil {
		return err
	}
	l.store = next
	return nil
}

// Recent returns the recently-used entries, most recent first.
func (l *Library) Recent() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, len(l.store.RecentlyUsed))
	for _, id := range l.store.RecentlyUsed {
		if i := l.index(id); i >= 0 {
			out = append(out, l.store.Presets[i])
		}
	}
	return out
}

// index returns the position of id in the store or -1. Caller holds l.mu.
func (l *Library) index(id string) int {
	for i := range l.store.Presets {
		if l.store.Presets[i].ID == id {
			return i
		}
	}
	return -1
}

// writeAtomic writes s to a temp file and renames it over the library file.
// Caller holds l.mu.
func (l *Library) writeAtomic(s store) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("library: write: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("library: encode: %w", err)
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("library: write: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("library: write: %w", err)
	}
	return nil
}

func copyStore(s store) store {
	return store{
		Presets:      append([]Entry{}, s.Presets...),
		RecentlyUsed: append([]string{}, s.RecentlyUsed...),
	}
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
