// Package store persists the item collection as a JSONL file: one
// JSON-serialized item per line. The whole collection is small enough to
// rewrite on save; writes go through a temp file and rename so a crash never
// leaves a half-written collection behind.
package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
)

// Store loads and saves an item collection.
type Store interface {
	Load() ([]item.Item, error)
	Save(items []item.Item) error
}

// JSONL is a Store backed by a single JSONL file.
type JSONL struct {
	path string
}

// NewJSONL creates a store for the collection file at path. The file does
// not need to exist yet; Load returns an empty collection for a missing file.
func NewJSONL(path string) *JSONL {
	return &JSONL{path: path}
}

// Path returns the collection file path.
func (s *JSONL) Path() string {
	return s.path
}

// Load reads every line of the collection file. A missing file is an empty
// collection, not an error.
func (s *JSONL) Load() ([]item.Item, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", s.path, err)
	}
	defer f.Close()

	var items []item.Item
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var it item.Item
		if err := json.Unmarshal(sc.Bytes(), &it); err != nil {
			return nil, fmt.Errorf("store: %s line %d: %w", s.path, line, err)
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: read %q: %w", s.path, err)
	}
	return items, nil
}

// Save rewrites the collection file with the given items. The write lands in
// a temp file in the same directory and is renamed over the target after a
// sync.
func (s *JSONL) Save(items []item.Item) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("store: mkdir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".curator-*.jsonl")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Export(tmp, items); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// Export streams items to w as JSONL, one item per line.
func Export(w io.Writer, items []item.Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("store: marshal %q: %w", it.ID, err)
		}
		data = append(data, '\n')
		if _, err := bw.Write(data); err != nil {
			return fmt.Errorf("store: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("store: flush: %w", err)
	}
	return nil
}

// ExportFile writes items to a new export file at path, creating parent
// directories as needed. An existing file is overwritten.
func ExportFile(path string, items []item.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("store: mkdir %q: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %q: %w", path, err)
	}
	if err := Export(f, items); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: sync %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: close %q: %w", path, err)
	}
	return nil
}
