// Package background supplies camera-feed frames for the software host from
// still images on disk.
package background

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrEmpty is returned when a directory holds no supported images.
var ErrEmpty = errors.New("background: no images")

// Source yields the background image for a frame index. Frame i uses image
// i modulo the number of images, so a short clip loops.
type Source struct {
	paths []string

	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// Open builds a Source from a single image file or a directory of images
// (sorted by name, case-insensitive).
func Open(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if !info.IsDir() {
		if !supported(path) {
			return nil, fmt.Errorf("background: unknown extension: %s", filepath.Ext(path))
		}
		return newSource([]string{path}), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmpty, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		return strings.ToLower(paths[i]) < strings.ToLower(paths[j])
	})
	return newSource(paths), nil
}

func newSource(paths []string) *Source {
	return &Source{paths: paths, items: make(map[string]*cacheEntry)}
}

// Len returns the number of distinct images.
func (s *Source) Len() int { return len(s.paths) }

// Path returns the file backing frame i.
func (s *Source) Path(i int) string {
	n := len(s.paths)
	return s.paths[((i%n)+n)%n]
}

// Frame decodes (once) and returns the image for frame i. Safe for
// concurrent use; returned images must not be modified.
func (s *Source) Frame(i int) (*image.NRGBA, error) {
	path := s.Path(i)

	// Fast path: read lock
	s.mu.RLock()
	if entry, ok := s.items[path]; ok {
		s.mu.RUnlock()
		return entry.img, entry.err
	}
	s.mu.RUnlock()

	img, err := LoadImage(path)

	// Write lock with double-check
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.items[path]; ok {
		return entry.img, entry.err
	}
	s.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}
