// Package sprite loads text-art bitmaps from disk and caches them by name.
//
// A sprite file is plain text: the first line holds the logical width and
// height, the remaining lines are the art where any non-space character is a
// set pixel. The art grid is stretched to the logical size at load time so
// artwork can be drawn at whatever resolution is comfortable to edit.
package sprite

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Sprite is a parsed bitmap in logical pixels.
type Sprite struct {
	Name   string
	Width  int
	Height int
	Mask   []bool // row-major, Width*Height cells
}

// Store lazily loads sprites from a directory. Loaded sprites are cached
// forever; a Store is safe for concurrent use by multiple game sessions.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*Sprite
}

// NewStore creates a store reading sprite files from dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]*Sprite),
	}
}

// Get returns the sprite with the given name, loading <dir>/<name>.txt on
// first use.
func (s *Store) Get(name string) (*Sprite, error) {
	s.mu.RLock()
	spr, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return spr, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another session may have loaded it while we waited for the lock
	if spr, ok := s.cache[name]; ok {
		return spr, nil
	}

	path := filepath.Join(s.dir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %q: %w", name, err)
	}

	spr, err = Parse(name, string(data))
	if err != nil {
		return nil, fmt.Errorf("load sprite %q: %w", name, err)
	}

	s.cache[name] = spr
	return spr, nil
}

// Preload loads the named sprites up front so a bad file surfaces before the
// terminal is switched into raw mode.
func (s *Store) Preload(names ...string) error {
	for _, name := range names {
		if _, err := s.Get(name); err != nil {
			return err
		}
	}
	return nil
}

// Parse parses sprite file content. The first line must be
// "<width> <height>"; the rest is the art grid.
func Parse(name, content string) (*Sprite, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("sprite %q: missing art rows", name)
	}

	fields := strings.Fields(lines[0])
	if len(fields) != 2 {
		return nil, fmt.Errorf("sprite %q: header must be \"width height\", got %q", name, lines[0])
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("sprite %q: bad width: %w", name, err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("sprite %q: bad height: %w", name, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sprite %q: size %dx%d out of range", name, width, height)
	}

	// Art rows follow the header; trailing blank lines are editor artifacts
	rows := lines[1:]
	for len(rows) > 0 && strings.TrimRight(rows[len(rows)-1], " \r") == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sprite %q: empty art", name)
	}

	artWidth := 0
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, "\r")
		if len(rows[i]) > artWidth {
			artWidth = len(rows[i])
		}
	}
	if artWidth == 0 {
		return nil, fmt.Errorf("sprite %q: empty art", name)
	}
	artHeight := len(rows)

	// Stretch the art grid to logical size, nearest neighbor
	mask := make([]bool, width*height)
	for ly := 0; ly < height; ly++ {
		row := rows[ly*artHeight/height]
		for lx := 0; lx < width; lx++ {
			ax := lx * artWidth / width
			if ax < len(row) && row[ax] != ' ' {
				mask[ly*width+lx] = true
			}
		}
	}

	return &Sprite{
		Name:   name,
		Width:  width,
		Height: height,
		Mask:   mask,
	}, nil
}
