// Package levels loads level descriptions from YAML files and Tiled maps and
// registers the built-in levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TMX.
var ErrUnsupportedFormat = errors.New("levels: unsupported file format")

// Extensions recognized by the loader, in LoadByID lookup order.
var extensions = []string{".yaml", ".yml", ".tmx"}

// Loader reads levels from a file system. It takes an fs.FS so callers can
// pass the embedded built-ins or os.DirFS for user directories.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// DirLoader creates a loader rooted at a directory on disk.
func DirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root))
}

// LoadPath loads a single level file from disk.
func LoadPath(p string) (platformer.Level, error) {
	dir, name := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return DirLoader(dir).LoadFile(name)
}

// LoadFile loads and validates one level. The format is chosen by extension.
// Levels without an explicit ID take the file name without extension.
func (l *Loader) LoadFile(name string) (platformer.Level, error) {
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))

	var (
		lvl platformer.Level
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		lvl, err = l.loadYAML(name, stem)
	case ".tmx":
		lvl, err = l.loadTMX(name, stem)
	default:
		return platformer.Level{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return platformer.Level{}, err
	}

	if err := lvl.Validate(); err != nil {
		return platformer.Level{}, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

// LoadAll walks the file system and loads every level file, sorted by ID.
// Two files declaring the same ID are an error.
func (l *Loader) LoadAll() ([]platformer.Level, error) {
	var names []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && supported(p) {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walk: %w", err)
	}

	seen := make(map[string]string, len(names))
	result := make([]platformer.Level, 0, len(names))
	for _, name := range names {
		lvl, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[lvl.ID]; dup {
			return nil, fmt.Errorf("levels: duplicate id %q in %s and %s", lvl.ID, prev, name)
		}
		seen[lvl.ID] = name
		result = append(result, lvl)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// LoadByID loads <id>.yaml, <id>.yml or <id>.tmx from the root, whichever
// exists first.
func (l *Loader) LoadByID(id string) (platformer.Level, error) {
	for _, ext := range extensions {
		name := id + ext
		if _, err := fs.Stat(l.fsys, name); err == nil {
			return l.LoadFile(name)
		}
	}
	return platformer.Level{}, fmt.Errorf("levels: no level file for %q", id)
}

func supported(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
