package levels

import (
	"bytes"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
)

// levelFile is the YAML level format.
//
//	id: stairs
//	name: Stairs
//	spawn: {x: 50, y: 400}
//	platforms:
//	  - {x: 0, y: 550, w: 800, h: 50}
//	tokens:
//	  - {x: 230, y: 410}
type levelFile struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Spawn     *pointEntry  `yaml:"spawn"`
	Platforms []rectEntry  `yaml:"platforms"`
	Tokens    []pointEntry `yaml:"tokens"`
}

type rectEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type pointEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (l *Loader) loadYAML(name, stem string) (platformer.Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return platformer.Level{}, fmt.Errorf("levels: read %s: %w", name, err)
	}

	var f levelFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return platformer.Level{}, fmt.Errorf("levels: parse %s: %w", name, err)
	}

	lvl := platformer.Level{
		ID:        f.ID,
		Name:      f.Name,
		Platforms: make([]core.Bounds, 0, len(f.Platforms)),
		Tokens:    make([]core.Vec2, 0, len(f.Tokens)),
	}
	if lvl.ID == "" {
		lvl.ID = stem
	}
	if f.Spawn != nil {
		lvl.Spawn = &core.Vec2{X: f.Spawn.X, Y: f.Spawn.Y}
	}
	for _, p := range f.Platforms {
		lvl.Platforms = append(lvl.Platforms, core.NewBounds(p.X, p.Y, p.W, p.H))
	}
	for _, t := range f.Tokens {
		lvl.Tokens = append(lvl.Tokens, core.Vec2{X: t.X, Y: t.Y})
	}
	return lvl, nil
}
