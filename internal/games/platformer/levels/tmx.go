package levels

import (
	"fmt"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
)

// Object group names read from Tiled maps. Everything else is ignored, so
// maps can carry decorative layers.
const (
	groupPlatforms = "platforms"
	groupTokens    = "tokens"
	groupSpawn     = "spawn"
)

// loadTMX parses a Tiled map. Rectangles in the "platforms" group become
// platforms, the top-left corner of each object in "tokens" becomes a token,
// and the first object in "spawn" overrides the spawn point.
// The level name comes from the "name" property of the spawn object, or the
// file name.
func (l *Loader) loadTMX(name, stem string) (platformer.Level, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return platformer.Level{}, fmt.Errorf("levels: load TMX %s: %w", name, err)
	}

	lvl := platformer.Level{ID: stem}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, core.NewBounds(o.X, o.Y, o.Width, o.Height))
			}
		case groupTokens:
			for _, o := range og.Objects {
				lvl.Tokens = append(lvl.Tokens, core.Vec2{X: o.X, Y: o.Y})
			}
		case groupSpawn:
			if len(og.Objects) == 0 || lvl.Spawn != nil {
				continue
			}
			o := og.Objects[0]
			lvl.Spawn = &core.Vec2{X: o.X, Y: o.Y}
			lvl.Name = o.Properties.GetString("name")
		}
	}

	if lvl.Name == "" {
		lvl.Name = titleCase(stem)
	}
	return lvl, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
