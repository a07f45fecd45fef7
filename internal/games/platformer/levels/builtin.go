package levels

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
	"github.com/vovakirdan/retro-platformer/internal/registry"
)

//go:embed data
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]platformer.Level, error) {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		return nil, err
	}
	embedded, err := NewLoader(sub).LoadAll()
	if err != nil {
		return nil, err
	}
	return append([]platformer.Level{platformer.Meadow()}, embedded...), nil
}

func init() {
	all, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, lvl := range all {
		registry.Register(lvl.ID, func() platformer.Level { return lvl.Clone() })
	}
}
