package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

// Palette
var (
	skyColor      color.Color = colornames.Skyblue
	platformColor color.Color = colornames.Saddlebrown
	tokenColor    color.Color = colornames.Gold
	playerColor   color.Color = colornames.Crimson
	hudColor      color.Color = colornames.White
	overlayColor              = color.RGBA{A: 0x80}
)

// Options configures the window front-end.
type Options struct {
	TickRate int
	FontPath string // Empty selects the bundled font
	Keyboard Keyboard
}

// Game adapts a level to ebiten.Game.
type Game struct {
	game     registry.Game
	store    *storage.Store
	logger   *log.Logger
	keys     Keyboard
	face     *text.GoTextFace
	runtime  core.RuntimeConfig
	state    core.GameState
	quitting bool
}

// NewGame prepares a level for the window loop and resets it.
// store and logger may be nil. A font that fails to load disables the HUD.
func NewGame(game registry.Game, store *storage.Store, logger *log.Logger, opts Options) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Keyboard.Pressed == nil && opts.Keyboard.JustPressed == nil {
		opts.Keyboard = DefaultKeyboard()
	}

	face, err := LoadFace(opts.FontPath, hudFontSize)
	if err != nil {
		logger.Warn("font unavailable, score display disabled", "path", opts.FontPath, "error", err)
		face = nil
	}

	g := &Game{
		game:   game,
		store:  store,
		logger: logger,
		keys:   opts.Keyboard,
		face:   face,
		runtime: core.RuntimeConfig{
			ScreenW:  core.DefaultConfig().ScreenW,
			ScreenH:  core.DefaultConfig().ScreenH,
			TickRate: opts.TickRate,
		},
	}
	g.game.Reset(g.runtime)
	g.logger.Info("level started", "level", game.ID(), "tick_rate", opts.TickRate)
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	frame := g.keys.Frame()

	switch {
	case frame.Has(core.ActionQuit):
		g.quitting = true
		return ebiten.Termination
	case frame.Has(core.ActionRestart):
		g.saveRun()
		g.game.Reset(g.runtime)
		g.state = g.game.State()
		g.logger.Info("level restarted", "level", g.game.ID())
		return nil
	}

	g.state = g.game.Step(frame).State
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	screen.Fill(skyColor)

	for _, p := range snap.Obstacles {
		fillBounds(screen, p, platformColor)
	}
	for _, t := range snap.Tokens {
		if t.Collected {
			continue
		}
		vector.FillCircle(screen, float32(t.Center.X), float32(t.Center.Y), float32(t.Radius), tokenColor, true)
	}
	fillBounds(screen, snap.Body, playerColor)

	if snap.Paused {
		vector.FillRect(screen, 0, 0, float32(snap.World.X), float32(snap.World.Y), overlayColor, false)
	}

	if g.face == nil {
		return
	}
	g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	switch {
	case snap.Paused:
		g.drawText(screen, "PAUSED", snap.World.X/2-40, snap.World.Y/2-10)
	case snap.Cleared:
		g.drawText(screen, "LEVEL CLEAR! Press R to play again", snap.World.X/2-170, 40)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return worldSize(g.game)
}

// State returns the game state as of the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

// IsQuitting reports whether the player pressed the quit key.
func (g *Game) IsQuitting() bool {
	return g.quitting
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, g.face, op)
}

// saveRun stores the current session. Runs without points are not recorded.
func (g *Game) saveRun() {
	st := g.game.State()
	if g.store == nil || st.Score <= 0 {
		return
	}
	run := storage.Run{
		LevelID: g.game.ID(),
		Score:   st.Score,
		Ticks:   st.Tick,
		Cleared: st.Cleared,
	}
	if _, err := g.store.SaveRun(run); err != nil {
		g.logger.Warn("could not save score", "level", run.LevelID, "error", err)
		return
	}
	g.logger.Info("score saved", "level", run.LevelID, "score", run.Score, "cleared", run.Cleared)
}

func fillBounds(dst *ebiten.Image, b core.Bounds, c color.Color) {
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func worldSize(game registry.Game) (int, int) {
	w := game.Snapshot().World
	if w.X <= 0 || w.Y <= 0 {
		return 800, 600
	}
	return int(w.X), int(w.Y)
}

// Run opens a window and plays the level until it is closed or Esc is pressed.
// The run is saved on exit.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, opts Options) error {
	g := NewGame(game, store, logger, opts)

	w, h := worldSize(game)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(g.runtime.TickRate)

	err := ebiten.RunGame(g)
	g.saveRun()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	g.logger.Info("window closed", "level", game.ID(), "score", g.game.State().Score)
	return nil
}
