package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
)

// Game adapts a World to the platform's game loop: config loading, pause,
// restart and rendering.
type Game struct {
	level      Level
	world      *World
	cfg        config.PlatformerConfig
	runtime    core.RuntimeConfig
	configPath string
	preset     config.Preset
	logger     *log.Logger
	paused     bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfigPath loads configuration from a specific YAML file.
func WithConfigPath(path string) Option {
	return func(g *Game) { g.configPath = path }
}

// WithPreset applies a physics preset on top of the loaded config.
func WithPreset(p config.Preset) Option {
	return func(g *Game) { g.preset = p }
}

// WithLogger sets the logger used for lifecycle and gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game for the given level. Call Reset before stepping.
func New(level Level, opts ...Option) *Game {
	g := &Game{
		level:  level,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the level identifier, used as the score key.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.level.Name != "" {
		return g.level.Name
	}
	return g.level.ID
}

// Reset loads configuration and rebuilds the world from the level.
// Every entity returns to its startup state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, src, err := config.LoadPlatformer(g.configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "path", g.configPath, "error", err)
		cfg, src = config.DefaultPlatformerConfig(), config.SourceBuiltin
	}
	if err := cfg.Validate(); err != nil {
		g.logger.Warn("invalid config, using defaults", "source", src, "error", err)
		cfg, src = config.DefaultPlatformerConfig(), config.SourceBuiltin
	}

	if g.preset != "" {
		config.ApplyPreset(&cfg, g.preset)
	}
	cfg.Physics = cfg.Physics.ScaledTo(runtime.TickRate)
	g.cfg = cfg

	g.world = NewWorld(g.level, cfg)
	g.paused = false

	g.logger.Debug("level reset",
		"level", g.level.ID,
		"config", src,
		"preset", g.preset,
		"tick_rate", runtime.TickRate,
		"platforms", len(g.level.Platforms),
		"tokens", len(g.level.Tokens),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	wasCleared := g.world.Cleared()
	res := g.world.Tick(IntentFromFrame(in))

	if len(res.Collected) > 0 {
		body := g.world.Body()
		for _, i := range res.Collected {
			g.logger.Debug("token collected", "token", i, "score", g.world.Score(), "at", body.Bounds().Pos())
		}
	}
	if res.Respawned {
		g.logger.Debug("body respawned", "tick", g.world.Ticks())
	}
	if !wasCleared && g.world.Cleared() {
		g.logger.Info("level cleared", "level", g.level.ID, "score", g.world.Score(), "ticks", g.world.Ticks())
	}

	return core.StepResult{
		State:     g.State(),
		Collected: len(res.Collected),
		Respawned: res.Respawned,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.world.Score(),
		Paused:  g.paused,
		Cleared: g.world.Cleared(),
		Tick:    g.world.Ticks(),
	}
}

// Snapshot returns a read-only view of the world for renderers.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	snap := g.world.Snapshot()
	snap.Paused = g.paused
	return snap
}

// Config returns the effective configuration after presets and rescaling.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}
