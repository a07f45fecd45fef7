package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures `platformer serve`.
type SSHServerConfig struct {
	Address     string        // Listen address, host:port
	HostKeyPath string        // Generated on first start; defaults to ~/.platformer/host_key
	DBPath      string        // Score database shared by all sessions
	IdleTimeout time.Duration // Connections with no input for this long are dropped
	TickRate    int

	// Physics overrides applied to every level started on the server.
	ConfigPath string
	Preset     config.Preset

	Debug bool
}

// DefaultSSHServerConfig listens on :23234 at 60 ticks per second.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.platformer/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the level menu over SSH. Connections share only the
// score store; each one plays its own world.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server without listening. The score store is
// optional: if it cannot be opened the server runs and records nothing.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer-ssh",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores will not be saved", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	// Listed outermost last: sessions are logged, then refused without a
	// PTY, then handed to Bubble Tea.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			activeterm.Middleware(),
			srv.logSession,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists with owner-only permissions.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: host key: %w", err)
		}
		path = filepath.Join(home, ".platformer", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea model for one connection, sized to the
// client's PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logger := s.logger.With("user", sess.User())

	model := NewSessionModel(s.store, logger, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	},
		platformer.WithConfigPath(s.config.ConfigPath),
		platformer.WithPreset(s.config.Preset),
		platformer.WithLogger(logger),
	)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		who := []any{"user", sess.User(), "remote", sess.RemoteAddr().String()}
		s.logger.Info("player connected", who...)
		next(sess)
		s.logger.Info("player disconnected", append(who, "duration", time.Since(start).Round(time.Second))...)
	}
}

// ListenAndServe accepts connections until SIGINT or SIGTERM, then shuts
// down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("listener stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	s.logger.Info("shutting down", "grace", shutdownGrace)
	return s.Shutdown()
}

// Shutdown closes the listener, waits up to shutdownGrace for sessions to
// end and closes the score store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}
