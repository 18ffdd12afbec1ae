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
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/registry"
	"github.com/vovakirdan/letterfall/internal/storage"
)

// SSHServerConfig configures remote play over SSH.
type SSHServerConfig struct {
	// Address to listen on, host:port.
	Address string

	// HostKeyPath points at the server host key. Empty means a key is
	// generated under ~/.letterfall/host_key on first start.
	HostKeyPath string

	// DBPath locates the shared runs database.
	DBPath string

	// IdleTimeout disconnects sessions with no activity.
	IdleTimeout time.Duration
}

// normalize fills zero-valued fields with defaults.
func (c *SSHServerConfig) normalize() {
	if c.Address == "" {
		c.Address = ":23234"
	}
	if c.DBPath == "" {
		c.DBPath = "~/.letterfall/runs.db"
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 30 * time.Minute
	}
}

// SSHServer serves letterfall over SSH via Wish. Every session gets its
// own game instance seeded from the connect time, so concurrent players
// never share simulation state. Runs from all sessions land in one
// database, which makes the scoreboard a shared leaderboard.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer builds a server from cfg. A missing runs database is
// logged and tolerated; sessions then play without persistence.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	cfg.normalize()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "letterfall-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("runs database unavailable, playing without persistence", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.sessionHandler),
			srv.logSessions,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath returns the host key location, creating the parent
// directory so wish can generate a key there if none exists.
func resolveHostKeyPath(explicit string) (string, error) {
	path := explicit
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory for host key: %w", err)
		}
		path = filepath.Join(home, ".letterfall", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create host key directory: %w", err)
	}
	return path, nil
}

// sessionHandler builds a Bubble Tea program for one SSH session.
func (s *SSHServer) sessionHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, hasPTY := sess.Pty()
	if !hasPTY {
		s.logger.Warn("rejecting session without PTY", "user", sess.User())
		return nil, nil
	}

	game, err := registry.Create("letterfall")
	if err != nil {
		s.logger.Error("create game", "error", err)
		return nil, nil
	}

	model := NewModel(game, s.store, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe runs the server until SIGINT/SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("listening", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions and closes the runs database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
