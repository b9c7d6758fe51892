// SPDX-License-Identifier: MPL-2.0

package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"devcon-cli/internal/console"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
)

const (
	// StateCreated indicates the server has been created but not started.
	StateCreated ServerState = iota
	// StateRunning indicates the server is accepting connections.
	StateRunning
	// StateStopped indicates the server has stopped (terminal state).
	StateStopped
	// StateFailed indicates the server failed to start (terminal state).
	StateFailed
)

type (
	// ServerState represents the lifecycle state of the server.
	ServerState int32

	// Config holds immutable configuration for the console server.
	Config struct {
		// Host is the address to bind to (default: 127.0.0.1).
		Host string
		// Port is the port to listen on (0 = auto-select).
		Port int
		// ShutdownTimeout bounds graceful shutdown (default: 10s).
		ShutdownTimeout time.Duration
		// Console builds the per-session console options. The session's
		// reader and writer are supplied by the server.
		Console console.Options
	}

	// Server serves the developer console over SSH. An instance is
	// single-use: once stopped or failed, create a new one.
	Server struct {
		cfg    Config
		logger *log.Logger

		state atomic.Int32

		mu       sync.Mutex
		srv      *ssh.Server
		listener net.Listener
		addr     string

		wg sync.WaitGroup
	}
)

// String returns a human-readable representation of the server state.
func (s ServerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            0,
		ShutdownTimeout: 10 * time.Second,
	}
}

// New creates a console server. Call Start to begin accepting connections.
func New(cfg Config) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{
		cfg:    cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "devcon-ssh"}),
	}
	s.state.Store(int32(StateCreated))
	return s
}

// Start binds the listener and begins serving sessions. It returns once
// the server is accepting connections or has failed.
func (s *Server) Start(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		return fmt.Errorf("cannot start server in state %s", ServerState(s.state.Load()))
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		s.state.Store(int32(StateFailed))
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithMiddleware(
			activeterm.Middleware(),
			s.consoleMiddleware(),
		),
	)
	if err != nil {
		_ = listener.Close() //nolint:errcheck // cleanup on error path
		s.state.Store(int32(StateFailed))
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.mu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.serve(listener)

	s.logger.Info("console server started", "address", s.addr)
	return nil
}

// Addr returns the bound address, valid after a successful Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// State returns the current lifecycle state.
func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

// Stop gracefully stops the server, waiting for open sessions up to the
// shutdown timeout. Safe to call more than once.
func (s *Server) Stop() error {
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateStopped)) {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(shutdownCtx)
		if err != nil && isClosedConnError(err) {
			err = nil
		}
	}
	s.wg.Wait()
	s.logger.Info("console server stopped")
	return err
}

func (s *Server) serve(listener net.Listener) {
	defer s.wg.Done()
	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, ssh.ErrServerClosed) && !isClosedConnError(err) {
		s.logger.Error("serve error", "err", err)
		s.state.Store(int32(StateFailed))
	}
}

// consoleMiddleware runs the console loop over the SSH session's stream.
func (s *Server) consoleMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.logger.Info("session opened", "user", sess.User(), "remote", sess.RemoteAddr())
			opts := s.cfg.Console
			opts.Logger = s.logger
			c := console.New(opts)
			if err := c.Run(sess.Context(), sess, sess); err != nil {
				s.logger.Warn("session ended with error", "err", err)
			}
			s.logger.Info("session closed", "user", sess.User())
			next(sess)
		}
	}
}

func isClosedConnError(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) || errors.Is(err, net.ErrClosed)
}
