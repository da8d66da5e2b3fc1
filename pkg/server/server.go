package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	ws "github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/getmockd/wsmock/pkg/logging"
	"github.com/getmockd/wsmock/pkg/stub"
)

// Default listen configuration.
const (
	DefaultAddress = "127.0.0.1"
	DefaultPort    = 8080
	DefaultPath    = "/"
)

// Option configures a Server.
type Option func(*Server)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(s *Server) { s.address = addr }
}

// WithPort sets the listen port. Port 0 binds an ephemeral port; Port and URL
// report the bound one.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithPath restricts upgrades to one request path. The default "/" accepts
// any path.
func WithPath(path string) Option {
	return func(s *Server) { s.path = path }
}

// WithLogger sets the logger. Logging is disabled when absent.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// Server is a programmable WebSocket mock server. Register stubs before or
// after Start; every accepted connection is driven from the shared registry.
type Server struct {
	address string
	port    int
	path    string
	log     *slog.Logger

	registry *stub.Registry

	mu       sync.Mutex
	listener net.Listener
	httpSrv  *http.Server
	cancel   context.CancelFunc
	baseCtx  context.Context
	sessions sync.WaitGroup
}

// New creates a Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{
		address:  DefaultAddress,
		port:     DefaultPort,
		path:     DefaultPath,
		log:      logging.Nop(),
		registry: stub.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends a stub to the registry. Registration always succeeds,
// even after Stop; the stub is simply unreachable then.
func (s *Server) Register(st *stub.Stub) {
	s.registry.Register(st)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.address
}

// Port returns the bound port after Start, the configured port before.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
			return addr.Port
		}
	}
	return s.port
}

// URL returns the ws:// URL test clients dial.
func (s *Server) URL() string {
	path := s.path
	if path == "/" {
		path = ""
	}
	return fmt.Sprintf("ws://%s%s", net.JoinHostPort(s.address, strconv.Itoa(s.Port())), path)
}

// Start binds the listener and begins accepting connections in the
// background. A bind failure is returned; everything after that only affects
// individual connections.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(s.address, strconv.Itoa(s.port)))
	if err != nil {
		return fmt.Errorf("bind %s:%d: %w", s.address, s.port, err)
	}
	s.listener = ln

	s.baseCtx, s.cancel = context.WithCancel(context.Background())
	s.httpSrv = &http.Server{
		Handler: s,
		// Accept errors and handler panics surface here instead of
		// tearing the server down.
		ErrorLog: slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Debug("listener closed", "error", err)
		}
	}()

	port := s.port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.log.Info("server started", "addr", s.address, "port", port)
	return nil
}

// Stop closes the listener, ends live sessions, and waits for their
// goroutines, bounded by ctx.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.listener == nil {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.cancel()
	httpSrv := s.httpSrv
	s.mu.Unlock()

	_ = httpSrv.Close()

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("server stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ServeHTTP upgrades an incoming request and runs its session. net/http
// already gives every connection its own goroutine.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.path != "/" && r.URL.Path != s.path {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	headers := captureHeaders(r)

	conn, err := ws.Accept(w, r, &ws.AcceptOptions{
		InsecureSkipVerify: true, // Allow any origin for mocking
		CompressionMode:    ws.CompressionDisabled,
	})
	if err != nil {
		s.log.Debug("handshake failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	id := uuid.NewString()
	s.log.Debug("session opened", "session", id, "remote", r.RemoteAddr)

	s.sessions.Add(1)
	defer s.sessions.Done()

	newSession(id, conn, headers, s.registry, s.log).run(s.baseCtx)

	s.log.Debug("session closed", "session", id)
}

// captureHeaders copies the handshake request headers into a plain map with
// lowercased keys, the form stub header matchers are keyed by.
func captureHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = v[0]
		}
	}
	return headers
}
