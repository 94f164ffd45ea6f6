package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	maxHeaderBytes    = 1 << 20
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second // resumes arrive base64-encoded in the body
	idleTimeout       = 60 * time.Second

	// writeSlack is added on top of the upstream timeout so a 504 can still be written.
	writeSlack = 5 * time.Second
)

// Server owns the proxy's *http.Server lifecycle.
type Server struct {
	httpServer *http.Server
}

// Options tune the server for the upstream it fronts.
type Options struct {
	Port            string
	UpstreamTimeout time.Duration
}

func newHTTPServer(addr string, handler http.Handler, upstreamTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      WriteTimeout(upstreamTimeout),
		IdleTimeout:       idleTimeout,
	}
}

// WriteTimeout covers a full body read plus the upstream call it has to wait for.
// The HTTP/1 write deadline starts once headers are read, so the body read counts too.
func WriteTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = 30 * time.Second
	}
	return readTimeout + upstream + writeSlack
}

// normalizeAddr accepts "8080" or ":8080".
func normalizeAddr(port string) string {
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// New configures a server; nothing listens until Run.
func New(opts Options, handler http.Handler) *Server {
	return &Server{httpServer: newHTTPServer(normalizeAddr(opts.Port), handler, opts.UpstreamTimeout)}
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run blocks serving until Shutdown. A clean shutdown returns nil.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight relays.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
