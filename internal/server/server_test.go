package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               ":8080",
		"5000":           ":5000",
		":5000":          ":5000",
		"127.0.0.1:5000": "127.0.0.1:5000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteTimeoutExceedsUpstream(t *testing.T) {
	for _, up := range []time.Duration{0, time.Second, 30 * time.Second, 2 * time.Minute} {
		got := WriteTimeout(up)
		if got <= readTimeout+up {
			t.Fatalf("WriteTimeout(%s) = %s, must exceed body read plus upstream", up, got)
		}
	}
}

func TestShutdownWithoutRun(t *testing.T) {
	s := &Server{}
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunAndShutdown(t *testing.T) {
	s := New(Options{Port: "127.0.0.1:0", UpstreamTimeout: time.Second}, http.NotFoundHandler())
	if s.Addr() != "127.0.0.1:0" {
		t.Fatalf("unexpected addr %s", s.Addr())
	}
	if s.httpServer.WriteTimeout <= time.Second {
		t.Fatalf("write timeout %s must exceed upstream", s.httpServer.WriteTimeout)
	}

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	// Shutdown before or after ListenAndServe starts both end Run cleanly
	time.Sleep(20 * time.Millisecond)
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after shutdown")
	}
}
