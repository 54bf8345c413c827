package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/story-editor/internal/adapters/http"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	return ln
}

func TestNewServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{"127.0.0.1", "127.0.0.1:9090"},
		{"", ":9090"},
		{"::1", "[::1]:9090"},
	}
	for _, tt := range tests {
		s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: 9090}, http.NotFoundHandler(), nil)
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr() for host %q = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := adapthttp.NewServer(config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}, handler, discardLogger())

	ln := listen(t)
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health/live")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Serve() error after cancel = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestServer_DrainsInFlightRequests(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		time.Sleep(100 * time.Millisecond)
		_, _ = io.WriteString(w, "finished")
	})
	s := adapthttp.NewServer(config.ServerConfig{}, handler, discardLogger())

	ln := listen(t)
	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, ln) }()

	type result struct {
		body string
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err != nil {
			resCh <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		resCh <- result{body: string(b), err: err}
	}()

	<-started
	cancel()

	res := <-resCh
	if res.err != nil || res.body != "finished" {
		t.Errorf("in-flight request = (%q, %v), want (finished, nil)", res.body, res.err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Serve() error = %v", err)
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())
	if err := s.Run(t.Context()); err == nil {
		t.Fatal("Run() on a busy port error = nil, want error")
	}
}
