package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/acclimations/todo-backend/internal/adapters/http"
	"github.com/acclimations/todo-backend/internal/platform/config"
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
		name string
		cfg  config.ServerConfig
		want string
	}{
		{name: "ipv4", cfg: config.ServerConfig{Host: "127.0.0.1", Port: 9090}, want: "127.0.0.1:9090"},
		{name: "all interfaces", cfg: config.ServerConfig{Host: "0.0.0.0", Port: 8080}, want: "0.0.0.0:8080"},
		{name: "ipv6", cfg: config.ServerConfig{Host: "::1", Port: 8080}, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := adapthttp.NewServer(tt.cfg, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "[]")
	}), discardLogger())
	ln := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/todos")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "[]" {
		t.Errorf("body = %q, want []", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestServer_DrainsInFlightRequests(t *testing.T) {
	t.Parallel()

	arrived := make(chan struct{})
	release := make(chan struct{})
	s := adapthttp.NewServer(config.ServerConfig{ShutdownTimeout: 5 * time.Second},
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			close(arrived)
			<-release
			w.WriteHeader(http.StatusNoContent)
		}), discardLogger())
	ln := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	status := make(chan int, 1)
	go func() {
		req, _ := http.NewRequest(http.MethodDelete, "http://"+ln.Addr().String()+"/api/v1/todos/7d1e", http.NoBody)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-arrived
	cancel()
	close(release)

	if got := <-status; got != http.StatusNoContent {
		t.Errorf("in-flight request status = %d, want 204", got)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve() = %v, want nil", err)
	}
}

func TestServer_RunReportsListenFailure(t *testing.T) {
	t.Parallel()

	taken := listen(t)
	t.Cleanup(func() { _ = taken.Close() })
	addr := taken.Addr().(*net.TCPAddr)

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: addr.Port}, http.NotFoundHandler(), discardLogger())
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("Run() on a taken port = nil, want error")
	}
}
