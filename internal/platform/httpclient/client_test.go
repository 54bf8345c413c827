package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
	"github.com/jsamuelsen11/story-editor/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.NotifierConfig {
	return &config.NotifierConfig{
		Enabled: true,
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(t *testing.T, cfg *config.NotifierConfig) *httpclient.Client {
	t.Helper()
	return httpclient.New(cfg, "render", nil, slog.New(slog.DiscardHandler))
}

// statusServer replies with the given statuses in order, repeating the last.
func statusServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(hits.Add(1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		w.WriteHeader(statuses[n])
		_, _ = io.WriteString(w, http.StatusText(statuses[n]))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func get(t *testing.T, c *httpclient.Client, ctx context.Context, url string) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
		wantHits   int32
		wantErr    bool
	}{
		{name: "success first try", statuses: []int{200}, wantStatus: 200, wantHits: 1},
		{name: "5xx then success", statuses: []int{500, 502, 200}, wantStatus: 200, wantHits: 3},
		{name: "429 then success", statuses: []int{429, 200}, wantStatus: 200, wantHits: 2},
		{name: "4xx is final", statuses: []int{404}, wantStatus: 404, wantHits: 1},
		{name: "exhausted keeps last response", statuses: []int{503}, wantStatus: 503, wantHits: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, hits := statusServer(t, tt.statuses...)
			resp, err := get(t, newClient(t, testConfig(srv.URL)), context.Background(), srv.URL+"/x")

			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Do() response = nil, want non-nil")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != http.StatusText(tt.wantStatus) {
				t.Errorf("body = %q, want %q", body, http.StatusText(tt.wantStatus))
			}
			if got := hits.Load(); got != tt.wantHits {
				t.Errorf("hits = %d, want %d", got, tt.wantHits)
			}
		})
	}
}

func TestPostJSON_ReplaysBodyAndSetsHeaders(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		bodies   []string
		ctypes   []string
		requests atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		ctypes = append(ctypes, r.Header.Get("Content-Type"))
		mu.Unlock()
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path != "/api/v1/hooks" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, testConfig(srv.URL+"/"))
	resp, err := c.PostJSON(context.Background(), "/api/v1/hooks", map[string]string{"story_id": "s1"})
	if err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("attempts = %d, want 2", len(bodies))
	}
	for i := range bodies {
		var got map[string]string
		if err := json.Unmarshal([]byte(bodies[i]), &got); err != nil || got["story_id"] != "s1" {
			t.Errorf("attempt %d body = %q, want story_id s1", i+1, bodies[i])
		}
		if ctypes[i] != "application/json" {
			t.Errorf("attempt %d Content-Type = %q, want application/json", i+1, ctypes[i])
		}
	}
}

func TestPostJSON_UnencodablePayload(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig("http://localhost"))
	if _, err := c.PostJSON(context.Background(), "/x", make(chan int)); err == nil {
		t.Fatal("PostJSON() error = nil, want encoding error")
	}
}

func TestDo_PropagatesIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name:     "ids in context",
			ctx:      httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1"),
			wantReq:  "req-1",
			wantCorr: "corr-1",
		},
		{name: "no ids", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReq = r.Header.Get("X-Request-ID")
				gotCorr = r.Header.Get("X-Correlation-ID")
				w.WriteHeader(http.StatusNoContent)
			}))
			t.Cleanup(srv.Close)

			if _, err := get(t, newClient(t, testConfig(srv.URL)), tt.ctx, srv.URL); err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if gotReq != tt.wantReq {
				t.Errorf("X-Request-ID = %q, want %q", gotReq, tt.wantReq)
			}
			if gotCorr != tt.wantCorr {
				t.Errorf("X-Correlation-ID = %q, want %q", gotCorr, tt.wantCorr)
			}
		})
	}
}

func TestDo_OpenBreakerIsUnavailable(t *testing.T) {
	t.Parallel()

	srv, hits := statusServer(t, http.StatusInternalServerError)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	c := newClient(t, cfg)

	_, _ = get(t, c, context.Background(), srv.URL)
	before := hits.Load()

	resp, err := get(t, c, context.Background(), srv.URL)
	if resp != nil {
		t.Errorf("response = %v, want nil from open breaker", resp.Status)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want domain.ErrUnavailable", err)
	}
	if hits.Load() != before {
		t.Error("server was called while the breaker was open")
	}
	if got := c.CircuitBreakerState(); got != "open" {
		t.Errorf("CircuitBreakerState() = %q, want open", got)
	}
}

func TestDo_BreakerRecovers(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	c := newClient(t, cfg)

	_, _ = get(t, c, context.Background(), srv.URL)
	if err := c.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Fatalf("HealthCheck() = %v, want failing", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := c.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Fatalf("HealthCheck() = %v, want degraded", err)
	}

	failing.Store(false)
	resp, err := get(t, c, context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Do() error = %v, want recovery", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	srv, _ := statusServer(t, http.StatusInternalServerError)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := get(t, newClient(t, testConfig(srv.URL)), ctx, srv.URL); err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
}

func TestDo_RateLimiterHonorsContext(t *testing.T) {
	t.Parallel()

	srv, hits := statusServer(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	c := newClient(t, cfg)

	if _, err := get(t, c, context.Background(), srv.URL); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := get(t, c, ctx, srv.URL); err == nil {
		t.Fatal("second Do() error = nil, want rate limiter wait error")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	c := newClient(t, testConfig("http://render.local/"))

	if got := c.Name(); got != "render" {
		t.Errorf("Name() = %q, want render", got)
	}
	if got := c.BaseURL(); got != "http://render.local" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", got)
	}
	if got := c.CircuitBreakerState(); got != "closed" {
		t.Errorf("CircuitBreakerState() = %q, want closed", got)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
