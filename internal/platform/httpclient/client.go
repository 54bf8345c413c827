// Package httpclient provides the instrumented HTTP client used for calls to
// downstream services. Every request passes through, in order:
//
//	circuit breaker → rate limiter → propagation headers → client span → retry
//
// The client is built from the notifier section of the configuration:
//
//	c := httpclient.New(&cfg.Notifier, "render", metrics, logger)
//	resp, err := c.PostJSON(ctx, "/api/v1/render-invalidations", payload)
//
// Request and correlation ids set by the inbound middleware are copied onto
// outbound requests:
//
//	ctx = httpclient.WithRequestID(ctx, "req-123")
//	ctx = httpclient.WithCorrelationID(ctx, "corr-456")
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
	"github.com/jsamuelsen11/story-editor/internal/platform/telemetry"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	tracerName = "httpclient"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation id for propagation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client is an instrumented HTTP client bound to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when unlimited
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the downstream service named peer. A nil metrics
// disables metric recording.
func New(cfg *config.NotifierConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	maxFailures := cfg.CircuitBreaker.MaxFailures
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		peer:    peer,
		breaker: breaker,
		limiter: limiter,
		retry: retryPolicy{
			attempts:   cfg.Retry.MaxAttempts,
			initial:    cfg.Retry.InitialInterval,
			max:        cfg.Retry.MaxInterval,
			multiplier: cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do sends req through the breaker, limiter, tracing and retry pipeline.
//
// A non-retryable status returns the response with an open body and a nil
// error. When retries run out on a retryable status both the last response
// and an error are returned; the caller closes the body either way. A
// rejected call (open breaker) returns an error wrapping
// domain.ErrUnavailable and gobreaker's state error.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		propagateIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, r, err)
		if err != nil && r != nil {
			// Carry the last response past the breaker so its body stays reachable.
			return nil, &exhaustedError{resp: r, err: err}
		}
		return r, err
	})

	var exhausted *exhaustedError
	if errors.As(err, &exhausted) {
		resp, err = exhausted.resp, exhausted.err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", c.peer, domain.ErrUnavailable, err)
	}

	c.record(ctx, method, start, resp, err)
	return resp, err
}

// PostJSON encodes payload as JSON and POSTs it to path under the base URL.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.peer
}

// CircuitBreakerState reports the breaker state ("closed", "half-open" or
// "open").
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck derives downstream health from the breaker without making a
// network call. A half-open breaker is reported as degraded.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
	}
}

// exhaustedError carries the last response of a retry loop through the
// breaker so the caller can still read it.
type exhaustedError struct {
	resp *http.Response
	err  error
}

func (e *exhaustedError) Error() string { return e.err.Error() }
func (e *exhaustedError) Unwrap() error { return e.err }

func propagateIDs(ctx context.Context, req *http.Request) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set(headerRequestID, id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set(headerCorrelationID, id)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx,
		"HTTP "+req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.peer),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	result := "error"
	if resp != nil {
		status = resp.StatusCode
		if err == nil && status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, domain.ErrUnavailable) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
