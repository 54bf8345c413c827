package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/story-editor/internal/platform/logging"
)

// jitter is the maximum relative deviation applied to each backoff delay.
const jitter = 0.25

// retryPolicy is exponential backoff with jitter.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

// delay returns the wait before retry n (1 is the first retry).
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = math.Min(d, float64(p.max))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}

// send performs req up to p.attempts times. Bodies are buffered once and
// replayed on each attempt.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		body = b
	}

	var lastErr error
	for attempt := range c.retry.attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr = err
			continue
		}

		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if attempt == c.retry.attempts-1 {
			return resp, lastErr
		}

		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}

	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	wait := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryableErr reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else is retried.
func retryableErr(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus is true for 429 and any 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
