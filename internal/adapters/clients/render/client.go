// Package render is the outbound adapter for the downstream render service,
// which caches rendered story pages and must be told when a story changes.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/story-editor/internal/platform/httpclient"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

// InvalidationsPath is the renderer endpoint that receives change notices.
const InvalidationsPath = "/api/v1/render-invalidations"

var (
	_ ports.ChangeNotifier = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

// Client implements [ports.ChangeNotifier] over HTTP. Circuit breaking,
// retries and tracing come from the underlying [httpclient.Client].
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewClient returns a notifier that posts through c.
func NewClient(c *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: c, logger: logger}
}

// StoryChanged posts an invalidation for the change. Any 2xx is success.
func (c *Client) StoryChanged(ctx context.Context, change ports.StoryChange) error {
	resp, err := c.http.PostJSON(ctx, InvalidationsPath, toInvalidation(change))
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 && err == nil:
		return nil
	case resp != nil:
		// Retries exhausted on a retryable status, or a final non-2xx.
		terr := translateStatus(resp)
		c.logger.WarnContext(ctx, "render invalidation rejected",
			slog.String("story_id", change.StoryID),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", terr),
		)
		return terr
	default:
		c.logger.WarnContext(ctx, "render invalidation failed",
			slog.String("story_id", change.StoryID),
			slog.Any("error", err),
		)
		return fmt.Errorf("notifying render service: %w", err)
	}
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck implements ports.HealthChecker from the breaker state. Readiness
// of this service does not hinge on it; the readiness handler reports it as
// a dependency.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

// Noop is the notifier used when the render service is disabled.
type Noop struct{}

var _ ports.ChangeNotifier = Noop{}

// StoryChanged does nothing.
func (Noop) StoryChanged(context.Context, ports.StoryChange) error { return nil }
