package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/story-editor/internal/platform/logging"
)

// Commit executes the staged actions in the order they were added. If one
// fails, the actions that already succeeded are rolled back in reverse
// order; rollback errors are logged and do not change the returned error.
//
// The RequestContext is marked committed whatever the outcome. A second
// call returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.actions
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			for j := i - 1; j >= 0; j-- {
				if rbErr := actions[j].Rollback(ctx); rbErr != nil {
					logger.ErrorContext(ctx, "rollback failed",
						slog.String("operation", "RequestContext.Commit"),
						slog.Int("step", j+1),
						slog.String("action", actions[j].Description()),
						slog.Any("error", rbErr),
					)
				}
			}
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}
