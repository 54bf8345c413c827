package domain

import "context"

// Action is one deferred write in a unit of work, e.g. saving a story or
// telling the renderer about the change.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It is never called for an
	// action whose Execute failed.
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g. "save story s1 at version 4".
	Description() string
}

// WriteStager is the part of a unit of work that writers see: Stage makes
// the new entity visible to later reads under key and queues its action
// for commit, Execute runs an action at once outside the queue.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
	Execute(action Action) error
}
