// Package appctx provides the request-scoped unit of work used by the story
// service.
//
// A RequestContext memoizes reads and queues writes for a single request:
//
//	rc := appctx.New(ctx)
//
//	// Read once per request; later reads hit the cache.
//	s, err := appctx.GetOrFetch(rc, "story:"+id, loadStory)
//
//	// Stage the write; reads of the same key now see the new story.
//	err = rc.Stage("story:"+id, next, saveAction)
//
//	// Run staged actions in order, rolling back on failure.
//	err = rc.Commit(ctx)
//
// A RequestContext belongs to one request and must not be shared between
// requests. Staging and committing are safe for concurrent use; GetOrFetch
// is not.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/story-editor/internal/domain"
)

// Compile-time check that RequestContext implements domain.WriteStager.
var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when staging or committing on a
	// RequestContext that has already been committed.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil Action is staged.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when a cached value's type
	// does not match the requested type, i.e. a key was reused for two types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext embeds context.Context and adds a read cache and a queue
// of staged actions.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	actions   []domain.Action
	committed bool
}

// cacheEntry holds a fetched value or the error the fetch returned; both are
// cached so a failing lookup is not repeated within the request.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. The same key must always be used with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops key from the cache so the next GetOrFetch fetches again.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}

// Stage caches entity under key and queues action for Commit, giving
// read-your-writes consistency for the rest of the request.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}

// AddAction queues action for Commit without touching the cache.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.actions = append(rc.actions, action)
	return nil
}

// Pending returns the number of actions waiting for Commit.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.actions)
}

// Committed reports whether Commit has been called.
func (rc *RequestContext) Committed() bool {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return rc.committed
}

// Execute runs action immediately. It is not queued and never rolled back.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
