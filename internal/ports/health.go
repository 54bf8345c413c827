package ports

import "context"

// HealthChecker is a dependency whose state feeds the readiness probe, such
// as the story store or the render client.
type HealthChecker interface {
	// Name keys the result in the readiness body, e.g. "story-store".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
