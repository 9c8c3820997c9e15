package ports

import "context"

// HealthChecker is a component that readiness depends on, such as the todo
// store.
type HealthChecker interface {
	// Name identifies the component in the readiness body.
	Name() string
	// HealthCheck returns nil when the component can serve, and must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each component name to its check result; nil is healthy.
	CheckAll(ctx context.Context) map[string]error
}
