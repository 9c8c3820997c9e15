// Package health aggregates component health for the readiness endpoint.
package health

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/acclimations/todo-backend/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultCheckTimeout = 2 * time.Second

// Registry holds one checker per component name. CheckAll runs them in
// parallel, each under its own deadline, so a hung component is reported
// as failing instead of stalling the readiness response.
type Registry struct {
	timeout time.Duration

	mu       sync.Mutex
	checkers map[string]ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each component's check. Defaults to 2s.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  defaultCheckTimeout,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds c under c.Name(), replacing any checker of that name.
func (r *Registry) Register(c ports.HealthChecker) {
	name := c.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = c
}

// CheckAll runs every check and returns each component's error by name;
// nil means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.Lock()
	checkers := maps.Clone(r.checkers)
	r.mu.Unlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			err := r.check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return c.HealthCheck(ctx)
}
