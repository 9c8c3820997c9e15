// Package ports declares the seams of the todo backend. Handlers call
// TodoService, the service calls TodoStore, and the readiness endpoint calls
// HealthRegistry; each side depends only on these interfaces.
package ports
