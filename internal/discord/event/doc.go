// Package event defines the handler contract shared by every interaction
// handler: a narrow gateway session interface, a per-interaction context
// with reply helpers, and the middleware chain type.
package event
