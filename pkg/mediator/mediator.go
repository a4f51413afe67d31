// Package mediator routes typed requests to their registered handlers,
// decoupling the HTTP layer from use-case implementations.
//
// Handlers are registered once at startup in the composition root; there is
// no runtime discovery. Each request type declares a unique Kind tag and maps
// to exactly one handler — registering a second handler for the same Kind is
// a configuration error surfaced at startup, not at request time.
package mediator

import (
	"context"
	"fmt"
)

// Request is implemented by every command and query routed through the Mediator.
// Kind must be unique per request type and stable across the process lifetime.
type Request interface {
	Kind() string
}

// Handler processes a single request type and produces its result.
type Handler[Req Request, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Mediator holds the Kind → handler registry. Not safe for concurrent
// registration; register everything at startup, then Send freely from any
// goroutine.
type Mediator struct {
	handlers map[string]func(ctx context.Context, req Request) (any, error)
}

// New returns an empty Mediator.
func New() *Mediator {
	return &Mediator{handlers: make(map[string]func(ctx context.Context, req Request) (any, error))}
}

// Register binds h as the sole handler for Req's Kind.
// Returns an error if a handler is already registered for that Kind.
func Register[Req Request, Res any](m *Mediator, h Handler[Req, Res]) error {
	var zero Req
	kind := zero.Kind()
	if _, exists := m.handlers[kind]; exists {
		return fmt.Errorf("mediator: handler already registered for %q", kind)
	}
	m.handlers[kind] = func(ctx context.Context, req Request) (any, error) {
		typed, ok := req.(Req)
		if !ok {
			return nil, fmt.Errorf("mediator: request %q has unexpected type %T", kind, req)
		}
		return h.Handle(ctx, typed)
	}
	return nil
}

// Send dispatches req to its registered handler and returns the typed result.
// A request whose context is already cancelled is skipped before the handler
// runs; handlers themselves observe ctx at their I/O boundaries.
func Send[Res any](ctx context.Context, m *Mediator, req Request) (Res, error) {
	var zero Res

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	fn, ok := m.handlers[req.Kind()]
	if !ok {
		return zero, fmt.Errorf("mediator: no handler registered for %q", req.Kind())
	}

	res, err := fn(ctx, req)
	if err != nil {
		return zero, err
	}

	typed, ok := res.(Res)
	if !ok {
		return zero, fmt.Errorf("mediator: handler for %q returned %T, caller expected different type", req.Kind(), res)
	}
	return typed, nil
}
