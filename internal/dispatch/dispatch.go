package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

var ErrUnknownAction = errors.New("unknown action")

// Request is one dispatched call. Read actions carry their arguments in
// Params; write actions carry a JSON payload.
type Request struct {
	Action  string
	Params  url.Values
	Payload json.RawMessage
}

// Param returns the named query parameter, empty when absent.
func (r Request) Param(name string) string {
	return r.Params.Get(name)
}

// Bind decodes the request payload into v.
func (r Request) Bind(v any) error {
	if len(r.Payload) == 0 {
		return errors.New("missing payload")
	}
	return json.Unmarshal(r.Payload, v)
}

// HandlerFunc executes one action and returns the data for the envelope.
type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Registry maps action names to handlers, split by verb. Registration
// happens once during server construction; dispatch is read-only after
// that, so no locking is needed.
type Registry struct {
	read  map[string]HandlerFunc
	write map[string]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{
		read:  make(map[string]HandlerFunc),
		write: make(map[string]HandlerFunc),
	}
}

// Read registers a handler for one or more read action names. Aliases are
// extra names for the same handler.
func (r *Registry) Read(handler HandlerFunc, names ...string) {
	for _, name := range names {
		r.read[name] = handler
	}
}

// Write registers a handler for one or more write action names.
func (r *Registry) Write(handler HandlerFunc, names ...string) {
	for _, name := range names {
		r.write[name] = handler
	}
}

// DispatchRead runs the named read action.
func (r *Registry) DispatchRead(ctx context.Context, req Request) (any, error) {
	return dispatch(ctx, r.read, req)
}

// DispatchWrite runs the named write action.
func (r *Registry) DispatchWrite(ctx context.Context, req Request) (any, error) {
	return dispatch(ctx, r.write, req)
}

func dispatch(ctx context.Context, handlers map[string]HandlerFunc, req Request) (any, error) {
	if req.Action == "" {
		return nil, errors.New("missing action")
	}
	handler, ok := handlers[req.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
	return handler(ctx, req)
}
