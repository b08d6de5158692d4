package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/harborwind/clientstate/internal/logger"
)

// ErrNotBound is returned when a command name has no registered handler.
var ErrNotBound = errors.New("command not bound")

// Handler is a command handler invoked by name. The returned string is the
// command's printable result; empty means nothing to show.
type Handler func(ctx context.Context, args ...string) (string, error)

// Registry holds the command bindings and the shared debug-mode flag for a
// single application instance.
type Registry struct {
	logger *logger.Logger

	mu       sync.RWMutex
	handlers map[string]Handler
	debug    bool
}

// New creates an empty Registry.
func New(logger *logger.Logger) *Registry {
	return &Registry{
		logger:   logger,
		handlers: make(map[string]Handler),
	}
}

// Register binds name to h. Registering an already-bound name overwrites the
// previous handler.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		r.logger.Debug("overwriting command binding", "name", name)
	} else {
		r.logger.Debug("registering command binding", "name", name)
	}
	r.handlers[name] = h
}

// Lookup returns the handler bound to name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// Dispatch invokes the handler bound to name.
func (r *Registry) Dispatch(ctx context.Context, name string, args ...string) (string, error) {
	h, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotBound, name)
	}
	if r.Debug() {
		r.logger.Debug("dispatching command", "name", name, "args", args)
	}
	return h(ctx, args...)
}

// Names returns the bound command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Debug reports the shared debug-mode flag.
func (r *Registry) Debug() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.debug
}

// SetDebug sets the shared debug-mode flag.
func (r *Registry) SetDebug(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.debug = v
}
