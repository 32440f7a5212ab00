package normalize

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Handler post-processes the base fragment produced for one field. It
// receives the fragment plus full submission context and returns the
// fragment to merge into the flattened record. Returning nil drops the
// field's contribution entirely.
type Handler func(fragment *Fragment, ctx Context) *Fragment

// HandlerRegistry stores per-field-type handlers. The dispatch step is an
// open extension point: hosts can register handlers for new field types or
// override the built-in ones at startup.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewHandlerRegistry creates an empty handler registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler for a field type. Duplicate types return an error;
// use Override to replace an existing handler deliberately.
func (r *HandlerRegistry) Register(fieldType string, handler Handler) error {
	name := normalizeTypeName(fieldType)
	if name == "" {
		return fmt.Errorf("normalize: field type is required")
	}
	if handler == nil {
		return fmt.Errorf("normalize: handler is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("normalize: handler for %q already registered", name)
	}

	r.handlers[name] = handler
	return nil
}

// MustRegister panics on registration failure.
func (r *HandlerRegistry) MustRegister(fieldType string, handler Handler) {
	if err := r.Register(fieldType, handler); err != nil {
		panic(err)
	}
}

// Override installs a handler for a field type, replacing any existing one.
func (r *HandlerRegistry) Override(fieldType string, handler Handler) error {
	name := normalizeTypeName(fieldType)
	if name == "" {
		return fmt.Errorf("normalize: field type is required")
	}
	if handler == nil {
		return fmt.Errorf("normalize: handler is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[name] = handler
	return nil
}

// Get retrieves the handler for a field type, if any.
func (r *HandlerRegistry) Get(fieldType string) (Handler, bool) {
	name := normalizeTypeName(fieldType)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[name]
	return handler, ok
}

// Has reports whether a handler is registered for a field type.
func (r *HandlerRegistry) Has(fieldType string) bool {
	_, ok := r.Get(fieldType)
	return ok
}

// List returns the registered field types sorted alphabetically.
func (r *HandlerRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeTypeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
