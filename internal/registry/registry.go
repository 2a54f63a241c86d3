package registry

import (
	"fmt"
	"sync"

	"github.com/sgirard84/airworthy/internal/directive"
)

// Registry owns the process-wide directive set. It is built once at startup
// from a rules file and immutable afterwards; the lock only guards against
// concurrent reads during construction in tests. Load order is preserved so
// batch results come back in a deterministic, presentable order.
type Registry struct {
	mu         sync.RWMutex
	source     string
	directives []*directive.Directive
	index      map[string]*directive.Directive
}

// NewRegistry loads the rules file at path and builds the registry.
func NewRegistry(path string) (*Registry, error) {
	directives, err := directive.LoadRules(path)
	if err != nil {
		return nil, err
	}
	return newFromDirectives(path, directives), nil
}

// NewFromDirectives builds a registry from already-validated records,
// preserving their order. Used by tests and by callers that assemble rules
// in code.
func NewFromDirectives(directives []*directive.Directive) *Registry {
	return newFromDirectives("", directives)
}

func newFromDirectives(source string, directives []*directive.Directive) *Registry {
	index := make(map[string]*directive.Directive, len(directives))
	for _, d := range directives {
		index[d.ID] = d
	}
	return &Registry{
		source:     source,
		directives: directives,
		index:      index,
	}
}

// Source returns the path the registry was loaded from, if any.
func (r *Registry) Source() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source
}

// List returns the directives in load order. The slice is a copy; the
// directives themselves are shared and must be treated as read-only.
func (r *Registry) List() []*directive.Directive {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*directive.Directive, len(r.directives))
	copy(out, r.directives)
	return out
}

// Get retrieves a directive by id.
func (r *Registry) Get(id string) (*directive.Directive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.index[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("directive not found: %s", id)
}

// Len returns the number of loaded directives.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.directives)
}
