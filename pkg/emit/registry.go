package emit

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores emitters by target id, providing discovery and duplication
// safeguards. Callers can embed or wrap it for dependency injection.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]Emitter),
	}
}

// Register adds an emitter by its Name(). Duplicate ids return an error.
func (r *Registry) Register(emitter Emitter) error {
	if emitter == nil {
		return fmt.Errorf("emit: emitter is required")
	}
	name := emitter.Name()
	if name == "" {
		return fmt.Errorf("emit: emitter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emitters[name]; exists {
		return fmt.Errorf("emit: emitter %q already registered", name)
	}

	r.emitters[name] = emitter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(emitter Emitter) {
	if err := r.Register(emitter); err != nil {
		panic(err)
	}
}

// Get retrieves an emitter by target id. A missing id is reported as
// UnsupportedTargetError carrying the known target list.
func (r *Registry) Get(name string) (Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emitter, ok := r.emitters[name]
	if !ok {
		known := make([]string, 0, len(r.emitters))
		for id := range r.emitters {
			known = append(known, id)
		}
		sort.Strings(known)
		return nil, &UnsupportedTargetError{Target: name, Known: known}
	}
	return emitter, nil
}

// MustGet panics if the emitter is missing.
func (r *Registry) MustGet(name string) Emitter {
	emitter, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return emitter
}

// List returns a sorted list of registered target ids.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.emitters))
	for name := range r.emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a target id is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.emitters[name]
	return ok
}
