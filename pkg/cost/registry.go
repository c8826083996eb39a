package cost

import (
	"fmt"
	"sort"
	"sync"
)

// Display names for the built-in models.
const (
	RunningName       = "RE3 Running Equation"
	WalkingName       = "ACSM Walking Equation"
	ClimbAversionName = "I Hate To Climb Equation"
)

// Registry maps display names to cost functions. A host constructs one at
// startup and passes it to whatever drives the optimizer; there is no
// process-global registry. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// DefaultRegistry returns a registry holding the three built-in models
// under their display names.
func DefaultRegistry() *Registry {
	return &Registry{funcs: map[string]Func{
		RunningName:       Running,
		WalkingName:       Walking,
		ClimbAversionName: ClimbAversion,
	}}
}

// Register adds fn under name. Duplicate names are rejected so a host
// cannot silently shadow a built-in model.
func (r *Registry) Register(name string, fn Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("cost: function %q already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

// Get looks up a cost function by display name.
func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered display names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
