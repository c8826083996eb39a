package optimize

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// Factory constructs a fresh solver instance. Solvers hold per-run state
// (at minimum their random source), so hosts build one per optimization.
type Factory func(seed int64) Solver

// Registry maps display names to solver factories. A host constructs one at
// startup and resolves scenario or request names against it; there is no
// process-global registry. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in solver under its
// display name.
func DefaultRegistry() *Registry {
	return &Registry{factories: map[string]Factory{
		LocalSearchName: func(seed int64) Solver { return NewLocalSearch(seed) },
	}}
}

// Register adds a factory under name. Duplicate names are rejected so a
// host cannot silently shadow a built-in solver.
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("optimize: solver %q already registered", name)
	}
	r.factories[name] = f
	return nil
}

// Get looks up a solver factory by display name.
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered display names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultSeed stands in when callers pass seed 0, keeping default runs
// reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic random source for the solver's
// strategy picks.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
