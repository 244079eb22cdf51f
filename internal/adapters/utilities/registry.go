/*
Package utilities holds the commands the interpreter runs in its own process
instead of spawning a program from the search path.
*/
package utilities

import (
	"sort"
	"sync"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Registry maps utility names to implementations.
type Registry struct {
	mu    sync.RWMutex
	utils map[string]ports.Utility
}

var _ ports.UtilityRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{utils: make(map[string]ports.Utility)}
}

// Register adds u, replacing any utility already registered under the same name.
func (r *Registry) Register(u ports.Utility) {
	if u == nil {
		panic("utility cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.utils[u.Name()] = u
}

// Lookup returns the utility registered as name.
func (r *Registry) Lookup(name string) (ports.Utility, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.utils[name]
	return u, ok
}

// All returns every registered utility sorted by name.
func (r *Registry) All() []ports.Utility {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]ports.Utility, 0, len(r.utils))
	for _, u := range r.utils {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}
