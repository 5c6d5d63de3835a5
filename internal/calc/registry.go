package calc

import (
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when a slug has no registered calculator.
type ErrNotFound struct {
	Slug string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("calculator %q not found", e.Slug)
}

// Registry is a thread-safe catalog of calculators. It maps slugs to
// Calculator instances and maintains a category index.
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
	categoryIdx map[Category][]string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		calculators: make(map[string]Calculator),
		categoryIdx: make(map[Category][]string),
	}
}

// Register adds a calculator to the registry. Duplicate slugs are an error:
// the catalog is wired once at startup and a collision means two widgets
// claim the same URL.
func (r *Registry) Register(c Calculator) error {
	info := c.Info()
	if info.Slug == "" {
		return fmt.Errorf("calculator slug cannot be empty")
	}
	if info.Category == "" {
		return fmt.Errorf("calculator %q: category cannot be empty", info.Slug)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.calculators[info.Slug]; dup {
		return fmt.Errorf("calculator %q already registered", info.Slug)
	}
	r.calculators[info.Slug] = c
	r.categoryIdx[info.Category] = append(r.categoryIdx[info.Category], info.Slug)
	sort.Strings(r.categoryIdx[info.Category])
	return nil
}

// Get returns a calculator by slug.
func (r *Registry) Get(slug string) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.calculators[slug]
	if !ok {
		return nil, &ErrNotFound{Slug: slug}
	}
	return c, nil
}

// List returns info about all registered calculators, sorted by category
// then slug. If category is non-empty only that category is returned.
func (r *Registry) List(category Category) []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var infos []Info
	for _, c := range r.calculators {
		info := c.Info()
		if category != "" && info.Category != category {
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Category != infos[j].Category {
			return infos[i].Category < infos[j].Category
		}
		return infos[i].Slug < infos[j].Slug
	})
	return infos
}

// Count returns the number of registered calculators.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.calculators)
}

// CategoryCounts returns the number of calculators per category.
func (r *Registry) CategoryCounts() map[Category]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[Category]int, len(r.categoryIdx))
	for cat, slugs := range r.categoryIdx {
		counts[cat] = len(slugs)
	}
	return counts
}

// global is the default registry the catalog package wires at startup.
var global = NewRegistry()

// Global returns the default global registry.
func Global() *Registry {
	return global
}

// Register adds a calculator to the global registry.
func Register(c Calculator) error {
	return global.Register(c)
}
