package catalogue

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"ooctl/pkg/logging"
)

// ErrUnknownConcept is returned for names the registry does not hold.
var ErrUnknownConcept = errors.New("unknown concept")

// Registry holds the catalogue. It is read concurrently by the MCP server.
type Registry struct {
	mu         sync.RWMutex
	concepts   map[string]*Concept
	byCategory map[Category][]*Concept
	logger     *logging.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *logging.Logger) *Registry {
	return &Registry{
		concepts:   make(map[string]*Concept),
		byCategory: make(map[Category][]*Concept),
		logger:     logger,
	}
}

// Register adds a concept. Names must be unique.
func (r *Registry) Register(c Concept) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.Name == "" {
		return fmt.Errorf("concept name is required")
	}
	if _, exists := r.concepts[c.Name]; exists {
		return fmt.Errorf("concept %s already registered", c.Name)
	}

	stored := c
	r.concepts[c.Name] = &stored
	r.byCategory[c.Category] = append(r.byCategory[c.Category], &stored)

	r.logger.Debug("Registry", "Registered concept %s (category: %s)", c.Name, c.Category)
	return nil
}

// Get returns a copy of the named concept.
func (r *Registry) Get(name string) (Concept, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.concepts[name]
	if !ok {
		return Concept{}, fmt.Errorf("%q: %w", name, ErrUnknownConcept)
	}
	return *c, nil
}

// List returns concepts of the category (all when empty), in category
// display order and then by name.
func (r *Registry) List(category Category) []Concept {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Concept
	for _, cat := range Categories {
		if category != "" && cat != category {
			continue
		}
		entries := r.byCategory[cat]
		sorted := make([]Concept, 0, len(entries))
		for _, c := range entries {
			sorted = append(sorted, *c)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
		out = append(out, sorted...)
	}
	return out
}

// Names lists every registered name in List order.
func (r *Registry) Names() []string {
	concepts := r.List("")
	names := make([]string, len(concepts))
	for i, c := range concepts {
		names[i] = c.Name
	}
	return names
}

// Run executes the named concept's demo.
func (r *Registry) Run(ctx context.Context, name string, env *Env) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c, err := r.Get(name)
	if err != nil {
		return err
	}
	if c.Demo == nil {
		return fmt.Errorf("concept %s has no demo", name)
	}

	r.logger.Debug("Registry", "Running demo %s", name)
	if err := c.Demo(ctx, env); err != nil {
		r.logger.Error("Registry", err, "Demo %s failed", name)
		return fmt.Errorf("demo %s: %w", name, err)
	}
	return nil
}

// Default loads the notes and wires each concept to its demo.
func Default(logger *logging.Logger) (*Registry, error) {
	concepts, err := LoadNotes()
	if err != nil {
		return nil, err
	}

	r := NewRegistry(logger)
	for _, c := range concepts {
		demo, ok := demos[c.Name]
		if !ok {
			return nil, fmt.Errorf("concept %s has no registered demo", c.Name)
		}
		c.Demo = demo
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	logger.Debug("Registry", "Loaded %d concepts", len(concepts))
	return r, nil
}
