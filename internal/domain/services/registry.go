package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// ErrWorldNotFound is returned when no table is registered under a world name.
var ErrWorldNotFound = errors.New("world not found")

// WorldFactory produces the dedicated table of one world.
type WorldFactory func(ctx context.Context) (*entities.WorldModule, error)

// WorldRegistry maps world names to their dedicated tables, building each
// table on first access and caching it for the registry's lifetime.
type WorldRegistry struct {
	mu        sync.Mutex
	factories map[string]WorldFactory
	modules   map[string]string
	cache     map[string]*entities.WorldModule
}

// NewWorldRegistry creates an empty registry.
func NewWorldRegistry() *WorldRegistry {
	return &WorldRegistry{
		factories: make(map[string]WorldFactory),
		modules:   make(map[string]string),
		cache:     make(map[string]*entities.WorldModule),
	}
}

// NewWorldRegistryFromOutput registers every world of an in-memory output.
func NewWorldRegistryFromOutput(out *entities.Output) *WorldRegistry {
	r := NewWorldRegistry()
	for i := range out.Worlds {
		world := out.Worlds[i]
		r.Register(world.WorldName, world.Module, func(context.Context) (*entities.WorldModule, error) {
			return &world, nil
		})
	}
	return r
}

// Register adds a factory for a world, replacing any previous one.
func (r *WorldRegistry) Register(worldName, module string, factory WorldFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[worldName] = factory
	r.modules[worldName] = module
	delete(r.cache, worldName)
}

// Names returns the registered world names in ascending order.
func (r *WorldRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module returns the dedicated module reference of a world.
func (r *WorldRegistry) Module(worldName string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[worldName]
	return m, ok
}

// Load returns the dedicated table of a world, building it on first use.
// A failed build is not cached.
func (r *WorldRegistry) Load(ctx context.Context, worldName string) (*entities.WorldModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[worldName]; ok {
		return cached, nil
	}
	factory, ok := r.factories[worldName]
	if !ok {
		return nil, fmt.Errorf("%q: %w", worldName, ErrWorldNotFound)
	}

	module, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading world %q: %w", worldName, err)
	}
	if module == nil {
		return nil, fmt.Errorf("%q: %w", worldName, ErrWorldNotFound)
	}
	r.cache[worldName] = module
	return module, nil
}
