package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/assetpipe/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[T any] interface {
	Register(name string, item T) error
	Get(name string) (T, error)
	Remove(name string) error
	// List returns all registered names in sorted order
	List() []string
	Has(name string) bool
	Count() int
}

// Normalizer maps a user-facing name to the key it is stored under
type Normalizer func(name string) string

type registry[T any] struct {
	mu        sync.RWMutex
	items     map[string]T
	normalize Normalizer
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return NewWithNormalizer[T](nil)
}

// NewWithNormalizer creates a Registry whose names are passed through
// normalize on every call, so differently spelled names share one entry.
func NewWithNormalizer[T any](normalize Normalizer) Registry[T] {
	if normalize == nil {
		normalize = func(name string) string { return name }
	}
	return &registry[T]{
		items:     make(map[string]T),
		normalize: normalize,
	}
}

func (r *registry[T]) Register(name string, item T) error {
	key := r.normalize(name)
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", key)
	}

	r.items[key] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	key := r.normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", key).
			WithDetail("name", name)
	}

	return item, nil
}

func (r *registry[T]) Remove(name string) error {
	key := r.normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", key)
	}

	delete(r.items, key)
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (r *registry[T]) Has(name string) bool {
	key := r.normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
