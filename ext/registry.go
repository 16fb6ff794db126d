package ext

import (
	"errors"
	"fmt"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Factory constructs a fresh, unloaded instance of one vocabulary.
type Factory func() Extension

type registration struct {
	descriptor Descriptor
	factory    Factory
}

// Registry holds the known extension vocabularies, keyed by canonical
// namespace URI. It is populated at startup and read-only afterwards; the
// read path is safe for concurrent parses.
type Registry struct {
	mu      sync.RWMutex
	entries *orderedmap.OrderedMap[string, registration]
}

func NewRegistry() *Registry {
	return &Registry{
		entries: orderedmap.NewOrderedMap[string, registration](),
	}
}

// Register adds a vocabulary under its descriptor's namespace URI. A
// namespace already claimed is a configuration defect: the earlier
// registration is kept and ErrDuplicateNamespace is returned.
func (r *Registry) Register(d Descriptor, factory Factory) error {
	if d.Namespace == "" {
		return ErrEmptyNamespace
	}
	if factory == nil {
		return errors.New("ext: nil factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries.Get(d.Namespace); exists {
		return fmt.Errorf("failed to register %q: %w", d.Namespace, ErrDuplicateNamespace)
	}
	r.entries.Set(d.Namespace, registration{descriptor: d, factory: factory})

	return nil
}

// Match returns the descriptor registered for a namespace URI. Unknown
// namespaces are not errors; the caller skips the element.
func (r *Registry) Match(namespace string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries.Get(namespace)
	if !ok {
		return Descriptor{}, false
	}
	return reg.descriptor, true
}

func (r *Registry) Has(namespace string) bool {
	_, ok := r.Match(namespace)
	return ok
}

// New constructs a fresh unloaded instance of the vocabulary registered for
// a namespace URI.
func (r *Registry) New(namespace string) (Extension, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries.Get(namespace)
	if !ok {
		return nil, false
	}
	return reg.factory(), true
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, r.entries.Len())
	for el := r.entries.Front(); el != nil; el = el.Next() {
		descriptors = append(descriptors, el.Value.descriptor)
	}
	return descriptors
}

// MatchByType builds a predicate that is true only for instances whose
// concrete type is exactly T. Structurally similar vocabularies do not
// match.
func MatchByType[T Extension]() func(Extension) bool {
	return func(e Extension) bool {
		_, ok := e.(T)
		return ok
	}
}
