package ext

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/feedmesh/syndext/xmldom"
)

// Collection is the set of extensions attached to one syndication entity
// (feed, channel or item), kept in attachment order. Attaching the same
// vocabulary twice is allowed and produces two independent entries.
type Collection struct {
	items []Extension
}

func NewCollection() *Collection {
	return &Collection{}
}

// Add attaches an extension. Nil instances are ignored.
func (c *Collection) Add(e Extension) {
	if e == nil {
		return
	}
	c.items = append(c.items, e)
}

// Has reports whether any extension is attached.
func (c *Collection) Has() bool {
	return len(c.items) > 0
}

func (c *Collection) Len() int {
	return len(c.items)
}

// All returns the attached extensions in attachment order. The slice is a
// copy; the collection keeps ownership of the instances.
func (c *Collection) All() []Extension {
	return append([]Extension(nil), c.items...)
}

// Find returns the first attached extension matching the predicate.
func (c *Collection) Find(predicate func(Extension) bool) (Extension, bool) {
	return lo.Find(c.items, predicate)
}

// FindByType returns the first attached extension whose concrete type is
// exactly T.
func FindByType[T Extension](c *Collection) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	e, ok := c.Find(MatchByType[T]())
	if !ok {
		return zero, false
	}
	return e.(T), true
}

// LoadFrom walks the entity node's child namespaces in document order and,
// for every namespace the registry recognizes, constructs a fresh instance
// and loads it against the node. Instances that report nothing loaded are
// discarded; unrecognized namespaces are skipped silently. It returns the
// number of extensions attached.
func (c *Collection) LoadFrom(node *xmldom.Node, registry *Registry) (int, error) {
	if node == nil {
		return 0, ErrNilNode
	}
	if registry == nil {
		return 0, fmt.Errorf("ext: nil registry")
	}

	binding := ResolveBindings(node)
	attached := 0

	for _, namespace := range node.ChildNamespaces() {
		instance, ok := registry.New(namespace)
		if !ok {
			continue
		}

		loaded, err := instance.Load(node, binding)
		if err != nil {
			slog.Warn("Extension load failed, skipping", "namespace", namespace, "error", err)
			continue
		}
		if !loaded {
			continue
		}

		c.Add(instance)
		attached++
	}

	return attached, nil
}

// WriteTo declares each attached vocabulary's default prefix and emits
// every extension in attachment order.
func (c *Collection) WriteTo(w *xmldom.Writer) error {
	if w == nil {
		return ErrNilWriter
	}

	for _, e := range c.items {
		w.DeclarePrefix(e.Descriptor().Prefix, e.Descriptor().Namespace)
	}

	for _, e := range c.items {
		if err := e.WriteTo(w, e.Descriptor().Namespace); err != nil {
			return fmt.Errorf("failed to write %s extension: %w", e.Descriptor().Name, err)
		}
	}

	return w.Err()
}
