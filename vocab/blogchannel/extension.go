// Package blogchannel implements the blogChannel RSS module
// (blogChannel:blogRoll, blink, changes, mySubscriptions).
package blogchannel

import (
	"cmp"
	"log/slog"
	"net/url"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://backend.userland.com/blogChannelModule"
	Prefix    = "blogChannel"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.0",
	Documentation: "http://backend.userland.com/blogChannelModule",
	Name:          "blogChannel",
	Description:   "Channel-level pointers to a publisher's blogroll, subscriptions and change service.",
}

type Extension struct {
	Context Context
}

func New() *Extension {
	return &Extension{}
}

func (e *Extension) Descriptor() ext.Descriptor {
	return descriptor
}

func (e *Extension) String() string {
	return ext.Sprint(e)
}

func (e *Extension) Load(node *xmldom.Node, binding ext.NamespaceBinding) (bool, error) {
	if node == nil {
		return false, ext.ErrNilNode
	}

	namespace := ext.LookupNamespace(node, descriptor, binding)
	loaded := false

	fields := []struct {
		local string
		set   func(*url.URL)
	}{
		{"blink", e.Context.SetBlink},
		{"blogRoll", e.Context.SetBlogRoll},
		{"changes", e.Context.SetChanges},
		{"mySubscriptions", e.Context.SetMySubscriptions},
	}

	for _, field := range fields {
		raw := node.ChildText(namespace, field.local)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			slog.Debug("Skipping malformed blogChannel URL", "element", field.local, "value", raw, "error", err)
			continue
		}
		field.set(u)
		loaded = true
	}

	return loaded, nil
}

func (e *Extension) WriteTo(w *xmldom.Writer, namespace string) error {
	if w == nil {
		return ext.ErrNilWriter
	}
	if namespace == "" {
		return ext.ErrEmptyNamespace
	}

	if u := e.Context.Blink(); u != nil {
		w.WriteElement(namespace, "blink", u.String())
	}
	if u := e.Context.BlogRoll(); u != nil {
		w.WriteElement(namespace, "blogRoll", u.String())
	}
	if u := e.Context.Changes(); u != nil {
		w.WriteElement(namespace, "changes", u.String())
	}
	if u := e.Context.MySubscriptions(); u != nil {
		w.WriteElement(namespace, "mySubscriptions", u.String())
	}

	return w.Err()
}

func (e *Extension) CompareTo(other ext.Extension) (int, error) {
	o, ok := other.(*Extension)
	if !ok || o == nil {
		return 0, ext.ErrIncomparable
	}
	return cmp.Or(
		ext.CompareDescriptors(e.Descriptor(), o.Descriptor()),
		ext.CompareURLs(e.Context.Blink(), o.Context.Blink()),
		ext.CompareURLs(e.Context.BlogRoll(), o.Context.BlogRoll()),
		ext.CompareURLs(e.Context.Changes(), o.Context.Changes()),
		ext.CompareURLs(e.Context.MySubscriptions(), o.Context.MySubscriptions()),
	), nil
}
