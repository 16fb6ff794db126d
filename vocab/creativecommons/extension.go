// Package creativecommons implements the Creative Commons RSS module
// (creativeCommons:license).
package creativecommons

import (
	"cmp"
	"log/slog"
	"net/url"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://backend.userland.com/creativeCommonsRssModule"
	Prefix    = "creativeCommons"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.0",
	Documentation: "http://backend.userland.com/creativeCommonsRssModule",
	Name:          "Creative Commons",
	Description:   "Associates one or more Creative Commons licenses with a feed or item.",
}

// Context holds the typed field set of the Creative Commons vocabulary.
// Multiple license elements fold into one context, in document order.
type Context struct {
	licenses []*url.URL
}

// Licenses returns the license URLs in document order.
func (c *Context) Licenses() []*url.URL {
	return append([]*url.URL(nil), c.licenses...)
}

// AddLicense appends a license URL. Nil is ignored.
func (c *Context) AddLicense(u *url.URL) {
	if u == nil {
		return
	}
	c.licenses = append(c.licenses, u)
}

// SetLicenses replaces the license list, dropping nil entries.
func (c *Context) SetLicenses(licenses []*url.URL) {
	c.licenses = nil
	for _, u := range licenses {
		c.AddLicense(u)
	}
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

	for _, child := range node.SelectChildren(namespace, "license") {
		if child.Text == "" {
			continue
		}
		u, err := url.Parse(child.Text)
		if err != nil {
			slog.Debug("Skipping malformed creativeCommons:license", "value", child.Text, "error", err)
			continue
		}
		e.Context.AddLicense(u)
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

	for _, u := range e.Context.Licenses() {
		w.WriteElement(namespace, "license", u.String())
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
		ext.CompareURLSlices(e.Context.Licenses(), o.Context.Licenses()),
	), nil
}
