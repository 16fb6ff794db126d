// Package wellformedweb implements the Well-Formed Web Comment API
// syndication extension (wfw:comment, wfw:commentRss).
package wellformedweb

import (
	"cmp"
	"log/slog"
	"net/url"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://wellformedweb.org/CommentAPI/"
	Prefix    = "wfw"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.0",
	Documentation: "http://wellformedweb.org/news/wfw_namespace_elements/",
	Name:          "Well-Formed Web Comment API",
	Description:   "Adds comment submission and comment feed endpoints to syndication items.",
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

	if raw := node.ChildText(namespace, "comment"); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			e.Context.SetComment(u)
			loaded = true
		} else {
			slog.Debug("Skipping malformed wfw:comment", "value", raw, "error", err)
		}
	}

	if raw := node.ChildText(namespace, "commentRss"); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			e.Context.SetCommentRss(u)
			loaded = true
		} else {
			slog.Debug("Skipping malformed wfw:commentRss", "value", raw, "error", err)
		}
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

	if u := e.Context.Comment(); u != nil {
		w.WriteElement(namespace, "comment", u.String())
	}
	if u := e.Context.CommentRss(); u != nil {
		w.WriteElement(namespace, "commentRss", u.String())
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
		ext.CompareURLs(e.Context.Comment(), o.Context.Comment()),
		ext.CompareURLs(e.Context.CommentRss(), o.Context.CommentRss()),
	), nil
}
