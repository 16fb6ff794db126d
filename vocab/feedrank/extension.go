// Package feedrank implements the Atom Rank extension (re:rank).
package feedrank

import (
	"cmp"
	"encoding/xml"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://purl.org/atompub/rank/1.0"
	Prefix    = "re"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.0",
	Documentation: "http://tools.ietf.org/html/draft-snell-atompub-feed-index",
	Name:          "Feed Rank",
	Description:   "Assigns numeric rankings to feeds and entries under named ranking schemes.",
}

// Rank is one re:rank entry: a numeric value qualified by an optional
// ranking scheme, domain and label.
type Rank struct {
	Scheme *url.URL
	Domain *url.URL
	Label  string
	Value  float64
}

func compareRanks(a, b Rank) int {
	return cmp.Or(
		ext.CompareURLs(a.Scheme, b.Scheme),
		ext.CompareURLs(a.Domain, b.Domain),
		ext.CompareStringsFold(a.Label, b.Label),
		cmp.Compare(a.Value, b.Value),
	)
}

// Context holds the typed field set of the Feed Rank vocabulary.
type Context struct {
	ranks []Rank
}

// Ranks returns the rank entries in document order.
func (c *Context) Ranks() []Rank {
	return append([]Rank(nil), c.ranks...)
}

// AddRank appends a rank entry, normalizing its label.
func (c *Context) AddRank(r Rank) {
	r.Label = strings.TrimSpace(r.Label)
	c.ranks = append(c.ranks, r)
}

// SetRanks replaces the rank list.
func (c *Context) SetRanks(ranks []Rank) {
	c.ranks = nil
	for _, r := range ranks {
		c.AddRank(r)
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

	for _, child := range node.SelectChildren(namespace, "rank") {
		value, err := strconv.ParseFloat(strings.TrimSpace(child.Text), 64)
		if err != nil {
			slog.Debug("Skipping malformed re:rank value", "value", child.Text, "error", err)
			continue
		}

		rank := Rank{Value: value, Label: child.Attr("", "label")}
		if raw := child.Attr("", "scheme"); raw != "" {
			if u, err := url.Parse(raw); err == nil {
				rank.Scheme = u
			}
		}
		if raw := child.Attr("", "domain"); raw != "" {
			if u, err := url.Parse(raw); err == nil {
				rank.Domain = u
			}
		}

		e.Context.AddRank(rank)
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

	for _, rank := range e.Context.Ranks() {
		var attrs []xml.Attr
		if rank.Scheme != nil {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "scheme"}, Value: rank.Scheme.String()})
		}
		if rank.Domain != nil {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "domain"}, Value: rank.Domain.String()})
		}
		if rank.Label != "" {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "label"}, Value: rank.Label})
		}
		w.WriteElementAttrs(namespace, "rank", strconv.FormatFloat(rank.Value, 'f', -1, 64), attrs)
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
		slices.CompareFunc(e.Context.Ranks(), o.Context.Ranks(), compareRanks),
	), nil
}
