// Package dublincore implements the Dublin Core Metadata Element Set 1.1
// syndication extension (dc:creator, dc:date and friends).
package dublincore

import (
	"cmp"
	"log/slog"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://purl.org/dc/elements/1.1/"
	Prefix    = "dc"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.1",
	Documentation: "http://dublincore.org/documents/dces/",
	Name:          "Dublin Core",
	Description:   "Cross-domain resource description metadata for feeds and items.",
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

	textFields := []struct {
		local string
		set   func(string)
	}{
		{"contributor", e.Context.SetContributor},
		{"coverage", e.Context.SetCoverage},
		{"creator", e.Context.SetCreator},
		{"description", e.Context.SetDescription},
		{"format", e.Context.SetFormat},
		{"identifier", e.Context.SetIdentifier},
		{"publisher", e.Context.SetPublisher},
		{"relation", e.Context.SetRelation},
		{"rights", e.Context.SetRights},
		{"source", e.Context.SetSource},
		{"subject", e.Context.SetSubject},
		{"title", e.Context.SetTitle},
	}

	for _, field := range textFields {
		if value := node.ChildText(namespace, field.local); value != "" {
			field.set(value)
			loaded = true
		}
	}

	if raw := node.ChildText(namespace, "date"); raw != "" {
		if t, err := parseDate(raw); err == nil {
			e.Context.SetDate(t)
			loaded = true
		} else {
			slog.Debug("Skipping malformed dc:date", "value", raw, "error", err)
		}
	}

	if raw := node.ChildText(namespace, "language"); raw != "" {
		if tag, err := language.Parse(raw); err == nil {
			e.Context.SetLanguage(tag)
			loaded = true
		} else {
			slog.Debug("Skipping malformed dc:language", "value", raw, "error", err)
		}
	}

	if raw := node.ChildText(namespace, "type"); raw != "" {
		if t, ok := ParseType(raw); ok {
			e.Context.SetType(t)
			loaded = true
		} else {
			slog.Debug("Skipping unrecognized dc:type", "value", raw)
		}
	}

	return loaded, nil
}

// parseDate accepts RFC 3339 first, then falls back to lenient parsing for
// the looser date formats real-world feeds carry.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return dateparse.ParseAny(raw)
}

func (e *Extension) WriteTo(w *xmldom.Writer, namespace string) error {
	if w == nil {
		return ext.ErrNilWriter
	}
	if namespace == "" {
		return ext.ErrEmptyNamespace
	}

	if s := e.Context.Contributor(); s != "" {
		w.WriteElement(namespace, "contributor", s)
	}
	if s := e.Context.Coverage(); s != "" {
		w.WriteElement(namespace, "coverage", s)
	}
	if s := e.Context.Creator(); s != "" {
		w.WriteElement(namespace, "creator", s)
	}
	if t := e.Context.Date(); !t.IsZero() {
		w.WriteElement(namespace, "date", t.Format(time.RFC3339))
	}
	if s := e.Context.Description(); s != "" {
		w.WriteElement(namespace, "description", s)
	}
	if s := e.Context.Format(); s != "" {
		w.WriteElement(namespace, "format", s)
	}
	if s := e.Context.Identifier(); s != "" {
		w.WriteElement(namespace, "identifier", s)
	}
	if tag, ok := e.Context.Language(); ok {
		w.WriteElement(namespace, "language", tag.String())
	}
	if s := e.Context.Publisher(); s != "" {
		w.WriteElement(namespace, "publisher", s)
	}
	if s := e.Context.Relation(); s != "" {
		w.WriteElement(namespace, "relation", s)
	}
	if s := e.Context.Rights(); s != "" {
		w.WriteElement(namespace, "rights", s)
	}
	if s := e.Context.Source(); s != "" {
		w.WriteElement(namespace, "source", s)
	}
	if s := e.Context.Subject(); s != "" {
		w.WriteElement(namespace, "subject", s)
	}
	if s := e.Context.Title(); s != "" {
		w.WriteElement(namespace, "title", s)
	}
	if t := e.Context.Type(); t != TypeNone {
		w.WriteElement(namespace, "type", t.String())
	}

	return w.Err()
}

func (e *Extension) CompareTo(other ext.Extension) (int, error) {
	o, ok := other.(*Extension)
	if !ok || o == nil {
		return 0, ext.ErrIncomparable
	}

	a, b := &e.Context, &o.Context
	return cmp.Or(
		ext.CompareDescriptors(e.Descriptor(), o.Descriptor()),
		ext.CompareStringsFold(a.Contributor(), b.Contributor()),
		ext.CompareStringsFold(a.Coverage(), b.Coverage()),
		ext.CompareStringsFold(a.Creator(), b.Creator()),
		ext.CompareTimes(a.Date(), b.Date()),
		ext.CompareStringsFold(a.Description(), b.Description()),
		ext.CompareStringsFold(a.Format(), b.Format()),
		ext.CompareStrings(a.Identifier(), b.Identifier()),
		compareLanguages(a, b),
		ext.CompareStringsFold(a.Publisher(), b.Publisher()),
		ext.CompareStringsFold(a.Relation(), b.Relation()),
		ext.CompareStringsFold(a.Rights(), b.Rights()),
		ext.CompareStringsFold(a.Source(), b.Source()),
		ext.CompareStringsFold(a.Subject(), b.Subject()),
		ext.CompareStringsFold(a.Title(), b.Title()),
		cmp.Compare(a.Type(), b.Type()),
	), nil
}

func compareLanguages(a, b *Context) int {
	tagA, okA := a.Language()
	tagB, okB := b.Language()
	if c := ext.CompareBools(okA, okB); c != 0 {
		return c
	}
	if !okA {
		return 0
	}
	return ext.CompareStringsFold(tagA.String(), tagB.String())
}
