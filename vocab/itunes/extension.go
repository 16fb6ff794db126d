// Package itunes implements the iTunes podcast syndication extension
// (itunes:subtitle, itunes:category, itunes:owner and friends).
package itunes

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

const (
	Namespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	Prefix    = "itunes"
)

var descriptor = ext.Descriptor{
	Prefix:        Prefix,
	Namespace:     Namespace,
	Version:       "1.0",
	Documentation: "http://www.apple.com/itunes/podcasts/specs.html",
	Name:          "iTunes",
	Description:   "Podcast directory metadata for feeds and episodes.",
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

	if s := node.ChildText(namespace, "author"); s != "" {
		e.Context.SetAuthor(s)
		loaded = true
	}

	if s := node.ChildText(namespace, "block"); s != "" {
		e.Context.SetBlock(strings.EqualFold(strings.TrimSpace(s), "yes"))
		loaded = true
	}

	var categories []Category
	for _, child := range node.SelectChildren(namespace, "category") {
		category := Category{Text: child.Attr("", "text")}
		for _, sub := range child.SelectChildren(namespace, "category") {
			category.Subcategories = append(category.Subcategories, Category{Text: sub.Attr("", "text")})
		}
		if strings.TrimSpace(category.Text) != "" {
			categories = append(categories, category)
		}
	}
	if len(categories) > 0 {
		e.Context.SetCategories(categories)
		loaded = true
	}

	if s := node.ChildText(namespace, "duration"); s != "" {
		if d, err := parseDuration(s); err == nil {
			e.Context.SetDuration(d)
			loaded = true
		} else {
			slog.Debug("Skipping malformed itunes:duration", "value", s, "error", err)
		}
	}

	if s := node.ChildText(namespace, "explicit"); s != "" {
		if rating, ok := ParseExplicitRating(s); ok {
			e.Context.SetExplicit(rating)
			loaded = true
		} else {
			slog.Debug("Skipping unrecognized itunes:explicit", "value", s)
		}
	}

	if image := node.SelectChild(namespace, "image"); image != nil {
		if raw := image.Attr("", "href"); raw != "" {
			if u, err := url.Parse(raw); err == nil {
				e.Context.SetImage(u)
				loaded = true
			} else {
				slog.Debug("Skipping malformed itunes:image href", "value", raw, "error", err)
			}
		}
	}

	if s := node.ChildText(namespace, "keywords"); s != "" {
		e.Context.SetKeywords(strings.Split(s, ","))
		loaded = true
	}

	if raw := node.ChildText(namespace, "new-feed-url"); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			e.Context.SetNewFeedURL(u)
			loaded = true
		} else {
			slog.Debug("Skipping malformed itunes:new-feed-url", "value", raw, "error", err)
		}
	}

	if owner := node.SelectChild(namespace, "owner"); owner != nil {
		o := Owner{
			Name:  owner.ChildText(namespace, "name"),
			Email: owner.ChildText(namespace, "email"),
		}
		if o.Name != "" || o.Email != "" {
			e.Context.SetOwner(&o)
			loaded = true
		}
	}

	if s := node.ChildText(namespace, "subtitle"); s != "" {
		e.Context.SetSubtitle(s)
		loaded = true
	}

	if s := node.ChildText(namespace, "summary"); s != "" {
		e.Context.SetSummary(s)
		loaded = true
	}

	return loaded, nil
}

// parseDuration accepts HH:MM:SS, MM:SS or plain seconds.
func parseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + n
	}

	return time.Duration(total) * time.Second, nil
}

func formatDuration(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

func (e *Extension) WriteTo(w *xmldom.Writer, namespace string) error {
	if w == nil {
		return ext.ErrNilWriter
	}
	if namespace == "" {
		return ext.ErrEmptyNamespace
	}

	if s := e.Context.Author(); s != "" {
		w.WriteElement(namespace, "author", s)
	}
	if e.Context.Block() {
		w.WriteElement(namespace, "block", "yes")
	}
	for _, category := range e.Context.Categories() {
		textAttr := []xml.Attr{{Name: xml.Name{Local: "text"}, Value: category.Text}}
		if len(category.Subcategories) == 0 {
			w.WriteElementAttrs(namespace, "category", "", textAttr)
			continue
		}
		w.Start(namespace, "category", textAttr...)
		for _, sub := range category.Subcategories {
			w.WriteElementAttrs(namespace, "category", "", []xml.Attr{{Name: xml.Name{Local: "text"}, Value: sub.Text}})
		}
		w.End()
	}
	if d := e.Context.Duration(); d > 0 {
		w.WriteElement(namespace, "duration", formatDuration(d))
	}
	if rating := e.Context.Explicit(); rating != ExplicitUnspecified {
		w.WriteElement(namespace, "explicit", rating.String())
	}
	if u := e.Context.Image(); u != nil {
		w.WriteElementAttrs(namespace, "image", "", []xml.Attr{{Name: xml.Name{Local: "href"}, Value: u.String()}})
	}
	if keywords := e.Context.Keywords(); len(keywords) > 0 {
		w.WriteElement(namespace, "keywords", strings.Join(keywords, ","))
	}
	if u := e.Context.NewFeedURL(); u != nil {
		w.WriteElement(namespace, "new-feed-url", u.String())
	}
	if owner := e.Context.Owner(); owner != nil {
		w.Start(namespace, "owner")
		if owner.Name != "" {
			w.WriteElement(namespace, "name", owner.Name)
		}
		if owner.Email != "" {
			w.WriteElement(namespace, "email", owner.Email)
		}
		w.End()
	}
	if s := e.Context.Subtitle(); s != "" {
		w.WriteElement(namespace, "subtitle", s)
	}
	if s := e.Context.Summary(); s != "" {
		w.WriteElement(namespace, "summary", s)
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
		ext.CompareStringsFold(a.Author(), b.Author()),
		ext.CompareBools(a.Block(), b.Block()),
		slices.CompareFunc(a.Categories(), b.Categories(), compareCategories),
		ext.CompareDurations(a.Duration(), b.Duration()),
		cmp.Compare(a.Explicit(), b.Explicit()),
		ext.CompareURLs(a.Image(), b.Image()),
		ext.CompareStringSlices(a.Keywords(), b.Keywords()),
		ext.CompareURLs(a.NewFeedURL(), b.NewFeedURL()),
		compareOwners(a.Owner(), b.Owner()),
		ext.CompareStringsFold(a.Subtitle(), b.Subtitle()),
		ext.CompareStringsFold(a.Summary(), b.Summary()),
	), nil
}
