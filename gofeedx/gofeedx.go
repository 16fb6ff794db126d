// Package gofeedx bridges gofeed's generic extension trees into typed
// syndext extensions. gofeed parses the host feed formats and exposes
// unrecognized namespaced elements as prefix-keyed maps; this package
// rebuilds those maps as namespace-qualified nodes so the typed
// vocabularies can load from them.
package gofeedx

import (
	"encoding/xml"
	"fmt"
	"maps"
	"slices"

	gext "github.com/mmcdole/gofeed/extensions"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

// DefaultBinding maps every registered vocabulary's default prefix to its
// canonical namespace. gofeed keys extensions by prefix and drops the
// document's xmlns declarations, so the default prefixes are the binding.
func DefaultBinding(registry *ext.Registry) ext.NamespaceBinding {
	binding := make(ext.NamespaceBinding)
	if registry == nil {
		return binding
	}
	for _, d := range registry.Descriptors() {
		binding[d.Prefix] = d.Namespace
	}
	return binding
}

// Node rebuilds a gofeed extension map as a synthetic entity node whose
// children carry resolved namespace URIs. Prefixes absent from the binding
// are skipped; their elements stay unrecognized, matching how unregistered
// namespaces behave during a direct parse.
func Node(exts gext.Extensions, binding ext.NamespaceBinding) *xmldom.Node {
	node := &xmldom.Node{Name: xml.Name{Local: "entity"}}

	for _, prefix := range slices.Sorted(maps.Keys(exts)) {
		namespace := binding.URI(prefix)
		if namespace == "" {
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(exts[prefix])) {
			for _, elem := range exts[prefix][name] {
				node.Children = append(node.Children, convert(namespace, elem))
			}
		}
	}

	return node
}

func convert(namespace string, elem gext.Extension) *xmldom.Node {
	node := &xmldom.Node{
		Name: xml.Name{Space: namespace, Local: elem.Name},
		Text: elem.Value,
	}

	for _, name := range slices.Sorted(maps.Keys(elem.Attrs)) {
		node.Attrs = append(node.Attrs, xml.Attr{
			Name:  xml.Name{Local: name},
			Value: elem.Attrs[name],
		})
	}

	for _, name := range slices.Sorted(maps.Keys(elem.Children)) {
		for _, child := range elem.Children[name] {
			node.Children = append(node.Children, convert(namespace, child))
		}
	}

	return node
}

// Attach loads every registered vocabulary present in a gofeed extension
// map (a gofeed.Feed or gofeed.Item Extensions value) into a fresh
// collection.
func Attach(exts gext.Extensions, registry *ext.Registry) (*ext.Collection, error) {
	collection := ext.NewCollection()
	if len(exts) == 0 {
		return collection, nil
	}

	node := Node(exts, DefaultBinding(registry))
	if _, err := collection.LoadFrom(node, registry); err != nil {
		return nil, fmt.Errorf("failed to attach extensions: %w", err)
	}

	return collection, nil
}
