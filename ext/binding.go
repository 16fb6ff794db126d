package ext

import "github.com/feedmesh/syndext/xmldom"

// NamespaceBinding maps XML namespace prefixes to namespace URIs for one
// parse pass. The empty string key holds the default namespace.
type NamespaceBinding map[string]string

// URI returns the namespace bound to a prefix, or an empty string.
func (b NamespaceBinding) URI(prefix string) string {
	return b[prefix]
}

// Prefix returns the first prefix bound to a namespace URI, preferring a
// non-empty prefix, or ("", false) when the namespace is unbound.
func (b NamespaceBinding) Prefix(namespace string) (string, bool) {
	found := false
	for prefix, uri := range b {
		if uri != namespace {
			continue
		}
		if prefix != "" {
			return prefix, true
		}
		found = true
	}
	if found {
		return "", true
	}
	return "", false
}

// LookupNamespace picks the namespace URI a vocabulary should qualify its
// lookups with on a given node: the canonical namespace when the node has
// children under it, otherwise whatever URI the document bound to the
// vocabulary's default prefix (feeds in the wild occasionally declare a
// variant of the canonical URI). Falls back to the canonical namespace.
func LookupNamespace(node *xmldom.Node, d Descriptor, binding NamespaceBinding) string {
	if node == nil {
		return d.Namespace
	}
	if node.HasChildIn(d.Namespace) {
		return d.Namespace
	}
	if bound := binding.URI(d.Prefix); bound != "" && node.HasChildIn(bound) {
		return bound
	}
	return d.Namespace
}

// ResolveBindings collects the namespace declarations visible on the root
// node. Undeclared or malformed declarations are skipped rather than
// reported: extension data is optional relative to the host feed, so a
// partial mapping degrades to fewer recognized extensions, not a failure.
func ResolveBindings(root *xmldom.Node) NamespaceBinding {
	binding := make(NamespaceBinding)
	if root == nil {
		return binding
	}
	for _, attr := range root.Attrs {
		switch {
		case attr.Name.Space == "xmlns" && attr.Name.Local != "" && attr.Value != "":
			binding[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns" && attr.Value != "":
			binding[""] = attr.Value
		}
	}
	return binding
}
