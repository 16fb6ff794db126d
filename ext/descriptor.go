package ext

import "cmp"

// Descriptor is the immutable identity of an extension vocabulary. Each
// concrete extension type declares one and reports it via Descriptor().
// Namespace is the canonical key: no two registered vocabularies may share
// a namespace URI.
type Descriptor struct {
	// Prefix is the default XML namespace alias, e.g. "dc".
	Prefix string
	// Namespace is the canonical XML namespace URI.
	Namespace string
	// Version of the vocabulary specification.
	Version string
	// Documentation is a URL pointing at the vocabulary specification.
	Documentation string
	// Name is a short human-readable vocabulary name.
	Name string
	// Description is a one-line summary of what the vocabulary carries.
	Description string
}

// CompareDescriptors orders descriptors by description, documentation,
// name and version (case-insensitive), then namespace and prefix (exact).
// This is the base field sequence every vocabulary comparison starts with.
func CompareDescriptors(a, b Descriptor) int {
	return cmp.Or(
		CompareStringsFold(a.Description, b.Description),
		CompareStringsFold(a.Documentation, b.Documentation),
		CompareStringsFold(a.Name, b.Name),
		CompareStringsFold(a.Version, b.Version),
		CompareStrings(a.Namespace, b.Namespace),
		CompareStrings(a.Prefix, b.Prefix),
	)
}
