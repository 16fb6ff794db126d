// Package syndext provides typed syndication-feed extensions: strongly
// typed wrappers over the namespaced XML modules that ride along inside
// RSS and Atom documents (iTunes podcast metadata, Dublin Core, Creative
// Commons licensing and others).
//
// The ext package holds the registration and resolution machinery; each
// vocab subpackage implements one vocabulary. This package wires the
// built-in vocabularies into a ready-to-use registry.
package syndext

import (
	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/vocab/blogchannel"
	"github.com/feedmesh/syndext/vocab/creativecommons"
	"github.com/feedmesh/syndext/vocab/dublincore"
	"github.com/feedmesh/syndext/vocab/feedrank"
	"github.com/feedmesh/syndext/vocab/itunes"
	"github.com/feedmesh/syndext/vocab/wellformedweb"
)

// DefaultRegistry builds a registry with every built-in vocabulary
// registered. Callers typically construct one at startup and share it
// across parses; the registry's read path is safe for concurrent use.
func DefaultRegistry() *ext.Registry {
	registry := ext.NewRegistry()

	register := []struct {
		descriptor ext.Descriptor
		factory    ext.Factory
	}{
		{blogchannel.New().Descriptor(), func() ext.Extension { return blogchannel.New() }},
		{creativecommons.New().Descriptor(), func() ext.Extension { return creativecommons.New() }},
		{dublincore.New().Descriptor(), func() ext.Extension { return dublincore.New() }},
		{feedrank.New().Descriptor(), func() ext.Extension { return feedrank.New() }},
		{itunes.New().Descriptor(), func() ext.Extension { return itunes.New() }},
		{wellformedweb.New().Descriptor(), func() ext.Extension { return wellformedweb.New() }},
	}

	for _, r := range register {
		// Built-in descriptors have distinct namespaces; a duplicate here
		// is a programming error.
		if err := registry.Register(r.descriptor, r.factory); err != nil {
			panic(err)
		}
	}

	return registry
}
