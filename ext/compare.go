package ext

import (
	"cmp"
	"net/url"
	"slices"
	"strings"
	"time"
)

// Per-field comparators. Vocabularies chain these with cmp.Or, in declared
// field order, so the first differing field decides the overall ordering
// and the result is 0 exactly when every field compares equal.

// CompareStrings is an exact ordinal comparison, used for identifiers and
// namespace URIs.
func CompareStrings(a, b string) int {
	return strings.Compare(a, b)
}

// CompareStringsFold is a case-insensitive ordinal comparison, used for
// human-readable text fields.
func CompareStringsFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareStringSlices compares element-wise (case-insensitive), shorter
// slices ordering first on a shared prefix.
func CompareStringSlices(a, b []string) int {
	return slices.CompareFunc(a, b, CompareStringsFold)
}

func CompareTimes(a, b time.Time) int {
	return a.Compare(b)
}

func CompareDurations(a, b time.Duration) int {
	return cmp.Compare(a, b)
}

func CompareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

// CompareURLs orders by the serialized URL, nil ordering before non-nil.
func CompareURLs(a, b *url.URL) int {
	if a == nil || b == nil {
		if a == b {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

// CompareURLSlices compares element-wise, shorter slices ordering first on
// a shared prefix.
func CompareURLSlices(a, b []*url.URL) int {
	return slices.CompareFunc(a, b, CompareURLs)
}
