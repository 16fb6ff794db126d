package ext

import (
	"errors"
	"hash/fnv"
	"strings"

	"github.com/feedmesh/syndext/xmldom"
)

var (
	// ErrNilNode is returned when Load is given a nil node.
	ErrNilNode = errors.New("ext: nil node")
	// ErrNilWriter is returned when WriteTo is given a nil writer.
	ErrNilWriter = errors.New("ext: nil writer")
	// ErrEmptyNamespace is returned when WriteTo is given an empty namespace.
	ErrEmptyNamespace = errors.New("ext: empty namespace")
	// ErrIncomparable is returned by CompareTo when the other extension is
	// nil or of a different vocabulary; ordering across vocabularies is
	// undefined.
	ErrIncomparable = errors.New("ext: extensions of different vocabularies are not comparable")
	// ErrDuplicateNamespace is returned when a namespace URI is registered
	// twice; the earlier registration is kept.
	ErrDuplicateNamespace = errors.New("ext: namespace already registered")
)

// Extension is the capability contract every vocabulary satisfies.
//
// Load reads every recognized field of the vocabulary from the entity node,
// returning true when at least one field was read. A node carrying none of
// the vocabulary's elements is not an error: Load returns (false, nil) and
// the caller discards the instance. Individual malformed field values are
// skipped without failing the load.
//
// WriteTo emits one element per set field, qualified by the given namespace
// URI. Unset fields produce no output.
//
// CompareTo composes a total order over two instances of the same
// vocabulary: descriptor fields first, then vocabulary fields in declared
// order, first difference wins. It returns ErrIncomparable for an instance
// of another vocabulary.
type Extension interface {
	Descriptor() Descriptor
	Load(node *xmldom.Node, binding NamespaceBinding) (bool, error)
	WriteTo(w *xmldom.Writer, namespace string) error
	CompareTo(other Extension) (int, error)
}

// Equal reports whether a and b are the same concrete vocabulary type and
// compare equal on every field.
func Equal(a, b Extension) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	c, err := a.CompareTo(b)
	return err == nil && c == 0
}

// Sprint serializes the extension to its canonical XML form: every set
// field written under the vocabulary's default prefix. Write errors yield
// an empty string.
func Sprint(e Extension) string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	w := xmldom.NewWriter(&sb)
	d := e.Descriptor()
	w.DeclarePrefix(d.Prefix, d.Namespace)
	if err := e.WriteTo(w, d.Namespace); err != nil {
		return ""
	}
	return sb.String()
}

// Hash derives a hash from the canonical serialized form, so two instances
// that serialize identically hash identically regardless of how their
// fields were populated.
func Hash(e Extension) uint64 {
	h := fnv.New64a()
	h.Write([]byte(Sprint(e)))
	return h.Sum64()
}
