package dublincore

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/feedmesh/syndext/ext"
	"github.com/feedmesh/syndext/xmldom"
)

func mustParse(t *testing.T, doc string) *xmldom.Node {
	t.Helper()
	node, err := xmldom.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected no parse error, got: %v", err)
	}
	return node
}

func TestLoadElements(t *testing.T) {
	node := mustParse(t, `<item xmlns:dc="http://purl.org/dc/elements/1.1/">
		<dc:creator>Jane Doe</dc:creator>
		<dc:title>  A Padded Title  </dc:title>
		<dc:language>en-US</dc:language>
		<dc:type>Sound</dc:type>
		<dc:date>2008-01-23T00:00:00Z</dc:date>
	</item>`)

	e := New()
	loaded, err := e.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected load to report success")
	}

	if got := e.Context.Creator(); got != "Jane Doe" {
		t.Errorf("Expected creator 'Jane Doe', got: %q", got)
	}
	if got := e.Context.Title(); got != "A Padded Title" {
		t.Errorf("Expected trimmed title, got: %q", got)
	}

	tag, ok := e.Context.Language()
	if !ok {
		t.Fatal("Expected language to be set")
	}
	if tag.String() != "en-US" {
		t.Errorf("Expected en-US, got: %v", tag)
	}

	if got := e.Context.Type(); got != TypeSound {
		t.Errorf("Expected TypeSound, got: %v", got)
	}

	expected := time.Date(2008, 1, 23, 0, 0, 0, 0, time.UTC)
	if !e.Context.Date().Equal(expected) {
		t.Errorf("Expected date %v, got: %v", expected, e.Context.Date())
	}
}

func TestDateRoundTripsAsRFC3339(t *testing.T) {
	node := mustParse(t, `<item xmlns:dc="http://purl.org/dc/elements/1.1/">
		<dc:date>2008-01-23T00:00:00Z</dc:date>
	</item>`)

	e := New()
	if _, err := e.Load(node, ext.ResolveBindings(node)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var sb strings.Builder
	w := xmldom.NewWriter(&sb)
	w.DeclarePrefix(Prefix, Namespace)
	if err := e.WriteTo(w, Namespace); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "<dc:date>2008-01-23T00:00:00Z</dc:date>"
	if sb.String() != expected {
		t.Errorf("Expected %q, got: %q", expected, sb.String())
	}
}

func TestLoadLenientDate(t *testing.T) {
	node := mustParse(t, `<item xmlns:dc="http://purl.org/dc/elements/1.1/">
		<dc:date>Wed, 23 Jan 2008 10:30:00 GMT</dc:date>
	</item>`)

	e := New()
	loaded, err := e.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected lenient date parsing to succeed")
	}
	if e.Context.Date().IsZero() {
		t.Error("Expected date to be set")
	}
}

func TestLoadPartialTolerance(t *testing.T) {
	node := mustParse(t, `<item xmlns:dc="http://purl.org/dc/elements/1.1/">
		<dc:creator>Jane Doe</dc:creator>
		<dc:date>not a date at all</dc:date>
		<dc:language>not_a!tag</dc:language>
		<dc:type>Sculpture</dc:type>
	</item>`)

	e := New()
	loaded, err := e.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected load to succeed on the valid field")
	}

	if got := e.Context.Creator(); got != "Jane Doe" {
		t.Errorf("Expected creator to be populated, got: %q", got)
	}
	if !e.Context.Date().IsZero() {
		t.Error("Expected malformed date to stay unset")
	}
	if _, ok := e.Context.Language(); ok {
		t.Error("Expected invalid language tag to stay unset")
	}
	if e.Context.Type() != TypeNone {
		t.Error("Expected unrecognized type to stay unset")
	}
}

func TestLoadNothingRecognized(t *testing.T) {
	node := mustParse(t, `<item><title>plain</title></item>`)

	e := New()
	loaded, err := e.Load(node, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if loaded {
		t.Error("Expected load to report false without dc elements")
	}
}

func TestLoadNilNode(t *testing.T) {
	if _, err := New().Load(nil, nil); err != ext.ErrNilNode {
		t.Errorf("Expected ErrNilNode, got: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	original := New()
	original.Context.SetContributor("Sam Smith")
	original.Context.SetCreator("Jane Doe")
	original.Context.SetDate(time.Date(2008, 1, 23, 0, 0, 0, 0, time.UTC))
	original.Context.SetDescription("A description.")
	original.Context.SetFormat("text/html")
	original.Context.SetIdentifier("urn:example:1")
	original.Context.SetLanguage(language.MustParse("en-US"))
	original.Context.SetPublisher("Example Press")
	original.Context.SetRights("CC BY 4.0")
	original.Context.SetSubject("music")
	original.Context.SetTitle("A Title")
	original.Context.SetType(TypeText)

	doc := `<item xmlns:dc="` + Namespace + `">` + original.String() + `</item>`
	node := mustParse(t, doc)

	reloaded := New()
	loaded, err := reloaded.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected reload to report success")
	}

	if !ext.Equal(original, reloaded) {
		t.Errorf("Expected round-tripped extension to be equal.\noriginal: %s\nreloaded: %s", original, reloaded)
	}
	if ext.Hash(original) != ext.Hash(reloaded) {
		t.Error("Expected equal extensions to hash identically")
	}
}

func TestCompareToOrdering(t *testing.T) {
	a := New()
	a.Context.SetCreator("Alice")
	b := New()
	b.Context.SetCreator("Bob")

	c, err := a.CompareTo(b)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if c >= 0 {
		t.Errorf("Expected 'Alice' to order before 'Bob', got %d", c)
	}

	if _, err := a.CompareTo(nil); err != ext.ErrIncomparable {
		t.Errorf("Expected ErrIncomparable for nil, got: %v", err)
	}
}

func TestSettersNormalize(t *testing.T) {
	e := New()
	e.Context.SetCreator("  Jane Doe  ")
	if got := e.Context.Creator(); got != "Jane Doe" {
		t.Errorf("Expected trimmed creator, got: %q", got)
	}

	e.Context.SetCreator("   ")
	if got := e.Context.Creator(); got != "" {
		t.Errorf("Expected whitespace-only value to become unset, got: %q", got)
	}
}

func TestTypeVocabularyTable(t *testing.T) {
	for _, name := range []string{
		"Collection", "Dataset", "Event", "Image", "InteractiveResource",
		"MovingImage", "PhysicalObject", "Service", "Software", "Sound",
		"StillImage", "Text",
	} {
		parsed, ok := ParseType(name)
		if !ok {
			t.Errorf("Expected %q to parse", name)
			continue
		}
		if parsed.String() != name {
			t.Errorf("Expected %q to round-trip, got: %q", name, parsed.String())
		}
	}

	if parsed, ok := ParseType("sound"); !ok || parsed != TypeSound {
		t.Error("Expected case-insensitive type parsing")
	}
	if _, ok := ParseType("Sculpture"); ok {
		t.Error("Expected unknown identifier to be rejected")
	}
	if TypeNone.String() != "" {
		t.Errorf("Expected empty identifier for TypeNone, got: %q", TypeNone.String())
	}
}
