package wellformedweb

import (
	"net/url"
	"strings"
	"testing"

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

func TestLoad(t *testing.T) {
	node := mustParse(t, `<item xmlns:wfw="http://wellformedweb.org/CommentAPI/">
		<wfw:comment>http://example.com/entry/1/comments</wfw:comment>
		<wfw:commentRss>http://example.com/entry/1/comments.rss</wfw:commentRss>
	</item>`)

	e := New()
	loaded, err := e.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected load to report success")
	}

	if got := e.Context.Comment(); got == nil || got.String() != "http://example.com/entry/1/comments" {
		t.Errorf("Expected comment URL, got: %v", got)
	}
	if got := e.Context.CommentRss(); got == nil || got.String() != "http://example.com/entry/1/comments.rss" {
		t.Errorf("Expected commentRss URL, got: %v", got)
	}
}

func TestLoadSubset(t *testing.T) {
	node := mustParse(t, `<item xmlns:wfw="http://wellformedweb.org/CommentAPI/">
		<wfw:commentRss>http://example.com/comments.rss</wfw:commentRss>
	</item>`)

	e := New()
	loaded, err := e.Load(node, ext.ResolveBindings(node))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !loaded {
		t.Fatal("Expected load to report success")
	}
	if e.Context.Comment() != nil {
		t.Error("Expected comment to stay unset")
	}
	if e.Context.CommentRss() == nil {
		t.Error("Expected commentRss to be set")
	}
}

func TestLoadNothingRecognized(t *testing.T) {
	node := mustParse(t, `<item><link>http://example.com</link></item>`)

	e := New()
	loaded, err := e.Load(node, nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if loaded {
		t.Error("Expected load to report false without wfw elements")
	}
}

func TestLoadNilNode(t *testing.T) {
	if _, err := New().Load(nil, nil); err != ext.ErrNilNode {
		t.Errorf("Expected ErrNilNode, got: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	original := New()
	original.Context.SetComment(mustURL(t, "http://example.com/entry/1/comments"))
	original.Context.SetCommentRss(mustURL(t, "http://example.com/entry/1/comments.rss"))

	doc := `<item xmlns:wfw="` + Namespace + `">` + original.String() + `</item>`
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

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return u
}
