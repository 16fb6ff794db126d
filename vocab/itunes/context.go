package itunes

import (
	"cmp"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/feedmesh/syndext/ext"
)

// ExplicitRating is the itunes:explicit advisory.
type ExplicitRating int

const (
	ExplicitUnspecified ExplicitRating = iota
	ExplicitYes
	ExplicitNo
	ExplicitClean
)

var explicitNames = map[ExplicitRating]string{
	ExplicitYes:   "yes",
	ExplicitNo:    "no",
	ExplicitClean: "clean",
}

func (r ExplicitRating) String() string {
	return explicitNames[r]
}

// ParseExplicitRating maps the wire value to its rating,
// case-insensitively.
func ParseExplicitRating(s string) (ExplicitRating, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "explicit":
		return ExplicitYes, true
	case "no", "false":
		return ExplicitNo, true
	case "clean":
		return ExplicitClean, true
	}
	return ExplicitUnspecified, false
}

// Category is an itunes:category entry; subcategories nest one level.
type Category struct {
	Text          string
	Subcategories []Category
}

func compareCategories(a, b Category) int {
	return cmp.Or(
		ext.CompareStringsFold(a.Text, b.Text),
		slices.CompareFunc(a.Subcategories, b.Subcategories, compareCategories),
	)
}

// Owner identifies the podcast owner (itunes:owner with itunes:name and
// itunes:email children).
type Owner struct {
	Name  string
	Email string
}

func compareOwners(a, b *Owner) int {
	if a == nil || b == nil {
		if a == b {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	return cmp.Or(
		ext.CompareStringsFold(a.Name, b.Name),
		ext.CompareStringsFold(a.Email, b.Email),
	)
}

// Context holds the typed field set of the iTunes podcast vocabulary.
type Context struct {
	author     string
	block      bool
	categories []Category
	duration   time.Duration
	explicit   ExplicitRating
	image      *url.URL
	keywords   []string
	newFeedURL *url.URL
	owner      *Owner
	subtitle   string
	summary    string
}

func (c *Context) Author() string {
	return c.author
}

func (c *Context) SetAuthor(s string) {
	c.author = strings.TrimSpace(s)
}

// Block reports whether the feed asks to be withheld from the directory.
func (c *Context) Block() bool {
	return c.block
}

func (c *Context) SetBlock(block bool) {
	c.block = block
}

// Categories returns the category entries in document order.
func (c *Context) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// AddCategory appends a category, trimming its text and dropping empty
// subcategories. Categories with empty text are ignored.
func (c *Context) AddCategory(category Category) {
	category = normalizeCategory(category)
	if category.Text == "" {
		return
	}
	c.categories = append(c.categories, category)
}

// SetCategories replaces the category list.
func (c *Context) SetCategories(categories []Category) {
	c.categories = nil
	for _, category := range categories {
		c.AddCategory(category)
	}
}

func normalizeCategory(category Category) Category {
	category.Text = strings.TrimSpace(category.Text)
	var subs []Category
	for _, sub := range category.Subcategories {
		sub.Text = strings.TrimSpace(sub.Text)
		if sub.Text != "" {
			subs = append(subs, Category{Text: sub.Text})
		}
	}
	category.Subcategories = subs
	return category
}

// Duration is the episode length; zero means unset.
func (c *Context) Duration() time.Duration {
	return c.duration
}

func (c *Context) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.duration = d
}

func (c *Context) Explicit() ExplicitRating {
	return c.explicit
}

func (c *Context) SetExplicit(r ExplicitRating) {
	c.explicit = r
}

// Image is the podcast artwork URL (itunes:image href attribute).
func (c *Context) Image() *url.URL {
	return c.image
}

func (c *Context) SetImage(u *url.URL) {
	c.image = u
}

// Keywords returns the search keywords in document order.
func (c *Context) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// SetKeywords replaces the keyword list, trimming entries and dropping
// empty ones.
func (c *Context) SetKeywords(keywords []string) {
	c.keywords = nil
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			c.keywords = append(c.keywords, keyword)
		}
	}
}

// NewFeedURL is the feed's replacement URL (itunes:new-feed-url).
func (c *Context) NewFeedURL() *url.URL {
	return c.newFeedURL
}

func (c *Context) SetNewFeedURL(u *url.URL) {
	c.newFeedURL = u
}

func (c *Context) Owner() *Owner {
	return c.owner
}

// SetOwner stores a trimmed copy of the owner; an owner with neither name
// nor email clears the field.
func (c *Context) SetOwner(owner *Owner) {
	if owner == nil {
		c.owner = nil
		return
	}
	trimmed := Owner{
		Name:  strings.TrimSpace(owner.Name),
		Email: strings.TrimSpace(owner.Email),
	}
	if trimmed == (Owner{}) {
		c.owner = nil
		return
	}
	c.owner = &trimmed
}

func (c *Context) Subtitle() string {
	return c.subtitle
}

func (c *Context) SetSubtitle(s string) {
	c.subtitle = strings.TrimSpace(s)
}

func (c *Context) Summary() string {
	return c.summary
}

func (c *Context) SetSummary(s string) {
	c.summary = strings.TrimSpace(s)
}
