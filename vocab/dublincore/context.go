package dublincore

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Context holds the typed field set of the Dublin Core element set. String
// fields are trimmed on assignment; an empty string, the zero time, an
// unset language tag and TypeNone are the unset sentinels and are omitted
// when writing.
type Context struct {
	contributor string
	coverage    string
	creator     string
	date        time.Time
	description string
	format      string
	identifier  string
	language    language.Tag
	hasLanguage bool
	publisher   string
	relation    string
	rights      string
	source      string
	subject     string
	title       string
	typ         TypeVocabulary
}

// Contributor is an entity responsible for making contributions to the
// resource.
func (c *Context) Contributor() string {
	return c.contributor
}

func (c *Context) SetContributor(s string) {
	c.contributor = strings.TrimSpace(s)
}

// Coverage is the spatial or temporal topic of the resource.
func (c *Context) Coverage() string {
	return c.coverage
}

func (c *Context) SetCoverage(s string) {
	c.coverage = strings.TrimSpace(s)
}

// Creator is the entity primarily responsible for making the resource.
func (c *Context) Creator() string {
	return c.creator
}

func (c *Context) SetCreator(s string) {
	c.creator = strings.TrimSpace(s)
}

// Date is a point in time associated with the resource lifecycle. The zero
// time means unset.
func (c *Context) Date() time.Time {
	return c.date
}

func (c *Context) SetDate(t time.Time) {
	c.date = t
}

func (c *Context) Description() string {
	return c.description
}

func (c *Context) SetDescription(s string) {
	c.description = strings.TrimSpace(s)
}

// Format is the file format or physical medium of the resource.
func (c *Context) Format() string {
	return c.format
}

func (c *Context) SetFormat(s string) {
	c.format = strings.TrimSpace(s)
}

func (c *Context) Identifier() string {
	return c.identifier
}

func (c *Context) SetIdentifier(s string) {
	c.identifier = strings.TrimSpace(s)
}

// Language is the validated BCP-47 language of the resource.
func (c *Context) Language() (language.Tag, bool) {
	return c.language, c.hasLanguage
}

func (c *Context) SetLanguage(tag language.Tag) {
	c.language = tag
	c.hasLanguage = true
}

func (c *Context) ClearLanguage() {
	c.language = language.Tag{}
	c.hasLanguage = false
}

func (c *Context) Publisher() string {
	return c.publisher
}

func (c *Context) SetPublisher(s string) {
	c.publisher = strings.TrimSpace(s)
}

// Relation identifies a related resource.
func (c *Context) Relation() string {
	return c.relation
}

func (c *Context) SetRelation(s string) {
	c.relation = strings.TrimSpace(s)
}

// Rights holds information about rights held in and over the resource.
func (c *Context) Rights() string {
	return c.rights
}

func (c *Context) SetRights(s string) {
	c.rights = strings.TrimSpace(s)
}

// Source identifies a resource the described resource is derived from.
func (c *Context) Source() string {
	return c.source
}

func (c *Context) SetSource(s string) {
	c.source = strings.TrimSpace(s)
}

func (c *Context) Subject() string {
	return c.subject
}

func (c *Context) SetSubject(s string) {
	c.subject = strings.TrimSpace(s)
}

func (c *Context) Title() string {
	return c.title
}

func (c *Context) SetTitle(s string) {
	c.title = strings.TrimSpace(s)
}

// Type is the genre of the resource per the DCMI Type Vocabulary.
func (c *Context) Type() TypeVocabulary {
	return c.typ
}

func (c *Context) SetType(t TypeVocabulary) {
	c.typ = t
}
