package blogchannel

import "net/url"

// Context holds the typed field set of the blogChannel vocabulary.
type Context struct {
	blink           *url.URL
	blogRoll        *url.URL
	changes         *url.URL
	mySubscriptions *url.URL
}

// Blink is a promoted weblog URL the publisher is pointing at.
func (c *Context) Blink() *url.URL {
	return c.blink
}

func (c *Context) SetBlink(u *url.URL) {
	c.blink = u
}

// BlogRoll is the URL of an OPML file listing the publisher's blogroll.
func (c *Context) BlogRoll() *url.URL {
	return c.blogRoll
}

func (c *Context) SetBlogRoll(u *url.URL) {
	c.blogRoll = u
}

// Changes is the URL of a changes.xml service the feed is registered with.
func (c *Context) Changes() *url.URL {
	return c.changes
}

func (c *Context) SetChanges(u *url.URL) {
	c.changes = u
}

// MySubscriptions is the URL of an OPML file listing the publisher's feed
// subscriptions.
func (c *Context) MySubscriptions() *url.URL {
	return c.mySubscriptions
}

func (c *Context) SetMySubscriptions(u *url.URL) {
	c.mySubscriptions = u
}
