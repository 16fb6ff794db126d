package wellformedweb

import "net/url"

// Context holds the typed field set of the Comment API vocabulary.
type Context struct {
	comment    *url.URL
	commentRss *url.URL
}

// Comment is the URL comment entries can be POSTed to.
func (c *Context) Comment() *url.URL {
	return c.comment
}

func (c *Context) SetComment(u *url.URL) {
	c.comment = u
}

// CommentRss is the URL of the feed of comments for the item.
func (c *Context) CommentRss() *url.URL {
	return c.commentRss
}

func (c *Context) SetCommentRss(u *url.URL) {
	c.commentRss = u
}
