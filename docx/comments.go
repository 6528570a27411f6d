package docx

import (
	"encoding/xml"
	"strings"
)

// commentsXML represents the structure of the comments part
// (<w:comments>). All of a document's comments live in this one shared
// part, individually identified by their w:id attribute.
type commentsXML struct {
	XMLName  xml.Name     `xml:"comments"`
	Comments []commentXML `xml:"comment"`
}

// commentXML represents a single comment (<w:comment>).
type commentXML struct {
	ID         string         `xml:"id,attr"`
	Author     string         `xml:"author,attr"`
	Initials   string         `xml:"initials,attr"`
	Date       string         `xml:"date,attr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// Comment wraps a parsed comment node. Its identity is the node's own
// id attribute, not a relationship id.
type Comment struct {
	node *commentXML
}

// ID returns the comment's id.
func (c *Comment) ID() string { return c.node.ID }

// Author returns the comment author's display name.
func (c *Comment) Author() string { return c.node.Author }

// Initials returns the comment author's initials.
func (c *Comment) Initials() string { return c.node.Initials }

// Date returns the comment's timestamp as recorded in the part,
// typically ISO 8601. Empty if the producer omitted it.
func (c *Comment) Date() string { return c.node.Date }

// Text returns the comment's text, paragraphs joined with newlines.
func (c *Comment) Text() string {
	var parts []string
	for i := range c.node.Paragraphs {
		parts = append(parts, paragraphText(&c.node.Paragraphs[i]))
	}
	return strings.Join(parts, "\n")
}
