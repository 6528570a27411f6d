package docx

import "strings"

// Paragraph wraps a parsed body paragraph. It keeps a non-owning
// back-reference to the Document so in-body relationship and comment
// references can be resolved through the Document's lookup tables.
type Paragraph struct {
	node *paragraphXML
	doc  *Document
}

// Text returns the paragraph's text content.
func (p *Paragraph) Text() string {
	return paragraphText(p.node)
}

// StyleID returns the paragraph's style id, empty if unstyled.
func (p *Paragraph) StyleID() string {
	return p.node.Properties.Style.Val
}

// HyperlinkIDs returns the relationship ids of the paragraph's
// hyperlinks, in encounter order. Anchor-only links (in-document
// bookmarks) carry no relationship id and are skipped.
func (p *Paragraph) HyperlinkIDs() []string {
	var ids []string
	for _, h := range p.node.Hyperlinks {
		if h.ID != "" {
			ids = append(ids, h.ID)
		}
	}
	return ids
}

// Hyperlinks resolves the paragraph's hyperlink references through the
// owning Document. Ids absent from the document's tables are skipped;
// stale references are expected, not exceptional.
func (p *Paragraph) Hyperlinks() []Hyperlink {
	var links []Hyperlink
	for _, id := range p.HyperlinkIDs() {
		if link, ok := p.doc.HyperlinkByID(id); ok {
			links = append(links, link)
		}
	}
	return links
}

// CommentIDs returns the ids of comments referenced by the paragraph's
// runs, in encounter order.
func (p *Paragraph) CommentIDs() []string {
	var ids []string
	for _, run := range p.node.Runs {
		for _, ref := range run.CommentRefs {
			ids = append(ids, ref.ID)
		}
	}
	return ids
}

// Comments resolves the paragraph's comment references through the
// owning Document, skipping ids with no matching comment.
func (p *Paragraph) Comments() []*Comment {
	var comments []*Comment
	for _, id := range p.CommentIDs() {
		if c, ok := p.doc.CommentByID(id); ok {
			comments = append(comments, c)
		}
	}
	return comments
}

// PictureIDs returns the image relationship ids referenced by drawings
// in the paragraph's runs.
func (p *Paragraph) PictureIDs() []string {
	var ids []string
	for _, run := range p.node.Runs {
		for _, d := range run.Drawings {
			if d.Inline != nil && d.Inline.Blip != nil && d.Inline.Blip.Embed != "" {
				ids = append(ids, d.Inline.Blip.Embed)
			}
			if d.Anchor != nil && d.Anchor.Blip != nil && d.Anchor.Blip.Embed != "" {
				ids = append(ids, d.Anchor.Blip.Embed)
			}
		}
	}
	return ids
}

// paragraphText extracts the text of a paragraph node: run text in run
// order, then the text of hyperlink runs.
func paragraphText(node *paragraphXML) string {
	var sb strings.Builder
	for _, run := range node.Runs {
		sb.WriteString(runText(run))
	}
	for _, h := range node.Hyperlinks {
		for _, run := range h.Runs {
			sb.WriteString(runText(run))
		}
	}
	return sb.String()
}

// runText extracts text from a single run.
func runText(run runXML) string {
	var parts []string
	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}
	for range run.Tabs {
		parts = append(parts, "\t")
	}
	for _, br := range run.Breaks {
		if br.Type == "page" {
			parts = append(parts, "\n\n")
		} else {
			parts = append(parts, "\n")
		}
	}
	return strings.Join(parts, "")
}
