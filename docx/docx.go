// Package docx assembles an in-memory document model from a
// WordprocessingML package: the main document part plus everything its
// typed relationships pull in — hyperlink targets, the comments part,
// the styles part, embedded objects, and header/footer parts.
//
// Assembly is synchronous and all-or-nothing for structural faults;
// individual dangling relationships are collected as diagnostics
// instead of aborting the document. The assembled Document is an
// immutable snapshot, safe for concurrent readers.
package docx

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tsawler/wordpack/media"
	"github.com/tsawler/wordpack/opc"
)

// BodyElement is one block-level element of the document body: exactly
// one of Paragraph or Table is non-nil. The slice order is the source
// document order.
type BodyElement struct {
	Paragraph *Paragraph
	Table     *Table
}

// Document is the assembled model of one wordprocessing package.
type Document struct {
	pkg  *opc.Package
	root opc.Part

	tree       *documentXML
	body       []BodyElement
	paragraphs []*Paragraph
	tables     []*Table
	hyperlinks []Hyperlink
	comments   map[string]*Comment
	commentIDs []string
	embeds     []media.Embed
	pictures   []media.Picture
	diags      []*ResolveError

	policy *HeaderFooterPolicy

	stylesOnce sync.Once
	styles     *Styles
	stylesErr  error
}

// Option adjusts assembly behavior.
type Option func(*options)

type options struct {
	strictLinks bool
}

// WithStrictLinks makes a hyperlink relationship that fails to resolve
// abort assembly instead of being recorded as a diagnostic.
func WithStrictLinks() Option {
	return func(o *options) {
		o.strictLinks = true
	}
}

// NewDocument assembles a Document from an opened package. The package
// must outlive the Document; closing it invalidates part handles.
func NewDocument(pkg *opc.Package, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	root, err := pkg.OfficeDocument()
	if err != nil {
		return nil, err
	}

	data, err := root.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRootPart, err)
	}
	tree, err := parseDocumentPart(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRootPart, err)
	}

	doc := &Document{
		pkg:      pkg,
		root:     root,
		tree:     tree,
		comments: make(map[string]*Comment),
	}

	doc.assembleBody()
	if err := doc.assembleHyperlinks(o); err != nil {
		return nil, err
	}
	if err := doc.assembleComments(); err != nil {
		return nil, err
	}
	doc.assembleEmbeds()
	doc.assemblePictures()

	// The policy inspects the completed model, so it is built last.
	doc.policy = newHeaderFooterPolicy(doc)

	return doc, nil
}

// assembleBody walks the body's children in source order, wrapping
// paragraphs and tables without regrouping them by type.
func (d *Document) assembleBody() {
	for _, el := range d.tree.Body.Elements {
		switch {
		case el.Paragraph != nil:
			p := &Paragraph{node: el.Paragraph, doc: d}
			d.paragraphs = append(d.paragraphs, p)
			d.body = append(d.body, BodyElement{Paragraph: p})
		case el.Table != nil:
			t := &Table{node: el.Table, doc: d}
			d.tables = append(d.tables, t)
			d.body = append(d.body, BodyElement{Table: t})
		}
	}
}

// assembleHyperlinks records one Hyperlink per hyperlink-typed
// relationship, in declaration order. A relationship that cannot be
// resolved is kept with an empty target and reported as a diagnostic,
// unless strict link checking was requested.
func (d *Document) assembleHyperlinks(o options) error {
	for _, rel := range d.pkg.RelationshipsByType(d.root, opc.RelTypeHyperlink) {
		target, err := d.hyperlinkTarget(rel)
		if err != nil {
			if o.strictLinks {
				return fmt.Errorf("%w: %q: %v", ErrBrokenLink, rel.ID, err)
			}
			d.diags = append(d.diags, &ResolveError{RelID: rel.ID, RelType: rel.Type, Err: err})
		}
		d.hyperlinks = append(d.hyperlinks, Hyperlink{ID: rel.ID, Target: target})
	}
	return nil
}

// hyperlinkTarget resolves one hyperlink relationship to a target URI.
// External links carry the URI directly; internal links must name an
// existing part.
func (d *Document) hyperlinkTarget(rel opc.Relationship) (string, error) {
	if rel.IsExternal() {
		if rel.Target == "" {
			return "", fmt.Errorf("external hyperlink has empty target")
		}
		return rel.Target, nil
	}
	part, err := d.pkg.ResolveTarget(d.root, rel)
	if err != nil {
		return "", err
	}
	return "/" + part.Name, nil
}

// assembleComments parses the comments part, if any, and indexes every
// comment node by its own id attribute. Zero comments relationships is
// valid; more than one is a structural fault.
func (d *Document) assembleComments() error {
	rels := d.pkg.RelationshipsByType(d.root, opc.RelTypeComments)
	switch {
	case len(rels) == 0:
		return nil
	case len(rels) > 1:
		return &CardinalityError{RelType: opc.RelTypeComments, Want: "at most one", Count: len(rels)}
	}

	part, err := d.pkg.ResolveTarget(d.root, rels[0])
	if err != nil {
		return fmt.Errorf("resolving comments part: %w", err)
	}
	data, err := part.Bytes()
	if err != nil {
		return fmt.Errorf("reading comments part: %w", err)
	}
	tree, err := parseCommentsPart(data)
	if err != nil {
		return err
	}

	for i := range tree.Comments {
		node := &tree.Comments[i]
		if _, dup := d.comments[node.ID]; dup {
			return fmt.Errorf("duplicate comment id %q", node.ID)
		}
		d.comments[node.ID] = &Comment{node: node}
		d.commentIDs = append(d.commentIDs, node.ID)
	}
	return nil
}

// assembleEmbeds concatenates the two embedding relationship types in a
// fixed order: every generic OLE object before every packaged object,
// preserving declaration order within each type. A dangling target is a
// diagnostic, not a fatal fault.
func (d *Document) assembleEmbeds() {
	kinds := []struct {
		relType string
		kind    media.EmbedKind
	}{
		{opc.RelTypeOLEObject, media.EmbedOLEObject},
		{opc.RelTypePackage, media.EmbedPackage},
	}

	for _, k := range kinds {
		for _, rel := range d.pkg.RelationshipsByType(d.root, k.relType) {
			part, err := d.pkg.ResolveTarget(d.root, rel)
			if err != nil {
				d.diags = append(d.diags, &ResolveError{RelID: rel.ID, RelType: rel.Type, Err: err})
				continue
			}
			d.embeds = append(d.embeds, media.Embed{Part: part, RelID: rel.ID, Kind: k.kind})
		}
	}
}

// assemblePictures resolves image-typed relationships to media parts.
func (d *Document) assemblePictures() {
	for _, rel := range d.pkg.RelationshipsByType(d.root, opc.RelTypeImage) {
		part, err := d.pkg.ResolveTarget(d.root, rel)
		if err != nil {
			d.diags = append(d.diags, &ResolveError{RelID: rel.ID, RelType: rel.Type, Err: err})
			continue
		}
		d.pictures = append(d.pictures, media.Picture{Part: part, RelID: rel.ID})
	}
}

// Body returns the document's block-level elements in source order.
func (d *Document) Body() []BodyElement {
	return d.body
}

// Paragraphs returns the body's paragraphs in source order.
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// Tables returns the body's tables in source order.
func (d *Document) Tables() []*Table {
	return d.tables
}

// Hyperlinks returns the document's hyperlinks in relationship
// declaration order.
func (d *Document) Hyperlinks() []Hyperlink {
	return d.hyperlinks
}

// HyperlinkByID returns the hyperlink with the given relationship id.
// Absence is expected for stale references and reported via ok.
func (d *Document) HyperlinkByID(id string) (Hyperlink, bool) {
	for _, link := range d.hyperlinks {
		if link.ID == id {
			return link, true
		}
	}
	return Hyperlink{}, false
}

// Comments returns the document's comments in comments-part order.
// A document without a comments part yields an empty slice.
func (d *Document) Comments() []*Comment {
	out := make([]*Comment, 0, len(d.commentIDs))
	for _, id := range d.commentIDs {
		out = append(out, d.comments[id])
	}
	return out
}

// CommentByID returns the comment with the given id, with absence
// reported via ok.
func (d *Document) CommentByID(id string) (*Comment, bool) {
	c, ok := d.comments[id]
	return c, ok
}

// Embeds returns the document's embedded part handles: OLE objects
// first, then packaged objects.
func (d *Document) Embeds() []media.Embed {
	return d.embeds
}

// Pictures returns the document's image parts in relationship
// declaration order.
func (d *Document) Pictures() []media.Picture {
	return d.pictures
}

// Diagnostics returns the per-item resolution failures recorded during
// assembly. An empty slice means every relationship resolved.
func (d *Document) Diagnostics() []*ResolveError {
	return d.diags
}

// HeaderFooterPolicy returns the document's header/footer policy.
func (d *Document) HeaderFooterPolicy() *HeaderFooterPolicy {
	return d.policy
}

// PartByID resolves an arbitrary relationship id on the document part
// to its target part. Unknown ids fail with
// opc.ErrUnknownRelationshipID.
func (d *Document) PartByID(id string) (opc.Part, error) {
	rel, err := d.pkg.RelationshipByID(d.root, id)
	if err != nil {
		return opc.Part{}, err
	}
	return d.pkg.ResolveTarget(d.root, rel)
}

// Styles resolves the document's styles tree on first access,
// enforcing the exactly-one cardinality of the styles relationship.
// The parse happens at most once; concurrent first callers share one
// result, and repeat calls after a failure return the same error.
func (d *Document) Styles() (*Styles, error) {
	d.stylesOnce.Do(func() {
		d.styles, d.stylesErr = d.loadStyles()
	})
	return d.styles, d.stylesErr
}

func (d *Document) loadStyles() (*Styles, error) {
	rels := d.pkg.RelationshipsByType(d.root, opc.RelTypeStyles)
	if len(rels) != 1 {
		return nil, &CardinalityError{RelType: opc.RelTypeStyles, Want: "exactly one", Count: len(rels)}
	}

	part, err := d.pkg.ResolveTarget(d.root, rels[0])
	if err != nil {
		return nil, fmt.Errorf("resolving styles part: %w", err)
	}
	data, err := part.Bytes()
	if err != nil {
		return nil, fmt.Errorf("reading styles part: %w", err)
	}
	tree, err := parseStylesPart(data)
	if err != nil {
		return nil, err
	}
	return &Styles{tree: tree, resolver: newStyleResolver(tree)}, nil
}

// Text returns the document's plain text: paragraphs and table
// renderings in body order, joined with newlines.
func (d *Document) Text() string {
	var parts []string
	for _, el := range d.body {
		if el.Paragraph != nil {
			parts = append(parts, el.Paragraph.Text())
		} else if el.Table != nil {
			parts = append(parts, el.Table.Text())
		}
	}
	return strings.Join(parts, "\n")
}
