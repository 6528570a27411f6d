package docx

import "encoding/xml"

// stylesXML represents the structure of the styles part.
type stylesXML struct {
	XMLName     xml.Name       `xml:"styles"`
	DocDefaults docDefaultsXML `xml:"docDefaults"`
	Styles      []styleDefXML  `xml:"style"`
}

// docDefaultsXML represents document default styles.
type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"rPrDefault"`
	PPrDefault pPrDefaultXML `xml:"pPrDefault"`
}

// rPrDefaultXML represents default run properties.
type rPrDefaultXML struct {
	RPr runPropsXML `xml:"rPr"`
}

// pPrDefaultXML represents default paragraph properties.
type pPrDefaultXML struct {
	PPr paragraphPropsXML `xml:"pPr"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	XMLName xml.Name          `xml:"style"`
	Type    string            `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string            `xml:"styleId,attr"`
	Default string            `xml:"default,attr"` // "1" if default style
	Name    styleNameXML      `xml:"name"`
	BasedOn basedOnXML        `xml:"basedOn"`
	PPr     paragraphPropsXML `xml:"pPr"`
	RPr     runPropsXML       `xml:"rPr"`
}

// styleNameXML represents a style name.
type styleNameXML struct {
	Val string `xml:"val,attr"`
}

// basedOnXML represents a parent style reference.
type basedOnXML struct {
	Val string `xml:"val,attr"`
}

// Styles is the document's parsed styles tree, resolved lazily from the
// package's single styles relationship.
type Styles struct {
	tree     *stylesXML
	resolver *StyleResolver
}

// Count returns the number of style definitions.
func (s *Styles) Count() int {
	return len(s.tree.Styles)
}

// IDs returns the style ids in definition order.
func (s *Styles) IDs() []string {
	ids := make([]string, 0, len(s.tree.Styles))
	for _, def := range s.tree.Styles {
		ids = append(ids, def.StyleID)
	}
	return ids
}

// Resolve returns the fully resolved properties for a style id,
// following basedOn inheritance.
func (s *Styles) Resolve(styleID string) *ResolvedStyle {
	return s.resolver.Resolve(styleID)
}
