package docx

import (
	"strconv"
	"strings"
)

// ResolvedStyle contains the effective properties of a style after
// walking its basedOn inheritance chain and applying document defaults.
type ResolvedStyle struct {
	ID   string
	Name string
	Type string // paragraph, character, table

	IsHeading    bool
	HeadingLevel int // 1-9, 0 if not a heading

	Alignment   string
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	IndentLeft  float64 // points

	FontName  string
	FontSize  float64 // points
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Color     string
}

// StyleResolver resolves style ids to effective properties, caching
// results. Safe for sequential use; the owning Styles value hands out
// resolved copies, never the cache itself.
type StyleResolver struct {
	defs     map[string]*styleDefXML
	resolved map[string]*ResolvedStyle

	defaultFont string
	defaultSize float64
}

// newStyleResolver builds a resolver from a parsed styles tree.
func newStyleResolver(tree *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		defs:        make(map[string]*styleDefXML),
		resolved:    make(map[string]*ResolvedStyle),
		defaultFont: "Calibri",
		defaultSize: 11,
	}
	if tree == nil {
		return sr
	}

	for i := range tree.Styles {
		def := &tree.Styles[i]
		sr.defs[def.StyleID] = def
	}

	rpr := tree.DocDefaults.RPrDefault.RPr
	if rpr.Font.ASCII != "" {
		sr.defaultFont = rpr.Font.ASCII
	}
	if size := parseHalfPoints(rpr.FontSize.Val); size > 0 {
		sr.defaultSize = size
	}
	return sr
}

// Resolve returns the effective style for the given id. Unknown ids
// resolve to the document defaults.
func (sr *StyleResolver) Resolve(styleID string) *ResolvedStyle {
	if cached, ok := sr.resolved[styleID]; ok {
		return cached
	}

	rs := &ResolvedStyle{
		ID:        styleID,
		FontName:  sr.defaultFont,
		FontSize:  sr.defaultSize,
		Alignment: "left",
	}

	def, ok := sr.defs[styleID]
	if ok {
		rs.Name = def.Name.Val
		rs.Type = def.Type
		for _, sid := range sr.inheritanceChain(styleID) {
			if d, ok := sr.defs[sid]; ok {
				applyStyleDef(rs, d)
			}
		}
	}
	rs.IsHeading, rs.HeadingLevel = headingLevel(styleID, def)

	sr.resolved[styleID] = rs
	return rs
}

// inheritanceChain returns style ids from base to derived, cycle-safe.
func (sr *StyleResolver) inheritanceChain(styleID string) []string {
	var chain []string
	seen := make(map[string]bool)

	for id := styleID; id != "" && !seen[id]; {
		seen[id] = true
		chain = append([]string{id}, chain...)
		def, ok := sr.defs[id]
		if !ok {
			break
		}
		id = def.BasedOn.Val
	}
	return chain
}

// applyStyleDef overlays one definition's explicit properties.
func applyStyleDef(rs *ResolvedStyle, def *styleDefXML) {
	ppr := def.PPr
	if ppr.Justification.Val != "" {
		rs.Alignment = ppr.Justification.Val
	}
	if ppr.Spacing.Before != "" {
		rs.SpaceBefore = parseTwips(ppr.Spacing.Before)
	}
	if ppr.Spacing.After != "" {
		rs.SpaceAfter = parseTwips(ppr.Spacing.After)
	}
	if ppr.Indent.Left != "" {
		rs.IndentLeft = parseTwips(ppr.Indent.Left)
	}

	rpr := def.RPr
	if rpr.Font.ASCII != "" {
		rs.FontName = rpr.Font.ASCII
	}
	if size := parseHalfPoints(rpr.FontSize.Val); size > 0 {
		rs.FontSize = size
	}
	if rpr.Bold.XMLName.Local != "" {
		rs.Bold = rpr.Bold.set()
	}
	if rpr.Italic.XMLName.Local != "" {
		rs.Italic = rpr.Italic.set()
	}
	if rpr.Strike.XMLName.Local != "" {
		rs.Strike = rpr.Strike.set()
	}
	if rpr.Underline.Val != "" && rpr.Underline.Val != "none" {
		rs.Underline = true
	}
	if rpr.Color.Val != "" && rpr.Color.Val != "auto" {
		rs.Color = rpr.Color.Val
	}
}

// headingLevel determines whether a style is a heading, first from the
// built-in style id, then from the definition's outline level.
func headingLevel(styleID string, def *styleDefXML) (bool, int) {
	id := strings.ToLower(styleID)
	if strings.HasPrefix(id, "heading") {
		if n, err := strconv.Atoi(id[len("heading"):]); err == nil && n >= 1 && n <= 9 {
			return true, n
		}
	}
	if id == "title" {
		return true, 1
	}

	if def != nil && def.PPr.OutlineLvl.Val != "" {
		// outlineLvl is 0-based
		if n, err := strconv.Atoi(def.PPr.OutlineLvl.Val); err == nil && n >= 0 && n <= 8 {
			return true, n + 1
		}
	}
	return false, 0
}

// parseHalfPoints parses a font size in half-points to points
// (e.g. "24" = 12pt). Returns 0 on empty or malformed input.
func parseHalfPoints(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 2
}

// parseTwips parses a size in twips to points. 1 point = 20 twips.
func parseTwips(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val / 20
}
