package opc

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// Relationship is a typed, identified directed edge from a source part
// (or the package root) to a target.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// IsExternal reports whether the relationship targets a resource outside
// the container (TargetMode="External"), e.g. a hyperlink URI.
func (r Relationship) IsExternal() bool {
	return strings.EqualFold(r.TargetMode, "External")
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// relsName derives the relationships file name for a part,
// e.g. "word/document.xml" -> "word/_rels/document.xml.rels".
// The package root ("") maps to "_rels/.rels".
func relsName(partName string) string {
	dir, base := "", partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir, base = partName[:idx], partName[idx+1:]
	}
	if dir == "" {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}

// relationships returns the parsed relationships declared by the named
// source part, in declaration order. A missing .rels file is not an
// error; it yields an empty slice. Results are cached.
func (p *Package) relationships(sourceName string) ([]Relationship, error) {
	if rels, ok := p.rels[sourceName]; ok {
		return rels, nil
	}

	data, err := p.readAll(relsName(sourceName))
	if err != nil {
		p.rels[sourceName] = nil
		return nil, nil
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relsName(sourceName), err)
	}
	p.rels[sourceName] = parsed.Relationships
	return parsed.Relationships, nil
}

// rootRelationships returns the package-level relationships (_rels/.rels).
func (p *Package) rootRelationships() ([]Relationship, error) {
	return p.relationships("")
}

// Relationships returns every relationship declared by the source part,
// in declaration order.
func (p *Package) Relationships(source Part) ([]Relationship, error) {
	return p.relationships(source.Name)
}

// RelationshipsByType returns the source part's relationships of the
// given type URI, preserving declaration order.
func (p *Package) RelationshipsByType(source Part, typeURI string) []Relationship {
	all, err := p.relationships(source.Name)
	if err != nil {
		return nil
	}
	var out []Relationship
	for _, rel := range all {
		if rel.Type == typeURI {
			out = append(out, rel)
		}
	}
	return out
}

// RelationshipByID returns the source part's relationship with the given
// id, or ErrUnknownRelationshipID if the part declares no such id.
func (p *Package) RelationshipByID(source Part, id string) (Relationship, error) {
	all, err := p.relationships(source.Name)
	if err != nil {
		return Relationship{}, err
	}
	for _, rel := range all {
		if rel.ID == id {
			return rel, nil
		}
	}
	return Relationship{}, fmt.Errorf("%w: %q on %s", ErrUnknownRelationshipID, id, source.Name)
}

// ResolveTarget resolves a relationship declared by the source part to
// its target part. Relative targets resolve against the source part's
// directory; targets with a leading slash are package-absolute.
// External relationships cannot be resolved to a part.
func (p *Package) ResolveTarget(source Part, rel Relationship) (Part, error) {
	return p.resolveName(source.Name, rel)
}

func (p *Package) resolveName(sourceName string, rel Relationship) (Part, error) {
	if rel.IsExternal() {
		return Part{}, fmt.Errorf("%w: %s -> %s", ErrExternalTarget, rel.ID, rel.Target)
	}

	target := rel.Target
	if !strings.HasPrefix(target, "/") {
		dir := ""
		if idx := strings.LastIndex(sourceName, "/"); idx != -1 {
			dir = sourceName[:idx]
		}
		target = path.Join(dir, target)
	}
	target = path.Clean(strings.TrimPrefix(target, "/"))

	return p.Part(target)
}
