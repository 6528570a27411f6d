package opc

import (
	"errors"
	"testing"
)

const testDocRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/a" TargetMode="External"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/b" TargetMode="External"/>
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="/word/media/img.png"/>
</Relationships>`

func relTestPackage(t *testing.T) (*Package, Part) {
	t.Helper()
	pkg := buildPackage(t, map[string]string{
		"[Content_Types].xml":          testContentTypes,
		"_rels/.rels":                  testRootRels,
		"word/document.xml":            "<document/>",
		"word/_rels/document.xml.rels": testDocRels,
		"word/styles.xml":              "<styles/>",
		"word/media/img.png":           "png bytes",
	})
	root, err := pkg.OfficeDocument()
	if err != nil {
		t.Fatalf("OfficeDocument: %v", err)
	}
	return pkg, root
}

func TestRelationships_Order(t *testing.T) {
	pkg, root := relTestPackage(t)

	rels, err := pkg.Relationships(root)
	if err != nil {
		t.Fatalf("Relationships: %v", err)
	}
	want := []string{"rId1", "rId2", "rId3", "rId4"}
	if len(rels) != len(want) {
		t.Fatalf("got %d relationships, want %d", len(rels), len(want))
	}
	for i, id := range want {
		if rels[i].ID != id {
			t.Errorf("rels[%d].ID = %q, want %q", i, rels[i].ID, id)
		}
	}
}

func TestRelationships_MissingRelsFile(t *testing.T) {
	pkg := buildPackage(t, map[string]string{
		"[Content_Types].xml": testContentTypes,
		"word/document.xml":   "<document/>",
	})
	root, _ := pkg.OfficeDocument()

	rels, err := pkg.Relationships(root)
	if err != nil {
		t.Fatalf("Relationships: %v", err)
	}
	if len(rels) != 0 {
		t.Errorf("got %d relationships, want 0", len(rels))
	}
}

func TestRelationshipsByType(t *testing.T) {
	pkg, root := relTestPackage(t)

	links := pkg.RelationshipsByType(root, RelTypeHyperlink)
	if len(links) != 2 {
		t.Fatalf("got %d hyperlink relationships, want 2", len(links))
	}
	if links[0].ID != "rId2" || links[1].ID != "rId3" {
		t.Errorf("hyperlink order = %s, %s; want rId2, rId3", links[0].ID, links[1].ID)
	}

	if got := pkg.RelationshipsByType(root, RelTypeComments); len(got) != 0 {
		t.Errorf("got %d comments relationships, want 0", len(got))
	}
}

func TestRelationshipByID(t *testing.T) {
	pkg, root := relTestPackage(t)

	rel, err := pkg.RelationshipByID(root, "rId1")
	if err != nil {
		t.Fatalf("RelationshipByID: %v", err)
	}
	if rel.Type != RelTypeStyles {
		t.Errorf("Type = %q, want styles", rel.Type)
	}

	_, err = pkg.RelationshipByID(root, "rIdNonexistent")
	if !errors.Is(err, ErrUnknownRelationshipID) {
		t.Errorf("err = %v, want ErrUnknownRelationshipID", err)
	}
}

func TestResolveTarget(t *testing.T) {
	pkg, root := relTestPackage(t)

	t.Run("relative", func(t *testing.T) {
		rel, _ := pkg.RelationshipByID(root, "rId1")
		part, err := pkg.ResolveTarget(root, rel)
		if err != nil {
			t.Fatalf("ResolveTarget: %v", err)
		}
		if part.Name != "word/styles.xml" {
			t.Errorf("Name = %q, want word/styles.xml", part.Name)
		}
	})

	t.Run("absolute", func(t *testing.T) {
		rel, _ := pkg.RelationshipByID(root, "rId4")
		part, err := pkg.ResolveTarget(root, rel)
		if err != nil {
			t.Fatalf("ResolveTarget: %v", err)
		}
		if part.Name != "word/media/img.png" {
			t.Errorf("Name = %q, want word/media/img.png", part.Name)
		}
	})

	t.Run("external", func(t *testing.T) {
		rel, _ := pkg.RelationshipByID(root, "rId2")
		_, err := pkg.ResolveTarget(root, rel)
		if !errors.Is(err, ErrExternalTarget) {
			t.Errorf("err = %v, want ErrExternalTarget", err)
		}
	})

	t.Run("dangling", func(t *testing.T) {
		rel := Relationship{ID: "rIdX", Type: RelTypeStyles, Target: "missing.xml"}
		_, err := pkg.ResolveTarget(root, rel)
		if !errors.Is(err, ErrPartNotFound) {
			t.Errorf("err = %v, want ErrPartNotFound", err)
		}
	})
}

func TestRelationship_IsExternal(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{"External", true},
		{"external", true},
		{"Internal", false},
		{"", false},
	}
	for _, tt := range tests {
		rel := Relationship{TargetMode: tt.mode}
		if got := rel.IsExternal(); got != tt.want {
			t.Errorf("IsExternal(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
