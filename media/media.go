// Package media models the binary parts a document embeds: OLE
// objects, packaged documents, and pictures. Handles are opaque; the
// bytes stay in the container until asked for.
package media

import "github.com/tsawler/wordpack/opc"

// EmbedKind identifies which relationship type produced an embedded
// part handle.
type EmbedKind int

const (
	EmbedOLEObject EmbedKind = iota // generic object embedding
	EmbedPackage                    // packaged-object embedding
)

// String returns the kind's relationship-type name.
func (k EmbedKind) String() string {
	switch k {
	case EmbedOLEObject:
		return "oleObject"
	case EmbedPackage:
		return "package"
	}
	return "unknown"
}

// Embed is an opaque handle to an embedded part.
type Embed struct {
	Part  opc.Part
	RelID string
	Kind  EmbedKind
}

// Picture is a handle to an image part referenced by an image-typed
// relationship.
type Picture struct {
	Part  opc.Part
	RelID string
}
