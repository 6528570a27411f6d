package docx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRootPart indicates the main document part could not be
	// parsed. Assembly aborts.
	ErrMalformedRootPart = errors.New("docx: malformed main document part")

	// ErrBrokenLink indicates a hyperlink relationship failed to resolve
	// while strict link checking was enabled.
	ErrBrokenLink = errors.New("docx: broken hyperlink relationship")
)

// CardinalityError reports a relationship type whose target count
// violates a mandatory cardinality: the styles part must be related
// exactly once, the comments part at most once.
type CardinalityError struct {
	RelType string // relationship type URI
	Want    string // "exactly one", "at most one"
	Count   int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("docx: expected %s relationship of type %s, found %d", e.Want, e.RelType, e.Count)
}

// ResolveError is a per-item diagnostic: a single hyperlink, embed, or
// header/footer reference failed to resolve. Assembly of sibling items
// continues; the collected diagnostics are available from
// Document.Diagnostics.
type ResolveError struct {
	RelID   string // relationship id, if known
	RelType string // relationship type URI
	Err     error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("docx: resolving relationship %q (%s): %v", e.RelID, e.RelType, e.Err)
}

// Unwrap returns the underlying resolution failure.
func (e *ResolveError) Unwrap() error { return e.Err }
