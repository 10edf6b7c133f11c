package navigator

import "errors"

// Direction identifies one of the four movement commands
type Direction int

const (
	DirectionForward Direction = iota // next sibling, else ascend
	DirectionBackward                 // previous sibling, else ascend
	DirectionInner                    // first child, else forward
	DirectionOuter                    // parent, else backward
)

// String returns the command name used in events and logs
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionInner:
		return "inner"
	case DirectionOuter:
		return "outer"
	default:
		return "unknown"
	}
}

// Terminal conditions. Both are user-visible and non-fatal: the command
// stops and the cursor stays where it was.
var (
	ErrAtLastHeading  = errors.New("already at the last heading")
	ErrAtFirstHeading = errors.New("already at the first top-level heading")
)

// Outline is the document collaborator the navigator moves over. The
// navigator owns no tree state of its own; every predicate and mutation
// below is answered by the host document.
type Outline interface {
	// Queries
	AtLastSibling() bool      // current heading is last at its level under its parent
	AtFirstSibling() bool     // current heading is first at its level under its parent
	HasParent() bool          // current heading has a parent heading
	BeforeFirstHeading() bool // cursor sits before the document's first heading
	HasChildren() bool        // current heading has at least one child
	OnHeadingLine() bool      // cursor is exactly on a heading line, not in a body
	HeadingFollows() bool     // some heading exists after the cursor, children included

	// Movement
	Ascend()             // move to the parent heading
	NextSibling()        // move to the next same-level sibling
	PrevSibling()        // move to the previous same-level sibling
	NextVisibleHeading() // move to the next currently visible heading
	BackToHeading()      // normalize a drifted cursor onto its heading line

	// Visibility
	HideSubtree()  // collapse the current heading's body and everything below
	HideEntry()    // collapse the current heading's body
	ShowChildren() // reveal the current heading's immediate children
	ShowEntry()    // show the current heading's body
}
