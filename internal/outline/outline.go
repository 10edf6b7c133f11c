package outline

import (
	"fmt"

	"zettelnav/internal/domain"
)

// Heading is one node in the outline tree. Headings are created through
// Document.Add and keep their fold state (body shown, children shown)
// alongside the tree links.
type Heading struct {
	ID    int
	Title string
	Body  string

	level    int
	parent   *Heading
	children []*Heading

	bodyVisible     bool
	childrenVisible bool
}

// Level returns the heading depth, 1 for top-level headings
func (h *Heading) Level() int { return h.level }

// HasChildren reports whether the heading has at least one child
func (h *Heading) HasChildren() bool { return len(h.children) > 0 }

// snapshot converts a heading to its display form
func (h *Heading) snapshot() domain.Heading {
	return domain.Heading{
		ID:          h.ID,
		Title:       h.Title,
		Body:        h.Body,
		Level:       h.level,
		HasChildren: len(h.children) > 0,
	}
}

// Document is an in-memory outline: a tree of headings plus a cursor.
// The cursor is nil before the first heading; inBody marks a cursor that
// has drifted into a heading's body instead of sitting on the line itself.
type Document struct {
	root   *Heading // sentinel, level 0, never rendered
	cur    *Heading
	inBody bool
	last   *Heading // last heading added, used to attach the next one
	nextID int
}

// New creates an empty document with the cursor before the first heading
func New() *Document {
	return &Document{
		root: &Heading{level: 0, childrenVisible: true},
	}
}

// Add appends a heading in document order. The level decides attachment:
// the parent is the closest earlier heading with a smaller level. Adding a
// heading more than one level deeper than its predecessor is an error.
// New headings start folded: body hidden, children undisclosed.
func (d *Document) Add(level int, title, body string) (*Heading, error) {
	if level < 1 {
		return nil, fmt.Errorf("invalid heading level %d: must be at least 1", level)
	}

	parent := d.root
	if d.last != nil {
		parent = d.last
		for parent.level >= level {
			parent = parent.parent
		}
	}
	if level > parent.level+1 {
		return nil, fmt.Errorf("heading %q at level %d would skip level %d", title, level, parent.level+1)
	}

	d.nextID++
	h := &Heading{
		ID:     d.nextID,
		Title:  title,
		Body:   body,
		level:  level,
		parent: parent,
	}
	parent.children = append(parent.children, h)
	d.last = h
	return h, nil
}

// MustAdd is Add for fixtures and demo documents that are known to be valid
func (d *Document) MustAdd(level int, title, body string) *Heading {
	h, err := d.Add(level, title, body)
	if err != nil {
		panic(err)
	}
	return h
}

// Len returns the number of headings in the document
func (d *Document) Len() int {
	n := 0
	for h := d.firstHeading(); h != nil; h = d.successor(h) {
		n++
	}
	return n
}

func (d *Document) firstHeading() *Heading {
	if len(d.root.children) == 0 {
		return nil
	}
	return d.root.children[0]
}

// successor returns the next heading in document (pre-order) position,
// regardless of visibility
func (d *Document) successor(h *Heading) *Heading {
	if len(h.children) > 0 {
		return h.children[0]
	}
	for h.parent != nil {
		sibs := h.parent.children
		for i, s := range sibs {
			if s == h && i+1 < len(sibs) {
				return sibs[i+1]
			}
		}
		h = h.parent
	}
	return nil
}

func (h *Heading) siblingIndex() int {
	for i, s := range h.parent.children {
		if s == h {
			return i
		}
	}
	return -1
}

// visible reports whether the heading line itself is shown, i.e. every
// ancestor exposes its children
func (d *Document) visible(h *Heading) bool {
	for p := h.parent; p != nil; p = p.parent {
		if !p.childrenVisible {
			return false
		}
	}
	return true
}

// Navigation queries

// AtLastSibling reports whether the current heading is the last one at its
// level within its parent. Before the first heading it is true only for an
// empty document, so movement can bootstrap into the tree.
func (d *Document) AtLastSibling() bool {
	if d.cur == nil {
		return len(d.root.children) == 0
	}
	return d.cur.siblingIndex() == len(d.cur.parent.children)-1
}

// AtFirstSibling reports whether the current heading is the first one at
// its level within its parent
func (d *Document) AtFirstSibling() bool {
	if d.cur == nil {
		return true
	}
	return d.cur.siblingIndex() == 0
}

// HasParent reports whether the current heading has a parent heading
func (d *Document) HasParent() bool {
	return d.cur != nil && d.cur.parent != d.root
}

// BeforeFirstHeading reports whether the cursor sits before the first
// heading of the document
func (d *Document) BeforeFirstHeading() bool {
	return d.cur == nil
}

// HasChildren reports whether the current heading has children
func (d *Document) HasChildren() bool {
	return d.cur != nil && len(d.cur.children) > 0
}

// OnHeadingLine reports whether the cursor is exactly on a heading line,
// as opposed to inside its body
func (d *Document) OnHeadingLine() bool {
	return d.cur != nil && !d.inBody
}

// HeadingFollows reports whether any heading exists after the cursor in
// document order, children of the current heading included
func (d *Document) HeadingFollows() bool {
	if d.cur == nil {
		return len(d.root.children) > 0
	}
	return d.successor(d.cur) != nil
}

// Movement

// Ascend moves the cursor to the parent heading. Callers check HasParent
// first; without one the cursor stays put.
func (d *Document) Ascend() {
	if d.cur == nil || d.cur.parent == d.root {
		return
	}
	d.cur = d.cur.parent
	d.inBody = false
}

// NextSibling moves to the next heading at the same level under the same
// parent. Before the first heading it moves to the first heading.
func (d *Document) NextSibling() {
	if d.cur == nil {
		d.cur = d.firstHeading()
		d.inBody = false
		return
	}
	i := d.cur.siblingIndex()
	if i+1 < len(d.cur.parent.children) {
		d.cur = d.cur.parent.children[i+1]
		d.inBody = false
	}
}

// PrevSibling moves to the previous heading at the same level under the
// same parent
func (d *Document) PrevSibling() {
	if d.cur == nil {
		return
	}
	i := d.cur.siblingIndex()
	if i > 0 {
		d.cur = d.cur.parent.children[i-1]
		d.inBody = false
	}
}

// NextVisibleHeading moves to the next heading in document order whose
// line is currently shown
func (d *Document) NextVisibleHeading() {
	start := d.cur
	if start == nil {
		start = d.root
	}
	for h := d.successor(start); h != nil; h = d.successor(h) {
		if d.visible(h) {
			d.cur = h
			d.inBody = false
			return
		}
	}
}

// BackToHeading normalizes a cursor that drifted into a body back onto the
// heading line. No-op when already on a heading line.
func (d *Document) BackToHeading() {
	d.inBody = false
}

// DriftIntoBody moves the cursor off the heading line into its body. Used
// by hosts that let the cursor roam and by tests.
func (d *Document) DriftIntoBody() {
	if d.cur != nil {
		d.inBody = true
	}
}

// Visibility

// HideSubtree collapses the current heading: its body and everything below
// it. Descendants are collapsed too so a later ShowChildren reveals them
// folded.
func (d *Document) HideSubtree() {
	if d.cur == nil {
		return
	}
	hideTree(d.cur)
}

func hideTree(h *Heading) {
	h.bodyVisible = false
	h.childrenVisible = false
	for _, c := range h.children {
		hideTree(c)
	}
}

// HideEntry hides the body of the current heading
func (d *Document) HideEntry() {
	if d.cur != nil {
		d.cur.bodyVisible = false
	}
}

// ShowChildren reveals the immediate children of the current heading, one
// level of disclosure only
func (d *Document) ShowChildren() {
	if d.cur != nil {
		d.cur.childrenVisible = true
	}
}

// ShowEntry shows the body of the current heading
func (d *Document) ShowEntry() {
	if d.cur != nil {
		d.cur.bodyVisible = true
	}
}

// Display access

// Current returns a snapshot of the heading under the cursor
func (d *Document) Current() (domain.Heading, bool) {
	if d.cur == nil {
		return domain.Heading{}, false
	}
	return d.cur.snapshot(), true
}

// CurrentID returns the id of the heading under the cursor, 0 when the
// cursor is before the first heading
func (d *Document) CurrentID() int {
	if d.cur == nil {
		return 0
	}
	return d.cur.ID
}

// MoveTo places the cursor on the heading with the given id
func (d *Document) MoveTo(id int) bool {
	for h := d.firstHeading(); h != nil; h = d.successor(h) {
		if h.ID == id {
			d.cur = h
			d.inBody = false
			return true
		}
	}
	return false
}

// Rows returns the visible heading lines in display order
func (d *Document) Rows() []domain.Row {
	var rows []domain.Row
	var walk func(h *Heading)
	walk = func(h *Heading) {
		for _, c := range h.children {
			rows = append(rows, domain.Row{
				Heading: c.snapshot(),
				Fold: domain.FoldState{
					BodyVisible:     c.bodyVisible,
					ChildrenVisible: c.childrenVisible,
				},
			})
			if c.childrenVisible {
				walk(c)
			}
		}
	}
	walk(d.root)
	return rows
}
