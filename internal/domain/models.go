package domain

// Heading is a display snapshot of one outline node
type Heading struct {
	ID          int
	Title       string
	Body        string
	Level       int // depth, 1 = top level
	HasChildren bool
}

// FoldState describes what is currently shown beneath a heading
type FoldState struct {
	BodyVisible     bool
	ChildrenVisible bool
}

// Row is one visible heading line in the outline view
type Row struct {
	Heading Heading
	Fold    FoldState
}
