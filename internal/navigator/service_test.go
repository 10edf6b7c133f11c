package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelnav/internal/domain"
	"zettelnav/internal/outline"
)

// buildFixture builds the reference tree:
//
//	1 A
//	  2 A1
//	  2 A2
//	    3 A2a
//	1 B
//	  2 B1
func buildFixture(t *testing.T) (*outline.Document, map[string]int) {
	t.Helper()
	doc := outline.New()
	ids := make(map[string]int)
	for _, h := range []struct {
		level int
		title string
	}{
		{1, "A"},
		{2, "A1"},
		{2, "A2"},
		{3, "A2a"},
		{1, "B"},
		{2, "B1"},
	} {
		added, err := doc.Add(h.level, h.title, "body of "+h.title)
		require.NoError(t, err)
		ids[h.title] = added.ID
	}
	return doc, ids
}

func currentTitle(t *testing.T, doc *outline.Document) string {
	t.Helper()
	h, ok := doc.Current()
	require.True(t, ok, "cursor should be on a heading")
	return h.Title
}

func findRow(rows []domain.Row, title string) (domain.Row, bool) {
	for _, r := range rows {
		if r.Heading.Title == title {
			return r, true
		}
	}
	return domain.Row{}, false
}

func TestForwardMovesToNextSibling(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["A1"]))

	err := nav.Forward()
	require.NoError(t, err)
	assert.Equal(t, "A2", currentTitle(t, doc))

	// A2's immediate children are disclosed: A2a is present but folded
	row, ok := findRow(doc.Rows(), "A2a")
	require.True(t, ok, "A2a should be visible after disclosing A2")
	assert.False(t, row.Fold.ChildrenVisible)
}

func TestForwardAscendsWhenLastSibling(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A2"]))

	// A2 is the last sibling under A, but B exists after it, so the climb
	// reaches A and steps to B instead of signalling
	err := nav.Forward()
	require.NoError(t, err)
	assert.Equal(t, "B", currentTitle(t, doc))

	// A's subtree was collapsed before stepping away
	_, ok := findRow(doc.Rows(), "A1")
	assert.False(t, ok, "A's children should be folded away")

	// B's children were disclosed
	_, ok = findRow(doc.Rows(), "B1")
	assert.True(t, ok, "B's children should be visible")
}

func TestForwardAtLastHeadingSignals(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["B1"]))

	err := nav.Forward()
	assert.ErrorIs(t, err, ErrAtLastHeading)
	assert.Equal(t, "B1", currentTitle(t, doc), "position must not change on the terminal condition")
}

func TestForwardFromBeforeFirstHeading(t *testing.T) {
	doc, _ := buildFixture(t)
	nav := NewService(doc, nil)

	err := nav.Forward()
	require.NoError(t, err)
	assert.Equal(t, "A", currentTitle(t, doc))
}

func TestForwardOnEmptyDocumentSignals(t *testing.T) {
	doc := outline.New()
	nav := NewService(doc, nil)

	err := nav.Forward()
	assert.ErrorIs(t, err, ErrAtLastHeading)
}

func TestBackwardMovesToPreviousSibling(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A2"]))

	err := nav.Backward()
	require.NoError(t, err)
	assert.Equal(t, "A1", currentTitle(t, doc))
}

func TestBackwardAscendsFromFirstSibling(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)

	// Make A's children visible first so the fold change is observable
	require.True(t, doc.MoveTo(ids["A"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["A1"]))

	err := nav.Backward()
	require.NoError(t, err)
	assert.Equal(t, "A", currentTitle(t, doc))

	// A1 stays on screen but its entry and subtree are folded
	row, ok := findRow(doc.Rows(), "A1")
	require.True(t, ok)
	assert.False(t, row.Fold.BodyVisible)
	assert.False(t, row.Fold.ChildrenVisible)
}

func TestBackwardAtFirstTopLevelSignals(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))

	err := nav.Backward()
	assert.ErrorIs(t, err, ErrAtFirstHeading)
	assert.Equal(t, "A", currentTitle(t, doc))
}

func TestBackwardNormalizesCursorFromBody(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))
	doc.DriftIntoBody()
	require.False(t, doc.OnHeadingLine())

	// Not a terminal condition: the move is the normalization itself
	err := nav.Backward()
	require.NoError(t, err)
	assert.Equal(t, "A", currentTitle(t, doc))
	assert.True(t, doc.OnHeadingLine())
}

func TestOuterAscendsToParent(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)

	// Disclose down to A2a so its row is observable afterwards
	require.True(t, doc.MoveTo(ids["A"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["A2"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["A2a"]))

	err := nav.OuterOrBackward()
	require.NoError(t, err)
	assert.Equal(t, "A2", currentTitle(t, doc))

	row, ok := findRow(doc.Rows(), "A2a")
	require.True(t, ok)
	assert.False(t, row.Fold.BodyVisible, "A2a's subtree display is collapsed")
}

func TestOuterAtTopLevelFallsBackToBackward(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["B"]))

	err := nav.OuterOrBackward()
	require.NoError(t, err)
	assert.Equal(t, "A", currentTitle(t, doc))
}

func TestInnerDescendsIntoFirstChild(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))

	err := nav.InnerOrForward()
	require.NoError(t, err)
	assert.Equal(t, "A1", currentTitle(t, doc))
}

func TestInnerOnLeafMovesForward(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A1"]))

	err := nav.InnerOrForward()
	require.NoError(t, err)
	assert.Equal(t, "A2", currentTitle(t, doc))
}

func TestInnerBootstrapsFromBeforeFirstHeading(t *testing.T) {
	doc, _ := buildFixture(t)
	nav := NewService(doc, nil)

	err := nav.InnerOrForward()
	require.NoError(t, err)
	assert.Equal(t, "A", currentTitle(t, doc))
}

func TestInnerWalksWholeOutlineInPreOrder(t *testing.T) {
	doc, _ := buildFixture(t)
	nav := NewService(doc, nil)

	want := []string{"A", "A1", "A2", "A2a", "B", "B1"}
	var got []string
	for range want {
		require.NoError(t, nav.InnerOrForward())
		got = append(got, currentTitle(t, doc))
	}
	assert.Equal(t, want, got, "repeated inner-or-forward enumerates every heading once, depth first")

	// One more step runs off the end
	err := nav.InnerOrForward()
	assert.ErrorIs(t, err, ErrAtLastHeading)
	assert.Equal(t, "B1", currentTitle(t, doc))
}

func TestNavigateDispatch(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A1"]))

	require.NoError(t, nav.Navigate(DirectionForward))
	assert.Equal(t, "A2", currentTitle(t, doc))

	require.NoError(t, nav.Navigate(DirectionBackward))
	assert.Equal(t, "A1", currentTitle(t, doc))
}

func TestToggleFoldModeIsAnInvolution(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))

	assert.False(t, nav.BodiesShown(), "session starts in skim mode")

	assert.True(t, nav.ToggleFoldMode())
	row, _ := findRow(doc.Rows(), "A")
	assert.True(t, row.Fold.BodyVisible, "toggling on shows the current entry")

	assert.False(t, nav.ToggleFoldMode())
	row, _ = findRow(doc.Rows(), "A")
	assert.False(t, row.Fold.BodyVisible, "toggling twice restores the original display")
}

func TestFoldModeAppliedAfterEveryMove(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["A"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["A1"]))

	nav.ToggleFoldMode()
	require.NoError(t, nav.Forward())
	row, ok := findRow(doc.Rows(), "A2")
	require.True(t, ok)
	assert.True(t, row.Fold.BodyVisible, "read mode shows the body at the new position")

	nav.ToggleFoldMode()
	require.NoError(t, nav.Backward())
	row, ok = findRow(doc.Rows(), "A1")
	require.True(t, ok)
	assert.False(t, row.Fold.BodyVisible, "skim mode hides the body at the new position")
}

func TestFoldModeAppliedOnTerminalCondition(t *testing.T) {
	doc, ids := buildFixture(t)
	nav := NewService(doc, nil)
	require.True(t, doc.MoveTo(ids["B"]))
	doc.ShowChildren()
	require.True(t, doc.MoveTo(ids["B1"]))

	nav.ToggleFoldMode()
	err := nav.Forward()
	assert.ErrorIs(t, err, ErrAtLastHeading)

	row, ok := findRow(doc.Rows(), "B1")
	require.True(t, ok)
	assert.True(t, row.Fold.BodyVisible, "the display toggle still applies after a terminal signal")
}
