package navigator

import (
	"zettelnav/internal/domain"
	"zettelnav/internal/eventbus"
)

// Service implements the movement commands over an Outline. The only
// state it owns is the fold-display toggle: when showBodies is false (the
// session default) each move leaves the new heading's body hidden, when
// true the body is shown.
type Service struct {
	outline    Outline
	bus        eventbus.EventBus
	showBodies bool
}

// NewService creates a navigator over the given outline. The bus may be
// nil for hosts that do not care about notifications.
func NewService(outline Outline, bus eventbus.EventBus) *Service {
	return &Service{
		outline: outline,
		bus:     bus,
	}
}

// Navigate runs the movement command for a direction
func (s *Service) Navigate(d Direction) error {
	switch d {
	case DirectionForward:
		return s.Forward()
	case DirectionBackward:
		return s.Backward()
	case DirectionInner:
		return s.InnerOrForward()
	case DirectionOuter:
		return s.OuterOrBackward()
	default:
		return nil
	}
}

// Forward moves to the next sibling at the same depth, climbing to an
// ancestor when the current heading is the last of its siblings. Returns
// ErrAtLastHeading when no successor exists anywhere.
func (s *Service) Forward() error {
	err := s.forward()
	s.updateFold()
	s.report(DirectionForward, err)
	return err
}

func (s *Service) forward() error {
	// Climb while climbing is both necessary (last sibling) and possible
	// (a parent exists and some heading still follows the cursor). The
	// heading-follows guard is what terminates the climb at the very last
	// heading of the document.
	for s.outline.AtLastSibling() && s.outline.HasParent() && s.outline.HeadingFollows() {
		s.outline.Ascend()
	}
	if s.outline.AtLastSibling() {
		return ErrAtLastHeading
	}
	if !s.outline.BeforeFirstHeading() {
		s.outline.HideSubtree()
	}
	s.outline.NextSibling()
	s.outline.ShowChildren()
	return nil
}

// Backward moves to the previous sibling at the same depth, ascending to
// the parent from a first sibling. Returns ErrAtFirstHeading on the first
// top-level heading.
func (s *Service) Backward() error {
	err := s.backward()
	s.updateFold()
	s.report(DirectionBackward, err)
	return err
}

func (s *Service) backward() error {
	if s.outline.AtFirstSibling() {
		if s.outline.HasParent() {
			s.outline.BackToHeading()
			s.outline.HideEntry()
			s.outline.HideSubtree()
			s.outline.Ascend()
			return nil
		}
		if s.outline.OnHeadingLine() {
			return ErrAtFirstHeading
		}
		// Cursor drifted into the body of the first top-level heading:
		// normalizing onto the heading line is the whole move.
		s.outline.BackToHeading()
		return nil
	}
	s.outline.HideSubtree()
	s.outline.PrevSibling()
	s.outline.ShowChildren()
	return nil
}

// InnerOrForward descends into the first child of the current heading,
// falling back to Forward on a leaf. Repeated invocation walks the whole
// outline in pre-order.
func (s *Service) InnerOrForward() error {
	err := s.innerOrForward()
	s.updateFold()
	s.report(DirectionInner, err)
	return err
}

func (s *Service) innerOrForward() error {
	if s.outline.BeforeFirstHeading() {
		return s.forward()
	}
	s.outline.HideEntry()
	s.outline.ShowChildren()
	if s.outline.HasChildren() {
		s.outline.NextVisibleHeading()
		s.outline.ShowChildren()
		return nil
	}
	return s.forward()
}

// OuterOrBackward ascends to the parent heading, falling back to Backward
// on a top-level heading.
func (s *Service) OuterOrBackward() error {
	err := s.outerOrBackward()
	s.updateFold()
	s.report(DirectionOuter, err)
	return err
}

func (s *Service) outerOrBackward() error {
	if s.outline.HasParent() {
		s.outline.BackToHeading()
		s.outline.HideSubtree()
		s.outline.Ascend()
		return nil
	}
	return s.backward()
}

// ToggleFoldMode flips the fold-display toggle and reapplies it to the
// current heading. Returns the new value.
func (s *Service) ToggleFoldMode() bool {
	s.showBodies = !s.showBodies
	s.updateFold()
	s.publish(domain.FoldModeChangedEvent{ShowBodies: s.showBodies})
	return s.showBodies
}

// BodiesShown returns the current fold-display toggle
func (s *Service) BodiesShown() bool {
	return s.showBodies
}

// updateFold applies the fold-display toggle to the heading under the
// cursor, once per completed command
func (s *Service) updateFold() {
	if s.showBodies {
		s.outline.ShowEntry()
	} else {
		s.outline.HideEntry()
	}
}

func (s *Service) report(d Direction, err error) {
	if err != nil {
		s.publish(domain.NavigationBlockedEvent{
			Command: d.String(),
			Reason:  err.Error(),
		})
		return
	}
	s.publish(domain.HeadingMovedEvent{Command: d.String()})
}

func (s *Service) publish(e domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
