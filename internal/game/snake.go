package game

import (
	"github.com/mzolotov/termsnake/internal/core"
)

// initialLength is the snake body length at construction.
// The body never shrinks below this.
const initialLength = 3

// Snake owns the ordered body (head at index 0), the committed heading,
// a pending-direction buffer, and a single-shot growth flag.
type Snake struct {
	body    []core.Point
	heading core.Direction // direction of the last committed move
	pending core.Direction // buffered direction, applied on the next Move
	growing bool
}

// NewSnake creates a horizontal snake of initialLength cells with its head
// at the given position and the tail extending to the left. With heading
// core.DirNone the snake holds still until a direction is accepted (the
// initial pre-input lockout); core.DirRight starts it moving immediately.
func NewSnake(head core.Point, heading core.Direction) *Snake {
	body := make([]core.Point, initialLength)
	for i := range body {
		body[i] = core.Point{X: head.X - i, Y: head.Y}
	}
	return &Snake{
		body:    body,
		heading: heading,
		pending: heading,
	}
}

// Body returns the snake's cells, head first. Callers must not mutate it.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the body length in cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the direction of the last committed move.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// facing returns the direction the snake points in: the committed heading,
// or before the first move the orientation of the constructed body. The
// head is always one cell away from the second segment, so the difference
// yields exactly one direction.
func (s *Snake) facing() core.Direction {
	if s.heading != core.DirNone {
		return s.heading
	}
	dx := s.body[0].X - s.body[1].X
	dy := s.body[0].Y - s.body[1].Y
	switch {
	case dx > 0:
		return core.DirRight
	case dx < 0:
		return core.DirLeft
	case dy > 0:
		return core.DirDown
	default:
		return core.DirUp
	}
}

// SetDirection buffers d to take effect on the next Move and reports
// whether it was accepted. A request for the exact opposite of the facing
// direction is silently dropped, never queued: applying it would fold the
// head back into the second body segment. Before the first move the body's
// constructed orientation counts as the facing direction, so a still snake
// cannot be reversed into itself either.
func (s *Snake) SetDirection(d core.Direction) bool {
	if d == core.DirNone {
		return false
	}
	if d == s.facing().Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Move commits the pending direction and advances the snake one cell,
// returning the new head position. The tail cell is removed unless growth
// is pending, either via the grow argument or the flag set by Grow; the
// flag is consumed exactly once. Moving with heading DirNone is a no-op,
// reachable only before the first direction has been set.
func (s *Snake) Move(grow bool) core.Point {
	s.heading = s.pending
	if s.heading == core.DirNone {
		return s.Head()
	}

	newHead := s.Head().Translate(s.heading)
	s.body = append([]core.Point{newHead}, s.body...)

	if grow || s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return newHead
}

// Grow marks the snake to keep its tail on the next Move.
func (s *Snake) Grow() {
	s.growing = true
}

// SelfCollides reports whether the head overlaps any non-head body cell.
// O(body length); body length is bounded by the grid cell count.
func (s *Snake) SelfCollides() bool {
	head := s.Head()
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
