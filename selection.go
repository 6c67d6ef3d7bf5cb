package embedview

// Rect is an axis-aligned rectangle with canonical ordering
// (Min.X <= Max.X, Min.Y <= Max.Y).
type Rect struct {
	Min, Max Point
}

// rectBetween returns the canonical rectangle spanned by two corner
// points in any order. The start corner of a drag may be numerically
// greater than the current corner on either axis.
func rectBetween(a, b Point) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether p lies within the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SelectionEngine tracks a rubber-band rectangle during a left-button
// drag. It is a two-state machine: idle, and selecting between
// Begin (button down) and End (button up, which commits the tentative
// membership). While selecting, every cursor move re-derives the
// world-space rectangle through the current camera and recomputes the
// set membership of all points, so the tentative selection stays
// correct under concurrent pan or zoom.
type SelectionEngine struct {
	active    bool
	anchor    Point // screen space, fixed at Begin
	cursor    Point // screen space, follows the drag
	tentative []int
}

// Active reports whether a selection drag is in progress.
func (s *SelectionEngine) Active() bool {
	return s.active
}

// Begin starts a selection drag at the given screen position.
// The rectangle starts empty (both corners at p).
func (s *SelectionEngine) Begin(p Point) {
	s.active = true
	s.anchor = p
	s.cursor = p
	s.tentative = s.tentative[:0]
}

// Drag updates the rectangle's moving corner and recomputes membership
// against the given world positions. unproject maps screen to world
// through the current camera. Returns the tentative index set, valid
// until the next call.
func (s *SelectionEngine) Drag(p Point, unproject func(Point) Point, positions []Point) []int {
	if !s.active {
		return nil
	}
	s.cursor = p

	world := rectBetween(unproject(s.anchor), unproject(s.cursor))
	s.tentative = s.tentative[:0]
	for i, pos := range positions {
		if world.Contains(pos) {
			s.tentative = append(s.tentative, i)
		}
	}
	return s.tentative
}

// End commits the drag. It returns the tentative index set, in point
// order, and reports whether a drag was actually in progress (End on
// an idle engine is a no-op). The returned slice may be empty: a
// committed empty selection is distinct from no selection attempted.
func (s *SelectionEngine) End() (selected []int, ok bool) {
	if !s.active {
		return nil, false
	}
	s.active = false
	committed := make([]int, len(s.tentative))
	copy(committed, s.tentative)
	s.tentative = s.tentative[:0]
	return committed, true
}

// Cancel abandons an in-progress drag without committing. Used when
// the point set is replaced mid-drag; no stale selection is emitted.
func (s *SelectionEngine) Cancel() {
	s.active = false
	s.tentative = s.tentative[:0]
}

// ScreenRect returns the rubber-band rectangle in screen space for
// overlay drawing, and whether a drag is in progress.
func (s *SelectionEngine) ScreenRect() (Rect, bool) {
	if !s.active {
		return Rect{}, false
	}
	return rectBetween(s.anchor, s.cursor), true
}
