package embedview

import (
	"image"

	"github.com/virelay/embedview/render"
	"github.com/virelay/embedview/surface"
)

// Viewer is the interactive embedding visualizer. It renders a
// projected point set as a pan/zoom point cloud, detects hovered
// points, tracks rubber-band selections, and recolors points by
// cluster and selection state.
//
// A Viewer is single-threaded: the host must call all methods from
// its UI event loop. The hover debounce is the only asynchronous
// boundary; its callback may arrive on a timer goroutine unless the
// host supplies a loop-bound TimerFunc.
type Viewer struct {
	cfg      config
	renderer *render.Renderer
	cam      *Camera
	ctrl     cameraController
	hover    *HoverDetector
	sel      SelectionEngine

	pointSet   *PointSet
	firstAxis  int
	secondAxis int
	palette    *Palette

	// worldPos caches the scaled world position of every point,
	// indexed like the point set. It is what hit-testing and
	// selection membership read.
	worldPos []Point

	// committed is the committed selection. nil means no selection
	// has been attempted; an empty non-nil slice is a committed
	// empty selection.
	committed []int

	enabled   bool
	canSelect bool

	onSelection func([]Sample)
}

// New creates a viewer with a render surface of the given pixel size.
// It returns an error if no surface backend can be acquired; the
// caller must treat that as fatal rather than presenting a blank
// view.
func New(width, height int, opts ...Option) (*Viewer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := render.New(render.Options{
		Width:      width,
		Height:     height,
		Backend:    cfg.backend,
		Background: cfg.background,
		PointSize:  cfg.pointSize,
	})
	if err != nil {
		return nil, err
	}

	cam := NewCamera(width, height, cfg.minZoom, cfg.maxZoom)
	v := &Viewer{
		cfg:        cfg,
		renderer:   r,
		cam:        cam,
		ctrl:       cameraController{cam: cam},
		hover:      NewHoverDetector(cfg.hoverDebounce),
		secondAxis: 1,
		enabled:    true,
		canSelect:  cfg.canSelect,
	}
	v.syncView()
	return v, nil
}

// SetPointSet replaces the displayed point set wholesale. The camera
// is reset so the new data is framed from the default view, any
// in-progress selection drag is abandoned without emitting, the
// committed selection is cleared, and the hover state machine returns
// silently to idle.
func (v *Viewer) SetPointSet(ps *PointSet) {
	v.sel.Cancel()
	v.renderer.SetRubberBand(nil)
	v.ctrl.reset()
	v.hover.Reset()
	v.committed = nil

	v.pointSet = ps
	v.palette = NewPalette(ps)
	v.cam.Reset()
	v.rebuildCloud()
	v.recolor()
	v.syncView()

	Logger().Debug("point set assigned",
		"points", ps.Len(), "clusters", v.palette.Clusters(), "dims", ps.Dims())
}

// PointSet returns the currently displayed point set, which may be
// nil.
func (v *Viewer) PointSet() *PointSet {
	return v.pointSet
}

// SetAxes selects which two value-vector dimensions map to screen
// X/Y. World positions and per-axis scale factors are re-derived;
// colors, camera and the committed selection are preserved.
func (v *Viewer) SetAxes(first, second int) {
	if first == v.firstAxis && second == v.secondAxis {
		return
	}
	v.firstAxis = first
	v.secondAxis = second
	v.repositionCloud()
}

// FirstAxis returns the value-vector dimension mapped to screen X.
func (v *Viewer) FirstAxis() int { return v.firstAxis }

// SecondAxis returns the value-vector dimension mapped to screen Y.
func (v *Viewer) SecondAxis() int { return v.secondAxis }

// SetFirstAxis sets the dimension mapped to screen X.
func (v *Viewer) SetFirstAxis(axis int) { v.SetAxes(axis, v.secondAxis) }

// SetSecondAxis sets the dimension mapped to screen Y.
func (v *Viewer) SetSecondAxis(axis int) { v.SetAxes(v.firstAxis, axis) }

// rebuildCloud builds a fresh point-cloud primitive for the current
// point set: one position and one color entry per point, indexed like
// the set. An empty set produces no primitive and downgrades hover
// and selection to no-ops.
func (v *Viewer) rebuildCloud() {
	n := v.pointSet.Len()
	if n == 0 {
		v.worldPos = nil
		v.renderer.SetCloud(nil)
		return
	}

	v.worldPos = make([]Point, n)
	v.renderer.SetCloud(render.NewPointCloud(n))
	v.repositionCloud()
}

// repositionCloud re-derives world positions from the current axis
// pair: each axis is scaled independently so the largest magnitude on
// it lands at 95% of the viewport half-extent.
func (v *Viewer) repositionCloud() {
	cloud := v.renderer.Cloud()
	if cloud == nil {
		return
	}

	halfW, halfH := v.cam.HalfExtents()
	sx := axisScale(halfW, v.pointSet.MaxAbs(v.firstAxis))
	sy := axisScale(halfH, v.pointSet.MaxAbs(v.secondAxis))

	for i := 0; i < v.pointSet.Len(); i++ {
		val := v.pointSet.At(i).Value
		p := Pt(axisValue(val, v.firstAxis)*sx, axisValue(val, v.secondAxis)*sy)
		v.worldPos[i] = p
		cloud.SetPosition(i, p.X, p.Y)
	}
}

// axisValue returns the vector component at axis, or 0 when the axis
// is out of range for this vector.
func axisValue(value []float64, axis int) float64 {
	if axis < 0 || axis >= len(value) {
		return 0
	}
	return value[axis]
}

// recolor repaints the color buffer in place from cluster hue and
// selection state. During a drag the tentative membership is
// highlighted; otherwise a non-empty committed selection is. With no
// selection in play every point gets the idle saturation.
func (v *Viewer) recolor() {
	n := v.pointSet.Len()
	if n == 0 {
		return
	}

	var selected []int
	highlight := false
	switch {
	case v.sel.Active():
		selected = v.sel.tentative
		highlight = true
	case len(v.committed) > 0:
		selected = v.committed
		highlight = true
	}

	base := saturationIdle
	if highlight {
		base = saturationDimmed
	}
	for i := 0; i < n; i++ {
		c := v.palette.ColorFor(v.pointSet.At(i).Cluster, base)
		v.renderer.SetColor(i, c.R, c.G, c.B)
	}
	for _, i := range selected {
		c := v.palette.ColorFor(v.pointSet.At(i).Cluster, saturationSelected)
		v.renderer.SetColor(i, c.R, c.G, c.B)
	}
}

// HandleMouse feeds one mouse event into the viewer. The host routes
// surface-local events here, and — while Dragging reports true —
// window-level moves and releases as well, since a selection drag can
// leave the surface bounds.
func (v *Viewer) HandleMouse(ev MouseEvent) {
	if !v.enabled {
		return
	}

	switch ev.Kind {
	case MouseDown:
		v.ctrl.handleDown(ev)
		if ev.Button == MouseLeft && v.canSelect && v.pointSet.Len() > 0 {
			v.sel.Begin(ev.Pos)
			v.updateDrag(ev.Pos)
		}

	case MouseMove:
		if v.ctrl.handleMove(ev) {
			v.syncView()
		}
		if v.sel.Active() {
			v.updateDrag(ev.Pos)
			return
		}
		if ev.Buttons != 0 {
			// Hover is suppressed while any button is held; a drag
			// must not trigger preview fetches.
			return
		}
		v.observeHover(ev.Pos)

	case MouseUp:
		v.ctrl.handleUp(ev)
		if ev.Button == MouseLeft {
			v.commitSelection()
		}

	case MouseWheel:
		if v.ctrl.handleWheel(ev) {
			v.syncView()
			if v.sel.Active() {
				// Zooming mid-drag moves the world rectangle; refresh
				// membership against the new camera.
				v.updateDrag(v.sel.cursor)
			}
		}
	}
}

// Dragging reports whether a selection drag is in progress. Hosts use
// it to decide when to forward window-level mouse events.
func (v *Viewer) Dragging() bool {
	return v.sel.Active()
}

// updateDrag advances the rubber band to the given cursor position,
// recomputes membership through the current camera, and repaints the
// tentative highlight.
func (v *Viewer) updateDrag(pos Point) {
	v.sel.Drag(pos, v.cam.ScreenToWorld, v.worldPos)
	v.recolor()

	if r, ok := v.sel.ScreenRect(); ok {
		v.renderer.SetRubberBand(&surface.Rect{
			X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y,
		})
	}
}

// commitSelection finalizes an active drag into the committed
// selection and notifies the consumer with the ordered selected
// samples. A commit of zero points still notifies (with an empty
// list), so downstream state clears deterministically.
func (v *Viewer) commitSelection() {
	indices, ok := v.sel.End()
	if !ok {
		return
	}
	v.renderer.SetRubberBand(nil)
	v.committed = indices
	v.recolor()

	Logger().Debug("selection committed", "count", len(indices))
	if v.onSelection != nil {
		v.onSelection(v.samplesAt(indices))
	}
}

// observeHover runs the nearest-point query for a cursor position and
// feeds the result to the hover state machine.
func (v *Viewer) observeHover(pos Point) {
	hit := v.hitTest(pos)
	var ev HoverEvent
	if hit >= 0 {
		r, g, b := v.renderer.Color(hit)
		ev = HoverEvent{
			Index:  hit,
			Sample: v.pointSet.At(hit),
			Color:  RGB(r, g, b),
		}
	}
	v.hover.Observe(hit, ev)
}

// hitTest returns the index of the nearest point within the catch
// radius of the given screen position, or -1. The pixel threshold is
// divided by the current zoom so the target keeps a constant apparent
// size: zooming in shrinks the world-space radius.
func (v *Viewer) hitTest(pos Point) int {
	if len(v.worldPos) == 0 {
		return -1
	}
	radius := v.cfg.hoverThreshold / v.cam.Zoom()
	cursor := v.cam.ScreenToWorld(pos)

	best := -1
	bestD := radius * radius
	for i, p := range v.worldPos {
		if d := p.DistanceSquared(cursor); d <= bestD {
			best = i
			bestD = d
		}
	}
	return best
}

// Resize keeps the camera frustum and the render surface in sync with
// a new container size. Zoom, pan, point scale and the current
// selection are left untouched.
func (v *Viewer) Resize(width, height int) error {
	v.cam.SetViewport(width, height)
	if err := v.renderer.Resize(width, height); err != nil {
		return err
	}
	v.syncView()
	return nil
}

// SetSelection sets the committed selection from the host (for
// example, restoring a shared link). Out-of-range indices are
// dropped. No selection-changed event is emitted for host-initiated
// changes.
func (v *Viewer) SetSelection(indices []int) {
	n := v.pointSet.Len()
	committed := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < n {
			committed = append(committed, i)
		}
	}
	v.committed = committed
	v.recolor()
}

// ResetSelection returns the viewer to the no-selection-attempted
// state, distinct from a committed empty selection.
func (v *Viewer) ResetSelection() {
	v.committed = nil
	v.recolor()
}

// Selection returns a copy of the committed selection indices, or nil
// if no selection has been attempted.
func (v *Viewer) Selection() []int {
	if v.committed == nil {
		return nil
	}
	out := make([]int, len(v.committed))
	copy(out, v.committed)
	return out
}

// SelectionSamples returns the committed selection as ordered sample
// data.
func (v *Viewer) SelectionSamples() []Sample {
	return v.samplesAt(v.committed)
}

func (v *Viewer) samplesAt(indices []int) []Sample {
	out := make([]Sample, len(indices))
	for i, idx := range indices {
		out[i] = v.pointSet.At(idx)
	}
	return out
}

// OnSelectionChanged registers the committed-selection callback. It
// receives the ordered selected samples; an empty list means the user
// committed an empty selection.
func (v *Viewer) OnSelectionChanged(fn func([]Sample)) {
	v.onSelection = fn
}

// OnHover registers the debounced hover callback.
func (v *Viewer) OnHover(fn func(HoverEvent)) {
	v.hover.OnHover(fn)
}

// OnUnhover registers the unhover callback. It fires exactly once per
// hovering-to-idle transition.
func (v *Viewer) OnUnhover(fn func()) {
	v.hover.OnUnhover(fn)
}

// SetEnabled gates all interaction. Disabling mid-drag abandons the
// drag without committing.
func (v *Viewer) SetEnabled(enabled bool) {
	v.enabled = enabled
	if !enabled {
		v.abandonDrag()
	}
}

// SetCanSelect gates rubber-band selection, leaving pan, zoom and
// hover active. Disabling mid-drag abandons the drag.
func (v *Viewer) SetCanSelect(can bool) {
	v.canSelect = can
	if !can {
		v.abandonDrag()
	}
}

func (v *Viewer) abandonDrag() {
	if !v.sel.Active() {
		v.ctrl.reset()
		return
	}
	v.sel.Cancel()
	v.ctrl.reset()
	v.renderer.SetRubberBand(nil)
	v.recolor()
}

// Camera exposes the viewer's camera, e.g. for host-driven framing.
func (v *Viewer) Camera() *Camera {
	return v.cam
}

// Start begins the continuous redraw loop on the given scheduler.
func (v *Viewer) Start(s render.FrameScheduler) {
	v.renderer.Start(s)
}

// Stop halts the redraw loop.
func (v *Viewer) Stop() {
	v.renderer.Stop()
}

// RenderFrame paints a single frame synchronously. Useful for
// headless snapshots without a running loop.
func (v *Viewer) RenderFrame() error {
	return v.renderer.Frame()
}

// Snapshot paints nothing; it returns the most recently painted
// surface contents as an image copy.
func (v *Viewer) Snapshot() *image.RGBA {
	return v.renderer.Surface().Snapshot()
}

// Close stops the redraw loop, cancels pending hover emissions and
// releases the render surface.
func (v *Viewer) Close() error {
	v.hover.Reset()
	return v.renderer.Close()
}

// syncView pushes the camera's world-to-screen transform to the
// renderer.
func (v *Viewer) syncView() {
	m := v.cam.ViewMatrix()
	v.renderer.SetView(surface.Affine{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	})
}
