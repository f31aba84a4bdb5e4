package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mayo3d/mayo/document"
)

type sceneEntry struct {
	visible  bool
	selected bool
}

// Scene is the interactive context: the set of displayed objects with
// their visibility and selection state. Each object is its own selection
// owner.
type Scene struct {
	objects     []*Object
	entries     map[*Object]*sceneEntry
	selected    []*Object
	highlighted *Object

	redrawBlock   int
	redrawPending bool
	redrawCount   int

	// SelectionChanged fires on user driven selection changes only.
	// ToggleOwnerSelection is programmatic and stays silent.
	SelectionChanged document.Signal[*Scene]
}

func NewScene() *Scene {
	return &Scene{
		entries: make(map[*Object]*sceneEntry),
	}
}

// AddObject displays obj. Adding an object twice is a no-op.
func (s *Scene) AddObject(obj *Object) {
	if obj == nil || s.Contains(obj) {
		return
	}
	s.objects = append(s.objects, obj)
	s.entries[obj] = &sceneEntry{visible: true}
	s.Redraw()
}

func (s *Scene) EraseObject(obj *Object) {
	if !s.Contains(obj) {
		return
	}
	s.unselect(obj)
	if s.highlighted == obj {
		s.highlighted = nil
	}
	delete(s.entries, obj)
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	s.Redraw()
}

func (s *Scene) Contains(obj *Object) bool {
	_, ok := s.entries[obj]
	return ok
}

func (s *Scene) Objects() []*Object {
	return append([]*Object(nil), s.objects...)
}

func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) IsObjectVisible(obj *Object) bool {
	e, ok := s.entries[obj]
	return ok && e.visible
}

// SetObjectVisible shows or hides obj. A hidden object leaves the
// selection.
func (s *Scene) SetObjectVisible(obj *Object, on bool) {
	e, ok := s.entries[obj]
	if !ok || e.visible == on {
		return
	}
	e.visible = on
	if !on {
		s.unselect(obj)
		if s.highlighted == obj {
			s.highlighted = nil
		}
	}
	s.Redraw()
}

func (s *Scene) ObjectTransformation(obj *Object) mgl32.Mat4 {
	return obj.transform
}

func (s *Scene) SetObjectTransformation(obj *Object, m mgl32.Mat4) {
	obj.transform = m
	if s.Contains(obj) {
		s.Redraw()
	}
}

// ToggleOwnerSelection flips the selection of a displayed, visible owner.
func (s *Scene) ToggleOwnerSelection(obj *Object) {
	e, ok := s.entries[obj]
	if !ok || !e.visible {
		return
	}
	if e.selected {
		s.unselect(obj)
	} else {
		e.selected = true
		s.selected = append(s.selected, obj)
	}
	s.Redraw()
}

func (s *Scene) IsOwnerSelected(obj *Object) bool {
	e, ok := s.entries[obj]
	return ok && e.selected
}

func (s *Scene) SelectedCount() int {
	return len(s.selected)
}

// ForeachSelectedOwner visits selected owners in selection order.
func (s *Scene) ForeachSelectedOwner(fn func(*Object)) {
	for _, obj := range append([]*Object(nil), s.selected...) {
		fn(obj)
	}
}

// Select replaces the selection with the visible objects among objs, as a
// click in the view does.
func (s *Scene) Select(objs ...*Object) {
	for _, obj := range s.selected {
		s.entries[obj].selected = false
	}
	s.selected = s.selected[:0]
	for _, obj := range objs {
		e, ok := s.entries[obj]
		if !ok || !e.visible || e.selected {
			continue
		}
		e.selected = true
		s.selected = append(s.selected, obj)
	}
	s.Redraw()
	s.SelectionChanged.Emit(s)
}

// AddToSelection toggles obj in the current selection, as a shift-click
// does.
func (s *Scene) AddToSelection(obj *Object) {
	if !s.IsObjectVisible(obj) {
		return
	}
	s.ToggleOwnerSelection(obj)
	s.SelectionChanged.Emit(s)
}

func (s *Scene) ClearSelection() {
	if len(s.selected) == 0 {
		return
	}
	s.Select()
}

func (s *Scene) Highlight(obj *Object) {
	if obj != nil && !s.IsObjectVisible(obj) {
		return
	}
	if s.highlighted != obj {
		s.highlighted = obj
		s.Redraw()
	}
}

func (s *Scene) HighlightedObject() *Object {
	return s.highlighted
}

func (s *Scene) unselect(obj *Object) {
	e, ok := s.entries[obj]
	if !ok || !e.selected {
		return
	}
	e.selected = false
	for i, o := range s.selected {
		if o == obj {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			break
		}
	}
}

// BoundingBox is the union of the boxes of visible objects, helpers
// excluded.
func (s *Scene) BoundingBox() Box {
	box := EmptyBox()
	for _, obj := range s.objects {
		if obj.Kind != ObjectHelper && s.entries[obj].visible {
			box = box.Union(obj.BoundingBox())
		}
	}
	return box
}

// Redraw requests a redraw, deferred while a RedrawBlocker is alive.
func (s *Scene) Redraw() {
	if s.redrawBlock > 0 {
		s.redrawPending = true
		return
	}
	s.redrawCount++
}

// RedrawCount is the number of redraws actually issued.
func (s *Scene) RedrawCount() int {
	return s.redrawCount
}

// RedrawBlocker coalesces redraw requests. Blockers nest; the outermost
// Release issues a single redraw if any was requested meanwhile.
type RedrawBlocker struct {
	scene    *Scene
	released bool
}

func (s *Scene) NewRedrawBlocker() *RedrawBlocker {
	s.redrawBlock++
	return &RedrawBlocker{scene: s}
}

func (b *RedrawBlocker) Release() {
	if b.released {
		return
	}
	b.released = true
	s := b.scene
	s.redrawBlock--
	if s.redrawBlock == 0 && s.redrawPending {
		s.redrawPending = false
		s.redrawCount++
	}
}
