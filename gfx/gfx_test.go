package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayo3d/mayo/document"
)

func boxLabel(name string, min, max mgl32.Vec3) *document.Label {
	return document.NewShapeLabel(name, document.NewBoxShape(min, max))
}

func TestBox(t *testing.T) {
	empty := EmptyBox()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, mgl32.Vec3{}, empty.Size())

	a := BoxOf(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	b := BoxOf(mgl32.Vec3{2, -1, 0}, mgl32.Vec3{3, 0, 4})
	u := a.Union(b)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, u.Min)
	assert.Equal(t, mgl32.Vec3{3, 1, 4}, u.Max)
	assert.Equal(t, a, a.Union(empty))
	assert.Equal(t, a, empty.Union(a))
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, a.Center())

	moved := a.Transformed(mgl32.Translate3D(10, 0, 0))
	assert.Equal(t, mgl32.Vec3{10, 0, 0}, moved.Min)
	assert.Equal(t, mgl32.Vec3{11, 1, 1}, moved.Max)

	rotated := a.Transformed(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	assert.InDelta(t, -1, rotated.Min.X(), 1e-5)
	assert.InDelta(t, 1, rotated.Max.Y(), 1e-5)
}

func TestDriverTable_CreateObject(t *testing.T) {
	table := DefaultDriverTable()

	solid := table.CreateObject(boxLabel("solid", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NotNil(t, solid)
	assert.Equal(t, DriverShape, solid.Driver)
	assert.Equal(t, ObjectProduct, solid.Kind)

	mesh := table.CreateObject(document.NewShapeLabel("mesh", document.NewMeshShape(mgl32.Vec3{}, mgl32.Vec3{1, 2, 3})))
	require.NotNil(t, mesh)
	assert.Equal(t, DriverMesh, mesh.Driver, "mesh driver has complete support for meshes")

	assert.Nil(t, table.CreateObject(document.NewShapeLabel("empty", &document.Shape{})))
	assert.Nil(t, table.CreateObject(nil))

	assert.NotNil(t, table.Find(DriverMesh))
	assert.Nil(t, table.Find(DriverNone))
}

func TestDriver_ApplyDisplayMode(t *testing.T) {
	obj := ShapeDriver{}.CreateObject(boxLabel("s", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	ShapeDriver{}.ApplyDisplayMode(obj, DisplayShadedWithFaceBoundary)
	assert.Equal(t, DisplayShadedWithFaceBoundary, obj.Attributes.DisplayMode)
	assert.True(t, obj.Attributes.FaceBoundaryDraw)

	ShapeDriver{}.ApplyDisplayMode(obj, DisplayShadedWithNodes)
	assert.Equal(t, DisplayShadedWithFaceBoundary, obj.Attributes.DisplayMode, "unsupported mode ignored")

	MeshDriver{}.ApplyDisplayMode(obj, DisplayWireframe)
	assert.Equal(t, DisplayShadedWithFaceBoundary, obj.Attributes.DisplayMode, "foreign driver ignored")

	mode, ok := ParseDisplayMode("hlr")
	assert.True(t, ok)
	assert.Equal(t, DisplayHiddenLineRemoval, mode)
	_, ok = ParseDisplayMode("x-ray")
	assert.False(t, ok)
}

func TestNewInstance_SharesGeometry(t *testing.T) {
	product := ShapeDriver{}.CreateObject(boxLabel("p", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	ShapeDriver{}.ApplyDisplayMode(product, DisplayShadedWithFaceBoundary)

	inst, err := NewInstance(product, mgl32.Translate3D(5, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, ObjectInstance, inst.Kind)
	assert.Same(t, product, inst.Product)
	assert.Same(t, product.Shape, inst.Shape)
	assert.Equal(t, product.Attributes, inst.Attributes)
	assert.NotEqual(t, product.Id, inst.Id)
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, inst.BoundingBox().Min)

	inst.Attributes.DisplayMode = DisplayWireframe
	assert.Equal(t, DisplayShadedWithFaceBoundary, product.Attributes.DisplayMode)

	_, err = NewInstance(nil, mgl32.Ident4())
	assert.ErrorIs(t, err, ErrNilProduct)
}

func TestScene_VisibilityAndSelection(t *testing.T) {
	s := NewScene()
	a := ShapeDriver{}.CreateObject(boxLabel("a", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	b := ShapeDriver{}.CreateObject(boxLabel("b", mgl32.Vec3{2, 2, 2}, mgl32.Vec3{3, 3, 3}))
	s.AddObject(a)
	s.AddObject(b)
	s.AddObject(a)
	assert.Equal(t, 2, s.Len())

	signals := 0
	s.SelectionChanged.Connect(func(*Scene) { signals++ })

	s.ToggleOwnerSelection(a)
	assert.True(t, s.IsOwnerSelected(a))
	assert.Equal(t, 0, signals, "programmatic toggle is silent")

	s.SetObjectVisible(a, false)
	assert.False(t, s.IsObjectVisible(a))
	assert.False(t, s.IsOwnerSelected(a), "hidden objects leave the selection")
	s.ToggleOwnerSelection(a)
	assert.Equal(t, 0, s.SelectedCount(), "hidden objects cannot be toggled")

	s.Select(a, b)
	assert.Equal(t, 1, signals)
	var owners []*Object
	s.ForeachSelectedOwner(func(o *Object) { owners = append(owners, o) })
	assert.Equal(t, []*Object{b}, owners)

	s.AddToSelection(b)
	assert.Equal(t, 0, s.SelectedCount())
	s.ClearSelection()
	assert.Equal(t, 2, signals, "clearing an empty selection is silent")

	s.SetObjectVisible(a, true)
	assert.Equal(t, BoxOf(mgl32.Vec3{}, mgl32.Vec3{3, 3, 3}), s.BoundingBox())

	s.Highlight(b)
	s.EraseObject(b)
	assert.Nil(t, s.HighlightedObject())
	assert.False(t, s.Contains(b))
}

func TestScene_RedrawBlocker(t *testing.T) {
	s := NewScene()
	s.Redraw()
	assert.Equal(t, 1, s.RedrawCount())

	outer := s.NewRedrawBlocker()
	inner := s.NewRedrawBlocker()
	for i := 0; i < 5; i++ {
		s.AddObject(ShapeDriver{}.CreateObject(boxLabel("x", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})))
	}
	inner.Release()
	inner.Release()
	assert.Equal(t, 1, s.RedrawCount())
	outer.Release()
	assert.Equal(t, 2, s.RedrawCount(), "bulk changes issue exactly one redraw")

	quiet := s.NewRedrawBlocker()
	quiet.Release()
	assert.Equal(t, 2, s.RedrawCount())
}
