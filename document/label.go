package document

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

type LabelId uint64

type LabelKind int

const (
	LabelSimpleShape LabelKind = iota
	LabelAssembly
	LabelReference
)

func (k LabelKind) String() string {
	switch k {
	case LabelSimpleShape:
		return "shape"
	case LabelAssembly:
		return "assembly"
	case LabelReference:
		return "reference"
	}
	return "unknown"
}

// Label is the payload carried by model tree nodes. Several tree nodes may
// carry the same *Label when a product is referenced more than once.
type Label struct {
	Id   LabelId
	Name string
	Kind LabelKind

	// Location is the placement relative to the parent node, identity
	// unless the label is a placed reference.
	Location mgl32.Mat4

	Shape      *Shape   // LabelSimpleShape
	Referred   *Label   // LabelReference
	Components []*Label // LabelAssembly, usually references
}

var labelIdCounter atomic.Uint64

func nextLabelId() LabelId {
	return LabelId(labelIdCounter.Add(1))
}

func NewShapeLabel(name string, shape *Shape) *Label {
	return &Label{
		Id:       nextLabelId(),
		Name:     name,
		Kind:     LabelSimpleShape,
		Location: mgl32.Ident4(),
		Shape:    shape,
	}
}

func NewAssemblyLabel(name string, components ...*Label) *Label {
	return &Label{
		Id:         nextLabelId(),
		Name:       name,
		Kind:       LabelAssembly,
		Location:   mgl32.Ident4(),
		Components: components,
	}
}

// NewReferenceLabel creates a reference to referred placed at location.
func NewReferenceLabel(name string, referred *Label, location mgl32.Mat4) *Label {
	return &Label{
		Id:       nextLabelId(),
		Name:     name,
		Kind:     LabelReference,
		Location: location,
		Referred: referred,
	}
}

func (l *Label) IsReference() bool { return l != nil && l.Kind == LabelReference }
func (l *Label) IsAssembly() bool  { return l != nil && l.Kind == LabelAssembly }

type ShapeKind int

const (
	ShapeEmpty ShapeKind = iota
	ShapeSolid
	ShapeMesh
)

// Shape is the geometry owned by a simple shape label, reduced to the
// point set needed for bounding volumes.
type Shape struct {
	Kind   ShapeKind
	Points []mgl32.Vec3
}

func NewSolidShape(points ...mgl32.Vec3) *Shape {
	return &Shape{Kind: ShapeSolid, Points: points}
}

func NewMeshShape(points ...mgl32.Vec3) *Shape {
	return &Shape{Kind: ShapeMesh, Points: points}
}

// NewBoxShape returns a solid spanning the two corners.
func NewBoxShape(min, max mgl32.Vec3) *Shape {
	return NewSolidShape(
		mgl32.Vec3{min.X(), min.Y(), min.Z()},
		mgl32.Vec3{max.X(), min.Y(), min.Z()},
		mgl32.Vec3{min.X(), max.Y(), min.Z()},
		mgl32.Vec3{max.X(), max.Y(), min.Z()},
		mgl32.Vec3{min.X(), min.Y(), max.Z()},
		mgl32.Vec3{max.X(), min.Y(), max.Z()},
		mgl32.Vec3{min.X(), max.Y(), max.Z()},
		mgl32.Vec3{max.X(), max.Y(), max.Z()},
	)
}

func (s *Shape) IsEmpty() bool {
	return s == nil || s.Kind == ShapeEmpty || len(s.Points) == 0
}
