package gfx

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"

	"github.com/mayo3d/mayo/document"
)

var ErrNilProduct = errors.New("gfx: instance without product")

type ObjectId uint64

type ObjectKind int

const (
	// ObjectProduct owns the representation of a shape label.
	ObjectProduct ObjectKind = iota
	// ObjectInstance shares a product representation at its own placement.
	ObjectInstance
	// ObjectHelper is scene decoration (trihedron, view cube), never
	// attached to a document node.
	ObjectHelper
)

type DisplayMode int

const (
	DisplayWireframe DisplayMode = iota
	DisplayHiddenLineRemoval
	DisplayShaded
	DisplayShadedWithFaceBoundary
	DisplayShadedWithNodes
)

var displayModeNames = map[DisplayMode]string{
	DisplayWireframe:              "wireframe",
	DisplayHiddenLineRemoval:      "hlr",
	DisplayShaded:                 "shaded",
	DisplayShadedWithFaceBoundary: "shaded_with_face_boundary",
	DisplayShadedWithNodes:        "shaded_with_nodes",
}

func (m DisplayMode) String() string {
	if s, ok := displayModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseDisplayMode is the inverse of DisplayMode.String.
func ParseDisplayMode(s string) (DisplayMode, bool) {
	for m, name := range displayModeNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}

// Attributes are the drawing attributes an instance inherits from its
// product.
type Attributes struct {
	DisplayMode      DisplayMode
	FaceBoundaryDraw bool
	Color            [4]float32
}

// Object is a displayable representation of one tree node.
type Object struct {
	Id         ObjectId
	Kind       ObjectKind
	Driver     DriverKind
	Label      *document.Label
	Shape      *document.Shape
	Attributes Attributes

	// Product is set on instances only.
	Product *Object

	transform mgl32.Mat4
}

var objectIdCounter atomic.Uint64

func newObject(kind ObjectKind, driver DriverKind) *Object {
	return &Object{
		Id:        ObjectId(objectIdCounter.Add(1)),
		Kind:      kind,
		Driver:    driver,
		transform: mgl32.Ident4(),
	}
}

func NewProduct(driver DriverKind, label *document.Label) *Object {
	obj := newObject(ObjectProduct, driver)
	obj.Label = label
	if label != nil {
		obj.Shape = label.Shape
	}
	obj.Attributes.Color = [4]float32{0.8, 0.8, 0.8, 1}
	return obj
}

// NewInstance connects a lightweight object to product at location. The
// geometry is shared, the attributes are copied.
func NewInstance(product *Object, location mgl32.Mat4) (*Object, error) {
	if product == nil {
		return nil, ErrNilProduct
	}
	obj := newObject(ObjectInstance, product.Driver)
	obj.Label = product.Label
	obj.Shape = product.Shape
	obj.Product = product
	obj.transform = location
	if err := copier.Copy(&obj.Attributes, &product.Attributes); err != nil {
		return nil, fmt.Errorf("copy attributes of object %d: %w", product.Id, err)
	}
	return obj, nil
}

func NewHelper(name string) *Object {
	obj := newObject(ObjectHelper, DriverNone)
	obj.Label = &document.Label{Name: name}
	return obj
}

func (o *Object) Transformation() mgl32.Mat4 {
	return o.transform
}

// LocalBoundingBox is the box of the geometry before transformation.
func (o *Object) LocalBoundingBox() Box {
	if o.Shape.IsEmpty() {
		return EmptyBox()
	}
	return BoxOf(o.Shape.Points...)
}

func (o *Object) BoundingBox() Box {
	return o.LocalBoundingBox().Transformed(o.transform)
}

func (o *Object) Name() string {
	if o.Label == nil {
		return ""
	}
	return o.Label.Name
}
