package gfx

import (
	"slices"

	"github.com/mayo3d/mayo/document"
)

// DriverKind tags every object with the driver able to handle it, so
// display mode dispatch never needs to inspect the object type.
type DriverKind int

const (
	DriverNone DriverKind = iota
	DriverShape
	DriverMesh
)

func (k DriverKind) String() string {
	switch k {
	case DriverShape:
		return "shape"
	case DriverMesh:
		return "mesh"
	}
	return "none"
}

type SupportStatus int

const (
	SupportNone SupportStatus = iota
	SupportPartial
	SupportComplete
)

// Driver builds graphics objects for labels and applies its display modes.
type Driver interface {
	Kind() DriverKind
	SupportStatus(label *document.Label) SupportStatus
	// CreateObject returns nil when the label has nothing to display.
	CreateObject(label *document.Label) *Object
	DisplayModes() []DisplayMode
	DefaultDisplayMode() DisplayMode
	ApplyDisplayMode(obj *Object, mode DisplayMode)
}

type ShapeDriver struct{}

func (ShapeDriver) Kind() DriverKind { return DriverShape }

func (ShapeDriver) SupportStatus(label *document.Label) SupportStatus {
	if label == nil || label.Shape.IsEmpty() {
		return SupportNone
	}
	switch label.Shape.Kind {
	case document.ShapeSolid:
		return SupportComplete
	case document.ShapeMesh:
		return SupportPartial
	}
	return SupportNone
}

func (d ShapeDriver) CreateObject(label *document.Label) *Object {
	if d.SupportStatus(label) == SupportNone {
		return nil
	}
	obj := NewProduct(DriverShape, label)
	obj.Attributes.DisplayMode = d.DefaultDisplayMode()
	return obj
}

func (ShapeDriver) DisplayModes() []DisplayMode {
	return []DisplayMode{DisplayWireframe, DisplayHiddenLineRemoval, DisplayShaded, DisplayShadedWithFaceBoundary}
}

func (ShapeDriver) DefaultDisplayMode() DisplayMode { return DisplayShaded }

func (d ShapeDriver) ApplyDisplayMode(obj *Object, mode DisplayMode) {
	if obj == nil || obj.Driver != DriverShape || !slices.Contains(d.DisplayModes(), mode) {
		return
	}
	obj.Attributes.DisplayMode = mode
	obj.Attributes.FaceBoundaryDraw = mode == DisplayShadedWithFaceBoundary
}

type MeshDriver struct{}

func (MeshDriver) Kind() DriverKind { return DriverMesh }

func (MeshDriver) SupportStatus(label *document.Label) SupportStatus {
	if label == nil || label.Shape.IsEmpty() || label.Shape.Kind != document.ShapeMesh {
		return SupportNone
	}
	return SupportComplete
}

func (d MeshDriver) CreateObject(label *document.Label) *Object {
	if d.SupportStatus(label) == SupportNone {
		return nil
	}
	obj := NewProduct(DriverMesh, label)
	obj.Attributes.DisplayMode = d.DefaultDisplayMode()
	return obj
}

func (MeshDriver) DisplayModes() []DisplayMode {
	return []DisplayMode{DisplayWireframe, DisplayShaded, DisplayShadedWithNodes}
}

func (MeshDriver) DefaultDisplayMode() DisplayMode { return DisplayShaded }

func (d MeshDriver) ApplyDisplayMode(obj *Object, mode DisplayMode) {
	if obj == nil || obj.Driver != DriverMesh || !slices.Contains(d.DisplayModes(), mode) {
		return
	}
	obj.Attributes.DisplayMode = mode
}

// DriverTable creates objects with the driver reporting the best support
// for a label. Ties go to the driver registered first.
type DriverTable struct {
	drivers []Driver
}

func NewDriverTable(drivers ...Driver) *DriverTable {
	return &DriverTable{drivers: drivers}
}

// DefaultDriverTable registers the shape and mesh drivers.
func DefaultDriverTable() *DriverTable {
	return NewDriverTable(ShapeDriver{}, MeshDriver{})
}

func (t *DriverTable) Register(d Driver) {
	t.drivers = append(t.drivers, d)
}

func (t *DriverTable) Drivers() []Driver {
	return append([]Driver(nil), t.drivers...)
}

func (t *DriverTable) Find(kind DriverKind) Driver {
	for _, d := range t.drivers {
		if d.Kind() == kind {
			return d
		}
	}
	return nil
}

// CreateObject returns nil if no driver supports label.
func (t *DriverTable) CreateObject(label *document.Label) *Object {
	var best Driver
	bestStatus := SupportNone
	for _, d := range t.drivers {
		if s := d.SupportStatus(label); s > bestStatus {
			best, bestStatus = d, s
		}
	}
	if best == nil {
		return nil
	}
	return best.CreateObject(label)
}
