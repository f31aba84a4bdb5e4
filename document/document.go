package document

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var (
	ErrNilLabel    = errors.New("document: nil label")
	ErrNotAnEntity = errors.New("document: not an entity")
)

// Document holds the model tree of every entity imported into it. Each
// root of the tree is an entity.
type Document struct {
	Id   uuid.UUID
	Name string

	tree *Tree[*Label]

	// Notifications are delivered synchronously, before AddEntity and
	// DestroyEntity return.
	EntityAdded              Signal[TreeNodeId]
	EntityAboutToBeDestroyed Signal[TreeNodeId]
}

func NewDocument(name string) *Document {
	return &Document{
		Id:   uuid.New(),
		Name: name,
		tree: NewTree[*Label](),
	}
}

func (d *Document) ModelTree() *Tree[*Label] {
	return d.tree
}

// AddEntity builds the model tree for label as a new root and notifies
// EntityAdded.
func (d *Document) AddEntity(label *Label) (TreeNodeId, error) {
	if label == nil {
		return 0, ErrNilLabel
	}
	id := d.deepBuildAssemblyTree(0, label)
	d.EntityAdded.Emit(id)
	return id, nil
}

// Assemblies get one child per component, references get a single child
// for the referred label. Anything else is a leaf.
func (d *Document) deepBuildAssemblyTree(parent TreeNodeId, label *Label) TreeNodeId {
	node := d.tree.AppendChild(parent, label)
	switch label.Kind {
	case LabelAssembly:
		for _, c := range label.Components {
			if c != nil {
				d.deepBuildAssemblyTree(node, c)
			}
		}
	case LabelReference:
		if label.Referred != nil {
			d.deepBuildAssemblyTree(node, label.Referred)
		}
	}
	return node
}

// DestroyEntity notifies EntityAboutToBeDestroyed and then removes the
// entity subtree.
func (d *Document) DestroyEntity(id TreeNodeId) error {
	if !d.tree.NodeIsRoot(id) {
		return fmt.Errorf("destroy entity %d: %w", id, ErrNotAnEntity)
	}
	d.EntityAboutToBeDestroyed.Emit(id)
	d.tree.RemoveRoot(id)
	return nil
}

func (d *Document) EntityCount() int {
	return len(d.tree.roots)
}

func (d *Document) EntityTreeNodeId(index int) TreeNodeId {
	if index < 0 || index >= len(d.tree.roots) {
		return 0
	}
	return d.tree.roots[index]
}

func (d *Document) Entities() []TreeNodeId {
	return d.tree.Roots()
}

func (d *Document) NodeLabel(id TreeNodeId) *Label {
	return d.tree.Data(id)
}

func (d *Document) NodeIsReference(id TreeNodeId) bool {
	return d.tree.Data(id).IsReference()
}

// ShapeAbsoluteLocation composes the placements found along the path from
// the entity root down to id.
func (d *Document) ShapeAbsoluteLocation(id TreeNodeId) mgl32.Mat4 {
	loc := mgl32.Ident4()
	for _, n := range d.tree.NodePath(id) {
		// A zero matrix means the label was built without a placement.
		if label := d.tree.Data(n); label != nil && label.Location != (mgl32.Mat4{}) {
			loc = loc.Mul4(label.Location)
		}
	}
	return loc
}
