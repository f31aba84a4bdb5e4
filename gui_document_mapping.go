package mayo

import (
	"iter"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mayo3d/mayo/document"
	"github.com/mayo3d/mayo/gfx"
)

type graphicsObject struct {
	obj          *gfx.Object
	bndBox       gfx.Box
	trsfOriginal mgl32.Mat4
}

// GraphicsEntity is the graphics side of one document entity.
type GraphicsEntity struct {
	treeNodeId             document.TreeNodeId
	objects                []graphicsObject
	nodes                  []document.TreeNodeId
	mapTreeNodeToGfxObject map[document.TreeNodeId]*gfx.Object
	mapGfxObjectToTreeNode map[*gfx.Object]document.TreeNodeId
	bndBox                 gfx.Box
}

func newGraphicsEntity(id document.TreeNodeId) *GraphicsEntity {
	return &GraphicsEntity{
		treeNodeId:             id,
		mapTreeNodeToGfxObject: make(map[document.TreeNodeId]*gfx.Object),
		mapGfxObjectToTreeNode: make(map[*gfx.Object]document.TreeNodeId),
		bndBox:                 gfx.EmptyBox(),
	}
}

func (e *GraphicsEntity) TreeNodeId() document.TreeNodeId { return e.treeNodeId }

func (e *GraphicsEntity) BoundingBox() gfx.Box { return e.bndBox }

func (e *GraphicsEntity) Len() int { return len(e.objects) }

// Objects returns the graphics objects in mapping order.
func (e *GraphicsEntity) Objects() []*gfx.Object {
	objs := make([]*gfx.Object, 0, len(e.objects))
	for _, o := range e.objects {
		objs = append(objs, o.obj)
	}
	return objs
}

// ObjectOf returns the object registered for node, nil if none.
func (e *GraphicsEntity) ObjectOf(node document.TreeNodeId) *gfx.Object {
	return e.mapTreeNodeToGfxObject[node]
}

// NodeOf returns the node obj is registered for, zero if none.
func (e *GraphicsEntity) NodeOf(obj *gfx.Object) document.TreeNodeId {
	return e.mapGfxObjectToTreeNode[obj]
}

// OriginalTransformation is the placement obj had when it was mapped.
func (e *GraphicsEntity) OriginalTransformation(obj *gfx.Object) (mgl32.Mat4, bool) {
	for _, o := range e.objects {
		if o.obj == obj {
			return o.trsfOriginal, true
		}
	}
	return mgl32.Mat4{}, false
}

func (e *GraphicsEntity) register(node document.TreeNodeId, obj *gfx.Object) {
	e.objects = append(e.objects, graphicsObject{obj: obj})
	e.mapTreeNodeToGfxObject[node] = obj
	e.mapGfxObjectToTreeNode[obj] = node
}

func (g *GuiDocument) mapEntity(entityId document.TreeNodeId) {
	if g.findGraphicsEntity(entityId) != nil {
		return
	}

	tree := g.doc.ModelTree()
	blocker := g.scene.NewRedrawBlocker()
	defer blocker.Release()

	ent := newGraphicsEntity(entityId)
	// Products are shared by every leaf carrying the same label, for the
	// duration of this traversal only.
	products := make(map[*document.Label]*gfx.Object)
	skipped := 0
	for id := range tree.Walk(entityId) {
		ent.nodes = append(ent.nodes, id)
		if !tree.NodeIsLeaf(id) {
			continue
		}

		label := tree.Data(id)
		product, known := products[label]
		if !known {
			product = g.drivers.CreateObject(label)
			products[label] = product
		}
		if product == nil {
			skipped++
			continue
		}

		var obj *gfx.Object
		if tree.NodeIsRoot(id) {
			obj = product
			g.scene.SetObjectTransformation(obj, g.doc.ShapeAbsoluteLocation(id))
		} else {
			var err error
			if obj, err = gfx.NewInstance(product, g.doc.ShapeAbsoluteLocation(id)); err != nil {
				g.logger.Warnf("node %d not mapped: %v", id, err)
				skipped++
				continue
			}
		}

		// A reference and the product it refers to are one node from the
		// document point of view. Only the direct parent is considered.
		key := id
		if parent := tree.Parent(id); parent != 0 && g.doc.NodeIsReference(parent) {
			key = parent
		}
		ent.register(key, obj)
	}

	for _, o := range ent.objects {
		g.scene.AddObject(o.obj)
		if driver := g.drivers.Find(o.obj.Driver); driver != nil {
			if mode, ok := g.activeDisplayModes[o.obj.Driver]; ok {
				driver.ApplyDisplayMode(o.obj, mode)
			}
		}
	}

	for i := range ent.objects {
		o := &ent.objects[i]
		o.bndBox = o.obj.BoundingBox()
		o.trsfOriginal = g.scene.ObjectTransformation(o.obj)
		ent.bndBox = ent.bndBox.Union(o.bndBox)
	}
	g.bndBox = g.bndBox.Union(ent.bndBox)
	g.fitCameraNow()

	for _, id := range ent.nodes {
		g.checkStates[id] = CheckOn
	}
	g.entities = append(g.entities, ent)
	g.scene.Redraw()

	g.logger.Debugf("mapped entity %d: %d nodes, %d graphics objects, %d leaves skipped",
		entityId, len(ent.nodes), len(ent.objects), skipped)
	g.listener.GraphicsBoundingBoxChanged(g, g.bndBox)
}

func (g *GuiDocument) unmapEntity(entityId document.TreeNodeId) {
	idx := -1
	for i, ent := range g.entities {
		if ent.treeNodeId == entityId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	blocker := g.scene.NewRedrawBlocker()
	defer blocker.Release()

	ent := g.entities[idx]
	for _, o := range ent.objects {
		g.scene.EraseObject(o.obj)
	}
	g.entities = append(g.entities[:idx], g.entities[idx+1:]...)

	g.bndBox = gfx.EmptyBox()
	for _, other := range g.entities {
		g.bndBox = g.bndBox.Union(other.bndBox)
	}

	for _, id := range ent.nodes {
		delete(g.checkStates, id)
	}
	g.dropSelectedItems(ent.nodes)
	g.scene.Redraw()

	g.logger.Debugf("unmapped entity %d", entityId)
	g.listener.GraphicsBoundingBoxChanged(g, g.bndBox)
}

// dropSelectedItems removes the items of nodes from the application
// selection. Their objects are already gone from the scene.
func (g *GuiDocument) dropSelectedItems(nodes []document.TreeNodeId) {
	var stale []document.ApplicationItem
	for _, item := range g.selection.SelectedItems() {
		if item.Document == g.doc && slices.Contains(nodes, item.Node) {
			stale = append(stale, item)
		}
	}
	if len(stale) == 0 {
		return
	}
	g.connSelectionModel.Block()
	defer g.connSelectionModel.Unblock()
	g.selection.Remove(stale...)
}

func (g *GuiDocument) findGraphicsEntity(entityId document.TreeNodeId) *GraphicsEntity {
	for _, ent := range g.entities {
		if ent.treeNodeId == entityId {
			return ent
		}
	}
	return nil
}

// GraphicsEntities returns the mapped entities in mapping order.
func (g *GuiDocument) GraphicsEntities() []*GraphicsEntity {
	return append([]*GraphicsEntity(nil), g.entities...)
}

// GraphicsEntity returns the mapping of the entity containing node.
func (g *GuiDocument) GraphicsEntity(node document.TreeNodeId) *GraphicsEntity {
	return g.findGraphicsEntity(g.doc.ModelTree().NodeRoot(node))
}

// GraphicsBoundingBox is the union of the boxes of every mapped entity.
func (g *GuiDocument) GraphicsBoundingBox() gfx.Box {
	return g.bndBox
}

// GraphicsObjects yields the objects registered under the subtree of
// node, in depth-first pre-order. Nodes without an object are skipped.
func (g *GuiDocument) GraphicsObjects(node document.TreeNodeId) iter.Seq[*gfx.Object] {
	return func(yield func(*gfx.Object) bool) {
		ent := g.GraphicsEntity(node)
		if ent == nil {
			return
		}
		node = g.foldedNode(ent, node)
		for id := range g.doc.ModelTree().Walk(node) {
			if obj, ok := ent.mapTreeNodeToGfxObject[id]; ok {
				if !yield(obj) {
					return
				}
			}
		}
	}
}

// foldedNode returns the reference node holding the object of a leaf
// folded into it at mapping time, node itself otherwise.
func (g *GuiDocument) foldedNode(ent *GraphicsEntity, node document.TreeNodeId) document.TreeNodeId {
	tree := g.doc.ModelTree()
	if ent.ObjectOf(node) != nil || !tree.NodeIsLeaf(node) {
		return node
	}
	if parent := tree.Parent(node); parent != 0 && g.doc.NodeIsReference(parent) && ent.ObjectOf(parent) != nil {
		return parent
	}
	return node
}

// objectOfNode is ObjectOf that also resolves folded leaves.
func (g *GuiDocument) objectOfNode(ent *GraphicsEntity, node document.TreeNodeId) *gfx.Object {
	return ent.ObjectOf(g.foldedNode(ent, node))
}

func (g *GuiDocument) ForeachGraphicsObject(node document.TreeNodeId, fn func(*gfx.Object)) {
	for obj := range g.GraphicsObjects(node) {
		fn(obj)
	}
}

// NodeFromGraphicsObject scans every entity, zero if obj is not mapped.
func (g *GuiDocument) NodeFromGraphicsObject(obj *gfx.Object) document.TreeNodeId {
	for _, ent := range g.entities {
		if id, ok := ent.mapGfxObjectToTreeNode[obj]; ok {
			return id
		}
	}
	return 0
}

func (g *GuiDocument) ActiveDisplayMode(driver gfx.DriverKind) (gfx.DisplayMode, bool) {
	mode, ok := g.activeDisplayModes[driver]
	return mode, ok
}

// SetActiveDisplayMode applies mode to every mapped object handled by
// driver and to the objects mapped later.
func (g *GuiDocument) SetActiveDisplayMode(driver gfx.DriverKind, mode gfx.DisplayMode) error {
	d := g.drivers.Find(driver)
	if d == nil {
		return errUnknownDriver(driver)
	}
	supported := false
	for _, m := range d.DisplayModes() {
		supported = supported || m == mode
	}
	if !supported {
		return errUnsupportedDisplayMode(driver, mode)
	}
	if cur, ok := g.activeDisplayModes[driver]; ok && cur == mode {
		return nil
	}

	g.activeDisplayModes[driver] = mode
	blocker := g.scene.NewRedrawBlocker()
	for _, ent := range g.entities {
		for _, o := range ent.objects {
			if o.obj.Driver == driver {
				d.ApplyDisplayMode(o.obj, mode)
			}
		}
	}
	g.scene.Redraw()
	blocker.Release()

	g.listener.ActiveDisplayModeChanged(g, driver, mode)
	return nil
}
