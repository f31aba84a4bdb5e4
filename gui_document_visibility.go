package mayo

import (
	"github.com/mayo3d/mayo/document"
)

// NodeVisibleState returns the tri-state of node, CheckOff if node is not
// part of a mapped entity.
func (g *GuiDocument) NodeVisibleState(node document.TreeNodeId) CheckState {
	return g.checkStates[node]
}

// IsNodeTracked reports whether node belongs to a mapped entity.
func (g *GuiDocument) IsNodeTracked(node document.TreeNodeId) bool {
	_, ok := g.checkStates[node]
	return ok
}

// SetNodeVisible shows or hides node with its whole subtree, then updates
// the state of every ancestor. Unknown nodes and nodes already in the
// requested state are ignored.
func (g *GuiDocument) SetNodeVisible(node document.TreeNodeId, on bool) {
	// A folded leaf is shown and hidden together with its reference.
	if ent := g.GraphicsEntity(node); ent != nil {
		node = g.foldedNode(ent, node)
	}
	state, ok := g.checkStates[node]
	if !ok {
		return
	}
	target := CheckOff
	if on {
		target = CheckOn
	}
	if state == target {
		return
	}

	tree := g.doc.ModelTree()
	changed := make(map[document.TreeNodeId]CheckState)

	blocker := g.scene.NewRedrawBlocker()
	for id := range tree.Walk(node) {
		if cur, tracked := g.checkStates[id]; tracked && cur != target {
			g.checkStates[id] = target
			changed[id] = target
		}
	}
	for obj := range g.GraphicsObjects(node) {
		g.scene.SetObjectVisible(obj, on)
	}
	if on {
		g.restoreSelection(node)
	}

	for p := tree.Parent(node); p != 0; p = tree.Parent(p) {
		s := g.childrenCheckState(p)
		if s != g.checkStates[p] {
			g.checkStates[p] = s
			changed[p] = s
		}
	}
	g.scene.Redraw()
	blocker.Release()

	if len(changed) > 0 {
		g.listener.NodesVisibilityChanged(g, changed)
	}
}

func (g *GuiDocument) childrenCheckState(node document.TreeNodeId) CheckState {
	var on, off, total int
	for _, c := range g.doc.ModelTree().Children(node) {
		s, tracked := g.checkStates[c]
		if !tracked {
			continue
		}
		total++
		switch s {
		case CheckOn:
			on++
		case CheckOff:
			off++
		}
	}
	switch {
	case on == total:
		return CheckOn
	case off == total:
		return CheckOff
	}
	return CheckPartially
}

// restoreSelection selects again the objects under node whose node, or an
// ancestor of it, is selected in the application selection. Hidden
// objects lose their selection in the scene.
func (g *GuiDocument) restoreSelection(node document.TreeNodeId) {
	ent := g.GraphicsEntity(node)
	if ent == nil {
		return
	}
	tree := g.doc.ModelTree()

	inherited := false
	for _, id := range tree.NodePath(tree.Parent(node)) {
		inherited = inherited || g.isNodeSelected(id)
	}

	var visit func(id document.TreeNodeId, selected bool)
	visit = func(id document.TreeNodeId, selected bool) {
		selected = selected || g.isNodeSelected(id)
		if obj := g.objectOfNode(ent, id); obj != nil && selected && !g.scene.IsOwnerSelected(obj) {
			g.scene.ToggleOwnerSelection(obj)
		}
		for _, c := range tree.Children(id) {
			visit(c, selected)
		}
	}
	visit(node, inherited)
}

func (g *GuiDocument) isNodeSelected(node document.TreeNodeId) bool {
	return g.selection.IsSelected(document.NewApplicationItem(g.doc, node))
}
