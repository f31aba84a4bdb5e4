package mayo

import (
	"github.com/mayo3d/mayo/document"
	"github.com/mayo3d/mayo/gfx"
)

// onGraphicsSelectionChanged mirrors the scene selection into the
// application selection model. Items of other documents are kept, except
// when the scene selection is empty.
func (g *GuiDocument) onGraphicsSelectionChanged() {
	// The selection model must not echo the changes back into the scene.
	g.connSelectionModel.Block()
	defer g.connSelectionModel.Unblock()

	if g.scene.SelectedCount() == 0 {
		g.selection.Clear()
		return
	}

	var current []document.ApplicationItem
	g.scene.ForeachSelectedOwner(func(obj *gfx.Object) {
		node := g.NodeFromGraphicsObject(obj)
		if node == 0 {
			return
		}
		item := document.NewApplicationItem(g.doc, node)
		if !containsItem(current, item) {
			current = append(current, item)
		}
	})

	var toRemove []document.ApplicationItem
	for _, item := range g.selection.SelectedItems() {
		if item.Document == g.doc && !containsItem(current, item) {
			toRemove = append(toRemove, item)
		}
	}
	var toAdd []document.ApplicationItem
	for _, item := range current {
		if !g.selection.IsSelected(item) {
			toAdd = append(toAdd, item)
		}
	}

	g.selection.Remove(toRemove...)
	g.selection.Add(toAdd...)
}

func (g *GuiDocument) onApplicationItemSelectionChanged(change document.SelectionChange) {
	for _, item := range change.Selected {
		g.ToggleItemSelected(item)
	}
	for _, item := range change.Deselected {
		g.ToggleItemSelected(item)
	}
}

// ToggleItemSelected flips the scene selection of every visible object
// under item. Items of other documents are ignored.
func (g *GuiDocument) ToggleItemSelected(item document.ApplicationItem) {
	if item.Document != g.doc {
		return
	}
	blocker := g.scene.NewRedrawBlocker()
	defer blocker.Release()
	for obj := range g.GraphicsObjects(item.Node) {
		if g.scene.IsObjectVisible(obj) {
			g.scene.ToggleOwnerSelection(obj)
		}
	}
	g.scene.Redraw()
}

func containsItem(items []document.ApplicationItem, item document.ApplicationItem) bool {
	for _, it := range items {
		if it.Equal(item) {
			return true
		}
	}
	return false
}
