package mayo

import (
	"github.com/mayo3d/mayo/document"
	"github.com/mayo3d/mayo/gfx"
	"github.com/mayo3d/mayo/view"
)

// CheckState is the tri-state visibility of a tree node.
type CheckState int

const (
	CheckOff CheckState = iota
	CheckPartially
	CheckOn
)

func (s CheckState) String() string {
	switch s {
	case CheckOn:
		return "on"
	case CheckPartially:
		return "partially"
	}
	return "off"
}

// GuiDocumentListener receives the notifications of a GuiDocument.
// Notifications are delivered synchronously on the caller goroutine.
type GuiDocumentListener interface {
	// NodesVisibilityChanged carries every node whose state changed.
	NodesVisibilityChanged(g *GuiDocument, changed map[document.TreeNodeId]CheckState)
	GraphicsBoundingBoxChanged(g *GuiDocument, box gfx.Box)
	ActiveDisplayModeChanged(g *GuiDocument, driver gfx.DriverKind, mode gfx.DisplayMode)
	ViewTrihedronModeChanged(g *GuiDocument, mode view.TrihedronMode)
}

// BaseListener ignores every notification. Embed it to implement only
// the notifications of interest.
type BaseListener struct{}

func (BaseListener) NodesVisibilityChanged(*GuiDocument, map[document.TreeNodeId]CheckState) {}
func (BaseListener) GraphicsBoundingBoxChanged(*GuiDocument, gfx.Box) {}
func (BaseListener) ActiveDisplayModeChanged(*GuiDocument, gfx.DriverKind, gfx.DisplayMode) {}
func (BaseListener) ViewTrihedronModeChanged(*GuiDocument, view.TrihedronMode) {}
