package mayo

import (
	"github.com/mayo3d/mayo/document"
	"github.com/mayo3d/mayo/gfx"
	"github.com/mayo3d/mayo/view"
)

// GuiDocument projects a document onto a graphics scene and keeps both
// in sync: graphics objects follow entities being added or destroyed,
// node visibility is tracked as a tri-state, and selection is mirrored
// between the scene and the application selection model.
//
// A GuiDocument is not safe for concurrent use. Every call, including the
// notifications it reacts to, is expected on the same goroutine.
type GuiDocument struct {
	doc       *document.Document
	selection *document.SelectionModel
	scene     *gfx.Scene
	drivers   *gfx.DriverTable
	listener  GuiDocumentListener
	logger    Logger
	options   Options

	entities           []*GraphicsEntity
	bndBox             gfx.Box
	checkStates        map[document.TreeNodeId]CheckState
	activeDisplayModes map[gfx.DriverKind]gfx.DisplayMode
	explodingFactor    float32

	camera           view.Camera
	cameraAnimation  *view.CameraAnimation
	trihedronMode    view.TrihedronMode
	trihedronCorner  view.Corner
	trihedronObjects []*gfx.Object

	connEntityAdded              *document.Connection[document.TreeNodeId]
	connEntityAboutToBeDestroyed *document.Connection[document.TreeNodeId]
	connSceneSelection           *document.Connection[*gfx.Scene]
	connSelectionModel           *document.Connection[document.SelectionChange]
}

type GuiDocumentOption func(*GuiDocument)

func WithScene(scene *gfx.Scene) GuiDocumentOption {
	return func(g *GuiDocument) { g.scene = scene }
}

func WithDriverTable(drivers *gfx.DriverTable) GuiDocumentOption {
	return func(g *GuiDocument) { g.drivers = drivers }
}

func WithListener(listener GuiDocumentListener) GuiDocumentOption {
	return func(g *GuiDocument) { g.listener = listener }
}

func WithLogger(logger Logger) GuiDocumentOption {
	return func(g *GuiDocument) { g.logger = logger }
}

func WithOptions(options Options) GuiDocumentOption {
	return func(g *GuiDocument) { g.options = options }
}

// NewGuiDocument maps the entities already in doc and follows the
// entities added or destroyed afterwards until Close.
func NewGuiDocument(doc *document.Document, selection *document.SelectionModel, opts ...GuiDocumentOption) *GuiDocument {
	g := &GuiDocument{
		doc:                doc,
		selection:          selection,
		options:            DefaultOptions(),
		bndBox:             gfx.EmptyBox(),
		checkStates:        make(map[document.TreeNodeId]CheckState),
		activeDisplayModes: make(map[gfx.DriverKind]gfx.DisplayMode),
		camera:             view.NewCamera(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.selection == nil {
		g.selection = document.NewSelectionModel()
	}
	if g.scene == nil {
		g.scene = gfx.NewScene()
	}
	if g.drivers == nil {
		g.drivers = gfx.DefaultDriverTable()
	}
	if g.listener == nil {
		g.listener = BaseListener{}
	}
	if g.logger == nil {
		g.logger = NewNopLogger()
	}
	g.logger = g.logger.Named(doc.Name)

	for _, d := range g.drivers.Drivers() {
		mode := d.DefaultDisplayMode()
		if m, ok := g.options.displayMode(d.Kind()); ok {
			mode = m
		}
		g.activeDisplayModes[d.Kind()] = mode
	}
	g.cameraAnimation = view.NewCameraAnimation(g.options.CameraAnimationDuration, g.options.easing())
	g.trihedronCorner = g.options.trihedronCorner()

	g.connEntityAdded = doc.EntityAdded.Connect(g.mapEntity)
	g.connEntityAboutToBeDestroyed = doc.EntityAboutToBeDestroyed.Connect(g.unmapEntity)
	g.connSceneSelection = g.scene.SelectionChanged.Connect(func(*gfx.Scene) {
		g.onGraphicsSelectionChanged()
	})
	g.connSelectionModel = g.selection.Changed.Connect(g.onApplicationItemSelectionChanged)

	for _, id := range doc.Entities() {
		g.mapEntity(id)
	}
	g.SetViewTrihedronMode(g.options.trihedronMode())
	return g
}

// Close stops following the document and removes every graphics object
// from the scene.
func (g *GuiDocument) Close() {
	g.connEntityAdded.Disconnect()
	g.connEntityAboutToBeDestroyed.Disconnect()
	g.connSceneSelection.Disconnect()
	g.connSelectionModel.Disconnect()

	for len(g.entities) > 0 {
		g.unmapEntity(g.entities[len(g.entities)-1].treeNodeId)
	}
	g.SetViewTrihedronMode(view.TrihedronNone)
}

func (g *GuiDocument) Document() *document.Document {
	return g.doc
}

func (g *GuiDocument) GraphicsScene() *gfx.Scene {
	return g.scene
}

func (g *GuiDocument) SelectionModel() *document.SelectionModel {
	return g.selection
}

func (g *GuiDocument) Options() Options {
	return g.options
}
