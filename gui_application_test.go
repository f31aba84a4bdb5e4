package mayo

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayo3d/mayo/document"
)

func TestGuiApplication_AddRemoveDocument(t *testing.T) {
	var out bytes.Buffer
	app := NewGuiApplication(DefaultOptions(), NewLoggerTo(&out, &out, "app", false))
	doc := document.NewDocument("gearbox")

	g := app.AddDocument(doc)
	assert.Same(t, g, app.AddDocument(doc))
	assert.Same(t, g, app.FindGuiDocument(doc))
	assert.Same(t, app.SelectionModel(), g.SelectionModel())
	assert.Len(t, app.GuiDocuments(), 1)
	assert.Contains(t, out.String(), `opened document "gearbox"`)

	root, err := doc.AddEntity(boxLabel("part", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, err)
	other := document.NewDocument("other")
	app.AddDocument(other)
	otherRoot, err := other.AddEntity(boxLabel("part", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, err)

	app.SelectionModel().Add(
		document.NewApplicationItem(doc, root),
		document.NewApplicationItem(other, otherRoot),
	)

	app.RemoveDocument(doc)
	assert.Nil(t, app.FindGuiDocument(doc))
	assert.Len(t, app.GuiDocuments(), 1)
	assert.Equal(t, []document.ApplicationItem{document.NewApplicationItem(other, otherRoot)}, app.SelectionModel().SelectedItems())
	assert.Empty(t, g.GraphicsEntities())
	assert.Contains(t, out.String(), `closed document "gearbox"`)

	app.RemoveDocument(doc)
	assert.Len(t, app.GuiDocuments(), 1)
}

func TestGuiApplication_DocumentOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.TrihedronMode = "view_cube"
	app := NewGuiApplication(opts, nil)
	g := app.AddDocument(document.NewDocument("d"))
	assert.Equal(t, "view_cube", g.Options().TrihedronMode)
	assert.Equal(t, 1, g.GraphicsScene().Len())
}

func TestGuiApplication_DocumentLogsUnderItsName(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerTo(&out, &out, "app", true)
	app := NewGuiApplication(DefaultOptions(), logger)
	doc := document.NewDocument("gearbox")
	app.AddDocument(doc)

	_, err := doc.AddEntity(boxLabel("part", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[app/gearbox] DEBUG: mapped entity")
}
