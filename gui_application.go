package mayo

import (
	"github.com/mayo3d/mayo/document"
)

// GuiApplication owns the selection shared by every open document and
// one GuiDocument per document.
type GuiApplication struct {
	selection *document.SelectionModel
	guiDocs   []*GuiDocument
	options   Options
	logger    Logger
}

func NewGuiApplication(options Options, logger Logger) *GuiApplication {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &GuiApplication{
		selection: document.NewSelectionModel(),
		options:   options,
		logger:    logger,
	}
}

func (a *GuiApplication) SelectionModel() *document.SelectionModel {
	return a.selection
}

// AddDocument creates the GuiDocument of doc, or returns the existing one.
func (a *GuiApplication) AddDocument(doc *document.Document, opts ...GuiDocumentOption) *GuiDocument {
	if g := a.FindGuiDocument(doc); g != nil {
		return g
	}
	base := []GuiDocumentOption{WithOptions(a.options), WithLogger(a.logger)}
	g := NewGuiDocument(doc, a.selection, append(base, opts...)...)
	a.guiDocs = append(a.guiDocs, g)
	a.logger.Infof("opened document %q (%s)", doc.Name, doc.Id)
	return g
}

// RemoveDocument closes the GuiDocument of doc and drops the items of doc
// from the selection.
func (a *GuiApplication) RemoveDocument(doc *document.Document) {
	for i, g := range a.guiDocs {
		if g.doc != doc {
			continue
		}
		var items []document.ApplicationItem
		for _, item := range a.selection.SelectedItems() {
			if item.Document == doc {
				items = append(items, item)
			}
		}
		g.Close()
		a.selection.Remove(items...)
		a.guiDocs = append(a.guiDocs[:i], a.guiDocs[i+1:]...)
		a.logger.Infof("closed document %q (%s)", doc.Name, doc.Id)
		return
	}
}

func (a *GuiApplication) FindGuiDocument(doc *document.Document) *GuiDocument {
	for _, g := range a.guiDocs {
		if g.doc == doc {
			return g
		}
	}
	return nil
}

func (a *GuiApplication) GuiDocuments() []*GuiDocument {
	return append([]*GuiDocument(nil), a.guiDocs...)
}
