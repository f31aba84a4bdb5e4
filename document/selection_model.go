package document

// ApplicationItem addresses one tree node of one document.
type ApplicationItem struct {
	Document *Document
	Node     TreeNodeId
}

func NewApplicationItem(doc *Document, node TreeNodeId) ApplicationItem {
	return ApplicationItem{Document: doc, Node: node}
}

func (i ApplicationItem) IsValid() bool {
	return i.Document != nil && i.Document.tree.Contains(i.Node)
}

func (i ApplicationItem) Equal(other ApplicationItem) bool {
	return i.Document == other.Document && i.Node == other.Node
}

type SelectionChange struct {
	Selected   []ApplicationItem
	Deselected []ApplicationItem
}

// SelectionModel is the application wide selection, shared by every open
// document. Items keep their insertion order.
type SelectionModel struct {
	items []ApplicationItem

	Changed Signal[SelectionChange]
}

func NewSelectionModel() *SelectionModel {
	return &SelectionModel{}
}

func (m *SelectionModel) IsSelected(item ApplicationItem) bool {
	return m.indexOf(item) >= 0
}

func (m *SelectionModel) SelectedItems() []ApplicationItem {
	return append([]ApplicationItem(nil), m.items...)
}

func (m *SelectionModel) Len() int {
	return len(m.items)
}

// Add selects the items not selected yet and notifies Changed with them.
func (m *SelectionModel) Add(items ...ApplicationItem) {
	var added []ApplicationItem
	for _, item := range items {
		if m.IsSelected(item) {
			continue
		}
		m.items = append(m.items, item)
		added = append(added, item)
	}
	if len(added) > 0 {
		m.Changed.Emit(SelectionChange{Selected: added})
	}
}

func (m *SelectionModel) Remove(items ...ApplicationItem) {
	var removed []ApplicationItem
	for _, item := range items {
		i := m.indexOf(item)
		if i < 0 {
			continue
		}
		m.items = append(m.items[:i], m.items[i+1:]...)
		removed = append(removed, item)
	}
	if len(removed) > 0 {
		m.Changed.Emit(SelectionChange{Deselected: removed})
	}
}

func (m *SelectionModel) Clear() {
	if len(m.items) == 0 {
		return
	}
	removed := m.items
	m.items = nil
	m.Changed.Emit(SelectionChange{Deselected: removed})
}

func (m *SelectionModel) indexOf(item ApplicationItem) int {
	for i, it := range m.items {
		if it.Equal(item) {
			return i
		}
	}
	return -1
}
