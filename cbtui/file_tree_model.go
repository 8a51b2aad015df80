package cbtui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/bubbletree"
)

// FileTreeModel wraps bubbletree.Model for the directory tree pane
type FileTreeModel struct {
	model bubbletree.Model
}

// NewFileTreeModel creates a tree pane model from a loaded filesystem tree
func NewFileTreeModel(tree *bubbletree.Tree, height int) FileTreeModel {
	return FileTreeModel{
		model: bubbletree.NewModel(tree, height),
	}
}

func (m FileTreeModel) HasTree() bool {
	return m.model.Tree() != nil
}

// Init initializes the model
func (m FileTreeModel) Init() tea.Cmd {
	return m.model.Init()
}

// Update handles messages and updates the model
func (m FileTreeModel) Update(msg tea.Msg) (FileTreeModel, tea.Cmd) {
	updatedModel, cmd := m.model.Update(msg)
	m.model = updatedModel
	return m, cmd
}

// View renders the tree
func (m FileTreeModel) View() string {
	return m.model.View()
}

// SelectedEntry returns the currently selected file or directory
func (m FileTreeModel) SelectedEntry() *bubbletree.Entry {
	node := m.model.FocusedNode()
	if node == nil {
		return nil
	}
	return node.Entry()
}

// FocusedNode returns the currently selected node
func (m FileTreeModel) FocusedNode() *bubbletree.Node {
	return m.model.FocusedNode()
}

// SetSize updates the model dimensions
func (m FileTreeModel) SetSize(width, height int) FileTreeModel {
	m.model = m.model.SetSize(width, height)
	return m
}

// MaxVisibleWidth calculates the actual width of the longest rendered line
func (m FileTreeModel) MaxVisibleWidth() int {
	return m.model.MaxLineWidth()
}

// LayoutWidth returns the width this component needs for layout purposes.
func (m FileTreeModel) LayoutWidth() int {
	return m.MaxVisibleWidth()
}
