package bubbletree

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadErrorMsg is emitted when a directory's children cannot be read during
// expansion. The host model decides how to surface it.
type LoadErrorMsg struct {
	Path string
	Err  error
}

// Model is the BubbleTea model for the tree
type Model struct {
	tree     *Tree
	renderer *Renderer
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates a new BubbleTea model for the tree
func NewModel(tree *Tree, height int) Model {
	renderer := NewRenderer(tree)
	width := renderer.GetMaxLineWidth()
	return Model{
		tree:     tree,
		renderer: renderer,
		viewport: viewport.New(width, height),
		height:   height,
		ready:    true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.tree.MoveUp() {
				m = m.ensureFocusedVisible()
			}
			return m, nil

		case "down", "j":
			if m.tree.MoveDown() {
				m = m.ensureFocusedVisible()
			}
			return m, nil

		case "right", "l":
			m, cmd = m.expandFocused()
			if cmd != nil {
				return m, cmd
			}
			focused := m.tree.FocusedNode()
			if focused != nil && focused.HasChildren() && focused.IsExpanded() {
				// Already expanded - move to first child
				if m.tree.MoveDown() {
					m = m.ensureFocusedVisible()
				}
			}
			return m, nil

		case "left", "h":
			focused := m.tree.FocusedNode()
			if focused != nil && focused.HasChildren() && focused.IsExpanded() {
				// Collapse if expanded
				m.tree.CollapseFocused()
				m = m.updateViewportContent()
			} else if focused != nil && focused.Parent() != nil {
				// Move to parent if collapsed or no children
				m.tree.SetFocusedNode(focused.Parent().ID())
				m = m.ensureFocusedVisible()
			}
			return m, nil

		case "enter", " ":
			focused := m.tree.FocusedNode()
			if focused != nil && focused.IsExpanded() {
				m.tree.CollapseFocused()
				return m.updateViewportContent(), nil
			}
			m, cmd = m.expandFocused()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m = m.updateViewportContent()
		return m, nil
	}

	// Delegate to viewport for scrolling
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// expandFocused lazily loads the focused directory's children, then expands
// it. A read failure becomes a LoadErrorMsg command and the node stays
// collapsed.
func (m Model) expandFocused() (Model, tea.Cmd) {
	focused := m.tree.FocusedNode()
	if focused == nil {
		return m, nil
	}
	err := m.tree.LoadFocusedChildren()
	if err != nil {
		path := focused.Entry().Path
		return m, func() tea.Msg {
			return LoadErrorMsg{Path: path, Err: err}
		}
	}
	if m.tree.ExpandFocused() {
		m = m.updateViewportContent()
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Render content without horizontal padding (viewport pads to maxWidth)
	// We want tree to be only as wide as actual content
	lines := m.renderer.RenderToLines()

	// Apply vertical scrolling from viewport (YOffset)
	start := m.viewport.YOffset
	end := start + m.viewport.Height

	if end < 0 {
		return ""
	}
	if start >= len(lines) {
		return ""
	}
	if end > len(lines) {
		end = len(lines)
	}

	visibleLines := lines[start:end]

	return joinLines(visibleLines)
}

// joinLines joins lines with newlines, handling empty slices
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// updateViewportContent updates the viewport with the current tree rendering
func (m Model) updateViewportContent() Model {
	m.viewport.SetContent(m.renderer.Render())
	return m
}

// ensureFocusedVisible scrolls the viewport to ensure the focused node is visible
func (m Model) ensureFocusedVisible() Model {
	m = m.updateViewportContent()

	// Find the line index of the focused node
	focused := m.tree.FocusedNode()
	if focused == nil {
		return m
	}

	visibleNodes := m.tree.VisibleNodes()
	focusedIndex := -1
	for i, node := range visibleNodes {
		if node == focused {
			focusedIndex = i
			break
		}
	}

	if focusedIndex < 0 {
		return m
	}

	// Scroll viewport to show focused line
	// If focused line is above viewport, scroll up
	if focusedIndex < m.viewport.YOffset {
		m.viewport.YOffset = focusedIndex
	}

	// If focused line is below viewport, scroll down
	if focusedIndex >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = focusedIndex - m.viewport.Height + 1
	}
	return m
}

// Tree returns the underlying tree
func (m Model) Tree() *Tree {
	return m.tree
}

// SetSize updates the model dimensions
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m = m.updateViewportContent()
	return m
}

// MaxLineWidth returns the maximum line maxWidth needed to display all content
func (m Model) MaxLineWidth() int {
	return m.renderer.GetMaxLineWidth()
}

// FocusedNode returns the currently focused node
func (m Model) FocusedNode() (node *Node) {
	return m.tree.FocusedNode()
}

// SetFocusedNode sets the focused node by ID
func (m Model) SetFocusedNode(nodeID string) Model {
	m.tree.SetFocusedNode(nodeID)
	return m.ensureFocusedVisible()
}
