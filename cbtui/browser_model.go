package cbtui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mikeschinkel/codebrowse/bubbletree"
	"github.com/mikeschinkel/codebrowse/cbapp"
	"github.com/mikeschinkel/codebrowse/session"
)

// BrowserModel manages the browser view UI and state.
// This view has: header, tree pane (left), editor/table pane (right), footer.
type BrowserModel struct {
	Logger *slog.Logger

	// Layout dimensions
	terminalWidth  int
	terminalHeight int

	// UI components
	FileTree      FileTreeModel   // Hierarchical tree view of the browse root
	Editor        *EditorPane     // Editable file buffer (for file selection)
	FilesTable    FilesTableModel // Directory listing table (for directory selection)
	IsContentView bool            // false = showing directory table, true = showing editor
	FocusPane     Pane            // Which pane has focus (left or right)
	showTree      bool            // false hides the tree pane entirely

	// Session owns the file load/edit/save lifecycle
	Session *session.Controller

	dirMetaLoaded map[string]struct{} // Track when a directory has had its entry meta loaded
}

// BrowserModelArgs contains parameters for creating a new BrowserModel
type BrowserModelArgs struct {
	Logger  *slog.Logger
	Tree    *bubbletree.Tree
	Session *session.Controller
	Editor  *EditorPane
	Width   int
	Height  int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(args BrowserModelArgs) (m BrowserModel) {
	if args.Height == 0 || args.Width == 0 {
		panic("cbtui.NewBrowserModel called before height or width set via tea.WindowSizeMsg")
	}

	m = BrowserModel{
		Logger:         args.Logger,
		terminalWidth:  args.Width,
		terminalHeight: args.Height,
		Session:        args.Session,
		Editor:         args.Editor,
		FocusPane:      LeftPane,
		showTree:       true,
		dirMetaLoaded:  make(map[string]struct{}),
	}

	m.FileTree = NewFileTreeModel(args.Tree, m.PaneInnerHeight())
	m.Editor.SetSize(m.RightPaneInnerWidth(), m.PaneInnerHeight())

	return m
}

// Init initializes the model; triggers the initial directory load for the
// focused node (the browse root).
func (m BrowserModel) Init() tea.Cmd {
	m.Logger.Info("BrowserModel.Init()")
	treeCmd := m.FileTree.Init()

	initialNode := m.FileTree.FocusedNode()
	if initialNode != nil && initialNode.Entry().IsDir {
		m.IsContentView = false
		return tea.Batch(treeCmd, m.requestDirectoryViewCmd(initialNode))
	}

	return treeCmd
}

// requestDirectoryViewCmd handles loading or reloading a directory view.
// Returns a command to load/reload the directory table.
func (m BrowserModel) requestDirectoryViewCmd(node *bubbletree.Node) tea.Cmd {
	if !node.Entry().IsDir {
		return nil
	}

	if !node.IsLoaded() {
		err := bubbletree.LoadChildren(node)
		if err != nil {
			return onErrorCmd(fmt.Sprintf("Reading directory %s", node.Entry().Path), err)
		}
	}

	path := node.Entry().Path
	entries := childEntries(node)

	// Check if already stat'ed
	if _, loaded := m.dirMetaLoaded[path]; loaded {
		m.Logger.Info("BrowserModel.requestDirectoryViewCmd()", "path", path, "cached", true)
		// Already loaded - just reload the table (no I/O)
		return requestReloadTableCmd(path, entries)
	}

	m.Logger.Info("BrowserModel.requestDirectoryViewCmd()", "path", path, "cached", false, "entry_count", len(entries))
	// Not loaded yet - trigger directory view load (will do I/O)
	return requestDirectoryViewCmd(path, entries)
}

// childEntries collects the entry payloads of a node's children.
func childEntries(node *bubbletree.Node) []*bubbletree.Entry {
	children := node.Children()
	entries := make([]*bubbletree.Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, child.Entry())
	}
	return entries
}

// Update handles messages and updates the model
//
//goland:noinspection GoAssignmentToReceiver
func (m BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.Logger.Info("BrowserModel.Update()", teaMsgAttrs(msg))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			// Handle pane navigation keys
			m, cmd = m.togglePane()
			cmds = appendCmd(cmds, cmd)
		}

	case screenDimensionsMsg:
		// Capture the screen dimensions
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height

	case resizeLayoutMsg:
		// Update dimensions and resize all components
		m = m.Resize()

	case bubbletree.LoadErrorMsg:
		cmds = appendCmd(cmds, onErrorCmd(
			fmt.Sprintf("Reading directory %s", msg.Path),
			msg.Err,
		))

	case loadDirectoryViewMsg:
		// Double-check if already loaded (second line of defense, in case of race)
		if _, loaded := m.dirMetaLoaded[msg.dirPath]; loaded {
			break
		}
		// Trigger directory metadata load (I/O happens in command)
		cmds = appendCmd(cmds, loadDirectoryMetaCmd(msg.dirPath, msg.entries))

	case directoryMetaLoadedMsg:
		m.dirMetaLoaded[msg.dirPath] = struct{}{}
		cmds = appendCmd(cmds, requestReloadTableCmd(msg.dirPath, msg.entries))

	case reloadTableMsg:
		dir := Directory{
			Path:    msg.dirPath,
			Entries: msg.entries,
		}
		m.FilesTable = NewFilesTableModel(dir,
			m.RightPaneInnerWidth(),
			m.PaneHeight(),
		)
	}

	if m.Ready() {
		// Delegate to focused pane
		switch m.FocusPane {
		case LeftPane:
			m, cmd = m.handleLeftPaneFocus(msg)
			cmds = appendCmd(cmds, cmd)
		case RightPane:
			m, cmd = m.handleRightPaneFocus(msg)
			cmds = appendCmd(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// View renders the model
func (m BrowserModel) View() string {
	m.Logger.Info("BrowserModel.View()")

	var sb strings.Builder

	// Header: app name plus the session subtitle (selected path or ERROR)
	title := cbapp.AppName
	if subtitle := m.Session.Subtitle(); subtitle != "" {
		title += " — " + subtitle
	}
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Render(title)

	menu := "↑/↓:Navigate | ←/→:Expand/Collapse | Tab:Switch Pane | Ctrl+T:Toggle Tree | Ctrl+S:Save | Ctrl+Q:Quit"
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(SilverColor)).
		Render(menu)

	// Calculate border colors based on focus
	leftBorderColor := GrayColor
	rightBorderColor := GrayColor

	if m.FocusPane == LeftPane {
		leftBorderColor = CyanColor
	} else if m.FocusPane == RightPane {
		rightBorderColor = CyanColor
	}

	// Create styled panes
	basePaneStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Height(m.PaneInnerHeight())

	leftPane := ""
	if m.showTree {
		leftPane = basePaneStyle.
			PaddingLeft(1).
			PaddingRight(1).
			BorderForeground(lipgloss.Color(leftBorderColor)).
			Render(m.FileTree.View())
	}

	// Render right pane based on view type
	var rightPane string
	switch {
	case m.IsContentView:
		// Editor needs a pane wrapper with borders
		rightPane = basePaneStyle.
			Width(m.RightPaneWidth()).
			PaddingLeft(1).
			Height(m.PaneHeight()).
			BorderForeground(lipgloss.Color(rightBorderColor)).
			Render(m.Editor.View())
	default:
		w, h := m.RightPaneWidth(), m.PaneHeight()
		// Table already has its own borders - render directly
		m.FilesTable = m.FilesTable.SetBorderColor(rightBorderColor).SetSize(w, h)
		rightPane = m.FilesTable.View()
	}

	body := rightPane
	if m.showTree {
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	}

	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(footer)

	return sb.String()
}

// Ready returns true if this model is ready to accept update messages
func (m BrowserModel) Ready() bool {
	return m.Logger != nil &&
		m.HasDimensions() &&
		m.Session != nil &&
		m.FileTree.HasTree()
}

// HasDimensions returns true if terminal height and width are set, IOW if
// the constructor NewBrowserModel() was called to instantiate it.
func (m BrowserModel) HasDimensions() bool {
	return m.terminalWidth > 0 && m.terminalHeight > 0
}

// Resize updates the sizes of the layout's components
func (m BrowserModel) Resize() BrowserModel {
	m.Logger.Info("BrowserModel.Resize()")
	m.FileTree = m.FileTree.SetSize(m.LeftPaneWidth(), m.PaneInnerHeight())
	m.Editor.SetSize(m.RightPaneInnerWidth(), m.PaneInnerHeight())
	if !m.IsContentView {
		m.FilesTable = m.FilesTable.SetSize(m.RightPaneInnerWidth(), m.PaneHeight())
	}
	return m
}

// ShowTree reports whether the tree pane is displayed.
func (m BrowserModel) ShowTree() bool {
	return m.showTree
}

// SetShowTree shows or hides the tree pane and reflows the layout. With the
// tree hidden, focus moves to the right pane so keys keep working.
func (m BrowserModel) SetShowTree(show bool) BrowserModel {
	m.Logger.Info("BrowserModel.SetShowTree()", "show", show)
	m.showTree = show
	if !show && m.FocusPane == LeftPane {
		m.FocusPane = RightPane
	}
	return m.Resize()
}

// LeftPaneWidth returns the width for the left tree pane.
func (m BrowserModel) LeftPaneWidth() int {
	if !m.showTree {
		return 0
	}
	return m.FileTree.LayoutWidth()
}

// RightPaneWidth returns the total width for the right pane including chrome.
// Used when rendering the editor (which needs explicit width for pane wrapper).
func (m BrowserModel) RightPaneWidth() int {
	return m.terminalWidth - m.LeftPaneWidth()
}

// RightPaneInnerWidth returns the width for the right editor/table pane.
//
// IMPORTANT: The +2 offset is empirically determined due to lipgloss version mismatch:
// - Project uses lipgloss v1.1.0
// - bubble-table uses lipgloss v0.5.0
// - Border/padding calculations differ between versions
//
// When bubble-table is updated to lipgloss v2, this may need adjustment.
func (m BrowserModel) RightPaneInnerWidth() int {
	return m.terminalWidth - m.LeftPaneWidth() + 2
}

// PaneHeight returns the full pane height (outer, including borders).
func (m BrowserModel) PaneHeight() int {
	if m.IsContentView {
		return m.terminalHeight - PaneHeightForEditorView
	}
	return m.terminalHeight - PaneHeightForDirectoryView
}

// PaneInnerHeight returns the viewport height inside a pane (inner,
// excluding pane borders).
func (m BrowserModel) PaneInnerHeight() int {
	if m.IsContentView {
		return m.PaneHeight()
	}
	return m.PaneHeight() - PaneBorderLines
}

// togglePane switches focus between left and right panes
func (m BrowserModel) togglePane() (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd

	m.Logger.Info("BrowserModel.togglePane()", "old_pane", m.FocusPane.String())
	switch {
	case m.FocusPane == LeftPane:
		m.FocusPane = RightPane
	case !m.showTree:
		// Tree hidden - right pane keeps focus
	default:
		m.FocusPane = LeftPane
	}
	m, cmd = m.syncEditorFocus()
	m.Logger.Info("BrowserModel.togglePane()", "new_pane", m.FocusPane.String())
	return m, cmd
}

// syncEditorFocus focuses the editor only when the right pane has focus and
// is showing file content, so tree navigation keys never leak into edits.
// The returned command is the textarea's cursor blink.
func (m BrowserModel) syncEditorFocus() (BrowserModel, tea.Cmd) {
	if m.FocusPane == RightPane && m.IsContentView {
		return m, m.Editor.Focus()
	}
	m.Editor.Blur()
	return m, nil
}

// handleLeftPaneFocus handles updates when the left pane (tree) has focus
//
//goland:noinspection GoAssignmentToReceiver
func (m BrowserModel) handleLeftPaneFocus(msg tea.Msg) (_ BrowserModel, cmd tea.Cmd) {
	m.Logger.Info("BrowserModel.handleLeftPaneFocus()", teaMsgAttrs(msg))

	// Remember previous selection BEFORE delegating to tree
	previousNode := m.FileTree.FocusedNode()

	// Delegate message to tree (may change selection)
	m.FileTree, cmd = m.FileTree.Update(msg)

	// Get current selection AFTER tree processing
	currentNode := m.FileTree.FocusedNode()

	// Only proceed if selection ACTUALLY CHANGED.
	// This prevents the message feedback loop: loadDirectoryViewMsg won't
	// trigger another loadDirectoryViewMsg
	if currentNode == previousNode {
		return m, cmd
	}
	m.Logger.Info("BrowserModel.handleLeftPaneFocus()", "node_status", "changed")

	entry := m.FileTree.SelectedEntry()
	if entry.IsEmpty() {
		return m, cmd
	}

	if !entry.IsDir {
		m.Logger.Info("BrowserModel.handleLeftPaneFocus()", "node_type", "file")
		// File selected - run the load lifecycle; failures surface as
		// queued notices, never as errors here.
		var focusCmd tea.Cmd
		m.IsContentView = true
		m.Session.HandleSelection(entry.Path)
		m, focusCmd = m.syncEditorFocus()
		return m, tea.Batch(cmd, focusCmd)
	}
	m.Logger.Info("BrowserModel.handleLeftPaneFocus()", "node_type", "directory")

	// Directory selected - load/reload directory view
	m.IsContentView = false
	m, _ = m.syncEditorFocus()
	cmd = tea.Batch(cmd, m.requestDirectoryViewCmd(currentNode))

	return m, cmd
}

// handleRightPaneFocus handles updates when the right pane (editor/table)
// has focus
//
//goland:noinspection GoAssignmentToReceiver
func (m BrowserModel) handleRightPaneFocus(msg tea.Msg) (BrowserModel, tea.Cmd) {
	var cmd tea.Cmd

	m.Logger.Info("BrowserModel.handleRightPaneFocus()", teaMsgAttrs(msg))

	switch {
	case m.IsContentView:
		// Editor has focus - keys become edits
		cmd = m.Editor.Update(msg)
	default:
		// Directory table has focus - handle navigation, and enter opens
		// the selected file in the editor
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
			entry := m.FilesTable.SelectedEntry()
			if !entry.IsEmpty() && !entry.IsDir {
				var focusCmd tea.Cmd
				m.IsContentView = true
				m.Session.HandleSelection(entry.Path)
				m, focusCmd = m.syncEditorFocus()
				return m, focusCmd
			}
		}
		m.FilesTable, cmd = m.FilesTable.Update(msg)
	}

	return m, cmd
}
