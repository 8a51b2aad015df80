package cbtui_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/bubbletree"
	"github.com/mikeschinkel/codebrowse/cbtui"
	"github.com/mikeschinkel/codebrowse/langdetect"
	"github.com/mikeschinkel/codebrowse/session"
)

func TestNoticeQueue(t *testing.T) {
	q := cbtui.NewNoticeQueue()
	if q.Len() != 0 {
		t.Fatalf("new queue Len() = %d, want 0", q.Len())
	}

	q.Notify("first", "Info", session.InfoSeverity)
	q.Notify("second", "Error", session.ErrorSeverity)
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	notices := q.Drain()
	if len(notices) != 2 {
		t.Fatalf("Drain() returned %d notices, want 2", len(notices))
	}
	if notices[0].Message != "first" || notices[0].Title != "Info" || notices[0].Severity != session.InfoSeverity {
		t.Errorf("notices[0] = %+v, want first/Info/InfoSeverity", notices[0])
	}
	if notices[1].Message != "second" || notices[1].Severity != session.ErrorSeverity {
		t.Errorf("notices[1] = %+v, want second/ErrorSeverity", notices[1])
	}

	if q.Len() != 0 {
		t.Errorf("Len() after Drain() = %d, want 0", q.Len())
	}
	if drained := q.Drain(); len(drained) != 0 {
		t.Errorf("second Drain() returned %d notices, want 0", len(drained))
	}
}

func TestEditorPaneBuffer(t *testing.T) {
	pane := cbtui.NewEditorPane(80, 24)

	if pane.Visible() {
		t.Error("new pane should start hidden")
	}
	if pane.View() != "" {
		t.Error("hidden pane View() should be empty")
	}

	pane.SetText("package main\n")
	if got := pane.Text(); got != "package main\n" {
		t.Errorf("Text() = %q, want %q", got, "package main\n")
	}

	pane.SetVisible(true)
	if !pane.Visible() {
		t.Error("pane should be visible after SetVisible(true)")
	}
	if pane.View() == "" {
		t.Error("visible pane View() should not be empty")
	}

	pane.SetLanguage("go")
	if got := pane.Language(); got != "go" {
		t.Errorf("Language() = %q, want %q", got, "go")
	}
	pane.SetLanguage("")
	if got := pane.Language(); got != "" {
		t.Errorf("Language() after clear = %q, want empty", got)
	}
}

// browserFixture bundles a browser model with the collaborators the tests
// need to inspect.
type browserFixture struct {
	model   cbtui.BrowserModel
	editor  *cbtui.EditorPane
	notices *cbtui.NoticeQueue
	ctl     *session.Controller
	rootDir string
}

func newBrowserFixture(t *testing.T) *browserFixture {
	t.Helper()

	rootDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(rootDir, "main.go"), "package main\n\nfunc main() {}\n")

	tree, err := bubbletree.NewFileSystemTree(rootDir, nil)
	if err != nil {
		t.Fatalf("NewFileSystemTree(%s) error: %v", rootDir, err)
	}

	logger := slog.New(slog.DiscardHandler)
	editor := cbtui.NewEditorPane(80, 20)
	notices := cbtui.NewNoticeQueue()
	ctl := session.NewController(session.ControllerArgs{
		Buffer:   editor,
		Notifier: notices,
		Guesser:  langdetect.Detector{},
		Logger:   logger,
	})

	model := cbtui.NewBrowserModel(cbtui.BrowserModelArgs{
		Logger:  logger,
		Tree:    tree,
		Session: ctl,
		Editor:  editor,
		Width:   120,
		Height:  40,
	})

	return &browserFixture{
		model:   model,
		editor:  editor,
		notices: notices,
		ctl:     ctl,
		rootDir: rootDir,
	}
}

func writeFixtureFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestBrowserModelShowTree(t *testing.T) {
	f := newBrowserFixture(t)
	m := f.model

	if !m.ShowTree() {
		t.Fatal("tree pane should start visible")
	}
	if m.LeftPaneWidth() <= 0 {
		t.Fatal("visible tree pane should have positive width")
	}
	fullWidth := m.LeftPaneWidth() + m.RightPaneWidth()

	m = m.SetShowTree(false)
	if m.ShowTree() {
		t.Error("ShowTree() should be false after SetShowTree(false)")
	}
	if got := m.LeftPaneWidth(); got != 0 {
		t.Errorf("hidden tree LeftPaneWidth() = %d, want 0", got)
	}
	if m.FocusPane != cbtui.RightPane {
		t.Errorf("FocusPane = %v, want RightPane when tree hides", m.FocusPane)
	}
	if got := m.RightPaneWidth(); got != fullWidth {
		t.Errorf("RightPaneWidth() = %d, want full width %d", got, fullWidth)
	}

	m = m.SetShowTree(true)
	if !m.ShowTree() {
		t.Error("ShowTree() should be true after SetShowTree(true)")
	}
	if m.LeftPaneWidth() <= 0 {
		t.Error("restored tree pane should have positive width")
	}
	// Focus does not bounce back; the user tabs when they want the tree.
	if m.FocusPane != cbtui.RightPane {
		t.Errorf("FocusPane = %v, want RightPane to persist", m.FocusPane)
	}
}

func TestBrowserModelTogglePaneWhileTreeHidden(t *testing.T) {
	f := newBrowserFixture(t)
	m := f.model.SetShowTree(false)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusPane != cbtui.RightPane {
		t.Errorf("FocusPane = %v, want RightPane while tree hidden", m.FocusPane)
	}

	m = m.SetShowTree(true)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusPane != cbtui.LeftPane {
		t.Errorf("FocusPane = %v, want LeftPane after tab with tree shown", m.FocusPane)
	}
}

func TestToggleTreeBeforeBootstrapIsNoOp(t *testing.T) {
	state := cbtui.NewBrowserState(cbtui.BrowserStateArgs{
		Logger:  slog.New(slog.DiscardHandler),
		RootDir: t.TempDir(),
		Guesser: langdetect.Detector{},
	})

	// Before bootstrapMsg/createLayoutMsg arrive there is no layout yet;
	// global keys must not crash the program.
	model, _ := state.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	updated, ok := model.(cbtui.BrowserState)
	if !ok {
		t.Fatalf("Update() returned %T, want cbtui.BrowserState", model)
	}
	if got := updated.View(); got != "Initializing..." {
		t.Errorf("View() = %q, want initializing placeholder", got)
	}
}

func TestTabIntoEditorStartsCursorBlink(t *testing.T) {
	f := newBrowserFixture(t)
	m := f.model

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !m.IsContentView {
		t.Fatal("selecting a file should switch to content view")
	}
	if f.editor.Focused() {
		t.Fatal("editor should stay blurred while the tree pane has focus")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusPane != cbtui.RightPane {
		t.Fatalf("FocusPane = %v, want RightPane after tab", m.FocusPane)
	}
	if !f.editor.Focused() {
		t.Error("editor should be focused after tab into content view")
	}
	if cmd == nil {
		t.Error("tab into the editor should return the cursor blink command")
	}
}

func TestBrowserModelFileSelectionLoadsEditor(t *testing.T) {
	f := newBrowserFixture(t)
	m := f.model

	// Root is focused; down moves focus to main.go, the only child.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	if !m.IsContentView {
		t.Fatal("selecting a file should switch to content view")
	}
	wantPath := filepath.Join(f.rootDir, "main.go")
	if got := f.ctl.SelectedFile(); got != wantPath {
		t.Errorf("SelectedFile() = %q, want %q", got, wantPath)
	}
	if got := f.editor.Text(); got != "package main\n\nfunc main() {}\n" {
		t.Errorf("editor Text() = %q, want file content", got)
	}
	if !f.editor.Visible() {
		t.Error("editor should be visible after load")
	}
	if got := f.editor.Language(); got != "go" {
		t.Errorf("editor Language() = %q, want %q", got, "go")
	}
	if f.notices.Len() != 0 {
		t.Errorf("successful load queued %d notices, want 0", f.notices.Len())
	}
}

func TestBrowserModelUnreadableFileSelection(t *testing.T) {
	f := newBrowserFixture(t)
	binPath := filepath.Join(f.rootDir, "blob.bin")
	err := os.WriteFile(binPath, []byte{0x00, 0xff, 0x00, 0x01}, 0o644)
	if err != nil {
		t.Fatalf("writing %s: %v", binPath, err)
	}

	tree, err := bubbletree.NewFileSystemTree(f.rootDir, nil)
	if err != nil {
		t.Fatalf("NewFileSystemTree(%s) error: %v", f.rootDir, err)
	}
	m := cbtui.NewBrowserModel(cbtui.BrowserModelArgs{
		Logger:  slog.New(slog.DiscardHandler),
		Tree:    tree,
		Session: f.ctl,
		Editor:  f.editor,
		Width:   120,
		Height:  40,
	})

	// Children sort by name: blob.bin before main.go.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	if got := f.ctl.SelectedFile(); got != "" {
		t.Errorf("SelectedFile() = %q, want empty after failed load", got)
	}
	if got := f.ctl.Subtitle(); got != session.ErrorSubtitle {
		t.Errorf("Subtitle() = %q, want %q", got, session.ErrorSubtitle)
	}
	if f.editor.Visible() {
		t.Error("editor should be hidden after failed load")
	}

	notices := f.notices.Drain()
	if len(notices) != 1 {
		t.Fatalf("failed load queued %d notices, want 1", len(notices))
	}
	if notices[0].Severity != session.ErrorSeverity {
		t.Errorf("notice severity = %v, want ErrorSeverity", notices[0].Severity)
	}
	if notices[0].Title != "File Error" {
		t.Errorf("notice title = %q, want %q", notices[0].Title, "File Error")
	}
}
