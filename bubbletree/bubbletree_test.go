package bubbletree_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/bubbletree"
)

// makeTestDir creates:
//
//	root/
//	  beta/
//	    nested.txt
//	  alpha.txt
//	  zulu.txt
func makeTestDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	err := os.Mkdir(filepath.Join(root, "beta"), 0o755)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join("beta", "nested.txt"),
		"alpha.txt",
		"zulu.txt",
	} {
		err = os.WriteFile(filepath.Join(root, name), []byte(name+"\n"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestNewFileSystemTree(t *testing.T) {
	root := makeTestDir(t)

	tree, err := bubbletree.NewFileSystemTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	roots := tree.Nodes()
	if len(roots) != 1 {
		t.Fatalf("got %d root nodes, want 1", len(roots))
	}
	if !roots[0].IsExpanded() {
		t.Error("root node should start expanded")
	}

	children := roots[0].Children()
	var names []string
	for _, child := range children {
		names = append(names, child.Name())
	}
	want := []string{"beta", "alpha.txt", "zulu.txt"}
	if len(names) != len(want) {
		t.Fatalf("children = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("child[%d] = %q, want %q (directories first, then by name)", i, names[i], want[i])
		}
	}
}

func TestNewFileSystemTreeRejectsFile(t *testing.T) {
	root := makeTestDir(t)

	_, err := bubbletree.NewFileSystemTree(filepath.Join(root, "alpha.txt"), nil)
	if !errors.Is(err, bubbletree.ErrNotDirectory) {
		t.Errorf("err = %v, want ErrNotDirectory", err)
	}
}

func TestDirectoriesLoadLazily(t *testing.T) {
	root := makeTestDir(t)

	tree, err := bubbletree.NewFileSystemTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	beta := tree.FindByID(filepath.Join(root, "beta"))
	if beta == nil {
		t.Fatal("beta directory not found in tree")
	}
	if beta.IsLoaded() {
		t.Error("unexpanded directory should not be loaded yet")
	}
	if !beta.HasChildren() {
		t.Error("unloaded directory should still report it has children")
	}

	tree.SetFocusedNode(beta.ID())
	err = tree.LoadFocusedChildren()
	if err != nil {
		t.Fatal(err)
	}
	if !beta.IsLoaded() {
		t.Error("directory should be loaded after LoadFocusedChildren")
	}
	if got := len(beta.Children()); got != 1 {
		t.Fatalf("got %d children, want 1", got)
	}
	if beta.Children()[0].Name() != "nested.txt" {
		t.Errorf("child = %q, want %q", beta.Children()[0].Name(), "nested.txt")
	}
}

func TestVisibleNodesAndMove(t *testing.T) {
	root := makeTestDir(t)

	tree, err := bubbletree.NewFileSystemTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Root expanded, beta collapsed: root + 3 children visible.
	visible := tree.VisibleNodes()
	if len(visible) != 4 {
		t.Fatalf("got %d visible nodes, want 4", len(visible))
	}
	if tree.FocusedNode() != visible[0] {
		t.Error("initial focus should be the first visible node")
	}

	if !tree.MoveDown() {
		t.Fatal("MoveDown returned false")
	}
	if tree.FocusedNode().Name() != "beta" {
		t.Errorf("focused = %q, want %q", tree.FocusedNode().Name(), "beta")
	}
	if !tree.MoveUp() {
		t.Fatal("MoveUp returned false")
	}
	if tree.FocusedNode() != visible[0] {
		t.Error("MoveUp should return focus to the root")
	}
	if tree.MoveUp() {
		t.Error("MoveUp at the first node should return false")
	}
}

func TestRendererLinesMatchVisibleNodes(t *testing.T) {
	root := makeTestDir(t)

	tree, err := bubbletree.NewFileSystemTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	r := bubbletree.NewRenderer(tree)
	lines := r.RenderToLines()
	if got, want := len(lines), len(tree.VisibleNodes()); got != want {
		t.Errorf("got %d rendered lines, want %d (one per visible node)", got, want)
	}
	if r.GetMaxLineWidth() <= 0 {
		t.Error("GetMaxLineWidth should be positive for a non-empty tree")
	}
}

func TestModelEmitsLoadErrorMsg(t *testing.T) {
	root := makeTestDir(t)

	tree, err := bubbletree.NewFileSystemTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}

	betaPath := filepath.Join(root, "beta")
	m := bubbletree.NewModel(tree, 20)
	m = m.SetFocusedNode(betaPath)

	// Yank the directory out from under the tree so expansion fails.
	err = os.RemoveAll(betaPath)
	if err != nil {
		t.Fatal(err)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected a command carrying the load error")
	}
	msg, ok := cmd().(bubbletree.LoadErrorMsg)
	if !ok {
		t.Fatalf("got %T, want LoadErrorMsg", cmd())
	}
	if msg.Path != betaPath {
		t.Errorf("msg.Path = %q, want %q", msg.Path, betaPath)
	}
	if msg.Err == nil {
		t.Error("msg.Err should carry the read failure")
	}
	if m.FocusedNode().IsExpanded() {
		t.Error("node should stay collapsed after a failed load")
	}
}

func TestEntryLoadMeta(t *testing.T) {
	root := makeTestDir(t)
	entry := bubbletree.NewEntry(filepath.Join(root, "alpha.txt"), false)

	err := entry.LoadMeta()
	if err != nil {
		t.Fatal(err)
	}
	if !entry.HasMeta() {
		t.Fatal("entry should have metadata after LoadMeta")
	}
	if entry.Meta().Size != int64(len("alpha.txt\n")) {
		t.Errorf("Size = %d, want %d", entry.Meta().Size, len("alpha.txt\n"))
	}

	gone := bubbletree.NewEntry(filepath.Join(root, "missing.txt"), false)
	err = gone.LoadMeta()
	if err != nil {
		t.Errorf("vanished entry should not be an error, got %v", err)
	}
	if !gone.HasMeta() {
		t.Error("vanished entry should get empty metadata")
	}
}
