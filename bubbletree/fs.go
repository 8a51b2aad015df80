package bubbletree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// NewFileSystemTree builds a tree rooted at rootDir. The root node is
// expanded with its immediate children loaded; deeper directories load
// lazily on first expansion.
func NewFileSystemTree(rootDir string, args *TreeArgs) (tree *Tree, err error) {
	var root *Node
	var info os.FileInfo
	var absDir string

	absDir, err = filepath.Abs(rootDir)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrReadDir, rootDir, err)
		goto end
	}

	info, err = os.Stat(absDir)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrReadDir, absDir, err)
		goto end
	}
	if !info.IsDir() {
		err = fmt.Errorf("%w: %s", ErrNotDirectory, absDir)
		goto end
	}

	root = NewNode(absDir, filepath.Base(absDir), NewEntry(absDir, true))
	err = LoadChildren(root)
	if err != nil {
		goto end
	}
	root.Expand()

	tree = NewTree([]*Node{root}, args)
end:
	return tree, err
}

// LoadChildren reads node's directory from disk and replaces its children,
// directories first, each group sorted by name.
func LoadChildren(node *Node) (err error) {
	var entries []os.DirEntry
	var children []*Node

	dir := node.Entry().Path
	entries, err = os.ReadDir(dir)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrReadDir, dir, err)
		goto end
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	children = make([]*Node, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		children = append(children, NewNode(path, entry.Name(), NewEntry(path, entry.IsDir())))
	}
	node.SetChildren(children)
end:
	return err
}
