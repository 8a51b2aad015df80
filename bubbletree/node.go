package bubbletree

// Node represents a single file or directory in the tree
// Design adopted from github.com/Digital-Shane/treeview with simplifications
type Node struct {
	id       string
	name     string
	entry    Entry
	children []*Node
	parent   *Node
	expanded bool
	visible  bool

	// loaded is true once the node's children have been read from disk.
	// Directories load lazily on first expansion.
	loaded bool
}

// NewNode creates a new node with the given id, name, and entry
func NewNode(id, name string, entry Entry) *Node {
	return &Node{
		id:       id,
		name:     name,
		entry:    entry,
		children: make([]*Node, 0),
		parent:   nil,
		expanded: false,
		visible:  true,
		loaded:   !entry.IsDir,
	}
}

// ID returns the node's unique identifier; the entry's absolute path
func (n *Node) ID() string {
	return n.id
}

// IsRoot returns true if no parent
func (n *Node) IsRoot() bool {
	if n != nil {
		return n.parent == nil
	}
	return true
}

// Name returns the node's display name
func (n *Node) Name() string {
	return n.name
}

// Entry returns the node's filesystem payload
func (n *Node) Entry() *Entry {
	return &n.entry
}

// Children returns the node's child nodes
func (n *Node) Children() []*Node {
	return n.children
}

// HasGrandChildren returns true if any children have (or may have) children
func (n *Node) HasGrandChildren() bool {
	for _, child := range n.children {
		if child.HasChildren() {
			return true
		}
	}
	return false
}

// Parent returns the node's parent (nil for root nodes)
func (n *Node) Parent() *Node {
	return n.parent
}

// HasChildren returns true if the node has children, or is a directory
// whose children have not been read yet
func (n *Node) HasChildren() bool {
	return len(n.children) > 0 || (n.entry.IsDir && !n.loaded)
}

// IsLoaded returns true once the node's children have been read from disk
func (n *Node) IsLoaded() bool {
	return n.loaded
}

// IsExpanded returns true if the node is expanded
func (n *Node) IsExpanded() bool {
	return n.expanded
}

// IsVisible returns true if the node is visible
func (n *Node) IsVisible() bool {
	return n.visible
}

// SetExpanded sets the node's expansion state
func (n *Node) SetExpanded(expanded bool) {
	n.expanded = expanded
}

// SetVisible sets the node's visibility state
func (n *Node) SetVisible(visible bool) {
	n.visible = visible
}

// Expand expands the node
func (n *Node) Expand() {
	n.expanded = true
}

// Collapse collapses the node
func (n *Node) Collapse() {
	n.expanded = false
}

// Toggle toggles the node's expansion state
func (n *Node) Toggle() {
	n.expanded = !n.expanded
}

// AddChild adds a child node and sets the reciprocal parent pointer
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// SetChildren replaces all children, wires up parent pointers, and marks
// the node loaded
func (n *Node) SetChildren(children []*Node) {
	n.children = children
	for _, child := range children {
		child.parent = n
	}
	n.loaded = true
}

// RemoveChild removes a child node by ID
func (n *Node) RemoveChild(id string) bool {
	for i, child := range n.children {
		if child.id == id {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// FindByID recursively searches for a node by ID in this subtree
func (n *Node) FindByID(id string) *Node {
	if n.id == id {
		return n
	}

	for _, child := range n.children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}

	return nil
}

// Depth returns the depth of this node in the tree (0 for root)
func (n *Node) Depth() int {
	depth := 0
	current := n.parent
	for current != nil {
		depth++
		current = current.parent
	}
	return depth
}

// IsLastChild returns true if this node is the last child of its parent
func (n *Node) IsLastChild() bool {
	if n.parent == nil {
		return true
	}

	siblings := n.parent.children
	return len(siblings) > 0 && siblings[len(siblings)-1] == n
}

// AncestorIsLastChild returns a boolean slice indicating whether each ancestor was a last child
// Used for building tree structure prefixes
func (n *Node) AncestorIsLastChild() []bool {
	var result []bool
	current := n.parent

	for current != nil && current.parent != nil {
		result = append([]bool{current.IsLastChild()}, result...)
		current = current.parent
	}

	return result
}
