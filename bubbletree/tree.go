package bubbletree

// Tree represents a collection of root nodes with focus management
// Simplified from treeview's Tree[T] - single focus, visible node tracking
type Tree struct {
	nodes       []*Node
	focusedNode *Node
	provider    NodeProvider
}

type TreeArgs struct {
	ExpanderControls *ExpanderControls
	NodeProvider     NodeProvider
	FocusedNode      *Node
}

// NewTree creates a new tree with the given root nodes
func NewTree(nodes []*Node, args *TreeArgs) *Tree {
	if args == nil {
		args = &TreeArgs{}
	}
	if args.ExpanderControls == nil {
		args.ExpanderControls = &TriangleExpanderControls
	}
	if args.NodeProvider == nil {
		args.NodeProvider = NewEntryProvider(*args.ExpanderControls)
	}
	t := &Tree{
		nodes:       nodes,
		focusedNode: args.FocusedNode,
		provider:    args.NodeProvider,
	}

	// Set initial focus to first visible node if not already set
	if t.focusedNode == nil && len(nodes) > 0 {
		visible := t.VisibleNodes()
		if len(visible) > 0 {
			t.focusedNode = visible[0]
		}
	}
	return t
}

// Nodes returns the root nodes
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// SetNodes replaces the root nodes
func (t *Tree) SetNodes(nodes []*Node) {
	t.nodes = nodes

	// If focused node is no longer in tree, reset focus
	if t.focusedNode != nil {
		found := false
		for _, root := range nodes {
			if root.FindByID(t.focusedNode.ID()) != nil {
				found = true
				break
			}
		}
		if !found {
			t.focusedNode = nil
		}
	}

	// Set focus to first visible node if no focus
	if t.focusedNode == nil && len(nodes) > 0 {
		visible := t.VisibleNodes()
		if len(visible) > 0 {
			t.focusedNode = visible[0]
		}
	}
}

// Provider returns the node provider
func (t *Tree) Provider() NodeProvider {
	return t.provider
}

// SetProvider sets the node provider
func (t *Tree) SetProvider(provider NodeProvider) {
	t.provider = provider
}

// FocusedNode returns the currently focused node (nil if none)
func (t *Tree) FocusedNode() (node *Node) {
	if t == nil {
		return nil
	}
	node = t.focusedNode
	if node == nil {
		node = t.FirstNode()
	}
	if node != nil {
		t.focusedNode = node
	}
	return node
}

// FirstNode returns the first node of the tree
func (t *Tree) FirstNode() *Node {
	if t == nil {
		return nil
	}
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// IsFocusedNode returns true when node is the currently focused node
func (t *Tree) IsFocusedNode(node *Node) bool {
	return t.focusedNode == node
}

// SetFocusedNode sets the focused node by ID
func (t *Tree) SetFocusedNode(nodeID string) bool {
	for _, root := range t.nodes {
		if node := root.FindByID(nodeID); node != nil {
			t.focusedNode = node
			return true
		}
	}
	return false
}

// FindByID finds a node by ID in the tree
func (t *Tree) FindByID(nodeID string) *Node {
	for _, root := range t.nodes {
		if node := root.FindByID(nodeID); node != nil {
			return node
		}
	}
	return nil
}

// VisibleNodes returns all currently visible nodes in tree order
func (t *Tree) VisibleNodes() []*Node {
	var visible []*Node
	for _, root := range t.nodes {
		t.collectVisibleNodes(root, &visible)
	}
	return visible
}

// collectVisibleNodes recursively collects visible nodes
func (t *Tree) collectVisibleNodes(node *Node, result *[]*Node) {
	if !node.IsVisible() {
		return
	}

	*result = append(*result, node)

	// Only traverse children if node is expanded
	if node.IsExpanded() {
		for _, child := range node.Children() {
			t.collectVisibleNodes(child, result)
		}
	}
}

// MoveUp moves focus to the previous visible node
func (t *Tree) MoveUp() bool {
	if t.focusedNode == nil {
		return false
	}

	visible := t.VisibleNodes()
	for i, node := range visible {
		if node == t.focusedNode && i > 0 {
			t.focusedNode = visible[i-1]
			return true
		}
	}

	return false
}

// MoveDown moves focus to the next visible node
func (t *Tree) MoveDown() bool {
	if t.focusedNode == nil {
		return false
	}

	visible := t.VisibleNodes()
	for i, node := range visible {
		if node == t.focusedNode && i < len(visible)-1 {
			t.focusedNode = visible[i+1]
			return true
		}
	}

	return false
}

// LoadFocusedChildren reads the focused directory's children from disk if
// they have not been read yet. No-op for files and already-loaded nodes.
func (t *Tree) LoadFocusedChildren() (err error) {
	node := t.focusedNode
	if node == nil || node.IsLoaded() || !node.Entry().IsDir {
		goto end
	}
	err = LoadChildren(node)
end:
	return err
}

// ExpandFocused expands the currently focused node
func (t *Tree) ExpandFocused() bool {
	if t.focusedNode == nil || !t.focusedNode.HasChildren() {
		return false
	}

	if !t.focusedNode.IsExpanded() {
		t.focusedNode.Expand()
		return true
	}

	return false
}

// CollapseFocused collapses the currently focused node
func (t *Tree) CollapseFocused() bool {
	if t.focusedNode == nil || !t.focusedNode.HasChildren() {
		return false
	}

	if t.focusedNode.IsExpanded() {
		t.focusedNode.Collapse()
		return true
	}

	return false
}

// ToggleFocused toggles the expansion state of the focused node
func (t *Tree) ToggleFocused() bool {
	if t.focusedNode == nil || !t.focusedNode.HasChildren() {
		return false
	}

	t.focusedNode.Toggle()
	return true
}

// ExpandAll expands all loaded nodes in the tree
func (t *Tree) ExpandAll() {
	for _, root := range t.nodes {
		t.expandAll(root)
	}
}

// expandAll recursively expands all nodes
func (t *Tree) expandAll(node *Node) {
	if node.HasChildren() {
		node.Expand()
		for _, child := range node.Children() {
			t.expandAll(child)
		}
	}
}

// CollapseAll collapses all nodes in the tree
func (t *Tree) CollapseAll() {
	for _, root := range t.nodes {
		t.collapseAll(root)
	}
}

// collapseAll recursively collapses all nodes
func (t *Tree) collapseAll(node *Node) {
	if node.HasChildren() {
		node.Collapse()
		for _, child := range node.Children() {
			t.collapseAll(child)
		}
	}
}
