package bubbletree

import (
	"github.com/charmbracelet/lipgloss"
)

// NodeProvider defines the interface for customizing node rendering
type NodeProvider interface {
	// Icon returns the leading glyph (folder expand/collapse indicator, file marker, etc.)
	Icon(node *Node) string

	// Text returns the formatted display name for the node
	Text(node *Node) string

	// Suffix returns the text to display after Text
	Suffix(node *Node) string

	// Style returns the lipgloss style for the node based on focus state
	Style(node *Node, tree *Tree) lipgloss.Style

	ExpanderControl(node *Node) string

	BranchStyle() BranchStyle
}

// EntryProvider renders filesystem entries; directories get a bold
// colored name and files the default style, with the focused node reversed.
type EntryProvider struct {
	branchStyle BranchStyle
	dirStyle    lipgloss.Style
}

// NewEntryProvider creates a provider using CompactBranchStyle defaults
func NewEntryProvider(ec ExpanderControls) *EntryProvider {
	return &EntryProvider{
		branchStyle: CompactBranchStyle(ec),
		dirStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

func (p *EntryProvider) BranchStyle() BranchStyle {
	return p.branchStyle
}

func (p *EntryProvider) ExpanderControl(node *Node) string {
	ecs := p.branchStyle.ExpanderControls
	switch {
	case !node.HasChildren():
		return ecs.NotApplicable
	case node.IsExpanded():
		return ecs.Collapse
	}
	return ecs.Expand
}

func (p *EntryProvider) Icon(node *Node) string {
	return ""
}

func (p *EntryProvider) Suffix(node *Node) string {
	return ""
}

func (p *EntryProvider) Text(node *Node) string {
	return node.Name()
}

func (p *EntryProvider) Style(node *Node, tree *Tree) lipgloss.Style {
	if tree.IsFocusedNode(node) {
		return lipgloss.NewStyle().Reverse(true)
	}
	if node.Entry().IsDir {
		return p.dirStyle
	}
	return lipgloss.NewStyle()
}
