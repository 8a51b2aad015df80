package bubbletree

// Package-level configuration helpers and presets

type ExpanderControls struct {
	Expand        string
	Collapse      string
	NotApplicable string
}

var NoExpanderControls = ExpanderControls{
	Expand:        "",
	Collapse:      "",
	NotApplicable: "",
}
var TriangleExpanderControls = ExpanderControls{
	Expand:        "▶",
	Collapse:      "▼",
	NotApplicable: "",
}

// BranchStyle defines a set of characters for tree structure rendering
type BranchStyle struct {
	// Vertical is the character for vertical continuation (e.g., "│ ", "| ")
	Vertical string

	// Horizontal is the character for horizontal continuation (e.g., "─", "-")
	Horizontal string

	// MiddleChild is the character for middle children (e.g., "├─ ", "+- ")
	MiddleChild string

	// LastChild is the character for the last child (e.g., "└─ ", "`- ")
	LastChild string

	// PreExpanderIndent is the space(s) or tab after the prefix
	PreExpanderIndent string

	// PreIconIndent is the space(s) or tab before icon
	PreIconIndent string

	// PreTextIndent is the space(s) or tab before text
	PreTextIndent string

	// PreSuffixIndent is the space(s) or tab before suffix
	PreSuffixIndent string

	// EmptySpace is the character for empty space (e.g., "  ", "   ")
	EmptySpace string

	ExpanderControls ExpanderControls
}

// DefaultBranchStyle uses single-space indents with no branch characters
func DefaultBranchStyle(ec ExpanderControls) BranchStyle {
	return BranchStyle{
		PreExpanderIndent: " ",
		PreIconIndent:     " ",
		PreSuffixIndent:   " ",
		PreTextIndent:     " ",
		ExpanderControls:  ec,
	}
}

// CompactBranchStyle uses compact spacing with Unicode box-drawing characters
func CompactBranchStyle(ec ExpanderControls) (bs BranchStyle) {
	bs = DefaultBranchStyle(ec)
	bs.Vertical = "│"
	bs.Horizontal = "─"
	bs.MiddleChild = "├─"
	bs.LastChild = "└─"
	bs.EmptySpace = "  " // Two spaces to match vertical line width
	bs.PreExpanderIndent = ""
	return bs
}

// ASCIIBranchStyle uses ASCII characters for maximum compatibility
func ASCIIBranchStyle(ec ExpanderControls) BranchStyle {
	return BranchStyle{
		Vertical:          "| ",
		Horizontal:        "-",
		MiddleChild:       "+- ",
		LastChild:         "`- ",
		EmptySpace:        "  ",
		PreExpanderIndent: " ",
		PreIconIndent:     " ",
		PreSuffixIndent:   " ",
		ExpanderControls:  ec,
	}
}
