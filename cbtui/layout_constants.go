package cbtui

// Layout dimension constants for UI chrome calculations.
//
// These constants define the fixed overhead for various UI components,
// making height calculations explicit and maintainable.
//
// View structure (from top to bottom):
//   Header (ViewHeaderLines)
//   \n
//   Body pane (variable height)
//   \n
//   Footer (ViewFooterLines)
//
// Pane structure:
//   Top border (1 line)
//   Content (variable height)
//   Bottom border (1 line)
//
// Table structure (rendered within a pane):
//   Top border (1 line)
//   Column headers (1 line)
//   Data rows (variable)
//   Bottom border (1 line)
//   [Footer - hidden in our case]

const (
	// View-level chrome (BrowserModel.View())
	ViewHeaderLines  = 1 // App name + subtitle header
	ViewFooterLines  = 1 // Menu footer with key bindings
	ViewSpacingLines = 2 // Newlines between header, body, footer

	// Pane chrome (lipgloss borders)
	PaneBorderLines = 2 // Top border + bottom border

	// Editor chrome inside its pane
	EditorStatusLines = 1 // Language status line under the buffer

	// Table chrome (bubble-table borders and headers)
	TableBorderLines = 2 // Top border + bottom border
	TableHeaderLines = 1 // Column headers row
	TableFooterLines = 1 // Pagination footer (we hide this with WithFooterVisibility(false))
)

// Derived constants for common calculations

const (
	// ViewChromeLines is the total fixed overhead for the entire view.
	// Used for: calculating available space for panes
	ViewChromeLines = ViewHeaderLines + ViewFooterLines + ViewSpacingLines // = 4

	// TableChromeLines is the total fixed overhead for table rendering.
	// Used for: calculating how many data rows fit in table height
	TableChromeLines = TableBorderLines + TableHeaderLines + TableFooterLines // = 4

	// PaneHeightForDirectoryView is the overhead to subtract from terminal height
	// when calculating pane height for directory view (table).
	PaneHeightForDirectoryView = ViewHeaderLines + ViewFooterLines // = 2

	// PaneHeightForEditorView is the overhead to subtract from terminal height
	// when calculating pane height for the editor view.
	PaneHeightForEditorView = ViewChromeLines // = 4
)
