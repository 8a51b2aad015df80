package cbtui

// FilesTableModel provides a rich, interactive table view for directory listings.
//
// The table implements a two-level selection system (row + cell) with
// horizontal scrolling, a frozen first column, and custom styling:
//
// - up/down: Row navigation (bubble-table)
// - left/right: Cell navigation (we handle, not bubble-table)
// - currentColumn: Tracks cell-level cursor position
// - isSelectedRow: Flag for row-level styling (bold + bright)
// - isCurrentCell: Flag for cell-level styling (reverse-video)

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mikeschinkel/codebrowse/bubbletree"
)

// Directory is the table's data source: one directory's stat'ed entries.
type Directory struct {
	Path    string
	Entries []*bubbletree.Entry
}

// Column keys for bubble-table
const (
	colKeyRowNum   = "num"
	colKeyName     = "name"
	colKeySize     = "size"
	colKeyModified = "modified"
	colKeyPerms    = "perms"
	colKeyMode     = "mode"
	colKeyFlags    = "flags"
)

// Column indices (for cell-level highlighting)
const (
	colIndexRowNum = iota
	colIndexName
	colIndexSize
	colIndexModified
	colIndexPerms
	colIndexMode
	colIndexFlags
	numColumns // Total number of columns
)

// FilesTableModel wraps bubble-table for displaying directory listings with metadata.
type FilesTableModel struct {
	table         table.Model
	columns       []table.Column
	dir           Directory
	width         int
	height        int
	currentColumn int // Current column index (0-based) for cell-level highlighting
}

// NewFilesTableModel creates a new files table model from a Directory whose
// entries have had their metadata loaded.
func NewFilesTableModel(dir Directory, width, height int) FilesTableModel {
	// Calculate dynamic name column width
	nameWidth := calculateMaxNameWidth(dir.Entries)

	center := lipglossStyle.Align(lipgloss.Center)
	leftAligned := lipglossStyle.Align(lipgloss.Left).PaddingLeft(1)

	columns := []table.Column{
		table.NewColumn(colKeyRowNum, "#", 5).WithStyle(center), // Includes ▶ indicator
		table.NewColumn(colKeyName, " Name", nameWidth),         // Fixed width based on longest name
		table.NewColumn(colKeySize, "Size   ", 12).WithStyle(lipglossStyle.Align(lipgloss.Right)),
		table.NewColumn(colKeyModified, "Modified", 21).WithStyle(center),
		table.NewColumn(colKeyPerms, "Perms", 11).WithStyle(center),
		table.NewColumn(colKeyMode, "Mode", 6).WithStyle(center),
		table.NewFlexColumn(colKeyFlags, "Flags", 1).WithStyle(leftAligned),
	}

	// Initially, first row (index 0) and first column (index 0) are selected
	rows := buildTableRows(dir.Entries, 0, 0)

	rowsNeeded := len(dir.Entries)

	// We handle row highlighting via per-cell reverse-video styling, so
	// disable bubble-table's built-in row highlighting to avoid conflicts
	noHighlightStyle := lipgloss.NewStyle()

	t := table.New(columns).
		WithRows(rows).
		Focused(true).
		WithMaxTotalWidth(width).           // Don't exceed this width - enable scrolling when table is bigger
		WithTargetWidth(width).             // Fill available width when table is smaller
		WithPageSize(rowsNeeded).           // Set page size to fill height
		WithMinimumHeight(height).          // Force table to fill visual height
		WithFooterVisibility(false).        // Hide "1/1" pagination footer
		WithHorizontalFreezeColumnCount(1). // Freeze first column (#) when scrolling
		HeaderStyle(styleWithRGBColor(CyanColor).Bold(true)).
		SelectableRows(false).            // We don't need checkboxes, just highlighting
		HighlightStyle(noHighlightStyle). // Disable built-in highlighting - we handle it per-cell
		BorderRounded().
		WithBaseStyle(styleWithRGBColor(CyanColor))

	return FilesTableModel{
		table:         t,
		columns:       columns,
		dir:           dir,
		width:         width,
		height:        height,
		currentColumn: 0,
	}
}

// Init initializes the model.
func (m FilesTableModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
//
// KEY MECHANISM: Message transformation for horizontal scrolling
// - When table fits in viewport: left/right move the cell cursor only
// - When the cell cursor goes off-screen: transform left→shift+left,
//   right→shift+right so bubble-table scrolls horizontally
//
// Row rebuilding happens on EVERY selection change (row OR column). This is
// O(n) but fast for typical directory sizes.
func (m FilesTableModel) Update(msg tea.Msg) (FilesTableModel, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// CELL NAVIGATION: Handle left/right for cell-level navigation.
		// We update currentColumn AND pass to bubble-table for horizontal scrolling
		switch keyMsg.String() {
		case "left":
			// Move to previous column (no wrap-around at first column)
			if m.currentColumn > 0 {
				m.currentColumn--
				m = m.refreshTable()
			}
			// DON'T return early - fall through to pass to bubble-table for horizontal scroll

		case "right":
			// Move to next column (no wrap-around at last column)
			if m.currentColumn < numColumns-1 {
				m.currentColumn++
				m = m.refreshTable()
			}
			// DON'T return early - fall through to pass to bubble-table for horizontal scroll
		}
	}

	prevSelectedIdx := m.table.GetHighlightedRowIndex()

	// Check if we need horizontal scrolling (table wider than viewport)
	needsScroll := m.width > 0 && m.width < m.widthToColumn(m.currentColumn+1)

	// Transform left/right to shift+left/shift+right when scrolling is needed
	if keyMsg, ok := msg.(tea.KeyMsg); ok && needsScroll {
		switch keyMsg.String() {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyShiftLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyShiftRight}
		}
		// Trigger recalculation
		m.table = m.table.WithMaxTotalWidth(m.width)
	}

	m.table, cmd = m.table.Update(msg)
	newSelectedIdx := m.table.GetHighlightedRowIndex()

	// If row selection changed, rebuild rows to update:
	// 1. ▶ indicator (moves to new row)
	// 2. Bold styling (applies to new row)
	// 3. Reverse-video (applies to current cell in new row)
	if prevSelectedIdx != newSelectedIdx {
		m.table = m.table.WithRows(buildTableRows(m.dir.Entries, newSelectedIdx, m.currentColumn))
	}

	return m, cmd
}

// View renders the table directly (the table columns show all the info).
func (m FilesTableModel) View() string {
	return m.table.View()
}

// SetSize updates the model dimensions.
func (m FilesTableModel) SetSize(width, height int) FilesTableModel {
	m.width = width
	m.height = height

	// Rebuild rows with padding for new height, preserving selection
	selectedIdx := m.table.GetHighlightedRowIndex()
	rows := buildTableRows(m.dir.Entries, selectedIdx, m.currentColumn)

	// Calculate how many rows we need to fill the visual height.
	// Table chrome includes borders, column headers, and the hidden footer.
	rowsNeeded := height - TableChromeLines

	m.table = m.table.
		WithTargetWidth(width).
		WithMaxTotalWidth(width).
		WithMinimumHeight(height).
		WithPageSize(rowsNeeded).
		WithRows(rows)
	return m
}

// SelectedEntry returns the currently selected entry.
func (m FilesTableModel) SelectedEntry() *bubbletree.Entry {
	cursor := m.table.GetHighlightedRowIndex()
	if cursor >= 0 && cursor < len(m.dir.Entries) {
		return m.dir.Entries[cursor]
	}
	return nil
}

// SetBorderColor updates the table border color (for focus indication).
func (m FilesTableModel) SetBorderColor(color RGBColor) FilesTableModel {
	m.table = m.table.WithBaseStyle(
		lipgloss.NewStyle().BorderForeground(lipgloss.Color(color)),
	)
	return m
}

func (m FilesTableModel) widthToColumn(colNo int) int {
	width := m.width
	if colNo >= len(m.columns) {
		goto end
	}
	width = 2 + colNo + 1
	// Two for outer borders, colNo for dividers, and one just because.
	for i := 0; i < colNo; i++ {
		width += m.columns[i].Width()
	}
end:
	return width
}

func (m FilesTableModel) refreshTable() FilesTableModel {
	selectedIdx := m.table.GetHighlightedRowIndex()
	// Rebuild rows to update cell highlighting (reverse-video moves to new cell)
	rows := buildTableRows(m.dir.Entries, selectedIdx, m.currentColumn)
	m.table = m.table.WithRows(rows)
	return m
}

// calculateMaxNameWidth returns the width needed for the name column
// based on the longest entry name in the list, with minimum padding.
func calculateMaxNameWidth(entries []*bubbletree.Entry) int {
	const minWidth = 8 // Minimum width for "Name" header
	const padding = 2  // 1 char left + 1 char right

	maxLen := minWidth
	for _, entry := range entries {
		nameLen := len(filepath.Base(entry.Path))
		if nameLen > maxLen {
			maxLen = nameLen
		}
	}

	return maxLen + padding
}

// buildTableRows converts stat'ed entries into table rows with styled cells.
// selectedRowIndex is the 0-based index of the selected row (-1 for none).
// selectedColumnIndex is the 0-based index of the selected column.
func buildTableRows(entries []*bubbletree.Entry, selectedRowIndex, selectedColumnIndex int) []table.Row {
	rows := make([]table.Row, 0, len(entries))

	for i, entry := range entries {
		row := buildTableRow(i+1, entry, i == selectedRowIndex, selectedColumnIndex)
		rows = append(rows, row)
	}

	return rows
}

// buildTableRow creates a single table row from an Entry with per-cell styling.
func buildTableRow(rowNum int, entry *bubbletree.Entry, isSelectedRow bool, selectedColumnIndex int) table.Row {
	var size, modified, perms, mode, flags string

	// Default values for missing metadata
	size = "N/A"
	modified = "N/A"
	perms = "N/A"
	mode = "N/A"
	flags = ""

	if entry.HasMeta() {
		meta := entry.Meta()
		size = formatFileSize(meta.Size)
		modified = meta.ModTime.Format("2006-01-02 15:04:05")
		perms = formatPermissions(meta.Mode)
		mode = fmt.Sprintf("%04o", meta.Mode&0777)
		flags = formatFlags(meta.Mode)
	}
	if entry.IsDir {
		size = "<dir>  "
	}

	// Combine indicator and row number in a single cell
	// Selected single digit: "▶ 1" (3 chars)
	// Selected double digit: "▶10" (3 chars)
	// Unselected single digit: "  1" (3 chars - two spaces)
	// Unselected double digit: " 10" (3 chars - one space)
	var rowNumStr string
	if isSelectedRow {
		if rowNum < 10 {
			rowNumStr = fmt.Sprintf("▶ %d", rowNum)
		} else {
			rowNumStr = fmt.Sprintf("▶%d", rowNum)
		}
	} else {
		if rowNum < 10 {
			rowNumStr = fmt.Sprintf("  %d", rowNum)
		} else {
			rowNumStr = fmt.Sprintf(" %d", rowNum)
		}
	}

	nameColor := WhiteColor
	if entry.IsDir {
		nameColor = BlueColor
	}

	// Create styled cells
	// - Entire selected row gets: bold + brighter colors (isSelectedRow)
	// - Current cell (selected row AND current column) also gets: reverse-video
	rowNumCell := styledMetadataCell(rowNumStr, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexRowNum)
	nameCell := styledMetadataCell(filepath.Base(entry.Path), nameColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexName)
	nameCell.Style = nameCell.Style.PaddingLeft(1)
	sizeCell := styledMetadataCell(size, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexSize)
	modifiedCell := styledMetadataCell(modified, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexModified)
	permsCell := styledMetadataCell(perms, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexPerms)
	modeCell := styledMetadataCell(mode, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexMode)
	flagsCell := styledMetadataCell(flags, WhiteColor, isSelectedRow, isSelectedRow && selectedColumnIndex == colIndexFlags)

	return table.NewRow(table.RowData{
		colKeyRowNum:   rowNumCell,
		colKeyName:     nameCell,
		colKeySize:     sizeCell,
		colKeyModified: modifiedCell,
		colKeyPerms:    permsCell,
		colKeyMode:     modeCell,
		colKeyFlags:    flagsCell,
	})
}

// adjustColorForSelection returns a brighter or dimmed version of a color based on selection state.
//
// Uses HSL color space to adjust brightness while preserving hue and saturation,
// so directory blue stays blue while still reading as selected or not.
//
// - Selected rows: Lightness +40% of headroom (capped at 0.8)
// - Unselected rows: Lightness reduced to 60% (floored at 0.2)
func adjustColorForSelection(rgbColor RGBColor, isSelected bool) string {
	c, err := colorful.Hex(string(rgbColor))
	if err != nil {
		// If parsing fails, return original color unchanged
		return string(rgbColor)
	}

	// Convert to HSL to preserve hue and saturation, only adjust lightness
	h, s, l := c.Hsl()

	if isSelected {
		l = l + (1.0-l)*0.4
		// Cap at 0.8 to avoid washing out to near-white
		if l > 0.8 {
			l = 0.8
		}
	} else {
		l = l * 0.6
		// Floor at 0.2 to maintain readability (not too dark)
		if l < 0.2 {
			l = 0.2
		}
	}

	adjusted := colorful.Hsl(h, s, l)
	return adjusted.Hex()
}

// styledMetadataCell returns a styled cell for the table columns.
//
// Implements two-level highlighting:
// - isSelectedRow: Bold + brighter color (entire row)
// - isCurrentCell: Also reverse-video (one cell in selected row)
//
// Only ONE cell in the entire table has reverse-video at a time (the "cursor").
func styledMetadataCell(text string, baseColor RGBColor, isSelectedRow bool, isCurrentCell bool) table.StyledCell {
	// Adjust color brightness based on selection
	color := adjustColorForSelection(baseColor, isSelectedRow)

	// Background must be set explicitly for Reverse to work visibly
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color("#1a1a1a")).
		Bold(isSelectedRow)

	// Reverse swaps foreground and background colors
	if isCurrentCell {
		style = style.Reverse(true)
	}

	return table.NewStyledCell(text, style)
}

// formatFileSize converts bytes to human-readable format.
func formatFileSize(bytes int64) (size string) {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B   ", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB ", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// formatPermissions converts os.FileMode to symbolic notation (rwxr-xr-x).
func formatPermissions(mode os.FileMode) string {
	var b [9]byte
	w := 0
	for i := 0; i < 3; i++ {
		shift := uint(6 - i*3)
		if mode&(1<<(shift+2)) != 0 {
			b[w] = 'r'
		} else {
			b[w] = '-'
		}
		w++
		if mode&(1<<(shift+1)) != 0 {
			b[w] = 'w'
		} else {
			b[w] = '-'
		}
		w++
		if mode&(1<<shift) != 0 {
			b[w] = 'x'
		} else {
			b[w] = '-'
		}
		w++
	}
	return string(b[:])
}

// formatFlags returns symbolic flags (x for executable, l for symlink).
func formatFlags(mode os.FileMode) (flags string) {
	if mode&os.ModeSymlink != 0 {
		flags += "l"
	}
	if mode&0111 != 0 {
		flags += "x"
	}

	return flags
}
