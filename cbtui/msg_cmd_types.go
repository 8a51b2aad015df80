package cbtui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/bubbletree"
)

// bootstrapMsg bootstraps the entire browser state
type bootstrapMsg struct {
	logger *slog.Logger
}

func bootstrapCmd(lgr *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		return bootstrapMsg{logger: lgr}
	}
}

// treeLoadedMsg - directory tree built successfully
type treeLoadedMsg struct {
	tree *bubbletree.Tree
}

// loadTreeCmd performs I/O to read the browse root and build the tree
func loadTreeCmd(rootDir string) tea.Cmd {
	return func() tea.Msg {
		logger.Info("Loading directory tree", "root_dir", rootDir)
		tree, err := bubbletree.NewFileSystemTree(rootDir, nil)
		if err != nil {
			return onErrorMsg{
				msg: fmt.Sprintf("Reading directory %s", rootDir),
				err: err,
			}
		}
		return treeLoadedMsg{tree: tree}
	}
}

type screenDimensionsMsg struct {
	Height int
	Width  int
}

func screenDimensionsCmd(w, h int) tea.Cmd {
	return func() tea.Msg {
		return screenDimensionsMsg{
			Width:  w,
			Height: h,
		}
	}
}

type createLayoutMsg struct{}

func requestLayoutCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(100 * time.Millisecond)
		return createLayoutMsg{}
	}
}

type resizeLayoutMsg struct{}

func resizeLayoutCmd() tea.Cmd {
	return func() tea.Msg {
		return resizeLayoutMsg{}
	}
}

// loadDirectoryViewMsg - user selected a directory in the tree, request metadata load
type loadDirectoryViewMsg struct {
	dirPath string
	entries []*bubbletree.Entry
}

func requestDirectoryViewCmd(dirPath string, entries []*bubbletree.Entry) tea.Cmd {
	return func() tea.Msg {
		return loadDirectoryViewMsg{
			dirPath: dirPath,
			entries: entries,
		}
	}
}

// loadDirectoryMetaCmd performs I/O to stat every entry in a directory
func loadDirectoryMetaCmd(dirPath string, entries []*bubbletree.Entry) tea.Cmd {
	return func() tea.Msg {
		logger.Info("Loading directory metadata", "dir_path", dirPath, "entry_count", len(entries))
		for _, entry := range entries {
			err := entry.LoadMeta()
			if err != nil {
				return onErrorMsg{
					msg: fmt.Sprintf("Loading metadata for directory %s", dirPath),
					err: err,
				}
			}
		}
		return directoryMetaLoadedMsg{
			dirPath: dirPath,
			entries: entries,
		}
	}
}

// directoryMetaLoadedMsg - metadata loaded successfully (no error field)
type directoryMetaLoadedMsg struct {
	dirPath string
	entries []*bubbletree.Entry
}

type reloadTableMsg struct {
	dirPath string
	entries []*bubbletree.Entry
}

func requestReloadTableCmd(dirPath string, entries []*bubbletree.Entry) tea.Cmd {
	return func() tea.Msg {
		return reloadTableMsg{
			dirPath: dirPath,
			entries: entries,
		}
	}
}

// ============================================================================
// Error Messages
// ============================================================================

type onErrorMsg struct {
	msg string
	err error
}

func onErrorCmd(msg string, err error) tea.Cmd {
	return func() tea.Msg {
		return onErrorMsg{
			msg: msg,
			err: err,
		}
	}
}
