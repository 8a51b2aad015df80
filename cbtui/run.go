package cbtui

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/langdetect"
)

// TUI represents the code browser terminal app
type TUI struct {
	Logger *slog.Logger
}

// New creates a new TUI instance
func New(logger *slog.Logger) *TUI {
	return &TUI{
		Logger: logger,
	}
}

// Run launches the bubbletea app rooted at rootDir
func (t *TUI) Run(rootDir string) (err error) {
	var info os.FileInfo
	var state BrowserState
	var program *tea.Program

	info, err = os.Stat(rootDir)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrStartDir, rootDir, err)
		goto end
	}
	if !info.IsDir() {
		err = fmt.Errorf("%w: %s is not a directory", ErrStartDir, rootDir)
		goto end
	}

	// Ensure that term.GetSize() is initialized before continuing. This is
	// needed in Goland terminal for debugging, but is not harmful if not
	// technically needed.
	EnsureTermGetSize(os.Stdout.Fd())

	state = NewBrowserState(BrowserStateArgs{
		Logger:  t.Logger,
		RootDir: rootDir,
		Guesser: langdetect.Detector{},
	})

	// Launch BubbleTea program
	program = tea.NewProgram(state, tea.WithAltScreen())
	_, err = program.Run()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrProgram, err)
		goto end
	}

end:
	return err
}
