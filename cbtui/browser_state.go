package cbtui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mikeschinkel/codebrowse/bubbletree"
	"github.com/mikeschinkel/codebrowse/session"
	"go.dalton.dog/bubbleup"
)

// BrowserState is the main bubbletea model for the code browser
type BrowserState struct {
	Logger *slog.Logger

	// RootDir is the directory being browsed
	RootDir string

	// Session owns the file load/edit/save lifecycle; Editor is its text
	// buffer and Notices its notifier
	Session *session.Controller
	Notices *NoticeQueue
	Editor  *EditorPane

	tree *bubbletree.Tree

	// Browser view state
	layout BrowserModel

	// Alert system for notifications
	Alert bubbleup.AlertModel // Alert overlay for load/save notifications

	// UI state
	Width  int
	Height int
}

type BrowserStateArgs struct {
	Logger  *slog.Logger
	RootDir string
	Guesser session.Guesser
}

func NewBrowserState(args BrowserStateArgs) BrowserState {
	notices := NewNoticeQueue()
	editor := NewEditorPane(0, EditorStatusLines+1)
	ctl := session.NewController(session.ControllerArgs{
		Buffer:   editor,
		Notifier: notices,
		Guesser:  args.Guesser,
		Logger:   args.Logger,
	})
	// Show the browse root in the header until a file is selected
	ctl.SetSubtitle(args.RootDir)

	return BrowserState{
		Logger:  args.Logger,
		RootDir: args.RootDir,
		Session: ctl,
		Notices: notices,
		Editor:  editor,
		Alert: *bubbleup.NewAlertModel(50, false, 3*time.Second),
	}
}

// Ensure BrowserState implements tea.Model interface
var _ tea.Model = (*BrowserState)(nil)

// Init implements tea.Model - kicks off tree loading
func (es BrowserState) Init() (cmd tea.Cmd) {
	es.Logger.Info("Initializing browser state")
	return tea.Batch(
		bootstrapCmd(es.Logger),
		es.Alert.Init(),
	)
}

// Update implements tea.Model
//
//goland:noinspection GoAssignmentToReceiver
func (es BrowserState) Update(msg tea.Msg) (_ tea.Model, cmd tea.Cmd) {
	// Delegate all messages to Alert first (for ticks and ESC)
	var alertCmd tea.Cmd
	es, alertCmd = es.alertCmd(msg)

	// Global keys handled here never reach the layout, so the editor can't
	// swallow them as edits
	handled := false

	es.Logger.Info("BrowserState.Update()", teaMsgAttrs(msg))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return es, tea.Quit

		case "ctrl+s":
			// Save the buffer back to the selected file
			err := es.Session.Save()
			if err != nil {
				cmd = onErrorCmd(
					fmt.Sprintf("Saving %s", es.Session.SelectedFile()),
					err,
				)
			}
			handled = true

		case "ctrl+t":
			// Toggle the tree pane; a no-op until the layout exists
			if es.layout.Ready() {
				es.layout = es.layout.SetShowTree(!es.layout.ShowTree())
			}
			handled = true
		}

	case onErrorMsg:
		cmd = es.Alert.NewAlertCmd(bubbleup.ErrorKey,
			fmt.Sprintf("ERROR: %s, %v", msg.msg, msg.err),
		)

	case tea.WindowSizeMsg:
		// Update BrowserState dimensions
		es.Width = msg.Width
		es.Height = msg.Height
		cmd = screenDimensionsCmd(es.Width, es.Height)

	case bootstrapMsg:
		es.layout.Logger = msg.logger
		cmd = loadTreeCmd(es.RootDir)

	case treeLoadedMsg:
		// Tree built; we can now create the layout
		es.tree = msg.tree
		cmd = requestLayoutCmd()

	case createLayoutMsg:
		switch {
		case !es.HasDimensions():
			// No dimensions yet; delay, then try again
			cmd = requestLayoutCmd()
		default:
			// Will be called after both WindowSizeMsg and treeLoadedMsg
			es.layout = es.CreateLayout()
			cmd = tea.Batch(
				es.layout.Init(), // Initialize layout (triggers initial directory load)
				resizeLayoutCmd(),
			)
		}
	}

	cmds := []tea.Cmd{cmd}

	// Delegate to the browser layout once it exists
	if es.layout.Logger != nil && !handled {
		es.layout, cmd = es.layout.Update(msg)
		cmds = appendCmd(cmds, cmd)
	}

	// Session notifications raised during this update become alerts
	cmds = append(cmds, es.noticeCmds()...)
	cmds = appendCmd(cmds, alertCmd)

	return es, tea.Batch(cmds...)
}

// noticeCmds drains queued session notices into alert commands.
func (es BrowserState) noticeCmds() (cmds []tea.Cmd) {
	for _, n := range es.Notices.Drain() {
		key := bubbleup.InfoKey
		if n.Severity == session.ErrorSeverity {
			key = bubbleup.ErrorKey
		}
		cmds = append(cmds, es.Alert.NewAlertCmd(key,
			fmt.Sprintf("%s: %s", n.Title, n.Message),
		))
	}
	return cmds
}

// View implements tea.Model
func (es BrowserState) View() string {
	// Check if layout is initialized before delegating
	if !es.layout.Ready() {
		return "Initializing..."
	}

	view := es.layout.View()

	// Overlay alert on top of all content (MUST be last)
	return es.Alert.Render(view)
}

// HasDimensions returns true once a tea.WindowSizeMsg has arrived
func (es BrowserState) HasDimensions() bool {
	return es.Width > 0 && es.Height > 0
}

func (es BrowserState) CreateLayout() BrowserModel {
	return NewBrowserModel(BrowserModelArgs{
		Logger:  es.Logger,
		Tree:    es.tree,
		Session: es.Session,
		Editor:  es.Editor,
		Width:   es.Width,
		Height:  es.Height,
	})
}

// alertCmd delegates a message to the alert overlay
// (following BubbleTea's immutable Elm architecture)
//
//goland:noinspection GoAssignmentToReceiver
func (es BrowserState) alertCmd(msg tea.Msg) (_ BrowserState, cmd tea.Cmd) {
	alertModel, alertCmd := es.Alert.Update(msg)
	es.Alert = alertModel.(bubbleup.AlertModel)
	return es, alertCmd
}
