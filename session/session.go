// Package session mediates between a selectable tree of files and a single
// editable text buffer: load on selection, best-effort language detection,
// and explicit save-on-demand. The buffer widget owns the live text; the
// controller only reads it for comparison and writes to it when loading.
package session

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Severity classifies a notification. The default is informational.
type Severity int

const (
	InfoSeverity Severity = iota
	ErrorSeverity
)

func (s Severity) String() string {
	switch s {
	case InfoSeverity:
		return "Info"
	case ErrorSeverity:
		return "Error"
	default:
		return "Unknown"
	}
}

// TextBuffer is the capability surface of the live editable widget.
type TextBuffer interface {
	Text() string
	SetText(text string)
	// SetLanguage sets the buffer's highlighting language; "" means plain
	// text with no highlighting.
	SetLanguage(id string)
	SetVisible(visible bool)
}

// Notifier surfaces transient user-visible messages.
type Notifier interface {
	Notify(message, title string, severity Severity)
}

// Guesser maps (filename, content) to a highlighting-language identifier,
// "" when nothing matches. Supported reports whether an identifier belongs
// to the known language set.
type Guesser interface {
	Guess(path string, content string) string
	Supported(id string) bool
}

// ErrorSubtitle is displayed in place of the file path after a failed load.
const ErrorSubtitle = "ERROR"

// Controller owns the selection → load → edit → save lifecycle for a single
// file at a time. It is driven serially by the host event loop and performs
// only synchronous file I/O.
type Controller struct {
	buffer   TextBuffer
	notifier Notifier
	guesser  Guesser
	logger   *slog.Logger

	// selectedFile is the absolute path currently open for editing;
	// "" when no file is loaded or after a load failure.
	selectedFile string

	// loadedContent is the content last read from or written to disk for
	// selectedFile — never the live editor buffer. It is the baseline used
	// to detect unsaved modifications.
	loadedContent string

	subtitle string
}

type ControllerArgs struct {
	Buffer   TextBuffer
	Notifier Notifier
	Guesser  Guesser
	Logger   *slog.Logger
}

func NewController(args ControllerArgs) *Controller {
	if args.Logger == nil {
		args.Logger = slog.Default()
	}
	return &Controller{
		buffer:   args.Buffer,
		notifier: args.Notifier,
		guesser:  args.Guesser,
		logger:   args.Logger,
	}
}

// HandleSelection loads path into the buffer. Read failures of any kind —
// missing file, permission, I/O, undecodable content — are one uniform
// "unreadable" outcome: the controller resets to the no-file-open state,
// notifies the user once, and never surfaces the failure to the caller.
func (c *Controller) HandleSelection(path string) {
	content, err := readTextFile(path)
	if err != nil {
		c.logger.Error("File load failed", "path", path, "error", err)
		c.subtitle = ErrorSubtitle
		c.buffer.SetVisible(false)
		c.buffer.SetLanguage("")
		c.selectedFile = ""
		c.loadedContent = ""
		c.notifier.Notify(
			fmt.Sprintf("%s could not be loaded", filepath.Base(path)),
			"File Error",
			ErrorSeverity,
		)
		return
	}

	c.loadedContent = content
	c.selectedFile = path
	c.subtitle = path
	c.buffer.SetVisible(true)
	c.loadAndDetect(content, path)
}

// loadAndDetect loads text into the buffer and applies the guessed language
// when it is in the supported set, plain text otherwise. Deterministic for
// a fixed Guesser.
func (c *Controller) loadAndDetect(content, path string) {
	lang := c.guesser.Guess(path, content)
	c.buffer.SetText(content)
	if !c.guesser.Supported(lang) {
		lang = ""
	}
	c.buffer.SetLanguage(lang)
	c.logger.Info("File loaded", "path", path, "language", lang)
}

// Save writes the buffer back to the selected file when it differs from the
// last-loaded content. With no file selected, or with an unmodified buffer,
// Save is a no-op: no write, no notification. A write failure is returned
// for the host to surface; loadedContent is left unchanged so a retry
// compares against the same baseline.
func (c *Controller) Save() (err error) {
	var text string

	if c.selectedFile == "" {
		goto end
	}

	text = c.buffer.Text()
	if text == c.loadedContent {
		// Nothing changed; avoid the disk write and the spurious
		// "saved" notification.
		goto end
	}

	err = os.WriteFile(c.selectedFile, []byte(text), 0o644)
	if err != nil {
		c.logger.Error("File save failed", "path", c.selectedFile, "error", err)
		err = fmt.Errorf("%w: %w", ErrUnwritable, err)
		goto end
	}

	c.loadedContent = text
	c.logger.Info("File saved", "path", c.selectedFile, "bytes", len(text))
	c.notifier.Notify(c.selectedFile, "File Saved", InfoSeverity)

end:
	return err
}

// SelectedFile returns the path currently open for editing, "" when none.
func (c *Controller) SelectedFile() string {
	return c.selectedFile
}

// HasFile reports whether a file is currently open.
func (c *Controller) HasFile() bool {
	return c.selectedFile != ""
}

// LoadedContent returns the on-disk baseline for the selected file.
func (c *Controller) LoadedContent() string {
	return c.loadedContent
}

// Subtitle returns the display subtitle: the selected path after a
// successful load, ErrorSubtitle after a failed one.
func (c *Controller) Subtitle() string {
	return c.subtitle
}

// SetSubtitle overrides the display subtitle. The host uses this to show
// the browse root before any file has been selected.
func (c *Controller) SetSubtitle(subtitle string) {
	c.subtitle = subtitle
}

// readTextFile reads path and decodes it as UTF-8 text. Every failure mode
// maps to ErrUnreadable.
func readTextFile(path string) (content string, err error) {
	var data []byte

	data, err = os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUnreadable, err)
		goto end
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		err = fmt.Errorf("%w: %s is not valid text", ErrUnreadable, filepath.Base(path))
		goto end
	}
	content = string(data)

end:
	return content, err
}
