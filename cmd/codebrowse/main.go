package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mikeschinkel/codebrowse/cbapp"
	"github.com/mikeschinkel/codebrowse/cbcfg"
	"github.com/mikeschinkel/codebrowse/cbtui"
)

// Exit codes
const (
	exitSuccess = iota
	exitOptionsParseError
	exitExecutionError
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := cbcfg.NewFlags()
	err := flags.Parse(args)
	if err != nil {
		showError("Invalid option(s)", err)
		return exitOptionsParseError
	}

	// The TUI owns the terminal, so logging goes to a file or nowhere.
	logger, err := cbapp.NewFileLogger()
	if err != nil {
		stdErrf("Error opening log file; logging disabled: %v\n", err)
		logger = cbapp.NullLogger
	}
	cbapp.SetLogger(logger)

	tui := cbtui.New(logger)
	err = tui.Run(flags.RootDir)
	if err != nil {
		showError("Run error", err)
		return exitExecutionError
	}
	return exitSuccess
}

func showError(msg string, err error) {
	stdErrf("%s: %v\n", msg, strings.ReplaceAll(err.Error(), "\n", "; "))
}

func stdErrf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
