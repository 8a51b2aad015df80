package cbcfg

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/mikeschinkel/codebrowse/cbapp"
)

// Flags holds the parsed command line. The only surface is one optional
// positional argument naming the directory to browse.
type Flags struct {
	// RootDir is provided as the first positional argument and defaults to
	// the current working directory when omitted.
	RootDir string
}

func NewFlags() *Flags {
	return &Flags{}
}

func (flgs *Flags) Parse(args []string) (err error) {
	var buf bytes.Buffer

	fs := flag.NewFlagSet(cbapp.ExeName, flag.ContinueOnError)
	fs.SetOutput(&buf)
	fs.Usage = func() {
		fmt.Fprintf(&buf, "usage: %s [directory]\n", cbapp.ExeName)
	}

	err = fs.Parse(args)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParsingFlags, err)
		goto end
	}

	// First positional argument sets the root directory; default to the
	// current working directory when not provided.
	flgs.RootDir = fs.Arg(0)
	if flgs.RootDir == "" {
		flgs.RootDir, err = os.Getwd()
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrParsingFlags, err)
			goto end
		}
	}

end:
	return err
}
