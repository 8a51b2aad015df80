// Package langdetect guesses a syntax-highlighting language for a file from
// its name and content, using chroma's lexer registry. Filename matching is
// tried first, content analysis second; a miss is "" (plain text), never an
// error.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// builtinLanguages is the set of language identifiers the editor pane has
// first-class support for. Guesses outside this set fall back to plain text.
var builtinLanguages = map[string]struct{}{
	"bash":       {},
	"css":        {},
	"go":         {},
	"html":       {},
	"java":       {},
	"javascript": {},
	"json":       {},
	"markdown":   {},
	"python":     {},
	"regex":      {},
	"rust":       {},
	"sql":        {},
	"toml":       {},
	"xml":        {},
	"yaml":       {},
}

// Detector implements session.Guesser on top of chroma. The zero value is
// ready to use.
type Detector struct{}

// Guess returns the lowercased canonical name of the best-match lexer for
// path and content, or "" when chroma has no match. Deterministic for a
// given (path, content) pair.
func (Detector) Guess(path string, content string) (lang string) {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		goto end
	}
	lang = strings.ToLower(lexer.Config().Name)
end:
	return lang
}

// Supported reports whether id belongs to the builtin-supported language set.
func (Detector) Supported(id string) bool {
	_, ok := builtinLanguages[id]
	return ok
}
