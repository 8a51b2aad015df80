package cbapp

var (
	// versionString is set at build time by GoReleaser via -X flag.
	// Must be a plain string type for -X to work.
	versionString = "v0.0.0-dev"

	// Version is the application version exposed to the rest of the application.
	Version = versionString
)

const (
	// AppName is the human-readable name of the application.
	AppName  = "CodeBrowse"
	AppDescr = "Terminal code browser with an editable text pane"

	// ExeName is the name of the one executable we put on a user's machine.
	ExeName = "codebrowse"

	// ConfigSlug provides the directory under the user config dir where
	// application files such as the log file will be stored, e.g.
	// ~/.config/codebrowse/codebrowse.log
	ConfigSlug = "codebrowse"

	// LogFile is the filename for the JSON log within the config directory.
	LogFile = ExeName + ".log"
)
