package constants

// Icon names understood by the icons package.
const (
	IconAlert    = "alert"
	IconArchive  = "archive"
	IconCheck    = "check"
	IconExit     = "exit"
	IconFolder   = "folder"
	IconSettings = "settings"
)
