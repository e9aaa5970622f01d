// Package zipinstaller provides the installer's user interface: SDL setup,
// the option list, text fields, the confirmation dialog, the progress view
// and the App that wires the wizard screens to the router and the
// navigation guard.
package zipinstaller

import (
	"log/slog"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/icons"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/platform/desktop"
)

// Options configures UI initialization.
type Options struct {
	WindowTitle     string                 // Window title
	WindowOptions   internal.WindowOptions // SDL window flags
	Theme           string                 // "light" or "dark"
	AccentColorHex  string                 // Accent colour as #rrggbb, empty for the default
	FontPath        string                 // Preferred font file, system fonts are tried after it
	LogPath         string                 // Full path for the log file, empty for stdout only
	Debug           bool                   // Log the UI plumbing at debug level
	MinimizeOnClose bool                   // Minimize instead of quitting when the window is closed
}

// Init initializes SDL, the theme and the window.
// Must be called before any other UI function.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetTheme(desktop.Theme(options.Theme, accentColor(options.AccentColorHex), options.FontPath))

	winOpts := options.WindowOptions
	winOpts.MinimizeOnClose = options.MinimizeOnClose
	if !winOpts.Resizable && !winOpts.Borderless && !winOpts.Hidden {
		winOpts.Resizable = true
	}

	title := options.WindowTitle
	if title == "" {
		title = "Zip Installer"
	}

	if err := internal.Init(title, winOpts); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

func accentColor(hex string) uint32 {
	c, ok := icons.ParseHex(hex)
	if !ok {
		return desktop.DefaultAccent
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Close releases all SDL resources.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetTheme switches between the light and dark theme at runtime.
func SetTheme(name, accentHex string) {
	current := internal.GetTheme()
	internal.SetTheme(desktop.Theme(name, accentColor(accentHex), current.FontPath))
}

// SetMinimizeOnClose changes what closing the window does.
func SetMinimizeOnClose(v bool) {
	if w := internal.GetWindow(); w != nil {
		w.SetMinimizeOnClose(v)
	}
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
