// Package constants defines shared constants, types, and configuration values
// used throughout the installer UI.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	FontPathEnvVar       = "FONT_PATH"
	SettingsPathEnvVar   = "ZIPINSTALLER_SETTINGS"
	ThemeEnvVar          = "ZIPINSTALLER_THEME"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from the keyboard.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonAccept
	VirtualButtonBack
	VirtualButtonTab
	VirtualButtonBackspace
	VirtualButtonDelete
	VirtualButtonHome
	VirtualButtonEnd
	VirtualButtonPaste
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonAccept:
		return "Accept"
	case VirtualButtonBack:
		return "Back"
	case VirtualButtonTab:
		return "Tab"
	case VirtualButtonBackspace:
		return "Backspace"
	case VirtualButtonDelete:
		return "Delete"
	case VirtualButtonHome:
		return "Home"
	case VirtualButtonEnd:
		return "End"
	case VirtualButtonPaste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	DefaultWindowWidth  int32 = 800
	DefaultWindowHeight int32 = 600
	DevWindowWidth      int32 = 1024
	DevWindowHeight     int32 = 768
	FrameDelay                = 16 * time.Millisecond
)
