// Package desktop provides the light and dark themes of the desktop
// installer.
package desktop

import (
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

// DefaultAccent is used when the settings carry no valid colour.
const DefaultAccent uint32 = 0x0078D4

// DarkTheme creates the dark theme with the given accent colour and font.
func DarkTheme(accent uint32, fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(accent),
		AccentColor:          internal.HexToColor(accent),
		ButtonLabelColor:     internal.HexToColor(0xFFFFFF),
		TextColor:            internal.HexToColor(0xF3F3F3),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x9A9A9A),
		BackgroundColor:      internal.HexToColor(0x202020),
		ErrorColor:           internal.HexToColor(0xFF6B6B),
		FontPath:             fontPath,
		Dark:                 true,
	}
}

// LightTheme creates the light theme with the given accent colour and font.
func LightTheme(accent uint32, fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(accent),
		AccentColor:          internal.HexToColor(accent),
		ButtonLabelColor:     internal.HexToColor(0xFFFFFF),
		TextColor:            internal.HexToColor(0x1B1B1B),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x6E6E6E),
		BackgroundColor:      internal.HexToColor(0xF3F3F3),
		ErrorColor:           internal.HexToColor(0xC42B1C),
		FontPath:             fontPath,
	}
}

// Theme picks the light or dark theme by name ("light" or anything else
// for dark).
func Theme(name string, accent uint32, fontPath string) internal.Theme {
	if name == "light" {
		return LightTheme(accent, fontPath)
	}
	return DarkTheme(accent, fontPath)
}
