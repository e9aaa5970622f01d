package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the installer.
type Theme struct {
	HighlightColor       sdl.Color // Selected item background, primary button background
	AccentColor          sdl.Color // Progress bar, focused field border
	ButtonLabelColor     sdl.Color // Button label text
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted items
	HintColor            sdl.Color // Help text, secondary labels
	BackgroundColor      sdl.Color // Screen background color
	ErrorColor           sdl.Color // Validation messages
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
	Dark                 bool
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// NRGBA converts an sdl.Color for the icon rasteriser.
func NRGBA(c sdl.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts an icon colour to an sdl.Color.
func FromNRGBA(c color.NRGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
