package zipinstaller

import (
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

// quitRequested is set once the window is closed for good. Every component
// returns ErrQuit from then on so the router unwinds.
var quitRequested atomic.Bool

var screenMargins = internal.UniformPadding(24)

// frameHandler is one component's per-frame behaviour.
type frameHandler struct {
	// handle receives each input event and reports whether the component
	// is finished.
	handle func(internal.InputEvent) bool
	// tick runs once per frame after input and reports whether the
	// component is finished.
	tick func() bool
	draw func(renderer *sdl.Renderer, window *internal.Window)
}

// runFrames polls input and draws until the component is finished. It
// returns ErrQuit when the window is closed.
func runFrames(h frameHandler) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("render", errNotInitialised)
	}

	for {
		if quitRequested.Load() {
			return ErrQuit
		}

		for _, ev := range internal.PollInput() {
			if ev.Quit {
				quitRequested.Store(true)
				return ErrQuit
			}
			if h.handle != nil && h.handle(ev) {
				return nil
			}
		}

		if h.tick != nil && h.tick() {
			return nil
		}

		window.Clear()
		if h.draw != nil {
			h.draw(window.Renderer, window)
		}
		window.Present()

		if window.Minimized() {
			time.Sleep(constants.FrameDelay)
		}
	}
}

// renderTitle draws an optional icon and the title and returns the y
// coordinate below it.
func renderTitle(renderer *sdl.Renderer, title, icon string) int32 {
	theme := internal.GetTheme()
	font := internal.Fonts.LargeFont
	x := screenMargins.Left
	y := screenMargins.Top
	height := int32(font.Height())

	if icon != "" {
		internal.RenderIcon(renderer, icon, x, y, height, theme.AccentColor)
		x += height + 12
	}
	internal.RenderText(renderer, font, title, x, y, theme.TextColor, constants.TextAlignLeft)

	return y + height + constants.DefaultTitleSpacing*4
}

// renderFooter draws the help line at the bottom of the window.
func renderFooter(renderer *sdl.Renderer, window *internal.Window, help string) {
	if help == "" {
		return
	}
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	y := window.GetHeight() - screenMargins.Bottom - int32(font.Height())
	internal.RenderText(renderer, font, help, screenMargins.Left, y, theme.HintColor, constants.TextAlignLeft)
}

// renderStatus draws a one-line message, in the error colour if isError.
func renderStatus(renderer *sdl.Renderer, window *internal.Window, text string, isError bool) {
	if text == "" {
		return
	}
	theme := internal.GetTheme()
	color := theme.HintColor
	if isError {
		color = theme.ErrorColor
	}
	font := internal.Fonts.SmallFont
	y := window.GetHeight() - screenMargins.Bottom - 2*int32(font.Height()) - 8
	maxWidth := window.GetWidth() - screenMargins.Left - screenMargins.Right
	internal.RenderText(renderer, font, truncate(font, text, maxWidth), screenMargins.Left, y, color, constants.TextAlignLeft)
}

var errNotInitialised = errors.New("ui not initialised, call Init first")

func truncate(font *ttf.Font, text string, maxWidth int32) string {
	return truncateWith(text, maxWidth, func(s string) int32 { return internal.TextWidth(font, s) })
}

// truncateWith shortens text with a trailing ellipsis until it fits.
func truncateWith(text string, maxWidth int32, measure func(string) int32) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
