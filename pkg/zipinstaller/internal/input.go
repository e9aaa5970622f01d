package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// InputEvent is one user action of a frame.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
	Text    string // typed text, Button is Unassigned
	Quit    bool   // the window was closed and should not be minimized
}

// TranslateKey maps a keyboard key to a virtual button.
func TranslateKey(key sdl.Keycode, mod uint16) constants.VirtualButton {
	ctrl := mod&sdl.KMOD_CTRL != 0 || mod&sdl.KMOD_GUI != 0

	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.VirtualButtonAccept
	case sdl.K_ESCAPE:
		return constants.VirtualButtonBack
	case sdl.K_TAB:
		return constants.VirtualButtonTab
	case sdl.K_BACKSPACE:
		return constants.VirtualButtonBackspace
	case sdl.K_DELETE:
		return constants.VirtualButtonDelete
	case sdl.K_HOME:
		return constants.VirtualButtonHome
	case sdl.K_END:
		return constants.VirtualButtonEnd
	case sdl.K_v:
		if ctrl {
			return constants.VirtualButtonPaste
		}
	}
	return constants.VirtualButtonUnassigned
}

// PollInput drains the SDL event queue. Closing the window yields a Quit
// event only when the window is not configured to minimize instead.
func PollInput() []InputEvent {
	var events []InputEvent

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			if window == nil || window.HandleClose() {
				events = append(events, InputEvent{Quit: true})
			}

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESTORED && window != nil {
				window.restored()
			}

		case *sdl.KeyboardEvent:
			button := TranslateKey(e.Keysym.Sym, e.Keysym.Mod)
			if button == constants.VirtualButtonUnassigned {
				continue
			}
			events = append(events, InputEvent{
				Button:  button,
				Pressed: e.Type == sdl.KEYDOWN,
				Repeat:  e.Repeat != 0,
			})

		case *sdl.TextInputEvent:
			events = append(events, InputEvent{Text: e.GetText(), Pressed: true})
		}
	}
	return events
}

// ClipboardText returns the clipboard contents, or "" when unavailable.
func ClipboardText() string {
	text, err := sdl.GetClipboardText()
	if err != nil {
		return ""
	}
	return text
}

// StartTextInput and StopTextInput toggle TextInputEvents.
func StartTextInput() { sdl.StartTextInput() }
func StopTextInput()  { sdl.StopTextInput() }
