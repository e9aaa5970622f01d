package zipinstaller

import (
	"strings"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// textField is an editable single line of text with a cursor.
type textField struct {
	runes  []rune
	cursor int
	masked bool
}

func newTextField(value string) *textField {
	r := []rune(value)
	return &textField{runes: r, cursor: len(r)}
}

func (f *textField) Value() string {
	return string(f.runes)
}

func (f *textField) SetValue(value string) {
	f.runes = []rune(value)
	f.cursor = len(f.runes)
}

// Insert adds text at the cursor. Line breaks are dropped.
func (f *textField) Insert(text string) {
	text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
	if text == "" {
		return
	}
	in := []rune(text)
	out := make([]rune, 0, len(f.runes)+len(in))
	out = append(out, f.runes[:f.cursor]...)
	out = append(out, in...)
	out = append(out, f.runes[f.cursor:]...)
	f.runes = out
	f.cursor += len(in)
}

// Handle applies an editing key. It returns false for keys it does not use.
func (f *textField) Handle(button constants.VirtualButton, clipboard func() string) bool {
	switch button {
	case constants.VirtualButtonLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case constants.VirtualButtonRight:
		if f.cursor < len(f.runes) {
			f.cursor++
		}
	case constants.VirtualButtonHome:
		f.cursor = 0
	case constants.VirtualButtonEnd:
		f.cursor = len(f.runes)
	case constants.VirtualButtonBackspace:
		if f.cursor > 0 {
			f.runes = append(f.runes[:f.cursor-1], f.runes[f.cursor:]...)
			f.cursor--
		}
	case constants.VirtualButtonDelete:
		if f.cursor < len(f.runes) {
			f.runes = append(f.runes[:f.cursor], f.runes[f.cursor+1:]...)
		}
	case constants.VirtualButtonPaste:
		if clipboard != nil {
			f.Insert(clipboard())
		}
	default:
		return false
	}
	return true
}

// Display returns the text to draw and the rune offset of the cursor in it.
func (f *textField) Display() (string, int) {
	if f.masked {
		return strings.Repeat("•", len(f.runes)), f.cursor
	}
	return string(f.runes), f.cursor
}

// BeforeCursor is the drawn text left of the cursor, used to place it.
func (f *textField) BeforeCursor() string {
	text, cursor := f.Display()
	return string([]rune(text)[:cursor])
}
