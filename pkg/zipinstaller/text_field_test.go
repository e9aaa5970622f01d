package zipinstaller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

func TestTextFieldEditing(t *testing.T) {
	f := newTextField("C:\\Apps")
	f.Insert("\\Tool")
	assert.Equal(t, `C:\Apps\Tool`, f.Value())

	f.Handle(constants.VirtualButtonHome, nil)
	f.Handle(constants.VirtualButtonDelete, nil)
	f.Insert("D")
	assert.Equal(t, `D:\Apps\Tool`, f.Value())
	assert.Equal(t, "D", f.BeforeCursor())

	f.Handle(constants.VirtualButtonEnd, nil)
	f.Handle(constants.VirtualButtonBackspace, nil)
	assert.Equal(t, `D:\Apps\Too`, f.Value())

	assert.False(t, f.Handle(constants.VirtualButtonAccept, nil))
}

func TestTextFieldUnicodeAndPaste(t *testing.T) {
	f := newTextField("安装")
	f.Handle(constants.VirtualButtonLeft, nil)
	f.Insert("程序")
	assert.Equal(t, "安程序装", f.Value())

	f.Handle(constants.VirtualButtonEnd, nil)
	f.Handle(constants.VirtualButtonPaste, func() string { return "a\r\nb" })
	assert.Equal(t, "安程序装ab", f.Value())
}

func TestTextFieldBounds(t *testing.T) {
	f := newTextField("")
	f.Handle(constants.VirtualButtonBackspace, nil)
	f.Handle(constants.VirtualButtonLeft, nil)
	f.Handle(constants.VirtualButtonDelete, nil)
	f.Handle(constants.VirtualButtonRight, nil)
	assert.Equal(t, "", f.Value())

	f.SetValue("ab")
	f.masked = true
	text, cursor := f.Display()
	assert.Equal(t, "••", text)
	assert.Equal(t, 2, cursor)
}
