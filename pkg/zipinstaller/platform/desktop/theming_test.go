package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestThemeSelection(t *testing.T) {
	dark := Theme("dark", 0x112233, "/f.ttf")
	assert.True(t, dark.Dark)
	assert.Equal(t, sdl.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, dark.AccentColor)
	assert.Equal(t, "/f.ttf", dark.FontPath)

	light := Theme("light", DefaultAccent, "")
	assert.False(t, light.Dark)
	assert.Equal(t, sdl.Color{R: 0x00, G: 0x78, B: 0xD4, A: 255}, light.HighlightColor)
}
