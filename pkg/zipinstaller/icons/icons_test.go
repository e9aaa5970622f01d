package icons

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"alert", "archive", "check", "exit", "folder", "settings"}, Names())
}

func TestSourceTintsCurrentColor(t *testing.T) {
	src, err := Source("check", red)
	require.NoError(t, err)
	assert.Contains(t, string(src), `fill="#ff0000"`)
	assert.NotContains(t, string(src), "currentColor")
}

func TestRenderDrawsTintedPixels(t *testing.T) {
	img, err := Render("folder", 48, red)
	require.NoError(t, err)
	require.Equal(t, 48, img.Bounds().Dx())

	// The folder body covers the centre of the icon.
	c := img.RGBAAt(24, 30)
	assert.Equal(t, uint8(0xff), c.A)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Zero(t, c.G)

	// The corner is outside the glyph.
	assert.Zero(t, img.RGBAAt(0, 0).A)
}

func TestRenderCaches(t *testing.T) {
	a, err := Render("alert", 16, red)
	require.NoError(t, err)
	b, err := Render("alert", 16, red)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRenderErrors(t *testing.T) {
	_, err := Render("nope", 16, red)
	require.Error(t, err)

	_, err = Render("check", 0, red)
	require.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0078d4", Hex(color.NRGBA{R: 0x00, G: 0x78, B: 0xd4, A: 0xff}))

	c, ok := ParseHex("#0078D4")
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x78, B: 0xd4, A: 0xff}, c)

	_, ok = ParseHex("blue")
	assert.False(t, ok)
	_, ok = ParseHex("")
	assert.False(t, ok)
}
