package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every rune is 10 units wide.
func fixedWidth(s string) int32 {
	return int32(len([]rune(s))) * 10
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, WrapText("", 100, fixedWidth))

	assert.Equal(t,
		[]string{"the quick", "brown fox"},
		WrapText("the quick brown fox", 90, fixedWidth))

	assert.Equal(t,
		[]string{"first", "", "second line"},
		WrapText("first\n\nsecond line", 200, fixedWidth))

	assert.Equal(t,
		[]string{"a", "enormousword", "b"},
		WrapText("a enormousword b", 50, fixedWidth))
}

func TestPaddingInset(t *testing.T) {
	x, y, w, h := UniformPadding(10).Inset(0, 0, 100, 50)
	assert.Equal(t, []int32{10, 10, 80, 30}, []int32{x, y, w, h})

	_, _, w, h = UniformPadding(40).Inset(0, 0, 50, 50)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestFontCandidates(t *testing.T) {
	got := fontCandidates("/theme.ttf", "/env.ttf", "linux")
	assert.Equal(t, "/env.ttf", got[0])
	assert.Equal(t, "/theme.ttf", got[1])
	assert.Contains(t, got, "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf")

	got = fontCandidates("", "", "windows")
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p, `\Fonts\`)
	}
}
