package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// TextWidth returns the rendered width of text, or 0 on error.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// RenderText draws a single line. x is the left edge, centre or right edge
// depending on align. It returns the drawn width.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	switch align {
	case constants.TextAlignCenter:
		x -= surface.W / 2
	case constants.TextAlignRight:
		x -= surface.W
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W
}

// RenderMultilineText wraps text to maxWidth and draws it from y downwards.
// It returns the total height.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lines := WrapText(text, maxWidth, func(s string) int32 { return TextWidth(font, s) })
	lineHeight := int32(font.Height())
	spacing := lineHeight / 5

	cy := y
	for i, line := range lines {
		RenderText(renderer, font, line, x, cy, color, align)
		cy += lineHeight
		if i < len(lines)-1 {
			cy += spacing
		}
	}
	return cy - y
}

// WrapText splits text into lines no wider than maxWidth according to
// measure. Explicit newlines are kept; a single word wider than maxWidth
// gets a line of its own.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// FillRect draws a filled rectangle.
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

// StrokeRect draws a rectangle outline of the given thickness.
func StrokeRect(renderer *sdl.Renderer, rect sdl.Rect, thickness int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := range thickness {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		if r.W <= 0 || r.H <= 0 {
			return
		}
		renderer.DrawRect(&r)
	}
}
