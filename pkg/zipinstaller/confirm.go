package zipinstaller

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/guard"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

// ConfirmDialog is a modal with an accept and a reject button. It is the
// guard's confirmation collaborator.
type ConfirmDialog struct {
	// InitialReject focuses the reject button first.
	InitialReject bool
	// Help is drawn in the footer.
	Help string
}

var _ guard.Confirmer = (*ConfirmDialog)(nil)

// Confirm shows prompt and blocks until the user answers. It returns nil on
// accept, ErrCancelled on reject or Escape, ErrQuit when the window is
// closed and ctx.Err() when ctx ends first.
func (d *ConfirmDialog) Confirm(ctx context.Context, prompt guard.Prompt) error {
	c := newConfirmController(prompt, d.InitialReject)

	var ctxErr error
	err := runFrames(frameHandler{
		handle: c.handle,
		tick: func() bool {
			ctxErr = ctx.Err()
			return ctxErr != nil
		},
		draw: func(renderer *sdl.Renderer, window *internal.Window) {
			c.render(renderer, window, d.Help)
		},
	})
	switch {
	case err != nil:
		return err
	case ctxErr != nil:
		return ctxErr
	case !c.accepted:
		return ErrCancelled
	}
	return nil
}

type confirmController struct {
	prompt        guard.Prompt
	selectedIndex int // 0 accept, 1 reject
	accepted      bool
	lastInputTime time.Time
	inputDelay    time.Duration
}

func newConfirmController(prompt guard.Prompt, initialReject bool) *confirmController {
	c := &confirmController{prompt: prompt, inputDelay: constants.DefaultInputDelay}
	if initialReject {
		c.selectedIndex = 1
	}
	return c
}

func (c *confirmController) handle(ev internal.InputEvent) bool {
	if !ev.Pressed || ev.Text != "" {
		return false
	}
	if time.Since(c.lastInputTime) < c.inputDelay {
		return false
	}
	c.lastInputTime = time.Now()

	switch ev.Button {
	case constants.VirtualButtonLeft, constants.VirtualButtonRight, constants.VirtualButtonTab:
		c.selectedIndex = 1 - c.selectedIndex
	case constants.VirtualButtonAccept:
		c.accepted = c.selectedIndex == 0
		return true
	case constants.VirtualButtonBack:
		c.accepted = false
		return true
	}
	return false
}

func (c *confirmController) render(renderer *sdl.Renderer, window *internal.Window, help string) {
	theme := internal.GetTheme()
	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()
	centerX := windowWidth / 2

	titleFont := internal.Fonts.LargeFont
	messageFont := internal.Fonts.MediumFont
	buttonFont := internal.Fonts.MediumFont

	maxMessageWidth := min(int32(float64(windowWidth)*0.75), 640)
	iconSize := int32(titleFont.Height())

	messageLines := internal.WrapText(c.prompt.Message, maxMessageWidth, func(s string) int32 { return internal.TextWidth(messageFont, s) })
	messageHeight := int32(len(messageLines)) * int32(messageFont.Height()) * 6 / 5
	buttonHeight := int32(buttonFont.Height()) + 16
	spacing := int32(24)
	totalHeight := iconSize + spacing + int32(titleFont.Height()) + spacing + messageHeight + spacing + buttonHeight

	y := (windowHeight - totalHeight) / 2

	internal.RenderIcon(renderer, constants.IconAlert, centerX-iconSize/2, y, iconSize, theme.AccentColor)
	y += iconSize + spacing

	internal.RenderText(renderer, titleFont, c.prompt.Title, centerX, y, theme.TextColor, constants.TextAlignCenter)
	y += int32(titleFont.Height()) + spacing

	y += internal.RenderMultilineText(renderer, c.prompt.Message, messageFont, maxMessageWidth, centerX, y, theme.HintColor, constants.TextAlignCenter)
	y += spacing

	c.renderButtons(renderer, centerX, y, buttonHeight)
	renderFooter(renderer, window, help)
}

func (c *confirmController) renderButtons(renderer *sdl.Renderer, centerX, y, height int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont

	labels := [2]string{c.prompt.Accept, c.prompt.Reject}
	width := max(internal.TextWidth(font, labels[0]), internal.TextWidth(font, labels[1])) + 48
	gap := int32(24)
	x := centerX - width - gap/2

	for i, label := range labels {
		rect := sdl.Rect{X: x, Y: y, W: width, H: height}
		color := theme.TextColor
		if i == c.selectedIndex {
			internal.FillRect(renderer, rect, theme.HighlightColor)
			color = theme.HighlightedTextColor
		} else {
			internal.StrokeRect(renderer, rect, 2, theme.HintColor)
		}
		textY := y + (height-int32(font.Height()))/2
		internal.RenderText(renderer, font, label, x+width/2, textY, color, constants.TextAlignCenter)
		x += width + gap
	}
}
