package zipinstaller

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/installer"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

// ProgressWork runs off the UI goroutine and reports each step.
type ProgressWork func(ctx context.Context, report func(installer.Progress)) (string, error)

// ProgressMessages are the texts of a ProgressView.
type ProgressMessages struct {
	Done     func(result string) string
	Failed   func(err error) string
	Continue string
	Help     string
}

// ProgressResult is what the work returned.
type ProgressResult struct {
	Result string
	Err    error
}

// ProgressView runs work in the background, draws its progress and, once it
// ends, shows the outcome until the user continues. Escape while running
// cancels the work.
func ProgressView(ctx context.Context, title string, messages ProgressMessages, work ProgressWork) (*ProgressResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := newProgressController(cancel)
	go c.run(ctx, work)

	err := runFrames(frameHandler{
		handle: c.handle,
		tick: func() bool {
			c.poll()
			return false
		},
		draw: func(renderer *sdl.Renderer, window *internal.Window) {
			c.render(renderer, window, title, messages)
		},
	})
	if err != nil {
		cancel()
		if !c.finished {
			<-c.done
		}
		return nil, err
	}
	return &ProgressResult{Result: c.result, Err: c.err}, nil
}

type progressOutcome struct {
	result string
	err    error
}

type progressController struct {
	updates chan installer.Progress
	done    chan progressOutcome
	cancel  context.CancelFunc

	current  installer.Progress
	finished bool
	result   string
	err      error
}

func newProgressController(cancel context.CancelFunc) *progressController {
	return &progressController{
		updates: make(chan installer.Progress, 64),
		done:    make(chan progressOutcome, 1),
		cancel:  cancel,
	}
}

func (c *progressController) run(ctx context.Context, work ProgressWork) {
	result, err := work(ctx, func(p installer.Progress) {
		select {
		case c.updates <- p:
		default:
			// The UI only needs the latest value.
		}
	})
	c.done <- progressOutcome{result: result, err: err}
}

// poll drains pending progress and picks up the outcome once.
func (c *progressController) poll() {
	for {
		select {
		case p := <-c.updates:
			c.current = p
		default:
			if c.finished {
				return
			}
			select {
			case out := <-c.done:
				c.finished = true
				c.result, c.err = out.result, out.err
				c.drain()
			default:
			}
			return
		}
	}
}

func (c *progressController) drain() {
	for {
		select {
		case p := <-c.updates:
			c.current = p
		default:
			return
		}
	}
}

func (c *progressController) handle(ev internal.InputEvent) bool {
	if !ev.Pressed || ev.Text != "" {
		return false
	}
	if !c.finished {
		if ev.Button == constants.VirtualButtonBack {
			c.cancel()
		}
		return false
	}
	return ev.Button == constants.VirtualButtonAccept || ev.Button == constants.VirtualButtonBack
}

func (c *progressController) render(renderer *sdl.Renderer, window *internal.Window, title string, messages ProgressMessages) {
	theme := internal.GetTheme()

	icon := constants.IconArchive
	if c.finished {
		icon = constants.IconCheck
		if c.err != nil {
			icon = constants.IconAlert
		}
	}
	y := renderTitle(renderer, title, icon)

	width := window.GetWidth() - screenMargins.Left - screenMargins.Right
	bar := sdl.Rect{X: screenMargins.Left, Y: y + 20, W: width, H: 18}
	internal.StrokeRect(renderer, bar, 1, theme.HintColor)

	fraction := c.current.Fraction()
	if c.finished && c.err == nil {
		fraction = 1
	}
	if fill := int32(float64(bar.W-4) * fraction); fill > 0 {
		internal.FillRect(renderer, sdl.Rect{X: bar.X + 2, Y: bar.Y + 2, W: fill, H: bar.H - 4}, theme.AccentColor)
	}

	font := internal.Fonts.SmallFont
	y = bar.Y + bar.H + 16

	switch {
	case !c.finished:
		internal.RenderText(renderer, font, truncate(font, c.current.Current, width), screenMargins.Left, y, theme.HintColor, constants.TextAlignLeft)
		renderFooter(renderer, window, messages.Help)
	case c.err != nil:
		text := c.err.Error()
		if messages.Failed != nil {
			text = messages.Failed(c.err)
		}
		internal.RenderMultilineText(renderer, text, internal.Fonts.MediumFont, width, screenMargins.Left, y, theme.ErrorColor, constants.TextAlignLeft)
		renderFooter(renderer, window, messages.Continue)
	default:
		text := c.result
		if messages.Done != nil {
			text = messages.Done(c.result)
		}
		internal.RenderMultilineText(renderer, text, internal.Fonts.MediumFont, width, screenMargins.Left, y, theme.TextColor, constants.TextAlignLeft)
		renderFooter(renderer, window, messages.Continue)
	}
}
