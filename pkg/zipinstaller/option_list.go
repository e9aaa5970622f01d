package zipinstaller

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

type OptionType int

const (
	OptionTypeStandard  OptionType = iota // Left/Right cycles through Options
	OptionTypeText                        // Editable single line of text
	OptionTypeClickable                   // Enter finishes the list with this item
)

// Option is one choice of a standard item.
type Option struct {
	DisplayName string
	Value       any
}

// ItemWithOptions is one row of an OptionsList.
// Visible is an optional function that determines if the item should be
// shown; nil means always.
// OnUpdate is called after the user changed the item's value.
type ItemWithOptions struct {
	Item           MenuItem
	Type           OptionType
	Options        []Option
	SelectedOption int
	Text           string
	Masked         bool
	Visible        func() bool
	OnUpdate       func(item *ItemWithOptions)

	field *textField
}

// Value returns the selected option's value, or the text of a text item.
func (iow *ItemWithOptions) Value() any {
	switch iow.Type {
	case OptionTypeText:
		return iow.Text
	case OptionTypeStandard:
		if len(iow.Options) == 0 {
			return nil
		}
		return iow.Options[iow.SelectedOption].Value
	default:
		return iow.Item.Metadata
	}
}

// SetText replaces the text of a text item, including while it is shown.
func (iow *ItemWithOptions) SetText(text string) {
	iow.Text = text
	if iow.field != nil {
		iow.field.SetValue(text)
	}
}

// IsVisible reports whether the item should be displayed.
func (iow *ItemWithOptions) IsVisible() bool {
	return iow.Visible == nil || iow.Visible()
}

func (iow *ItemWithOptions) displayValue() string {
	if iow.Type != OptionTypeStandard || len(iow.Options) == 0 {
		return ""
	}
	return iow.Options[iow.SelectedOption].DisplayName
}

// OptionListSettings configures an OptionsList.
type OptionListSettings struct {
	TitleIcon            string
	Subtitle             string
	InitialSelectedIndex int
	DisableBackButton    bool
	FooterHelp           string
	Status               string
	StatusIsError        bool
}

// OptionsListResult is returned when the user activates an item.
type OptionsListResult struct {
	Items    []ItemWithOptions
	Selected int
	Action   ListAction
}

type optionsListController struct {
	Items         []ItemWithOptions
	SelectedIndex int
	Settings      OptionListSettings

	VisibleStartIndex int
	MaxVisibleItems   int

	action    ListAction
	cancelled bool
	clipboard func() string

	directionalInput internal.DirectionalInput
}

func newOptionsListController(items []ItemWithOptions, settings OptionListSettings) *optionsListController {
	c := &optionsListController{
		Items:            items,
		Settings:         settings,
		MaxVisibleItems:  len(items),
		clipboard:        internal.ClipboardText,
		directionalInput: internal.NewDirectionalInputWithTiming(300*time.Millisecond, 60*time.Millisecond),
	}

	for i := range c.Items {
		if c.Items[i].Type == OptionTypeText {
			c.Items[i].field = newTextField(c.Items[i].Text)
			c.Items[i].field.masked = c.Items[i].Masked
		}
		if c.Items[i].SelectedOption < 0 || c.Items[i].SelectedOption >= len(c.Items[i].Options) {
			c.Items[i].SelectedOption = 0
		}
	}

	c.SelectedIndex = -1
	if settings.InitialSelectedIndex >= 0 && settings.InitialSelectedIndex < len(items) && items[settings.InitialSelectedIndex].IsVisible() {
		c.SelectedIndex = settings.InitialSelectedIndex
	} else {
		c.moveSelection(1)
	}
	c.markSelected()
	return c
}

// OptionsList presents a list of items to the user and blocks until an
// item is activated. Back returns ErrCancelled, closing the window ErrQuit.
func OptionsList(title string, settings OptionListSettings, items []ItemWithOptions) (*OptionsListResult, error) {
	c := newOptionsListController(items, settings)

	textInput := false
	syncTextInput := func() {
		want := c.focused() != nil && c.focused().Type == OptionTypeText
		if want != textInput {
			if want {
				internal.StartTextInput()
			} else {
				internal.StopTextInput()
			}
			textInput = want
		}
	}
	defer internal.StopTextInput()

	err := runFrames(frameHandler{
		handle: func(ev internal.InputEvent) bool {
			done := c.handle(ev)
			syncTextInput()
			return done
		},
		tick: func() bool {
			syncTextInput()
			c.handleDirectionalRepeats()
			return false
		},
		draw: func(renderer *sdl.Renderer, window *internal.Window) {
			c.render(renderer, window, title)
		},
	})
	if err != nil {
		return nil, err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}

	return &OptionsListResult{
		Items:    c.Items,
		Selected: c.SelectedIndex,
		Action:   c.action,
	}, nil
}

func (olc *optionsListController) focused() *ItemWithOptions {
	if olc.SelectedIndex < 0 || olc.SelectedIndex >= len(olc.Items) {
		return nil
	}
	return &olc.Items[olc.SelectedIndex]
}

// handle applies one input event and reports whether the list is finished.
func (olc *optionsListController) handle(ev internal.InputEvent) bool {
	item := olc.focused()

	if ev.Text != "" {
		if item != nil && item.Type == OptionTypeText {
			item.field.Insert(ev.Text)
			olc.textChanged(item)
		}
		return false
	}

	if !ev.Pressed {
		olc.directionalInput.SetHeld(ev.Button, false)
		return false
	}

	switch ev.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		if !ev.Repeat {
			olc.directionalInput.SetHeld(ev.Button, true)
			olc.moveSelection(directionOf(ev.Button))
		}
		return false
	case constants.VirtualButtonTab:
		olc.moveSelection(1)
		return false
	case constants.VirtualButtonBack:
		if olc.Settings.DisableBackButton {
			return false
		}
		olc.cancelled = true
		return true
	}

	if item == nil {
		return false
	}

	switch item.Type {
	case OptionTypeText:
		if ev.Button == constants.VirtualButtonAccept {
			olc.moveSelection(1)
			return false
		}
		if item.field.Handle(ev.Button, olc.clipboard) {
			olc.textChanged(item)
		}
	case OptionTypeStandard:
		switch ev.Button {
		case constants.VirtualButtonLeft:
			olc.cycleOption(-1)
		case constants.VirtualButtonRight, constants.VirtualButtonAccept:
			olc.cycleOption(1)
		}
	case OptionTypeClickable:
		if ev.Button == constants.VirtualButtonAccept {
			olc.action = ListActionSelected
			return true
		}
	}
	return false
}

func directionOf(button constants.VirtualButton) int {
	if button == constants.VirtualButtonUp {
		return -1
	}
	return 1
}

func (olc *optionsListController) textChanged(item *ItemWithOptions) {
	if item.field.Value() == item.Text {
		return
	}
	item.Text = item.field.Value()
	if item.OnUpdate != nil {
		item.OnUpdate(item)
	}
}

func (olc *optionsListController) handleDirectionalRepeats() {
	switch olc.directionalInput.Update() {
	case internal.DirectionUp:
		olc.moveSelection(-1)
	case internal.DirectionDown:
		olc.moveSelection(1)
	}
}

// moveSelection moves focus to the next visible item in direction,
// wrapping around. Focus stays put when nothing else is visible.
func (olc *optionsListController) moveSelection(direction int) {
	n := len(olc.Items)
	if n == 0 {
		return
	}

	start := olc.SelectedIndex
	i := start
	for range n {
		i = (i + direction + n) % n
		if olc.Items[i].IsVisible() {
			olc.SelectedIndex = i
			olc.markSelected()
			olc.scrollTo(i)
			return
		}
	}
}

func (olc *optionsListController) markSelected() {
	for i := range olc.Items {
		olc.Items[i].Item.Selected = i == olc.SelectedIndex
	}
}

func (olc *optionsListController) cycleOption(direction int) {
	item := olc.focused()
	if item == nil || len(item.Options) == 0 {
		return
	}
	n := len(item.Options)
	item.SelectedOption = (item.SelectedOption + direction + n) % n
	if item.OnUpdate != nil {
		item.OnUpdate(item)
	}
}

func (olc *optionsListController) scrollTo(index int) {
	if olc.MaxVisibleItems <= 0 {
		return
	}
	if index < olc.VisibleStartIndex {
		olc.VisibleStartIndex = index
	} else if index >= olc.VisibleStartIndex+olc.MaxVisibleItems {
		olc.VisibleStartIndex = index - olc.MaxVisibleItems + 1
	}
}

const (
	listItemHeight  int32 = 44
	listItemSpacing int32 = 6
)

func (olc *optionsListController) render(renderer *sdl.Renderer, window *internal.Window, title string) {
	theme := internal.GetTheme()

	y := renderTitle(renderer, title, olc.Settings.TitleIcon)
	if olc.Settings.Subtitle != "" {
		font := internal.Fonts.SmallFont
		maxWidth := window.GetWidth() - screenMargins.Left - screenMargins.Right
		y += internal.RenderMultilineText(renderer, olc.Settings.Subtitle, font, maxWidth, screenMargins.Left, y, theme.HintColor, constants.TextAlignLeft)
		y += 12
	}

	footerTop := window.GetHeight() - screenMargins.Bottom - 3*int32(internal.Fonts.SmallFont.Height())
	olc.MaxVisibleItems = max(1, int((footerTop-y)/(listItemHeight+listItemSpacing)))
	olc.scrollTo(olc.SelectedIndex)

	width := window.GetWidth() - screenMargins.Left - screenMargins.Right
	shown := 0
	for i := olc.VisibleStartIndex; i < len(olc.Items) && shown < olc.MaxVisibleItems; i++ {
		item := &olc.Items[i]
		if !item.IsVisible() {
			continue
		}
		olc.renderItem(renderer, item, screenMargins.Left, y, width)
		y += listItemHeight + listItemSpacing
		shown++
	}

	renderStatus(renderer, window, olc.Settings.Status, olc.Settings.StatusIsError)
	renderFooter(renderer, window, olc.Settings.FooterHelp)
}

func (olc *optionsListController) renderItem(renderer *sdl.Renderer, item *ItemWithOptions, x, y, width int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	rect := sdl.Rect{X: x, Y: y, W: width, H: listItemHeight}
	textY := y + (listItemHeight-int32(font.Height()))/2

	textColor := theme.TextColor
	if item.Item.Selected {
		if item.Type == OptionTypeClickable {
			internal.FillRect(renderer, rect, theme.HighlightColor)
			textColor = theme.HighlightedTextColor
		} else {
			internal.StrokeRect(renderer, rect, 2, theme.AccentColor)
		}
	}

	labelX := x + 12
	if item.Item.Icon != "" {
		iconSize := listItemHeight - 16
		internal.RenderIcon(renderer, item.Item.Icon, labelX, y+8, iconSize, textColor)
		labelX += iconSize + 10
	}
	labelWidth := internal.RenderText(renderer, font, item.Item.Text, labelX, textY, textColor, constants.TextAlignLeft)

	right := x + width - 12
	switch item.Type {
	case OptionTypeStandard:
		value := item.displayValue()
		if item.Item.Selected && len(item.Options) > 1 {
			value = fmt.Sprintf("‹ %s ›", value)
		}
		internal.RenderText(renderer, font, value, right, textY, theme.HintColor, constants.TextAlignRight)

	case OptionTypeText:
		boxX := labelX + labelWidth + 24
		boxW := right - boxX
		if boxW <= 0 {
			return
		}
		text, _ := item.field.Display()
		shown := truncateLeft(text, boxW, func(s string) int32 { return internal.TextWidth(font, s) })
		internal.RenderText(renderer, font, shown, right, textY, theme.TextColor, constants.TextAlignRight)

		if item.Item.Selected && (time.Now().UnixMilli()/500)%2 == 0 {
			tail := []rune(text)[len([]rune(item.field.BeforeCursor())):]
			cx := right - internal.TextWidth(font, string(tail))
			if cx >= boxX {
				internal.FillRect(renderer, sdl.Rect{X: cx, Y: textY, W: 2, H: int32(font.Height())}, theme.AccentColor)
			}
		}
	}
}

// truncateLeft keeps the end of text, which for paths is the part that
// matters, prefixing an ellipsis when text is too wide.
func truncateLeft(text string, maxWidth int32, measure func(string) int32) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[1:]
		candidate := "…" + string(runes)
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
