package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// Init starts SDL, opens the window and loads the theme font.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}
	if constants.IsDevMode() {
		winOpts.Borderless = false
	}

	var err error
	window, err = initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	sdl.StopTextInput()
	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeIconTextures()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
