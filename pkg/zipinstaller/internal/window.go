package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64

	minimizeOnClose atomic.Bool
	minimized       atomic.Bool
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := windowSize()

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.minimizeOnClose.Store(winOpts.MinimizeOnClose)
	win.loadBackground()

	return win, nil
}

// windowSize returns the default size, or WINDOW_WIDTH/WINDOW_HEIGHT in
// dev mode.
func windowSize() (int32, int32) {
	if !constants.IsDevMode() {
		return constants.DefaultWindowWidth, constants.DefaultWindowHeight
	}
	return envDimension(constants.WindowWidthEnvVar, constants.DevWindowWidth),
		envDimension(constants.WindowHeightEnvVar, constants.DevWindowHeight)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground() {
	path := os.Getenv(constants.BackgroundPathEnvVar)
	if path == "" {
		path = GetTheme().BackgroundImagePath
	}
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
	window.DisplayBackground = true
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	if w, _ := window.Renderer.GetLogicalSize(); w > 0 {
		return w
	}
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	if _, h := window.Renderer.GetLogicalSize(); h > 0 {
		return h
	}
	_, h := window.Window.GetSize()
	return h
}

// Clear fills the frame with the theme background.
func (window *Window) Clear() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()
	window.RenderBackground()
}

func (window *Window) RenderBackground() {
	if window.DisplayBackground && window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// SetMinimizeOnClose changes what closing the window does.
func (w *Window) SetMinimizeOnClose(v bool) {
	w.minimizeOnClose.Store(v)
}

// HandleClose reacts to the user closing the window. It returns true when
// the application should quit and false when the window was minimized.
func (w *Window) HandleClose() bool {
	if !w.minimizeOnClose.Load() {
		return true
	}
	w.Window.Minimize()
	w.minimized.Store(true)
	GetInternalLogger().Debug("Window minimized on close")
	return false
}

// Minimized reports whether the window was minimized on close and not yet
// restored.
func (w *Window) Minimized() bool {
	return w.minimized.Load()
}

func (w *Window) restored() {
	w.minimized.Store(false)
}

func ResetBackground() {
	if window.Background != nil {
		window.Background.Destroy()
		window.Background = nil
	}
	window.DisplayBackground = false
	window.loadBackground()
}
