// Package icons rasterises the installer's embedded SVG icons.
//
// Icons are single-colour Material-style glyphs drawn with fill
// "currentColor"; Render substitutes the requested colour before the SVG is
// parsed, so one asset serves every theme.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var assets embed.FS

type cacheKey struct {
	name  string
	size  int
	color color.NRGBA
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]*image.RGBA)
)

// Names lists the available icons.
func Names() []string {
	entries, err := assets.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw SVG of name with currentColor replaced by c.
func Source(name string, c color.NRGBA) ([]byte, error) {
	data, err := assets.ReadFile(path.Join("assets", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("icons: unknown icon %q", name)
	}
	return bytes.ReplaceAll(data, []byte("currentColor"), []byte(Hex(c))), nil
}

// Render rasterises icon name into a size x size image tinted with c.
// Results are cached; callers must not modify the returned image.
func Render(name string, size int, c color.NRGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	key := cacheKey{name: name, size: size, color: c}
	cacheMu.Lock()
	if img, ok := cache[key]; ok {
		cacheMu.Unlock()
		return img, nil
	}
	cacheMu.Unlock()

	src, err := Source(name, c)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(src), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	cacheMu.Lock()
	cache[key] = img
	cacheMu.Unlock()
	return img, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or rrggbb. ok is false for anything else.
func ParseHex(s string) (c color.NRGBA, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}
