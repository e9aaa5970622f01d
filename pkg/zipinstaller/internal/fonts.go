package internal

import (
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
)

// FontSizes are the point sizes of the three UI fonts.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{Large: 30, Medium: 22, Small: 16}

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	Path       string
}

// Fonts holds the fonts opened by Init.
var Fonts fontsManager

func initFonts(themePath string, sizes FontSizes) error {
	candidates := fontCandidates(themePath, os.Getenv(constants.FontPathEnvVar), runtime.GOOS)

	var lastErr error
	for _, path := range candidates {
		large, err := ttf.OpenFont(path, sizes.Large)
		if err != nil {
			lastErr = err
			continue
		}
		medium, err := ttf.OpenFont(path, sizes.Medium)
		if err != nil {
			large.Close()
			lastErr = err
			continue
		}
		small, err := ttf.OpenFont(path, sizes.Small)
		if err != nil {
			large.Close()
			medium.Close()
			lastErr = err
			continue
		}

		Fonts = fontsManager{LargeFont: large, MediumFont: medium, SmallFont: small, Path: path}
		GetInternalLogger().Debug("Loaded font", "path", path)
		return nil
	}

	return fmt.Errorf("load font: no usable font in %v: %w", candidates, lastErr)
}

// fontCandidates lists font files to try, most specific first. FONT_PATH
// overrides the settings file.
func fontCandidates(themePath, envPath, goos string) []string {
	var out []string
	for _, p := range []string{envPath, themePath} {
		if p != "" {
			out = append(out, p)
		}
	}

	switch goos {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		out = append(out,
			windir+`\Fonts\msyh.ttc`,
			windir+`\Fonts\segoeui.ttf`,
			windir+`\Fonts\arial.ttf`,
		)
	case "darwin":
		out = append(out,
			"/System/Library/Fonts/PingFang.ttc",
			"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
			"/Library/Fonts/Arial.ttf",
		)
	default:
		out = append(out,
			"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
		)
	}
	return out
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
