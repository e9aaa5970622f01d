// Package settings persists the installer preferences in Settings.toml.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// Filename is the settings file name inside the config directory.
const Filename = "Settings.toml"

// Theme values.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Settings are the user preferences of the installer.
type Settings struct {
	Language              string       `toml:"language"`
	Theme                 string       `toml:"theme"`
	MinimizeToTrayOnClose bool         `toml:"minimize_to_tray_on_close"`
	Color                 string       `toml:"color"`
	Debug                 bool         `toml:"debug"`
	LogLevel              string       `toml:"log_level"`
	FontPath              string       `toml:"font_path"`
	Installation          Installation `toml:"installation"`
}

// Installation holds the defaults for each install scope.
type Installation struct {
	CurrentUserOnly bool            `toml:"current_user_only"`
	AllUsers        InstallSettings `toml:"all_users"`
	CurrentUser     InstallSettings `toml:"current_user"`
}

// InstallSettings are the per-scope install defaults.
type InstallSettings struct {
	CreateDesktopShortcut   bool   `toml:"create_desktop_shortcut"`
	CreateRegistryKey       bool   `toml:"create_registry_key"`
	CreateStartMenuShortcut bool   `toml:"create_start_menu_shortcut"`
	InstallPath             string `toml:"install_path"`
}

// Default returns the settings written on first run.
func Default() Settings {
	s := Settings{
		Language: "en",
		Theme:    ThemeSystem,
		LogLevel: "info",
		Installation: Installation{
			AllUsers: InstallSettings{
				CreateRegistryKey:       true,
				CreateStartMenuShortcut: true,
			},
			CurrentUser: InstallSettings{
				CreateRegistryKey:       true,
				CreateStartMenuShortcut: true,
			},
		},
	}
	s.FillInstallPaths()
	return s
}

// DefaultPath returns <UserConfigDir>/zipinstaller/Settings.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: user config dir: %w", err)
	}
	return filepath.Join(dir, "zipinstaller", Filename), nil
}

// Load reads the settings at path. A missing file is created with defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	_, err := toml.DecodeFile(path, &s)
	if errors.Is(err, fs.ErrNotExist) {
		s = Default()
		if err := Save(path, s); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("settings: decode %s: %w", path, err)
	}

	s.FillInstallPaths()
	return s, nil
}

// Save writes s to path atomically.
func Save(path string, s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

// FillInstallPaths sets platform defaults for empty install paths.
func (s *Settings) FillInstallPaths() {
	if s.Installation.AllUsers.InstallPath == "" {
		s.Installation.AllUsers.InstallPath = defaultAllUsersPath()
	}
	if s.Installation.CurrentUser.InstallPath == "" {
		s.Installation.CurrentUser.InstallPath = defaultCurrentUserPath()
	}
}

// Scope returns the install defaults for the selected scope.
func (s Settings) Scope(currentUserOnly bool) InstallSettings {
	if currentUserOnly {
		return s.Installation.CurrentUser
	}
	return s.Installation.AllUsers
}

// WizardDefaults converts the install preferences into the values the wizard
// store resets to.
func (s Settings) WizardDefaults() wizard.Config {
	scope := s.Scope(s.Installation.CurrentUserOnly)
	return wizard.Config{
		InstallPath:             scope.InstallPath,
		CurrentUserOnly:         s.Installation.CurrentUserOnly,
		CreateDesktopShortcut:   scope.CreateDesktopShortcut,
		CreateRegistryKey:       scope.CreateRegistryKey,
		CreateStartMenuShortcut: scope.CreateStartMenuShortcut,
	}
}

// LanguageTag parses the language setting, falling back to English.
func (s Settings) LanguageTag() language.Tag {
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// ResolvedTheme maps "system" onto light or dark. The desktop has no
// reliable cross-platform dark-mode query, so system follows the
// ZIPINSTALLER_THEME environment variable and defaults to dark.
func (s Settings) ResolvedTheme() string {
	theme := strings.ToLower(s.Theme)
	if theme == ThemeLight || theme == ThemeDark {
		return theme
	}
	if env := strings.ToLower(os.Getenv(constants.ThemeEnvVar)); env == ThemeLight || env == ThemeDark {
		return env
	}
	return ThemeDark
}

func defaultAllUsersPath() string {
	if runtime.GOOS == "windows" {
		return systemDrive() + `\Program Files`
	}
	return "/opt"
}

func defaultCurrentUserPath() string {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return local + `\Programs`
		}
		return systemDrive() + `\Users\` + os.Getenv("USERNAME") + `\AppData\Local\Programs`
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "programs")
	}
	return filepath.Join(home, ".local", "share", "programs")
}

func systemDrive() string {
	if windir := os.Getenv("windir"); len(windir) >= 2 {
		return windir[:2]
	}
	return "C:"
}
