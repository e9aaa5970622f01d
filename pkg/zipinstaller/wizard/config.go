// Package wizard holds the state the installer wizard accumulates across its
// screens and the single-writer store that owns it.
package wizard

import (
	"path/filepath"
	"strings"
)

// Config is the installation the user is putting together.
// Screens overwrite individual fields as the user progresses.
type Config struct {
	ArchivePath             string `toml:"archive_path"`
	AppName                 string `toml:"app_name"`
	InstallPath             string `toml:"install_path"`
	CurrentUserOnly         bool   `toml:"current_user_only"`
	CreateDesktopShortcut   bool   `toml:"create_desktop_shortcut"`
	CreateRegistryKey       bool   `toml:"create_registry_key"`
	CreateStartMenuShortcut bool   `toml:"create_start_menu_shortcut"`
}

// Field names one Config field.
type Field int

const (
	FieldArchivePath Field = iota
	FieldAppName
	FieldInstallPath
	FieldCurrentUserOnly
	FieldCreateDesktopShortcut
	FieldCreateRegistryKey
	FieldCreateStartMenuShortcut
)

func (f Field) String() string {
	switch f {
	case FieldArchivePath:
		return "archive_path"
	case FieldAppName:
		return "app_name"
	case FieldInstallPath:
		return "install_path"
	case FieldCurrentUserOnly:
		return "current_user_only"
	case FieldCreateDesktopShortcut:
		return "create_desktop_shortcut"
	case FieldCreateRegistryKey:
		return "create_registry_key"
	case FieldCreateStartMenuShortcut:
		return "create_start_menu_shortcut"
	default:
		return "unknown"
	}
}

// copyField copies field f from src into dst.
func copyField(dst, src *Config, f Field) {
	switch f {
	case FieldArchivePath:
		dst.ArchivePath = src.ArchivePath
	case FieldAppName:
		dst.AppName = src.AppName
	case FieldInstallPath:
		dst.InstallPath = src.InstallPath
	case FieldCurrentUserOnly:
		dst.CurrentUserOnly = src.CurrentUserOnly
	case FieldCreateDesktopShortcut:
		dst.CreateDesktopShortcut = src.CreateDesktopShortcut
	case FieldCreateRegistryKey:
		dst.CreateRegistryKey = src.CreateRegistryKey
	case FieldCreateStartMenuShortcut:
		dst.CreateStartMenuShortcut = src.CreateStartMenuShortcut
	}
}

// TargetDir is where the archive gets extracted: the install path joined
// with the application name. The app name falls back to the archive's base
// name without extension.
func (c Config) TargetDir() string {
	name := c.AppName
	if name == "" {
		name = AppNameFromArchive(c.ArchivePath)
	}
	if name == "" {
		return c.InstallPath
	}
	return filepath.Join(c.InstallPath, name)
}

// AppNameFromArchive derives a display name from an archive path:
// "C:\Downloads\Tool-1.2.zip" becomes "Tool-1.2".
func AppNameFromArchive(archivePath string) string {
	// Archive paths may come from Windows users on any platform.
	base := archivePath
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
