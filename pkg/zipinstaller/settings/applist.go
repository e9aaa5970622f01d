package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// AppListFilename is kept next to Settings.toml.
const AppListFilename = "AppList.toml"

// InstalledApp is one installation made by the wizard.
type InstalledApp struct {
	Name        string    `toml:"name"`
	Dir         string    `toml:"dir"`
	Archive     string    `toml:"archive"`
	InstalledAt time.Time `toml:"installed_at"`
}

// AppList is every installation that has not been uninstalled, oldest
// first.
type AppList struct {
	Apps []InstalledApp `toml:"apps"`
}

// AppListPath returns the app list file that belongs to the settings file
// at settingsPath.
func AppListPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), AppListFilename)
}

// LoadAppList reads the app list at path. A missing file is an empty list.
func LoadAppList(path string) (AppList, error) {
	var l AppList
	_, err := toml.DecodeFile(path, &l)
	if errors.Is(err, fs.ErrNotExist) {
		return AppList{}, nil
	}
	if err != nil {
		return AppList{}, fmt.Errorf("settings: decode %s: %w", path, err)
	}
	return l, nil
}

// SaveAppList writes l to path atomically.
func SaveAppList(path string, l AppList) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(l); err != nil {
		return fmt.Errorf("settings: encode app list: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

// Add records app. A reinstall into the same directory replaces the old
// entry.
func (l *AppList) Add(app InstalledApp) {
	l.Remove(app.Dir)
	l.Apps = append(l.Apps, app)
}

// Remove drops the entry installed into dir and reports whether there was
// one.
func (l *AppList) Remove(dir string) bool {
	dir = filepath.Clean(dir)
	for i, a := range l.Apps {
		if filepath.Clean(a.Dir) == dir {
			l.Apps = append(l.Apps[:i], l.Apps[i+1:]...)
			return true
		}
	}
	return false
}
