// Package installer unpacks a zip archive according to a wizard Config.
package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// ManifestName is written into every install directory.
const ManifestName = "install.toml"

var (
	ErrNoArchive     = errors.New("installer: no archive selected")
	ErrEmptyArchive  = errors.New("installer: archive is empty")
	ErrUnsafeEntry   = errors.New("installer: archive entry escapes install directory")
	ErrInvalidFormat = errors.New("installer: invalid path format")
)

// Entry is one file or directory inside an archive.
type Entry struct {
	Name string
	Size uint64
	Dir  bool
}

// Progress is reported once per extracted entry.
type Progress struct {
	Done    int
	Total   int
	Current string
}

// Fraction returns Done/Total in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

// Manifest records what an installation did.
type Manifest struct {
	App                     string    `toml:"app"`
	Archive                 string    `toml:"archive"`
	InstalledAt             time.Time `toml:"installed_at"`
	CurrentUserOnly         bool      `toml:"current_user_only"`
	CreateDesktopShortcut   bool      `toml:"create_desktop_shortcut"`
	CreateRegistryKey       bool      `toml:"create_registry_key"`
	CreateStartMenuShortcut bool      `toml:"create_start_menu_shortcut"`
	Files                   []string  `toml:"files"`
}

// List returns the entries of the archive at path.
func List(path string) ([]Entry, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("installer: open %s: %w", path, err)
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, Entry{
			Name: f.Name,
			Size: f.UncompressedSize64,
			Dir:  f.FileInfo().IsDir(),
		})
	}
	return entries, nil
}

// ValidateArchive checks that path is a readable, non-empty zip archive.
func ValidateArchive(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoArchive
	}
	entries, err := List(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrEmptyArchive
	}
	return nil
}

// ValidateInstallDir checks that path is well formed for the platform and
// either is an existing directory or can be created inside one.
func ValidateInstallDir(path string) error {
	if !validPathFormat(path, runtime.GOOS) {
		return ErrInvalidFormat
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		parent, perr := os.Stat(filepath.Dir(path))
		if perr != nil || !parent.IsDir() {
			return fmt.Errorf("installer: directory does not exist: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("installer: stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("installer: %s exists but is not a directory", path)
	}
	return nil
}

// validPathFormat requires a drive-letter path ("C:\...") on Windows and an
// absolute path elsewhere.
func validPathFormat(path, goos string) bool {
	if goos == "windows" {
		return len(path) >= 3 &&
			(path[0] >= 'a' && path[0] <= 'z' || path[0] >= 'A' && path[0] <= 'Z') &&
			path[1] == ':' && path[2] == '\\'
	}
	return strings.HasPrefix(path, "/")
}

// Install extracts cfg.ArchivePath into cfg.TargetDir(), calling progress
// after every entry, and writes the install manifest. It returns the target
// directory.
func Install(ctx context.Context, cfg wizard.Config, progress func(Progress)) (string, error) {
	if cfg.ArchivePath == "" {
		return "", ErrNoArchive
	}
	target := cfg.TargetDir()
	if target == "" {
		return "", fmt.Errorf("installer: no install path")
	}

	r, err := zip.OpenReader(cfg.ArchivePath)
	if err != nil {
		return "", fmt.Errorf("installer: open %s: %w", cfg.ArchivePath, err)
	}
	defer r.Close()

	if len(r.File) == 0 {
		return "", ErrEmptyArchive
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("installer: create %s: %w", target, err)
	}

	files := make([]string, 0, len(r.File))
	for i, f := range r.File {
		if err := ctx.Err(); err != nil {
			return target, err
		}
		if err := extract(f, target); err != nil {
			return target, err
		}
		files = append(files, f.Name)
		if progress != nil {
			progress(Progress{Done: i + 1, Total: len(r.File), Current: f.Name})
		}
	}

	if err := writeManifest(target, cfg, files); err != nil {
		return target, err
	}
	return target, nil
}

func extract(f *zip.File, target string) error {
	name := filepath.FromSlash(f.Name)
	if !filepath.IsLocal(name) {
		return fmt.Errorf("%w: %s", ErrUnsafeEntry, f.Name)
	}
	dst := filepath.Join(target, name)

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dst, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("installer: create %s: %w", filepath.Dir(dst), err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("installer: read %s: %w", f.Name, err)
	}
	defer src.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("installer: create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf("installer: write %s: %w", dst, err)
	}
	return out.Close()
}

func writeManifest(target string, cfg wizard.Config, files []string) error {
	m := Manifest{
		App:                     filepath.Base(target),
		Archive:                 cfg.ArchivePath,
		InstalledAt:             time.Now().UTC().Truncate(time.Second),
		CurrentUserOnly:         cfg.CurrentUserOnly,
		CreateDesktopShortcut:   cfg.CreateDesktopShortcut,
		CreateRegistryKey:       cfg.CreateRegistryKey,
		CreateStartMenuShortcut: cfg.CreateStartMenuShortcut,
		Files:                   files,
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("installer: encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, ManifestName), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("installer: write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest of an install directory.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(filepath.Join(dir, ManifestName), &m); err != nil {
		return Manifest{}, fmt.Errorf("installer: read manifest: %w", err)
	}
	return m, nil
}
