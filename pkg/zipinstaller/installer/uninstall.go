package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrDirNotEmpty reports a directory that holds files the installer did not
// put there.
var ErrDirNotEmpty = errors.New("installer: directory is not empty")

// CheckDirEmpty returns ErrDirNotEmpty when path is a directory with
// entries. A missing path counts as empty.
func CheckDirEmpty(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("installer: open %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("installer: read %s: %w", path, err)
	}
	return fmt.Errorf("%w: %s", ErrDirNotEmpty, path)
}

// Uninstall removes what the manifest in dir lists, the manifest itself and
// then dir. Files added after the install are left alone; dir is then kept
// and ErrDirNotEmpty returned.
func Uninstall(dir string) (Manifest, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return Manifest{}, err
	}

	var paths []string
	for _, name := range m.Files {
		rel := filepath.Clean(filepath.FromSlash(strings.TrimSuffix(name, "/")))
		if !filepath.IsLocal(rel) {
			return m, fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
		}
		for p := rel; p != "."; p = filepath.Dir(p) {
			paths = append(paths, p)
		}
	}

	// Deepest first so directories are empty by the time they are reached.
	slices.SortFunc(paths, func(a, b string) int {
		sep := string(filepath.Separator)
		if d := strings.Count(b, sep) - strings.Count(a, sep); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	paths = slices.Compact(paths)

	for _, p := range paths {
		err := os.Remove(filepath.Join(dir, p))
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if info, serr := os.Stat(filepath.Join(dir, p)); serr == nil && info.IsDir() {
			// Holds files of its own.
			continue
		}
		return m, fmt.Errorf("installer: remove %s: %w", p, err)
	}

	if err := os.Remove(filepath.Join(dir, ManifestName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return m, fmt.Errorf("installer: remove manifest: %w", err)
	}
	if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if CheckDirEmpty(dir) != nil {
			return m, fmt.Errorf("%w: %s", ErrDirNotEmpty, dir)
		}
		return m, fmt.Errorf("installer: remove %s: %w", dir, err)
	}
	return m, nil
}
