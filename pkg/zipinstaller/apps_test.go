package zipinstaller

import (
	"archive/zip"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/installer"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

func installTool(t *testing.T) (string, wizard.Config) {
	t.Helper()

	archive := filepath.Join(t.TempDir(), "Tool.zip")
	f, err := os.Create(archive)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	fw, err := w.Create("bin/tool")
	require.NoError(t, err)
	_, err = fw.Write([]byte("binary"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	cfg := wizard.Config{ArchivePath: archive, AppName: "Tool", InstallPath: t.TempDir()}
	dir, err := installer.Install(t.Context(), cfg, nil)
	require.NoError(t, err)
	return dir, cfg
}

func TestRecordInstallThenUninstall(t *testing.T) {
	confirm, calls := answers(t, false, true)
	a, _ := newTestApp(t, confirm, false)
	a.appListPath = filepath.Join(t.TempDir(), settings.AppListFilename)

	dir, cfg := installTool(t)
	require.NoError(t, a.recordInstall(dir, cfg))

	apps, err := a.installedApps()
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Tool", apps[0].Name)
	assert.Equal(t, dir, apps[0].Dir)

	assert.ErrorIs(t, a.uninstall(apps[0]), ErrCancelled)
	_, err = os.Stat(filepath.Join(dir, "bin", "tool"))
	require.NoError(t, err, "declining keeps the files")

	require.NoError(t, a.uninstall(apps[0]))
	_, err = os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	apps, err = a.installedApps()
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Equal(t, 2, *calls)
}

func TestUninstallKeepsDirectoryWithForeignFiles(t *testing.T) {
	confirm, _ := answers(t, true)
	a, _ := newTestApp(t, confirm, false)
	a.appListPath = filepath.Join(t.TempDir(), settings.AppListFilename)

	dir, cfg := installTool(t)
	require.NoError(t, a.recordInstall(dir, cfg))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "save.dat"), nil, 0o644))

	apps, err := a.installedApps()
	require.NoError(t, err)
	require.NoError(t, a.uninstall(apps[0]))

	_, err = os.Stat(filepath.Join(dir, "save.dat"))
	require.NoError(t, err)
	apps, err = a.installedApps()
	require.NoError(t, err)
	assert.Empty(t, apps, "the app leaves the list anyway")
}

func TestAppListDisabledWithoutPath(t *testing.T) {
	confirm, _ := answers(t)
	a, _ := newTestApp(t, confirm, false)

	dir, cfg := installTool(t)
	require.NoError(t, a.recordInstall(dir, cfg))
	apps, err := a.installedApps()
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestAppListPathFollowsSettings(t *testing.T) {
	settingsPath := filepath.Join(t.TempDir(), settings.Filename)
	a := NewApp(AppOptions{
		Settings:     settings.Default(),
		SettingsPath: settingsPath,
		Localizer:    testLocalizer(t),
		Logger:       slog.New(slog.DiscardHandler),
	})
	assert.Equal(t, settings.AppListPath(settingsPath), a.appListPath)
}

func TestCheckOptionsWarnsOnceAboutNonEmptyTarget(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("unix paths")
	}
	confirm, _ := answers(t)
	a, _ := newTestApp(t, confirm, false)

	cfg := wizard.Config{AppName: "Tool", InstallPath: t.TempDir()}
	require.NoError(t, os.MkdirAll(cfg.TargetDir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.TargetDir(), "old"), nil, 0o644))

	warned := ""
	status, isError, focus := a.checkOptions(cfg, &warned)
	assert.Contains(t, status, cfg.TargetDir())
	assert.False(t, isError)
	assert.Equal(t, optionInstallItem, focus)

	status, _, _ = a.checkOptions(cfg, &warned)
	assert.Empty(t, status, "the second Install goes ahead")

	fresh := cfg
	fresh.AppName = "Fresh"
	status, _, _ = a.checkOptions(fresh, &warned)
	assert.Empty(t, status)

	blank := cfg
	blank.AppName = " "
	status, isError, focus = a.checkOptions(blank, &warned)
	assert.NotEmpty(t, status)
	assert.True(t, isError)
	assert.Equal(t, optionNameItem, focus)

	relative := cfg
	relative.InstallPath = "apps"
	_, isError, focus = a.checkOptions(relative, &warned)
	assert.True(t, isError)
	assert.Equal(t, optionPathItem, focus)
}
