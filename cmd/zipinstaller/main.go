// Command zipinstaller is a small wizard that installs the contents of a zip
// archive into a directory of the user's choosing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/installer"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/locale"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

type flags struct {
	settingsPath string
	logPath      string
	logLevel     string
	archive      string
	url          string
	list         bool
	skipMenu     bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("zipinstaller", flag.ContinueOnError)
	fs.StringVar(&f.settingsPath, "settings", "", "path to Settings.toml")
	fs.StringVar(&f.logPath, "log-path", "", "write logs to this file as well as stdout")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&f.archive, "archive", "", "zip archive to install, skips archive selection")
	fs.StringVar(&f.url, "url", "", "download the zip archive to install from this URL")
	fs.BoolVar(&f.list, "list", false, "print the entries of -archive and exit")
	fs.BoolVar(&f.skipMenu, "skip-menu", false, "start at archive selection instead of the menu")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.archive != "" && f.url != "" {
		return f, errors.New("-archive and -url are mutually exclusive")
	}
	if f.list && f.archive == "" {
		return f, errors.New("-list requires -archive")
	}
	return f, nil
}

// settingsPath resolves the settings file: the flag, then the environment,
// then the per-user config directory.
func settingsPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(constants.SettingsPathEnvVar); env != "" {
		return env, nil
	}
	return settings.DefaultPath()
}

// startRoute is where the wizard opens: straight on the options screen
// when an archive is already known.
func startRoute(archive string) router.Route {
	if archive != "" {
		return router.RouteInstallationOption
	}
	return router.RouteStart
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(f); err != nil {
		fmt.Fprintln(os.Stderr, "zipinstaller:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode tells a broken display or font setup (3) apart from install and
// settings failures (1).
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case zipinstaller.IsInfrastructureError(err):
		return 3
	default:
		return 1
	}
}

func run(f flags) error {
	if f.list {
		entries, err := installer.List(f.archive)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%10d  %s\n", e.Size, e.Name)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := settingsPath(f.settingsPath)
	if err != nil {
		return err
	}
	s, err := settings.Load(path)
	if err != nil {
		return err
	}

	if f.logPath != "" {
		zipinstaller.SetLogPath(f.logPath)
	}
	switch {
	case f.logLevel != "":
		zipinstaller.SetRawLogLevel(f.logLevel)
	case s.Debug || constants.IsDevMode():
		zipinstaller.SetRawLogLevel("debug")
	default:
		zipinstaller.SetRawLogLevel(s.LogLevel)
	}
	logger := zipinstaller.GetLogger()
	logger.Debug("Settings loaded", "path", path, "language", s.Language, "theme", s.Theme)

	loc, err := locale.New(s.Language)
	if err != nil {
		return err
	}

	archive := f.archive
	if f.url != "" {
		dir := filepath.Join(os.TempDir(), "zipinstaller")
		logger.Info("Downloading archive", "url", f.url, "dir", dir)
		archive, err = installer.Download(ctx, nil, f.url, dir)
		if err != nil {
			return err
		}
	}
	if archive != "" {
		if err := installer.ValidateArchive(archive); err != nil {
			return err
		}
	}

	if err := zipinstaller.Init(zipinstaller.Options{
		WindowTitle:     loc.T("WindowTitle"),
		Theme:           s.ResolvedTheme(),
		AccentColorHex:  s.Color,
		FontPath:        s.FontPath,
		Debug:           s.Debug,
		MinimizeOnClose: s.MinimizeToTrayOnClose,
	}); err != nil {
		return err
	}
	defer zipinstaller.Close()

	app := zipinstaller.NewApp(zipinstaller.AppOptions{
		Settings:     s,
		SettingsPath: path,
		Localizer:    loc,
		Logger:       logger,
		SkipMenu:     f.skipMenu,
	})
	if archive != "" {
		app.Store().SetArchivePath(archive)
	}

	return app.Run(ctx, startRoute(archive))
}
