package zipinstaller

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/guard"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/installer"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// recordInstall adds a finished install to the app list.
func (a *App) recordInstall(dir string, cfg wizard.Config) error {
	if a.appListPath == "" {
		return nil
	}
	list, err := settings.LoadAppList(a.appListPath)
	if err != nil {
		return err
	}

	name := cfg.AppName
	if name == "" {
		name = wizard.AppNameFromArchive(cfg.ArchivePath)
	}
	list.Add(settings.InstalledApp{
		Name:        name,
		Dir:         dir,
		Archive:     cfg.ArchivePath,
		InstalledAt: time.Now().UTC().Truncate(time.Second),
	})
	return settings.SaveAppList(a.appListPath, list)
}

// installedApps returns the recorded installs, none when the list is
// disabled.
func (a *App) installedApps() ([]settings.InstalledApp, error) {
	if a.appListPath == "" {
		return nil, nil
	}
	list, err := settings.LoadAppList(a.appListPath)
	return list.Apps, err
}

// uninstall asks before removing app. It returns ErrCancelled when the
// user declines. The entry leaves the list even when files the installer
// did not write keep the directory alive.
func (a *App) uninstall(app settings.InstalledApp) error {
	prompt := guard.Prompt{
		Title:   a.loc.TData("UninstallTitle", map[string]any{"Name": app.Name}),
		Message: a.loc.TData("UninstallMessage", map[string]any{"Path": app.Dir}),
		Accept:  a.loc.T("UninstallAccept"),
		Reject:  a.loc.T("UninstallReject"),
	}
	if err := a.confirmer.Confirm(a.ctx, prompt); err != nil {
		return ErrCancelled
	}

	_, err := installer.Uninstall(app.Dir)
	switch {
	case err == nil:
		a.logger.Info("Uninstalled", "app", app.Name, "dir", app.Dir)
	case errors.Is(err, installer.ErrDirNotEmpty):
		a.logger.Warn("Uninstalled, directory kept", "app", app.Name, "dir", app.Dir)
	default:
		return err
	}

	if a.appListPath == "" {
		return nil
	}
	list, lerr := settings.LoadAppList(a.appListPath)
	if lerr != nil {
		return lerr
	}
	list.Remove(app.Dir)
	return settings.SaveAppList(a.appListPath, list)
}

// installedAppsScreen lists the recorded installs until Back. Choosing one
// uninstalls it.
func (a *App) installedAppsScreen() error {
	status := ""
	statusIsError := false

	for {
		apps, err := a.installedApps()
		if err != nil {
			status, statusIsError = err.Error(), true
		}
		if len(apps) == 0 && status == "" {
			status = a.loc.T("InstalledAppsEmpty")
		}

		items := make([]ItemWithOptions, 0, len(apps))
		for i, app := range apps {
			items = append(items, ItemWithOptions{
				Item: MenuItem{Text: app.Name, Icon: constants.IconArchive, Metadata: i},
				Type: OptionTypeClickable,
			})
		}

		res, err := OptionsList(a.loc.T("InstalledAppsTitle"), OptionListSettings{
			TitleIcon:     constants.IconArchive,
			Subtitle:      a.loc.T("InstalledAppsHint"),
			FooterHelp:    a.loc.T("HelpNavigate"),
			Status:        status,
			StatusIsError: statusIsError,
		}, items)
		if IsCancelled(err) {
			return nil
		}
		if err != nil {
			return err
		}

		app := apps[res.Items[res.Selected].Value().(int)]
		status, statusIsError = "", false
		switch err := a.uninstall(app); {
		case IsCancelled(err):
		case err != nil:
			a.logger.Error("Uninstall failed", "app", app.Name, "error", err)
			status = a.loc.TData("UninstallFailed", map[string]any{"Error": err.Error()})
			statusIsError = true
		default:
			status = a.loc.TData("UninstallDone", map[string]any{"Name": app.Name})
		}
	}
}
