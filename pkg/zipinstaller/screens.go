package zipinstaller

import (
	"context"
	"strings"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/installer"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/locale"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// screenExit maps the errors of a list to a step: Back returns to the
// previous screen, everything else ends the router.
func screenExit(err error) (any, error) {
	if IsCancelled(err) {
		return step{back: true}, nil
	}
	return nil, err
}

func (a *App) startScreen(any) (any, error) {
	items := []ItemWithOptions{
		{Item: MenuItem{Text: a.loc.T("StartInstall"), Icon: constants.IconArchive, Metadata: router.RouteInstallation}, Type: OptionTypeClickable},
		{Item: MenuItem{Text: a.loc.T("StartSettings"), Icon: constants.IconSettings, Metadata: router.RouteSettings}, Type: OptionTypeClickable},
		{Item: MenuItem{Text: a.loc.T("StartQuit"), Icon: constants.IconExit, Metadata: router.ScreenExit}, Type: OptionTypeClickable},
	}

	res, err := OptionsList(a.loc.T("StartTitle"), OptionListSettings{
		TitleIcon:  constants.IconArchive,
		FooterHelp: a.loc.T("HelpNavigate"),
	}, items)
	if err != nil {
		return screenExit(err)
	}

	to := res.Items[res.Selected].Value().(router.Route)
	if to == router.ScreenExit {
		return step{exit: true}, nil
	}
	return step{to: to}, nil
}

func (a *App) installationScreen(any) (any, error) {
	const (
		archiveItem = iota
		nextItem
	)

	archive := a.store.ArchivePath()
	status := ""
	selected := archiveItem

	for {
		items := []ItemWithOptions{
			archiveItem: {Item: MenuItem{Text: a.loc.T("InstallationArchive"), Icon: constants.IconFolder}, Type: OptionTypeText, Text: archive},
			nextItem:    {Item: MenuItem{Text: a.loc.T("InstallationNext"), Icon: constants.IconCheck}, Type: OptionTypeClickable},
		}

		res, err := OptionsList(a.loc.T("InstallationTitle"), OptionListSettings{
			TitleIcon:            constants.IconArchive,
			Subtitle:             a.loc.T("InstallationPrompt"),
			InitialSelectedIndex: selected,
			FooterHelp:           a.loc.T("HelpNavigate"),
			Status:               status,
			StatusIsError:        status != "",
		}, items)
		if err != nil {
			return screenExit(err)
		}

		archive = cleanPath(res.Items[archiveItem].Text)
		if err := installer.ValidateArchive(archive); err != nil {
			a.logger.Debug("Archive rejected", "path", archive, "error", err)
			status = a.loc.TData("InstallationInvalid", map[string]any{"Error": err.Error()})
			selected = archiveItem
			continue
		}

		a.store.SetArchivePath(archive)
		return step{to: router.RouteInstallationOption}, nil
	}
}

// cleanPath trims whitespace and the quotes a file manager adds when a path
// is pasted.
func cleanPath(p string) string {
	return strings.Trim(strings.TrimSpace(p), `"'`)
}

// Rows of the options screen.
const (
	optionNameItem = iota
	optionPathItem
	optionScopeItem
	optionDesktopItem
	optionStartMenuItem
	optionRegistryItem
	optionInstallItem
)

func (a *App) optionScreen(any) (any, error) {
	cfg := a.store.Snapshot()
	if cfg.AppName == "" {
		cfg.AppName = wizard.AppNameFromArchive(cfg.ArchivePath)
		a.store.Update(func(c *wizard.Config) { c.AppName = cfg.AppName })
	}

	subtitle := cfg.ArchivePath
	if entries, err := installer.List(cfg.ArchivePath); err == nil {
		subtitle += "\n" + a.loc.Plural("OptionEntries", len(entries))
	}

	status := ""
	statusIsError := false
	selected := optionInstallItem
	warnedFor := ""

	for {
		items := []ItemWithOptions{
			optionNameItem:      {Item: MenuItem{Text: a.loc.T("OptionAppName")}, Type: OptionTypeText, Text: cfg.AppName},
			optionPathItem:      {Item: MenuItem{Text: a.loc.T("OptionInstallPath"), Icon: constants.IconFolder}, Type: OptionTypeText, Text: cfg.InstallPath},
			optionScopeItem:     a.toggle("OptionCurrentUserOnly", cfg.CurrentUserOnly),
			optionDesktopItem:   a.toggle("OptionDesktopShortcut", cfg.CreateDesktopShortcut),
			optionStartMenuItem: a.toggle("OptionStartMenuShortcut", cfg.CreateStartMenuShortcut),
			optionRegistryItem:  a.toggle("OptionRegistryKey", cfg.CreateRegistryKey),
			optionInstallItem:   {Item: MenuItem{Text: a.loc.T("OptionInstall"), Icon: constants.IconCheck}, Type: OptionTypeClickable},
		}

		// Every edit goes to the store so a blocked leave shows it again.
		items[optionNameItem].OnUpdate = func(item *ItemWithOptions) {
			a.store.Update(func(c *wizard.Config) { c.AppName = item.Text })
		}
		items[optionPathItem].OnUpdate = func(item *ItemWithOptions) {
			a.store.Update(func(c *wizard.Config) { c.InstallPath = item.Text })
		}
		items[optionDesktopItem].OnUpdate = func(item *ItemWithOptions) {
			a.store.Update(func(c *wizard.Config) { c.CreateDesktopShortcut = item.Value().(bool) })
		}
		items[optionStartMenuItem].OnUpdate = func(item *ItemWithOptions) {
			a.store.Update(func(c *wizard.Config) { c.CreateStartMenuShortcut = item.Value().(bool) })
		}
		items[optionRegistryItem].OnUpdate = func(item *ItemWithOptions) {
			a.store.Update(func(c *wizard.Config) { c.CreateRegistryKey = item.Value().(bool) })
		}
		items[optionScopeItem].OnUpdate = func(item *ItemWithOptions) {
			currentUser := item.Value().(bool)
			scope := a.settings.Scope(currentUser)
			a.store.Update(func(c *wizard.Config) {
				c.CurrentUserOnly = currentUser
				c.InstallPath = scope.InstallPath
				c.CreateDesktopShortcut = scope.CreateDesktopShortcut
				c.CreateStartMenuShortcut = scope.CreateStartMenuShortcut
				c.CreateRegistryKey = scope.CreateRegistryKey
			})
			items[optionPathItem].SetText(scope.InstallPath)
			items[optionDesktopItem].SelectedOption = boolOption(scope.CreateDesktopShortcut)
			items[optionStartMenuItem].SelectedOption = boolOption(scope.CreateStartMenuShortcut)
			items[optionRegistryItem].SelectedOption = boolOption(scope.CreateRegistryKey)
		}

		_, err := OptionsList(a.loc.T("OptionTitle"), OptionListSettings{
			TitleIcon:            constants.IconSettings,
			Subtitle:             subtitle,
			InitialSelectedIndex: selected,
			FooterHelp:           a.loc.T("HelpNavigate"),
			Status:               status,
			StatusIsError:        statusIsError,
		}, items)
		if err != nil {
			return screenExit(err)
		}

		cfg = a.store.Snapshot()
		status, statusIsError, selected = a.checkOptions(cfg, &warnedFor)
		if status != "" {
			continue
		}

		return step{to: router.RouteInstallationProgress}, nil
	}
}

// checkOptions validates cfg before installing. It returns the status to
// show and the item to focus, or an empty status when the install can go
// ahead. A target directory that is not empty is reported once as a
// warning; pressing Install again for the same directory proceeds.
func (a *App) checkOptions(cfg wizard.Config, warnedFor *string) (status string, isError bool, focus int) {
	if strings.TrimSpace(cfg.AppName) == "" {
		return a.loc.T("OptionNameRequired"), true, optionNameItem
	}
	if err := installer.ValidateInstallDir(cfg.InstallPath); err != nil {
		return a.loc.TData("OptionInvalidPath", map[string]any{"Error": err.Error()}), true, optionPathItem
	}

	target := cfg.TargetDir()
	if err := installer.CheckDirEmpty(target); err != nil && *warnedFor != target {
		*warnedFor = target
		a.logger.Debug("Install target not empty", "target", target, "error", err)
		return a.loc.TData("OptionNotEmpty", map[string]any{"Path": target}), false, optionInstallItem
	}
	return "", false, optionInstallItem
}

func (a *App) toggle(id string, on bool) ItemWithOptions {
	return ItemWithOptions{
		Item: MenuItem{Text: a.loc.T(id)},
		Type: OptionTypeStandard,
		Options: []Option{
			{DisplayName: a.loc.T("Off"), Value: false},
			{DisplayName: a.loc.T("On"), Value: true},
		},
		SelectedOption: boolOption(on),
	}
}

func boolOption(on bool) int {
	if on {
		return 1
	}
	return 0
}

func (a *App) progressScreen(any) (any, error) {
	cfg := a.store.Snapshot()
	name := cfg.AppName
	if name == "" {
		name = wizard.AppNameFromArchive(cfg.ArchivePath)
	}

	a.logger.Info("Installing", "archive", cfg.ArchivePath, "target", cfg.TargetDir())

	res, err := ProgressView(a.ctx, a.loc.TData("ProgressTitle", map[string]any{"Name": name}), ProgressMessages{
		Done: func(path string) string {
			return a.loc.TData("ProgressDone", map[string]any{"Path": path})
		},
		Failed: func(err error) string {
			return a.loc.TData("ProgressFailed", map[string]any{"Error": err.Error()})
		},
		Continue: a.loc.T("ProgressContinue"),
		Help:     a.loc.T("HelpProgress"),
	}, func(ctx context.Context, report func(installer.Progress)) (string, error) {
		return installer.Install(ctx, cfg, report)
	})
	if err != nil {
		return nil, err
	}

	if res.Err != nil {
		a.logger.Error("Installation failed", "target", cfg.TargetDir(), "error", res.Err)
		return step{home: true}, nil
	}

	a.logger.Info("Installation finished", "target", res.Result)
	if err := a.recordInstall(res.Result, cfg); err != nil {
		a.logger.Error("Could not record installation", "target", res.Result, "error", err)
	}
	return step{home: true}, nil
}

func (a *App) settingsScreen(any) (any, error) {
	const (
		languageItem = iota
		themeItem
		minimizeItem
		appsItem
		saveItem
	)

	status := ""
	draft := a.settings

	for {
		languages := make([]Option, 0)
		selectedLanguage := 0
		for i, tag := range a.loc.Supported() {
			languages = append(languages, Option{DisplayName: locale.LanguageName(tag), Value: tag.String()})
			if tag == draft.LanguageTag() {
				selectedLanguage = i
			}
		}

		themes := []Option{
			{DisplayName: a.loc.T("ThemeSystem"), Value: settings.ThemeSystem},
			{DisplayName: a.loc.T("ThemeLight"), Value: settings.ThemeLight},
			{DisplayName: a.loc.T("ThemeDark"), Value: settings.ThemeDark},
		}
		selectedTheme := 0
		for i, o := range themes {
			if o.Value == draft.Theme {
				selectedTheme = i
			}
		}

		items := []ItemWithOptions{
			languageItem: {Item: MenuItem{Text: a.loc.T("SettingsLanguage")}, Type: OptionTypeStandard, Options: languages, SelectedOption: selectedLanguage},
			themeItem:    {Item: MenuItem{Text: a.loc.T("SettingsTheme")}, Type: OptionTypeStandard, Options: themes, SelectedOption: selectedTheme},
			minimizeItem: a.toggle("SettingsMinimizeOnClose", draft.MinimizeToTrayOnClose),
			appsItem:     {Item: MenuItem{Text: a.loc.T("SettingsInstalledApps"), Icon: constants.IconArchive}, Type: OptionTypeClickable},
			saveItem:     {Item: MenuItem{Text: a.loc.T("SettingsSave"), Icon: constants.IconCheck}, Type: OptionTypeClickable},
		}

		res, err := OptionsList(a.loc.T("SettingsTitle"), OptionListSettings{
			TitleIcon:            constants.IconSettings,
			InitialSelectedIndex: saveItem,
			FooterHelp:           a.loc.T("HelpNavigate"),
			Status:               status,
			StatusIsError:        status != "",
		}, items)
		if err != nil {
			return screenExit(err)
		}

		draft.Language = res.Items[languageItem].Value().(string)
		draft.Theme = res.Items[themeItem].Value().(string)
		draft.MinimizeToTrayOnClose = res.Items[minimizeItem].Value().(bool)

		if res.Selected == appsItem {
			if err := a.installedAppsScreen(); err != nil {
				return nil, err
			}
			status = ""
			continue
		}

		if err := a.applySettings(draft); err != nil {
			status = a.loc.TData("SettingsSaveFailed", map[string]any{"Error": err.Error()})
			continue
		}
		return step{back: true}, nil
	}
}

// applySettings saves s and switches the running UI over to it.
func (a *App) applySettings(s settings.Settings) error {
	if a.settingsPath != "" {
		if err := settings.Save(a.settingsPath, s); err != nil {
			return err
		}
	}

	a.settings = s
	a.loc = a.loc.WithLanguage(s.Language)
	a.store.SetDefaults(s.WizardDefaults())

	SetTheme(s.ResolvedTheme(), s.Color)
	SetMinimizeOnClose(s.MinimizeToTrayOnClose)

	a.logger.Info("Settings saved", "language", a.loc.Tag().String(), "theme", s.Theme, "minimize_on_close", s.MinimizeToTrayOnClose)
	return nil
}
