package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/engine"
	"github.com/tartampluch/go-profile/internal/indicator"
	"github.com/tartampluch/go-profile/internal/server"
	"github.com/zalando/go-keyring"
)

// Publisher receives rendered documents. *server.FeedServer implements it.
type Publisher interface {
	Publish(route, contentType string, data []byte)
}

var _ Publisher = (*server.FeedServer)(nil)

// ProfileApp encapsulates the UI state, preferences, and background logic.
type ProfileApp struct {
	App         fyne.App
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server    *server.FeedServer
	Publisher Publisher
	Importer  *engine.Importer
	Clock     engine.Clock

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayRefreshItem  *fyne.MenuItem
	TrayStaffItem    *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string

	// Staff state. imported is the last successful import; overrides holds
	// profiles edited or created locally, keyed by UID.
	staffMu   sync.RWMutex
	imported  []engine.StaffEntry
	overrides map[string]engine.StaffEntry

	settingsWindow fyne.Window
	staffWindow    fyne.Window
	editorWindow   fyne.Window
	onStaffChanged func()
}

// NewProfileApp constructs the application and wires dependencies.
func NewProfileApp(a fyne.App, ctx context.Context, srv *server.FeedServer, fetcher engine.DirectoryFetcher) *ProfileApp {
	a.SetIcon(theme.AccountIcon())

	return &ProfileApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Publisher:          srv,
		Importer:           &engine.Importer{Fetcher: fetcher},
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
		configChan:         make(chan string, config.ChannelBufferSize),
		overrides:          make(map[string]engine.StaffEntry),
	}
}

// Run launches the application services and the main UI loop.
func (app *ProfileApp) Run() {
	app.SetupI18n()
	app.watchPreferences()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	go app.backgroundWorker()
	app.App.Run()
}

// watchPreferences monitors changes to settings to trigger immediate updates.
func (app *ProfileApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefInterval:
		default:
		}
	})
}

// setupTrayMenu constructs the system tray menu.
func (app *ProfileApp) setupTrayMenu() {
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.ShowStaffWindow()
	})

	app.TrayRefreshItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), func() {
		go app.performSync(true)
	})

	app.TrayStaffItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuStaff), func() {
		app.ShowStaffWindow()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayRefreshItem,
		app.TrayStaffItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *ProfileApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayRefreshItem.Label = app.GetMsg(config.TKeyMenuRefresh)
	app.TrayStaffItem.Label = app.GetMsg(config.TKeyMenuStaff)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// backgroundWorker manages the periodic import schedule.
// An interval of zero disables the ticker but keeps listening for changes.
func (app *ProfileApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	app.performSync(false)

	currentDuration := app.refreshInterval()
	ticker := time.NewTicker(time.Hour)
	if currentDuration > 0 {
		ticker.Reset(currentDuration)
	} else {
		ticker.Stop()
	}
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, currentDuration)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-app.configChan:
			newDuration := app.refreshInterval()
			if newDuration == currentDuration {
				continue
			}
			log.Info(config.MsgUpdateSync, config.LogKeyOld, currentDuration, config.LogKeyNew, newDuration)
			currentDuration = newDuration
			if currentDuration > 0 {
				ticker.Reset(currentDuration)
			} else {
				ticker.Stop()
			}

		case <-ticker.C:
			app.performSync(false)
		}
	}
}

func (app *ProfileApp) refreshInterval() time.Duration {
	val := app.Preferences.IntWithFallback(config.PrefInterval, config.DefaultRefreshMin)
	if val <= config.DisabledInterval {
		return 0
	}
	return time.Duration(val) * time.Minute
}

// performSync imports the directory and republishes every document.
func (app *ProfileApp) performSync(manual bool) {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, manual)

	if manual {
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifStart)))
	}

	entries, err := app.Importer.Import(app.Ctx, app.loadSyncConfig())
	if err != nil {
		slog.Error(config.MsgSyncFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		if manual {
			app.App.SendNotification(fyne.NewNotification(config.TitleSyncError, app.GetMsg(config.TKeyNotifError)))
		}
		app.updateTrayStatus(-1)
		return
	}

	app.staffMu.Lock()
	app.imported = entries
	app.staffMu.Unlock()

	if err := app.publish(); err != nil {
		slog.Error(config.MsgSyncFailed, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		app.updateTrayStatus(-1)
		return
	}

	if manual {
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifSuccess)))
	}
}

// publish renders the feed and the completeness gauge from the current
// staff list and hands them to the server.
func (app *ProfileApp) publish() error {
	staff := app.Staff()

	fb := &engine.FeedBuilder{Clock: app.Clock, FormatSummary: app.summaryFormatter()}
	ics, today, err := fb.Build(staff)
	if err != nil {
		return err
	}

	if app.Publisher != nil {
		app.Publisher.Publish(config.RouteCalendar, config.MimeTextCalendar, ics)
		app.Publisher.Publish(config.RouteCompleteness, config.MimeSVG,
			indicator.Render(indicator.Indicator{Value: engine.AverageCompleteness(staff)}))
	}

	app.updateTrayStatus(today)
	if app.onStaffChanged != nil {
		fyne.Do(app.onStaffChanged)
	}
	return nil
}

// Staff returns the imported profiles with local edits applied.
func (app *ProfileApp) Staff() []engine.StaffEntry {
	app.staffMu.RLock()
	defer app.staffMu.RUnlock()
	return engine.ApplyOverrides(app.imported, app.overrides)
}

// SaveProfile stores a local edit of e and republishes.
func (app *ProfileApp) SaveProfile(e engine.StaffEntry) error {
	app.staffMu.Lock()
	app.overrides[e.UID] = e
	app.staffMu.Unlock()

	slog.Info(config.MsgProfileSaved,
		config.LogKeyComponent, config.CompUIEditor,
		config.LogKeyUID, e.UID)
	return app.publish()
}

// updateTrayStatus shows how many birthdays fall today; negative means error.
// The menu is touched on the fyne thread since callers run in the worker.
func (app *ProfileApp) updateTrayStatus(count int) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	label := app.trayLabel(count)
	fyne.Do(func() {
		app.TrayStatusItem.Label = label
		app.Menu.Refresh()
	})
}

func (app *ProfileApp) trayLabel(count int) string {
	switch {
	case count < 0:
		return config.FallbackTrayError
	case count == 0:
		label := app.GetMsg(config.TKeyTrayStatusZero)
		if label == config.TKeyTrayStatusZero {
			return fmt.Sprintf(config.FallbackTrayDefault, 0)
		}
		return label
	}

	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyTrayStatus,
			TemplateData: map[string]any{"Count": count},
			PluralCount:  count,
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackTrayDefault, count)
}

// loadSyncConfig assembles the import configuration from preferences and the keyring.
func (app *ProfileApp) loadSyncConfig() engine.SyncConfig {
	cfg := engine.SyncConfig{
		Mode:      app.Preferences.StringWithFallback(config.PrefSourceMode, config.SourceModeWeb),
		LocalPath: app.Preferences.String(config.PrefLocalPath),
		WebURL:    app.Preferences.String(config.PrefCardDAVURL),
		WebUser:   app.Preferences.String(config.PrefUsername),
	}

	if cfg.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}
	return cfg
}
