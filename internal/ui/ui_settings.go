package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/zalando/go-keyring"
)

// sourceModes pairs each stored source mode with its translation key, in
// the order shown in the mode selector.
var sourceModes = []struct{ value, key string }{
	{config.SourceModeWeb, config.TKeyModeCardDAV},
	{config.SourceModeLocal, config.TKeyModeLocal},
}

// settingsValues is the plain content of the settings form.
type settingsValues struct {
	Language  string
	Mode      string
	URL       string
	User      string
	Password  string
	LocalPath string
	Interval  string
	Port      string
}

// settingsForm owns the editable widgets of the settings window.
type settingsForm struct {
	app *ProfileApp

	lang     *widget.Select
	mode     *widget.Select
	url      *widget.Entry
	user     *widget.Entry
	pass     *widget.Entry
	path     *widget.Entry
	interval *NumericalEntry
	port     *NumericalEntry
}

func (app *ProfileApp) modeLabels() []string {
	labels := make([]string, len(sourceModes))
	for i, m := range sourceModes {
		labels[i] = app.GetMsg(m.key)
	}
	return labels
}

// modeValue maps a selector label back to the stored mode. Unknown labels
// fall back to the web source.
func (app *ProfileApp) modeValue(label string) string {
	for _, m := range sourceModes {
		if app.GetMsg(m.key) == label {
			return m.value
		}
	}
	return config.SourceModeWeb
}

func (app *ProfileApp) modeLabel(value string) string {
	for _, m := range sourceModes {
		if m.value == value {
			return app.GetMsg(m.key)
		}
	}
	return app.GetMsg(config.TKeyModeCardDAV)
}

// validatePort returns a localized error for an empty, non-numeric or
// out-of-range port.
func (app *ProfileApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// newSettingsForm creates the widgets and fills them from preferences and
// the keyring.
func (app *ProfileApp) newSettingsForm() *settingsForm {
	prefs := app.Preferences
	f := &settingsForm{
		app:      app,
		lang:     widget.NewSelect(app.SupportedLanguages, nil),
		mode:     widget.NewSelect(app.modeLabels(), nil),
		url:      widget.NewEntry(),
		user:     widget.NewEntry(),
		pass:     widget.NewPasswordEntry(),
		path:     widget.NewEntry(),
		interval: NewNumericalEntry(),
		port:     NewNumericalEntry(),
	}

	f.lang.SetSelected(app.languageCode())
	f.mode.SetSelected(app.modeLabel(prefs.StringWithFallback(config.PrefSourceMode, config.SourceModeWeb)))
	f.url.PlaceHolder = config.PlaceholderURL
	f.url.SetText(prefs.String(config.PrefCardDAVURL))
	f.user.SetText(prefs.String(config.PrefUsername))
	f.path.SetText(prefs.String(config.PrefLocalPath))
	f.interval.SetText(strconv.Itoa(prefs.IntWithFallback(config.PrefInterval, config.DefaultRefreshMin)))
	f.port.SetText(prefs.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	f.port.Validator = app.validatePort

	if f.user.Text != "" {
		if pwd, err := keyring.Get(config.KeyringService, f.user.Text); err == nil {
			f.pass.SetText(pwd)
		}
	}
	return f
}

func (f *settingsForm) values() settingsValues {
	return settingsValues{
		Language:  f.lang.Selected,
		Mode:      f.app.modeValue(f.mode.Selected),
		URL:       f.url.Text,
		User:      f.user.Text,
		Password:  f.pass.Text,
		LocalPath: f.path.Text,
		Interval:  f.interval.Text,
		Port:      f.port.Text,
	}
}

// sourceCard shows either the address book credentials or the local file
// picker depending on the selected mode. relayout runs after each switch.
func (f *settingsForm) sourceCard(w fyne.Window, relayout func()) *widget.Card {
	app := f.app

	browse := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil || r == nil {
				return
			}
			f.path.SetText(r.URI().Path())
			_ = r.Close()
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
		d.Show()
	})

	urlItem := widget.NewFormItem(app.GetMsg(config.TKeyLblURL), f.url)
	urlItem.HintText = app.GetMsg(config.TKeyHelpURL)
	web := widget.NewForm(
		urlItem,
		widget.NewFormItem(app.GetMsg(config.TKeyLblUser), f.user),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPass), f.pass),
	)
	local := container.NewBorder(nil, nil, nil, browse, f.path)

	show := func(label string) {
		local.Hidden = app.modeValue(label) != config.SourceModeLocal
		web.Hidden = !local.Hidden
		web.Refresh()
		local.Refresh()
	}
	show(f.mode.Selected)
	f.mode.OnChanged = func(label string) {
		show(label)
		relayout()
	}

	return widget.NewCard(app.GetMsg(config.TKeyLblSource), "", container.NewVBox(f.mode, web, local))
}

func (f *settingsForm) generalCard() *widget.Card {
	app := f.app

	lang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), f.lang)
	lang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	minutes := widget.NewLabel(app.GetMsg(config.TKeyLblMinutes))
	interval := widget.NewFormItem(app.GetMsg(config.TKeyLblRefresh), container.NewBorder(nil, nil, nil, minutes, f.interval))
	interval.HintText = app.GetMsg(config.TKeyHelpInterval)

	port := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), f.port)
	port.HintText = app.GetMsg(config.TKeyHelpPort)

	return widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(lang, interval, port))
}

// ShowSettingsWindow opens the settings window, or focuses it when open.
func (app *ProfileApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	form := app.newSettingsForm()
	body := container.NewVBox()
	relayout := func() {
		body.Refresh()
		w.Resize(fyne.NewSize(config.SettingsWindowWidth, body.MinSize().Height))
	}

	save := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		if err := form.port.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(form.values())
		w.Close()
	})
	save.Importance = widget.HighImportance
	cancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), w.Close)

	footer := widget.NewLabelWithStyle(
		fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version),
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	body.Objects = []fyne.CanvasObject{
		form.sourceCard(w, relayout),
		form.generalCard(),
		container.NewGridWithColumns(config.LayoutColumnsDouble, cancel, save),
		footer,
	}

	w.SetContent(container.NewPadded(body))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	relayout()
	w.Show()
}

// storeSettings writes v to preferences and the keyring. A non-positive or
// non-numeric interval disables the automatic refresh; an empty port keeps
// the previous one.
func (app *ProfileApp) storeSettings(v settingsValues) {
	prefs := app.Preferences
	prefs.SetString(config.PrefLanguage, v.Language)
	prefs.SetString(config.PrefSourceMode, v.Mode)
	prefs.SetString(config.PrefCardDAVURL, v.URL)
	prefs.SetString(config.PrefUsername, v.User)
	prefs.SetString(config.PrefLocalPath, v.LocalPath)

	interval, err := strconv.Atoi(v.Interval)
	if err != nil || interval <= 0 {
		interval = config.DisabledInterval
	}
	prefs.SetInt(config.PrefInterval, interval)

	if v.Port != "" {
		prefs.SetString(config.PrefServerPort, v.Port)
	}

	if v.User == "" || v.Password == "" {
		return
	}
	if err := keyring.Set(config.KeyringService, v.User, v.Password); err != nil {
		slog.Error(config.ErrKeyringSave,
			config.LogKeyComponent, config.CompUISet,
			config.LogKeyError, err)
	}
}

// saveSettings stores v, relocalizes the tray and starts an import.
func (app *ProfileApp) saveSettings(v settingsValues) {
	slog.Info(config.MsgSavingPrefs, config.LogKeyComponent, config.CompUISet)
	app.storeSettings(v)
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	go app.performSync(true)
}
