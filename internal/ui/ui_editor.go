package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/datesel"
	"github.com/tartampluch/go-profile/internal/engine"
	"github.com/tartampluch/go-profile/internal/indicator"
)

// editorWidgets holds the profile form fields.
type editorWidgets struct {
	name      *widget.Entry
	email     *widget.Entry
	phone     *widget.Entry
	title     *widget.Entry
	birthDate *DateSelector
	gauge     *canvas.Image
}

// entry reads the form back into a profile with the given UID.
func (ew *editorWidgets) entry(uid string) engine.StaffEntry {
	return engine.StaffEntry{
		UID:       uid,
		Name:      strings.TrimSpace(ew.name.Text),
		BirthDate: ew.birthDate.Value(),
		Email:     strings.TrimSpace(ew.email.Text),
		Phone:     strings.TrimSpace(ew.phone.Text),
		Title:     strings.TrimSpace(ew.title.Text),
	}
}

// completenessResource renders the gauge for value. The name carries the
// value so the image cache does not serve a stale gauge.
func completenessResource(value int) fyne.Resource {
	name := fmt.Sprintf("%d-%s", value, config.IndicatorResourceName)
	return fyne.NewStaticResource(name, indicator.Render(indicator.Indicator{Value: value}))
}

// validateBirthDate accepts an empty date or a complete one.
func validateBirthDate(parts datesel.DateParts) bool {
	empty := !parts.Day.IsSet() && !parts.Month.IsSet() && parts.Year == ""
	return empty || parts.IsComplete()
}

// ShowEditorWindow opens the profile editor for e, replacing any open editor.
func (app *ProfileApp) ShowEditorWindow(e engine.StaffEntry) {
	if app.editorWindow != nil {
		app.editorWindow.Close()
	}

	slog.Info(config.MsgOpenEditor,
		config.LogKeyComponent, config.CompUIEditor,
		config.LogKeyUID, e.UID)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinEditor))
	app.editorWindow = w

	ew := &editorWidgets{
		name:  widget.NewEntry(),
		email: widget.NewEntry(),
		phone: widget.NewEntry(),
		title: widget.NewEntry(),
	}
	ew.name.SetText(e.Name)
	ew.email.SetText(e.Email)
	ew.phone.SetText(e.Phone)
	ew.title.SetText(e.Title)
	ew.name.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(app.GetMsg(config.TKeyErrNameReq))
		}
		return nil
	}

	ew.birthDate = NewDateSelector(e.BirthDate, app.GetMsg(config.TKeyHelpBirthDate), app.GetMsg)

	ew.gauge = canvas.NewImageFromResource(completenessResource(e.Completeness()))
	ew.gauge.FillMode = canvas.ImageFillContain
	ew.gauge.SetMinSize(fyne.NewSquareSize(config.EditorIndicatorSize))

	refreshGauge := func() {
		ew.gauge.Resource = completenessResource(ew.entry(e.UID).Completeness())
		ew.gauge.Refresh()
	}
	for _, en := range []*widget.Entry{ew.name, ew.email, ew.phone, ew.title} {
		en.OnChanged = func(string) { refreshGauge() }
	}
	ew.birthDate.OnChanged = func(string) {
		ew.birthDate.ClearError()
		refreshGauge()
	}

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), ew.name),
		widget.NewFormItem(app.GetMsg(config.TKeyLblEmail), ew.email),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPhone), ew.phone),
		widget.NewFormItem(app.GetMsg(config.TKeyLblTitle), ew.title),
		widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), ew.birthDate),
	)

	saveAction := func() {
		if err := ew.name.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		if !validateBirthDate(ew.birthDate.Parts()) {
			ew.birthDate.SetError(app.GetMsg(config.TKeyErrBirthDate))
			return
		}
		if err := app.SaveProfile(ew.entry(e.UID)); err != nil {
			dialog.ShowError(err, w)
			return
		}
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	header := container.NewBorder(nil, nil, ew.gauge, nil,
		widget.NewLabelWithStyle(app.GetMsg(config.TKeyLblProfile), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	content := container.NewPadded(container.NewVBox(
		header,
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.EditorWindowWidth, content.MinSize().Height))
	w.SetOnClosed(func() {
		if app.editorWindow == w {
			app.editorWindow = nil
		}
	})
	w.Show()
}
