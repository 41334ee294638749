package ui

import (
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-profile/internal/config"
	"github.com/tartampluch/go-profile/internal/engine"
	"github.com/tartampluch/go-profile/internal/indicator"
)

// staffSorter orders the staff table by one column.
type staffSorter struct {
	col int
	asc bool
	cmp func(a, b string) int
}

func (s staffSorter) sort(entries []engine.StaffEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		var c int
		switch s.col {
		case config.ColIDBirthDate:
			c = compareBirthDates(a, b)
		case config.ColIDCompleteness:
			c = a.Completeness() - b.Completeness()
		}
		if c == 0 {
			c = s.cmp(a.DisplayName(), b.DisplayName())
		}
		if !s.asc {
			return c > 0
		}
		return c < 0
	})
}

// compareBirthDates orders by month then day; profiles without a day or a
// month sort last.
func compareBirthDates(a, b engine.StaffEntry) int {
	ka, okA := birthdayKey(a)
	kb, okB := birthdayKey(b)
	switch {
	case okA && okB:
		return ka - kb
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

func birthdayKey(e engine.StaffEntry) (int, bool) {
	parts := e.Parts()
	d, okD := parts.Day.Index()
	m, okM := parts.Month.Index()
	if !okD || !okM {
		return 0, false
	}
	return m*config.DefaultDaysInMonth + d, true
}

// ShowStaffWindow lists the staff with their birth date and completeness.
// If the window is already open, it requests focus.
func (app *ProfileApp) ShowStaffWindow() {
	if app.staffWindow != nil {
		app.staffWindow.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinStaff))
	app.staffWindow = w
	w.Resize(fyne.NewSize(config.StaffWinWidth, config.StaffWinHeight))

	collator := app.newCollator()
	sorter := staffSorter{col: config.ColIDName, asc: true, cmp: collator.CompareString}

	var rows []engine.StaffEntry
	reload := func() {
		rows = app.Staff()
		sorter.sort(rows)
	}
	reload()

	slog.Info(config.MsgOpenStaff,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(rows))

	table := widget.NewTable(
		func() (int, int) {
			return len(rows), config.StaffColumnCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(rows) {
				return
			}
			e := rows[id.Row]

			switch id.Col {
			case config.ColIDName:
				label.SetText(e.DisplayName())
			case config.ColIDBirthDate:
				label.SetText(e.BirthDate)
			case config.ColIDCompleteness:
				label.SetText(indicator.Label(e.Completeness()))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.HeaderPlaceholder, func() {})
	}

	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDName:
			titleKey = config.TKeyColName
		case config.ColIDBirthDate:
			titleKey = config.TKeyColBirthDate
		case config.ColIDCompleteness:
			titleKey = config.TKeyColCompleteness
		}

		text := app.GetMsg(titleKey)
		if id.Col == sorter.col {
			if sorter.asc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if sorter.col == id.Col {
				sorter.asc = !sorter.asc
			} else {
				sorter.col = id.Col
				sorter.asc = true
			}
			sorter.sort(rows)
			slog.Debug(config.MsgStaffSorted,
				config.LogKeyComponent, config.CompUI,
				config.LogKeySortCol, sorter.col,
				config.LogKeySortAsc, sorter.asc)
			table.Refresh()
		}
	}

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < len(rows) {
			app.ShowEditorWindow(rows[id.Row])
		}
		table.UnselectAll()
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDBirthDate, config.ColWidthBirthDate)
	table.SetColumnWidth(config.ColIDCompleteness, config.ColWidthCompleteness)

	btnAdd := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), func() {
		draft := engine.NewStaffEntry(app.GetMsg(config.TKeyNewStaffName))
		slog.Info(config.MsgDraftCreated,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyUID, draft.UID)
		app.ShowEditorWindow(draft)
	})

	app.onStaffChanged = func() {
		reload()
		table.Refresh()
	}

	w.SetContent(container.NewBorder(nil, btnAdd, nil, nil, table))
	w.SetOnClosed(func() {
		app.staffWindow = nil
		app.onStaffChanged = nil
	})
	w.Show()
}
