package tabs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/widgetdemos/pkg/logger"
)

const (
	// maxEventLogRows caps how many entries the table keeps.
	maxEventLogRows = 500

	eventLogTimeFormat = "15:04:05.000"
)

var _ TabContent = (*EventLog)(nil)

// EventLog shows logger entries in a filterable table.
type EventLog struct {
	widget.BaseWidget
	container *fyne.Container

	searchTerm *widget.Entry
	logsTable  *widget.Table

	entries []logger.Entry
	visible []logger.Entry
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	el := &EventLog{}
	el.ExtendBaseWidget(el)

	el.searchTerm = widget.NewEntry()
	el.searchTerm.SetPlaceHolder("Search logs...")
	el.searchTerm.OnChanged = func(string) { el.applyFilter() }

	clearBtn := widget.NewButton("Clear", el.Cleanup)

	el.initializeTable()

	filters := container.NewBorder(nil, nil, widget.NewLabel("Search"), clearBtn, el.searchTerm)

	el.container = container.NewBorder(filters, nil, nil, nil, el.logsTable)

	return el
}

func (el *EventLog) initializeTable() {
	el.logsTable = widget.NewTable(
		func() (int, int) { return len(el.visible), 4 }, // Time, Level, Event, Details.
		func() fyne.CanvasObject {
			return widget.NewLabel("Template")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(el.cell(id))
		},
	)
	el.logsTable.SetColumnWidth(0, 110)
	el.logsTable.SetColumnWidth(1, 70)
	el.logsTable.SetColumnWidth(2, 160)
	el.logsTable.SetColumnWidth(3, 400)
}

func (el *EventLog) cell(id widget.TableCellID) string {
	if id.Row < 0 || id.Row >= len(el.visible) {
		return ""
	}

	e := el.visible[id.Row]
	switch id.Col {
	case 0:
		return e.Timestamp.Format(eventLogTimeFormat)
	case 1:
		return e.Level.String()
	case 2:
		return e.Event
	default:
		if e.Status == "" {
			return e.Details
		}
		return e.Status + ": " + e.Details
	}
}

// Append schedules e to be added on the UI goroutine. Safe to use as a
// logger callback from any goroutine.
func (el *EventLog) Append(e logger.Entry) {
	fyne.Do(func() { el.Add(e) })
}

// Add appends e. Call from the UI goroutine.
func (el *EventLog) Add(e logger.Entry) {
	el.entries = append(el.entries, e)
	if len(el.entries) > maxEventLogRows {
		el.entries = el.entries[len(el.entries)-maxEventLogRows:]
	}
	el.applyFilter()
}

// Rows returns the number of entries currently shown.
func (el *EventLog) Rows() int {
	return len(el.visible)
}

// SetFilter replaces the search term.
func (el *EventLog) SetFilter(term string) {
	el.searchTerm.SetText(term)
	el.applyFilter()
}

func (el *EventLog) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(el.searchTerm.Text))
	el.visible = el.visible[:0]
	for _, e := range el.entries {
		if term == "" || strings.Contains(strings.ToLower(e.Component+" "+e.Event+" "+e.Status+" "+e.Details), term) {
			el.visible = append(el.visible, e)
		}
	}
	el.logsTable.Refresh()
}

// CreateRenderer implements fyne.Widget interface.
func (el *EventLog) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(el.container)
}

// Cleanup implements TabContent interface.
func (el *EventLog) Cleanup() {
	el.entries = nil
	el.applyFilter()
}
