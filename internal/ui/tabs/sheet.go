package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var _ TabContent = (*Sheet)(nil)

// Sheet is the content of a notebook page: its title and a notes field.
type Sheet struct {
	widget.BaseWidget
	container *fyne.Container

	title *widget.Label
	notes *widget.Entry
}

// NewSheet creates a sheet titled title.
func NewSheet(title string) *Sheet {
	s := &Sheet{}
	s.ExtendBaseWidget(s)

	s.title = widget.NewLabel(title)
	s.title.Alignment = fyne.TextAlignCenter

	s.notes = widget.NewMultiLineEntry()
	s.notes.SetPlaceHolder("Notes...")

	s.container = container.NewBorder(s.title, nil, nil, nil, s.notes)

	return s
}

// Title returns the sheet title.
func (s *Sheet) Title() string {
	return s.title.Text
}

// Notes returns the notes text.
func (s *Sheet) Notes() string {
	return s.notes.Text
}

// SetNotes replaces the notes text.
func (s *Sheet) SetNotes(text string) {
	s.notes.SetText(text)
}

// CreateRenderer implements fyne.Widget interface.
func (s *Sheet) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.container)
}

// Cleanup implements TabContent interface.
func (s *Sheet) Cleanup() {
	s.notes.SetText("")
}
