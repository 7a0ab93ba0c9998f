package widgets

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

// SpinEntry is a numeric entry with increment and decrement buttons.
type SpinEntry struct {
	widget.BaseWidget
	container *fyne.Container

	adj   *Adjustment
	entry *widget.Entry
	up    *widget.Button
	down  *widget.Button

	// Digits is the number of decimals displayed.
	Digits int
	// OnInput converts typed text into a value. A returned error rejects the
	// input and restores the displayed value. Defaults to decimal parsing.
	OnInput func(text string) (float64, error)
}

// NewSpinEntry creates a spin entry driving adj.
func NewSpinEntry(adj *Adjustment, digits int) *SpinEntry {
	s := &SpinEntry{adj: adj, Digits: digits}
	s.ExtendBaseWidget(s)

	s.entry = widget.NewEntry()
	s.entry.OnSubmitted = func(string) { s.Commit() }

	s.up = widget.NewButtonWithIcon("", theme.ContentAddIcon(), adj.StepUp)
	s.down = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), adj.StepDown)

	adj.OnValueChanged(func(*Adjustment) { s.updateText() })
	s.updateText()

	s.container = container.NewBorder(nil, nil, nil, container.NewHBox(s.down, s.up), s.entry)

	return s
}

// Adjustment returns the spin entry's model.
func (s *SpinEntry) Adjustment() *Adjustment {
	return s.adj
}

// Entry returns the text field.
func (s *SpinEntry) Entry() *widget.Entry {
	return s.entry
}

// Text returns the current text.
func (s *SpinEntry) Text() string {
	return s.entry.Text
}

// SetText replaces the text without committing it.
func (s *SpinEntry) SetText(text string) {
	s.entry.SetText(text)
}

// Commit parses the current text into the adjustment. Rejected or
// out-of-range input is replaced by the adjusted value.
func (s *SpinEntry) Commit() {
	parse := s.OnInput
	if parse == nil {
		parse = utils.ParseNumericInput
	}

	if value, err := parse(s.entry.Text); err == nil {
		s.adj.SetValue(value)
	}
	s.updateText()
}

func (s *SpinEntry) updateText() {
	text := strconv.FormatFloat(s.adj.Value(), 'f', s.Digits, 64)
	if s.entry.Text != text {
		s.entry.SetText(text)
	}
}

// CreateRenderer implements fyne.Widget interface.
func (s *SpinEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.container)
}
