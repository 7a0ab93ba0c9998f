package widgets

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Scale is a horizontal slider with a label showing the formatted value.
type Scale struct {
	widget.BaseWidget
	container *fyne.Container

	adj    *Adjustment
	slider *widget.Slider
	label  *widget.Label

	// Digits is the number of decimals shown by the default formatter.
	Digits int
	// FormatValue overrides how the value label is rendered.
	FormatValue func(digits int, value float64) string
}

// NewScale creates a scale driving adj.
func NewScale(adj *Adjustment, digits int) *Scale {
	s := &Scale{adj: adj, Digits: digits}
	s.ExtendBaseWidget(s)

	s.slider = widget.NewSlider(adj.Lower(), adj.Upper())
	s.slider.Step = adj.Step()
	s.slider.Value = adj.Value()
	s.slider.OnChanged = adj.SetValue

	s.label = widget.NewLabel("")
	s.updateLabel()

	adj.OnValueChanged(func(a *Adjustment) {
		if s.slider.Value != a.Value() {
			s.slider.SetValue(a.Value())
		}
		s.updateLabel()
	})

	s.container = container.NewBorder(nil, nil, nil, s.label, s.slider)

	return s
}

// Adjustment returns the scale's model.
func (s *Scale) Adjustment() *Adjustment {
	return s.adj
}

// Slider returns the underlying slider.
func (s *Scale) Slider() *widget.Slider {
	return s.slider
}

// ValueText returns the text currently shown for the value.
func (s *Scale) ValueText() string {
	return s.label.Text
}

// SetFormatValue installs a value formatter and redraws the label.
func (s *Scale) SetFormatValue(f func(digits int, value float64) string) {
	s.FormatValue = f
	s.updateLabel()
}

func (s *Scale) updateLabel() {
	if s.FormatValue != nil {
		s.label.SetText(s.FormatValue(s.Digits, s.adj.Value()))
		return
	}
	s.label.SetText(strconv.FormatFloat(s.adj.Value(), 'f', s.Digits, 64))
}

// CreateRenderer implements fyne.Widget interface.
func (s *Scale) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.container)
}
