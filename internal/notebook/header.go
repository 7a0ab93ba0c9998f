package notebook

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Header is a page's title and close affordance as a label plus close button.
// DocTabs draws its own title and close icon and never renders a Header; it
// only reaches it through Close when the strip's close icon is pressed.
type Header struct {
	widget.BaseWidget
	container *fyne.Container

	label *widget.Label
	close *widget.Button
}

// NewHeader creates a header showing title.
func NewHeader(title string) *Header {
	h := &Header{}
	h.ExtendBaseWidget(h)

	h.label = widget.NewLabel(title)

	h.close = widget.NewButtonWithIcon("", theme.WindowCloseIcon(), nil)
	h.close.Importance = widget.LowImportance // flat, no relief.

	h.container = container.NewHBox(h.label, h.close)

	return h
}

// Title returns the header text.
func (h *Header) Title() string {
	return h.label.Text
}

// CloseButton returns the close affordance.
func (h *Header) CloseButton() *widget.Button {
	return h.close
}

// Close activates the close affordance as if it had been tapped.
func (h *Header) Close() {
	if h.close.OnTapped != nil {
		h.close.OnTapped()
	}
}

func (h *Header) setOnClose(f func()) {
	h.close.OnTapped = f
}

// CreateRenderer implements fyne.Widget interface.
func (h *Header) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.container)
}
