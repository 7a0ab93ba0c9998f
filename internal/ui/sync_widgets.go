package ui

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/uidesc"
	"github.com/andrei-cloud/widgetdemos/internal/widgets"
	"github.com/andrei-cloud/widgetdemos/pkg/logger"
)

// SyncWidgets is a window whose slider and spin button mirror each other.
type SyncWidgets struct {
	Window fyne.Window
	Slider *widgets.Scale
	Spin   *widgets.SpinEntry
}

// NewSyncWidgets builds the window from its UI description. A missing object
// in the description is returned as an error wrapping uidesc.ErrObjectNotFound.
func NewSyncWidgets(tk *toolkit.Toolkit, log *logger.Logger) (*SyncWidgets, error) {
	data, err := description("sync_widgets.yaml")
	if err != nil {
		return nil, err
	}

	return newSyncWidgets(tk, log, data)
}

func newSyncWidgets(tk *toolkit.Toolkit, log *logger.Logger, data []byte) (*SyncWidgets, error) {
	b, err := uidesc.Load(tk, data)
	if err != nil {
		return nil, err
	}

	sw := &SyncWidgets{}
	if sw.Slider, err = b.Scale("slider"); err != nil {
		return nil, fmt.Errorf("couldn't get slider: %w", err)
	}
	if sw.Spin, err = b.Spin("spin_button"); err != nil {
		return nil, fmt.Errorf("couldn't get spin_button: %w", err)
	}
	if sw.Window, err = b.Window("window"); err != nil {
		return nil, fmt.Errorf("couldn't get window: %w", err)
	}

	widgets.Interlock(sw.Slider.Adjustment(), sw.Spin.Adjustment())
	sw.Slider.Adjustment().OnValueChanged(func(a *widgets.Adjustment) {
		log.Debug("ValueChanged", "OK", fmt.Sprintf("value=%g", a.Value()))
	})

	sw.Window.SetOnClosed(func() {
		log.Info("WindowClosed", "OK", sw.Window.Title())
	})

	return sw, nil
}
