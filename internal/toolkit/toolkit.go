// Package toolkit wraps the fyne application lifecycle in an explicit value,
// so UI code receives the app it runs in instead of reaching for globals.
package toolkit

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

// ErrInitFailed is returned when the toolkit cannot be started.
var ErrInitFailed = errors.New("toolkit initialization failed")

// Toolkit owns a fyne application.
type Toolkit struct {
	app fyne.App
}

// New starts the toolkit for the application identified by id.
func New(id string) (tk *Toolkit, err error) {
	if err := utils.ValidateAppID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	// Drivers panic when no display is available.
	defer func() {
		if r := recover(); r != nil {
			tk = nil
			err = fmt.Errorf("%w: %v", ErrInitFailed, r)
		}
	}()

	return &Toolkit{app: app.NewWithID(id)}, nil
}

// FromApp wraps an existing application, such as one from fyne's test package.
func FromApp(a fyne.App) *Toolkit {
	return &Toolkit{app: a}
}

// App returns the underlying application.
func (t *Toolkit) App() fyne.App {
	return t.app
}

// NewWindow creates a top-level window.
func (t *Toolkit) NewWindow(title string) fyne.Window {
	return t.app.NewWindow(title)
}

// Version describes the running toolkit build.
func (t *Toolkit) Version() string {
	meta := t.app.Metadata()
	if meta.Version == "" {
		return "fyne v2"
	}

	return fmt.Sprintf("fyne v2 (app %s build %d)", meta.Version, meta.Build)
}

// Run blocks in the event loop until the application quits.
func (t *Toolkit) Run() {
	t.app.Run()
}

// Quit stops the event loop.
func (t *Toolkit) Quit() {
	t.app.Quit()
}
