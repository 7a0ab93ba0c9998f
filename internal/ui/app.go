package ui

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
)

//go:embed descriptions/*.yaml
var descriptions embed.FS

// description returns the embedded UI description called name.
func description(name string) ([]byte, error) {
	data, err := descriptions.ReadFile("descriptions/" + name)
	if err != nil {
		return nil, fmt.Errorf("missing UI description %s: %w", name, err)
	}

	return data, nil
}

// Run shows w as the master window and blocks in the event loop until it closes.
func Run(tk *toolkit.Toolkit, w fyne.Window, width, height int) {
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.CenterOnScreen()
	w.SetMaster()
	w.Show()
	tk.Run()
}
