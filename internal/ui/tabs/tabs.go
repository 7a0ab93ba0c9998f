package tabs

import (
	"fyne.io/fyne/v2"
)

// TabContent defines the interface for content shown in a closable tab.
// Cleanup runs when the tab is closed.
type TabContent interface {
	fyne.CanvasObject
	Cleanup()
}
