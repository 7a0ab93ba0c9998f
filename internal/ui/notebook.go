package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/widgetdemos/internal/notebook"
	"github.com/andrei-cloud/widgetdemos/internal/session"
	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/ui/tabs"
	"github.com/andrei-cloud/widgetdemos/pkg/logger"
)

// NotebookTitle is the notebook window title.
const NotebookTitle = "Notebook"

// Notebook is a window of closable sheets.
type Notebook struct {
	window  fyne.Window
	tabs    *notebook.DocTabs
	manager *notebook.Manager
	store   *session.Store
	log     *logger.Logger
	next    int
}

// NewNotebook builds the notebook window. Sheets from store are reopened when
// a session was saved; otherwise initialTabs sheets titled "sheet N" are
// created. store may be nil.
func NewNotebook(
	tk *toolkit.Toolkit,
	initialTabs int,
	store *session.Store,
	log *logger.Logger,
) (*Notebook, error) {
	if log == nil {
		log = logger.Nop()
	}

	n := &Notebook{
		window: tk.NewWindow(NotebookTitle),
		tabs:   notebook.NewDocTabs(),
		store:  store,
		log:    log,
		next:   1,
	}
	n.manager = notebook.NewManager(n.tabs, log)

	titles := make([]string, 0, initialTabs)
	if store != nil && store.Restored() {
		titles = store.Tabs()
		log.Info("SessionRestored", "OK", fmt.Sprintf("%d tabs", len(titles)))
	} else {
		for i := 1; i <= initialTabs; i++ {
			titles = append(titles, sheetTitle(i))
		}
	}

	for _, title := range titles {
		if _, err := n.AddSheet(title); err != nil {
			return nil, err
		}
	}
	n.next = len(titles) + 1
	n.manager.SetOnChanged(n.saveSession)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			if _, err := n.NewSheet(); err != nil {
				log.Error("TabCreated", "Failure", err.Error())
			}
		}),
	)

	n.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, n.tabs.Tabs()))

	return n, nil
}

func sheetTitle(i int) string {
	return fmt.Sprintf("sheet %d", i)
}

// AddSheet opens a sheet titled title and returns its page index.
func (n *Notebook) AddSheet(title string) (int, error) {
	return n.AddPage(title, tabs.NewSheet(title))
}

// AddPage opens content in a closable tab. Its Cleanup runs when the tab closes.
func (n *Notebook) AddPage(title string, content tabs.TabContent) (int, error) {
	return n.manager.CreateTab(title, content)
}

// NewSheet opens the next unused "sheet N" and selects it.
func (n *Notebook) NewSheet() (int, error) {
	open := make(map[string]bool)
	for _, title := range n.manager.Titles() {
		open[title] = true
	}
	for open[sheetTitle(n.next)] {
		n.next++
	}

	index, err := n.AddSheet(sheetTitle(n.next))
	if err != nil {
		return -1, err
	}
	n.next++
	n.tabs.Tabs().SelectIndex(index)

	return index, nil
}

func (n *Notebook) saveSession() {
	if n.store == nil {
		return
	}

	if err := n.store.Save(n.manager.Titles()); err != nil {
		n.log.Error("SessionSaved", "Failure", err.Error())
	}
}

// Window returns the notebook window.
func (n *Notebook) Window() fyne.Window {
	return n.window
}

// Manager returns the tab manager.
func (n *Notebook) Manager() *notebook.Manager {
	return n.manager
}

// Tabs returns the tab container.
func (n *Notebook) Tabs() *notebook.DocTabs {
	return n.tabs
}
