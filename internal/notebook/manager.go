// Package notebook manages closable pages in a tab container.
//
// Each page pairs a content object with a Header. The header's close button
// is bound to the content's identity, and its page position is looked up in
// the container only when the button is activated, since positions shift as
// siblings are removed.
package notebook

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"fyne.io/fyne/v2"

	"github.com/andrei-cloud/widgetdemos/pkg/logger"
)

var (
	// ErrNilContent is returned when a tab is created without content.
	ErrNilContent = errors.New("tab content cannot be nil")
	// ErrAlreadyAttached is returned when content is already a page of the container.
	ErrAlreadyAttached = errors.New("tab content is already attached")
	// ErrNotComparable is returned when content cannot serve as an identity key.
	ErrNotComparable = errors.New("tab content must be a comparable (pointer) object")
)

// Container is the ordered page collection driven by a Manager.
type Container interface {
	// AppendPage adds content under header and returns its position.
	AppendPage(content fyne.CanvasObject, header *Header) int
	// PageNum returns the current position of content.
	PageNum(content fyne.CanvasObject) (int, bool)
	// RemovePage detaches the page at index.
	RemovePage(index int)
	// NPages returns the number of pages.
	NPages() int
}

// Cleaner is implemented by content that releases state when its page closes.
type Cleaner interface {
	Cleanup()
}

// Manager creates tabs in a Container and removes them when their close button fires.
// It is not safe for concurrent use; call it from the UI goroutine.
type Manager struct {
	container Container
	headers   map[fyne.CanvasObject]*Header
	log       *logger.Logger
	onChanged func()
}

// NewManager creates a manager for c. A nil log discards events.
func NewManager(c Container, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}

	return &Manager{
		container: c,
		headers:   make(map[fyne.CanvasObject]*Header),
		log:       log,
	}
}

// SetOnChanged registers f to run after every tab creation or removal.
func (m *Manager) SetOnChanged(f func()) {
	m.onChanged = f
}

// CreateTab appends content under a new header titled title and returns the
// position it was inserted at. Ownership of content passes to the container.
func (m *Manager) CreateTab(title string, content fyne.CanvasObject) (int, error) {
	if content == nil {
		return -1, ErrNilContent
	}
	if !reflect.TypeOf(content).Comparable() {
		return -1, fmt.Errorf("%w: %T", ErrNotComparable, content)
	}
	if _, ok := m.container.PageNum(content); ok {
		return -1, ErrAlreadyAttached
	}

	header := NewHeader(title)
	index := m.container.AppendPage(content, header)
	header.setOnClose(func() {
		m.closeTab(content)
	})
	m.headers[content] = header

	m.log.Info("TabCreated", "OK", fmt.Sprintf("title=%q index=%d", title, index))
	m.changed()

	return index, nil
}

// closeTab removes the page holding content, if it is still attached.
func (m *Manager) closeTab(content fyne.CanvasObject) {
	index, ok := m.container.PageNum(content)
	if !ok {
		// Removed behind the manager's back: forget the header anyway.
		if _, tracked := m.headers[content]; tracked {
			delete(m.headers, content)
			if c, ok := content.(Cleaner); ok {
				c.Cleanup()
			}
			m.changed()
		}
		m.log.Debug("TabClosed", "Miss", "page already removed")
		return
	}

	m.container.RemovePage(index)

	title := ""
	if header, ok := m.headers[content]; ok {
		title = header.Title()
		delete(m.headers, content)
	}
	if c, ok := content.(Cleaner); ok {
		c.Cleanup()
	}

	m.log.Info("TabClosed", "OK", fmt.Sprintf("title=%q index=%d", title, index))
	m.changed()
}

// Header returns the header bound to content while its page is open.
func (m *Manager) Header(content fyne.CanvasObject) (*Header, bool) {
	header, ok := m.headers[content]

	return header, ok
}

// Len returns the number of open tabs the manager tracks.
func (m *Manager) Len() int {
	return len(m.headers)
}

// Titles returns the titles of open tabs in page order.
func (m *Manager) Titles() []string {
	type page struct {
		index int
		title string
	}

	pages := make([]page, 0, len(m.headers))
	for content, header := range m.headers {
		if index, ok := m.container.PageNum(content); ok {
			pages = append(pages, page{index: index, title: header.Title()})
		}
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].index < pages[j].index })

	titles := make([]string, len(pages))
	for i, p := range pages {
		titles[i] = p.title
	}

	return titles
}

func (m *Manager) changed() {
	if m.onChanged != nil {
		m.onChanged()
	}
}
