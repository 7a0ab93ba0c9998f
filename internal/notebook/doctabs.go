package notebook

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// DocTabs adapts container.DocTabs to the Container interface. The tab
// strip's own close icon is routed through the page's Header, so both
// affordances share one close path. Items removed from Tabs() directly are
// forgotten on the next append or lookup miss.
type DocTabs struct {
	tabs    *container.DocTabs
	headers map[*container.TabItem]*Header
}

// NewDocTabs creates an empty tab container with tabs along the top.
func NewDocTabs() *DocTabs {
	d := &DocTabs{
		tabs:    container.NewDocTabs(),
		headers: make(map[*container.TabItem]*Header),
	}
	d.tabs.SetTabLocation(container.TabLocationTop)
	d.tabs.CloseIntercept = d.onCloseRequested

	return d
}

// Tabs returns the underlying widget for placing into a window.
func (d *DocTabs) Tabs() *container.DocTabs {
	return d.tabs
}

// AppendPage implements Container.
func (d *DocTabs) AppendPage(content fyne.CanvasObject, header *Header) int {
	d.prune()
	item := container.NewTabItem(header.Title(), content)
	d.headers[item] = header
	d.tabs.Append(item)

	return len(d.tabs.Items) - 1
}

// PageNum implements Container.
func (d *DocTabs) PageNum(content fyne.CanvasObject) (int, bool) {
	for i, item := range d.tabs.Items {
		if item.Content == content {
			return i, true
		}
	}
	d.prune()

	return -1, false
}

// prune drops headers of items no longer in the strip.
func (d *DocTabs) prune() {
	if len(d.headers) == len(d.tabs.Items) {
		return
	}

	open := make(map[*container.TabItem]bool, len(d.tabs.Items))
	for _, item := range d.tabs.Items {
		open[item] = true
	}
	for item := range d.headers {
		if !open[item] {
			delete(d.headers, item)
		}
	}
}

// RemovePage implements Container.
func (d *DocTabs) RemovePage(index int) {
	if index < 0 || index >= len(d.tabs.Items) {
		return
	}

	item := d.tabs.Items[index]
	delete(d.headers, item)
	d.tabs.RemoveIndex(index)
}

// NPages implements Container.
func (d *DocTabs) NPages() int {
	return len(d.tabs.Items)
}

func (d *DocTabs) onCloseRequested(item *container.TabItem) {
	if header, ok := d.headers[item]; ok {
		header.Close()
	}
}
