// nolint:all // test package
package notebook

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocTabs_PageLifecycle(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	d := NewDocTabs()
	m := NewManager(d, nil)

	sheet1 := widget.NewLabel("sheet 1")
	sheet2 := widget.NewLabel("sheet 2")
	sheet3 := widget.NewLabel("sheet 3")
	for _, c := range []*widget.Label{sheet1, sheet2, sheet3} {
		_, err := m.CreateTab(c.Text, c)
		require.NoError(t, err)
	}
	require.Equal(t, 3, d.NPages())
	assert.Equal(t, "sheet 2", d.Tabs().Items[1].Text)

	header, ok := m.Header(sheet2)
	require.True(t, ok)
	test.Tap(header.CloseButton())

	assert.Equal(t, 2, d.NPages())
	index, ok := d.PageNum(sheet3)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	_, ok = d.PageNum(sheet2)
	assert.False(t, ok)
	assert.Len(t, d.headers, 2)
}

func TestDocTabs_StripCloseRoutesThroughHeader(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	d := NewDocTabs()
	m := NewManager(d, nil)

	content := widget.NewLabel("sheet 1")
	_, err := m.CreateTab("sheet 1", content)
	require.NoError(t, err)

	d.onCloseRequested(d.Tabs().Items[0])

	assert.Zero(t, d.NPages())
	assert.Zero(t, m.Len())
}

func TestDocTabs_RemovePageOutOfRange(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	d := NewDocTabs()
	d.AppendPage(widget.NewLabel("x"), NewHeader("x"))

	assert.NotPanics(t, func() {
		d.RemovePage(-1)
		d.RemovePage(5)
	})
	assert.Equal(t, 1, d.NPages())
}

func TestDocTabs_ForgetsItemsRemovedDirectly(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	d := NewDocTabs()
	m := NewManager(d, nil)

	sheet1 := widget.NewLabel("sheet 1")
	sheet2 := widget.NewLabel("sheet 2")
	for _, c := range []*widget.Label{sheet1, sheet2} {
		_, err := m.CreateTab(c.Text, c)
		require.NoError(t, err)
	}

	d.Tabs().RemoveIndex(0)
	_, ok := d.PageNum(sheet1)
	assert.False(t, ok)
	assert.Len(t, d.headers, 1)

	header, ok := m.Header(sheet1)
	require.True(t, ok)
	test.Tap(header.CloseButton())
	assert.Equal(t, 1, d.NPages())
	assert.Equal(t, 1, m.Len())
}
