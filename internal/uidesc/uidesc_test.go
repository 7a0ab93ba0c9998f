// nolint:all // test package
package uidesc

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
)

const syncDesc = `
objects:
  - id: window
    kind: window
    text: Synchronizing Widgets
    width: 400
    height: 120
    children:
      - kind: vbox
        children:
          - {id: slider, kind: scale, min: 0, max: 100, step: 1, value: 10}
          - {id: spin_button, kind: spin, min: 0, max: 100, step: 1, value: 10}
          - {id: caption, kind: label, text: hello}
  - id: standalone
    kind: button
    text: Press
`

func newToolkit(t *testing.T) *toolkit.Toolkit {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	return toolkit.FromApp(a)
}

func TestLoad_BuildsNamedObjects(t *testing.T) {
	b, err := Load(newToolkit(t), []byte(syncDesc))
	require.NoError(t, err)

	w, err := b.Window("window")
	require.NoError(t, err)
	assert.Equal(t, "Synchronizing Widgets", w.Title())

	scale, err := b.Scale("slider")
	require.NoError(t, err)
	assert.Equal(t, 10.0, scale.Adjustment().Value())

	spin, err := b.Spin("spin_button")
	require.NoError(t, err)
	assert.Equal(t, 100.0, spin.Adjustment().Upper())

	label, err := b.Label("caption")
	require.NoError(t, err)
	assert.Equal(t, "hello", label.Text)

	button, err := b.Button("standalone")
	require.NoError(t, err)
	assert.Equal(t, "Press", button.Text)
}

func TestBuilder_LookupErrors(t *testing.T) {
	b, err := Load(newToolkit(t), []byte(syncDesc))
	require.NoError(t, err)

	_, err = b.Object("missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = b.Entry("missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = b.Entry("caption")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = b.Window("slider")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		desc string
	}{
		{"not_yaml", "objects: [unterminated"},
		{"empty", "objects: []"},
		{"unknown_kind", "objects:\n  - {id: x, kind: treeview}"},
		{"duplicate_id", "objects:\n  - {id: x, kind: label}\n  - {id: x, kind: button}"},
		{"nested_duplicate_id", "objects:\n  - id: a\n    kind: vbox\n    children:\n      - {id: a, kind: label}"},
		{"bad_id", "objects:\n  - {id: 'spin button', kind: label}"},
		{"nested_window", "objects:\n  - kind: vbox\n    children:\n      - {kind: window}"},
		{"leaf_with_children", "objects:\n  - kind: label\n    children:\n      - {kind: label}"},
		{"bad_range", "objects:\n  - {id: s, kind: scale, min: 10, max: 0, step: 1}"},
		{"window_two_children", "objects:\n  - kind: window\n    children:\n      - {kind: label}\n      - {kind: label}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newToolkit(t), []byte(tt.desc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_WindowWithoutToolkit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	_, err := Load(nil, []byte("objects:\n  - {id: w, kind: window}"))
	assert.Error(t, err)

	b, err := Load(nil, []byte("objects:\n  - {id: e, kind: entry, text: type here}"))
	require.NoError(t, err)
	e, err := b.Entry("e")
	require.NoError(t, err)
	assert.Equal(t, "type here", e.PlaceHolder)
}
