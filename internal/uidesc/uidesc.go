// Package uidesc builds widget trees from YAML UI descriptions and hands
// out the constructed objects by name.
//
// A description is a list of top-level objects:
//
//	objects:
//	  - id: window
//	    kind: window
//	    text: Synchronizing Widgets
//	    width: 400
//	    height: 120
//	    children:
//	      - kind: vbox
//	        children:
//	          - {id: slider, kind: scale, min: 0, max: 100, step: 1}
//	          - {id: spin_button, kind: spin, min: 0, max: 100, step: 1}
//
// Kinds: window, vbox, hbox, label, button, entry, scale, spin, check, spinner.
// The text field is the window title, label/button/check caption, or entry
// placeholder, depending on the kind.
package uidesc

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"

	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/widgets"
	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

var (
	// ErrObjectNotFound is returned when no object has the requested name.
	ErrObjectNotFound = errors.New("object not found")
	// ErrWrongType is returned when a named object is not of the requested kind.
	ErrWrongType = errors.New("object has a different type")
)

// Node describes one object.
type Node struct {
	ID       string  `yaml:"id"`
	Kind     string  `yaml:"kind"`
	Text     string  `yaml:"text"`
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Step     float64 `yaml:"step"`
	Value    float64 `yaml:"value"`
	Digits   int     `yaml:"digits"`
	Children []Node  `yaml:"children"`
}

// Description is a parsed UI description.
type Description struct {
	Objects []Node `yaml:"objects"`
}

// Builder holds the objects constructed from a description.
type Builder struct {
	tk      *toolkit.Toolkit
	objects map[string]any
}

// Parse decodes a description without building it.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse UI description: %w", err)
	}
	if len(d.Objects) == 0 {
		return nil, errors.New("UI description has no objects")
	}

	return &d, nil
}

// Load parses data and constructs every object in it. Windows are created in tk.
func Load(tk *toolkit.Toolkit, data []byte) (*Builder, error) {
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}

	b := &Builder{tk: tk, objects: make(map[string]any)}
	for _, n := range d.Objects {
		if _, err := b.build(n, true); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Builder) build(n Node, topLevel bool) (any, error) {
	if n.ID != "" {
		if err := utils.ValidateObjectID(n.ID); err != nil {
			return nil, err
		}
		if _, dup := b.objects[n.ID]; dup {
			return nil, fmt.Errorf("duplicate object id %q", n.ID)
		}
		// Claimed before the children are built so a descendant can't reuse it.
		b.objects[n.ID] = nil
	}

	obj, err := b.construct(n, topLevel)
	if err != nil {
		if n.ID != "" {
			delete(b.objects, n.ID)
			return nil, fmt.Errorf("object %q: %w", n.ID, err)
		}
		return nil, err
	}

	if n.ID != "" {
		b.objects[n.ID] = obj
	}

	return obj, nil
}

func (b *Builder) construct(n Node, topLevel bool) (any, error) {
	switch n.Kind {
	case "window":
		if !topLevel {
			return nil, errors.New("window must be a top-level object")
		}
		return b.window(n)
	case "vbox", "hbox":
		children, err := b.children(n)
		if err != nil {
			return nil, err
		}
		if n.Kind == "vbox" {
			return container.NewVBox(children...), nil
		}
		return container.NewHBox(children...), nil
	}

	if len(n.Children) > 0 {
		return nil, fmt.Errorf("%s cannot have children", n.Kind)
	}

	switch n.Kind {
	case "label":
		return widget.NewLabel(n.Text), nil
	case "button":
		return widget.NewButton(n.Text, nil), nil
	case "entry":
		e := widget.NewEntry()
		e.SetPlaceHolder(n.Text)
		return e, nil
	case "check":
		return widget.NewCheck(n.Text, nil), nil
	case "spinner":
		return widget.NewProgressBarInfinite(), nil
	case "scale", "spin":
		adj, err := widgets.NewAdjustment(n.Value, n.Min, n.Max, n.Step)
		if err != nil {
			return nil, err
		}
		if n.Kind == "scale" {
			return widgets.NewScale(adj, n.Digits), nil
		}
		return widgets.NewSpinEntry(adj, n.Digits), nil
	default:
		return nil, fmt.Errorf("unknown object kind %q", n.Kind)
	}
}

func (b *Builder) window(n Node) (fyne.Window, error) {
	if b.tk == nil {
		return nil, errors.New("window requires a toolkit")
	}
	if len(n.Children) > 1 {
		return nil, errors.New("window takes a single child")
	}

	w := b.tk.NewWindow(n.Text)
	if len(n.Children) == 1 {
		child, err := b.build(n.Children[0], false)
		if err != nil {
			return nil, err
		}
		obj, ok := child.(fyne.CanvasObject)
		if !ok {
			return nil, fmt.Errorf("window child is a %T", child)
		}
		w.SetContent(obj)
	}
	if n.Width > 0 && n.Height > 0 {
		w.Resize(fyne.NewSize(n.Width, n.Height))
	}

	return w, nil
}

func (b *Builder) children(n Node) ([]fyne.CanvasObject, error) {
	objs := make([]fyne.CanvasObject, 0, len(n.Children))
	for _, c := range n.Children {
		child, err := b.build(c, false)
		if err != nil {
			return nil, err
		}
		obj, ok := child.(fyne.CanvasObject)
		if !ok {
			return nil, fmt.Errorf("child of %s is a %T", n.Kind, child)
		}
		objs = append(objs, obj)
	}

	return objs, nil
}

// Object returns the object named name.
func (b *Builder) Object(name string) (any, error) {
	obj, ok := b.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrObjectNotFound, name)
	}

	return obj, nil
}

// Get returns the object named name as a T.
func Get[T any](b *Builder, name string) (T, error) {
	var zero T
	obj, err := b.Object(name)
	if err != nil {
		return zero, err
	}

	typed, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrWrongType, name, obj, zero)
	}

	return typed, nil
}

// Window returns the window named name.
func (b *Builder) Window(name string) (fyne.Window, error) {
	return Get[fyne.Window](b, name)
}

// Button returns the button named name.
func (b *Builder) Button(name string) (*widget.Button, error) {
	return Get[*widget.Button](b, name)
}

// Entry returns the entry named name.
func (b *Builder) Entry(name string) (*widget.Entry, error) {
	return Get[*widget.Entry](b, name)
}

// Label returns the label named name.
func (b *Builder) Label(name string) (*widget.Label, error) {
	return Get[*widget.Label](b, name)
}

// Check returns the check (switch) named name.
func (b *Builder) Check(name string) (*widget.Check, error) {
	return Get[*widget.Check](b, name)
}

// Spinner returns the activity spinner named name.
func (b *Builder) Spinner(name string) (*widget.ProgressBarInfinite, error) {
	return Get[*widget.ProgressBarInfinite](b, name)
}

// Scale returns the scale named name.
func (b *Builder) Scale(name string) (*widgets.Scale, error) {
	return Get[*widgets.Scale](b, name)
}

// Spin returns the spin entry named name.
func (b *Builder) Spin(name string) (*widgets.SpinEntry, error) {
	return Get[*widgets.SpinEntry](b, name)
}
