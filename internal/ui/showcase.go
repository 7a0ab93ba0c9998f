package ui

import (
	"fmt"
	"os/exec"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/ui/tabs"
	"github.com/andrei-cloud/widgetdemos/internal/uidesc"
	"github.com/andrei-cloud/widgetdemos/internal/widgets"
	"github.com/andrei-cloud/widgetdemos/pkg/logger"
	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

const (
	// ResponseNone is reported when the response dialog closes without a choice.
	ResponseNone = -1

	recentPrefKey = "recent_files"
	maxRecent     = 10

	// scriptContentType is the content type offered in the "open with" chooser.
	scriptContentType = "sh"
)

var (
	responses = []struct {
		label string
		id    int
	}{
		{"No", 0},
		{"Yes", 1},
		{"Yes!", 2},
	}

	aboutAuthors     = []string{"The widgetdemos authors"}
	aboutArtists     = []string{"Fyne theme icons"}
	aboutDocumenters = []string{"The widgetdemos authors"}

	// scriptHandlers are programs offered for opening shell scripts.
	scriptHandlers = []string{"sh", "bash", "dash", "zsh"}
)

// Showcase is the dialog and input widget gallery.
type Showcase struct {
	tk     *toolkit.Toolkit
	log    *logger.Logger
	window fyne.Window

	spinner  *widget.ProgressBarInfinite
	scale    *widgets.Scale
	spin     *widgets.SpinEntry
	entry    *widget.Entry
	toggle   *widget.Check
	eventLog *tabs.EventLog

	fontStyle fyne.TextStyle
	ctrlDown  bool

	// lastDialog is the most recently shown dialog.
	lastDialog interface{ Hide() }
	// responseButtons are the buttons of the last response dialog.
	responseButtons []*widget.Button
}

// NewShowcase builds the showcase window from its UI description.
func NewShowcase(tk *toolkit.Toolkit, log *logger.Logger) (*Showcase, error) {
	data, err := description("showcase.yaml")
	if err != nil {
		return nil, err
	}

	b, err := uidesc.Load(tk, data)
	if err != nil {
		return nil, err
	}

	s := &Showcase{tk: tk, log: log}
	if err := s.bind(b); err != nil {
		return nil, err
	}

	log.Info("Startup", "OK", "toolkit "+tk.Version())

	s.spinner.Start()

	s.scale.SetFormatValue(FormatScaleValue)
	s.spin.OnInput = s.onSpinInput
	s.toggle.OnChanged = s.onSwitch

	s.eventLog = tabs.NewEventLog()
	s.window.SetContent(container.NewVSplit(s.window.Content(), s.eventLog))

	s.window.Canvas().SetOnTypedKey(s.onKey)
	if dc, ok := s.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(e *fyne.KeyEvent) { s.trackCtrl(e.Name, true) })
		dc.SetOnKeyUp(func(e *fyne.KeyEvent) { s.trackCtrl(e.Name, false) })
	}

	s.window.SetOnClosed(func() {
		s.spinner.Stop()
		log.Info("WindowClosed", "OK", s.window.Title())
	})

	return s, nil
}

// bind looks up every object the showcase needs and wires the buttons.
func (s *Showcase) bind(b *uidesc.Builder) error {
	var err error
	if s.window, err = b.Window("window"); err != nil {
		return fmt.Errorf("couldn't get window: %w", err)
	}
	if s.spinner, err = b.Spinner("spinner"); err != nil {
		return fmt.Errorf("couldn't get spinner: %w", err)
	}
	if s.scale, err = b.Scale("scale"); err != nil {
		return fmt.Errorf("couldn't get scale: %w", err)
	}
	if s.spin, err = b.Spin("spin_button"); err != nil {
		return fmt.Errorf("couldn't get spin_button: %w", err)
	}
	if s.entry, err = b.Entry("entry"); err != nil {
		return fmt.Errorf("couldn't get entry: %w", err)
	}
	if s.toggle, err = b.Check("switch"); err != nil {
		return fmt.Errorf("couldn't get switch: %w", err)
	}

	buttons := map[string]func(){
		"button":        s.onResponseDialog,
		"button_font":   s.onFontChooser,
		"button_recent": s.onRecentChooser,
		"file_button":   s.onFileChooser,
		"app_button":    s.onAppChooser,
		"button_about":  s.onAbout,
	}
	for name, handler := range buttons {
		button, err := b.Button(name)
		if err != nil {
			return fmt.Errorf("couldn't get %s: %w", name, err)
		}
		button.OnTapped = handler
	}

	return nil
}

// Window returns the showcase window.
func (s *Showcase) Window() fyne.Window {
	return s.window
}

// EventLog returns the log panel. Use its Append method as a logger callback.
func (s *Showcase) EventLog() *tabs.EventLog {
	return s.eventLog
}

// FormatScaleValue renders a scale value as "<value>" with digits decimals.
func FormatScaleValue(digits int, value float64) string {
	return fmt.Sprintf("<%.*f>", digits, value)
}

// CircularInput parses spin button text, wrapping values at or beyond the
// 10..90 band to the opposite end.
func CircularInput(text string) (float64, error) {
	value, err := utils.ParseNumericInput(text)
	if err != nil {
		return 0, err
	}

	switch {
	case value >= 90:
		return 10, nil
	case value <= 10:
		return 90, nil
	default:
		return value, nil
	}
}

func (s *Showcase) onSpinInput(text string) (float64, error) {
	value, err := CircularInput(text)
	switch {
	case err != nil:
		s.log.Debug("SpinInput", "Rejected", fmt.Sprintf("%q", text))
	case value == 10 || value == 90:
		s.log.Debug("SpinInput", "Wrapped", fmt.Sprintf("%q -> %g", text, value))
	default:
		s.log.Debug("SpinInput", "OK", fmt.Sprintf("%q", text))
	}

	return value, err
}

// SwitchText is the entry text for a switch state.
func SwitchText(on bool) string {
	if on {
		return "Switch On"
	}

	return "Switch Off"
}

func (s *Showcase) onSwitch(on bool) {
	s.entry.SetText(SwitchText(on))
}

func (s *Showcase) onResponseDialog() {
	response := ResponseNone
	var d *dialog.CustomDialog

	buttons := make([]fyne.CanvasObject, len(responses))
	s.responseButtons = make([]*widget.Button, len(responses))
	for i, r := range responses {
		button := widget.NewButton(r.label, func() {
			response = r.id
			d.Hide()
		})
		buttons[i] = button
		s.responseButtons[i] = button
	}

	d = dialog.NewCustomWithoutButtons("Hello!", widget.NewLabel("Pick an answer."), s.window)
	d.SetButtons(buttons)
	d.SetOnClosed(func() {
		s.entry.SetText(fmt.Sprintf("Clicked %d", response))
	})

	s.lastDialog = d
	d.Show()
}

// FontStyle returns the style chosen in the font chooser.
func (s *Showcase) FontStyle() fyne.TextStyle {
	return s.fontStyle
}

func (s *Showcase) onFontChooser() {
	style := s.fontStyle
	preview := widget.NewLabel("The quick brown fox")
	preview.TextStyle = style

	update := func() {
		preview.TextStyle = style
		preview.Refresh()
	}
	bold := widget.NewCheck("Bold", func(on bool) { style.Bold = on; update() })
	bold.Checked = style.Bold
	italic := widget.NewCheck("Italic", func(on bool) { style.Italic = on; update() })
	italic.Checked = style.Italic
	mono := widget.NewCheck("Monospace", func(on bool) { style.Monospace = on; update() })
	mono.Checked = style.Monospace

	content := container.NewVBox(container.NewHBox(bold, italic, mono), preview)
	d := dialog.NewCustomConfirm("Font chooser test", "Select", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		s.fontStyle = style
		s.entry.TextStyle = style
		s.entry.Refresh()
		s.log.Info("FontChosen", "OK", fmt.Sprintf("%+v", style))
	}, s.window)

	s.lastDialog = d
	d.Show()
}

// Recent returns recently opened files, newest first.
func (s *Showcase) Recent() []string {
	return s.tk.App().Preferences().StringList(recentPrefKey)
}

// AddRecent records uri as the newest recent file.
func (s *Showcase) AddRecent(uri string) {
	recent := []string{uri}
	for _, r := range s.Recent() {
		if r != uri && len(recent) < maxRecent {
			recent = append(recent, r)
		}
	}
	s.tk.App().Preferences().SetStringList(recentPrefKey, recent)
}

func (s *Showcase) onRecentChooser() {
	recent := s.Recent()
	selected := -1

	list := widget.NewList(
		func() int { return len(recent) },
		func() fyne.CanvasObject { return widget.NewLabel("Template") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(recent[id])
		},
	)
	list.OnSelected = func(id widget.ListItemID) { selected = id }

	var content fyne.CanvasObject = list
	if len(recent) == 0 {
		content = widget.NewLabel("No recent files.")
	}

	d := dialog.NewCustomConfirm("Recent chooser test", "Ok", "Cancel", content, func(ok bool) {
		if ok && selected >= 0 {
			s.log.Info("RecentChosen", "OK", recent[selected])
		}
	}, s.window)
	d.Resize(fyne.NewSize(400, 300))

	s.lastDialog = d
	d.Show()
}

func (s *Showcase) onFileChooser() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			s.log.Error("FileChosen", "Failure", err.Error())
			return
		}
		if rc == nil {
			s.log.Debug("FileChosen", "Cancelled", "")
			return
		}
		defer rc.Close()

		uri := rc.URI().String()
		s.AddRecent(uri)
		s.log.Info("FileChosen", "OK", fmt.Sprintf("Files: [%s]", uri))
	}, s.window)

	s.lastDialog = d
	d.Show()
}

// ScriptHandlers returns the installed programs able to open content of type "sh".
func ScriptHandlers() []string {
	var found []string
	for _, name := range scriptHandlers {
		if path, err := exec.LookPath(name); err == nil {
			found = append(found, path)
		}
	}

	return found
}

func (s *Showcase) onAppChooser() {
	handlers := ScriptHandlers()
	options := append([]string(nil), handlers...)
	if len(options) == 0 {
		options = []string{"(no applications found)"}
	}

	choice := widget.NewRadioGroup(options, nil)
	d := dialog.NewCustomConfirm(
		fmt.Sprintf("Open %q files with", scriptContentType),
		"Select", "Cancel", choice,
		func(ok bool) {
			if ok && len(handlers) > 0 && choice.Selected != "" {
				s.log.Info("AppChosen", "OK", choice.Selected)
			}
		}, s.window)

	s.lastDialog = d
	d.Show()
}

func (s *Showcase) onAbout() {
	s.log.Info("About", "OK", "Authors: "+strings.Join(aboutAuthors, ", "))
	s.log.Info("About", "OK", "Artists: "+strings.Join(aboutArtists, ", "))
	s.log.Info("About", "OK", "Documenters: "+strings.Join(aboutDocumenters, ", "))

	form := widget.NewForm(
		widget.NewFormItem("Authors", widget.NewLabel(strings.Join(aboutAuthors, "\n"))),
		widget.NewFormItem("Artists", widget.NewLabel(strings.Join(aboutArtists, "\n"))),
		widget.NewFormItem("Documenters", widget.NewLabel(strings.Join(aboutDocumenters, "\n"))),
	)
	d := dialog.NewCustom("About widgetdemos", "Close", form, s.window)

	s.lastDialog = d
	d.Show()
}

func (s *Showcase) trackCtrl(name fyne.KeyName, down bool) {
	if name == desktop.KeyControlLeft || name == desktop.KeyControlRight {
		s.ctrlDown = down
	}
}

func (s *Showcase) onKey(e *fyne.KeyEvent) {
	s.log.Debug("KeyPress", "OK", fmt.Sprintf("key pressed: %s / ctrl=%t", e.Name, s.ctrlDown))
	s.log.Debug("KeyPress", "OK", "text: "+s.entry.Text)
	if s.ctrlDown {
		s.log.Info("KeyPress", "OK", "You pressed Ctrl!")
	}
}
