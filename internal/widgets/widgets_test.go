// nolint:all // test package
package widgets

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdj(t *testing.T, value, lower, upper, step float64) *Adjustment {
	t.Helper()
	a, err := NewAdjustment(value, lower, upper, step)
	require.NoError(t, err)

	return a
}

func TestNewAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		lower     float64
		upper     float64
		step      float64
		wantValue float64
		wantErr   bool
	}{
		{"in_range", 50, 0, 100, 1, 50, false},
		{"clamped_high", 150, 0, 100, 1, 100, false},
		{"clamped_low", -5, 0, 100, 1, 0, false},
		{"inverted_range", 0, 10, 0, 1, 0, true},
		{"zero_step", 0, 0, 10, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdjustment(tt.value, tt.lower, tt.upper, tt.step)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, a.Value())
		})
	}
}

func TestAdjustment_SetValueNotifiesOnChangeOnly(t *testing.T) {
	a := newAdj(t, 0, 0, 10, 1)
	var seen []float64
	a.OnValueChanged(func(adj *Adjustment) { seen = append(seen, adj.Value()) })

	a.SetValue(5)
	a.SetValue(5)
	a.SetValue(20)
	a.SetValue(math.NaN())
	a.StepDown()
	a.StepUp()

	assert.Equal(t, []float64{5, 10, 9, 10}, seen)
}

func TestInterlock(t *testing.T) {
	slider := newAdj(t, 0, 0, 100, 1)
	spin := newAdj(t, 0, 0, 100, 1)
	calls := 0
	spin.OnValueChanged(func(*Adjustment) { calls++ })

	Interlock(slider, spin)

	slider.SetValue(42)
	assert.Equal(t, 42.0, spin.Value())

	spin.SetValue(7)
	assert.Equal(t, 7.0, slider.Value())
	assert.Equal(t, 2, calls)
}

func TestScale_FormatsValue(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	adj := newAdj(t, 12.345, 0, 100, 0.5)
	s := NewScale(adj, 1)
	assert.Equal(t, "12.3", s.ValueText())

	s.SetFormatValue(func(digits int, value float64) string {
		return fmt.Sprintf("<%.*f>", digits, value)
	})
	assert.Equal(t, "<12.3>", s.ValueText())

	adj.SetValue(30)
	assert.Equal(t, "<30.0>", s.ValueText())
	assert.Equal(t, 30.0, s.Slider().Value)

	s.Slider().OnChanged(40)
	assert.Equal(t, 40.0, adj.Value())
}

func TestSpinEntry_Commit(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	tests := []struct {
		name    string
		text    string
		onInput func(string) (float64, error)
		want    float64
		wantTxt string
	}{
		{"valid", "25", nil, 25, "25"},
		{"clamped", "500", nil, 100, "100"},
		{"rejected_restores_text", "abc", nil, 50, "50"},
		{
			name: "custom_parser",
			text: "anything",
			onInput: func(string) (float64, error) {
				return 12, nil
			},
			want: 12, wantTxt: "12",
		},
		{
			name: "custom_parser_error",
			text: "11",
			onInput: func(string) (float64, error) {
				return 0, errors.New("nope")
			},
			want: 50, wantTxt: "50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := newAdj(t, 50, 0, 100, 1)
			s := NewSpinEntry(adj, 0)
			s.OnInput = tt.onInput

			s.SetText(tt.text)
			s.Commit()

			assert.Equal(t, tt.want, adj.Value())
			assert.Equal(t, tt.wantTxt, s.Text())
		})
	}
}

func TestSpinEntry_Buttons(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	adj := newAdj(t, 1, 0, 2, 0.5)
	s := NewSpinEntry(adj, 1)
	assert.Equal(t, "1.0", s.Text())

	test.Tap(s.up)
	assert.Equal(t, "1.5", s.Text())

	test.Tap(s.down)
	test.Tap(s.down)
	test.Tap(s.down)
	test.Tap(s.down)
	assert.Equal(t, 0.0, adj.Value())
	assert.Equal(t, "0.0", s.Text())
}
