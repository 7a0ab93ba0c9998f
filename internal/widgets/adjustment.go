// Package widgets holds value-range widgets shared by the demo windows.
package widgets

import (
	"math"

	"github.com/andrei-cloud/widgetdemos/pkg/utils"
)

// Adjustment is a bounded numeric value with change listeners. It is the
// model shared by Scale and SpinEntry.
type Adjustment struct {
	value     float64
	lower     float64
	upper     float64
	step      float64
	listeners []func(*Adjustment)
}

// NewAdjustment creates an adjustment over [lower, upper]. value is clamped.
func NewAdjustment(value, lower, upper, step float64) (*Adjustment, error) {
	if err := utils.ValidateRange(lower, upper, step); err != nil {
		return nil, err
	}

	a := &Adjustment{lower: lower, upper: upper, step: step}
	a.value = a.clamp(value)

	return a, nil
}

// Value returns the current value.
func (a *Adjustment) Value() float64 { return a.value }

// Lower returns the minimum value.
func (a *Adjustment) Lower() float64 { return a.lower }

// Upper returns the maximum value.
func (a *Adjustment) Upper() float64 { return a.upper }

// Step returns the increment used by StepUp and StepDown.
func (a *Adjustment) Step() float64 { return a.step }

// SetValue clamps v into range and notifies listeners if the value changed.
// Setting the current value is a no-op, which lets two adjustments mirror
// each other without looping.
func (a *Adjustment) SetValue(v float64) {
	v = a.clamp(v)
	if v == a.value {
		return
	}
	a.value = v

	for _, f := range a.listeners {
		f(a)
	}
}

// StepUp increases the value by one step.
func (a *Adjustment) StepUp() { a.SetValue(a.value + a.step) }

// StepDown decreases the value by one step.
func (a *Adjustment) StepDown() { a.SetValue(a.value - a.step) }

// OnValueChanged registers f to run after every value change.
func (a *Adjustment) OnValueChanged(f func(*Adjustment)) {
	a.listeners = append(a.listeners, f)
}

func (a *Adjustment) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return a.value
	}

	return math.Min(a.upper, math.Max(a.lower, v))
}

// Interlock keeps a and b at the same value: a change to either is copied to the other.
func Interlock(a, b *Adjustment) {
	a.OnValueChanged(func(src *Adjustment) { b.SetValue(src.Value()) })
	b.OnValueChanged(func(src *Adjustment) { a.SetValue(src.Value()) })
}
