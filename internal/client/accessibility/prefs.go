// Package accessibility tracks the visual accessibility preferences the
// client can adjust at runtime: font size stepping and the high-contrast
// toggle.
package accessibility

// Font size bounds, in pixels. Steps outside the bounds are ignored.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	FontStep        = 2
	DefaultFontSize = 16
)

// Direction of a font-size adjustment.
type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Prefs holds the current preference state. The zero value is not useful;
// construct with NewPrefs.
type Prefs struct {
	fontSize     int
	highContrast bool
}

func NewPrefs() *Prefs {
	return &Prefs{fontSize: DefaultFontSize}
}

// AdjustFont steps the font size by FontStep in the given direction,
// clamped to [MinFontSize, MaxFontSize]. It returns the resulting size and
// whether the size actually changed; a step that would leave the bounds is
// a no-op.
func (p *Prefs) AdjustFont(d Direction) (size int, changed bool) {
	next := p.fontSize + FontStep
	if d == Decrease {
		next = p.fontSize - FontStep
	}
	if next < MinFontSize || next > MaxFontSize {
		return p.fontSize, false
	}
	p.fontSize = next
	return p.fontSize, true
}

// FontSize returns the current font size in pixels.
func (p *Prefs) FontSize() int {
	return p.fontSize
}

// ToggleHighContrast flips high-contrast mode and returns the new state.
func (p *Prefs) ToggleHighContrast() bool {
	p.highContrast = !p.highContrast
	return p.highContrast
}

// HighContrast reports whether high-contrast mode is on.
func (p *Prefs) HighContrast() bool {
	return p.highContrast
}
