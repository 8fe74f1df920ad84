package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefs_AdjustFontClampsAtBounds(t *testing.T) {
	p := NewPrefs()
	assert.Equal(t, DefaultFontSize, p.FontSize())

	// Step up to the maximum.
	for p.FontSize() < MaxFontSize {
		_, changed := p.AdjustFont(Increase)
		assert.True(t, changed)
	}
	size, changed := p.AdjustFont(Increase)
	assert.False(t, changed, "increase past the maximum is a no-op")
	assert.Equal(t, MaxFontSize, size)

	// And back down to the minimum.
	for p.FontSize() > MinFontSize {
		_, changed := p.AdjustFont(Decrease)
		assert.True(t, changed)
	}
	size, changed = p.AdjustFont(Decrease)
	assert.False(t, changed, "decrease past the minimum is a no-op")
	assert.Equal(t, MinFontSize, size)
}

func TestPrefs_ToggleHighContrast(t *testing.T) {
	p := NewPrefs()
	assert.False(t, p.HighContrast())
	assert.True(t, p.ToggleHighContrast())
	assert.True(t, p.HighContrast())
	assert.False(t, p.ToggleHighContrast())
}
