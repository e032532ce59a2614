package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/textcompare"
	"github.com/fwojciec/textcompare/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ textcompare.Theme = lipgloss.DefaultTheme()
	})

	t.Run("matches the dark theme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
	})

	t.Run("returns styles with added marker coloring", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, lipgloss.DefaultTheme().Styles().Added.Foreground)
	})

	t.Run("returns styles with deleted marker coloring", func(t *testing.T) {
		t.Parallel()

		assert.NotEmpty(t, lipgloss.DefaultTheme().Styles().Deleted.Foreground)
	})
}

func TestLightTheme(t *testing.T) {
	t.Parallel()

	light := lipgloss.LightTheme().Styles()
	dark := lipgloss.DarkTheme().Styles()

	assert.NotEmpty(t, light.Added.Foreground)
	assert.NotEmpty(t, light.Deleted.Foreground)
	assert.NotEqual(t, dark, light)
}
