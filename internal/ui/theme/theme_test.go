package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	defer SetTheme(Nord)

	assert.True(t, Apply("gruvbox"))
	assert.Equal(t, "gruvbox", Current.Theme.Name)

	assert.False(t, Apply("solarized"))
	assert.Equal(t, "gruvbox", Current.Theme.Name)
}

func TestNextCycles(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"nord", "dracula", "gruvbox", "catppuccin"}, names)
	assert.Equal(t, "dracula", Next("nord").Name)
	assert.Equal(t, "nord", Next("catppuccin").Name)
	assert.Equal(t, "nord", Next("unknown").Name)
}
