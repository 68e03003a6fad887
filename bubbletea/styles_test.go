package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnotion"
	bt "github.com/fwojciec/mdnotion/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(mdnotion.DefaultTheme())

	assert.Equal(t, lipgloss.Color("5"), styles.Heading.GetForeground())
	assert.True(t, styles.Heading.GetBold())

	assert.Equal(t, lipgloss.Color("3"), styles.Code.GetForeground())
	assert.Equal(t, lipgloss.Color("6"), styles.Media.GetForeground())

	assert.Equal(t, lipgloss.Color("8"), styles.Muted.GetForeground())
	assert.True(t, styles.Muted.GetFaint())

	assert.Equal(t, lipgloss.Color("5"), styles.Accent.GetForeground())
	assert.True(t, styles.Accent.GetBold())

	assert.True(t, styles.Selected.GetReverse())
}

func TestNewStylesNegativeIndexYieldsNoColor(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(mdnotion.Theme{Heading: -1})

	assert.Equal(t, lipgloss.NoColor{}, styles.Heading.GetForeground())
}
