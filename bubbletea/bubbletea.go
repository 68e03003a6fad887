// Package bubbletea provides a Bubble Tea TUI for browsing a token stream.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows m full screen and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}
