package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefvanboven/mino-companion/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	app, err := ctx.setup()
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx.Store, app.Engine, app.Robot)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
