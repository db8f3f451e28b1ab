package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pinbook/internal/logger"
	"pinbook/internal/service"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the whole interface until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
