package client

import (
	"context"
	"os/signal"
	"syscall"

	"pinbook/internal/logger"
	"pinbook/internal/service"
	"pinbook/internal/tui"
)

// App ties the service layer and the terminal UI together for one run of
// the program.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp constructs the client application over already-wired services and
// UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run starts the UI and blocks until the user quits or the process receives
// an interrupt. In-flight commands observe the cancellation through the
// shared context.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Msg("starting client ui")

	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("client ui stopped")
	return nil
}
