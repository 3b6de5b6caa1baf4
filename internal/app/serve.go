package app

import (
	"context"
	"os/signal"
	"syscall"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/server"
)

// runServe starts the HTTP API and blocks until a signal arrives or the
// listener fails. The compute timeout does not apply to server mode.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.Serve, a.Logger)
	if err := srv.Run(ctx); err != nil {
		a.Logger.Error("server stopped", err, logging.String("addr", a.Config.Serve))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
