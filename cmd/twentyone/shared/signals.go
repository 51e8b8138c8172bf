package shared

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// SetupSignalHandler returns a context cancelled by the first interrupt.
// The handler is removed after that, so a second interrupt kills the
// process even while it is blocked waiting for input.
func SetupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ctx.Done()
		if logger != nil {
			logger.Info("Received signal, stopping after the current turn")
		}
		stop()
	}()

	return ctx, stop
}
