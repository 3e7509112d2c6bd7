package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server with a bounded shutdown window.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed, closing server", "error", err)
		if err := server.Close(); err != nil {
			log.Error("Failed to close server", "error", err)
		}
		return
	}

	log.Info("Server stopped gracefully")
}
