package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skuma49/my-node-app/internal/config"
	"github.com/skuma49/my-node-app/internal/handlers"
	"github.com/skuma49/my-node-app/internal/logger"
	"github.com/skuma49/my-node-app/internal/repository"
	"github.com/skuma49/my-node-app/internal/server"
	"github.com/skuma49/my-node-app/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env files are optional; real env vars win either way.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// wire dependencies: volatile in-memory state, reset to seeds on restart
	repos := repository.NewRepository()
	services := service.NewService(repos, cfg.Env)
	apiHandler := handlers.NewHandler(services, log, cfg.Env)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	log.Infow("server started", "port", cfg.Port, "env", cfg.Env)

	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful
// shutdown, letting in-flight requests complete.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
