/*
main.go - Settlement reporting service entry point

STARTUP SEQUENCE:
  1. Load environment configuration (.env merged when present)
  2. Resolve the working-day calendar
  3. Configure the HTTP router
  4. Start server with graceful shutdown

ENVIRONMENT:
  PORT         HTTP server port (default: 8080)
  CORS_ORIGIN  Allowed CORS origin (default: *)
  LOG_LEVEL    zerolog level (default: info)
  CALENDARS    Optional JSON calendar override file

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait for active
  requests (30s timeout), exit.

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment parsing
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/warp/settlement-engine/api"
	"github.com/warp/settlement-engine/config"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	cal, err := cfg.Calendar()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load calendar configuration")
	}

	handler := api.NewHandler(cal, log)
	router := api.NewRouter(handler, cfg.CORSOrigin)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
