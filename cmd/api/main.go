package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"relay/internal/http/handlers"
	"relay/internal/http/httpapi"
	"relay/internal/infra"
	"relay/internal/providers/falai"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client := falai.NewClient(falai.Options{
		APIKey:         cfg.FalKey,
		Endpoint:       cfg.FalEndpoint,
		Logger:         &logger,
		RequestTimeout: cfg.UpstreamTimeout,
	})
	if !client.HasCredentials() {
		// Startup still succeeds; each /retouch call will fail with a
		// configuration error until the key is provided.
		logger.Warn().Msg("FAL_KEY is not set; /retouch will return 500 until it is configured")
	}

	app := handlers.NewApp(cfg, logger, client)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("retouch relay listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
