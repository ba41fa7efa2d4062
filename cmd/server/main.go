package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"league-logos/internal/branding"
	"league-logos/internal/config"
	"league-logos/internal/constants"
	fxmodules "league-logos/internal/fx"
	"league-logos/internal/mcptools"
	"league-logos/internal/middleware"
	"league-logos/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	logoServer *server.LogoServer,
	telemetry *fxmodules.Telemetry,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           newRouter(logoServer, telemetry, cfg, db, logger),
		ReadHeaderTimeout: constants.ExternalAPITimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Str("version", version).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

func newRouter(logoServer *server.LogoServer, telemetry *fxmodules.Telemetry, cfg *config.Config, db *sql.DB, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	path, handler := server.NewLogoServiceHandler(logoServer)
	mux.Handle(path, handler)

	tools := mcptools.NewServer(branding.RequestBuilder{BaseURL: cfg.ImageBaseURL, Model: cfg.ImageModel}, version)
	mux.Handle("/mcp", mcptools.Handler(tools))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(ctx); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	if telemetry.Handler != nil {
		mux.Handle("GET /metrics", telemetry.Handler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID", "Grpc-Status", "Grpc-Message"},
	})

	return middleware.RequestID(logger, telemetry.Recorder)(c.Handler(mux))
}
