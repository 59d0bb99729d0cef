package main

import (
	"context"
	"fmt"
	"net/http"

	"mastery-dashboard/internal/config"
	"mastery-dashboard/internal/constants"
	"mastery-dashboard/internal/directory"
	fxmodules "mastery-dashboard/internal/fx"
	"mastery-dashboard/internal/middleware"
	"mastery-dashboard/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	dashboardServer *server.DashboardServer,
	dir *directory.Directory,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()
	dashboardServer.Register(mux)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := middleware.Recover(logger)(
		middleware.RequestID(logger)(
			c.Handler(mux),
		),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Warm the champion directory in the background; searches
			// degrade to placeholder names until it lands.
			go func() {
				warmCtx, cancel := context.WithTimeout(context.Background(), constants.DirectoryTimeout)
				defer cancel()
				if err := dir.Load(warmCtx); err != nil {
					logger.Warn().Err(err).Msg("champion directory warm-up failed")
				}
			}()

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
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
