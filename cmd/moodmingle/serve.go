package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/codellyson/moodmingle/internal/auth"
	"github.com/codellyson/moodmingle/internal/config"
	"github.com/codellyson/moodmingle/internal/handler"
	"github.com/codellyson/moodmingle/internal/session"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := newLogger(os.Stdout, cfg.Log.Format, cfg.Log.Level)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			sessionManager := session.NewSessionManager(cfg.Session.Lifetime, cfg.Session.CookieName, !cfg.InsecureCookies)
			sessions := session.NewStore(sessionManager, cfg.AuthDelay, logger)

			router := handler.NewRouter(handler.Deps{
				Sessions:       sessions,
				AuthMiddleware: auth.NewMiddleware(sessions),
				Logger:         logger,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", slog.String("addr", cfg.HTTP.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

// newLogger builds the process logger. format is "json" or "text"; level is
// one of debug, info, warn or error.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid MOOD_LOG_LEVEL %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch format {
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h), nil
}
