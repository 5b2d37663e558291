package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router, err := app.router()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, ":"+app.cfg.Port, router)
		},
	}
	cmd.Flags().String("port", "", "Port to listen on (default 2000)")
	cmd.Flags().StringSlice("allowed-origins", nil, "CORS origins; empty allows any")
	cmd.Flags().Bool("disable-ai", false, "Serve without an AI provider")
	_ = app.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = app.v.BindPFlag("allowed_origins", cmd.Flags().Lookup("allowed-origins"))
	_ = app.v.BindPFlag("disable_ai", cmd.Flags().Lookup("disable-ai"))
	return cmd
}

func (a *App) router() (http.Handler, error) {
	cfg := api.Config{
		AllowedOrigins: a.cfg.AllowedOrigins,
		AIConfig:       a.cfg.AI,
		DisableAI:      a.cfg.DisableAI,
	}
	if !a.cfg.DisableAI && a.NewCompleter != nil {
		completer, err := a.NewCompleter(a.cfg.AI)
		if err != nil && !errors.Is(err, ai.ErrDisabled) {
			return nil, err
		}
		cfg.Completer = completer
	}
	server, err := api.NewServer(cfg)
	if err != nil {
		return nil, err
	}
	router, err := server.Router()
	if err != nil {
		return nil, err
	}
	return router, nil
}

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("starting idea-eval backend on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logrus.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
