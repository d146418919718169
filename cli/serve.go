package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corkboard/app/config"
	"corkboard/app/logger"
	"corkboard/app/middleware"
	"corkboard/app/repositories"
	"corkboard/app/routes"
	"corkboard/app/services"
	"corkboard/app/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bulletin board HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log := logger.New(cfg.Logger)

		store := storage.NewStore(cfg.Storage.DataDir)
		locks := storage.NewLockTable()
		postRepo := repositories.NewFilePostRepository(store, locks)
		commentRepo := repositories.NewFileCommentRepository(store, locks)

		deps := routes.Deps{
			Posts:    services.NewPostService(postRepo, commentRepo),
			Comments: services.NewCommentService(commentRepo),
			Logger:   log,
		}
		if cfg.Metrics.Enabled {
			deps.Metrics = middleware.NewMetrics()
		}

		server := &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      routes.Setup(deps),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", server.Addr).Str("data_dir", store.Dir()).Msg("starting server")
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
