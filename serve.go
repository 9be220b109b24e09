package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Scalingo/sclng-github-skills/controller"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var listenPort string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve skills over HTTP",
		Long: `Start an HTTP server exposing:
  GET  /skills?top=20&exclude=repo-a&exclude=repo-b
  POST /skills {"top": 20, "exclude": ["repo-a"]}
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), listenPort)
		},
	}

	cmd.Flags().StringVar(&listenPort, "port", "", "Port to listen on (overrides API.ListenPort)")

	return cmd
}

func runServe(ctx context.Context, listenPort string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, skillsService, err := bootstrap(ctx, os.Stderr)
	if err != nil {
		return err
	}

	if listenPort != "" {
		cfg.API.ListenPort = listenPort
	}

	// setup server and define all routes
	gin.SetMode(gin.ReleaseMode)
	apiController := controller.NewAPIController(*cfg, skillsService)

	server := &http.Server{
		Addr:              ":" + cfg.API.ListenPort,
		Handler:           controller.NewRouter(apiController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("server listening on port " + cfg.API.ListenPort)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// wait for interrupt signal to gracefully shut down the server with a timeout of 15 seconds.
	// kill default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.WithError(err).Error("error while starting server")
		return err
	case <-quit:
	}

	log.Info("SIGINT, SIGTERM received, will shut down server ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Application stopped gracefully !")
	return nil
}
