package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/mj-jones15/pastProjects/internal/app"
	"github.com/mj-jones15/pastProjects/internal/config"
	transport "github.com/mj-jones15/pastProjects/internal/transport/http"
	"github.com/spf13/cobra"
)

// NewServeCmd serves drills over websockets.
func NewServeCmd(configPath *string, envPort string) *cobra.Command {
	var portFlag string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve drills to one remote learner at a time over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, portFlag)
		},
	}
	cmd.Flags().StringVar(&portFlag, "port", envPort, "port to listen on")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	service, cleanup, err := buildService(ctx, cfg, app.Options{ShowAnswers: cfg.Drill.ShowAnswers})
	if err != nil {
		return err
	}
	defer cleanup()

	idle := config.Duration(cfg.Server.IdleTimeout, 10*time.Minute)
	ws := transport.NewWSHandler(service, idle)
	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           transport.NewRouter(ws),
		ReadHeaderTimeout: 15 * time.Second,
	}
	server.RegisterOnShutdown(ws.Close)

	errCh := make(chan error, 1)
	go func() {
		glog.Infof("serving drills on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		glog.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
