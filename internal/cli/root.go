package cli

import (
	"context"
	goflag "flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	// glog writes files under /tmp unless told otherwise.
	_ = goflag.Set("logtostderr", "true")

	cmd := &cobra.Command{
		Use:          "mathdrill",
		Short:        "Arithmetic drills with a practice loop for missed problems",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog refuses to log until the Go flag set has been parsed.
			return goflag.CommandLine.Parse(nil)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	cmd.AddCommand(NewDrillCmd(&configPath))
	cmd.AddCommand(NewServeCmd(&configPath, envPort))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewImportCmd(&configPath))
	return cmd
}
