// Package bootstrap wires configuration, logging and the cobra command tree
// shared by the counter, msgboard and blog binaries.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"demoapps/config"
	"demoapps/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const envFileFlag = "env-file"

// ServeFunc runs one app until ctx is cancelled.
type ServeFunc func(ctx context.Context, cfg *config.Config) error

// Init loads configuration and applies its logging and gin settings.
func Init(envFile string) (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		return nil, fmt.Errorf("unknown GIN_MODE %q", cfg.GinMode)
	}
	return cfg, nil
}

// ConfigFor initializes from the --env-file flag visible to cmd.
func ConfigFor(cmd *cobra.Command) (*config.Config, error) {
	envFile := ""
	if f := cmd.Flag(envFileFlag); f != nil {
		envFile = f.Value.String()
	}
	return Init(envFile)
}

// NewRootCommand builds an app's root command. Serving is both the default
// action and the explicit "serve" subcommand.
func NewRootCommand(use, short string, serve ServeFunc) *cobra.Command {
	run := func(cmd *cobra.Command, _ []string) error {
		cfg, err := ConfigFor(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()
		return serve(cmd.Context(), cfg)
	}

	root := &cobra.Command{
		Use:          use,
		Short:        short,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         run,
	}
	root.PersistentFlags().String(envFileFlag, "", "dotenv file to load (default .env)")
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  run,
	})
	return root
}

// Execute runs root with a context cancelled on SIGINT or SIGTERM and exits
// non-zero on failure.
func Execute(root *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
