// Command msgboard serves a message board stored in a SQLite file.
package main

import (
	"context"
	"fmt"

	"demoapps/config"
	"demoapps/config/database"
	"demoapps/internal/bootstrap"
	messageHandler "demoapps/internal/message"
	"demoapps/internal/message/repository"
	"demoapps/internal/message/service"
	"demoapps/middleware"
	"demoapps/pkg/logger"
	"demoapps/router"
	"demoapps/server"

	"github.com/spf13/cobra"
)

func main() {
	root := bootstrap.NewRootCommand("msgboard", "Message board backed by a SQLite file", serve)
	root.AddCommand(initDBCommand())
	bootstrap.Execute(root)
}

func newRepository(cfg *config.Config) *repository.MessageRepository {
	return repository.NewMessageRepository(cfg.DatabaseFile, database.SQLiteOpener(cfg.DatabaseFile))
}

func serve(ctx context.Context, cfg *config.Config) error {
	repo := newRepository(cfg)
	if err := repo.EnsureReady(ctx); err != nil {
		return err
	}

	metrics := middleware.NewMetrics("msgboard")
	svc := service.NewMessageService(repo, metrics.NewCounter("messages_added_total", "Messages stored"))
	handler := messageHandler.NewMessageHandler(svc)

	return server.Run(ctx, cfg.ListenAddr, router.SetupMessageBoard(handler, metrics))
}

func initDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Initializes the database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.ConfigFor(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			repo := newRepository(cfg)
			if err := repo.EnsureDir(); err != nil {
				return err
			}
			if err := service.NewMessageService(repo, nil).InitDB(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Initialized the database.")
			return nil
		},
	}
}
