// Command blog serves the newest posts from a PostgreSQL database.
package main

import (
	"context"

	"demoapps/config"
	"demoapps/config/database"
	"demoapps/internal/bootstrap"
	postHandler "demoapps/internal/post"
	"demoapps/internal/post/repository"
	"demoapps/internal/post/service"
	"demoapps/middleware"
	"demoapps/pkg/logger"
	"demoapps/router"
	"demoapps/server"
)

func main() {
	bootstrap.Execute(bootstrap.NewRootCommand("blog", "Blog front page read from PostgreSQL", serve))
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := database.Postgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Sugar.Warnf("Failed to close database: %v", cerr)
		}
	}()

	svc := service.NewPostService(repository.NewPostRepository(db))
	handler := postHandler.NewPostHandler(svc)

	return server.Run(ctx, cfg.ListenAddr, router.SetupBlog(handler, middleware.NewMetrics("blog")))
}
