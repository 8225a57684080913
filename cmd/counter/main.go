// Command counter serves a page that counts its own visits in a flat file.
package main

import (
	"context"

	"demoapps/config"
	"demoapps/internal/bootstrap"
	counterHandler "demoapps/internal/counter"
	"demoapps/internal/counter/repository"
	"demoapps/internal/counter/service"
	"demoapps/middleware"
	"demoapps/router"
	"demoapps/server"
	"demoapps/socket"
)

func main() {
	bootstrap.Execute(bootstrap.NewRootCommand("counter", "Page-hit counter persisted to a text file", serve))
}

func serve(ctx context.Context, cfg *config.Config) error {
	repo := repository.NewCounterRepository(repository.FileBackend{Path: cfg.CountFile})
	if err := repo.EnsureReady(); err != nil {
		return err
	}

	hub := socket.NewHub(repo.ReadCount)
	go hub.Run(ctx)

	metrics := middleware.NewMetrics("counter")
	svc := service.NewCounterService(repo, hub, metrics.NewCounter("counter_visits_total", "Root page visits counted"))
	handler := counterHandler.NewCounterHandler(svc, hub)

	return server.Run(ctx, cfg.ListenAddr, router.SetupCounter(handler, metrics))
}
