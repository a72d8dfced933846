package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/cli"
	"github.com/magabrotheeeer/health-companion/internal/client/config"
)

func main() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.New(cfg.ServerURL, cfg.RequestTimeout)
	app := cli.NewApp(client)
	app.Run(ctx)
}
