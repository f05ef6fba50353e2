package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dkoroteev/streethunt/internal/cli"
	"github.com/dkoroteev/streethunt/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
