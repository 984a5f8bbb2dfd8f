package main

import (
	"context"
	"log"

	"github.com/mkarlovs/snooze/internal/client/cli"
	"github.com/mkarlovs/snooze/internal/client/config"
	"github.com/mkarlovs/snooze/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx := context.Background()
	app, cleanup, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app.Run(ctx)
}
