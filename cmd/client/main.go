package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/cli"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/config"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
