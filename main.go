package main

import (
	"context"

	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/shutdown"
	"shipping-quote-service/assembly"
	"shipping-quote-service/conf"
)

func main() {
	ctx := context.Background()

	logger, err := log.New(log.WithLevel(log.InfoLevel))
	if err != nil {
		panic(err)
	}

	config, err := conf.FromEnv()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	app, err := assembly.New(config, logger)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	shutdown.On(func() {
		logger.Info(ctx, "starting shutdown")
		err := app.Close()
		if err != nil {
			logger.Error(ctx, err)
		}
		logger.Info(ctx, "shutdown completed")
	})

	err = app.Run(ctx)
	if err != nil {
		_ = app.Close()
		logger.Fatal(ctx, err)
	}
}
