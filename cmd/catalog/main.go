package main

import (
	"context"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/catalog-service/catalog/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	cmd := &cli.Command{
		Name:  "catalog",
		Usage: "Local library catalog service",
		Commands: []*cli.Command{
			serveCommand(cfg),
			migrateCommand(cfg),
			createUserCommand(cfg),
		},
		DefaultCommand: "serve",
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		stdLog.Fatal(err)
	}
}
