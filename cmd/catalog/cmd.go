package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Astemirdum/catalog-service/catalog/app"
	"github.com/Astemirdum/catalog-service/catalog/config"
)

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Action: func(context.Context, *cli.Command) error {
			app.Run(cfg)
			return nil
		},
	}
}

func migrateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.Migrate(ctx, cfg)
		},
	}
}

func createUserCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "createuser",
		Usage: "Create a login, optionally with catalog capabilities",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Login name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Password",
				Sources:  cli.EnvVars("CATALOG_USER_PASSWORD"),
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "superuser",
				Usage: "Grant every capability",
			},
			&cli.StringSliceFlag{
				Name:  "perm",
				Usage: "Capability codename, e.g. catalog.can_mark_returned (repeatable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.CreateUser(ctx, cfg,
				cmd.String("username"),
				cmd.String("password"),
				cmd.Bool("superuser"),
				cmd.StringSlice("perm"),
			)
		},
	}
}
