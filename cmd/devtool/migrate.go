package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HeroTracker_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Run embedded goose migrations (up, down, status, version, redo, up-to N, down-to N)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, version, redo, up-to, down-to")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, dbConnString(), 2, time.Minute, time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	PrintHeader("migrate " + args[0])
	if err := database.RunMigrationCommand(ctx, pool, args[0], args[1:]...); err != nil {
		return err
	}
	PrintSuccess("Migration command %q complete", args[0])
	return nil
}
