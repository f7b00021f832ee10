package main

import (
	"context"
	"fmt"

	"github.com/osse101/HeroTracker_Go/internal/bootstrap"
	"github.com/osse101/HeroTracker_Go/internal/config"
	"github.com/osse101/HeroTracker_Go/internal/validation"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (env + config files + db)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		PrintError("Environment check failed: %v", err)
		hasError = true
	} else {
		for _, w := range warnings {
			PrintWarning("%s", w)
		}
		PrintSuccess("Environment OK")
	}

	cfg, err := config.Load()
	if err != nil {
		PrintError("Configuration failed to load: %v", err)
		hasError = true
	} else if progression, err := bootstrap.LoadProgressionConfig(cfg, validation.NewSchemaValidator()); err != nil {
		PrintError("Progression config check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Curve OK (%d tiers), %d achievements", progression.Table.LastLevel(), len(progression.Achievements))
	}

	if err := pingOnce(context.Background(), dbConnString()); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
