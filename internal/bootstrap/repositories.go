package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroTracker_Go/internal/database/postgres"
	"github.com/osse101/HeroTracker_Go/internal/repository"
)

// Repositories holds the repository implementations used by the application.
type Repositories struct {
	Tracker repository.Tracker
}

// InitializeRepositories creates the Postgres-backed repositories.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Tracker: postgres.NewTrackerRepository(dbPool),
	}
}
