package repository

import (
	"context"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// Tracker defines the data access interface for heroes, badges and goals
type Tracker interface {
	ListHeroes(ctx context.Context) ([]domain.Hero, error)
	GetHero(ctx context.Context, heroKey string) (*domain.Hero, error)
	UpsertHero(ctx context.Context, hero *domain.Hero) error
	DeleteHero(ctx context.Context, heroKey string) error

	ListBadges(ctx context.Context, heroKey string) ([]domain.Badge, error)
	ListAllBadges(ctx context.Context) ([]domain.Badge, error)
	GetBadge(ctx context.Context, heroKey, badgeKey string) (*domain.Badge, error)
	UpsertBadge(ctx context.Context, badge *domain.Badge) error
	DeleteBadge(ctx context.Context, heroKey, badgeKey string) error

	GetGoal(ctx context.Context, scope string) (*domain.Goal, error)
	SetGoal(ctx context.Context, goal *domain.Goal) error
	ClearGoal(ctx context.Context, scope string) error
}
