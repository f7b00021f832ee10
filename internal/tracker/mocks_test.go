package tracker

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Tracker
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hero), args.Error(1)
}

func (m *MockRepository) GetHero(ctx context.Context, heroKey string) (*domain.Hero, error) {
	args := m.Called(ctx, heroKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *MockRepository) UpsertHero(ctx context.Context, hero *domain.Hero) error {
	args := m.Called(ctx, hero)
	return args.Error(0)
}

func (m *MockRepository) DeleteHero(ctx context.Context, heroKey string) error {
	args := m.Called(ctx, heroKey)
	return args.Error(0)
}

func (m *MockRepository) ListBadges(ctx context.Context, heroKey string) ([]domain.Badge, error) {
	args := m.Called(ctx, heroKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

func (m *MockRepository) ListAllBadges(ctx context.Context) ([]domain.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

func (m *MockRepository) GetBadge(ctx context.Context, heroKey, badgeKey string) (*domain.Badge, error) {
	args := m.Called(ctx, heroKey, badgeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}

func (m *MockRepository) UpsertBadge(ctx context.Context, badge *domain.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockRepository) DeleteBadge(ctx context.Context, heroKey, badgeKey string) error {
	args := m.Called(ctx, heroKey, badgeKey)
	return args.Error(0)
}

func (m *MockRepository) GetGoal(ctx context.Context, scope string) (*domain.Goal, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockRepository) SetGoal(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockRepository) ClearGoal(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}
