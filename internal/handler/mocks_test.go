package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockTrackerService mocks tracker.Service
type MockTrackerService struct {
	mock.Mock
}

func (m *MockTrackerService) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hero), args.Error(1)
}

func (m *MockTrackerService) UpsertHero(ctx context.Context, hero domain.Hero) (*domain.Hero, error) {
	args := m.Called(ctx, hero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *MockTrackerService) DeleteHero(ctx context.Context, heroKey string) error {
	args := m.Called(ctx, heroKey)
	return args.Error(0)
}

func (m *MockTrackerService) UpsertBadge(ctx context.Context, badge domain.Badge) (*domain.BadgeUpdateResult, error) {
	args := m.Called(ctx, badge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BadgeUpdateResult), args.Error(1)
}

func (m *MockTrackerService) SetBadgeLevel(ctx context.Context, heroKey, badgeKey string, level int) (*domain.BadgeUpdateResult, error) {
	args := m.Called(ctx, heroKey, badgeKey, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BadgeUpdateResult), args.Error(1)
}

func (m *MockTrackerService) RemoveBadge(ctx context.Context, heroKey, badgeKey string) (*domain.BadgeUpdateResult, error) {
	args := m.Called(ctx, heroKey, badgeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BadgeUpdateResult), args.Error(1)
}

func (m *MockTrackerService) SetGoal(ctx context.Context, scope string, targetLevel int) (*domain.GoalSummary, error) {
	args := m.Called(ctx, scope, targetLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalSummary), args.Error(1)
}

func (m *MockTrackerService) ClearGoal(ctx context.Context, scope string) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

func (m *MockTrackerService) GetHeroSummary(ctx context.Context, heroKey string) (*domain.HeroSummary, error) {
	args := m.Called(ctx, heroKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeroSummary), args.Error(1)
}

func (m *MockTrackerService) GetGlobalSummary(ctx context.Context) (*domain.GlobalSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalSummary), args.Error(1)
}

func (m *MockTrackerService) GetAchievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AchievementStatus), args.Error(1)
}

func (m *MockTrackerService) Table() *leveling.Table {
	return leveling.StandardTable()
}

func (m *MockTrackerService) MaxLevel() int {
	return 100
}

func (m *MockTrackerService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
