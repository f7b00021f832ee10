package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/event"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
	"github.com/osse101/HeroTracker_Go/internal/logger"
	"github.com/osse101/HeroTracker_Go/internal/repository"
)

// Config tunes the derived views of the tracker
type Config struct {
	MaxLevel        int
	MilestoneLevels []int
	CacheSize       int
	CacheTTL        time.Duration
}

// Service defines the hero tracker business logic
type Service interface {
	// Heroes
	ListHeroes(ctx context.Context) ([]domain.Hero, error)
	UpsertHero(ctx context.Context, hero domain.Hero) (*domain.Hero, error)
	DeleteHero(ctx context.Context, heroKey string) error

	// Badges
	UpsertBadge(ctx context.Context, badge domain.Badge) (*domain.BadgeUpdateResult, error)
	SetBadgeLevel(ctx context.Context, heroKey, badgeKey string, level int) (*domain.BadgeUpdateResult, error)
	RemoveBadge(ctx context.Context, heroKey, badgeKey string) (*domain.BadgeUpdateResult, error)

	// Goals
	SetGoal(ctx context.Context, scope string, targetLevel int) (*domain.GoalSummary, error)
	ClearGoal(ctx context.Context, scope string) error

	// Views
	GetHeroSummary(ctx context.Context, heroKey string) (*domain.HeroSummary, error)
	GetGlobalSummary(ctx context.Context) (*domain.GlobalSummary, error)
	GetAchievements(ctx context.Context) ([]domain.AchievementStatus, error)

	Table() *leveling.Table
	MaxLevel() int
	Shutdown(ctx context.Context) error
}

type service struct {
	repo         repository.Tracker
	table        *leveling.Table
	achievements []domain.Achievement
	eventBus     event.Bus
	cfg          Config

	heroCache   *summaryCache[domain.HeroSummary]
	globalCache *summaryCache[domain.GlobalSummary]

	// writes hold the lock exclusively so level-up detection and cache fills see a consistent state
	mu  sync.RWMutex
	now func() time.Time
}

// NewService creates a new tracker service. eventBus may be nil.
func NewService(repo repository.Tracker, table *leveling.Table, achievements []domain.Achievement, eventBus event.Bus, cfg Config) Service {
	if cfg.MaxLevel < 1 {
		cfg.MaxLevel = table.LastLevel()
	}
	return &service{
		repo:         repo,
		table:        table,
		achievements: achievements,
		eventBus:     eventBus,
		cfg:          cfg,
		heroCache:    newSummaryCache[domain.HeroSummary](cfg.CacheSize, cfg.CacheTTL),
		globalCache:  newSummaryCache[domain.GlobalSummary](1, cfg.CacheTTL),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Table() *leveling.Table {
	return s.table
}

func (s *service) MaxLevel() int {
	return s.cfg.MaxLevel
}

// Shutdown drops cached summaries
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.invalidate()

	log.Info(LogMsgShutdownComplete)
	return nil
}

func (s *service) invalidate() {
	s.heroCache.Clear()
	s.globalCache.Clear()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// lookupGoal returns nil when no goal is set for scope
func (s *service) lookupGoal(ctx context.Context, scope string) (*domain.Goal, error) {
	goal, err := s.repo.GetGoal(ctx, scope)
	if errors.Is(err, domain.ErrGoalNotSet) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *service) goalSummary(goal domain.Goal, totalXP int64) domain.GoalSummary {
	projection := s.table.ProjectGoal(totalXP, goal.TargetLevel, domain.CategoryXPPerLevel())
	estimate := s.table.EstimateTimeToLevel(totalXP, goal.TargetLevel, domain.XPPerLevelTimePlayed, domain.MinutesPerTimePlayedLevel)
	projection.TimeRemaining = &estimate
	return domain.GoalSummary{Goal: goal, Projection: projection}
}

// milestoneLevels is the configured milestones plus the goal level, capped at MaxLevel
func (s *service) milestoneLevels(goal *domain.Goal) []int {
	levels := make([]int, 0, len(s.cfg.MilestoneLevels)+1)
	for _, l := range s.cfg.MilestoneLevels {
		if l <= s.cfg.MaxLevel {
			levels = append(levels, l)
		}
	}
	if goal != nil && goal.TargetLevel <= s.cfg.MaxLevel {
		levels = append(levels, goal.TargetLevel)
	}
	return levels
}
