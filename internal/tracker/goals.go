package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// SetGoal sets the target level for a hero, or for every hero when scope is domain.GlobalScope
func (s *service) SetGoal(ctx context.Context, scope string, targetLevel int) (*domain.GoalSummary, error) {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return nil, fmt.Errorf("%w: goal scope is required", domain.ErrInvalidInput)
	}
	if targetLevel < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidGoalLevel, targetLevel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	totalXP, err := s.scopeXP(ctx, scope)
	if err != nil {
		return nil, err
	}

	goal := domain.Goal{Scope: scope, TargetLevel: targetLevel, UpdatedAt: s.now()}
	if err := s.repo.SetGoal(ctx, &goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	s.invalidate()

	summary := s.goalSummary(goal, totalXP)
	return &summary, nil
}

// ClearGoal removes the goal for scope
func (s *service) ClearGoal(ctx context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearGoal(ctx, scope); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// scopeXP is the total XP of one hero, or of every hero for the global scope
func (s *service) scopeXP(ctx context.Context, scope string) (int64, error) {
	if scope == domain.GlobalScope {
		badges, err := s.repo.ListAllBadges(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list badges: %w", err)
		}
		return leveling.ComputeTotalXP(domain.Contributions(badges)), nil
	}

	if _, err := s.repo.GetHero(ctx, scope); err != nil {
		return 0, err
	}
	badges, err := s.repo.ListBadges(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("failed to list badges: %w", err)
	}
	return leveling.ComputeTotalXP(domain.Contributions(badges)), nil
}
