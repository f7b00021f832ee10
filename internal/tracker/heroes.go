package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

func (s *service) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	heroes, err := s.repo.ListHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	if heroes == nil {
		heroes = []domain.Hero{}
	}
	return heroes, nil
}

// UpsertHero creates a hero or updates its display name and role
func (s *service) UpsertHero(ctx context.Context, hero domain.Hero) (*domain.Hero, error) {
	hero.Key = strings.TrimSpace(hero.Key)
	if hero.Key == "" || hero.Key == domain.GlobalScope {
		return nil, fmt.Errorf("%w: hero key %q", domain.ErrInvalidInput, hero.Key)
	}
	if !domain.IsValidRole(hero.Role) {
		return nil, fmt.Errorf("%w: role %q", domain.ErrInvalidInput, hero.Role)
	}
	if strings.TrimSpace(hero.DisplayName) == "" {
		hero.DisplayName = hero.Key
	}
	if hero.CreatedAt.IsZero() {
		hero.CreatedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpsertHero(ctx, &hero); err != nil {
		return nil, fmt.Errorf("failed to save hero: %w", err)
	}
	s.invalidate()
	return &hero, nil
}

// DeleteHero removes a hero together with its badges and goal
func (s *service) DeleteHero(ctx context.Context, heroKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteHero(ctx, heroKey); err != nil {
		return err
	}
	s.invalidate()
	return nil
}
