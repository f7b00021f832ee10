package tracker

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

// GetHeroSummary returns one hero's XP, level, goal and milestones
func (s *service) GetHeroSummary(ctx context.Context, heroKey string) (*domain.HeroSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.heroCache.Get(heroKey); ok {
		return cached, nil
	}

	hero, err := s.repo.GetHero(ctx, heroKey)
	if err != nil {
		return nil, err
	}
	badges, err := s.repo.ListBadges(ctx, heroKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	if badges == nil {
		badges = []domain.Badge{}
	}

	totalXP := leveling.ComputeTotalXP(domain.Contributions(badges))
	details := s.table.LevelDetails(totalXP)

	summary := &domain.HeroSummary{
		Hero:    *hero,
		Badges:  badges,
		TotalXP: totalXP,
		Level:   details,
	}

	goal, err := s.lookupGoal(ctx, heroKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	if goal != nil {
		gs := s.goalSummary(*goal, totalXP)
		summary.Goal = &gs
	}
	summary.Milestones = s.table.MilestoneProgress(details.Level, s.cfg.MaxLevel, s.milestoneLevels(goal))

	s.heroCache.Set(heroKey, summary)
	return summary, nil
}

// GetGlobalSummary returns the combined view over every hero
func (s *service) GetGlobalSummary(ctx context.Context) (*domain.GlobalSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.globalCache.Get(globalCacheKey); ok {
		return cached, nil
	}

	heroes, err := s.repo.ListHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	badges, err := s.repo.ListAllBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	totals := heroTotals(badges)
	rows := make([]domain.HeroLevel, 0, len(heroes))
	for _, h := range heroes {
		xp := totals[h.Key]
		rows = append(rows, domain.HeroLevel{
			HeroKey:     h.Key,
			DisplayName: h.DisplayName,
			TotalXP:     xp,
			Level:       s.table.Level(xp),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalXP != rows[j].TotalXP {
			return rows[i].TotalXP > rows[j].TotalXP
		}
		return rows[i].HeroKey < rows[j].HeroKey
	})

	totalXP := leveling.ComputeTotalXP(domain.Contributions(badges))
	details := s.table.LevelDetails(totalXP)

	summary := &domain.GlobalSummary{
		Heroes:       rows,
		TotalXP:      totalXP,
		Level:        details,
		MaxLevel:     s.cfg.MaxLevel,
		TimeToMax:    s.table.EstimateTimeToLevel(totalXP, s.cfg.MaxLevel, domain.XPPerLevelTimePlayed, domain.MinutesPerTimePlayedLevel),
		XPByCategory: xpByCategory(badges),
	}

	goal, err := s.lookupGoal(ctx, domain.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	if goal != nil {
		gs := s.goalSummary(*goal, totalXP)
		summary.Goal = &gs
	}
	summary.Milestones = s.table.MilestoneProgress(details.Level, s.cfg.MaxLevel, s.milestoneLevels(goal))

	s.globalCache.Set(globalCacheKey, summary)
	return summary, nil
}

// GetAchievements evaluates every configured achievement against the current badges
func (s *service) GetAchievements(ctx context.Context) ([]domain.AchievementStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	heroes, err := s.repo.ListHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	badges, err := s.repo.ListAllBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	return evaluateAchievements(s.table, s.achievements, newSnapshot(s.table, heroes, badges)), nil
}

func xpByCategory(badges []domain.Badge) map[domain.BadgeCategory]int64 {
	grouped := make(map[domain.BadgeCategory][]leveling.Contribution)
	for _, b := range badges {
		grouped[b.Category] = append(grouped[b.Category], b.Contribution())
	}
	out := make(map[domain.BadgeCategory]int64, len(grouped))
	for category, contributions := range grouped {
		out[category] = leveling.ComputeTotalXP(contributions)
	}
	return out
}
