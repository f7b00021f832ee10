package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/event"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
	"github.com/osse101/HeroTracker_Go/internal/logger"
)

// normalizeKeys trims both keys and requires them to be non-empty
func normalizeKeys(heroKey, badgeKey string) (string, string, error) {
	heroKey, badgeKey = strings.TrimSpace(heroKey), strings.TrimSpace(badgeKey)
	if heroKey == "" || badgeKey == "" {
		return heroKey, badgeKey, fmt.Errorf("%w: hero and badge keys are required", domain.ErrInvalidInput)
	}
	return heroKey, badgeKey, nil
}

// normalizeBadge validates a badge and pins the XP per level of fixed categories
func normalizeBadge(b domain.Badge) (domain.Badge, error) {
	var err error
	if b.HeroKey, b.BadgeKey, err = normalizeKeys(b.HeroKey, b.BadgeKey); err != nil {
		return b, err
	}
	if !b.Category.IsValid() {
		return b, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, b.Category)
	}
	if b.Level < 1 {
		return b, fmt.Errorf("%w: %d", domain.ErrInvalidLevel, b.Level)
	}

	if fixed, ok := b.Category.FixedXPPerLevel(); ok {
		b.XPPerLevel = fixed
	} else if b.XPPerLevel <= 0 {
		return b, fmt.Errorf("%w: %d", domain.ErrInvalidXPPerLevel, b.XPPerLevel)
	}

	if strings.TrimSpace(b.DisplayName) == "" {
		b.DisplayName = b.BadgeKey
	}
	return b, nil
}

// UpsertBadge creates a badge or replaces its category, XP per level and level
func (s *service) UpsertBadge(ctx context.Context, badge domain.Badge) (*domain.BadgeUpdateResult, error) {
	badge, err := normalizeBadge(badge)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyBadge(ctx, badge, false)
}

// SetBadgeLevel changes only the level of an existing badge
func (s *service) SetBadgeLevel(ctx context.Context, heroKey, badgeKey string, level int) (*domain.BadgeUpdateResult, error) {
	heroKey, badgeKey, err := normalizeKeys(heroKey, badgeKey)
	if err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLevel, level)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetBadge(ctx, heroKey, badgeKey)
	if err != nil {
		return nil, err
	}
	updated := *existing
	updated.Level = level
	return s.applyBadge(ctx, updated, false)
}

// RemoveBadge deletes a badge; its XP leaves both the hero and the global total
func (s *service) RemoveBadge(ctx context.Context, heroKey, badgeKey string) (*domain.BadgeUpdateResult, error) {
	heroKey, badgeKey, err := normalizeKeys(heroKey, badgeKey)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyBadge(ctx, domain.Badge{HeroKey: heroKey, BadgeKey: badgeKey}, true)
}

// applyBadge writes one badge change and reports its effect. Callers hold s.mu.
func (s *service) applyBadge(ctx context.Context, badge domain.Badge, remove bool) (*domain.BadgeUpdateResult, error) {
	heroes, err := s.repo.ListHeroes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	if !containsHero(heroes, badge.HeroKey) {
		return nil, domain.ErrHeroNotFound
	}

	before, err := s.repo.ListAllBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	oldLevel := 0
	idx := indexOfBadge(before, badge.HeroKey, badge.BadgeKey)
	if idx >= 0 {
		oldLevel = before[idx].Level
	}

	after := make([]domain.Badge, 0, len(before)+1)
	for i, b := range before {
		if i != idx {
			after = append(after, b)
		}
	}

	var oldXP int64
	if idx >= 0 {
		oldXP = before[idx].XP()
	}

	if remove {
		if idx < 0 {
			return nil, domain.ErrBadgeNotFound
		}
		badge = before[idx]
		if err := s.repo.DeleteBadge(ctx, badge.HeroKey, badge.BadgeKey); err != nil {
			return nil, err
		}
	} else {
		badge.UpdatedAt = s.now()
		if err := s.repo.UpsertBadge(ctx, &badge); err != nil {
			return nil, err
		}
		after = append(after, badge)
	}
	s.invalidate()

	var newXP int64
	if !remove {
		newXP = badge.XP()
	}

	beforeSnap := newSnapshot(s.table, heroes, before)
	afterSnap := newSnapshot(s.table, heroes, after)

	unlocked := newlyUnlocked(
		evaluateAchievements(s.table, s.achievements, beforeSnap),
		evaluateAchievements(s.table, s.achievements, afterSnap),
	)

	result := &domain.BadgeUpdateResult{
		Badge:                badge,
		OldLevel:             oldLevel,
		XPDelta:              newXP - oldXP,
		Hero:                 s.levelChange(beforeSnap.heroXP[badge.HeroKey], afterSnap.heroXP[badge.HeroKey]),
		Global:               s.levelChange(beforeSnap.globalXP, afterSnap.globalXP),
		UnlockedAchievements: unlocked,
	}

	s.announce(ctx, result, remove)
	return result, nil
}

func (s *service) levelChange(beforeXP, afterXP int64) domain.LevelChange {
	before := s.table.LevelDetails(beforeXP)
	after := s.table.LevelDetails(afterXP)
	return domain.LevelChange{
		TotalXP:   afterXP,
		Before:    before,
		After:     after,
		LeveledUp: after.Level > before.Level,
	}
}

// announce logs and publishes everything a badge change caused
func (s *service) announce(ctx context.Context, result *domain.BadgeUpdateResult, removed bool) {
	log := logger.FromContext(ctx)
	b := result.Badge

	if removed {
		s.publish(ctx, event.NewBadgeRemovedEvent(b.HeroKey, b.BadgeKey, string(b.Category), result.OldLevel, result.XPDelta))
	} else {
		s.publish(ctx, event.NewBadgeUpdatedEvent(b.HeroKey, b.BadgeKey, string(b.Category), result.OldLevel, b.Level, result.XPDelta))
	}

	if result.Hero.LeveledUp {
		log.Info(LogMsgHeroLeveledUp, "hero", b.HeroKey,
			"old_level", result.Hero.Before.Level, "new_level", result.Hero.After.Level)
		s.publish(ctx, event.NewLevelUpEvent(b.HeroKey, result.Hero.Before.Level, result.Hero.After.Level, result.Hero.TotalXP))
	}
	if result.Global.LeveledUp {
		log.Info(LogMsgGlobalLeveledUp,
			"old_level", result.Global.Before.Level, "new_level", result.Global.After.Level)
		s.publish(ctx, event.NewLevelUpEvent(domain.GlobalScope, result.Global.Before.Level, result.Global.After.Level, result.Global.TotalXP))
	}

	for _, a := range result.UnlockedAchievements {
		log.Info(LogMsgAchievementUnlocked, "key", a.Key, "name", a.Name)
		s.publish(ctx, event.NewAchievementUnlockedEvent(a.Key, a.Name, string(a.Kind)))
	}

	s.announceGoal(ctx, b.HeroKey, result.Hero)
	s.announceGoal(ctx, domain.GlobalScope, result.Global)
}

func (s *service) announceGoal(ctx context.Context, scope string, change domain.LevelChange) {
	if !change.LeveledUp {
		return
	}
	goal, err := s.lookupGoal(ctx, scope)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgGoalLookupFailed, "scope", scope, "error", err)
		return
	}
	if goal == nil {
		return
	}
	if change.Before.Level < goal.TargetLevel && change.After.Level >= goal.TargetLevel {
		logger.FromContext(ctx).Info(LogMsgGoalReached, "scope", scope, "target_level", goal.TargetLevel)
		s.publish(ctx, event.NewGoalReachedEvent(scope, goal.TargetLevel))
	}
}

func containsHero(heroes []domain.Hero, key string) bool {
	for _, h := range heroes {
		if h.Key == key {
			return true
		}
	}
	return false
}

func indexOfBadge(badges []domain.Badge, heroKey, badgeKey string) int {
	for i, b := range badges {
		if b.HeroKey == heroKey && b.BadgeKey == badgeKey {
			return i
		}
	}
	return -1
}

// heroTotals sums badge XP per hero
func heroTotals(badges []domain.Badge) map[string]int64 {
	perHero := make(map[string][]leveling.Contribution)
	for _, b := range badges {
		perHero[b.HeroKey] = append(perHero[b.HeroKey], b.Contribution())
	}
	totals := make(map[string]int64, len(perHero))
	for key, contributions := range perHero {
		totals[key] = leveling.ComputeTotalXP(contributions)
	}
	return totals
}
