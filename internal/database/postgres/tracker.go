package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroTracker_Go/internal/domain"
)

// TrackerRepository implements repository.Tracker for PostgreSQL
type TrackerRepository struct {
	db *pgxpool.Pool
}

// NewTrackerRepository creates a new TrackerRepository
func NewTrackerRepository(db *pgxpool.Pool) *TrackerRepository {
	return &TrackerRepository{db: db}
}

// ListHeroes returns every hero ordered by key
func (r *TrackerRepository) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	query := `
		SELECT hero_key, display_name, role, created_at
		FROM heroes
		ORDER BY hero_key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query heroes: %w", err)
	}
	defer rows.Close()

	heroes := []domain.Hero{}
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(&h.Key, &h.DisplayName, &h.Role, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return heroes, nil
}

// GetHero retrieves a hero by key
func (r *TrackerRepository) GetHero(ctx context.Context, heroKey string) (*domain.Hero, error) {
	query := `
		SELECT hero_key, display_name, role, created_at
		FROM heroes
		WHERE hero_key = $1
	`

	var h domain.Hero
	err := r.db.QueryRow(ctx, query, heroKey).Scan(&h.Key, &h.DisplayName, &h.Role, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrHeroNotFound, heroKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero: %w", err)
	}

	return &h, nil
}

// UpsertHero inserts or renames a hero. CreatedAt is filled from the database.
func (r *TrackerRepository) UpsertHero(ctx context.Context, hero *domain.Hero) error {
	query := `
		INSERT INTO heroes (hero_key, display_name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (hero_key) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    role = EXCLUDED.role
		RETURNING created_at
	`

	if err := r.db.QueryRow(ctx, query, hero.Key, hero.DisplayName, hero.Role).Scan(&hero.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert hero: %w", err)
	}
	return nil
}

// DeleteHero removes a hero, its badges (by cascade) and its goal
func (r *TrackerRepository) DeleteHero(ctx context.Context, heroKey string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM goals WHERE scope = $1`, heroKey); err != nil {
			return fmt.Errorf("failed to delete hero goal: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM heroes WHERE hero_key = $1`, heroKey)
		if err != nil {
			return fmt.Errorf("failed to delete hero: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHeroNotFound, heroKey)
		}
		return nil
	})
}

const badgeColumns = `hero_key, badge_key, display_name, category, level, xp_per_level, updated_at`

func scanBadges(rows pgx.Rows) ([]domain.Badge, error) {
	defer rows.Close()

	badges := []domain.Badge{}
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.HeroKey, &b.BadgeKey, &b.DisplayName, &b.Category, &b.Level, &b.XPPerLevel, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return badges, nil
}

// ListBadges returns one hero's badges ordered by key
func (r *TrackerRepository) ListBadges(ctx context.Context, heroKey string) ([]domain.Badge, error) {
	rows, err := r.db.Query(ctx, `SELECT `+badgeColumns+` FROM badges WHERE hero_key = $1 ORDER BY badge_key`, heroKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	return scanBadges(rows)
}

// ListAllBadges returns every badge of every hero
func (r *TrackerRepository) ListAllBadges(ctx context.Context) ([]domain.Badge, error) {
	rows, err := r.db.Query(ctx, `SELECT `+badgeColumns+` FROM badges ORDER BY hero_key, badge_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	return scanBadges(rows)
}

// GetBadge retrieves a single badge
func (r *TrackerRepository) GetBadge(ctx context.Context, heroKey, badgeKey string) (*domain.Badge, error) {
	var b domain.Badge
	err := r.db.QueryRow(ctx,
		`SELECT `+badgeColumns+` FROM badges WHERE hero_key = $1 AND badge_key = $2`,
		heroKey, badgeKey,
	).Scan(&b.HeroKey, &b.BadgeKey, &b.DisplayName, &b.Category, &b.Level, &b.XPPerLevel, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrBadgeNotFound, heroKey, badgeKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return &b, nil
}

// UpsertBadge inserts or updates a badge. UpdatedAt is filled from the database.
func (r *TrackerRepository) UpsertBadge(ctx context.Context, badge *domain.Badge) error {
	query := `
		INSERT INTO badges (hero_key, badge_key, display_name, category, level, xp_per_level, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (hero_key, badge_key) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    category = EXCLUDED.category,
		    level = EXCLUDED.level,
		    xp_per_level = EXCLUDED.xp_per_level,
		    updated_at = NOW()
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		badge.HeroKey, badge.BadgeKey, badge.DisplayName, string(badge.Category), badge.Level, badge.XPPerLevel,
	).Scan(&badge.UpdatedAt)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrHeroNotFound, badge.HeroKey)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert badge: %w", err)
	}
	return nil
}

// DeleteBadge removes a badge
func (r *TrackerRepository) DeleteBadge(ctx context.Context, heroKey, badgeKey string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM badges WHERE hero_key = $1 AND badge_key = $2`, heroKey, badgeKey)
	if err != nil {
		return fmt.Errorf("failed to delete badge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrBadgeNotFound, heroKey, badgeKey)
	}
	return nil
}

// GetGoal retrieves the goal for a hero key or the global scope
func (r *TrackerRepository) GetGoal(ctx context.Context, scope string) (*domain.Goal, error) {
	var g domain.Goal
	err := r.db.QueryRow(ctx,
		`SELECT scope, target_level, updated_at FROM goals WHERE scope = $1`, scope,
	).Scan(&g.Scope, &g.TargetLevel, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGoalNotSet, scope)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &g, nil
}

// SetGoal creates or replaces a goal
func (r *TrackerRepository) SetGoal(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (scope, target_level, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (scope) DO UPDATE
		SET target_level = EXCLUDED.target_level,
		    updated_at = NOW()
		RETURNING updated_at
	`

	if err := r.db.QueryRow(ctx, query, goal.Scope, goal.TargetLevel).Scan(&goal.UpdatedAt); err != nil {
		return fmt.Errorf("failed to set goal: %w", err)
	}
	return nil
}

// ClearGoal removes a goal
func (r *TrackerRepository) ClearGoal(ctx context.Context, scope string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE scope = $1`, scope)
	if err != nil {
		return fmt.Errorf("failed to clear goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrGoalNotSet, scope)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgCodeForeignKeyViolation
}
