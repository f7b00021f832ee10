package leveling

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable is returned when a progression table violates its invariants.
// A broken table is static data gone wrong, so callers at startup should treat it as fatal.
var ErrInvalidTable = errors.New("invalid progression table")

// Tier is one row of the progression table, covering exactly one level
type Tier struct {
	Level               int   `json:"level" yaml:"level"`
	CumulativeXPAtStart int64 `json:"cumulative_xp_at_start" yaml:"cumulative_xp_at_start"`
	XPToNextLevel       int64 `json:"xp_to_next_level" yaml:"xp_to_next_level"`
}

// End returns the cumulative XP at which the next level begins
func (t Tier) End() int64 {
	return t.CumulativeXPAtStart + t.XPToNextLevel
}

// Table is an immutable progression curve: hand-tuned tiers followed by a flat tail.
// Build it once with NewTable and pass it to whoever needs to resolve levels.
type Table struct {
	tiers    []Tier
	tailCost int64
}

// NewTable validates tiers and returns a table that owns a copy of them
func NewTable(tiers []Tier, tailCost int64) (*Table, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTable, ErrMsgEmptyTable)
	}
	if tailCost <= 0 {
		return nil, fmt.Errorf("%w: %s (got %d)", ErrInvalidTable, ErrMsgBadTailCost, tailCost)
	}
	if tiers[0].CumulativeXPAtStart != 0 {
		return nil, fmt.Errorf("%w: %s (got %d)", ErrInvalidTable, ErrMsgBadFirstCumulative, tiers[0].CumulativeXPAtStart)
	}

	for i, t := range tiers {
		if t.Level != i+1 {
			return nil, fmt.Errorf("%w: %s (index %d has level %d)", ErrInvalidTable, ErrMsgBadTierLevel, i, t.Level)
		}
		if t.XPToNextLevel <= 0 {
			return nil, fmt.Errorf("%w: %s (level %d)", ErrInvalidTable, ErrMsgBadTierCost, t.Level)
		}
		if t.CumulativeXPAtStart < 0 || t.CumulativeXPAtStart > math.MaxInt64-t.XPToNextLevel {
			return nil, fmt.Errorf("%w: %s (level %d)", ErrInvalidTable, ErrMsgTierOverflow, t.Level)
		}
		if i > 0 && t.CumulativeXPAtStart <= tiers[i-1].CumulativeXPAtStart {
			return nil, fmt.Errorf("%w: %s (level %d)", ErrInvalidTable, ErrMsgBadTierCumulative, t.Level)
		}
		if i > 0 && t.CumulativeXPAtStart != tiers[i-1].End() {
			return nil, fmt.Errorf("%w: %s (level %d: want %d, got %d)",
				ErrInvalidTable, ErrMsgBadTierCumulative, t.Level, tiers[i-1].End(), t.CumulativeXPAtStart)
		}
	}

	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	return &Table{tiers: owned, tailCost: tailCost}, nil
}

// NewTableFromCosts builds tiers from per-level costs, level 1 first
func NewTableFromCosts(costs []int64, tailCost int64) (*Table, error) {
	tiers := make([]Tier, 0, len(costs))
	cumulative := int64(0)
	for i, cost := range costs {
		tiers = append(tiers, Tier{
			Level:               i + 1,
			CumulativeXPAtStart: cumulative,
			XPToNextLevel:       cost,
		})
		cumulative += cost
	}
	return NewTable(tiers, tailCost)
}

// MustNewTable is NewTable for static data; it panics on an invalid table
func MustNewTable(tiers []Tier, tailCost int64) *Table {
	t, err := NewTable(tiers, tailCost)
	if err != nil {
		panic(err)
	}
	return t
}

// TierAt returns the tier for a tabulated level, or false past the table
func (t *Table) TierAt(level int) (Tier, bool) {
	if level < 1 || level > len(t.tiers) {
		return Tier{}, false
	}
	return t.tiers[level-1], true
}

// TailCostPerLevel returns the flat cost of every level past the table
func (t *Table) TailCostPerLevel() int64 {
	return t.tailCost
}

// LastTier returns the highest tabulated tier
func (t *Table) LastTier() Tier {
	return t.tiers[len(t.tiers)-1]
}

// LastLevel returns the highest tabulated level
func (t *Table) LastLevel() int {
	return t.LastTier().Level
}

// TableEnd returns the cumulative XP needed to complete every tabulated level
func (t *Table) TableEnd() int64 {
	return t.LastTier().End()
}

// Tiers returns a copy of the tabulated tiers
func (t *Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}
