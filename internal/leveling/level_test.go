package leveling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDetails_StandardScenarios(t *testing.T) {
	table := StandardTable()

	tests := []struct {
		name    string
		totalXP int64
		want    LevelDetails
	}{
		{
			name:    "zero XP is level 1",
			totalXP: 0,
			want:    LevelDetails{Level: 1, XPTowardsNextLevel: 0, XPNeededForNextLevel: 2000, CurrentLevelBaseXP: 0, NextLevelBaseXP: 2000},
		},
		{
			name:    "negative XP clamps to zero",
			totalXP: -500,
			want:    LevelDetails{Level: 1, XPTowardsNextLevel: 0, XPNeededForNextLevel: 2000, CurrentLevelBaseXP: 0, NextLevelBaseXP: 2000},
		},
		{
			name:    "one short of level 2",
			totalXP: 1999,
			want:    LevelDetails{Level: 1, XPTowardsNextLevel: 1999, XPNeededForNextLevel: 2000, CurrentLevelBaseXP: 0, NextLevelBaseXP: 2000},
		},
		{
			name:    "exact start of level 2",
			totalXP: 2000,
			want:    LevelDetails{Level: 2, XPTowardsNextLevel: 0, XPNeededForNextLevel: 4000, CurrentLevelBaseXP: 2000, NextLevelBaseXP: 6000},
		},
		{
			name:    "inside level 25",
			totalXP: 800000,
			want:    LevelDetails{Level: 25, XPTowardsNextLevel: 22000, XPNeededForNextLevel: 60000, CurrentLevelBaseXP: 778000, NextLevelBaseXP: 838000},
		},
		{
			name:    "table end is the first tail level",
			totalXP: 838000,
			want:    LevelDetails{Level: 26, XPTowardsNextLevel: 0, XPNeededForNextLevel: 60000, CurrentLevelBaseXP: 838000, NextLevelBaseXP: 898000},
		},
		{
			name:    "deeper into the tail",
			totalXP: 900000,
			want:    LevelDetails{Level: 27, XPTowardsNextLevel: 2000, XPNeededForNextLevel: 60000, CurrentLevelBaseXP: 898000, NextLevelBaseXP: 958000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.LevelDetails(tt.totalXP))
		})
	}
}

func TestXPRequiredForLevel(t *testing.T) {
	table := StandardTable()

	assert.Equal(t, int64(0), table.XPRequiredForLevel(-3))
	assert.Equal(t, int64(0), table.XPRequiredForLevel(0))
	assert.Equal(t, int64(0), table.XPRequiredForLevel(1))
	assert.Equal(t, int64(2000), table.XPRequiredForLevel(2))
	assert.Equal(t, int64(90000), table.XPRequiredForLevel(10))
	assert.Equal(t, int64(778000), table.XPRequiredForLevel(25))
	assert.Equal(t, int64(838000), table.XPRequiredForLevel(26))
	assert.Equal(t, int64(898000), table.XPRequiredForLevel(27))
	assert.Equal(t, int64(838000+74*60000), table.XPRequiredForLevel(100))
}

func TestXPRequiredForLevel_Saturates(t *testing.T) {
	table := StandardTable()
	assert.Equal(t, int64(math.MaxInt64), table.XPRequiredForLevel(math.MaxInt))
}

func TestLegacyTable(t *testing.T) {
	table := LegacyTable()

	assert.Equal(t, int64(95000), table.XPRequiredForLevel(20))
	assert.Equal(t, int64(100000), table.XPRequiredForLevel(21))
	assert.Equal(t, int64(160000), table.XPRequiredForLevel(22))
	assert.Equal(t, 20, table.Level(99999))
	assert.Equal(t, 21, table.Level(100000))
	assert.Equal(t, int64(5000), table.LevelDetails(12345).XPNeededForNextLevel)
}

func TestProperty_RoundTrip(t *testing.T) {
	for _, table := range []*Table{StandardTable(), LegacyTable()} {
		for level := 1; level <= 1000; level++ {
			required := table.XPRequiredForLevel(level)
			details := table.LevelDetails(required)
			require.Equal(t, level, details.Level, "level %d", level)
			require.Zero(t, details.XPTowardsNextLevel, "level %d", level)
			require.Equal(t, required, details.CurrentLevelBaseXP, "level %d", level)
		}
	}
}

func TestProperty_Monotonic(t *testing.T) {
	table := StandardTable()

	prev := table.Level(0)
	for xp := int64(1); xp <= 3_000_000; xp += 997 {
		level := table.Level(xp)
		require.GreaterOrEqual(t, level, prev, "xp %d", xp)
		prev = level
	}
}

func TestProperty_ProgressBound(t *testing.T) {
	table := StandardTable()

	for xp := int64(0); xp <= 3_000_000; xp += 1231 {
		d := table.LevelDetails(xp)
		require.GreaterOrEqual(t, d.XPTowardsNextLevel, int64(0), "xp %d", xp)
		require.Less(t, d.XPTowardsNextLevel, d.XPNeededForNextLevel, "xp %d", xp)
		require.Equal(t, d.CurrentLevelBaseXP+d.XPNeededForNextLevel, d.NextLevelBaseXP, "xp %d", xp)
		require.Equal(t, xp, d.CurrentLevelBaseXP+d.XPTowardsNextLevel, "xp %d", xp)
	}
}

func TestProperty_TailLinearity(t *testing.T) {
	table := StandardTable()

	for level := table.LastLevel() + 1; level < 1000; level++ {
		diff := table.XPRequiredForLevel(level+1) - table.XPRequiredForLevel(level)
		require.Equal(t, table.TailCostPerLevel(), diff, "level %d", level)
	}
}

func TestLevelDetails_Progress(t *testing.T) {
	table := StandardTable()

	assert.InDelta(t, 0.5, table.LevelDetails(4000).Progress(), 1e-9)
	assert.Zero(t, LevelDetails{}.Progress())
}
