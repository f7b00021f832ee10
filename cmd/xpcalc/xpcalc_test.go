package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroTracker_Go/internal/domain"
	"github.com/osse101/HeroTracker_Go/internal/leveling"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLevelCommand(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		out, err := execute(t, "level", "838000")
		require.NoError(t, err)
		assert.Contains(t, out, "Level 26 (838,000 XP)")
		assert.Contains(t, out, "Next level at 898,000 XP")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "level", "2000", "--format", "json")
		require.NoError(t, err)

		var got LevelResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, int64(2000), got.TotalXP)
		assert.Equal(t, 2, got.Level)
		assert.Equal(t, int64(4000), got.XPNeededForNextLevel)
	})

	t.Run("legacy curve", func(t *testing.T) {
		out, err := execute(t, "level", "100000", "--curve", "legacy")
		require.NoError(t, err)
		assert.Contains(t, out, "Level 21")
	})

	t.Run("bad xp", func(t *testing.T) {
		_, err := execute(t, "level", "lots")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid XP value")
	})

	t.Run("unknown curve", func(t *testing.T) {
		_, err := execute(t, "level", "10", "--curve", "seasonal")
		require.Error(t, err)
	})
}

func TestRequiredCommand(t *testing.T) {
	out, err := execute(t, "required", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 10 starts at 90,000 XP")

	_, err = execute(t, "required", "0")
	assert.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table", "--format", "json")
	require.NoError(t, err)

	var got TableResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Tiers, 25)
	assert.Equal(t, int64(838000), got.TableEnd)
	assert.Equal(t, leveling.StandardTailCost, got.TailCost)

	human, err := execute(t, "table")
	require.NoError(t, err)
	assert.Contains(t, human, "Table ends at 838,000 XP; every later level costs 60,000 XP")
}

func TestGoalCommand(t *testing.T) {
	t.Run("projection", func(t *testing.T) {
		out, err := execute(t, "goal", "0", "2", "--format", "json")
		require.NoError(t, err)

		var got GoalResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 1, got.CurrentLevel)
		assert.Equal(t, int64(2000), got.XPToGoal)
		assert.Equal(t, int64(10), got.BadgesNeeded[string(domain.CategoryHeroSpecific)])
		assert.Equal(t, int64(5), got.BadgesNeeded[string(domain.CategoryWins)])
		require.NotNil(t, got.TimeRemaining)
		assert.Equal(t, "1h 6 min", got.TimeRemaining.Text)
	})

	t.Run("human", func(t *testing.T) {
		out, err := execute(t, "goal", "0", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Hero Specific badges: 10")
		assert.Contains(t, out, "Time played: 1h 6 min")
	})

	t.Run("already reached", func(t *testing.T) {
		out, err := execute(t, "goal", "900000", "26")
		require.NoError(t, err)
		assert.Contains(t, out, "Goal reached")
	})
}

func TestTotalCommand(t *testing.T) {
	out, err := execute(t, "total", "hero_specific:11", "wins:3", "custom:2:500", "--format", "json")
	require.NoError(t, err)

	var got TotalResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(2000+800+500), got.TotalXP)
	assert.Equal(t, 2, got.Level)
}

func TestParseContribution(t *testing.T) {
	tests := []struct {
		arg     string
		want    leveling.Contribution
		wantErr bool
	}{
		{"hero_specific:11", leveling.Contribution{Level: 11, XPPerLevel: 200}, false},
		{"time_played:4:999", leveling.Contribution{Level: 4, XPPerLevel: 600}, false},
		{"custom:3:250", leveling.Contribution{Level: 3, XPPerLevel: 250}, false},
		{"custom:3", leveling.Contribution{}, true},
		{"custom:3:0", leveling.Contribution{}, true},
		{"medals:3", leveling.Contribution{}, true},
		{"wins", leveling.Contribution{}, true},
		{"wins:x", leveling.Contribution{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseContribution(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	_, err := FormatResponse(&RequiredResult{Level: 2}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
