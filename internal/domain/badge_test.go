package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCategory_FixedXPPerLevel(t *testing.T) {
	tests := []struct {
		category BadgeCategory
		want     int64
		fixed    bool
	}{
		{CategoryHeroSpecific, 200, true},
		{CategoryWins, 400, true},
		{CategoryTimePlayed, 600, true},
		{CategoryCustom, 0, false},
		{BadgeCategory("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got, ok := tt.category.FixedXPPerLevel()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fixed, ok)
		})
	}
}

func TestBadgeCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryCustom.IsValid())
	assert.True(t, CategoryWins.IsValid())
	assert.False(t, BadgeCategory("").IsValid())
	assert.False(t, BadgeCategory("Wins").IsValid())
}

func TestBadgeCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "Hero Specific", CategoryHeroSpecific.DisplayName())
	assert.Equal(t, "Time Played", CategoryTimePlayed.DisplayName())
	assert.Equal(t, "Wins", CategoryWins.DisplayName())
}

func TestBadge_XP(t *testing.T) {
	b := Badge{Category: CategoryHeroSpecific, Level: 11, XPPerLevel: XPPerLevelHeroSpecific}
	assert.Equal(t, int64(2000), b.XP())

	b.Level = 1
	assert.Zero(t, b.XP())
}

func TestContributions(t *testing.T) {
	badges := []Badge{
		{Level: 3, XPPerLevel: 200},
		{Level: 2, XPPerLevel: 600},
	}
	got := Contributions(badges)
	assert.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Level)
	assert.Equal(t, int64(600), got[1].XPPerLevel)
}

func TestCategoryXPPerLevel(t *testing.T) {
	assert.Equal(t, map[string]int64{
		"hero_specific": 200,
		"wins":          400,
		"time_played":   600,
	}, CategoryXPPerLevel())
}

func TestGoal_IsGlobal(t *testing.T) {
	assert.True(t, Goal{Scope: GlobalScope}.IsGlobal())
	assert.False(t, Goal{Scope: "ana"}.IsGlobal())
}

func TestBadgeCategory_DisplayName_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Hero Specific", CategoryHeroSpecific.DisplayName())
			}
		}()
	}
	wg.Wait()
}
