package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPToGoal(t *testing.T) {
	table := StandardTable()

	assert.Equal(t, int64(838000), table.XPToGoal(0, 26))
	assert.Equal(t, int64(837000), table.XPToGoal(1000, 26))
	assert.Equal(t, int64(0), table.XPToGoal(838000, 26))
	assert.Equal(t, int64(0), table.XPToGoal(900000, 26))
	assert.Equal(t, int64(2000), table.XPToGoal(-10, 2), "negative current XP counts as zero")
	assert.Equal(t, int64(0), table.XPToGoal(500, 0))
}

func TestBadgesNeededForGoal(t *testing.T) {
	assert.Equal(t, int64(10), BadgesNeededForGoal(2000, 200))
	assert.Equal(t, int64(11), BadgesNeededForGoal(2001, 200), "rounds up")
	assert.Equal(t, int64(1), BadgesNeededForGoal(1, 600))
	assert.Equal(t, int64(0), BadgesNeededForGoal(0, 200))
	assert.Equal(t, int64(0), BadgesNeededForGoal(-50, 200))
	assert.Equal(t, int64(0), BadgesNeededForGoal(100, 0))
	assert.Equal(t, int64(0), BadgesNeededForGoal(100, -5))
}

func TestProjectGoal(t *testing.T) {
	table := StandardTable()

	p := table.ProjectGoal(2000, 3, map[string]int64{"hero_specific": 200, "wins": 400})
	assert.Equal(t, 3, p.TargetLevel)
	assert.Equal(t, int64(6000), p.RequiredXP)
	assert.Equal(t, int64(4000), p.XPToGoal)
	assert.False(t, p.Reached)
	assert.Equal(t, map[string]int64{"hero_specific": 20, "wins": 10}, p.BadgesNeeded)

	done := table.ProjectGoal(7000, 3, map[string]int64{"wins": 400})
	assert.True(t, done.Reached)
	assert.Equal(t, int64(0), done.BadgesNeeded["wins"])

	bare := table.ProjectGoal(0, 2, nil)
	assert.Nil(t, bare.BadgesNeeded)
}
