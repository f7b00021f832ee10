package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneProgress(t *testing.T) {
	table := StandardTable()

	got := table.MilestoneProgress(10, 26, []int{25, 5, 10, 5, 0})
	require.Len(t, got, 3)

	assert.Equal(t, 5, got[0].Level)
	assert.Equal(t, int64(20000), got[0].RequiredXP)
	assert.InDelta(t, 20000.0/838000.0, got[0].Position, 1e-9)
	assert.True(t, got[0].Completed)

	assert.Equal(t, 10, got[1].Level)
	assert.True(t, got[1].Completed, "reaching the level completes it")

	assert.Equal(t, 25, got[2].Level)
	assert.Equal(t, int64(778000), got[2].RequiredXP)
	assert.False(t, got[2].Completed)
}

func TestMilestoneProgress_ZeroDenominator(t *testing.T) {
	table := StandardTable()

	got := table.MilestoneProgress(1, 1, []int{1, 3})
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Zero(t, m.Position)
	}
}

func TestMilestoneProgress_Empty(t *testing.T) {
	assert.Empty(t, StandardTable().MilestoneProgress(3, 26, nil))
}
