package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_RewardMap_scanValue(t *testing.T) {
	now := time.Now().Round(time.Second)
	rewards := RewardMap{
		0: {Amount: 33, Token: "FAN"},
		2: {Amount: 34, Token: "FAN", Claimed: true, ClaimedAt: &now},
	}

	value, err := rewards.Value()
	require.NoError(t, err)

	restored := RewardMap{}
	require.NoError(t, restored.Scan(value))
	require.Len(t, restored, 2)
	require.Equal(t, int64(33), restored[0].Amount)
	require.True(t, restored[2].Claimed)
	require.True(t, now.Equal(*restored[2].ClaimedAt))

	require.Error(t, restored.Scan(42))
}

func Test_UserProgress_Clone(t *testing.T) {
	original := &UserProgress{
		UserAddress:    "0xabcd",
		ExperienceID:   1,
		Started:        true,
		CompletedTasks: Array[int]{0},
		Rewards:        RewardMap{0: {Amount: 50, Token: "FAN"}},
	}

	clone := original.Clone()
	clone.CompletedTasks = append(clone.CompletedTasks, 1)
	clone.Rewards[1] = RewardEntry{Amount: 50}

	require.Equal(t, Array[int]{0}, original.CompletedTasks)
	require.Len(t, original.Rewards, 1)

	var nilProgress *UserProgress
	require.Nil(t, nilProgress.Clone())
}
