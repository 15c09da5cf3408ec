package funding

import (
	"context"
	"errors"
	"testing"
	"time"

	"sunning/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMyPageAPI struct {
	participated []types.ParticipatedFundingItem
	created      []types.CreatedFundingItem
	err          error
}

func (f *fakeMyPageAPI) ParticipatedFundings(context.Context) ([]types.ParticipatedFundingItem, error) {
	return f.participated, f.err
}

func (f *fakeMyPageAPI) MyCreatedFundings(context.Context) ([]types.CreatedFundingItem, error) {
	return f.created, f.err
}

func TestMyFundingsParticipatedTab(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeMyPageAPI{participated: []types.ParticipatedFundingItem{
		{
			FundingID:    5,
			Title:        "Roof array",
			GoalMoney:    1_000_000,
			FundedMoney:  400_000,
			DeadlineDate: "2026-09-11T00:00:00Z",
		},
	}}

	items, err := MyFundings(context.Background(), api, TabParticipated, now)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.EqualValues(t, 5, items[0].FundingID)
	assert.Equal(t, 40, items[0].AchievementRate)
	assert.Equal(t, 10, items[0].DaysLeft)
}

func TestMyFundingsCreatedTab(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	api := &fakeMyPageAPI{created: []types.CreatedFundingItem{
		{
			FundingID:    8,
			Title:        "Barn panels",
			GoalMoney:    100,
			FundedMoney:  500, // over-funded is capped at 100%
			DeadlineDate: "2026-08-01T00:00:00Z",
		},
	}}

	items, err := MyFundings(context.Background(), api, TabCreated, now)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 100, items[0].AchievementRate)
	assert.Equal(t, 0, items[0].DaysLeft, "past deadlines never go negative")
}

func TestMyFundingsError(t *testing.T) {
	api := &fakeMyPageAPI{err: errors.New("boom")}

	_, err := MyFundings(context.Background(), api, TabParticipated, time.Now())
	assert.Error(t, err)
}

func TestMyFundingsEmpty(t *testing.T) {
	items, err := MyFundings(context.Background(), &fakeMyPageAPI{}, TabCreated, time.Now())
	require.NoError(t, err)
	assert.Empty(t, items)
}
