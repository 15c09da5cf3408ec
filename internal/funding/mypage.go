package funding

import (
	"context"
	"time"

	"sunning/internal/utils"
	"sunning/pkg/types"
)

// MyPageTab selects which of the user's funding lists to show.
type MyPageTab string

const (
	TabParticipated MyPageTab = "participated"
	TabCreated      MyPageTab = "created"
)

// MyPageAPI is the slice of the API client the my-page screen needs.
type MyPageAPI interface {
	ParticipatedFundings(ctx context.Context) ([]types.ParticipatedFundingItem, error)
	MyCreatedFundings(ctx context.Context) ([]types.CreatedFundingItem, error)
}

// MyPageItem is the unified row rendered for both tabs.
type MyPageItem struct {
	FundingID       int64
	Title           string
	PhotoURL        string
	AchievementRate int
	DaysLeft        int
}

// MyFundings fetches and maps the selected tab. Switching tabs always
// issues a fresh request; the previous set is discarded.
func MyFundings(ctx context.Context, api MyPageAPI, tab MyPageTab, now time.Time) ([]MyPageItem, error) {
	items := make([]MyPageItem, 0)

	switch tab {
	case TabCreated:
		created, err := api.MyCreatedFundings(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range created {
			items = append(items, myPageItem(item.FundingID, item.Title, item.PhotoURL,
				item.FundedMoney, item.GoalMoney, item.DeadlineDate, now))
		}
	default:
		participated, err := api.ParticipatedFundings(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range participated {
			items = append(items, myPageItem(item.FundingID, item.Title, item.PhotoURL,
				item.FundedMoney, item.GoalMoney, item.DeadlineDate, now))
		}
	}

	return items, nil
}

func myPageItem(id int64, title, photo string, funded, goal int64, deadline string, now time.Time) MyPageItem {
	daysLeft, err := utils.DaysLeft(deadline, now)
	if err != nil {
		daysLeft = 0
	}
	return MyPageItem{
		FundingID:       id,
		Title:           title,
		PhotoURL:        photo,
		AchievementRate: utils.AchievementRate(funded, goal),
		DaysLeft:        daysLeft,
	}
}
