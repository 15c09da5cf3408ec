package main

import (
	"fmt"
	"time"

	"sunning/internal/funding"
	"sunning/internal/toast"

	"github.com/urfave/cli/v2"
)

var mypageCommand = &cli.Command{
	Name:  "mypage",
	Usage: "List fundings you participated in or created",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "tab",
			Aliases: []string{"t"},
			Usage:   "Which list to show: participated or created",
			Value:   string(funding.TabParticipated),
		},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		tab := funding.MyPageTab(c.String("tab"))
		if tab != funding.TabParticipated && tab != funding.TabCreated {
			return fmt.Errorf("unknown tab %q, use participated or created", c.String("tab"))
		}

		items, err := funding.MyFundings(c.Context, env.api, tab, time.Now())
		if err != nil {
			env.notify("Could not load your fundings.", toast.Error)
			return cli.Exit(err.Error(), 1)
		}

		if len(items) == 0 {
			if tab == funding.TabParticipated {
				fmt.Println("You have not joined any fundings yet.")
			} else {
				fmt.Println("You have not created any fundings yet.")
			}
			return nil
		}

		for _, item := range items {
			fmt.Printf("#%-6d %3d%%  D-%-4d %s\n",
				item.FundingID, item.AchievementRate, item.DaysLeft, item.Title)
		}
		return nil
	},
}
