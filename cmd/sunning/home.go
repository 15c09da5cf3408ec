package main

import (
	"fmt"
	"time"

	"sunning/internal/funding"
	"sunning/internal/toast"
	"sunning/internal/utils"
	"sunning/pkg/types"

	"github.com/urfave/cli/v2"
)

var homeCommand = &cli.Command{
	Name:  "home",
	Usage: "Browse funding campaigns by region",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "Region filter; defaults to your saved region",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "Sort order: latest or rate",
			Value:   "latest",
		},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		browser := funding.NewBrowser(env.api, env.logger)
		browser.LoadSavedRegion(c.Context)

		align := types.AlignLatest
		if c.String("sort") == string(types.AlignRate) {
			align = types.AlignRate
		}
		if err := browser.SetAlign(c.Context, align); err != nil {
			env.notify("Could not load the funding list.", toast.Error)
			return cli.Exit(err.Error(), 1)
		}

		if c.IsSet("region") {
			region, err := types.ParseRegion(c.String("region"))
			if err != nil {
				return err
			}
			if err := browser.SetRegion(c.Context, region); err != nil {
				env.notify("Could not load the funding list.", toast.Error)
				return cli.Exit(err.Error(), 1)
			}
		}

		items := browser.Items()
		fmt.Printf("Fundings in %s (%s)\n\n", browser.Region().Label(), browser.Align())
		if len(items) == 0 {
			fmt.Println("No fundings in this region yet.")
			return nil
		}

		now := time.Now()
		for _, item := range items {
			daysLeft, _ := utils.DaysLeft(item.DeadlineDate, now)
			fmt.Printf("#%-6d %-12s %3d%%  D-%-4d %s\n",
				item.FundingID,
				item.Region.Label(),
				utils.AchievementRate(item.FundedMoney, item.GoalMoney),
				daysLeft,
				item.Title,
			)
		}
		return nil
	},
}
