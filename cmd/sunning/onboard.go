package main

import (
	"fmt"

	"sunning/internal/toast"
	"sunning/pkg/types"

	"github.com/urfave/cli/v2"
)

var onboardCommand = &cli.Command{
	Name:  "onboard",
	Usage: "Pick the solar region you want to invest in",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "region",
			Aliases:  []string{"r"},
			Usage:    "Region code (seoul, incheon_gyeonggi, gyeongsang, chungcheong, gangwon, jeolla, jeju)",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		region, err := types.ParseRegion(c.String("region"))
		if err != nil {
			fmt.Println("Choose one of:")
			for _, r := range types.Regions {
				fmt.Printf("  %-18s %s\n", r, r.Label())
			}
			return err
		}

		if err := env.account.Onboard(c.Context, region); err != nil {
			env.notify(err.Error(), toast.Error)
			return cli.Exit("", 1)
		}

		fmt.Printf("Region set to %s. Welcome to Sunning!\n", region.Label())
		return nil
	},
}
