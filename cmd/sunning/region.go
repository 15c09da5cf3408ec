package main

import (
	"fmt"

	"sunning/internal/toast"
	"sunning/pkg/types"

	"github.com/urfave/cli/v2"
)

var regionCommand = &cli.Command{
	Name:  "region",
	Usage: "Show or change your saved region",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "Region code to save",
		},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		if c.IsSet("set") {
			region, err := types.ParseRegion(c.String("set"))
			if err != nil {
				return err
			}

			data, err := env.api.SetUserRegion(c.Context, region)
			if err != nil {
				env.notify("Could not save your region.", toast.Error)
				return cli.Exit(err.Error(), 1)
			}
			fmt.Printf("Saved region: %s\n", data.Region.Label())
			return nil
		}

		data, err := env.api.UserRegion(c.Context)
		if err != nil {
			env.notify("Could not load your region.", toast.Error)
			return cli.Exit(err.Error(), 1)
		}
		fmt.Printf("Saved region: %s\n", data.Region.Label())
		return nil
	},
}
