package main

import (
	"fmt"

	"sunning/internal/toast"

	"github.com/urfave/cli/v2"
)

var magazineCommand = &cli.Command{
	Name:  "magazine",
	Usage: "Read editorial articles about solar funding",
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		items, err := env.api.Magazines(c.Context)
		if err != nil {
			env.notify("Could not load the magazine.", toast.Error)
			return cli.Exit(err.Error(), 1)
		}

		if len(items) == 0 {
			fmt.Println("No articles yet.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s\n  %s\n", item.Title, item.Subtitle())
			if item.Link != "" {
				fmt.Printf("  %s\n", item.Link)
			}
			fmt.Println()
		}
		return nil
	},
}
