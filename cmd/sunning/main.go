package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "sunning",
		Usage: "Client for the Sunning regional solar crowdfunding platform",
		Commands: []*cli.Command{
			loginCommand,
			logoutCommand,
			onboardCommand,
			homeCommand,
			fundingCommand,
			mypageCommand,
			magazineCommand,
			regionCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
