package main

import (
	"errors"
	"fmt"

	"sunning/internal/account"
	"sunning/internal/toast"
	"sunning/pkg/types"

	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in and store the session token",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "User id",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Password",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		// Fast path: an existing session skips the login round trip,
		// exactly like the stored-token check on app start.
		if status := env.account.Status(); status.LoggedIn {
			if status.Onboarded {
				fmt.Println("Already logged in. Run `sunning home` to browse fundings.")
			} else {
				fmt.Println("Already logged in. Run `sunning onboard` to pick your region.")
			}
			return nil
		}

		data, err := env.account.Login(c.Context, c.String("id"), c.String("password"))
		if err != nil {
			if errors.Is(err, account.ErrMissingCredentials) {
				return err
			}
			var apiErr *types.APIError
			if errors.As(err, &apiErr) {
				env.notify(apiErr.UserMessage(), toast.Error)
				return cli.Exit("", 1)
			}
			env.notify("Could not log in. Check your connection and try again.", toast.Error)
			return cli.Exit("", 1)
		}

		if data.IsOnboarded {
			fmt.Printf("Welcome back, %s. Run `sunning home` to browse fundings.\n", data.UserID)
		} else {
			fmt.Printf("Welcome, %s. Run `sunning onboard` to pick your region.\n", data.UserID)
		}
		return nil
	},
}

var logoutCommand = &cli.Command{
	Name:  "logout",
	Usage: "Forget the stored session",
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		if err := env.account.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}
