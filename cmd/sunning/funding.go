package main

import (
	"errors"
	"fmt"
	"time"

	"sunning/internal/funding"
	"sunning/internal/toast"
	"sunning/internal/utils"
	"sunning/pkg/types"

	"github.com/urfave/cli/v2"
)

var fundingCommand = &cli.Command{
	Name:  "funding",
	Usage: "Inspect and act on funding campaigns",
	Subcommands: []*cli.Command{
		fundingShowCommand,
		fundingUploadCommand,
		fundingDonateCommand,
		fundingProlongCommand,
	},
}

var fundingShowCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show a funding campaign",
	ArgsUsage: "<funding-id>",
	Action: func(c *cli.Context) error {
		_, detail, err := loadDetail(c)
		if err != nil {
			return err
		}

		data := detail.Data()
		fmt.Printf("%s\n%s\n\n", data.Title, data.Description)
		fmt.Printf("Raised        %s (%d%% of %s)\n",
			utils.FormatWon(data.FundedMoney), detail.Progress(), utils.FormatWon(data.GoalMoney))
		fmt.Printf("Deadline      %s\n", utils.FormatAPIDate(data.DeadlineDate))
		fmt.Printf("Completion    %s\n", utils.FormatAPIDate(data.CompleteDueDate))
		fmt.Printf("Region        %s, %s\n", data.Region.Label(), data.DetailAddress)

		if data.IsOwner {
			fmt.Printf("Funders       %d\n", data.FunderCount)
			if data.IsProlongation {
				fmt.Println("\nThis funding cannot be extended again.")
			} else {
				fmt.Println("\nRun `sunning funding prolong` to extend the deadline by 30 days, once.")
			}
		} else {
			fmt.Printf("\nRun `sunning funding donate %d` to join with %s.\n",
				data.FundingID, utils.FormatWon(funding.DonationAmount))
		}
		return nil
	},
}

var fundingDonateCommand = &cli.Command{
	Name:      "donate",
	Usage:     "Donate the fixed amount to a funding campaign",
	ArgsUsage: "<funding-id>",
	Action: func(c *cli.Context) error {
		env, detail, err := loadDetail(c)
		if err != nil {
			return err
		}

		data, err := detail.Donate(c.Context)
		if err != nil {
			return surfaceActionError(env, err, "The donation could not be completed.")
		}

		env.notify("Thank you for joining this funding!", toast.Success)
		fmt.Printf("Your total contribution: %s\n", utils.FormatWon(data.NewUserFundedMoney))
		fmt.Printf("Campaign total:          %s\n", utils.FormatWon(data.UpdatedFundingTotal))
		return nil
	},
}

var fundingProlongCommand = &cli.Command{
	Name:      "prolong",
	Usage:     "Extend your funding's deadline by 30 days (owner, once)",
	ArgsUsage: "<funding-id>",
	Action: func(c *cli.Context) error {
		env, detail, err := loadDetail(c)
		if err != nil {
			return err
		}

		data, err := detail.Prolong(c.Context)
		if err != nil {
			return surfaceActionError(env, err, "The deadline could not be extended.")
		}

		env.notify("Funding deadline extended.", toast.Success)
		fmt.Printf("New deadline: %s\n", utils.FormatAPIDate(data.DeadlineDate))
		return nil
	},
}

var fundingUploadCommand = &cli.Command{
	Name:  "upload",
	Usage: "Create a new funding campaign",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "Funding title (max 10 characters)", Required: true},
		&cli.StringFlag{Name: "region", Usage: "Installation region code", Required: true},
		&cli.StringFlag{Name: "address", Usage: "Detail address (max 30 characters)", Required: true},
		&cli.StringFlag{Name: "deadline", Usage: "Funding deadline, YYYY-MM-DD", Required: true},
		&cli.StringFlag{Name: "completion", Usage: "Completion due date, YYYY-MM-DD", Required: true},
		&cli.StringFlag{Name: "goal", Usage: "Goal amount in KRW", Required: true},
		&cli.StringFlag{Name: "message", Usage: "Message for funders (max 500 characters)", Required: true},
		&cli.StringFlag{Name: "photo", Usage: "Thumbnail URL"},
		&cli.BoolFlag{Name: "agree-privacy", Usage: "Agree to privacy collection (required)"},
	},
	Action: func(c *cli.Context) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}

		form := funding.UploadForm{
			Title:         c.String("title"),
			DetailAddress: c.String("address"),
			GoalAmount:    c.String("goal"),
			Message:       c.String("message"),
			PhotoURL:      c.String("photo"),
			PrivacyAgreed: c.Bool("agree-privacy"),
		}

		if region, err := types.ParseRegion(c.String("region")); err == nil {
			form.Region = region
		}
		if t, err := time.Parse("2006-01-02", c.String("deadline")); err == nil {
			form.Deadline = &t
		}
		if t, err := time.Parse("2006-01-02", c.String("completion")); err == nil {
			form.CompletionDate = &t
		}

		data, err := form.Submit(c.Context, env.api, env.logger)
		if err != nil {
			var verr *types.ValidationError
			if errors.As(err, &verr) {
				env.notify(verr.Message, toast.Error)
				return cli.Exit("", 1)
			}
			return surfaceActionError(env, err, "The funding could not be uploaded.")
		}

		env.notify("Funding uploaded successfully!", toast.Success)
		fmt.Printf("Created funding #%d %q. Run `sunning home` to see it listed.\n", data.FundingID, data.Title)
		return nil
	},
}

func loadDetail(c *cli.Context) (*appEnv, *funding.Detail, error) {
	env, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}

	if c.NArg() != 1 {
		return nil, nil, fmt.Errorf("expected exactly one funding id argument")
	}

	var fundingID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &fundingID); err != nil {
		return nil, nil, fmt.Errorf("invalid funding id %q", c.Args().First())
	}

	detail := funding.NewDetail(env.api, env.logger, fundingID)
	if err := detail.Load(c.Context); err != nil {
		env.notify("Could not load the funding.", toast.Error)
		return nil, nil, cli.Exit(err.Error(), 1)
	}
	return env, detail, nil
}

// surfaceActionError converts an action failure into a toast, preferring
// the server-provided message.
func surfaceActionError(env *appEnv, err error, fallback string) error {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		env.notify(apiErr.UserMessage(), toast.Error)
		return cli.Exit("", 1)
	}

	switch {
	case errors.Is(err, types.ErrAlreadyDonated),
		errors.Is(err, types.ErrOwnerCannotFund),
		errors.Is(err, types.ErrNotOwner),
		errors.Is(err, types.ErrAlreadyProlonged):
		env.notify(err.Error(), toast.Error)
		return cli.Exit("", 1)
	}

	env.notify(fallback, toast.Error)
	return cli.Exit(err.Error(), 1)
}
