package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var optionCmd = cli.Command{
	Name:  "option",
	Usage: "create, exercise and inspect options",
	Subcommands: []*cli.Command{
		{
			Name:  "create",
			Usage: "buy an at-the-money option against the pool",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "buyer",
					Usage:    "the ledger account paying the premium",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "kind",
					Usage: "option kind, either 'call' or 'put'",
					Value: "call",
				},
				&cli.Int64Flag{
					Name:     "duration",
					Usage:    "exercise window in seconds",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "amount of pool token covered by the option",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:  "min-premium-out",
					Usage: "reject if the swapped premium yields less than this",
				},
			},
			Action: func(ctx *cli.Context) error {
				return doPost("/v1/options", map[string]interface{}{
					"buyer":           ctx.String("buyer"),
					"kind":            ctx.String("kind"),
					"duration":        ctx.Int64("duration"),
					"amount":          ctx.Uint64("amount"),
					"min_premium_out": ctx.Uint64("min-premium-out"),
				})
			},
		},
		{
			Name:      "exercise",
			Usage:     "exercise an active option",
			ArgsUsage: "<option id>",
			Action: func(ctx *cli.Context) error {
				id, err := optionIdArg(ctx)
				if err != nil {
					return err
				}
				return doPost(fmt.Sprintf("/v1/options/%s/exercise", id), nil)
			},
		},
		{
			Name:      "cancel",
			Usage:     "cancel an option that was never activated",
			ArgsUsage: "<option id>",
			Action: func(ctx *cli.Context) error {
				id, err := optionIdArg(ctx)
				if err != nil {
					return err
				}
				return doPost(fmt.Sprintf("/v1/options/%s/cancel", id), nil)
			},
		},
		{
			Name:      "info",
			Usage:     "show the state of an option",
			ArgsUsage: "<option id>",
			Action: func(ctx *cli.Context) error {
				id, err := optionIdArg(ctx)
				if err != nil {
					return err
				}
				return doGet(fmt.Sprintf("/v1/options/%s", id))
			},
		},
		{
			Name:  "list",
			Usage: "list all options",
			Action: func(ctx *cli.Context) error {
				return doGet("/v1/options")
			},
		},
		{
			Name:      "events",
			Usage:     "list the events emitted for an option",
			ArgsUsage: "<option id>",
			Action: func(ctx *cli.Context) error {
				id, err := optionIdArg(ctx)
				if err != nil {
					return err
				}
				return doGet(fmt.Sprintf("/v1/options/%s/events", id))
			},
		},
	},
}

func optionIdArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() < 1 {
		return "", fmt.Errorf("missing option id argument")
	}
	return ctx.Args().First(), nil
}
