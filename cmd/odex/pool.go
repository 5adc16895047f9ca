package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var poolCmd = cli.Command{
	Name:  "pool",
	Usage: "manage the liquidity pool",
	Subcommands: []*cli.Command{
		{
			Name:  "deposit",
			Usage: "deposit pool tokens into the pool custody",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "account",
					Usage:    "the ledger account providing the tokens",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "amount of pool token to deposit",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doPost("/v1/pool/deposits", map[string]interface{}{
					"account": ctx.String("account"),
					"amount":  ctx.Uint64("amount"),
				})
			},
		},
		{
			Name:  "withdraw",
			Usage: "withdraw pool tokens from the pool custody",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "account",
					Usage:    "the ledger account receiving the tokens",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "amount of pool token to withdraw",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doPost("/v1/pool/withdrawals", map[string]interface{}{
					"account": ctx.String("account"),
					"amount":  ctx.Uint64("amount"),
				})
			},
		},
		{
			Name:  "quote",
			Usage: "preview a swap against the current reserves",
			Flags: []cli.Flag{
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "amount of the input token to sell",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "token",
					Usage:    "input token, either 'pool' or 'payment'",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doGet(fmt.Sprintf(
					"/v1/pool/quote?amount=%d&token=%s",
					ctx.Uint64("amount"), ctx.String("token"),
				))
			},
		},
		{
			Name:  "balance",
			Usage: "show the pool token balance held in custody",
			Action: func(ctx *cli.Context) error {
				return doGet("/v1/pool/balance")
			},
		},
		{
			Name:  "info",
			Usage: "show reserves, custody balances and spot price",
			Action: func(ctx *cli.Context) error {
				return doGet("/v1/pool")
			},
		},
	},
}

var eventsCmd = cli.Command{
	Name:  "events",
	Usage: "list all exchange and exercise events",
	Action: func(ctx *cli.Context) error {
		return doGet("/v1/events")
	},
}
