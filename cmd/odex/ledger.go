package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var ledgerCmd = cli.Command{
	Name:  "ledger",
	Usage: "interact with the fungible token ledger",
	Subcommands: []*cli.Command{
		{
			Name:  "mint",
			Usage: "mint tokens to an account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "account",
					Usage:    "the account to credit",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "amount to mint",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "token",
					Usage:    "either 'pool' or 'payment'",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doPost("/v1/ledger/mint", map[string]interface{}{
					"account": ctx.String("account"),
					"amount":  ctx.Uint64("amount"),
					"token":   ctx.String("token"),
				})
			},
		},
		{
			Name:  "approve",
			Usage: "grant the engine an allowance to spend tokens",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "owner",
					Usage:    "the account granting the allowance",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:     "amount",
					Usage:    "allowance amount",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "token",
					Usage:    "either 'pool' or 'payment'",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doPost("/v1/ledger/approve", map[string]interface{}{
					"owner":  ctx.String("owner"),
					"amount": ctx.Uint64("amount"),
					"token":  ctx.String("token"),
				})
			},
		},
		{
			Name:  "balance",
			Usage: "show the balance of an account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "account",
					Usage:    "the account to query",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "token",
					Usage:    "either 'pool' or 'payment'",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				return doGet(fmt.Sprintf(
					"/v1/ledger/balance?account=%s&token=%s",
					ctx.String("account"), ctx.String("token"),
				))
			},
		},
	},
}
