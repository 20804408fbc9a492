// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect    string
	credential string
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func userFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "name, n",
			Value: "",
			Usage: "*user `NAME`",
		},
		cli.StringFlag{
			Name:  "national-id, a",
			Value: "",
			Usage: "*national identity `ID`",
		},
	}
}

func propertyFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "property, p",
		Value: "",
		Usage: "*property `ID`",
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "regnet-cli"
	app.Usage = "property registration network client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " regnetd `HOST:PORT`",
			EnvVar: "REGNET_CONNECT",
		},
		cli.StringFlag{
			Name:   "credential, k",
			Value:  "",
			Usage:  " access `CREDENTIAL` issued by the node operator",
			EnvVar: "REGNET_CREDENTIAL",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "request-user",
			Usage:     "request a new user account",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: "*email `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "phone, t",
					Value: "",
					Usage: "*phone `NUMBER`",
				},
			),
			Action: runRequestUser,
		},
		{
			Name:      "recharge",
			Usage:     "credit upgradCoins from a bank transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				cli.StringFlag{
					Name:  "transaction, x",
					Value: "",
					Usage: "*bank transaction `ID`",
				},
			),
			Action: runRecharge,
		},
		{
			Name:      "view-user",
			Usage:     "display a user",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				cli.BoolFlag{
					Name:  "approved",
					Usage: " show the approved copy (registrar only)",
				},
			),
			Action: runViewUser,
		},
		{
			Name:      "request-property",
			Usage:     "request registration of a property",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				propertyFlag(),
				cli.Uint64Flag{
					Name:  "price, r",
					Value: 0,
					Usage: "*price in upgradCoins `COINS`",
				},
			),
			Action: runRequestProperty,
		},
		{
			Name:      "view-property",
			Usage:     "display a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag(),
				cli.BoolFlag{
					Name:  "approved",
					Usage: " show the approved copy",
				},
			},
			Action: runViewProperty,
		},
		{
			Name:      "update-property",
			Usage:     "change the sale status of an owned property",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				propertyFlag(),
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new `STATUS` [registered|onSale]",
				},
			),
			Action: runUpdateProperty,
		},
		{
			Name:      "purchase",
			Usage:     "purchase a property that is on sale",
			ArgsUsage: "\n   (* = required)",
			Flags: append(userFlags(),
				propertyFlag(),
			),
			Action: runPurchase,
		},
		{
			Name:      "receipts",
			Usage:     "list purchase receipts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue from `CURSOR`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runReceipts,
		},
		{
			Name:      "approve-user",
			Usage:     "approve a user request (registrar)",
			ArgsUsage: "\n   (* = required)",
			Flags:     userFlags(),
			Action:    runApproveUser,
		},
		{
			Name:      "approve-property",
			Usage:     "approve a property request (registrar)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				propertyFlag(),
			},
			Action: runApproveProperty,
		},
		{
			Name:      "info",
			Usage:     "display regnetd status",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display regnet-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect:    c.GlobalString("connect"),
			credential: c.GlobalString("credential"),
			verbose:    c.GlobalBool("verbose"),
			e:          c.App.ErrWriter,
			w:          c.App.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}
