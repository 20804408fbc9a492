// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/regnetd/command/regnet-cli/rpccalls"
	"github.com/bitmark-inc/regnetd/fault"
)

func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)
	if "" == m.connect {
		return nil, nil, ErrMissingConnect
	}
	client, err := rpccalls.NewClient(m.connect, m.credential, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

func checkRequired(c *cli.Context, names ...string) error {
	for _, name := range names {
		if "" == c.String(name) {
			return fmt.Errorf("%w: --%s", fault.ErrMissingParameters, name)
		}
	}
	return nil
}

func userData(c *cli.Context) rpccalls.UserData {
	return rpccalls.UserData{
		Name:       c.String("name"),
		NationalId: c.String("national-id"),
	}
}

func runRequestUser(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id", "email", "phone"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	u, err := client.RequestUser(userData(c), c.String("email"), c.String("phone"))
	if nil != err {
		return err
	}
	return printJson(m.w, u)
}

func runRecharge(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id", "transaction"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	u, err := client.RechargeAccount(userData(c), c.String("transaction"))
	if nil != err {
		return err
	}
	return printJson(m.w, u)
}

func runViewUser(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	view := client.ViewUser
	if c.Bool("approved") {
		view = client.ViewApprovedUser
	}
	u, err := view(userData(c))
	if nil != err {
		return err
	}
	return printJson(m.w, u)
}

func runRequestProperty(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id", "property"); nil != err {
		return err
	}
	if 0 == c.Uint64("price") {
		return fault.ErrInvalidPrice
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := client.RequestProperty(userData(c), c.String("property"), c.Uint64("price"))
	if nil != err {
		return err
	}
	return printJson(m.w, p)
}

func runViewProperty(c *cli.Context) error {
	if err := checkRequired(c, "property"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := client.ViewProperty(c.String("property"), c.Bool("approved"))
	if nil != err {
		return err
	}
	return printJson(m.w, p)
}

func runUpdateProperty(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id", "property", "status"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := client.UpdateProperty(userData(c), c.String("property"), c.String("status"))
	if nil != err {
		return err
	}
	return printJson(m.w, p)
}

func runPurchase(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id", "property"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.PurchaseProperty(userData(c), c.String("property"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runReceipts(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListReceipts(c.String("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runApproveUser(c *cli.Context) error {
	if err := checkRequired(c, "name", "national-id"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	u, err := client.ApproveUser(userData(c))
	if nil != err {
		return err
	}
	return printJson(m.w, u)
}

func runApproveProperty(c *cli.Context) error {
	if err := checkRequired(c, "property"); nil != err {
		return err
	}
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	p, err := client.ApproveProperty(c.String("property"))
	if nil != err {
		return err
	}
	return printJson(m.w, p)
}

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
