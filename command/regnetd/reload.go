// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/registration"
)

// tables that can change while running
type reloader struct {
	log      *logger.L
	fileName string
	recharge *registration.Recharge
	table    *identity.Table
	change   chan struct{}
	remove   chan struct{}
}

func newReloader(log *logger.L, fileName string, recharge *registration.Recharge, table *identity.Table) *reloader {
	return &reloader{
		log:      log,
		fileName: fileName,
		recharge: recharge,
		table:    table,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}
}

func (r *reloader) channels() WatcherChannel {
	return WatcherChannel{
		change: r.change,
		remove: r.remove,
	}
}

// Run - background process applying configuration changes
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.change:
			r.reload()
		case <-r.remove:
			// the running tables stay as they are until the file returns
			r.log.Warnf("configuration: %q removed, keeping current tables", r.fileName)
		}
	}
	r.log.Info("shutting down…")
}

// a configuration that fails to parse leaves both tables unchanged
func (r *reloader) reload() error {
	conf, err := getConfiguration(r.fileName, nil)
	if nil != err {
		r.log.Errorf("reload: %q  error: %s", r.fileName, err)
		return err
	}

	err = r.table.Replace(conf.Credentials)
	if nil != err {
		r.log.Errorf("reload credentials error: %s", err)
		return err
	}
	r.recharge.Replace(conf.rechargeAmounts())

	r.log.Infof("reloaded credentials: %d  recharge transactions: %d", r.table.Count(), r.recharge.Count())
	return nil
}
