// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/contract"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/ratelimit"
	"github.com/bitmark-inc/regnetd/rpc/registry"
)

// Receipt - type for the RPC
type Receipt struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Registry    registry.Registry
	Credentials registry.Credentials
}

const (
	rateLimitReceipt = 200
	rateBurstReceipt = 100
)

// ListArguments - arguments for RPC
type ListArguments struct {
	Credential string `json:"credential"`
	Start      string `json:"start"` // opaque cursor, empty for the oldest
	Count      int    `json:"count"`
}

// ListReply - result of list RPC
type ListReply struct {
	Receipts []*record.PurchaseReceipt `json:"receipts"`
	Next     string                    `json:"next"` // Start value for the next call
}

func New(log *logger.L, r registry.Registry, credentials registry.Credentials) *Receipt {
	return &Receipt{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitReceipt, rateBurstReceipt),
		Registry:    r,
		Credentials: credentials,
	}
}

// List - purchase receipts in time order
func (r *Receipt) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, contract.MaximumReceiptCount); nil != err {
		return err
	}

	log := r.Log
	log.Debugf("Receipt.List: start: %q  count: %d", arguments.Start, arguments.Count)

	if _, err := r.Credentials.Lookup(arguments.Credential); nil != err {
		return err
	}

	receipts, next, err := r.Registry.ListReceipts(arguments.Start, arguments.Count)
	if nil != err {
		return registry.Result(log, "Receipt.List", err)
	}

	reply.Receipts = receipts
	reply.Next = next
	return nil
}
