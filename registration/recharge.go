// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registration

import (
	"sync"
)

// DefaultRecharge - bank transaction ids accepted when none are configured
var DefaultRecharge = map[string]uint64{
	"upg500":  500,
	"upg1000": 1000,
	"upg1500": 1500,
}

// RechargeTable - maps a bank transaction id to a coin amount
type RechargeTable interface {
	Amount(bankTransactionId string) (uint64, bool)
}

// Recharge - replaceable recharge table
type Recharge struct {
	sync.RWMutex
	amounts map[string]uint64
}

// NewRecharge - create a table holding a copy of amounts
func NewRecharge(amounts map[string]uint64) *Recharge {
	r := &Recharge{}
	r.Replace(amounts)
	return r
}

// Replace - swap in a new set of amounts
func (r *Recharge) Replace(amounts map[string]uint64) {
	m := make(map[string]uint64, len(amounts))
	for id, amount := range amounts {
		if 0 != amount {
			m[id] = amount
		}
	}

	r.Lock()
	r.amounts = m
	r.Unlock()
}

// Amount - coins for a bank transaction id
func (r *Recharge) Amount(bankTransactionId string) (uint64, bool) {
	r.RLock()
	defer r.RUnlock()
	amount, ok := r.amounts[bankTransactionId]
	return amount, ok
}

// Count - number of ids
func (r *Recharge) Count() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.amounts)
}
