// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/hex"

	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
)

// maximum receipts returned by one call
const MaximumReceiptCount = 100

// ListReceipts - committed purchase receipts in time order
//
// start is "" for the first page, otherwise the next value returned by
// the previous call
func (h *Host) ListReceipts(start string, count int) ([]*record.PurchaseReceipt, string, error) {
	if count <= 0 || count > MaximumReceiptCount {
		return nil, "", fault.ErrInvalidCount
	}

	cursor := h.pool.NewFetchCursor().Prefix([]byte(compositekey.Build(compositekey.Receipt)))
	if "" != start {
		key, err := hex.DecodeString(start)
		if nil != err || compositekey.Receipt != compositekey.Namespace(string(key)) {
			return nil, "", fault.ErrInvalidCursor
		}
		cursor.Seek(append(key, 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, "", err
	}

	receipts := make([]*record.PurchaseReceipt, 0, len(elements))
	for _, e := range elements {
		r, err := record.UnpackReceipt(e.Value)
		if nil != err {
			h.log.Errorf("receipt: %x  error: %s", e.Key, err)
			return nil, "", err
		}
		receipts = append(receipts, r)
	}

	next := start
	if 0 != len(elements) {
		next = hex.EncodeToString(elements[len(elements)-1].Key)
	}
	return receipts, next, nil
}
