// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"time"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/regnetd/fault"
)

// ReceiptId - SHA3-256 digest of a packed receipt
type ReceiptId [32]byte

// PurchaseReceipt - record of one completed purchase
type PurchaseReceipt struct {
	Id            ReceiptId `json:"id"`
	PropertyId    string    `json:"propertyId"`
	Seller        string    `json:"seller"`
	Buyer         string    `json:"buyer"`
	Price         uint64    `json:"price"`
	SellerBalance uint64    `json:"sellerBalance"`
	BuyerBalance  uint64    `json:"buyerBalance"`
	Timestamp     time.Time `json:"timestamp"`
}

// String - base58 text form
func (id ReceiptId) String() string {
	return base58.Encode(id[:])
}

// MarshalText - convert receipt id to base58 for JSON
func (id ReceiptId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text back to receipt id
func (id *ReceiptId) UnmarshalText(s []byte) error {
	buffer, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrMalformedRecord
	}
	if len(buffer) != len(id) {
		return fault.ErrMalformedRecord
	}
	copy(id[:], buffer)
	return nil
}

// NewReceipt - create a receipt and compute its id
func NewReceipt(propertyId string, seller string, buyer string, price uint64, sellerBalance uint64, buyerBalance uint64, timestamp time.Time) (*PurchaseReceipt, error) {
	r := &PurchaseReceipt{
		PropertyId:    propertyId,
		Seller:        seller,
		Buyer:         buyer,
		Price:         price,
		SellerBalance: sellerBalance,
		BuyerBalance:  buyerBalance,
		Timestamp:     timestamp.UTC(),
	}
	digest, err := r.digest()
	if nil != err {
		return nil, err
	}
	r.Id = digest
	return r, nil
}

// Verify - check the id matches the contents
func (r *PurchaseReceipt) Verify() bool {
	digest, err := r.digest()
	if nil != err {
		return false
	}
	return digest == r.Id
}

// Pack - encode a receipt
func (r *PurchaseReceipt) Pack() ([]byte, error) {
	return json.Marshal(r)
}

// UnpackReceipt - decode a receipt
func UnpackReceipt(buffer []byte) (*PurchaseReceipt, error) {
	r := &PurchaseReceipt{}
	err := unpack(buffer, r)
	if nil != err {
		return nil, err
	}
	if "" == r.PropertyId {
		return nil, fault.ErrMalformedRecord
	}
	return r, nil
}

// the digest covers everything except the id itself
func (r *PurchaseReceipt) digest() (ReceiptId, error) {
	c := *r
	c.Id = ReceiptId{}
	buffer, err := json.Marshal(&c)
	if nil != err {
		return ReceiptId{}, err
	}
	return ReceiptId(sha3.Sum256(buffer)), nil
}
