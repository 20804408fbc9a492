// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compositekey

import (
	"fmt"
	"time"
)

// UserKey - key of a user registration request
func UserKey(name string, nationalId string) string {
	return Build(User, name, nationalId)
}

// PropertyKey - key of a property registration request
func PropertyKey(propertyId string) string {
	return Build(Property, propertyId)
}

// ApprovedUserKey - key of an approved user
//
// this is also the owner value stored in an approved property, so the
// owner check and the self purchase check compare keys made here
func ApprovedUserKey(name string, nationalId string) string {
	return Build(ApprovedUser, name, nationalId)
}

// ApprovedPropertyKey - key of an approved property
func ApprovedPropertyKey(propertyId string) string {
	return Build(ApprovedProperty, propertyId)
}

// OwnerRef - display form of an owner as carried by a property request
func OwnerRef(name string, nationalId string) string {
	return name + "-" + nationalId
}

// ReceiptKey - key of a purchase receipt, ordered by time of purchase
//
// the sign bit is flipped so times before 1970 still sort first
func ReceiptKey(timestamp time.Time, propertyId string) string {
	ordered := uint64(timestamp.UnixNano()) ^ (1 << 63)
	return Build(Receipt, fmt.Sprintf("%016x", ordered), propertyId)
}
