// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the entities kept in the world state
//
// every record is stored as a JSON object under a composite key:
//
//   user request          compositekey.UserKey(name, nationalId)              -> User
//   approved user         compositekey.ApprovedUserKey(name, nationalId)      -> User
//   property request      compositekey.PropertyKey(propertyId)                -> Property
//   approved property     compositekey.ApprovedPropertyKey(propertyId)        -> Property
//   purchase receipt      compositekey.Build(Receipt, timestamp, propertyId)  -> PurchaseReceipt
//
// an approved user has the same shape as a user request; its coin
// balance is the one used when a property is bought
package record
