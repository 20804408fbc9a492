// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk world state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Writes are only made inside a transaction: they are staged in a
// leveldb batch and a cache overlay, so later reads in the same
// transaction see them, and reach the database in a single atomic
// write on commit.  Abort discards everything staged.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = composite key (see compositekey package)
// 4. record       = JSON encoded record (see record package)
//
// World state:
//
//   S ++ key                   - users, properties, approved users, approved properties, receipts
//                                data: record
//
// Testing:
//   Z ++ key                   - testing data
package storage
