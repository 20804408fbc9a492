// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/storage"
)

func TestFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, testElements)

	cursor := p.NewFetchCursor()

	data, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[0:3], data, "first page")

	data, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:6], data, "second page")

	data, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[6:], data, "last page")

	data, err = cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "data after end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")
}

func TestFetchVariableLengthKeys(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, []stringElement{
		{"a", "1"},
		{"a\x00", "2"},
		{"a\x00\x00", "3"},
		{"b", "4"},
	})

	cursor := p.NewFetchCursor()
	values := []string{}
	for {
		data, err := cursor.Fetch(1)
		assert.Nil(t, err, "fetch error")
		if 0 == len(data) {
			break
		}
		values = append(values, string(data[0].Value))
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, values, "keys skipped or repeated")
}

func TestFetchPrefix(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, testElements)
	putElements(t, p, []stringElement{{"other", "data"}})

	n := 0
	err := p.NewFetchCursor().Prefix([]byte("key-t")).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 2, n, "wrong number of prefixed elements")

	last, found := p.LastElement()
	assert.True(t, found, "no last element")
	assert.Equal(t, []byte("other"), last.Key, "wrong last element")
}

func TestCursorIgnoresStaged(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	trx.Put(p, []byte("staged"), []byte("value"))

	data, err := p.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(data), "cursor saw staged data")

	trx.Abort()

	value, _ := p.Get(nonExistantKey)
	assert.Nil(t, value, "nonexistant key found")
}
