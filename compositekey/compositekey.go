// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - derive world state keys from a namespace and
// an ordered list of attribute values
//
// layout is: 0x00 namespace 0x00 (part 0x00)*
//
// which is the same layout as a Fabric composite key; the bytes 0x00
// and 0x01 inside a namespace or part are escaped so that distinct
// inputs can never produce the same key
package compositekey

import (
	"strings"

	"github.com/bitmark-inc/regnetd/fault"
)

// namespaces of the property registration network
const (
	prefix = "org.property-registration-network.regnet."

	User             = prefix + "user"
	Property         = prefix + "property"
	ApprovedUser     = prefix + "approvedUser"
	ApprovedProperty = prefix + "approvedProperty"
	Receipt          = prefix + "receipt"
)

const (
	separator = 0x00
	escape    = 0x01

	escapedSeparator = 0x02
	escapedEscape    = 0x01
)

// Build - create a composite key
func Build(namespace string, parts ...string) string {
	var b strings.Builder
	b.WriteByte(separator)
	writeEscaped(&b, namespace)
	b.WriteByte(separator)
	for _, p := range parts {
		writeEscaped(&b, p)
		b.WriteByte(separator)
	}
	return b.String()
}

// Split - decompose a composite key into namespace and parts
func Split(key string) (string, []string, error) {
	if len(key) < 2 || separator != key[0] || separator != key[len(key)-1] {
		return "", nil, fault.ErrMalformedKey
	}

	fields := make([]string, 0, 4)
	var b strings.Builder

	for i := 1; i < len(key); i += 1 {
		c := key[i]
		switch c {
		case separator:
			fields = append(fields, b.String())
			b.Reset()
		case escape:
			i += 1
			if i >= len(key) {
				return "", nil, fault.ErrMalformedKey
			}
			switch key[i] {
			case escapedEscape:
				b.WriteByte(escape)
			case escapedSeparator:
				b.WriteByte(separator)
			default:
				return "", nil, fault.ErrMalformedKey
			}
		default:
			b.WriteByte(c)
		}
	}

	return fields[0], fields[1:], nil
}

// Namespace - return just the namespace of a key, "" if malformed
func Namespace(key string) string {
	ns, _, err := Split(key)
	if nil != err {
		return ""
	}
	return ns
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i += 1 {
		switch c := s[i]; c {
		case escape:
			b.WriteByte(escape)
			b.WriteByte(escapedEscape)
		case separator:
			b.WriteByte(escape)
			b.WriteByte(escapedSeparator)
		default:
			b.WriteByte(c)
		}
	}
}
