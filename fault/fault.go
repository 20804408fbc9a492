// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyApproved              = ExistsError("already approved")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrBalanceOverflow              = InvalidError("balance overflow")
	ErrBuyerNotApprovedOrNotFound   = NotFoundError("buyer either does not exist or is not approved")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrInsufficientFunds            = InvalidError("insufficient coins to purchase property")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCredential            = PermissionError("invalid credential")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidPrice                 = InvalidError("price must be greater than zero")
	ErrInvalidStatus                = InvalidError("status is neither registered nor onSale")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidTransactionId         = InvalidError("invalid bank transaction id")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMalformedKey                 = InvalidError("malformed composite key")
	ErrMalformedRecord              = InvalidError("malformed record")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotForSale                   = InvalidError("property is not for sale")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotOwner                     = PermissionError("user is not the owner of the property")
	ErrPropertyAlreadyExists        = ExistsError("property already exists")
	ErrPropertyNotFound             = NotFoundError("property not found")
	ErrPropertyNotFoundOrUnapproved = NotFoundError("property either does not exist or is not approved")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrReceiptNotFound              = NotFoundError("receipt not found")
	ErrSelfPurchase                 = InvalidError("buyer already owns this property")
	ErrSellerNotFound               = NotFoundError("seller not found")
	ErrStoreUnavailable             = ProcessError("store unavailable")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrUnauthorised                 = PermissionError("caller organisation is not authorised")
	ErrUserAlreadyExists            = ExistsError("user already exists")
	ErrUserNotApproved              = PermissionError("user is not approved")
	ErrUserNotFound                 = NotFoundError("user not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool    { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool   { var t NotFoundError; return errors.As(e, &t) }
func IsErrPermission(e error) bool { var t PermissionError; return errors.As(e, &t) }
func IsErrProcess(e error) bool    { var t ProcessError; return errors.As(e, &t) }

// Lookup - find the instance whose text matches, used to restore a
// typed error from the text carried by an RPC reply
func Lookup(text string) (error, bool) {
	e, ok := byText[text]
	return e, ok
}

var byText = func() map[string]error {
	m := make(map[string]error)
	for _, e := range []error{
		ErrAlreadyApproved,
		ErrBalanceOverflow,
		ErrBuyerNotApprovedOrNotFound,
		ErrInsufficientFunds,
		ErrInvalidCount,
		ErrInvalidCredential,
		ErrInvalidCursor,
		ErrInvalidPrice,
		ErrInvalidStatus,
		ErrInvalidTransactionId,
		ErrMalformedKey,
		ErrMalformedRecord,
		ErrMissingParameters,
		ErrNotForSale,
		ErrNotOwner,
		ErrPropertyAlreadyExists,
		ErrPropertyNotFound,
		ErrPropertyNotFoundOrUnapproved,
		ErrRateLimiting,
		ErrReceiptNotFound,
		ErrSelfPurchase,
		ErrSellerNotFound,
		ErrStoreUnavailable,
		ErrUnauthorised,
		ErrUserAlreadyExists,
		ErrUserNotApproved,
		ErrUserNotFound,
	} {
		m[e.Error()] = e
	}
	return m
}()
