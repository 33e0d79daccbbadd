// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// PaymentMethod specifies the payment method enum. Although this enum
// is numeric, it is (de)serialized as a string. Receipts use the lower
// case form (e.g., "card") while rate quotes advertise the upper case
// codes (e.g., "CARD") as the mobile client expects.
type PaymentMethod int

// Valid values for the PaymentMethod enum.
const (
	PaymentMethodInvalid PaymentMethod = iota // zero value is invalid

	PaymentMethodCash
	PaymentMethodBizum
	PaymentMethodCard
	PaymentMethodQR
	PaymentMethodMobile // Apple/Google Pay
)

// ErrUnknownPaymentMethod indicates that a given string may not be
// parsed as a known payment method. The invalid string itself is not
// included because the caller of ParsePaymentMethod already knows it.
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethodError indicates an invalid numeric payment method.
type PaymentMethodError int

// Error implements the error interface, returning a string
// representation of the PaymentMethodError.
func (e PaymentMethodError) Error() string {
	return fmt.Sprintf("invalid payment method: %d", e)
}

// Validate returns nil if PaymentMethod value is valid. For invalid
// values, an instance of the PaymentMethodError will be returned.
func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentMethodCash, PaymentMethodBizum, PaymentMethodCard,
		PaymentMethodQR, PaymentMethodMobile:
		return nil
	default:
		return PaymentMethodError(p)
	}
}

// String converts the PaymentMethod enum to its lower case name.
// Invalid payment methods cause a panic.
func (p PaymentMethod) String() string {
	switch p {
	case PaymentMethodCash:
		return "cash"
	case PaymentMethodBizum:
		return "bizum"
	case PaymentMethodCard:
		return "card"
	case PaymentMethodQR:
		return "qr"
	case PaymentMethodMobile:
		return "mobile"
	default:
		panic(PaymentMethodError(p))
	}
}

// Code returns the upper case code of p, as advertised in the
// paymentMethods field of rate quotes.
func (p PaymentMethod) Code() string {
	return strings.ToUpper(p.String())
}

// ParsePaymentMethod parses the given string case-insensitively and
// returns a PaymentMethod. For unknown strings, PaymentMethodInvalid and
// ErrUnknownPaymentMethod will be returned.
func ParsePaymentMethod(p string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "cash":
		return PaymentMethodCash, nil
	case "bizum":
		return PaymentMethodBizum, nil
	case "card":
		return PaymentMethodCard, nil
	case "qr":
		return PaymentMethodQR, nil
	case "mobile":
		return PaymentMethodMobile, nil
	default:
		return PaymentMethodInvalid, ErrUnknownPaymentMethod
	}
}
