package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidCoupon = errors.New("invalid coupon code")
	ErrDuplicate     = errors.New("already exists")

	// ErrOrderStored marks a failure after the order row was written. The
	// order exists, so placing it again would duplicate it.
	ErrOrderStored = errors.New("order stored but not completed")
)
