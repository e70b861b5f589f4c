package domain

import "errors"

var (
	ErrPaymentMethodNotSelected = errors.New("payment method not selected")
	ErrUnknownPaymentMethod     = errors.New("unknown payment method")
	ErrInvalidChoice            = errors.New("invalid choice")
	ErrInvalidAmount            = errors.New("invalid payment amount")
	ErrUnknownObserver          = errors.New("unknown rate observer")
	ErrUnknownRateAction        = errors.New("unknown rate script action")
)
