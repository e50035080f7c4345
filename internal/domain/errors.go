package domain

import "errors"

var (
	ErrUnknownCurrency   = errors.New("unknown currency")
	ErrUnknownRate       = errors.New("no conversion rate known")
	ErrInvalidStoredRate = errors.New("stored rate is not a decimal")
	ErrAmountOutOfRange  = errors.New("converted amount does not fit in subunits")
)
