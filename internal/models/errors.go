package models

import "errors"

var (
	// ErrMerchantNotFound is returned when a merchant lookup by external id fails.
	// On payment creation it signals a bad merchant reference in the input.
	ErrMerchantNotFound = errors.New("merchant not found")

	// ErrPaymentNotFound is returned when a payment lookup by external id fails.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrMerchantHasPayments is returned when deleting a merchant that still
	// has payments recorded against it.
	ErrMerchantHasPayments = errors.New("merchant has recorded payments")
)
