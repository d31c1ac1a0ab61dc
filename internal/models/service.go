package models

// APIServer serves the HTTP boundary.
type APIServer interface {
	Start()
	Shutdown() error
}

// MerchantRegistry owns merchant records.
type MerchantRegistry interface {
	// Create generates a fresh merchant id and persists a new merchant.
	Create(fields *MerchantFields) (*Merchant, error)

	// Get returns the merchant with the given external id.
	Get(merchantID string) (*Merchant, error)

	// List returns merchants in insertion order, paginated.
	List(skip, limit int) ([]*Merchant, error)

	// Update replaces every mutable field of the merchant.
	Update(merchantID string, fields *MerchantFields) (*Merchant, error)

	// Delete removes the merchant.
	Delete(merchantID string) error
}

// PaymentLedger owns payment records. It depends on the registry to
// resolve merchant references at creation time.
type PaymentLedger interface {
	// Create resolves the merchant reference and persists a new payment
	// with status pending.
	Create(fields *PaymentFields) (*PaymentDetail, error)

	// Get returns the payment with its merchant composed in.
	Get(paymentID string) (*PaymentDetail, error)

	// ListByMerchant returns the merchant's payments in insertion order,
	// paginated. An unknown merchant id yields an empty list, not an error.
	ListByMerchant(merchantID string, skip, limit int) ([]*PaymentDetail, error)

	// Update overwrites the payment status and, when supplied, the tx hash.
	Update(paymentID string, status string, txHash *string) (*PaymentDetail, error)

	// GetStatus returns the minimal status projection of the payment.
	GetStatus(paymentID string) (*PaymentStatusInfo, error)
}
