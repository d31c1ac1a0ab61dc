package models

import (
	"time"

	"gorm.io/datatypes"
)

// Payment status values. A payment starts as pending; updates may set
// any value over any other, there is no enforced transition graph.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Payment represents a single customer-to-merchant transfer record.
type Payment struct {
	// ID is the storage-assigned identity, used only for joins.
	ID uint `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// PaymentID is the externally visible identifier, generated at creation.
	PaymentID string `json:"payment_id" gorm:"column:payment_id;uniqueIndex;not null"`
	// MerchantRef is the internal identity of the owning merchant.
	// Immutable after creation.
	MerchantRef uint `json:"-" gorm:"column:merchant_ref;index;not null"`
	// Amount is the payment amount. No sign validation is performed.
	Amount float64 `json:"amount" gorm:"column:amount"`
	// Currency is the payment currency code (e.g. ETH, USDT).
	Currency string `json:"currency" gorm:"column:currency"`
	// Status is one of pending, completed, failed.
	Status string `json:"status" gorm:"column:status;index"`
	// TxHash is the client-supplied blockchain transaction reference.
	// Never verified on-chain; nil until set by an update.
	TxHash *string `json:"tx_hash" gorm:"column:tx_hash"`
	// CustomerWallet is the paying customer's wallet (0x + 40 hex characters).
	CustomerWallet string `json:"customer_wallet" gorm:"column:customer_wallet;not null"`
	// PaymentMetadata is free-form metadata stored and returned verbatim.
	PaymentMetadata datatypes.JSONMap `json:"payment_metadata" gorm:"column:payment_metadata"`
	// CreatedAt is set once when the payment is created.
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// PaymentFields carries the caller-supplied payment attributes for the
// create operation. MerchantID is the owning merchant's external id.
type PaymentFields struct {
	MerchantID      string
	Amount          float64
	Currency        string
	CustomerWallet  string
	PaymentMetadata map[string]interface{}
}

// PaymentDetail is a payment composed with its owning merchant. The
// ledger builds it with an explicit lookup at read time.
type PaymentDetail struct {
	Payment
	Merchant *Merchant `json:"merchant"`
}

// PaymentStatusInfo is the minimal status projection of a payment.
type PaymentStatusInfo struct {
	PaymentID string  `json:"payment_id"`
	Status    string  `json:"status"`
	TxHash    *string `json:"tx_hash"`
}
