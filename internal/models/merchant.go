package models

import (
	"time"

	"gorm.io/datatypes"
)

// Merchant represents a registered seller in the system.
type Merchant struct {
	// ID is the storage-assigned identity, used only for joins.
	ID uint `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// MerchantID is the externally visible identifier, generated at creation.
	MerchantID string `json:"merchant_id" gorm:"column:merchant_id;uniqueIndex;not null"`
	// CompanyName is the display name of the merchant.
	CompanyName string `json:"company_name" gorm:"column:company_name;index;not null"`
	// CompanyAddress is the postal address of the merchant.
	CompanyAddress string `json:"company_address" gorm:"column:company_address"`
	// WalletAddress is the merchant's receiving wallet (0x + 40 hex characters).
	WalletAddress string `json:"wallet_address" gorm:"column:wallet_address;not null"`
	// CompanyLogo is a URL pointing to the merchant's logo.
	CompanyLogo string `json:"company_logo" gorm:"column:company_logo"`
	// StoreDescription is a free-form description of the store.
	StoreDescription string `json:"store_description" gorm:"column:store_description"`
	// ContactEmail is the merchant's contact email address.
	ContactEmail string `json:"contact_email" gorm:"column:contact_email;not null"`
	// PaymentOptions is the ordered list of accepted currency codes (e.g. ETH, USDT).
	PaymentOptions datatypes.JSONSlice[string] `json:"payment_options" gorm:"column:payment_options"`
	// CreatedAt is set once when the merchant is created.
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	// IsActive indicates whether the merchant is active. Defaults to true.
	IsActive bool `json:"is_active" gorm:"column:is_active;default:true"`
}

// MerchantFields carries the caller-supplied merchant attributes for
// create and update operations. The boundary validates field shapes
// before these reach the registry.
type MerchantFields struct {
	CompanyName      string
	CompanyAddress   string
	WalletAddress    string
	CompanyLogo      string
	StoreDescription string
	ContactEmail     string
	PaymentOptions   []string
}
