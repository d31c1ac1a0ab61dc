package registry

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/pkg/logger"
)

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 100
	// MaxLimit caps a caller-supplied page size.
	MaxLimit = 1000
)

// Registry owns merchant records and serves all merchant operations.
type Registry struct {
	logger *logger.Logger

	repo models.Repository
}

// New creates a new merchant registry backed by the given repository.
func New(repo models.Repository, logger *logger.Logger) models.MerchantRegistry {
	return &Registry{
		repo:   repo,
		logger: logger,
	}
}

// Create generates a fresh merchant id and persists a new merchant with
// is_active=true. Field shapes are validated at the boundary, not here.
func (r *Registry) Create(fields *models.MerchantFields) (*models.Merchant, error) {
	merchant := &models.Merchant{
		MerchantID:       uuid.NewString(),
		CompanyName:      fields.CompanyName,
		CompanyAddress:   fields.CompanyAddress,
		WalletAddress:    fields.WalletAddress,
		CompanyLogo:      fields.CompanyLogo,
		StoreDescription: fields.StoreDescription,
		ContactEmail:     fields.ContactEmail,
		PaymentOptions:   datatypes.JSONSlice[string](fields.PaymentOptions),
		IsActive:         true,
	}

	if err := r.repo.CreateMerchant(merchant); err != nil {
		return nil, err
	}

	r.logger.Info("Merchant created ", "merchant_id ", merchant.MerchantID)
	return merchant, nil
}

// Get returns the merchant with the given external id.
func (r *Registry) Get(merchantID string) (*models.Merchant, error) {
	return r.repo.GetMerchant(merchantID)
}

// List returns merchants in insertion order. skip/limit default to 0/100
// when negative or zero; limit is capped at MaxLimit.
func (r *Registry) List(skip, limit int) ([]*models.Merchant, error) {
	skip, limit = NormalizePage(skip, limit)
	return r.repo.ListMerchants(skip, limit)
}

// Update replaces every mutable field of the merchant. The external id,
// internal id, creation timestamp and active flag are kept.
func (r *Registry) Update(merchantID string, fields *models.MerchantFields) (*models.Merchant, error) {
	merchant, err := r.repo.GetMerchant(merchantID)
	if err != nil {
		return nil, err
	}

	merchant.CompanyName = fields.CompanyName
	merchant.CompanyAddress = fields.CompanyAddress
	merchant.WalletAddress = fields.WalletAddress
	merchant.CompanyLogo = fields.CompanyLogo
	merchant.StoreDescription = fields.StoreDescription
	merchant.ContactEmail = fields.ContactEmail
	merchant.PaymentOptions = datatypes.JSONSlice[string](fields.PaymentOptions)

	if err := r.repo.SaveMerchant(merchant); err != nil {
		return nil, err
	}

	r.logger.Info("Merchant updated ", "merchant_id ", merchant.MerchantID)
	return merchant, nil
}

// Delete removes the merchant. A second delete of the same id reports
// ErrMerchantNotFound; a merchant with payments reports
// ErrMerchantHasPayments.
func (r *Registry) Delete(merchantID string) error {
	if err := r.repo.DeleteMerchant(merchantID); err != nil {
		return err
	}

	r.logger.Info("Merchant deleted ", "merchant_id ", merchantID)
	return nil
}

// NormalizePage applies the 0/100 pagination defaults and the MaxLimit cap.
func NormalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
