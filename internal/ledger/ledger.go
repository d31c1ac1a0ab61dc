package ledger

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/internal/registry"
	"github.com/bytepay/bytepay/pkg/logger"
)

// Ledger owns payment records and serves all payment operations. It
// resolves merchant references through the registry and composes the
// owning merchant into every returned payment with an explicit lookup.
type Ledger struct {
	logger *logger.Logger

	repo     models.Repository
	registry models.MerchantRegistry
}

// New creates a new payment ledger backed by the given repository and
// merchant registry.
func New(repo models.Repository, registry models.MerchantRegistry, logger *logger.Logger) models.PaymentLedger {
	return &Ledger{
		repo:     repo,
		registry: registry,
		logger:   logger,
	}
}

// Create resolves the merchant reference and persists a new payment with
// status pending and no tx hash. ErrMerchantNotFound signals a bad
// merchant reference; no payment record is written in that case.
func (l *Ledger) Create(fields *models.PaymentFields) (*models.PaymentDetail, error) {
	merchant, err := l.registry.Get(fields.MerchantID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		PaymentID:       uuid.NewString(),
		MerchantRef:     merchant.ID,
		Amount:          fields.Amount,
		Currency:        fields.Currency,
		Status:          models.StatusPending,
		CustomerWallet:  fields.CustomerWallet,
		PaymentMetadata: datatypes.JSONMap(fields.PaymentMetadata),
	}

	if err := l.repo.CreatePayment(payment); err != nil {
		return nil, err
	}

	l.logger.Info("Payment created ", "payment_id ", payment.PaymentID, "merchant_id ", merchant.MerchantID)
	return &models.PaymentDetail{Payment: *payment, Merchant: merchant}, nil
}

// Get returns the payment with its merchant composed in.
func (l *Ledger) Get(paymentID string) (*models.PaymentDetail, error) {
	payment, err := l.repo.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}

	return l.compose(payment)
}

// ListByMerchant returns the merchant's payments in insertion order,
// paginated as in the registry. An unknown merchant id yields an empty
// list, never ErrMerchantNotFound.
func (l *Ledger) ListByMerchant(merchantID string, skip, limit int) ([]*models.PaymentDetail, error) {
	merchant, err := l.registry.Get(merchantID)
	if err != nil {
		if errors.Is(err, models.ErrMerchantNotFound) {
			return []*models.PaymentDetail{}, nil
		}
		return nil, err
	}

	skip, limit = registry.NormalizePage(skip, limit)
	payments, err := l.repo.ListPaymentsByMerchant(merchant.ID, skip, limit)
	if err != nil {
		return nil, err
	}

	details := make([]*models.PaymentDetail, 0, len(payments))
	for _, payment := range payments {
		details = append(details, &models.PaymentDetail{Payment: *payment, Merchant: merchant})
	}
	return details, nil
}

// Update overwrites the payment status and, when supplied, the tx hash.
// Any status value overwrites any other; there is no transition graph.
func (l *Ledger) Update(paymentID string, status string, txHash *string) (*models.PaymentDetail, error) {
	payment, err := l.repo.UpdatePayment(paymentID, status, txHash)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Payment updated ", "payment_id ", paymentID, "status ", status)
	return l.compose(payment)
}

// GetStatus returns the minimal status projection of the payment.
func (l *Ledger) GetStatus(paymentID string) (*models.PaymentStatusInfo, error) {
	payment, err := l.repo.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}

	return &models.PaymentStatusInfo{
		PaymentID: payment.PaymentID,
		Status:    payment.Status,
		TxHash:    payment.TxHash,
	}, nil
}

// compose joins the owning merchant onto the payment at read time.
func (l *Ledger) compose(payment *models.Payment) (*models.PaymentDetail, error) {
	merchant, err := l.repo.GetMerchantByRef(payment.MerchantRef)
	if err != nil {
		return nil, err
	}
	return &models.PaymentDetail{Payment: *payment, Merchant: merchant}, nil
}
