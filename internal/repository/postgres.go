package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/pkg/logger"
)

type DB struct {
	logger *logger.Logger

	Conn *gorm.DB
}

// NewPostgresDB opens a PostgreSQL-backed repository.
func NewPostgresDB(user, password, dbname, host string, port int, logger *logger.Logger) (models.Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	db, err := New(postgres.Open(dsn), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Successfully connected to PostgreSQL!")
	return db, nil
}

// New opens a repository on the given dialector and migrates the schema.
// Tests use this with an in-memory SQLite dialector.
func New(dialector gorm.Dialector, logger *logger.Logger) (models.Repository, error) {
	// Configure GORM logger to suppress "record not found" messages
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use standard logger
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond, // Log queries slower than this
			LogLevel:                  gormLogger.Warn,        // Only log warnings or errors
			IgnoreRecordNotFoundError: true,                   // Suppress "record not found" errors
			Colorful:                  true,                   // Enable colorful logs
		},
	)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Merchant{}, &models.Payment{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return &DB{Conn: db, logger: logger}, nil
}

func (db *DB) Close() error {
	sqlDB, err := db.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

func (db *DB) CreateMerchant(merchant *models.Merchant) error {
	if err := db.Conn.Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}

	return nil
}

func (db *DB) GetMerchant(merchantID string) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := db.Conn.Where("merchant_id = ?", merchantID).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}

	return &merchant, nil
}

func (db *DB) GetMerchantByRef(ref uint) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := db.Conn.First(&merchant, ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMerchantNotFound
		}
		return nil, fmt.Errorf("failed to get merchant by ref: %w", err)
	}

	return &merchant, nil
}

func (db *DB) ListMerchants(skip, limit int) ([]*models.Merchant, error) {
	var merchants []*models.Merchant
	if err := db.Conn.Order("id ASC").Offset(skip).Limit(limit).Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}

	return merchants, nil
}

func (db *DB) SaveMerchant(merchant *models.Merchant) error {
	if err := db.Conn.Save(merchant).Error; err != nil {
		return fmt.Errorf("failed to save merchant: %w", err)
	}

	return nil
}

// DeleteMerchant removes a merchant. Deleting a merchant that still has
// payments is refused so ledger history is never orphaned.
func (db *DB) DeleteMerchant(merchantID string) error {
	return db.Conn.Transaction(func(tx *gorm.DB) error {
		var merchant models.Merchant
		if err := tx.Where("merchant_id = ?", merchantID).First(&merchant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrMerchantNotFound
			}
			return fmt.Errorf("failed to get merchant: %w", err)
		}

		var payments int64
		if err := tx.Model(&models.Payment{}).Where("merchant_ref = ?", merchant.ID).Count(&payments).Error; err != nil {
			return fmt.Errorf("failed to count merchant payments: %w", err)
		}
		if payments > 0 {
			return models.ErrMerchantHasPayments
		}

		if err := tx.Delete(&merchant).Error; err != nil {
			return fmt.Errorf("failed to delete merchant: %w", err)
		}
		return nil
	})
}

func (db *DB) CreatePayment(payment *models.Payment) error {
	if err := db.Conn.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (db *DB) GetPayment(paymentID string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Conn.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

func (db *DB) ListPaymentsByMerchant(ref uint, skip, limit int) ([]*models.Payment, error) {
	var payments []*models.Payment
	if err := db.Conn.Where("merchant_ref = ?", ref).Order("id ASC").Offset(skip).Limit(limit).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list merchant payments: %w", err)
	}

	return payments, nil
}

func (db *DB) UpdatePayment(paymentID string, status string, txHash *string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Conn.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	updates := map[string]interface{}{"status": status}
	if txHash != nil {
		updates["tx_hash"] = *txHash
	}
	if err := db.Conn.Model(&payment).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	// Re-read so the returned record carries the refreshed updated_at.
	if err := db.Conn.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to reload payment: %w", err)
	}
	return &payment, nil
}
