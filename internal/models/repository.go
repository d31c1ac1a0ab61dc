package models

type Repository interface {
	CreateMerchant(*Merchant) error
	GetMerchant(merchantID string) (*Merchant, error)
	GetMerchantByRef(ref uint) (*Merchant, error)
	ListMerchants(skip, limit int) ([]*Merchant, error)
	SaveMerchant(*Merchant) error
	DeleteMerchant(merchantID string) error

	CreatePayment(*Payment) error
	GetPayment(paymentID string) (*Payment, error)
	ListPaymentsByMerchant(ref uint, skip, limit int) ([]*Payment, error)
	UpdatePayment(paymentID string, status string, txHash *string) (*Payment, error)

	Close() error
}
