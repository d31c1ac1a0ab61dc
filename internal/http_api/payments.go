package http_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytepay/bytepay/internal/metrics"
	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/pkg/validation"
)

// PaymentCreateRequest represents the JSON body for payment creation.
// Amount carries no binding tag so zero and negative amounts pass through.
type PaymentCreateRequest struct {
	MerchantID      string                 `json:"merchant_id" binding:"required"`
	Amount          float64                `json:"amount"`
	Currency        string                 `json:"currency" binding:"required"`
	CustomerWallet  string                 `json:"customer_wallet" binding:"required"`
	PaymentMetadata map[string]interface{} `json:"payment_metadata"`
}

// PaymentUpdateRequest represents the JSON body for a payment status update
type PaymentUpdateRequest struct {
	Status string  `json:"status" binding:"required"`
	TxHash *string `json:"tx_hash"`
}

// createPayment is a handler for the POST /payments endpoint.
func (s *HTTPServer) createPayment(c *gin.Context) {
	var req PaymentCreateRequest

	// Parse and validate JSON request body
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := validation.ValidateWalletAddress(req.CustomerWallet); err != nil {
		s.logger.Debug("Invalid customer wallet", "error", err, "address", req.CustomerWallet)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid customer wallet: " + err.Error()})
		return
	}

	payment, err := s.ledger.Create(&models.PaymentFields{
		MerchantID:      req.MerchantID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		CustomerWallet:  req.CustomerWallet,
		PaymentMetadata: req.PaymentMetadata,
	})
	if err != nil {
		// A bad merchant reference is a client error, not a server fault.
		if errors.Is(err, models.ErrMerchantNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Merchant not found"})
			return
		}
		s.logger.Error("Failed to create payment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	metrics.PaymentCreateCounter.Inc()
	c.JSON(http.StatusOK, payment)
}

// listMerchantPayments is a handler for the GET /payments/merchant/:id
// endpoint. An unknown merchant id yields an empty array, not a 404.
func (s *HTTPServer) listMerchantPayments(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	payments, err := s.ledger.ListByMerchant(c.Param("id"), skip, limit)
	if err != nil {
		s.logger.Error("Failed to list merchant payments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list merchant payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// getPayment is a handler for the GET /payments/:id endpoint.
func (s *HTTPServer) getPayment(c *gin.Context) {
	payment, err := s.ledger.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		s.logger.Error("Failed to get payment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

// updatePayment is a handler for the PUT /payments/:id endpoint.
func (s *HTTPServer) updatePayment(c *gin.Context) {
	var req PaymentUpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	payment, err := s.ledger.Update(c.Param("id"), req.Status, req.TxHash)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		s.logger.Error("Failed to update payment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	metrics.PaymentUpdateCounter.Inc()
	c.JSON(http.StatusOK, payment)
}

// paymentStatus is a handler for the GET /payments/:id/status endpoint.
func (s *HTTPServer) paymentStatus(c *gin.Context) {
	status, err := s.ledger.GetStatus(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		s.logger.Error("Failed to get payment status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
