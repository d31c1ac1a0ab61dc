package http_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytepay/bytepay/internal/metrics"
	"github.com/bytepay/bytepay/internal/models"
	"github.com/bytepay/bytepay/pkg/validation"
)

// MerchantRequest represents the JSON body for merchant creation and update
type MerchantRequest struct {
	CompanyName      string   `json:"company_name" binding:"required"`
	CompanyAddress   string   `json:"company_address"`
	WalletAddress    string   `json:"wallet_address" binding:"required"`
	CompanyLogo      string   `json:"company_logo" binding:"omitempty,url"`
	StoreDescription string   `json:"store_description"`
	ContactEmail     string   `json:"contact_email" binding:"required,email"`
	PaymentOptions   []string `json:"payment_options"`
}

func (r *MerchantRequest) fields() *models.MerchantFields {
	return &models.MerchantFields{
		CompanyName:      r.CompanyName,
		CompanyAddress:   r.CompanyAddress,
		WalletAddress:    r.WalletAddress,
		CompanyLogo:      r.CompanyLogo,
		StoreDescription: r.StoreDescription,
		ContactEmail:     r.ContactEmail,
		PaymentOptions:   r.PaymentOptions,
	}
}

// createMerchant is a handler for the POST /merchants endpoint.
func (s *HTTPServer) createMerchant(c *gin.Context) {
	var req MerchantRequest

	// Parse and validate JSON request body
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := validation.ValidateWalletAddress(req.WalletAddress); err != nil {
		s.logger.Debug("Invalid wallet address", "error", err, "address", req.WalletAddress)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid wallet address: " + err.Error()})
		return
	}

	merchant, err := s.registry.Create(req.fields())
	if err != nil {
		s.logger.Error("Failed to create merchant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create merchant"})
		return
	}

	metrics.MerchantCreateCounter.Inc()
	c.JSON(http.StatusOK, merchant)
}

// listMerchants is a handler for the GET /merchants endpoint.
func (s *HTTPServer) listMerchants(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	merchants, err := s.registry.List(skip, limit)
	if err != nil {
		s.logger.Error("Failed to list merchants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list merchants"})
		return
	}

	c.JSON(http.StatusOK, merchants)
}

// getMerchant is a handler for the GET /merchants/:id endpoint.
func (s *HTTPServer) getMerchant(c *gin.Context) {
	merchant, err := s.registry.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
			return
		}
		s.logger.Error("Failed to get merchant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get merchant"})
		return
	}

	c.JSON(http.StatusOK, merchant)
}

// updateMerchant is a handler for the PUT /merchants/:id endpoint.
// Every mutable field is replaced with the supplied value.
func (s *HTTPServer) updateMerchant(c *gin.Context) {
	var req MerchantRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := validation.ValidateWalletAddress(req.WalletAddress); err != nil {
		s.logger.Debug("Invalid wallet address", "error", err, "address", req.WalletAddress)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid wallet address: " + err.Error()})
		return
	}

	merchant, err := s.registry.Update(c.Param("id"), req.fields())
	if err != nil {
		if errors.Is(err, models.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
			return
		}
		s.logger.Error("Failed to update merchant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update merchant"})
		return
	}

	c.JSON(http.StatusOK, merchant)
}

// deleteMerchant is a handler for the DELETE /merchants/:id endpoint.
func (s *HTTPServer) deleteMerchant(c *gin.Context) {
	err := s.registry.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrMerchantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchant not found"})
			return
		}
		if errors.Is(err, models.ErrMerchantHasPayments) {
			c.JSON(http.StatusConflict, gin.H{"error": "Merchant has recorded payments"})
			return
		}
		s.logger.Error("Failed to delete merchant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete merchant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Merchant deleted",
	})
}
