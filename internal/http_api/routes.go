package http_api

import "github.com/bytepay/bytepay/internal/metrics"

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	s.router.GET("/", s.root)
	s.router.GET("/metrics", metrics.Handler())

	api := s.router.Group("/api/v1")

	merchants := api.Group("/merchants")
	merchants.POST("", s.createMerchant)
	merchants.GET("", s.listMerchants)
	merchants.GET("/:id", s.getMerchant)
	merchants.PUT("/:id", s.updateMerchant)
	merchants.DELETE("/:id", s.deleteMerchant)

	payments := api.Group("/payments")
	payments.POST("", s.createPayment)
	payments.GET("/merchant/:id", s.listMerchantPayments)
	payments.GET("/:id", s.getPayment)
	payments.PUT("/:id", s.updatePayment)
	payments.GET("/:id/status", s.paymentStatus)
}
