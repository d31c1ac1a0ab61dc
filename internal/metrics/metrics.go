package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var MerchantCreateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "bytepay_merchant_create_total",
		Help: "Total number of merchant creations",
	},
)

var PaymentCreateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "bytepay_payment_create_total",
		Help: "Total number of payment creations",
	},
)

var PaymentUpdateCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "bytepay_payment_update_total",
		Help: "Total number of payment status updates",
	},
)

var RequestDurationHistogram = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bytepay_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

func init() {
	prometheus.MustRegister(MerchantCreateCounter)
	prometheus.MustRegister(PaymentCreateCounter)
	prometheus.MustRegister(PaymentUpdateCounter)
	prometheus.MustRegister(RequestDurationHistogram)
}

// Handler exposes the prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// Middleware records the duration of every HTTP request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestDurationHistogram.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
