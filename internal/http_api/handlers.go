package http_api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// root is a handler for the / endpoint.
func (s *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "BytePay",
		"version": "1.0.0",
		"message": "Welcome to BytePay API",
	})
}

// intQuery reads an integer query parameter, falling back to the given
// default when absent or unparsable.
func intQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
