package httpserver

import (
	"errors"
	"net/http"

	"casecraft/internal/domain"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	ConfigID string `json:"configId"`
	Address  *struct {
		ID string `json:"id"`
	} `json:"address"`
}

func checkoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if req.ConfigID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "configId required"})
			return
		}

		var shippingAddressID *string
		if req.Address != nil && req.Address.ID != "" {
			shippingAddressID = &req.Address.ID
		}

		session, err := svc.CreateSession(c.Request.Context(), currentUser(c), req.ConfigID, shippingAddressID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domain.ErrUnauthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "No such configuration found"})
			case errors.Is(err, domain.ErrUpstream):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

func getOrderHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), currentUser(c), c.Param("orderId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
