package httpserver

import (
	"errors"
	"net/http"

	"casecraft/internal/domain"
	addrsvc "casecraft/internal/service/address"
	"github.com/gin-gonic/gin"
)

type createAddressRequest struct {
	UserID          string               `json:"userId"`
	ShippingAddress *addrsvc.CreateInput `json:"shippingAddress"`
}

func listAddressesHandler(svc addressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Id is required."})
			return
		}
		addresses, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if addresses == nil {
			addresses = []domain.Address{}
		}
		c.JSON(http.StatusOK, gin.H{"res": addresses})
	}
}

func createAddressHandler(svc addressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and shippingAddress are required"})
			return
		}
		if req.UserID == "" || req.ShippingAddress == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and shippingAddress are required"})
			return
		}
		created, err := svc.Create(c.Request.Context(), req.UserID, *req.ShippingAddress)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func getAddressHandler(svc addressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, err := svc.Get(c.Request.Context(), c.Param("addressId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

func updateAddressHandler(svc addressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addrsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		updated, err := svc.Update(c.Request.Context(), currentUser(c), c.Param("addressId"), in)
		if err != nil {
			respondAddressMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteAddressHandler(svc addressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), currentUser(c), c.Param("addressId"))
		if err != nil {
			respondAddressMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully", "deleted": deleted})
	}
}

func respondAddressMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You need to be logged in"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
