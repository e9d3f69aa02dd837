package httpserver

import (
	"errors"
	"io"
	"log"
	"net/http"

	"casecraft/internal/domain"
	"github.com/gin-gonic/gin"
)

// signatureHeader carries the gateway's hex HMAC digest of the raw body.
const signatureHeader = "X-Razorpay-Signature"

// maxEventBytes caps webhook bodies. Gateway events are small JSON
// documents; anything larger is not one of ours.
const maxEventBytes = 1 << 20

// webhookHandler reads the raw body before any binding: the signature covers
// the exact bytes on the wire.
func webhookHandler(svc webhookService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxEventBytes)
		rawBody, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}

		err = svc.HandleEvent(c.Request.Context(), rawBody, c.GetHeader(signatureHeader))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidSignature):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			case errors.Is(err, domain.ErrMalformedEvent):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event"})
			default:
				// Includes an unresolved correlation id. Non-2xx so the
				// gateway redelivers once the local order exists.
				logger.Printf("webhook not applied: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "not updated"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
