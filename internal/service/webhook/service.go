// Package webhook reconciles verified payment-gateway events with local
// order state. The signature check is a hard gate: nothing is parsed and
// nothing mutates until the body authenticates.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"casecraft/internal/domain"
	"github.com/google/uuid"
)

type Service struct {
	orders orderRepo
	secret []byte
	logger *log.Logger
}

type orderRepo interface {
	MarkPaid(ctx context.Context, orderID string) (*domain.Order, error)
}

func New(orders orderRepo, webhookSecret string, logger *log.Logger) *Service {
	return &Service{orders: orders, secret: []byte(webhookSecret), logger: logger}
}

// HandleEvent verifies and applies one gateway delivery. The signature must
// be the hex HMAC-SHA256 of the exact raw body. Deliveries may repeat;
// order.paid is idempotent because MarkPaid is.
func (s *Service) HandleEvent(ctx context.Context, rawBody []byte, signature string) error {
	if !s.verify(rawBody, signature) {
		return domain.ErrInvalidSignature
	}

	env, err := parseEnvelope(rawBody)
	if err != nil {
		return err
	}

	switch env.Event {
	case EventOrderPaid:
		entity, err := parsePaymentPayload(env.Payload)
		if err != nil {
			return err
		}
		orderID := entity.Notes.OrderID
		if orderID == "" {
			return fmt.Errorf("%w: order.paid without correlation id", domain.ErrMalformedEvent)
		}
		if _, err := uuid.Parse(orderID); err != nil {
			return fmt.Errorf("%w: correlation id %q is not a valid order id", domain.ErrMalformedEvent, orderID)
		}
		ord, err := s.orders.MarkPaid(ctx, orderID)
		if err != nil {
			return fmt.Errorf("mark order %s paid: %w", orderID, err)
		}
		s.logger.Printf("order %s reconciled as paid", ord.ID)
		return nil
	case EventPaymentCaptured:
		entity, err := parsePaymentPayload(env.Payload)
		if err != nil {
			return err
		}
		s.logger.Printf("payment captured: %s", entity.ID)
		return nil
	default:
		s.logger.Printf("ignoring event type %q", env.Event)
		return nil
	}
}

func (s *Service) verify(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
