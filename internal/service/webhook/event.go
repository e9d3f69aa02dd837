package webhook

import (
	"encoding/json"
	"fmt"

	"casecraft/internal/domain"
)

// Event types this reconciler understands. Anything else is acknowledged
// without side effects so new gateway event types cannot break delivery.
const (
	EventOrderPaid       = "order.paid"
	EventPaymentCaptured = "payment.captured"
)

// envelope is the outer shape of every gateway event. The payload is kept
// raw until the event type is known: only recognized types get their payload
// decoded, so an unrecognized type with an odd payload still acks cleanly.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// paymentPayload is the payload shape shared by order.paid and
// payment.captured deliveries.
type paymentPayload struct {
	Payment struct {
		Entity paymentEntity `json:"entity"`
	} `json:"payment"`
}

type paymentEntity struct {
	ID    string `json:"id"`
	Notes struct {
		// OrderID is the correlation id: the local order id embedded in the
		// gateway order's notes at checkout time.
		OrderID string `json:"orderId"`
	} `json:"notes"`
}

func parseEnvelope(raw []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}
	if env.Event == "" {
		return nil, fmt.Errorf("%w: missing event type", domain.ErrMalformedEvent)
	}
	return &env, nil
}

func parsePaymentPayload(raw json.RawMessage) (*paymentEntity, error) {
	var p paymentPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}
	return &p.Payment.Entity, nil
}
