// Package gateway wraps the Razorpay API behind a narrow client interface so
// services receive an injected, explicitly constructed dependency.
package gateway

import (
	"context"
	"fmt"
	"log"

	"casecraft/internal/domain"
	razorpay "github.com/razorpay/razorpay-go"
)

// NoteOrderID is the notes key carrying the local order id. It is the join
// key between the gateway's order and ours: webhook events echo these notes
// back, and reconciliation reads the same key out of the event payload.
const NoteOrderID = "orderId"

// CreateOrderInput describes a gateway-side order. AmountCents is in paise,
// which Razorpay consumes directly.
type CreateOrderInput struct {
	AmountCents  int64
	Currency     string
	Receipt      string
	LocalOrderID string
}

// Order is the gateway's order, reduced to what checkout needs.
type Order struct {
	ID string
}

type Client interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error)
}

type razorpayClient struct {
	api    *razorpay.Client
	logger *log.Logger
}

// NewRazorpay builds a Client over the Razorpay SDK. Construct once at
// process start and inject; services never instantiate their own.
func NewRazorpay(keyID, keySecret string, logger *log.Logger) Client {
	return &razorpayClient{
		api:    razorpay.NewClient(keyID, keySecret),
		logger: logger,
	}
}

func (c *razorpayClient) CreateOrder(_ context.Context, in CreateOrderInput) (*Order, error) {
	body, err := c.api.Order.Create(orderPayload(in), nil)
	if err != nil {
		c.logger.Printf("razorpay order create failed for order %s: %v", in.LocalOrderID, err)
		return nil, fmt.Errorf("%w: create order: %v", domain.ErrUpstream, err)
	}
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: order response missing id", domain.ErrUpstream)
	}
	return &Order{ID: id}, nil
}

func orderPayload(in CreateOrderInput) map[string]interface{} {
	return map[string]interface{}{
		"amount":   in.AmountCents,
		"currency": in.Currency,
		"receipt":  in.Receipt,
		"notes": map[string]interface{}{
			NoteOrderID: in.LocalOrderID,
		},
	}
}
