package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"testing"

	"casecraft/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec-test"

type stubOrderRepo struct {
	order     *domain.Order
	err       error
	calls     int
	lastOrder string
}

func (s *stubOrderRepo) MarkPaid(_ context.Context, orderID string) (*domain.Order, error) {
	s.calls++
	s.lastOrder = orderID
	if s.err != nil {
		return nil, s.err
	}
	if s.order != nil {
		return s.order, nil
	}
	return &domain.Order{ID: orderID, IsPaid: true}, nil
}

func newService(orders *stubOrderRepo) *Service {
	return New(orders, testSecret, log.New(io.Discard, "", 0))
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func orderPaidBody(orderID string) []byte {
	return []byte(fmt.Sprintf(`{
		"event": "order.paid",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_123",
					"notes": {"orderId": %q}
				}
			}
		}
	}`, orderID))
}

func TestHandleEventOrderPaid(t *testing.T) {
	orderID := uuid.NewString()
	orders := &stubOrderRepo{}
	svc := newService(orders)

	body := orderPaidBody(orderID)
	err := svc.HandleEvent(context.Background(), body, sign(body))
	require.NoError(t, err)
	assert.Equal(t, 1, orders.calls)
	assert.Equal(t, orderID, orders.lastOrder)
}

func TestHandleEventReplayIsIdempotent(t *testing.T) {
	orderID := uuid.NewString()
	orders := &stubOrderRepo{order: &domain.Order{ID: orderID, IsPaid: true}}
	svc := newService(orders)

	body := orderPaidBody(orderID)
	require.NoError(t, svc.HandleEvent(context.Background(), body, sign(body)))
	require.NoError(t, svc.HandleEvent(context.Background(), body, sign(body)))
	assert.Equal(t, 2, orders.calls)
}

func TestHandleEventTamperedBody(t *testing.T) {
	orderID := uuid.NewString()
	orders := &stubOrderRepo{}
	svc := newService(orders)

	body := orderPaidBody(orderID)
	sig := sign(body)
	tampered := make([]byte, len(body))
	copy(tampered, body)
	tampered[len(tampered)/2] ^= 0x01

	err := svc.HandleEvent(context.Background(), tampered, sig)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Zero(t, orders.calls, "tampered events must not mutate state")
}

func TestHandleEventMissingSignature(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders)
	err := svc.HandleEvent(context.Background(), orderPaidBody(uuid.NewString()), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Zero(t, orders.calls)
}

func TestHandleEventUnknownCorrelationID(t *testing.T) {
	orders := &stubOrderRepo{err: domain.ErrNotFound}
	svc := newService(orders)

	body := orderPaidBody(uuid.NewString())
	err := svc.HandleEvent(context.Background(), body, sign(body))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHandleEventMalformedShapes(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"not json", []byte(`{{{`)},
		{"missing event type", []byte(`{"payload":{}}`)},
		{"order.paid without correlation id", orderPaidBody("")},
		{"order.paid with garbage correlation id", orderPaidBody("not-a-uuid")},
		{"order.paid with array notes", []byte(`{"event":"order.paid","payload":{"payment":{"entity":{"id":"pay_1","notes":[]}}}}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &stubOrderRepo{}
			svc := newService(orders)
			err := svc.HandleEvent(context.Background(), tt.body, sign(tt.body))
			assert.ErrorIs(t, err, domain.ErrMalformedEvent)
			assert.Zero(t, orders.calls)
		})
	}
}

func TestHandleEventUnknownTypeIsNoOp(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders)

	body := []byte(`{"event":"refund.created","payload":{"refund":{"entity":{"id":"rfnd_1"}}}}`)
	err := svc.HandleEvent(context.Background(), body, sign(body))
	require.NoError(t, err)
	assert.Zero(t, orders.calls)
}

func TestHandleEventPaymentCapturedLogsOnly(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders)

	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_9","notes":{}}}}}`)
	err := svc.HandleEvent(context.Background(), body, sign(body))
	require.NoError(t, err)
	assert.Zero(t, orders.calls)
}
