package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPayload(t *testing.T) {
	payload := orderPayload(CreateOrderInput{
		AmountCents:  2200,
		Currency:     "INR",
		Receipt:      "rcp_abc",
		LocalOrderID: "order-1",
	})

	assert.Equal(t, int64(2200), payload["amount"])
	assert.Equal(t, "INR", payload["currency"])
	assert.Equal(t, "rcp_abc", payload["receipt"])

	notes, ok := payload["notes"].(map[string]interface{})
	require.True(t, ok, "notes must be a map")
	assert.Equal(t, "order-1", notes[NoteOrderID])
}
