package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
)

func TestNewStatusChangedEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewStatusChangedEvent("0b8d4a8e-5d6f-4c1a-9f3e-2a7b6c5d4e3f", vo.PaymentStatusPaid)

	assert.Equal(t, "0b8d4a8e-5d6f-4c1a-9f3e-2a7b6c5d4e3f", event.PaymentID)
	assert.Equal(t, vo.PaymentStatusPaid, event.Status)
	assert.False(t, event.ReceivedAt.Before(before))
	assert.Equal(t, time.UTC, event.ReceivedAt.Location())
}
