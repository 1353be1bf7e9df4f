package payment

import (
	"context"
	"time"

	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
)

// StatusChangedEvent is raised when the gateway notifies us that a payment moved to a new
// status. It is forwarded to subscribers and never stored.
type StatusChangedEvent struct {
	PaymentID  string           `json:"payment_id"`
	Status     vo.PaymentStatus `json:"status"`
	ReceivedAt time.Time        `json:"received_at"`
}

func NewStatusChangedEvent(paymentID string, status vo.PaymentStatus) StatusChangedEvent {
	return StatusChangedEvent{
		PaymentID:  paymentID,
		Status:     status,
		ReceivedAt: time.Now().UTC(),
	}
}

// StatusEventPublisher fans status notifications out to interested listeners.
type StatusEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
