package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/fibgate/internal/domain/payment"
	"github.com/orris-inc/fibgate/internal/shared/goroutine"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// PaymentStatusChannel is the Redis channel carrying payment status notifications.
const PaymentStatusChannel = "fibgate:payment:status"

// PaymentStatusEventHandler is called for every status event received.
type PaymentStatusEventHandler func(ctx context.Context, event payment.StatusChangedEvent)

// PaymentStatusEventSubscriber delivers status events until ctx is cancelled.
type PaymentStatusEventSubscriber interface {
	Subscribe(ctx context.Context, handler PaymentStatusEventHandler) error
}

// RedisPaymentStatusBus publishes and subscribes to status events over Redis Pub/Sub.
type RedisPaymentStatusBus struct {
	client *redis.Client
	logger logger.Interface
}

var (
	_ payment.StatusEventPublisher = (*RedisPaymentStatusBus)(nil)
	_ PaymentStatusEventSubscriber = (*RedisPaymentStatusBus)(nil)
)

func NewRedisPaymentStatusBus(client *redis.Client, logger logger.Interface) *RedisPaymentStatusBus {
	return &RedisPaymentStatusBus{
		client: client,
		logger: logger,
	}
}

// PublishStatusChanged publishes event on PaymentStatusChannel.
func (b *RedisPaymentStatusBus) PublishStatusChanged(ctx context.Context, event payment.StatusChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Publish(ctx, PaymentStatusChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("payment status event published",
		"payment_id", event.PaymentID,
		"status", event.Status,
	)
	return nil
}

// Subscribe blocks and calls handler for each event until ctx is done.
func (b *RedisPaymentStatusBus) Subscribe(ctx context.Context, handler PaymentStatusEventHandler) error {
	sub := b.client.Subscribe(ctx, PaymentStatusChannel)
	defer sub.Close()

	// Wait for subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to payment status events",
		"channel", PaymentStatusChannel,
	)

	ch := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("payment status subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("payment status channel closed")
				return nil
			}

			var event payment.StatusChangedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal payment status event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			goroutine.SafeGo(context.WithoutCancel(ctx), b.logger, "payment-status-handler", func(ctx context.Context) {
				handler(ctx, event)
			})
		}
	}
}

// LogOnlyPaymentStatusPublisher is used when Redis is disabled. Events are logged and dropped.
type LogOnlyPaymentStatusPublisher struct {
	logger logger.Interface
}

var _ payment.StatusEventPublisher = (*LogOnlyPaymentStatusPublisher)(nil)

func NewLogOnlyPaymentStatusPublisher(logger logger.Interface) *LogOnlyPaymentStatusPublisher {
	return &LogOnlyPaymentStatusPublisher{logger: logger}
}

func (p *LogOnlyPaymentStatusPublisher) PublishStatusChanged(_ context.Context, event payment.StatusChangedEvent) error {
	p.logger.Infow("payment status event (redis disabled, not forwarded)",
		"payment_id", event.PaymentID,
		"status", event.Status,
		"received_at", event.ReceivedAt,
	)
	return nil
}
