package pubsub

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/fibgate/internal/domain/payment"
	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

const testPaymentID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func setupTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return client
}

func TestRedisPaymentStatusBus_PublishSubscribe(t *testing.T) {
	client := setupTestRedis(t)
	bus := NewRedisPaymentStatusBus(client, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan payment.StatusChangedEvent, 1)
	done := make(chan error, 1)
	go func() {
		done <- bus.Subscribe(ctx, func(_ context.Context, event payment.StatusChangedEvent) {
			received <- event
		})
	}()

	// miniredis drops messages published before anyone subscribes.
	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, PaymentStatusChannel).Result()
		return err == nil && n[PaymentStatusChannel] > 0
	}, 2*time.Second, 10*time.Millisecond)

	event := payment.NewStatusChangedEvent(testPaymentID, vo.PaymentStatusPaid)
	require.NoError(t, bus.PublishStatusChanged(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, testPaymentID, got.PaymentID)
		assert.Equal(t, vo.PaymentStatusPaid, got.Status)
		assert.True(t, event.ReceivedAt.Equal(got.ReceivedAt))
	case <-time.After(2 * time.Second):
		t.Fatal("status event not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}

func TestRedisPaymentStatusBus_PublishError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	bus := NewRedisPaymentStatusBus(client, logger.NewNop())
	err := bus.PublishStatusChanged(context.Background(), payment.NewStatusChangedEvent(testPaymentID, vo.PaymentStatusDeclined))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestLogOnlyPaymentStatusPublisher(t *testing.T) {
	p := NewLogOnlyPaymentStatusPublisher(logger.NewNop())

	err := p.PublishStatusChanged(context.Background(), payment.NewStatusChangedEvent(testPaymentID, vo.PaymentStatusUnpaid))

	assert.NoError(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &sharedConfig.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr.Port())}
	client, err := NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &sharedConfig.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr.Port())}
	mr.Close()

	_, err := NewRedisClient(context.Background(), cfg)

	assert.Error(t, err)
}

func mustPort(t *testing.T, port string) int {
	t.Helper()
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}
