package usecases

import (
	"context"
	"sync"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/domain/payment"
)

type mockTokenProvider struct {
	token string
	err   error
	calls int
}

func (m *mockTokenProvider) AccessToken(ctx context.Context) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

type mockDispatcher struct {
	response *outcome.RawResponse
	err      error
	requests []paymentgateway.DispatchRequest
	ctxErr   error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, req paymentgateway.DispatchRequest) (*outcome.RawResponse, error) {
	m.requests = append(m.requests, req)
	m.ctxErr = ctx.Err()
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockDispatcher) URL(req paymentgateway.DispatchRequest) string {
	return "https://fib.test/protected/v1/payments/" + req.PaymentID
}

type mockPublisher struct {
	mu     sync.Mutex
	events []payment.StatusChangedEvent
	err    error
}

func (m *mockPublisher) PublishStatusChanged(ctx context.Context, event payment.StatusChangedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}
