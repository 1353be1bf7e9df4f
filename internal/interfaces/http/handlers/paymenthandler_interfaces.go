package handlers

import (
	"context"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
)

// Use case interfaces for PaymentHandler

type createPaymentUseCase interface {
	Execute(ctx context.Context, req *dto.CreatePaymentRequest) (*outcome.Outcome, error)
}

type cancelPaymentUseCase interface {
	Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error)
}

type refundPaymentUseCase interface {
	Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error)
}

type checkPaymentStatusUseCase interface {
	Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error)
}

// Use case interfaces for CallbackHandler

type handleStatusCallbackUseCase interface {
	Execute(ctx context.Context, cb *dto.PaymentStatusCallback) error
}
