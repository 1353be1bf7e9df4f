package usecases

import (
	"context"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// CancelPaymentUseCase cancels a payment that has not been paid yet.
type CancelPaymentUseCase struct {
	call   gatewayCall
	logger logger.Interface
}

func NewCancelPaymentUseCase(
	tokens paymentgateway.TokenProvider,
	dispatcher paymentgateway.Dispatcher,
	logger logger.Interface,
) *CancelPaymentUseCase {
	return &CancelPaymentUseCase{
		call:   newGatewayCall(tokens, dispatcher, logger),
		logger: logger,
	}
}

func (uc *CancelPaymentUseCase) Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error) {
	out, err := uc.call.run(ctx, paymentgateway.DispatchRequest{
		Operation: outcome.OperationCancel,
		PaymentID: paymentID,
	})
	if err != nil {
		return nil, err
	}

	if out.Success {
		uc.logger.Infow("payment cancelled", "payment_id", paymentID)
	}
	return out, nil
}
