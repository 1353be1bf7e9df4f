package usecases

import (
	"context"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// RefundPaymentUseCase asks the gateway to refund a paid payment. The gateway only
// accepts the request; completion shows up later in the payment status.
type RefundPaymentUseCase struct {
	call   gatewayCall
	logger logger.Interface
}

func NewRefundPaymentUseCase(
	tokens paymentgateway.TokenProvider,
	dispatcher paymentgateway.Dispatcher,
	logger logger.Interface,
) *RefundPaymentUseCase {
	return &RefundPaymentUseCase{
		call:   newGatewayCall(tokens, dispatcher, logger),
		logger: logger,
	}
}

func (uc *RefundPaymentUseCase) Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error) {
	out, err := uc.call.run(ctx, paymentgateway.DispatchRequest{
		Operation: outcome.OperationRefund,
		PaymentID: paymentID,
	})
	if err != nil {
		return nil, err
	}

	if out.Success {
		uc.logger.Infow("payment refund requested", "payment_id", paymentID)
	}
	return out, nil
}
