package usecases

import (
	"context"
	"encoding/json"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// CheckPaymentStatusUseCase reads the current status from the gateway. Nothing is
// cached, so repeated calls always reflect the live gateway state.
type CheckPaymentStatusUseCase struct {
	call   gatewayCall
	logger logger.Interface
}

func NewCheckPaymentStatusUseCase(
	tokens paymentgateway.TokenProvider,
	dispatcher paymentgateway.Dispatcher,
	logger logger.Interface,
) *CheckPaymentStatusUseCase {
	return &CheckPaymentStatusUseCase{
		call:   newGatewayCall(tokens, dispatcher, logger),
		logger: logger,
	}
}

func (uc *CheckPaymentStatusUseCase) Execute(ctx context.Context, paymentID string) (*outcome.Outcome, error) {
	out, err := uc.call.run(ctx, paymentgateway.DispatchRequest{
		Operation: outcome.OperationCheckStatus,
		PaymentID: paymentID,
	})
	if err != nil {
		return nil, err
	}

	if out.Success {
		var status dto.CheckPaymentStatusResponse
		if err := json.Unmarshal(out.Body, &status); err == nil {
			uc.logger.Debugw("payment status fetched",
				"payment_id", paymentID,
				"status", status.Status,
				"declining_reason", status.DecliningReason,
			)
		}
	}
	return out, nil
}
