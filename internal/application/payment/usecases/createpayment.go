package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

type CreatePaymentUseCase struct {
	call   gatewayCall
	logger logger.Interface
}

func NewCreatePaymentUseCase(
	tokens paymentgateway.TokenProvider,
	dispatcher paymentgateway.Dispatcher,
	logger logger.Interface,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		call:   newGatewayCall(tokens, dispatcher, logger),
		logger: logger,
	}
}

// Execute forwards a validated request to the gateway. On success the outcome body is the
// gateway's payment representation, unchanged.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, req *dto.CreatePaymentRequest) (*outcome.Outcome, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode create payment request: %w", err)
	}

	out, err := uc.call.run(ctx, paymentgateway.DispatchRequest{
		Operation: outcome.OperationCreate,
		Body:      body,
	})
	if err != nil {
		return nil, err
	}

	if out.Success {
		var created dto.PaymentResponse
		if err := json.Unmarshal(out.Body, &created); err == nil {
			uc.logger.Infow("payment created",
				"payment_id", created.PaymentID,
				"readable_code", created.ReadableCode,
				"amount", req.MonetaryValue.Amount,
				"currency", req.MonetaryValue.Currency,
			)
		}
	}

	return out, nil
}
