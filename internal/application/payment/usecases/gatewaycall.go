package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/shared/logger"
	"github.com/orris-inc/fibgate/internal/shared/utils/logutil"
)

const maxLoggedBody = 512

// gatewayCall runs the token → dispatch → normalize sequence shared by every payment
// operation. Each invocation fetches a new token and makes one gateway call.
type gatewayCall struct {
	tokens     paymentgateway.TokenProvider
	dispatcher paymentgateway.Dispatcher
	logger     logger.Interface
}

func newGatewayCall(tokens paymentgateway.TokenProvider, dispatcher paymentgateway.Dispatcher, log logger.Interface) gatewayCall {
	return gatewayCall{
		tokens:     tokens,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (g gatewayCall) run(ctx context.Context, req paymentgateway.DispatchRequest) (*outcome.Outcome, error) {
	// In-flight gateway calls are not aborted when the client goes away; the HTTP
	// client timeout is the only bound.
	ctx = context.WithoutCancel(ctx)

	op := req.Operation
	url := g.dispatcher.URL(req)

	token, err := g.tokens.AccessToken(ctx)
	if err != nil {
		g.logger.Errorw("failed to retrieve FIB access token",
			"operation", op.LogName(),
			"payment_id", req.PaymentID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to acquire access token: %w", err)
	}
	req.Token = token

	raw, err := g.dispatcher.Dispatch(ctx, req)
	if err != nil {
		g.logger.Errorw("FIB API request failed",
			"operation", op.LogName(),
			"payment_id", req.PaymentID,
			"url", url,
			"error", err,
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := outcome.Normalize(op, raw)
	if err != nil {
		g.logger.Errorw("unexpected FIB API response",
			"operation", op.LogName(),
			"payment_id", req.PaymentID,
			"url", url,
			"status", raw.StatusCode,
			"body", logutil.TruncateForLog(string(raw.Body), maxLoggedBody),
			"error", err,
		)
		return nil, err
	}

	if !out.Success {
		g.logger.Errorw("FIB API failure",
			"operation", op.LogName(),
			"payment_id", req.PaymentID,
			"url", url,
			"upstream_status", raw.StatusCode,
			"status", out.StatusCode,
			"trace_id", out.TraceID,
			"errors", out.ErrorDetails,
			"error", out.Err(),
		)
	}

	return out, nil
}
