package paymentgateway

import (
	"context"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
)

// TokenProvider acquires a bearer token for the gateway. Implementations must not cache:
// the gateway issues tokens valid for about a minute, so every call re-authenticates.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// DispatchRequest describes one gateway call.
type DispatchRequest struct {
	Operation outcome.Operation
	PaymentID string
	// Body is the JSON document for create; ignored for the other operations.
	Body  []byte
	Token string
}

// Dispatcher performs exactly one gateway call and returns the raw response.
// Network failures are reported as transport errors.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) (*outcome.RawResponse, error)
	// URL returns the gateway URL the request would be sent to, for logging.
	URL(req DispatchRequest) string
}
