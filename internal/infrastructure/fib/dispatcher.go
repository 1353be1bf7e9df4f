package fib

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/application/payment/paymentgateway"
	"github.com/orris-inc/fibgate/internal/infrastructure/metrics"
	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
	apperrors "github.com/orris-inc/fibgate/internal/shared/errors"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// maxResponseSize bounds how much of a gateway response body is read (1MB).
const maxResponseSize = 1 << 20

// Dispatcher issues exactly one HTTP call to the payments API per request.
type Dispatcher struct {
	paymentsURL string
	httpClient  *http.Client
	logger      logger.Interface
}

var _ paymentgateway.Dispatcher = (*Dispatcher)(nil)

func NewDispatcher(cfg *sharedConfig.FIBConfig, httpClient *http.Client, logger logger.Interface) *Dispatcher {
	return &Dispatcher{
		paymentsURL: cfg.GetPaymentsURL(),
		httpClient:  httpClient,
		logger:      logger,
	}
}

// NewHTTPClient returns the client shared by the token provider and the dispatcher.
// Transport is left nil so the default transport and its connection pool are used.
func NewHTTPClient(cfg *sharedConfig.FIBConfig) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

// URL returns the gateway URL for req.
func (d *Dispatcher) URL(req paymentgateway.DispatchRequest) string {
	switch req.Operation {
	case outcome.OperationCreate:
		return d.paymentsURL
	case outcome.OperationCancel:
		return d.paymentsURL + "/" + req.PaymentID + "/cancel"
	case outcome.OperationRefund:
		return d.paymentsURL + "/" + req.PaymentID + "/refund"
	case outcome.OperationCheckStatus:
		return d.paymentsURL + "/" + req.PaymentID + "/status"
	default:
		return ""
	}
}

func method(op outcome.Operation) string {
	if op == outcome.OperationCheckStatus {
		return http.MethodGet
	}
	return http.MethodPost
}

// Dispatch sends req and returns the raw status and body. Any response, whatever its
// status, is returned without error; only network failures are errors.
func (d *Dispatcher) Dispatch(ctx context.Context, req paymentgateway.DispatchRequest) (*outcome.RawResponse, error) {
	if !req.Operation.IsValid() {
		return nil, apperrors.NewInternalError(fmt.Sprintf("unknown operation %q", req.Operation))
	}

	var body io.Reader
	if req.Operation == outcome.OperationCreate {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method(req.Operation), d.URL(req), body)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build gateway request", err.Error()).WithCause(err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	httpReq.Header.Set("Cache-Control", "no-cache, no-store")
	httpReq.Header.Set("Pragma", "no-cache")
	httpReq.Header.Set("Accept", "application/json")
	if req.Operation == outcome.OperationCreate {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordUpstreamRequest(req.Operation.String(), 0, started)
		return nil, apperrors.NewTransportError("gateway request failed", err.Error()).WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	metrics.RecordUpstreamRequest(req.Operation.String(), resp.StatusCode, started)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to read gateway response", err.Error()).WithCause(err)
	}

	d.logger.Debugw("FIB API responded",
		"operation", req.Operation.LogName(),
		"payment_id", req.PaymentID,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	return &outcome.RawResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
