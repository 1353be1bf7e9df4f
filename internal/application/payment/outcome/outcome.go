// Package outcome turns raw gateway responses into the single success/failure shape
// returned to API clients.
package outcome

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orris-inc/fibgate/internal/shared/errors"
)

const (
	UnknownErrorCode  = "UNKNOWN_FIB_ERROR"
	UnknownErrorTitle = "Unknown FIB Error"
	// UnknownErrorDetail is the message when the first error carries no text at all.
	UnknownErrorDetail = "Unknown FIB Error Detail"

	CancelledMessage = "Payment cancelled successfully"
	RefundMessage    = "Payment refund request initiated. Check payment status after a few minutes to confirm the refund."
)

// RawResponse is what the gateway returned, untouched.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// ErrorDetail is one entry of the gateway error envelope.
type ErrorDetail struct {
	Code   string `json:"code"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// ErrorPayload is the gateway's standard error envelope. It can also appear inside a
// 2xx check-status body.
type ErrorPayload struct {
	TraceID string        `json:"traceId,omitempty"`
	Errors  []ErrorDetail `json:"errors"`
}

// Outcome is either a success carrying a JSON body or a failure carrying the normalized
// gateway error.
type Outcome struct {
	Success    bool
	StatusCode int
	Body       json.RawMessage

	Message      string
	TraceID      string
	ErrorCode    string
	ErrorDetails []ErrorDetail
}

// Err describes a failed outcome as an upstream error, or returns nil on success.
func (o *Outcome) Err() error {
	if o.Success {
		return nil
	}
	return errors.NewUpstreamError(o.StatusCode, o.Message, o.ErrorCode)
}

// Normalize classifies raw for op. Upstream failures are returned as failed outcomes;
// the error is reserved for a success status whose body is not valid JSON.
func Normalize(op Operation, raw *RawResponse) (*Outcome, error) {
	switch op {
	case OperationCreate:
		if raw.StatusCode == op.successStatus() {
			if !json.Valid(raw.Body) {
				return nil, fmt.Errorf("create payment: gateway returned %d with a non-JSON body", raw.StatusCode)
			}
			return success(http.StatusCreated, raw.Body), nil
		}
	case OperationCancel:
		if raw.StatusCode == op.successStatus() {
			return success(http.StatusOK, messageBody(CancelledMessage)), nil
		}
	case OperationRefund:
		if raw.StatusCode == op.successStatus() {
			return success(http.StatusAccepted, messageBody(RefundMessage)), nil
		}
	case OperationCheckStatus:
		if raw.StatusCode >= 200 && raw.StatusCode < 300 {
			return normalizeStatusBody(raw)
		}
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	return failure(raw.StatusCode, parseErrorPayload(raw.Body)), nil
}

// normalizeStatusBody handles a 2xx check-status reply. The gateway may report
// application errors inside it; a non-empty errors array becomes a 400 failure.
func normalizeStatusBody(raw *RawResponse) (*Outcome, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw.Body, &fields); err != nil {
		if !json.Valid(raw.Body) {
			return nil, fmt.Errorf("check status: gateway returned %d with a non-JSON body: %w", raw.StatusCode, err)
		}
		// valid JSON that is not an object carries no errors
		return success(http.StatusOK, raw.Body), nil
	}

	var entries []json.RawMessage
	if rawErrors, ok := fields["errors"]; !ok || json.Unmarshal(rawErrors, &entries) != nil || len(entries) == 0 {
		return success(http.StatusOK, raw.Body), nil
	}

	payload := &ErrorPayload{Errors: make([]ErrorDetail, len(entries))}
	for i, entry := range entries {
		_ = json.Unmarshal(entry, &payload.Errors[i])
	}
	if rawTraceID, ok := fields["traceId"]; ok {
		_ = json.Unmarshal(rawTraceID, &payload.TraceID)
	}

	return failure(http.StatusBadRequest, payload), nil
}

// parseErrorPayload reads the gateway error envelope, falling back to a synthetic
// UNKNOWN_FIB_ERROR when the body is not JSON or has no errors.
func parseErrorPayload(body []byte) *ErrorPayload {
	var payload ErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		return &ErrorPayload{
			Errors: []ErrorDetail{{Code: UnknownErrorCode, Title: UnknownErrorTitle}},
		}
	}
	return &payload
}

// FirstErrorMessage prefers detail, then title, then code of the first error.
func FirstErrorMessage(errs []ErrorDetail) string {
	if len(errs) == 0 {
		return UnknownErrorDetail
	}
	first := errs[0]
	switch {
	case first.Detail != "":
		return first.Detail
	case first.Title != "":
		return first.Title
	case first.Code != "":
		return first.Code
	default:
		return UnknownErrorDetail
	}
}

func success(status int, body []byte) *Outcome {
	return &Outcome{
		Success:    true,
		StatusCode: status,
		Body:       body,
	}
}

func failure(status int, payload *ErrorPayload) *Outcome {
	return &Outcome{
		StatusCode:   status,
		Message:      FirstErrorMessage(payload.Errors),
		TraceID:      payload.TraceID,
		ErrorCode:    payload.Errors[0].Code,
		ErrorDetails: payload.Errors,
	}
}

func messageBody(message string) []byte {
	body, _ := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: message})
	return body
}
