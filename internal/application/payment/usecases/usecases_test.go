package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	vo "github.com/orris-inc/fibgate/internal/domain/payment/valueobjects"
	apperrors "github.com/orris-inc/fibgate/internal/shared/errors"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

const testPaymentID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func newCreateRequest() *dto.CreatePaymentRequest {
	return &dto.CreatePaymentRequest{
		MonetaryValue: &dto.MonetaryValueRequest{Amount: "500", Currency: "IQD"},
	}
}

func TestCreatePayment_Success(t *testing.T) {
	body := `{"paymentId":"` + testPaymentID + `","readableCode":"ABC"}`
	tokens := &mockTokenProvider{token: "tok"}
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusCreated, Body: []byte(body)}}

	uc := NewCreatePaymentUseCase(tokens, dispatcher, logger.NewNop())
	out, err := uc.Execute(context.Background(), newCreateRequest())

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.JSONEq(t, body, string(out.Body))

	require.Len(t, dispatcher.requests, 1)
	req := dispatcher.requests[0]
	assert.Equal(t, outcome.OperationCreate, req.Operation)
	assert.Equal(t, "tok", req.Token)
	assert.JSONEq(t, `{"monetaryValue":{"amount":"500","currency":"IQD"}}`, string(req.Body))
}

func TestCreatePayment_ForwardsOptionalFields(t *testing.T) {
	category := vo.CategoryECommerce
	desc := "order 42"
	req := newCreateRequest()
	req.Description = &desc
	req.Category = &category

	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusCreated, Body: []byte(`{}`)}}
	uc := NewCreatePaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(dispatcher.requests[0].Body, &sent))
	assert.Equal(t, "order 42", sent["description"])
	assert.Equal(t, "ECOMMERCE", sent["category"])
	assert.NotContains(t, sent, "redirectUri")
}

func TestCreatePayment_TokenFailureSkipsDispatch(t *testing.T) {
	tokens := &mockTokenProvider{err: apperrors.NewAuthError("missing credentials")}
	dispatcher := &mockDispatcher{}

	uc := NewCreatePaymentUseCase(tokens, dispatcher, logger.NewNop())
	out, err := uc.Execute(context.Background(), newCreateRequest())

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, apperrors.IsAuthError(err))
	assert.Empty(t, dispatcher.requests)
}

func TestCreatePayment_NonJSONSuccessBody(t *testing.T) {
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusCreated, Body: []byte("<html>")}}
	uc := NewCreatePaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), newCreateRequest())

	require.Error(t, err)
	assert.Nil(t, out)
	assert.False(t, apperrors.IsAuthError(err))
}

func TestCreatePayment_TransportFailure(t *testing.T) {
	dispatcher := &mockDispatcher{err: apperrors.NewTransportError("connection refused")}
	uc := NewCreatePaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	_, err := uc.Execute(context.Background(), newCreateRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsTransportError(err))
}

func TestCreatePayment_UpstreamFailureIsOutcome(t *testing.T) {
	body := `{"traceId":"t-1","errors":[{"code":"INVALID","title":"Bad","detail":"Amount too low"}]}`
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusUnprocessableEntity, Body: []byte(body)}}
	uc := NewCreatePaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), newCreateRequest())

	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, out.StatusCode)
	assert.Equal(t, "Amount too low", out.Message)
	assert.Equal(t, "t-1", out.TraceID)
	assert.Equal(t, "INVALID", out.ErrorCode)
}

func TestCancelPayment(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantSuccess bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no content means cancelled",
			status:      http.StatusNoContent,
			wantSuccess: true,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "already paid",
			status:      http.StatusBadRequest,
			body:        `{"errors":[{"code":"PAYMENT_ALREADY_PAID","title":"Already paid"}]}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Already paid",
		},
		{
			name:        "unparseable error body",
			status:      http.StatusBadGateway,
			body:        "gateway down",
			wantStatus:  http.StatusBadGateway,
			wantMessage: outcome.UnknownErrorTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: tt.status, Body: []byte(tt.body)}}
			uc := NewCancelPaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

			out, err := uc.Execute(context.Background(), testPaymentID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, out.Success)
			assert.Equal(t, tt.wantStatus, out.StatusCode)
			if tt.wantSuccess {
				assert.JSONEq(t, `{"message":"Payment cancelled successfully"}`, string(out.Body))
			} else {
				assert.Equal(t, tt.wantMessage, out.Message)
			}

			require.Len(t, dispatcher.requests, 1)
			assert.Equal(t, outcome.OperationCancel, dispatcher.requests[0].Operation)
			assert.Equal(t, testPaymentID, dispatcher.requests[0].PaymentID)
			assert.Empty(t, dispatcher.requests[0].Body)
		})
	}
}

func TestRefundPayment_Accepted(t *testing.T) {
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusAccepted}}
	uc := NewRefundPaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), testPaymentID)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, http.StatusAccepted, out.StatusCode)
	assert.JSONEq(t, `{"message":"`+outcome.RefundMessage+`"}`, string(out.Body))
	assert.Equal(t, outcome.OperationRefund, dispatcher.requests[0].Operation)
}

func TestRefundPayment_OKIsNotSuccess(t *testing.T) {
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}}
	uc := NewRefundPaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), testPaymentID)

	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, outcome.UnknownErrorCode, out.ErrorCode)
}

func TestCheckPaymentStatus_Paid(t *testing.T) {
	body := `{"paymentId":"` + testPaymentID + `","status":"PAID","paidAt":"2024-01-01T10:00:00Z"}`
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusOK, Body: []byte(body)}}
	uc := NewCheckPaymentStatusUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), testPaymentID)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.JSONEq(t, body, string(out.Body))
	assert.Equal(t, outcome.OperationCheckStatus, dispatcher.requests[0].Operation)
}

func TestCheckPaymentStatus_EmbeddedErrors(t *testing.T) {
	body := `{"traceId":"abc","errors":[{"code":"NOT_FOUND","detail":"Payment not found"}]}`
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusOK, Body: []byte(body)}}
	uc := NewCheckPaymentStatusUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(context.Background(), testPaymentID)

	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, http.StatusBadRequest, out.StatusCode)
	assert.Equal(t, "Payment not found", out.Message)
	assert.Equal(t, "abc", out.TraceID)
	assert.Equal(t, "NOT_FOUND", out.ErrorCode)
}

func TestCheckPaymentStatus_FetchesFreshEachCall(t *testing.T) {
	tokens := &mockTokenProvider{token: "tok"}
	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{"status":"UNPAID"}`)}}
	uc := NewCheckPaymentStatusUseCase(tokens, dispatcher, logger.NewNop())

	first, err := uc.Execute(context.Background(), testPaymentID)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), testPaymentID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, tokens.calls)
	assert.Len(t, dispatcher.requests, 2)
}

func TestGatewayCall_IgnoresInboundCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dispatcher := &mockDispatcher{response: &outcome.RawResponse{StatusCode: http.StatusNoContent}}
	uc := NewCancelPaymentUseCase(&mockTokenProvider{token: "tok"}, dispatcher, logger.NewNop())

	out, err := uc.Execute(ctx, testPaymentID)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NoError(t, dispatcher.ctxErr)
}

func TestHandleStatusCallback(t *testing.T) {
	publisher := &mockPublisher{}
	uc := NewHandleStatusCallbackUseCase(publisher, logger.NewNop())

	err := uc.Execute(context.Background(), &dto.PaymentStatusCallback{ID: testPaymentID, Status: vo.PaymentStatusPaid})

	require.NoError(t, err)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, testPaymentID, publisher.events[0].PaymentID)
	assert.Equal(t, vo.PaymentStatusPaid, publisher.events[0].Status)
	assert.False(t, publisher.events[0].ReceivedAt.IsZero())
}

func TestHandleStatusCallback_PublishError(t *testing.T) {
	publishErr := errors.New("redis unavailable")
	uc := NewHandleStatusCallbackUseCase(&mockPublisher{err: publishErr}, logger.NewNop())

	err := uc.Execute(context.Background(), &dto.PaymentStatusCallback{ID: testPaymentID, Status: vo.PaymentStatusDeclined})

	require.Error(t, err)
	assert.ErrorIs(t, err, publishErr)
}
