package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/shared/logger"
	"github.com/orris-inc/fibgate/internal/shared/utils"
)

const (
	msgInvalidJSON      = "Invalid JSON format in request body"
	msgInvalidBody      = "Invalid request body"
	msgInvalidPaymentID = "Invalid payment ID format"
)

type PaymentHandler struct {
	createPaymentUC      createPaymentUseCase
	cancelPaymentUC      cancelPaymentUseCase
	refundPaymentUC      refundPaymentUseCase
	checkPaymentStatusUC checkPaymentStatusUseCase
	logger               logger.Interface
}

func NewPaymentHandler(
	createPaymentUC createPaymentUseCase,
	cancelPaymentUC cancelPaymentUseCase,
	refundPaymentUC refundPaymentUseCase,
	checkPaymentStatusUC checkPaymentStatusUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createPaymentUC:      createPaymentUC,
		cancelPaymentUC:      cancelPaymentUC,
		refundPaymentUC:      refundPaymentUC,
		checkPaymentStatusUC: checkPaymentStatusUC,
		logger:               logger,
	}
}

// @Summary		Create payment
// @Description	Create a payment on the FIB gateway
// @Tags			payment
// @Accept			json
// @Produce		json
// @Param			payment	body		dto.CreatePaymentRequest	true	"Payment data"
// @Success		201		{object}	dto.PaymentResponse			"Payment created"
// @Failure		400		{object}	utils.MessageResponse		"Invalid request body"
// @Failure		422		{object}	GatewayErrorResponse		"Rejected by the gateway"
// @Failure		500		{object}	utils.MessageResponse		"Internal server error"
// @Router			/payment/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		h.logger.Warnw("failed to read request body", "operation", outcome.OperationCreate.LogName(), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	req, fieldErrors, err := dto.DecodeCreatePayment(body)
	if err != nil {
		if errors.Is(err, dto.ErrMalformedJSON) {
			h.logger.Warnw("malformed create payment body", "operation", outcome.OperationCreate.LogName())
			utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	if fieldErrors != nil {
		h.logger.Warnw("invalid create payment body",
			"operation", outcome.OperationCreate.LogName(),
			"errors", fieldErrors,
		)
		utils.ValidationErrorResponse(c, msgInvalidBody, fieldErrors)
		return
	}

	out, err := h.createPaymentUC.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create payment",
			"operation", outcome.OperationCreate.LogName(),
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	writeOutcome(c, out)
}

// @Summary		Cancel payment
// @Description	Cancel an unpaid payment
// @Tags			payment
// @Produce		json
// @Param			paymentId	path		string					true	"Payment ID (UUID)"
// @Success		200			{object}	utils.MessageResponse	"Payment cancelled successfully"
// @Failure		400			{object}	utils.MessageResponse	"Invalid payment ID format"
// @Failure		404			{object}	GatewayErrorResponse	"Payment not found"
// @Failure		500			{object}	utils.MessageResponse	"Internal server error"
// @Router			/payment/{paymentId}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	h.forPaymentID(c, outcome.OperationCancel, h.cancelPaymentUC.Execute)
}

// @Summary		Refund payment
// @Description	Request a refund for a paid payment. Completion is reported through the payment status.
// @Tags			payment
// @Produce		json
// @Param			paymentId	path		string					true	"Payment ID (UUID)"
// @Success		202			{object}	utils.MessageResponse	"Refund request initiated"
// @Failure		400			{object}	utils.MessageResponse	"Invalid payment ID format"
// @Failure		404			{object}	GatewayErrorResponse	"Payment not found"
// @Failure		500			{object}	utils.MessageResponse	"Internal server error"
// @Router			/payment/{paymentId}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	h.forPaymentID(c, outcome.OperationRefund, h.refundPaymentUC.Execute)
}

// @Summary		Check payment status
// @Description	Fetch the current payment status from the gateway
// @Tags			payment
// @Produce		json
// @Param			paymentId	path		string							true	"Payment ID (UUID)"
// @Success		200			{object}	dto.CheckPaymentStatusResponse	"Current status"
// @Failure		400			{object}	GatewayErrorResponse			"Invalid payment ID or gateway reported errors"
// @Failure		500			{object}	utils.MessageResponse			"Internal server error"
// @Router			/payment/check-status/{paymentId} [get]
func (h *PaymentHandler) CheckPaymentStatus(c *gin.Context) {
	h.forPaymentID(c, outcome.OperationCheckStatus, h.checkPaymentStatusUC.Execute)
}

type paymentIDOperation func(ctx context.Context, paymentID string) (*outcome.Outcome, error)

func (h *PaymentHandler) forPaymentID(c *gin.Context, op outcome.Operation, execute paymentIDOperation) {
	paymentID, fieldErrors := dto.ValidatePaymentID(c.Param("paymentId"))
	if fieldErrors != nil {
		h.logger.Warnw("invalid payment id",
			"operation", op.LogName(),
			"payment_id", c.Param("paymentId"),
		)
		utils.ValidationErrorResponse(c, msgInvalidPaymentID, fieldErrors)
		return
	}

	out, err := execute(c.Request.Context(), paymentID)
	if err != nil {
		h.logger.Errorw("payment operation failed",
			"operation", op.LogName(),
			"payment_id", paymentID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	writeOutcome(c, out)
}
