package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/shared/logger"
	"github.com/orris-inc/fibgate/internal/shared/utils"
)

// CallbackHandler receives the status notifications FIB posts to statusCallbackUrl.
type CallbackHandler struct {
	handleStatusCallbackUC handleStatusCallbackUseCase
	logger                 logger.Interface
}

func NewCallbackHandler(handleStatusCallbackUC handleStatusCallbackUseCase, logger logger.Interface) *CallbackHandler {
	return &CallbackHandler{
		handleStatusCallbackUC: handleStatusCallbackUC,
		logger:                 logger,
	}
}

// @Summary		Payment status callback
// @Description	Receive a payment status notification from FIB
// @Tags			payment
// @Accept			json
// @Produce		json
// @Param			callback	body		dto.PaymentStatusCallback	true	"Status notification"
// @Success		200			{object}	utils.MessageResponse		"Callback received"
// @Failure		400			{object}	utils.MessageResponse		"Invalid callback body"
// @Failure		500			{object}	utils.MessageResponse		"Internal server error"
// @Router			/payment/callback [post]
func (h *CallbackHandler) HandleStatusCallback(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	cb, fieldErrors, err := dto.DecodeStatusCallback(body)
	if err != nil {
		if errors.Is(err, dto.ErrMalformedJSON) {
			h.logger.Warnw("malformed status callback body")
			utils.ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	if fieldErrors != nil {
		h.logger.Warnw("invalid status callback body", "errors", fieldErrors)
		utils.ValidationErrorResponse(c, msgInvalidBody, fieldErrors)
		return
	}

	if err := h.handleStatusCallbackUC.Execute(c.Request.Context(), cb); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessMessage(c, http.StatusOK, "Callback received")
}
