package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/application/payment/outcome"
	"github.com/orris-inc/fibgate/internal/shared/utils"
)

// maxRequestBodySize bounds inbound JSON bodies (1MB).
const maxRequestBodySize = 1 << 20

// GatewayErrorResponse is returned when the gateway rejected the operation.
type GatewayErrorResponse struct {
	Message      string                `json:"message"`
	TraceID      string                `json:"traceId,omitempty"`
	ErrorCode    string                `json:"errorCode,omitempty"`
	ErrorDetails []outcome.ErrorDetail `json:"errorDetails,omitempty"`
}

// writeOutcome sends a success body verbatim or the normalized gateway error.
func writeOutcome(c *gin.Context, out *outcome.Outcome) {
	if out.Success {
		utils.RawJSONResponse(c, out.StatusCode, out.Body)
		return
	}

	c.JSON(out.StatusCode, GatewayErrorResponse{
		Message:      out.Message,
		TraceID:      out.TraceID,
		ErrorCode:    out.ErrorCode,
		ErrorDetails: out.ErrorDetails,
	})
}

func readBody(c *gin.Context) ([]byte, error) {
	return io.ReadAll(io.LimitReader(c.Request.Body, maxRequestBodySize))
}
