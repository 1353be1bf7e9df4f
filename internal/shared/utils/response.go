package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/shared/errors"
)

// MessageResponse is the body of every synthesized reply: successes without an upstream
// representation and all error replies share it.
type MessageResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// SuccessMessage sends a {"message": ...} body with the given status.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ValidationErrorResponse sends a 400 with per-field messages.
func ValidationErrorResponse(c *gin.Context, message string, fieldErrors FieldErrors) {
	c.JSON(http.StatusBadRequest, MessageResponse{
		Message: message,
		Errors:  fieldErrors,
	})
}

// RawJSONResponse writes an already encoded JSON document unchanged.
func RawJSONResponse(c *gin.Context, statusCode int, body []byte) {
	c.Data(statusCode, "application/json; charset=utf-8", body)
}

// ErrorResponseWithError sends an error response based on error type.
// Auth failures hide their details; anything else reports the best-effort error text.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	switch {
	case appErr != nil && appErr.Type == errors.ErrorTypeAuth:
		ErrorResponse(c, http.StatusInternalServerError, "Service configuration error")
	case appErr != nil && appErr.Type == errors.ErrorTypeValidation:
		c.JSON(http.StatusBadRequest, MessageResponse{Message: appErr.Message, Error: appErr.Details})
	default:
		c.JSON(http.StatusInternalServerError, MessageResponse{
			Message: "Internal Server Error",
			Error:   errorText(err),
		})
	}
}

func errorText(err error) string {
	if err == nil || err.Error() == "" {
		return "An unknown error occurred"
	}
	return err.Error()
}
