package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler  *handlers.PaymentHandler
	CallbackHandler *handlers.CallbackHandler
}

// SetupPaymentRoutes configures payment routes.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payment := engine.Group("/payment")
	{
		payment.POST("/create", cfg.PaymentHandler.CreatePayment)
		payment.POST("/:paymentId/cancel", cfg.PaymentHandler.CancelPayment)
		payment.POST("/:paymentId/refund", cfg.PaymentHandler.RefundPayment)
		payment.GET("/check-status/:paymentId", cfg.PaymentHandler.CheckPaymentStatus)

		payment.POST("/callback", cfg.CallbackHandler.HandleStatusCallback)
	}
}
