package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/fibgate/internal/application/payment/usecases"
	"github.com/orris-inc/fibgate/internal/domain/payment"
	"github.com/orris-inc/fibgate/internal/infrastructure/config"
	"github.com/orris-inc/fibgate/internal/infrastructure/fib"
	"github.com/orris-inc/fibgate/internal/interfaces/http/handlers"
	"github.com/orris-inc/fibgate/internal/interfaces/http/middleware"
	"github.com/orris-inc/fibgate/internal/interfaces/http/routes"
	"github.com/orris-inc/fibgate/internal/shared/logger"

	_ "github.com/orris-inc/fibgate/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	paymentHandler  *handlers.PaymentHandler
	callbackHandler *handlers.CallbackHandler
	healthHandler   *handlers.HealthHandler
	allowedOrigins  []string
	metricsEnabled  bool
	logger          logger.Interface
}

// NewRouter wires the FIB clients, use cases and handlers. statusPublisher receives
// the gateway's status callbacks.
func NewRouter(cfg *config.Config, statusPublisher payment.StatusEventPublisher, log logger.Interface) *Router {
	engine := gin.New()

	fibCfg := &cfg.FIB
	httpClient := fib.NewHTTPClient(fibCfg)
	tokenProvider := fib.NewTokenProvider(fibCfg, httpClient, log.Named("fib.token"))
	dispatcher := fib.NewDispatcher(fibCfg, httpClient, log.Named("fib.dispatcher"))

	createPaymentUC := usecases.NewCreatePaymentUseCase(tokenProvider, dispatcher, log)
	cancelPaymentUC := usecases.NewCancelPaymentUseCase(tokenProvider, dispatcher, log)
	refundPaymentUC := usecases.NewRefundPaymentUseCase(tokenProvider, dispatcher, log)
	checkPaymentStatusUC := usecases.NewCheckPaymentStatusUseCase(tokenProvider, dispatcher, log)
	handleStatusCallbackUC := usecases.NewHandleStatusCallbackUseCase(statusPublisher, log)

	paymentHandler := handlers.NewPaymentHandler(
		createPaymentUC, cancelPaymentUC, refundPaymentUC, checkPaymentStatusUC, log,
	)
	callbackHandler := handlers.NewCallbackHandler(handleStatusCallbackUC, log)
	healthHandler := handlers.NewHealthHandler(fibCfg.ResolvedEnvironment())

	return &Router{
		engine:          engine,
		paymentHandler:  paymentHandler,
		callbackHandler: callbackHandler,
		healthHandler:   healthHandler,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		metricsEnabled:  cfg.Metrics.Enabled,
		logger:          log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		HealthHandler:  r.healthHandler,
		MetricsEnabled: r.metricsEnabled,
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler:  r.paymentHandler,
		CallbackHandler: r.callbackHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
