package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/fibgate/internal/domain/payment"
	"github.com/orris-inc/fibgate/internal/infrastructure/config"
	"github.com/orris-inc/fibgate/internal/infrastructure/pubsub"
	httpRouter "github.com/orris-inc/fibgate/internal/interfaces/http"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the fibgate HTTP server that proxies payment requests to the FIB gateway.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := ginModeFor(cfg)

	if err := logger.Init(&cfg.Logger, ginMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	fibEnv := cfg.FIB.ResolvedEnvironment()
	log.Infow("starting server",
		"environment", env,
		"fib_environment", fibEnv,
		"fib_base_url", cfg.FIB.GetBaseURL(),
	)
	if cfg.FIB.ClientID == "" || cfg.FIB.ClientSecret == "" {
		log.Warnw("FIB client credentials are not configured; payment requests will fail")
	}

	gin.SetMode(ginMode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	var statusPublisher payment.StatusEventPublisher = pubsub.NewLogOnlyPaymentStatusPublisher(log.Named("pubsub"))
	if cfg.Redis.Enabled {
		redisClient, err := pubsub.NewRedisClient(context.Background(), &cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
		statusPublisher = pubsub.NewRedisPaymentStatusBus(redisClient, log.Named("pubsub"))
	}

	router := httpRouter.NewRouter(cfg, statusPublisher, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:    cfg.Server.GetAddr(),
		Handler: router.GetEngine(),
		// Gateway calls may take up to the FIB request timeout twice (token + payment call).
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.FIB.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", ginMode,
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// ginModeFor derives the gin mode from the loaded server mode without touching cfg.
func ginModeFor(cfg *config.Config) string {
	return MapEnvToGinMode(cfg.Server.Mode)
}

// MapEnvToGinMode translates a deployment environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
