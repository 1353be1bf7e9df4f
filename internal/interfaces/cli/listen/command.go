package listen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orris-inc/fibgate/internal/domain/payment"
	"github.com/orris-inc/fibgate/internal/infrastructure/config"
	"github.com/orris-inc/fibgate/internal/infrastructure/pubsub"
	"github.com/orris-inc/fibgate/internal/interfaces/cli/server"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print payment status callbacks",
		Long:  `Subscribe to the payment status channel and log every status callback forwarded by the server.`,
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

	if err := logger.Init(&cfg.Logger, server.MapEnvToGinMode(env)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if !cfg.Redis.Enabled {
		return errors.New("redis is disabled; set redis.enabled to receive status events")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := pubsub.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	bus := pubsub.NewRedisPaymentStatusBus(redisClient, log.Named("pubsub"))

	err = bus.Subscribe(ctx, func(_ context.Context, event payment.StatusChangedEvent) {
		log.Infow("payment status changed",
			"payment_id", event.PaymentID,
			"status", event.Status,
			"final", event.Status.IsFinal(),
			"received_at", event.ReceivedAt,
		)
	})
	if errors.Is(err, context.Canceled) {
		log.Infow("listener stopped")
		return nil
	}
	return err
}
