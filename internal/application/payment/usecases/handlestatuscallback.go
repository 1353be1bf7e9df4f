package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/fibgate/internal/application/payment/dto"
	"github.com/orris-inc/fibgate/internal/domain/payment"
	"github.com/orris-inc/fibgate/internal/shared/logger"
)

// HandleStatusCallbackUseCase forwards a gateway status notification to subscribers.
type HandleStatusCallbackUseCase struct {
	publisher payment.StatusEventPublisher
	logger    logger.Interface
}

func NewHandleStatusCallbackUseCase(
	publisher payment.StatusEventPublisher,
	logger logger.Interface,
) *HandleStatusCallbackUseCase {
	return &HandleStatusCallbackUseCase{
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *HandleStatusCallbackUseCase) Execute(ctx context.Context, cb *dto.PaymentStatusCallback) error {
	event := payment.NewStatusChangedEvent(cb.ID, cb.Status)

	uc.logger.Infow("payment status callback received",
		"payment_id", event.PaymentID,
		"status", event.Status,
	)

	if err := uc.publisher.PublishStatusChanged(ctx, event); err != nil {
		uc.logger.Errorw("failed to publish payment status event",
			"payment_id", event.PaymentID,
			"status", event.Status,
			"error", err,
		)
		return fmt.Errorf("failed to publish payment status event: %w", err)
	}

	return nil
}
