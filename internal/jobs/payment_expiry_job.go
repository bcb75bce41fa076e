package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultExpirySchedule  = "0 * * * * *"
	DefaultExpiryBatchSize = 100
)

// ExpiredOrderFinder lists orders whose payment window has passed.
type ExpiredOrderFinder interface {
	FindExpiredUnpaid(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}

// OrderCanceller is satisfied by commands.CancelOrderCommandHandler.
type OrderCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

type PaymentExpiryConfig struct {
	// Schedule is a six field cron expression (with seconds).
	Schedule  string
	Expiry    time.Duration
	BatchSize int
}

// PaymentExpiryJob closes orders that were not paid within the payment
// window. Each order is cancelled through the regular cancel use case, so an
// order paid in the meantime is skipped by its state check.
type PaymentExpiryJob struct {
	finder    ExpiredOrderFinder
	canceller OrderCanceller
	config    PaymentExpiryConfig
	cron      *cron.Cron
	logger    *zap.Logger
	now       func() time.Time
}

func NewPaymentExpiryJob(
	finder ExpiredOrderFinder,
	canceller OrderCanceller,
	config PaymentExpiryConfig,
	logger *zap.Logger,
) *PaymentExpiryJob {
	if config.Schedule == "" {
		config.Schedule = DefaultExpirySchedule
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultExpiryBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PaymentExpiryJob{
		finder:    finder,
		canceller: canceller,
		config:    config,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With(zap.String("component", "payment_expiry_job")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (j *PaymentExpiryJob) Name() string {
	return "payment expiry"
}

// Start schedules Run on the configured cron expression.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("payment expiry run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.Info("payment expiry job started",
		zap.String("schedule", j.config.Schedule), zap.Duration("expiry", j.config.Expiry))
	return nil
}

// Stop waits for a running pass to finish.
func (j *PaymentExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("payment expiry job stopped")
}

// Run cancels one batch of expired orders and reports how many it closed.
// A failure on one order is logged and does not stop the batch.
func (j *PaymentExpiryJob) Run(ctx context.Context) (int, error) {
	cutoff := j.now().Add(-j.config.Expiry)
	ids, err := j.finder.FindExpiredUnpaid(ctx, cutoff, j.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("find orders created before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	cancelled := 0
	for _, id := range ids {
		cmd, err := commands.NewCancelOrderCommand(id, order.CancelReasonPaymentTimeout, "")
		if err != nil {
			return cancelled, err
		}

		switch err := j.canceller.Handle(ctx, cmd); {
		case err == nil:
			cancelled++
		case errors.Is(err, order.ErrInvalidStateForCancel), errors.Is(err, order.ErrOrderNotFound):
			j.logger.Debug("order left its unpaid state before expiry", zap.Stringer("order_id", id))
		default:
			j.logger.Error("could not close expired order", zap.Stringer("order_id", id), zap.Error(err))
		}
	}

	if cancelled > 0 {
		j.logger.Info("expired orders closed", zap.Int("count", cancelled), zap.Int("found", len(ids)))
	}
	return cancelled, nil
}
