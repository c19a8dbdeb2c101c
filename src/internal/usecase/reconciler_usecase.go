package usecase

import (
	"context"
	"fmt"
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	"chama-service/src/internal/repository"
	"chama-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const sweepBatchSize = 100

type ReconcilerUseCase struct {
	Log                   log.Log
	TransactionRepository repository.Transactions
	PaymentUseCase        *PaymentUseCase
	Config                *viper.Viper
	Redis                 redis.UniversalClient
}

func NewReconcilerUseCase(
	logger log.Log,
	transactionRepository repository.Transactions,
	paymentUseCase *PaymentUseCase,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *ReconcilerUseCase {
	return &ReconcilerUseCase{
		Log:                   logger,
		TransactionRepository: transactionRepository,
		PaymentUseCase:        paymentUseCase,
		Config:                cfg,
		Redis:                 redisClient,
	}
}

// SweepStuckPayments is the asynq handler for the periodic sweep: it credits
// transactions left pending past the stuck window, one at a time. A short
// per-reference lease keeps an overlapping sweep (or a concurrent webhook
// retry going through the same credit path) from racing on the same charge.
func (c *ReconcilerUseCase) SweepStuckPayments(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-c.PaymentUseCase.StuckAfter())
	txs, err := c.TransactionRepository.FindStuckPending(ctx, entity.PaymentMethodPaystack, cutoff, sweepBatchSize)
	if err != nil {
		c.Log.Error("reconciler-usecase", fmt.Sprintf("stuck query failed: %v", err), "SweepStuckPayments", "")
		return err
	}
	if len(txs) == 0 {
		return nil
	}

	c.Log.Info("reconciler-usecase", fmt.Sprintf("found %d stuck payments", len(txs)), "SweepStuckPayments", "")

	for i := range txs {
		reference := txs[i].Reference
		if !c.acquireLease(ctx, reference) {
			c.Log.Info("reconciler-usecase", "lease held elsewhere, skipping", "SweepStuckPayments", reference)
			continue
		}

		result := c.PaymentUseCase.CreditByReference(ctx, &model.ManualCreditRequest{Reference: reference})
		if result.Error != nil {
			// no backoff: the next sweep re-evaluates whatever is still pending
			c.Log.Error("reconciler-usecase",
				fmt.Sprintf("credit failed for %s: %v", reference, result.Error),
				"SweepStuckPayments", "")
		} else {
			c.Log.Info("reconciler-usecase", "recovered stuck payment", "SweepStuckPayments", reference)
		}

		c.releaseLease(ctx, reference)
	}

	return nil
}

func (c *ReconcilerUseCase) acquireLease(ctx context.Context, reference string) bool {
	if c.Redis == nil {
		return true
	}
	key := fmt.Sprintf("PAYMENTS:SWEEP-LEASE:%s", reference)
	ok, err := c.Redis.SetNX(ctx, key, "1", 2*time.Minute).Result()
	if err != nil {
		c.Log.Error("reconciler-usecase", fmt.Sprintf("lease acquire failed: %v", err), "acquireLease", reference)
		return false
	}
	return ok
}

func (c *ReconcilerUseCase) releaseLease(ctx context.Context, reference string) {
	if c.Redis == nil {
		return
	}
	key := fmt.Sprintf("PAYMENTS:SWEEP-LEASE:%s", reference)
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("reconciler-usecase", fmt.Sprintf("lease release failed: %v", err), "releaseLease", reference)
	}
}
