package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/pkg/log"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReconcilerFixture(txs ...*entity.PaymentTransaction) (*ReconcilerUseCase, *paymentFixture) {
	f := newPaymentFixture(txs...)
	uc := NewReconcilerUseCase(log.Log{}, f.transactions, f.useCase, viper.New(), nil)
	return uc, f
}

func TestSweepStuckPaymentsCreditsPending(t *testing.T) {
	tx := topupTransaction("stuck-1", 100)
	uc, f := newReconcilerFixture(tx)
	f.transactions.stuck = []entity.PaymentTransaction{*tx}

	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))

	assert.InDelta(t, 97.50, f.wallets.balance, 0.0001)
	require.Len(t, f.transactions.successCalls, 1)
	assert.Equal(t, "stuck-1", f.transactions.successCalls[0].Reference)
	assert.Equal(t, "manually credited", f.transactions.successCalls[0].ResultDescription)

	require.Len(t, f.producer.events, 1, "a recovered charge still reaches the notification topic")
	assert.Equal(t, "stuck-1", f.producer.events[0].Reference)
	assert.Equal(t, entity.TransactionStatusSuccess, f.producer.events[0].Status)
	require.Len(t, f.fees.created, 1)
	assert.InDelta(t, 2.50, f.fees.created[0].Amount, 0.0001)
}

func TestSweepStuckPaymentsExcludesFreshPending(t *testing.T) {
	fresh := topupTransaction("fresh-1", 100)
	fresh.CreatedAt = time.Now().Add(-4 * time.Minute)
	uc, f := newReconcilerFixture(fresh)
	f.transactions.stuck = []entity.PaymentTransaction{*fresh}

	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))

	assert.InDelta(t, 0, f.wallets.balance, 0.0001, "4 minutes old is not stuck yet")
	assert.Empty(t, f.transactions.successCalls)
	assert.Empty(t, f.producer.events)
}

func TestSweepStuckPaymentsNothingPending(t *testing.T) {
	uc, f := newReconcilerFixture()

	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))
	assert.Empty(t, f.transactions.successCalls)
	assert.InDelta(t, 0, f.wallets.balance, 0.0001)
}

func TestSweepStuckPaymentsContinuesPastFailures(t *testing.T) {
	good := topupTransaction("stuck-good", 100)
	uc, f := newReconcilerFixture(good)
	// the first reference has no stored transaction, so its credit fails
	f.transactions.stuck = []entity.PaymentTransaction{
		{Reference: "stuck-ghost", UserID: "user-9"},
		*good,
	}

	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))

	assert.InDelta(t, 97.50, f.wallets.balance, 0.0001, "the healthy reference is still recovered")
}

func TestSweepStuckPaymentsQueryError(t *testing.T) {
	uc, f := newReconcilerFixture()
	f.transactions.findStuckErr = errors.New("db gone")

	err := uc.SweepStuckPayments(context.Background(), nil)
	require.Error(t, err)
}

func TestSweepIsIdempotentAcrossRuns(t *testing.T) {
	tx := topupTransaction("stuck-1", 100)
	uc, f := newReconcilerFixture(tx)
	f.transactions.stuck = []entity.PaymentTransaction{*tx}

	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))
	// simulate a sweep racing the cleanup of the pending set
	require.NoError(t, uc.SweepStuckPayments(context.Background(), nil))

	assert.InDelta(t, 97.50, f.wallets.balance, 0.0001)
	assert.Len(t, f.producer.events, 1, "the second pass applies nothing, so it publishes nothing")
	assert.Len(t, f.fees.created, 1)
}
