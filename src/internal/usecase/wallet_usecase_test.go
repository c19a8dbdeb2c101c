package usecase

import (
	"context"
	"strings"
	"testing"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletFixture struct {
	useCase       *WalletUseCase
	transactions  *transactionsStub
	wallets       *walletsStub
	notifications *notificationsStub
}

func newWalletFixture() *walletFixture {
	f := &walletFixture{
		transactions:  newTransactionsStub(),
		wallets:       newWalletsStub(),
		notifications: &notificationsStub{},
	}
	f.useCase = NewWalletUseCase(
		log.Log{},
		validator.New(),
		f.wallets,
		f.transactions,
		f.notifications,
		viper.New(),
	)
	return f
}

func TestGetWallet(t *testing.T) {
	f := newWalletFixture()
	f.wallets.balance = 120.50

	result := f.useCase.GetWallet(context.Background(), &model.GetWalletRequest{UserID: "user-1"})
	require.Nil(t, result.Error)

	response, ok := result.Data.(*model.WalletResponse)
	require.True(t, ok)
	assert.Equal(t, "user-1", response.UserID)
	assert.InDelta(t, 120.50, response.Balance, 0.0001)
	assert.Equal(t, entity.WalletCurrencyKES, response.Currency)
}

func TestGetWalletRejectsMissingUser(t *testing.T) {
	f := newWalletFixture()

	result := f.useCase.GetWallet(context.Background(), &model.GetWalletRequest{})
	require.NotNil(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
}

func TestTopupCreatesPendingTransaction(t *testing.T) {
	f := newWalletFixture()

	result := f.useCase.Topup(context.Background(), &model.TopupRequest{
		UserID:  "user-1",
		Amount:  500,
		Channel: model.ChannelMobileMoney,
	})
	require.Nil(t, result.Error)

	response, ok := result.Data.(*model.TopupResponse)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(response.Reference, "CHAMA-"))
	assert.InDelta(t, 500, response.Amount, 0.0001)
	assert.Equal(t, entity.TransactionStatusPending, response.Status)

	stored, err := f.transactions.FindByReference(context.Background(), response.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.PurposeWalletTopup, stored.Purpose)
	assert.Equal(t, entity.PaymentMethodPaystack, stored.PaymentMethod)
	require.NotNil(t, stored.Channel)
	assert.Equal(t, model.ChannelMobileMoney, *stored.Channel)
}

func TestTopupRejectsBadChannel(t *testing.T) {
	f := newWalletFixture()

	result := f.useCase.Topup(context.Background(), &model.TopupRequest{
		UserID:  "user-1",
		Amount:  500,
		Channel: "cash",
	})
	require.NotNil(t, result.Error)
}

func TestTopupRejectsZeroAmount(t *testing.T) {
	f := newWalletFixture()

	result := f.useCase.Topup(context.Background(), &model.TopupRequest{
		UserID:  "user-1",
		Amount:  0,
		Channel: model.ChannelCard,
	})
	require.NotNil(t, result.Error)
}

func TestListNotifications(t *testing.T) {
	f := newWalletFixture()
	require.NoError(t, f.notifications.Create(context.Background(), &entity.Notification{
		ID:      "n-1",
		UserID:  "user-1",
		Title:   "Payment received",
		Message: "Your wallet was credited with KES 97.50 via mobile money.",
		Type:    entity.NotificationTypePayment,
	}))

	result := f.useCase.ListNotifications(context.Background(), &model.ListNotificationsRequest{UserID: "user-1"})
	require.Nil(t, result.Error)

	responses, ok := result.Data.([]*model.NotificationResponse)
	require.True(t, ok)
	require.Len(t, responses, 1)
	assert.Equal(t, "Payment received", responses[0].Title)
	assert.False(t, responses[0].IsRead)
}
