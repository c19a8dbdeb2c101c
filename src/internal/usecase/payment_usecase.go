package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/gateway/messaging"
	"chama-service/src/internal/model"
	"chama-service/src/internal/model/converter"
	"chama-service/src/internal/repository"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type PaymentUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	TransactionRepository  repository.Transactions
	WalletRepository       repository.Wallets
	NotificationRepository repository.Notifications
	FeeRepository          repository.PlatformFees
	Config                 *viper.Viper
	PaymentProducer        messaging.PaymentEventSender
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	transactionRepository repository.Transactions,
	walletRepository repository.Wallets,
	notificationRepository repository.Notifications,
	feeRepository repository.PlatformFees,
	cfg *viper.Viper,
	paymentProducer messaging.PaymentEventSender,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:                    logger,
		Validate:               validate,
		TransactionRepository:  transactionRepository,
		WalletRepository:       walletRepository,
		NotificationRepository: notificationRepository,
		FeeRepository:          feeRepository,
		Config:                 cfg,
		PaymentProducer:        paymentProducer,
	}
}

func (c *PaymentUseCase) feePercent() float64 {
	pct := c.Config.GetFloat64("fee.percent")
	if pct <= 0 {
		pct = 2.5
	}
	return pct
}

// SplitAmount breaks a paid amount into the platform fee and the net amount
// credited to the wallet. fee + net always equals amountPaid.
func (c *PaymentUseCase) SplitAmount(amountPaid float64) (fee, net float64) {
	fee = amountPaid * c.feePercent() / 100
	net = amountPaid - fee
	return fee, net
}

// ProcessCallback applies one verified webhook delivery. The returned error is
// for the caller's log only: the webhook boundary acknowledges with 200
// regardless, so the processor never redelivers on our internal failures.
func (c *PaymentUseCase) ProcessCallback(ctx context.Context, body []byte) error {
	var event model.PaystackWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("unparseable webhook body: %v", err), "ProcessCallback", "")
		return err
	}

	var data model.PaystackChargeData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("unparseable charge data: %v", err), "ProcessCallback", event.Event)
		return err
	}

	switch event.Event {
	case model.EventChargeSuccess:
		return c.handleChargeSuccess(ctx, &data, event.Data)
	case model.EventChargeFailed:
		return c.handleChargeFailed(ctx, &data, event.Data)
	default:
		c.Log.Info("payment-usecase", "ignoring webhook event", "ProcessCallback", event.Event)
		return nil
	}
}

func (c *PaymentUseCase) handleChargeSuccess(ctx context.Context, data *model.PaystackChargeData, raw []byte) error {
	amountPaid := float64(data.Amount) / 100
	fee, net := c.SplitAmount(amountPaid)

	var paidAt *time.Time
	if t, err := time.Parse(time.RFC3339, data.PaidAt); err == nil {
		paidAt = &t
	}

	txn, lookupErr := c.TransactionRepository.FindByReference(ctx, data.Reference)
	if lookupErr != nil {
		c.Log.Error("payment-usecase",
			fmt.Sprintf("no local transaction for reference %s: %v", data.Reference, lookupErr),
			"handleChargeSuccess", "")
	}
	alreadySettled := lookupErr == nil && txn.Status == entity.TransactionStatusSuccess

	// best-effort: the status flip happens even when the lookup missed
	if _, err := c.TransactionRepository.MarkSuccess(ctx, data.Reference, raw, paidAt, data.GatewayResponse); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("mark success failed: %v", err), "handleChargeSuccess", data.Reference)
	}

	if lookupErr != nil {
		return lookupErr
	}

	// a redelivery of a settled charge must not write a second fee row or
	// emit a second terminal event; the wallet side is already keyed on the
	// ledger reference
	if alreadySettled {
		c.Log.Info("payment-usecase", "charge already settled, skipping", "handleChargeSuccess", data.Reference)
		return nil
	}

	if txn.Purpose == entity.PurposeWalletTopup {
		outcome, err := c.WalletRepository.CreditByReference(ctx, repository.CreditParams{
			UserID:        txn.UserID,
			Reference:     data.Reference,
			Amount:        net,
			Description:   fmt.Sprintf("Wallet top-up via %s (fee KES %.2f)", channelLabel(data.Channel), fee),
			PaymentMethod: entity.PaymentMethodPaystack,
			Channel:       &data.Channel,
			Currency:      entity.WalletCurrencyKES,
		})
		switch {
		case err != nil:
			c.Log.Error("payment-usecase", fmt.Sprintf("wallet credit failed: %v", err), "handleChargeSuccess", data.Reference)
		case !outcome.Credited:
			c.Log.Info("payment-usecase", "reference already credited, skipping", "handleChargeSuccess", data.Reference)
		default:
			c.notify(ctx, txn.UserID, "Payment received",
				fmt.Sprintf("Your wallet was credited with KES %.2f via %s.", net, channelLabel(data.Channel)))
		}
	}

	if err := c.FeeRepository.Create(ctx, &entity.PlatformFee{
		ID:        uuid.NewString(),
		UserID:    txn.UserID,
		Reference: data.Reference,
		Amount:    fee,
		Source:    data.Channel,
	}); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("fee record failed: %v", err), "handleChargeSuccess", data.Reference)
	}

	c.publish(converter.PaymentToEvent(txn, entity.TransactionStatusSuccess, ""))
	return nil
}

func (c *PaymentUseCase) handleChargeFailed(ctx context.Context, data *model.PaystackChargeData, raw []byte) error {
	balance, found := ParseAvailableBalance(data.GatewayResponse)
	message := BuildFailureMessage(data.GatewayResponse, data.Channel, balance, found)

	payload := raw
	if found {
		payload = augmentPayload(raw, balance)
	}

	if _, err := c.TransactionRepository.MarkFailed(ctx, data.Reference, data.Status, message, payload); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("mark failed failed: %v", err), "handleChargeFailed", data.Reference)
	}

	txn, lookupErr := c.TransactionRepository.FindByReference(ctx, data.Reference)
	if lookupErr != nil || txn.UserID == "" {
		c.Log.Error("payment-usecase",
			fmt.Sprintf("no user for failed charge %s: %v", data.Reference, lookupErr),
			"handleChargeFailed", "")
		return nil
	}

	c.notify(ctx, txn.UserID, "Payment failed", message)
	c.publish(converter.PaymentToEvent(txn, entity.TransactionStatusFailed, message))
	return nil
}

// CreditByReference is the manual repair path: it re-derives the credit from
// the stored transaction and applies it through the same idempotent wallet
// credit the webhook uses, so replaying it can never double-credit.
func (c *PaymentUseCase) CreditByReference(ctx context.Context, request *model.ManualCreditRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "CreditByReference", utils.ConvertString(request))
		return result
	}

	txn, err := c.TransactionRepository.FindByReference(ctx, request.Reference)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("transaction with reference %s not found", request.Reference)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "CreditByReference", utils.ConvertString(err.Error()))
		return result
	}

	fee, net := c.SplitAmount(txn.Amount)

	var channel *string
	if txn.Channel != nil {
		channel = txn.Channel
	}
	outcome, err := c.WalletRepository.CreditByReference(ctx, repository.CreditParams{
		UserID:        txn.UserID,
		Reference:     txn.Reference,
		Amount:        net,
		Description:   fmt.Sprintf("Manual credit for %s (fee KES %.2f)", txn.Reference, fee),
		PaymentMethod: txn.PaymentMethod,
		Channel:       channel,
		Currency:      entity.WalletCurrencyKES,
	})
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("credit failed: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "CreditByReference", txn.Reference)
		return result
	}

	if _, err := c.TransactionRepository.MarkSuccess(ctx, txn.Reference, txn.RawPayload, nil, "manually credited"); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("mark success failed: %v", err), "CreditByReference", txn.Reference)
	}

	// a repaired charge reaches terminal state here instead of in the
	// webhook, so the fee row and the downstream event happen here too,
	// once, on the application that actually moved the balance
	if outcome.Credited {
		source := ""
		if txn.Channel != nil {
			source = *txn.Channel
		}
		if err := c.FeeRepository.Create(ctx, &entity.PlatformFee{
			ID:        uuid.NewString(),
			UserID:    txn.UserID,
			Reference: txn.Reference,
			Amount:    fee,
			Source:    source,
		}); err != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("fee record failed: %v", err), "CreditByReference", txn.Reference)
		}
		c.publish(converter.PaymentToEvent(txn, entity.TransactionStatusSuccess, ""))
	}

	message := fmt.Sprintf("Credited KES %.2f to wallet", net)
	if !outcome.Credited {
		message = "Reference already credited, balance unchanged"
	}
	result.Data = &model.ManualCreditResponse{
		Success:    true,
		Message:    message,
		Amount:     net,
		NewBalance: outcome.NewBalance,
	}
	return result
}

// ListStuck returns the caller's pending paystack transactions older than the
// configured stuck window.
func (c *PaymentUseCase) ListStuck(ctx context.Context, request *model.StuckPaymentsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	cutoff := time.Now().Add(-c.StuckAfter())
	txs, err := c.TransactionRepository.FindStuckPendingByUser(ctx, request.UserID, entity.PaymentMethodPaystack, cutoff)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to query stuck payments: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "ListStuck", request.UserID)
		return result
	}

	responses := make([]*model.StuckPaymentResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, converter.StuckPaymentToResponse(&txs[i]))
	}
	result.Data = responses
	return result
}

// StuckAfter is how long a pending transaction may sit before the sweep picks
// it up. Configurable; the default mirrors the processor's usual delivery lag,
// not any documented SLA.
func (c *PaymentUseCase) StuckAfter() time.Duration {
	minutes := c.Config.GetInt("reconciler.stuck_after_minutes")
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

func (c *PaymentUseCase) notify(ctx context.Context, userID, title, message string) {
	err := c.NotificationRepository.Create(ctx, &entity.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    entity.NotificationTypePayment,
	})
	if err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("notification insert failed: %v", err), "notify", userID)
	}
}

func (c *PaymentUseCase) publish(event *model.PaymentEvent) {
	if c.PaymentProducer == nil {
		return
	}
	if err := c.PaymentProducer.Send(event); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("failed to publish payment event: %v", err), "publish", event.Reference)
	}
}

func augmentPayload(raw []byte, balance float64) []byte {
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return raw
	}
	payload["available_balance"] = balance
	augmented, err := json.Marshal(payload)
	if err != nil {
		return raw
	}
	return augmented
}
