package usecase

import (
	"context"
	"fmt"
	"time"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	"chama-service/src/internal/repository"
)

type markSuccessCall struct {
	Reference         string
	ResultDescription string
	PaidAt            *time.Time
}

type markFailedCall struct {
	Reference         string
	ResultCode        string
	ResultDescription string
	RawPayload        []byte
}

type transactionsStub struct {
	byReference  map[string]*entity.PaymentTransaction
	stuck        []entity.PaymentTransaction
	successCalls []markSuccessCall
	failedCalls  []markFailedCall
	findStuckErr error
}

func newTransactionsStub(txs ...*entity.PaymentTransaction) *transactionsStub {
	s := &transactionsStub{byReference: map[string]*entity.PaymentTransaction{}}
	for _, tx := range txs {
		s.byReference[tx.Reference] = tx
	}
	return s
}

func (s *transactionsStub) Create(_ context.Context, tx *entity.PaymentTransaction) error {
	s.byReference[tx.Reference] = tx
	return nil
}

func (s *transactionsStub) FindByReference(_ context.Context, reference string) (*entity.PaymentTransaction, error) {
	tx, ok := s.byReference[reference]
	if !ok {
		return nil, fmt.Errorf("transaction %s: no rows", reference)
	}
	return tx, nil
}

func (s *transactionsStub) MarkSuccess(_ context.Context, reference string, _ []byte, paidAt *time.Time, resultDescription string) (int64, error) {
	s.successCalls = append(s.successCalls, markSuccessCall{Reference: reference, ResultDescription: resultDescription, PaidAt: paidAt})
	tx, ok := s.byReference[reference]
	if !ok {
		return 0, nil
	}
	tx.Status = entity.TransactionStatusSuccess
	return 1, nil
}

func (s *transactionsStub) MarkFailed(_ context.Context, reference, resultCode, resultDescription string, rawPayload []byte) (int64, error) {
	s.failedCalls = append(s.failedCalls, markFailedCall{Reference: reference, ResultCode: resultCode, ResultDescription: resultDescription, RawPayload: rawPayload})
	tx, ok := s.byReference[reference]
	if !ok {
		return 0, nil
	}
	tx.Status = entity.TransactionStatusFailed
	return 1, nil
}

func (s *transactionsStub) FindStuckPending(_ context.Context, _ string, olderThan time.Time, _ int) ([]entity.PaymentTransaction, error) {
	if s.findStuckErr != nil {
		return nil, s.findStuckErr
	}
	var out []entity.PaymentTransaction
	for i := range s.stuck {
		if s.stuck[i].CreatedAt.Before(olderThan) {
			out = append(out, s.stuck[i])
		}
	}
	return out, nil
}

func (s *transactionsStub) FindStuckPendingByUser(_ context.Context, userID, _ string, olderThan time.Time) ([]entity.PaymentTransaction, error) {
	if s.findStuckErr != nil {
		return nil, s.findStuckErr
	}
	var out []entity.PaymentTransaction
	for i := range s.stuck {
		if s.stuck[i].UserID == userID && s.stuck[i].CreatedAt.Before(olderThan) {
			out = append(out, s.stuck[i])
		}
	}
	return out, nil
}

type walletsStub struct {
	credited  map[string]float64
	balance   float64
	creditErr error
}

func newWalletsStub() *walletsStub {
	return &walletsStub{credited: map[string]float64{}}
}

func (s *walletsStub) FindByUserID(_ context.Context, userID string) (*entity.Wallet, error) {
	return &entity.Wallet{ID: "wallet-1", UserID: userID, Balance: s.balance, Currency: entity.WalletCurrencyKES}, nil
}

func (s *walletsStub) CreditByReference(_ context.Context, params repository.CreditParams) (*repository.CreditOutcome, error) {
	if s.creditErr != nil {
		return nil, s.creditErr
	}
	if _, ok := s.credited[params.Reference]; ok {
		return &repository.CreditOutcome{WalletID: "wallet-1", NewBalance: s.balance, Credited: false}, nil
	}
	s.credited[params.Reference] = params.Amount
	s.balance += params.Amount
	return &repository.CreditOutcome{WalletID: "wallet-1", NewBalance: s.balance, Credited: true}, nil
}

func (s *walletsStub) ListTransactions(_ context.Context, _ string, _, _ int) ([]entity.WalletTransaction, error) {
	return nil, nil
}

type notificationsStub struct {
	created []*entity.Notification
}

func (s *notificationsStub) Create(_ context.Context, notification *entity.Notification) error {
	s.created = append(s.created, notification)
	return nil
}

func (s *notificationsStub) ListByUser(_ context.Context, _ string, _, _ int) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range s.created {
		out = append(out, *n)
	}
	return out, nil
}

type feesStub struct {
	created []*entity.PlatformFee
}

func (s *feesStub) Create(_ context.Context, fee *entity.PlatformFee) error {
	s.created = append(s.created, fee)
	return nil
}

type producerStub struct {
	events []*model.PaymentEvent
}

func (s *producerStub) Send(event *model.PaymentEvent) error {
	s.events = append(s.events, event)
	return nil
}
