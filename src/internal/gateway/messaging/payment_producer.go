package messaging

import (
	"chama-service/src/internal/model"
	kafka "chama-service/src/pkg/kafka/confluent"
	"chama-service/src/pkg/log"
)

// PaymentEventSender is what usecases depend on; tests swap in a fake.
type PaymentEventSender interface {
	Send(event *model.PaymentEvent) error
}

type PaymentProducer struct {
	Producer[*model.PaymentEvent]
}

func NewPaymentProducer(producer kafka.Producer, log log.Log) *PaymentProducer {
	return &PaymentProducer{
		Producer: Producer[*model.PaymentEvent]{
			Producer: producer,
			Topic:    "payment-notifications",
			Log:      log,
		},
	}
}
