package model

// PaymentEvent is published to Kafka whenever a charge reaches a terminal
// status, for downstream notification fan-out.
type PaymentEvent struct {
	EventID   string  `json:"event_id"`
	UserID    string  `json:"user_id"`
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message,omitempty"`
}

func (e *PaymentEvent) GetId() string {
	return e.EventID
}
