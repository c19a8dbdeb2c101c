package model

// Event is anything the messaging gateway can publish to Kafka.
type Event interface {
	GetId() string
}
