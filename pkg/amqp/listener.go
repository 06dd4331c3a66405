package amqp

import (
	"github.com/streadway/amqp"
)

// Listener consumes deliveries from a single queue.
//go:generate mockery -name=Listener
type Listener interface {
	Listen() (<-chan amqp.Delivery, error)
	Close() error
}
