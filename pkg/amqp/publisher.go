package amqp

// Publisher sends message bodies to a single queue.
//go:generate mockery -name=Publisher
type Publisher interface {
	Publish(body []byte, contentType string) error
	Close() error
}
