package notifier

import (
	"github.com/pkg/errors"
)

type Webhook struct {
	Topic string `mapstructure:"topic"`
	URL   string `mapstructure:"url"`
}

//go:generate mockery -name=WebhookStore
type WebhookStore interface {
	ListWebhooks(topic string) ([]*Webhook, error)
}

// StaticWebhooks is a WebhookStore over a fixed list, typically read from configuration.
type StaticWebhooks []*Webhook

func (r StaticWebhooks) ListWebhooks(topic string) ([]*Webhook, error) {
	var out []*Webhook
	for _, hook := range r {
		if hook.Topic == topic || hook.Topic == "*" {
			out = append(out, hook)
		}
	}

	if len(out) == 0 {
		return nil, errors.Errorf("no webhooks registered for topic %s", topic)
	}

	return out, nil
}
