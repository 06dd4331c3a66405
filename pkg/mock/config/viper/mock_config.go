package config

import (
	"github.com/scoir/anoncreds-registry/pkg/config"
	"github.com/scoir/anoncreds-registry/pkg/framework"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

type MockConfig struct {
	EndpointFunc        func(s string) (*framework.Endpoint, error)
	EndpointErr         error
	WithAMQPFunc        func() config.Config
	WithLedgerFunc      func() config.Config
	WithWalletStoreFunc func() config.Config
	WithNotifierFunc    func() config.Config
	AMQP                *framework.AMQPConfig
	AMQPErr             error
	LedgerConfig        *framework.LedgerConfig
	LedgerErr           error
	WalletStoreConfig   *framework.WalletStoreConfig
	WalletStoreErr      error
	Queue               string
	Hooks               []*notifier.Webhook
	HooksErr            error
	ProfileConfig       *framework.ProfileConfig
	ProfileErr          error
	Strings             map[string]string
	Ints                map[string]int
}

func (m MockConfig) WithAMQP(_ ...config.Option) config.Config {
	if m.WithAMQPFunc != nil {
		return m.WithAMQPFunc()
	}

	return m
}

func (m MockConfig) AMQPAddress() string {
	if m.AMQP == nil {
		return ""
	}

	return m.AMQP.Endpoint()
}

func (m MockConfig) AMQPConfig() (*framework.AMQPConfig, error) {
	if m.AMQPErr != nil {
		return nil, m.AMQPErr
	}

	if m.AMQP == nil {
		return &framework.AMQPConfig{}, nil
	}

	return m.AMQP, nil
}

func (m MockConfig) WithLedger(_ ...config.Option) config.Config {
	if m.WithLedgerFunc != nil {
		return m.WithLedgerFunc()
	}

	return m
}

func (m MockConfig) Ledger() (*framework.LedgerConfig, error) {
	if m.LedgerErr != nil {
		return nil, m.LedgerErr
	}

	return m.LedgerConfig, nil
}

func (m MockConfig) WithWalletStore(_ ...config.Option) config.Config {
	if m.WithWalletStoreFunc != nil {
		return m.WithWalletStoreFunc()
	}

	return m
}

func (m MockConfig) WalletStore() (*framework.WalletStoreConfig, error) {
	if m.WalletStoreErr != nil {
		return nil, m.WalletStoreErr
	}

	return m.WalletStoreConfig, nil
}

func (m MockConfig) WithNotifier(_ ...config.Option) config.Config {
	if m.WithNotifierFunc != nil {
		return m.WithNotifierFunc()
	}

	return m
}

func (m MockConfig) NotifierQueue() string {
	if m.Queue == "" {
		return notifier.QueueName
	}

	return m.Queue
}

func (m MockConfig) Webhooks() ([]*notifier.Webhook, error) {
	if m.HooksErr != nil {
		return nil, m.HooksErr
	}

	return m.Hooks, nil
}

func (m MockConfig) Profile() (*framework.ProfileConfig, error) {
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}

	if m.ProfileConfig == nil {
		return &framework.ProfileConfig{Name: "default"}, nil
	}

	return m.ProfileConfig, nil
}

func (m MockConfig) GetString(s string) string {
	return m.Strings[s]
}

func (m MockConfig) GetInt(s string) int {
	return m.Ints[s]
}

func (m MockConfig) Endpoint(s string) (*framework.Endpoint, error) {
	if m.EndpointFunc != nil {
		return m.EndpointFunc(s)
	}

	if m.EndpointErr != nil {
		return nil, m.EndpointErr
	}

	return nil, nil
}
