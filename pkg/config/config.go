package config

import (
	"github.com/scoir/anoncreds-registry/pkg/framework"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

// Provider rename to ConfigBuilder
type Provider interface {
	Load(file string) Config
}

// Config
type Config interface {
	WithAMQP(opts ...Option) Config
	AMQPAddress() string
	AMQPConfig() (*framework.AMQPConfig, error)

	WithLedger(opts ...Option) Config
	Ledger() (*framework.LedgerConfig, error)

	WithWalletStore(opts ...Option) Config
	WalletStore() (*framework.WalletStoreConfig, error)

	WithNotifier(opts ...Option) Config
	NotifierQueue() string
	Webhooks() ([]*notifier.Webhook, error)

	Profile() (*framework.ProfileConfig, error)

	GetString(s string) string
	GetInt(s string) int

	Endpoint(s string) (*framework.Endpoint, error)
}
