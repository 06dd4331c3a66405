package config

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scoir/anoncreds-registry/pkg/framework"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

const (
	defaultAMQP        = "anoncreds-amqp-config"
	defaultLedger      = "anoncreds-ledger-config"
	defaultWalletStore = "anoncreds-wallet-store-config"
	defaultNotifier    = "anoncreds-notifier-config"
	defaultProfileName = "default"
)

// Option configures the config...
type Option func(opts *vpr)

// WithFile merges file instead of the section's default config.
func WithFile(file string) Option {
	return func(opts *vpr) {
		opts.file = file
	}
}

type ViperConfigProvider struct {
	DefaultConfigName string
}

type vpr struct {
	*viper.Viper
	file string
}

func (r *ViperConfigProvider) Load(file string) Config {
	config := &vpr{
		viper.New(),
		"", // really don't like this
	}

	if file != "" {
		config.SetConfigFile(file)
	} else {
		config.SetConfigType("yaml")
		config.AddConfigPath("/etc/anoncreds-registry/")
		config.AddConfigPath("./deploy/config/")
		config.SetConfigName(r.DefaultConfigName)
	}

	config.SetEnvPrefix("ANONCREDS")
	config.AutomaticEnv()

	err := config.BindPFlags(pflag.CommandLine)
	if err != nil {
		log.Fatalln("failed to bind flags", err)
	}

	err = config.ReadInConfig()
	if err != nil {
		log.Fatalln("failed to read config after merge", config.ConfigFileUsed(), err)
	}

	return config
}

func (r *vpr) WithAMQP(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultAMQP)
}

func (r *vpr) WithLedger(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultLedger)
}

func (r *vpr) WithWalletStore(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultWalletStore)
}

func (r *vpr) WithNotifier(opts ...Option) Config {
	for _, opt := range opts {
		opt(r)
	}

	return r.with(r.file, defaultNotifier)
}

func (r *vpr) with(file, defawlt string) Config {
	if file != "" {
		return r.withFile(r.SetConfigFile, file)
	}

	return r.withFile(r.SetConfigName, defawlt)
}

func (r *vpr) withFile(setter func(name string), file string) Config {
	setter(file)

	err := r.MergeInConfig()
	if err != nil {
		log.Fatalln("failed to merge", r.ConfigFileUsed(), err)
	}

	return r
}

func (r *vpr) AMQPAddress() string {
	amqpUser := r.GetString("amqp.user")
	amqpPwd := r.GetString("amqp.password")
	amqpHost := r.GetString("amqp.host")
	amqpPort := r.GetInt("amqp.port")
	amqpVHost := r.GetString("amqp.vhost")

	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", amqpUser, amqpPwd, amqpHost, amqpPort, amqpVHost)
}

func (r *vpr) AMQPConfig() (*framework.AMQPConfig, error) {
	config := &framework.AMQPConfig{}

	err := r.UnmarshalKey("amqp", config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (r *vpr) Ledger() (*framework.LedgerConfig, error) {
	lc := &framework.LedgerConfig{}

	err := r.UnmarshalKey("ledger", lc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger config")
	}

	if lc.Method == "" {
		return nil, errors.New("ledger.method is required")
	}

	return lc, nil
}

func (r *vpr) WalletStore() (*framework.WalletStoreConfig, error) {
	wsc := &framework.WalletStoreConfig{}

	err := r.UnmarshalKey("wallet", wsc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wallet config")
	}

	return wsc, nil
}

func (r *vpr) NotifierQueue() string {
	q := r.GetString("notifier.queue")
	if q == "" {
		q = notifier.QueueName
	}

	return q
}

func (r *vpr) Webhooks() ([]*notifier.Webhook, error) {
	var hooks []*notifier.Webhook

	err := r.UnmarshalKey("webhooks", &hooks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load webhooks")
	}

	return hooks, nil
}

func (r *vpr) Profile() (*framework.ProfileConfig, error) {
	pc := &framework.ProfileConfig{}

	err := r.UnmarshalKey("profile", pc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile config")
	}

	if pc.Name == "" {
		pc.Name = defaultProfileName
	}

	return pc, nil
}

// GetString uses Get because recursion
func (r *vpr) GetString(s string) string {
	ret, _ := r.Get(s).(string)

	return ret
}

// GetString uses Get because same recursion
func (r *vpr) GetInt(s string) int {
	ret, _ := r.Get(s).(int)

	return ret
}

func (r *vpr) Endpoint(key string) (*framework.Endpoint, error) {
	ep := &framework.Endpoint{}

	err := r.UnmarshalKey(key, ep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load key "+key)
	}

	return ep, nil
}
