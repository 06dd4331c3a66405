/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scoir/anoncreds-registry/pkg/amqp"
	"github.com/scoir/anoncreds-registry/pkg/amqp/rabbitmq"
	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/config"
	"github.com/scoir/anoncreds-registry/pkg/events"
	"github.com/scoir/anoncreds-registry/pkg/ledger/indy"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
	"github.com/scoir/anoncreds-registry/pkg/profile"
	"github.com/scoir/anoncreds-registry/pkg/registry"
	"github.com/scoir/anoncreds-registry/pkg/util"
	"github.com/scoir/anoncreds-registry/pkg/wallet"
)

const dialRetries = 5

var (
	cfgFile        string
	timeout        time.Duration
	prov           *Provider
	configProvider config.Provider
)

var rootCmd = &cobra.Command{
	Use:   "anoncreds-registry",
	Short: "Resolve and register AnonCreds objects on an Indy ledger.",
	Long: `Resolve and register AnonCreds schemas, credential definitions, revocation
registry definitions and revocation lists on a DID-anchored Indy ledger.`,
}

// Provider builds the registry and its collaborators from configuration on first use.
type Provider struct {
	conf config.Config

	lock   sync.Mutex
	client *indy.Client
	wallet *wallet.Wallet
	bus    *events.Bus
	pub    *rabbitmq.Publisher
	router *anoncreds.Router
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	configProvider = &config.ViperConfigProvider{
		DefaultConfigName: "anoncreds-registry-config",
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/anoncreds-registry/anoncreds-registry-config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "deadline for each ledger operation")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	conf := configProvider.Load(cfgFile).
		WithLedger().
		WithWalletStore().
		WithAMQP().
		WithNotifier()

	prov = NewProvider(conf)
}

func NewProvider(conf config.Config) *Provider {
	return &Provider{conf: conf}
}

func (r *Provider) GetLedgerClient() (*indy.Client, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	lc, err := r.conf.Ledger()
	if err != nil {
		return nil, err
	}

	genesis, err := lc.Genesis()
	if err != nil {
		return nil, err
	}

	cl, err := indy.Open(genesis, indy.WithMethod(lc.Method), indy.WithNamespace(lc.Namespace))
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to the ledger pool")
	}

	r.client = cl
	return cl, nil
}

func (r *Provider) GetWallet() (*wallet.Wallet, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.wallet != nil {
		return r.wallet, nil
	}

	lc, err := r.conf.Ledger()
	if err != nil {
		return nil, err
	}

	wc, err := r.conf.WalletStore()
	if err != nil {
		return nil, err
	}

	sp, err := wc.StorageProvider()
	if err != nil {
		return nil, err
	}

	lock, err := wc.SecretLock()
	if err != nil {
		return nil, err
	}

	w, err := wallet.New(sp, lock, lc.Method, lc.Namespace)
	if err != nil {
		return nil, err
	}

	r.wallet = w
	return w, nil
}

// GetEventBus returns the bus revocation events are announced on. Events are
// forwarded to the notifier queue when an AMQP host is configured.
func (r *Provider) GetEventBus() (*events.Bus, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.bus != nil {
		return r.bus, nil
	}

	ac, err := r.conf.AMQPConfig()
	if err != nil {
		return nil, errors.Wrap(err, "invalid amqp configuration")
	}

	var opts []events.Option
	if ac.Host != "" {
		var pub *rabbitmq.Publisher
		err = backoff.RetryNotify(func() error {
			var err error
			pub, err = rabbitmq.NewPublisher(ac.Endpoint(), r.conf.NotifierQueue())
			return err
		}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dialRetries), util.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "unable to connect to the notifier queue")
		}

		r.pub = pub
		opts = append(opts, events.WithPublisher(pub))
	}

	r.bus = events.NewBus(opts...)
	r.bus.Subscribe(events.RevListFinishedTopic, func(_ context.Context, scope string, ev events.Event) {
		log.Printf("%s: %s %s", scope, ev.Topic, ev.ID)
	})

	return r.bus, nil
}

func (r *Provider) GetProfile() (profile.Profile, error) {
	w, err := r.GetWallet()
	if err != nil {
		return nil, err
	}

	bus, err := r.GetEventBus()
	if err != nil {
		return nil, err
	}

	pc, err := r.conf.Profile()
	if err != nil {
		return nil, err
	}

	return profile.NewAgent(pc.Name, profile.WithWallet(w), profile.WithEventBus(bus)), nil
}

func (r *Provider) GetRouter() (*anoncreds.Router, error) {
	cl, err := r.GetLedgerClient()
	if err != nil {
		return nil, err
	}

	lc, err := r.conf.Ledger()
	if err != nil {
		return nil, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.router != nil {
		return r.router, nil
	}

	reg, err := registry.New(cl, registry.WithMethod(lc.Method))
	if err != nil {
		return nil, err
	}

	r.router = anoncreds.NewRouter(reg)
	return r.router, nil
}

func (r *Provider) GetWebhookStore() notifier.WebhookStore {
	hooks, err := r.conf.Webhooks()
	if err != nil {
		log.Fatalln("invalid webhooks in configuration", err)
	}

	return notifier.StaticWebhooks(hooks)
}

func (r *Provider) GetAMQPListener(queue string) amqp.Listener {
	ac, err := r.conf.AMQPConfig()
	if err != nil {
		log.Fatalln("invalid amqp configuration", err)
	}

	if q := r.conf.NotifierQueue(); q != "" {
		queue = q
	}

	var l *rabbitmq.Listener
	err = backoff.RetryNotify(func() error {
		var err error
		l, err = rabbitmq.NewListener(ac.Endpoint(), queue)
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), dialRetries), util.Logger)
	if err != nil {
		log.Fatalln("unable to listen on notifier queue", err)
	}

	return l
}

// Close releases the ledger pool and the AMQP connection if they were opened.
func (r *Provider) Close() {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.client != nil {
		if err := r.client.Close(); err != nil {
			log.Println("error closing ledger pool", err)
		}
	}

	if r.pub != nil {
		if err := r.pub.Close(); err != nil {
			log.Println("error closing amqp publisher", err)
		}
	}
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
