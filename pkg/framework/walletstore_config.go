/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"strings"

	"github.com/hyperledger/aries-framework-go/pkg/secretlock"
	"github.com/hyperledger/aries-framework-go/pkg/secretlock/local"
	"github.com/hyperledger/aries-framework-go/pkg/storage"
	couchdbstore "github.com/hyperledger/aries-framework-go/pkg/storage/couchdb"
	"github.com/hyperledger/aries-framework-go/pkg/storage/mem"
	"github.com/hyperledger/aries-framework-go/pkg/storage/mysql"
	"github.com/pkg/errors"
	mongodbstore "github.com/scoir/aries-storage-mongo/pkg"
)

const defaultWalletPrefix = "anoncreds"

type WalletStoreConfig struct {
	Database      string `mapstructure:"database"`
	URL           string `mapstructure:"url"`
	Prefix        string `mapstructure:"prefix"`
	MasterLockKey string `mapstructure:"masterLockKey"`
}

func (r *WalletStoreConfig) StorageProvider() (storage.Provider, error) {
	var sp storage.Provider
	var err error

	switch r.Database {
	case "mem":
		sp = mem.NewProvider()
	case "mongo":
		sp = mongodbstore.NewProvider(r.URL, mongodbstore.WithDBPrefix(r.prefix()))
	case "mysql":
		sp, err = mysql.NewProvider(r.URL)
	case "couchdb":
		sp, err = couchdbstore.NewProvider(r.URL)
	default:
		return nil, errors.New("no wallet store configuration was provided")
	}

	if err != nil {
		return nil, errors.Wrap(err, "unable to create wallet store based on config")
	}

	return sp, nil
}

// SecretLock returns the lock that wallet keys are encrypted with at rest.
func (r *WalletStoreConfig) SecretLock() (secretlock.Service, error) {
	if r.MasterLockKey == "" {
		return nil, errors.New("wallet.masterLockKey is required")
	}

	lock, err := local.NewService(strings.NewReader(r.MasterLockKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create wallet secret lock")
	}

	return lock, nil
}

func (r *WalletStoreConfig) prefix() string {
	if r.Prefix == "" {
		return defaultWalletPrefix
	}

	return r.Prefix
}
