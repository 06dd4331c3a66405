/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

type Endpoint struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Token    string `mapstructure:"token"`
}

func (r Endpoint) Address() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AMQPConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	VHost    string `mapstructure:"vhost"`
}

func (r *AMQPConfig) Endpoint() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/%s", r.User, r.Password, r.Host, r.Port, r.VHost)
}

// LedgerConfig names the DID method and namespace served by the ledger pool
// described by GenesisFile.
type LedgerConfig struct {
	Method      string `mapstructure:"method"`
	Namespace   string `mapstructure:"namespace"`
	GenesisFile string `mapstructure:"genesisFile"`
}

func (r *LedgerConfig) Genesis() (io.ReadCloser, error) {
	if r.GenesisFile == "" {
		return nil, errors.New("no ledger genesis file was provided")
	}

	f, err := os.Open(r.GenesisFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open genesis file %s", r.GenesisFile)
	}

	return f, nil
}

type ProfileConfig struct {
	Name string `mapstructure:"name"`
	DID  string `mapstructure:"did"`
}
