/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"context"

	"github.com/scoir/anoncreds-registry/pkg/events"
)

//go:generate mockery -name=Wallet
type Wallet interface {
	// GetPrivateKeyDer returns the DER (PKCS#8) encoded signing key of did.
	GetPrivateKeyDer(ctx context.Context, did string) ([]byte, error)
}

//go:generate mockery -name=EventBus
type EventBus interface {
	Notify(ctx context.Context, scope string, ev events.Event) error
}

// Session groups the capabilities available for the duration of one unit of
// work. The boolean result reports whether the capability is bound at all.
//go:generate mockery -name=Session
type Session interface {
	Wallet() (Wallet, bool)
	EventBus() (EventBus, bool)
	Close() error
}

//go:generate mockery -name=Profile
type Profile interface {
	Name() string
	Session(ctx context.Context) (Session, error)
}
