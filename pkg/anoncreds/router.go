/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrNoRegistry = errors.New("no anoncreds registry supports identifier")

// Router dispatches identifiers to the first registered Registry whose
// supported identifier pattern matches.
type Router struct {
	lock       sync.RWMutex
	registries []Registry
}

func NewRouter(regs ...Registry) *Router {
	return &Router{registries: regs}
}

func (r *Router) Register(reg Registry) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.registries = append(r.registries, reg)
}

func (r *Router) find(id string) (Registry, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	for _, reg := range r.registries {
		if rx := reg.SupportedIdentifiers(); rx != nil && rx.MatchString(id) {
			return reg, nil
		}
	}

	return nil, errors.Wrapf(ErrNoRegistry, "%s", id)
}

func (r *Router) Resolver(id string) (Resolver, error) {
	return r.find(id)
}

func (r *Router) Registrar(id string) (Registrar, error) {
	return r.find(id)
}
