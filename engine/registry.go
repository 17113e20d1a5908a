// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"sync"
)

// Factory constructs an Engine from engine-specific options.
type Factory func(opts map[string]string) (Engine, error)

// Registry for engine factories by name (e.g., "additive", "sampler").
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[name]
	return f, ok
}

// New builds an engine by registered name.
func (r *Registry) New(name string, opts map[string]string) (Engine, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	return f(opts)
}
