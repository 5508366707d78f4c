package source

import (
	"fmt"
	"sync"

	"github.com/de-tools/report-relay/pkg/models/domain"
)

// ConnectorFactory is a function type that creates a Connector for one
// backend kind.
type ConnectorFactory func() Connector

// Registry manages backend connector factories
type Registry interface {
	// Register adds a new backend connector factory
	Register(kind domain.SourceKind, factory ConnectorFactory) error
	// Create instantiates a connector for the specified backend kind
	Create(kind domain.SourceKind) (Connector, error)
	// ListKinds returns a list of registered backend kinds
	ListKinds() []domain.SourceKind
}

type registry struct {
	mu        sync.RWMutex
	factories map[domain.SourceKind]ConnectorFactory
}

// NewRegistry creates a new connector registry, pre-populated with the
// given factories.
func NewRegistry(factories map[domain.SourceKind]ConnectorFactory) Registry {
	owned := make(map[domain.SourceKind]ConnectorFactory, len(factories))
	for kind, factory := range factories {
		owned[kind] = factory
	}
	return &registry{
		factories: owned,
	}
}

func (r *registry) Register(kind domain.SourceKind, factory ConnectorFactory) error {
	if kind == "" {
		return fmt.Errorf("backend kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("backend %q is already registered", kind)
	}

	r.factories[kind] = factory
	return nil
}

func (r *registry) Create(kind domain.SourceKind) (Connector, error) {
	r.mu.RLock()
	factory, exists := r.factories[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %q is not registered", kind)
	}

	return factory(), nil
}

func (r *registry) ListKinds() []domain.SourceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.SourceKind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	return kinds
}
