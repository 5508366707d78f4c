package source

import (
	"context"

	"github.com/de-tools/report-relay/pkg/models/store"
)

// Connection is an open database session. One connection is held for all
// queries of a run and closed when the run ends.
type Connection interface {
	// Query executes one read query and returns its raw, untyped rows.
	Query(ctx context.Context, query string) (*store.RawResult, error)
	Close() error
}

// Connector opens connections for one backend kind.
type Connector interface {
	Connect(ctx context.Context, conn string) (Connection, error)
}
