// Package postgres adapts a networked PostgreSQL database to the source
// contract.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-relay/pkg/models/store"
	"github.com/de-tools/report-relay/pkg/services/source"
	"github.com/de-tools/report-relay/pkg/store/sqldb"
)

type connector struct{}

func NewConnector() source.Connector {
	return connector{}
}

// Connect opens and pings the database so that unreachable hosts and bad
// credentials surface before any query runs.
func (connector) Connect(ctx context.Context, conn string) (source.Connection, error) {
	zerolog.Ctx(ctx).Debug().Msg("connecting to postgres")

	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &connection{db: db}, nil
}

type connection struct {
	db *sql.DB
}

func (c *connection) Query(ctx context.Context, query string) (*store.RawResult, error) {
	return sqldb.QueryRaw(ctx, c.db, query)
}

func (c *connection) Close() error {
	return c.db.Close()
}
