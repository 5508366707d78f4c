// Package sqlite adapts an embedded SQLite database file to the source
// contract.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/de-tools/report-relay/pkg/models/store"
	"github.com/de-tools/report-relay/pkg/services/source"
	"github.com/de-tools/report-relay/pkg/store/sqldb"
)

type connector struct{}

func NewConnector() source.Connector {
	return connector{}
}

// Connect opens the database file. Reports only read data, so a missing
// file is a connection failure rather than a silently created empty
// database. ":memory:" and "file:" DSNs are passed through untouched.
func (connector) Connect(ctx context.Context, conn string) (source.Connection, error) {
	zerolog.Ctx(ctx).Debug().Str("path", conn).Msg("opening sqlite database")

	if conn != ":memory:" && !strings.HasPrefix(conn, "file:") {
		if _, err := os.Stat(conn); err != nil {
			return nil, fmt.Errorf("sqlite database %s is not accessible: %w", conn, err)
		}
	}

	db, err := sql.Open("sqlite", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
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
