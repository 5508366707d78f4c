// Package sqldb holds the database/sql plumbing shared by the backend
// adapters.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/report-relay/pkg/models/store"
)

// QueryRaw runs one read query and scans every row into the backend-native
// raw model, keeping the backend's row order.
func QueryRaw(ctx context.Context, db *sql.DB, query string) (*store.RawResult, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close query rows")
		}
	}(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &store.RawResult{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}

		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(result.Rows), err)
		}

		row := make(store.RawRow, len(columns))
		for i, name := range columns {
			row[name] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return result, nil
}
